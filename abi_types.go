//go:build windows

package main

// GL/WGL C-ABI type aliases, named to match the legacy headers so the
// //export signatures below read the way the original declarations do.
type (
	HDC   = uintptr
	HGLRC = uintptr

	GLenum    = uint32
	GLboolean = uint8
	GLbitfield = uint32
	GLint     = int32
	GLsizei   = int32
	GLubyte   = uint8
	GLuint    = uint32
	GLfloat   = float32
	GLclampf  = float32
	GLdouble  = float64
)
