//go:build windows

package main

import "C"

import (
	"log/slog"
	"unsafe"

	"github.com/tinyrange/minigl/internal/buildinfo"
	"github.com/tinyrange/minigl/internal/glcore"
	"github.com/tinyrange/minigl/internal/host"
)

var fingerprint *C.uchar

func init() {
	fingerprint = (*C.uchar)(C.CString(buildinfo.Fingerprint))
}

// glGetString returns the fixed fingerprint byte sequence regardless of
// name, matching the legacy source unconditionally.
//
//export glGetString
func glGetString(name GLenum) *C.uchar {
	return fingerprint
}

//export glClearColor
func glClearColor(red, green, blue, alpha GLclampf) {}

//export glClear
func glClear(mask GLbitfield) {
	withContext("glClear", func(ctx *host.Context) {
		ctx.Clear()
	})
}

//export glViewport
func glViewport(x, y GLint, width, height GLsizei) {
	withContext("glViewport", func(ctx *host.Context) {
		ctx.SetViewport(float32(x), float32(y), float32(width), float32(height))
	})
}

func toMatrixMode(mode GLenum) glcore.MatrixMode {
	switch mode {
	case glModelView:
		return glcore.ModelView
	case glProjection:
		return glcore.Projection
	default:
		return glcore.MatrixMode(mode)
	}
}

//export glMatrixMode
func glMatrixMode(mode GLenum) {
	withContext("glMatrixMode", func(ctx *host.Context) {
		if err := ctx.SetMatrixMode(toMatrixMode(mode)); err != nil {
			slog.Error("glMatrixMode", "err", err)
		}
	})
}

//export glLoadIdentity
func glLoadIdentity() {
	withContext("glLoadIdentity", func(ctx *host.Context) { ctx.LoadIdentity() })
}

//export glPushMatrix
func glPushMatrix() {
	withContext("glPushMatrix", func(ctx *host.Context) { ctx.PushMatrix() })
}

//export glPopMatrix
func glPopMatrix() {
	withContext("glPopMatrix", func(ctx *host.Context) { ctx.PopMatrix() })
}

//export glTranslatef
func glTranslatef(x, y, z GLfloat) {
	withContext("glTranslatef", func(ctx *host.Context) { ctx.Translate(x, y, z) })
}

//export glScalef
func glScalef(x, y, z GLfloat) {
	withContext("glScalef", func(ctx *host.Context) { ctx.Scale(x, y, z) })
}

//export glRotatef
func glRotatef(angle, x, y, z GLfloat) {
	withContext("glRotatef", func(ctx *host.Context) { ctx.Rotate(angle, x, y, z) })
}

//export glOrtho
func glOrtho(left, right, bottom, top, near, far GLdouble) {
	withContext("glOrtho", func(ctx *host.Context) {
		ctx.Ortho(float32(left), float32(right), float32(bottom), float32(top), float32(near), float32(far))
	})
}

//export glFrustum
func glFrustum(left, right, bottom, top, near, far GLdouble) {
	withContext("glFrustum", func(ctx *host.Context) {
		ctx.Frustum(float32(left), float32(right), float32(bottom), float32(top), float32(near), float32(far))
	})
}

//export glBindTexture
func glBindTexture(target GLenum, texture GLuint) {
	withContext("glBindTexture", func(ctx *host.Context) { ctx.BindTexture(texture) })
}

//export glTexImage2D
func glTexImage2D(target GLenum, level, internalFormat GLint, width, height GLsizei, border GLint, format, xtype GLenum, pixels unsafe.Pointer) {
	withContext("glTexImage2D", func(ctx *host.Context) {
		var data []byte
		if pixels != nil {
			data = unsafe.Slice((*byte)(pixels), int(width)*int(height)*4)
		}
		ctx.TexImage2D(target, level, internalFormat, int(width), int(height), format, xtype, data)
	})
}

//export glTexCoord2f
func glTexCoord2f(s, t GLfloat) {
	withContext("glTexCoord2f", func(ctx *host.Context) { ctx.TexCoord2f(s, t) })
}

//export glBegin
func glBegin(mode GLenum) {
	withContext("glBegin", func(ctx *host.Context) { ctx.Begin(glcore.PrimitiveMode(mode)) })
}

//export glEnd
func glEnd() {
	withContext("glEnd", func(ctx *host.Context) {
		if err := ctx.End(); err != nil {
			slog.Error("glEnd", "err", err)
		}
	})
}

//export glVertex2f
func glVertex2f(x, y GLfloat) {
	withContext("glVertex2f", func(ctx *host.Context) { ctx.Vertex2f(x, y) })
}

//export glVertex3f
func glVertex3f(x, y, z GLfloat) {
	withContext("glVertex3f", func(ctx *host.Context) { ctx.Vertex3f(x, y, z) })
}

//export glVertex3fv
func glVertex3fv(v *[3]GLfloat) {
	withContext("glVertex3fv", func(ctx *host.Context) { ctx.Vertex3fv(*v) })
}

//export glVertex4f
func glVertex4f(x, y, z, w GLfloat) {
	withContext("glVertex4f", func(ctx *host.Context) { ctx.Vertex4f(x, y, z, w) })
}

// withContext runs fn against the calling thread's Context, logging and
// no-op'ing if none is current — a caller invoking a drawing entry point
// before wglCreateContext is a caller error the legacy driver also
// tolerates silently.
func withContext(op string, fn func(ctx *host.Context)) {
	ctx := host.Lookup()
	if ctx == nil {
		slog.Debug("no context current", "op", op)
		return
	}
	fn(ctx)
}
