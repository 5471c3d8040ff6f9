//go:build windows

package main

import "C"

import "unsafe"

// The remaining gl* entry points a Quake-era binary links against but this
// driver has no use for: state toggles, fixed-function lighting/fog/
// material, display lists, client-side vertex arrays, and texture-name
// bookkeeping. All are no-ops returning plausible defaults and never touch
// pipeline state.

//export glCullFace
func glCullFace(mode GLenum) {}

//export glEnable
func glEnable(cap GLenum) {}

//export glDisable
func glDisable(cap GLenum) {}

//export glAlphaFunc
func glAlphaFunc(function GLenum, ref GLclampf) {}

//export glBlendFunc
func glBlendFunc(sfactor, dfactor GLenum) {}

//export glDepthFunc
func glDepthFunc(function GLenum) {}

//export glDepthRange
func glDepthRange(near, far GLdouble) {}

//export glDepthMask
func glDepthMask(flag GLboolean) {}

//export glPolygonMode
func glPolygonMode(face, mode GLenum) {}

//export glShadeModel
func glShadeModel(mode GLenum) {}

//export glTexParameterf
func glTexParameterf(target, pname GLenum, param GLfloat) {}

//export glTexEnvf
func glTexEnvf(target, pname GLenum, param GLfloat) {}

//export glColor3f
func glColor3f(red, green, blue GLfloat) {}

//export glColor3ubv
func glColor3ubv(v unsafe.Pointer) {}

//export glColor4f
func glColor4f(red, green, blue, alpha GLfloat) {}

//export glColor4fv
func glColor4fv(v unsafe.Pointer) {}

//export glDrawBuffer
func glDrawBuffer(buf GLenum) {}

//export glGetFloatv
func glGetFloatv(pname GLenum, params unsafe.Pointer) {}

//export glTexSubImage2D
func glTexSubImage2D(target GLenum, level, xoffset, yoffset GLint, width, height GLsizei, format, xtype GLenum, pixels unsafe.Pointer) {
}

//export glFogf
func glFogf(pname GLenum, param GLfloat) {}

//export glFogi
func glFogi(pname GLenum, param GLint) {}

//export glFogfv
func glFogfv(pname GLenum, params unsafe.Pointer) {}

//export glLightf
func glLightf(light, pname GLenum, param GLfloat) {}

//export glLightfv
func glLightfv(light, pname GLenum, params unsafe.Pointer) {}

//export glLightModeli
func glLightModeli(pname GLenum, param GLint) {}

//export glLightModelfv
func glLightModelfv(pname GLenum, params unsafe.Pointer) {}

//export glMaterialfv
func glMaterialfv(face, pname GLenum, params unsafe.Pointer) {}

//export glColorMaterial
func glColorMaterial(face, mode GLenum) {}

//export glHint
func glHint(target, mode GLenum) {}

//export glFrontFace
func glFrontFace(mode GLenum) {}

//export glStencilFunc
func glStencilFunc(function GLenum, ref GLint, mask GLuint) {}

//export glStencilOp
func glStencilOp(fail, zfail, zpass GLenum) {}

//export glClearStencil
func glClearStencil(s GLint) {}

//export glClearDepth
func glClearDepth(depth GLdouble) {}

//export glPixelStorei
func glPixelStorei(pname GLenum, param GLint) {}

//export glFinish
func glFinish() {}

//export glFlush
func glFlush() {}

//export glGetError
func glGetError() GLenum { return 0 }

//export glGetIntegerv
func glGetIntegerv(pname GLenum, params unsafe.Pointer) {}

//export glGetBooleanv
func glGetBooleanv(pname GLenum, params unsafe.Pointer) {}

//export glIsEnabled
func glIsEnabled(cap GLenum) GLboolean { return 0 }

//export glEnableClientState
func glEnableClientState(cap GLenum) {}

//export glDisableClientState
func glDisableClientState(cap GLenum) {}

//export glVertexPointer
func glVertexPointer(size GLint, xtype GLenum, stride GLsizei, pointer unsafe.Pointer) {}

//export glTexCoordPointer
func glTexCoordPointer(size GLint, xtype GLenum, stride GLsizei, pointer unsafe.Pointer) {}

//export glColorPointer
func glColorPointer(size GLint, xtype GLenum, stride GLsizei, pointer unsafe.Pointer) {}

//export glNormalPointer
func glNormalPointer(xtype GLenum, stride GLsizei, pointer unsafe.Pointer) {}

//export glDrawElements
func glDrawElements(mode GLenum, count GLsizei, xtype GLenum, indices unsafe.Pointer) {}

//export glDrawArrays
func glDrawArrays(mode GLenum, first GLint, count GLsizei) {}

//export glNormal3f
func glNormal3f(nx, ny, nz GLfloat) {}

//export glNormal3fv
func glNormal3fv(v unsafe.Pointer) {}

//export glArrayElement
func glArrayElement(i GLint) {}

//export glInterleavedArrays
func glInterleavedArrays(format GLenum, stride GLsizei, pointer unsafe.Pointer) {}

//export glLineWidth
func glLineWidth(width GLfloat) {}

//export glPointSize
func glPointSize(size GLfloat) {}

//export glLogicOp
func glLogicOp(opcode GLenum) {}

//export glClipPlane
func glClipPlane(plane GLenum, equation unsafe.Pointer) {}

//export glScissor
func glScissor(x, y GLint, width, height GLsizei) {}

//export glStencilMask
func glStencilMask(mask GLuint) {}

//export glGenLists
func glGenLists(xrange GLsizei) GLuint { return 0 }

//export glNewList
func glNewList(list GLuint, mode GLenum) {}

//export glEndList
func glEndList() {}

//export glCallList
func glCallList(list GLuint) {}

//export glDeleteLists
func glDeleteLists(list GLuint, xrange GLsizei) {}

//export glIsList
func glIsList(list GLuint) GLboolean { return 0 }

//export glGenTextures
func glGenTextures(n GLsizei, textures *GLuint) {}

//export glDeleteTextures
func glDeleteTextures(n GLsizei, textures *GLuint) {}

//export glAreTexturesResident
func glAreTexturesResident(n GLsizei, textures *GLuint, residences *GLboolean) GLboolean { return 1 }

//export glPrioritizeTextures
func glPrioritizeTextures(n GLsizei, textures *GLuint, priorities unsafe.Pointer) {}

//export glReadBuffer
func glReadBuffer(mode GLenum) {}

//export glReadPixels
func glReadPixels(x, y GLint, width, height GLsizei, format, xtype GLenum, pixels unsafe.Pointer) {}

//export glCopyTexImage2D
func glCopyTexImage2D(target GLenum, level GLint, internalFormat GLenum, x, y GLint, width, height GLsizei, border GLint) {
}

//export glCopyTexSubImage2D
func glCopyTexSubImage2D(target GLenum, level, xoffset, yoffset, x, y GLint, width, height GLsizei) {
}
