// Package glcore implements the pipeline state machine and immediate-mode
// primitive assembler: matrix stacks, viewport, the vertex stream under
// construction, and the transform/triangulate/rasterize pipeline that
// begin/vertex/end drive.
package glcore

import (
	"fmt"
	"log/slog"

	"github.com/tinyrange/minigl/internal/glmath"
	"github.com/tinyrange/minigl/internal/raster"
	"github.com/tinyrange/minigl/internal/texture"
)

// Viewport is the (x,y,width,height) affine map from normalized device
// coordinates to pixels, stored as floats.
type Viewport struct {
	X, Y, Width, Height float32
}

// vertex is a captured immediate-mode vertex: the position it was issued at
// and the texture coordinate current at the moment of issue, not whatever
// is current when the enclosing primitive ends.
type vertex struct {
	position glmath.Vec4
	texCoord glmath.Vec4
}

// primitive is the vertex buffer under construction between begin and end.
type primitive struct {
	mode     PrimitiveMode
	vertices []vertex
}

// Context holds all per-thread pipeline state: the framebuffer, the two
// matrix stacks, the current matrix mode, viewport, the primitive under
// construction, current texture coordinate, bound texture, and the
// texture table. One Context exists per thread.
type Context struct {
	Framebuffer *raster.Framebuffer

	matrixMode   MatrixMode
	matrixStacks [numMatrixModes]matrixStack

	viewport Viewport

	current primitive

	texCoord     glmath.Vec4
	boundTexture uint32
	textures     *texture.Table
}

// NewContext allocates a Context with a framebuffer of the given size and
// all other state at its legacy GL defaults.
func NewContext(width, height int) *Context {
	return &Context{
		Framebuffer: raster.NewFramebuffer(width, height),
		matrixMode:  ModelView,
		matrixStacks: [numMatrixModes]matrixStack{
			newMatrixStack(),
			newMatrixStack(),
		},
		texCoord: glmath.NewVec4(0, 0, 0, 1),
		textures: texture.NewTable(),
	}
}

// SetMatrixMode selects the active matrix stack. Values other than
// ModelView/Projection are a caller error; this logs and leaves the
// current mode untouched rather than aborting the process.
func (c *Context) SetMatrixMode(mode MatrixMode) error {
	if mode != ModelView && mode != Projection {
		err := fmt.Errorf("matrixMode: invalid mode %d", mode)
		slog.Error("invalid matrix mode, state unchanged", "mode", mode)
		return err
	}
	c.matrixMode = mode
	return nil
}

func (c *Context) activeStack() *matrixStack {
	return &c.matrixStacks[c.matrixMode]
}

// TopMatrix returns the current top of the active matrix stack, mostly
// useful to tests.
func (c *Context) TopMatrix() glmath.Mat4 {
	return c.activeStack().top()
}

// LoadIdentity sets the top of the active matrix stack to the identity.
func (c *Context) LoadIdentity() {
	c.activeStack().setTop(glmath.Identity())
}

// PushMatrix duplicates the top of the active matrix stack.
func (c *Context) PushMatrix() {
	c.activeStack().push()
}

// PopMatrix removes the top of the active matrix stack, or is a no-op if
// only one frame remains.
func (c *Context) PopMatrix() {
	c.activeStack().pop()
}

// Translate right-multiplies the active top by a translation matrix.
func (c *Context) Translate(x, y, z float32) {
	c.activeStack().mulTop(glmath.Translate(x, y, z))
}

// Scale right-multiplies the active top by a scaling matrix.
func (c *Context) Scale(x, y, z float32) {
	c.activeStack().mulTop(glmath.Scale(x, y, z))
}

// Rotate right-multiplies the active top by a Rodrigues rotation matrix;
// angleDegrees is in degrees and (x,y,z) is normalized internally.
func (c *Context) Rotate(angleDegrees, x, y, z float32) {
	c.activeStack().mulTop(glmath.Rotate(angleDegrees, x, y, z))
}

// Ortho right-multiplies the active top by an orthographic projection.
func (c *Context) Ortho(left, right, bottom, top, near, far float32) {
	c.activeStack().mulTop(glmath.Ortho(left, right, bottom, top, near, far))
}

// Frustum right-multiplies the active top by a perspective projection.
func (c *Context) Frustum(left, right, bottom, top, near, far float32) {
	c.activeStack().mulTop(glmath.Frustum(left, right, bottom, top, near, far))
}

// SetViewport stores the viewport as floats.
func (c *Context) SetViewport(x, y, width, height float32) {
	c.viewport = Viewport{X: x, Y: y, Width: width, Height: height}
}

// ViewportState returns the last-stored viewport, mostly useful to tests.
func (c *Context) ViewportState() Viewport {
	return c.viewport
}

// Clear zeroes the color buffer and resets the depth buffer to 1.0. The
// legacy bitmask argument is ignored.
func (c *Context) Clear() {
	c.Framebuffer.Clear()
}

// BindTexture sets the active texture index, growing the table so it is
// addressable.
func (c *Context) BindTexture(name uint32) {
	c.boundTexture = name
	c.textures.Ensure(name)
}

// TexImage2D uploads a level-0 2D texture into the bound texture slot.
func (c *Context) TexImage2D(target uint32, level, internalFormat int32, width, height int, format, xtype uint32, pixels []byte) {
	c.textures.Ensure(c.boundTexture)
	c.textures.Upload(c.boundTexture, target, level, internalFormat, width, height, format, xtype, pixels)
}

// TexCoord2f updates the current texture coordinate; it is not reset
// between primitives.
func (c *Context) TexCoord2f(s, t float32) {
	c.texCoord = glmath.NewVec4(s, t, 0, 1)
}
