package glcore

import (
	"fmt"
	"log/slog"

	"github.com/tinyrange/minigl/internal/glmath"
	"github.com/tinyrange/minigl/internal/raster"
)

// Begin starts a new primitive, clearing the vertex buffer captured so far.
func (c *Context) Begin(mode PrimitiveMode) {
	c.current = primitive{mode: mode}
}

// Vertex2f pushes a vertex at (x,y,0,1) carrying the current texture
// coordinate.
func (c *Context) Vertex2f(x, y float32) {
	c.Vertex4f(x, y, 0, 1)
}

// Vertex3f pushes a vertex at (x,y,z,1) carrying the current texture
// coordinate.
func (c *Context) Vertex3f(x, y, z float32) {
	c.Vertex4f(x, y, z, 1)
}

// Vertex3fv pushes a vertex at (v[0],v[1],v[2],1) carrying the current
// texture coordinate.
func (c *Context) Vertex3fv(v [3]float32) {
	c.Vertex4f(v[0], v[1], v[2], 1)
}

// Vertex4f pushes a vertex at (x,y,z,w) carrying the current texture
// coordinate.
func (c *Context) Vertex4f(x, y, z, w float32) {
	c.current.vertices = append(c.current.vertices, vertex{
		position: glmath.NewVec4(x, y, z, w),
		texCoord: c.texCoord,
	})
}

// End executes the transform/triangulate/rasterize pipeline over the
// buffered vertices. Unimplemented primitive modes are a caller error;
// this logs and leaves the framebuffer untouched rather than aborting the
// process.
func (c *Context) End() error {
	verts := c.current.vertices
	if len(verts) == 0 {
		return nil
	}

	if !c.current.mode.triangulable() {
		err := fmt.Errorf("end: unimplemented primitive mode %d", c.current.mode)
		slog.Error("unimplemented primitive mode in end-primitive", "mode", c.current.mode)
		return err
	}

	proj := c.matrixStacks[Projection].top()
	modelview := c.matrixStacks[ModelView].top()
	pv := glmath.Mul(proj, modelview)

	transformed := make([]vertex, len(verts))
	for i, v := range verts {
		p := glmath.MulVec(pv, v.position)
		if p.W > 0 {
			p.X /= p.W
			p.Y /= p.W
			p.Z /= p.W
		}
		p.X = (p.X+1)*(c.viewport.Width/2) + c.viewport.X
		p.Y = (p.Y+1)*(c.viewport.Height/2) + c.viewport.Y
		transformed[i] = vertex{position: p, texCoord: v.texCoord}
	}

	tris := triangulate(c.current.mode, transformed)

	tex := c.textures.At(c.boundTexture)
	for _, tri := range tris {
		rv := [3]raster.Vertex{
			{Position: tri[0].position},
			{Position: tri[1].position},
			{Position: tri[2].position},
		}
		a, b, cc := tri[0], tri[1], tri[2]
		c.Framebuffer.DrawTriangle(rv, func(bary glmath.Vec3) glmath.Vec3 {
			if tex.Empty() {
				return bary
			}
			uv := a.texCoord.Scale(bary.X).Add(b.texCoord.Scale(bary.Y)).Add(cc.texCoord.Scale(bary.Z))
			return tex.Sample(uv.X, uv.Y)
		})
	}

	return nil
}

// triangulate converts a captured vertex buffer under primitive mode mode
// into a list of triangle triples, per each mode's fan/strip/quad rule.
// Callers must have already checked mode.triangulable().
func triangulate(mode PrimitiveMode, verts []vertex) [][3]vertex {
	var tris [][3]vertex
	n := len(verts)

	switch mode {
	case Triangles:
		for i := 0; i+2 <= n-1; i += 3 {
			tris = append(tris, [3]vertex{verts[i], verts[i+1], verts[i+2]})
		}

	case Quads:
		for i := 0; i+3 <= n-1; i += 4 {
			tris = append(tris, [3]vertex{verts[i], verts[i+1], verts[i+2]})
			tris = append(tris, [3]vertex{verts[i+2], verts[i+3], verts[i]})
		}

	case TriangleStrip:
		for i := 0; i <= n-3; i++ {
			if i%2 == 0 {
				tris = append(tris, [3]vertex{verts[i], verts[i+1], verts[i+2]})
			} else {
				tris = append(tris, [3]vertex{verts[i+1], verts[i], verts[i+2]})
			}
		}

	case TriangleFan, Polygon:
		for i := 1; i <= n-2; i++ {
			tris = append(tris, [3]vertex{verts[0], verts[i], verts[i+1]})
		}
	}

	return tris
}
