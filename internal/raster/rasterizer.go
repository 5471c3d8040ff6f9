package raster

import (
	"github.com/tinyrange/minigl/internal/glmath"
)

// Vertex is a rasterizer input vertex: screen-space x,y (already viewport
// mapped), NDC-ish z, and the clip-space w retained for perspective-correct
// interpolation.
type Vertex struct {
	Position glmath.Vec4
}

// FragmentShader maps a perspective-corrected barycentric triple to an RGB
// color in [0,1].
type FragmentShader func(bary glmath.Vec3) glmath.Vec3

// nearPlaneReject is the deliberately coarse near-plane clip substitute:
// a triangle with any vertex at or below this w is skipped whole rather
// than properly clipped.
const nearPlaneReject = 0.1

// DrawTriangle rasterizes the triangle verts using shader to produce each
// covered pixel's color, following the legacy source's half-space edge
// function (perp·dot) with 1/z depth test and perspective-correct
// barycentric interpolation.
func (fb *Framebuffer) DrawTriangle(verts [3]Vertex, shader FragmentShader) {
	p0, p1, p2 := verts[0].Position, verts[1].Position, verts[2].Position

	if p0.W <= nearPlaneReject || p1.W <= nearPlaneReject || p2.W <= nearPlaneReject {
		return
	}

	minX, minY := fb.Width, fb.Height
	maxX, maxY := 0, 0
	for _, p := range [3]glmath.Vec4{p0, p1, p2} {
		minX = minInt(minX, int(p.X))
		minY = minInt(minY, int(p.Y))
		maxX = maxInt(maxX, int(p.X))
		maxY = maxInt(maxY, int(p.Y))
	}
	minX = clampInt(minX-1, 0, fb.Width)
	minY = clampInt(minY-1, 0, fb.Height)
	maxX = clampInt(maxX+1, 0, fb.Width)
	maxY = clampInt(maxY+1, 0, fb.Height)

	invZ0, invZ1, invZ2 := 1/p0.Z, 1/p1.Z, 1/p2.Z
	invW0, invW1, invW2 := 1/p0.W, 1/p1.W, 1/p2.W

	a := glmath.NewVec2(p0.X, p0.Y)
	b := glmath.NewVec2(p1.X, p1.Y)
	c := glmath.NewVec2(p2.X, p2.Y)
	invArea := 1 / b.Sub(a).Perp().Dot(c.Sub(a))

	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			p := glmath.NewVec2(float32(x), float32(y))

			alpha := b.Sub(p).Perp().Dot(c.Sub(p)) * invArea
			beta := c.Sub(p).Perp().Dot(a.Sub(p)) * invArea
			gamma := a.Sub(p).Perp().Dot(b.Sub(p)) * invArea

			if alpha < 0 || beta < 0 || gamma < 0 {
				continue
			}

			z := 1 / (alpha*invZ0 + beta*invZ1 + gamma*invZ2)
			di := x + y*fb.Width
			if z >= fb.Depth[di] {
				continue
			}
			fb.Depth[di] = z

			w := 1 / (alpha*invW0 + beta*invW1 + gamma*invW2)
			baryCorrected := glmath.NewVec3(
				alpha*invW0*w,
				beta*invW1*w,
				gamma*invW2*w,
			)

			color := shader(baryCorrected).Scale(255)
			fb.writePixel(x, y, byte(color.X), byte(color.Y), byte(color.Z))
		}
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
