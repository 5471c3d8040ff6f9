package glmath

import (
	math "github.com/chewxy/math32"
)

// Mat4 is a row-major 4x4 matrix: m[row][col].
type Mat4 struct {
	m [4][4]float32
}

// Identity returns the 4x4 identity matrix.
func Identity() Mat4 {
	return Mat4{m: [4][4]float32{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

// NewMat4Rows builds a Mat4 from four rows given as [4]float32.
func NewMat4Rows(r0, r1, r2, r3 [4]float32) Mat4 {
	return Mat4{m: [4][4]float32{r0, r1, r2, r3}}
}

// At returns the element at (row, col).
func (a Mat4) At(row, col int) float32 {
	return a.m[row][col]
}

// row returns row i of a as a Vec4, used internally for dot-product style
// multiplication.
func (a Mat4) row(i int) Vec4 {
	return Vec4{a.m[i][0], a.m[i][1], a.m[i][2], a.m[i][3]}
}

// col returns column j of a as a Vec4.
func (a Mat4) col(j int) Vec4 {
	return Vec4{a.m[0][j], a.m[1][j], a.m[2][j], a.m[3][j]}
}

// Mul computes the matrix product a*b: result[i][j] = dot(row_i(a), col_j(b)).
func Mul(a, b Mat4) Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		ri := a.row(i)
		for j := 0; j < 4; j++ {
			out.m[i][j] = ri.Dot(b.col(j))
		}
	}
	return out
}

// MulVec computes result = a*v: result[i] = dot(row_i(a), v).
func MulVec(a Mat4, v Vec4) Vec4 {
	return Vec4{
		X: a.row(0).Dot(v),
		Y: a.row(1).Dot(v),
		Z: a.row(2).Dot(v),
		W: a.row(3).Dot(v),
	}
}

// MulAssign sets *a = (*a) * b, the in-place right-multiply every matrix
// stack operation uses to compose a new transform onto the current top.
func MulAssign(a *Mat4, b Mat4) {
	*a = Mul(*a, b)
}

// Translate returns the translation matrix for (x,y,z).
func Translate(x, y, z float32) Mat4 {
	return NewMat4Rows(
		[4]float32{1, 0, 0, x},
		[4]float32{0, 1, 0, y},
		[4]float32{0, 0, 1, z},
		[4]float32{0, 0, 0, 1},
	)
}

// Scale returns the scaling matrix for (x,y,z).
func Scale(x, y, z float32) Mat4 {
	return NewMat4Rows(
		[4]float32{x, 0, 0, 0},
		[4]float32{0, y, 0, 0},
		[4]float32{0, 0, z, 0},
		[4]float32{0, 0, 0, 1},
	)
}

// Rotate returns the Rodrigues rotation matrix for angleDegrees about the
// axis (x,y,z), which is normalized first. Matches the legacy glRotatef
// convention of degrees, not radians.
func Rotate(angleDegrees, x, y, z float32) Mat4 {
	norm := math.Sqrt(x*x + y*y + z*z)
	if norm != 0 {
		x, y, z = x/norm, y/norm, z/norm
	}
	s, c := math.Sincos(angleDegrees * (math.Pi / 180))
	t := 1 - c
	return NewMat4Rows(
		[4]float32{x*x*t + c, x*y*t - z*s, x*z*t + y*s, 0},
		[4]float32{y*x*t + z*s, y*y*t + c, y*z*t - x*s, 0},
		[4]float32{z*x*t - y*s, z*y*t + x*s, z*z*t + c, 0},
		[4]float32{0, 0, 0, 1},
	)
}

// Ortho returns the orthographic projection matrix for the given clip
// planes, in the legacy glOrtho layout.
func Ortho(left, right, bottom, top, near, far float32) Mat4 {
	rpl, rml := right+left, right-left
	tpb, tmb := top+bottom, top-bottom
	fpn, fmn := far+near, far-near
	return NewMat4Rows(
		[4]float32{2 / rml, 0, 0, -rpl / rml},
		[4]float32{0, 2 / tmb, 0, -tpb / tmb},
		[4]float32{0, 0, -2 / fmn, -fpn / fmn},
		[4]float32{0, 0, 0, 1},
	)
}

// Frustum returns the perspective projection matrix for the given clip
// planes, in the legacy glFrustum layout.
func Frustum(left, right, bottom, top, near, far float32) Mat4 {
	rpl, rml := right+left, right-left
	tpb, tmb := top+bottom, top-bottom
	fpn, fmn := far+near, far-near
	return NewMat4Rows(
		[4]float32{2 * near / rml, 0, rpl / rml, 0},
		[4]float32{0, 2 * near / tmb, tpb / tmb, 0},
		[4]float32{0, 0, -fpn / fmn, -2 * far * near / fmn},
		[4]float32{0, 0, -1, 0},
	)
}
