package glmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

const epsilon = 1e-5

func approxEqual(t *testing.T, got, want Mat4) {
	t.Helper()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if math.Abs(float64(got.At(i, j)-want.At(i, j))) > epsilon {
				t.Fatalf("matrix mismatch at [%d][%d]: got %v want %v\ngot=%+v\nwant=%+v",
					i, j, got.At(i, j), want.At(i, j), got, want)
			}
		}
	}
}

func TestIdentityMul(t *testing.T) {
	id := Identity()
	m := Translate(1, 2, 3)
	require.Equal(t, m, Mul(id, m))
	require.Equal(t, m, Mul(m, id))
}

func TestMulVec(t *testing.T) {
	m := Translate(1, 2, 3)
	v := NewVec4(0, 0, 0, 1)
	got := MulVec(m, v)
	want := NewVec4(1, 2, 3, 1)
	if got != want {
		t.Fatalf("MulVec: got %+v, want %+v", got, want)
	}
}

func TestMulAssign(t *testing.T) {
	top := Identity()
	MulAssign(&top, Translate(1, 0, 0))
	MulAssign(&top, Scale(2, 2, 2))
	v := MulVec(top, NewVec4(1, 1, 1, 1))
	// top = Translate * Scale, applied to (1,1,1,1):
	// scale first in composed transform since top = T*S and MulVec computes top*v = T*(S*v)
	want := NewVec4(3, 2, 2, 1)
	if v != want {
		t.Fatalf("MulAssign composed transform: got %+v, want %+v", v, want)
	}
}

func TestRotateInverse(t *testing.T) {
	r := Rotate(37, 1, 2, 3)
	rInv := Rotate(-37, 1, 2, 3)
	got := Mul(r, rInv)
	approxEqual(t, got, Identity())
}

func TestRotateAxisAligned(t *testing.T) {
	// 90 degree rotation about Z should send (1,0,0,1) to (0,1,0,1).
	r := Rotate(90, 0, 0, 1)
	got := MulVec(r, NewVec4(1, 0, 0, 1))
	want := NewVec4(0, 1, 0, 1)
	if math.Abs(float64(got.X-want.X)) > epsilon ||
		math.Abs(float64(got.Y-want.Y)) > epsilon ||
		math.Abs(float64(got.Z-want.Z)) > epsilon {
		t.Fatalf("Rotate: got %+v, want %+v", got, want)
	}
}

func TestOrthoRoundTrip(t *testing.T) {
	ortho := Ortho(-2, 3, -1, 4, 1, 10)
	v := NewVec4(0.5, 0.5, 0.5, 1)
	clip := MulVec(ortho, v)

	// An orthographic projection's inverse undoes the affine remap exactly.
	inv := orthoInverse(-2, 3, -1, 4, 1, 10)
	restored := MulVec(inv, clip)

	if math.Abs(float64(restored.X-v.X)) > epsilon ||
		math.Abs(float64(restored.Y-v.Y)) > epsilon ||
		math.Abs(float64(restored.Z-v.Z)) > epsilon {
		t.Fatalf("ortho round-trip: got %+v, want %+v", restored, v)
	}
}

// orthoInverse builds the inverse of Ortho(l,r,b,t,n,f) directly from the
// closed form (each axis is an independent affine remap, easily inverted),
// used only to exercise the round-trip property of Ortho.
func orthoInverse(left, right, bottom, top, near, far float32) Mat4 {
	rml, tmb, fmn := right-left, top-bottom, far-near
	return NewMat4Rows(
		[4]float32{rml / 2, 0, 0, (left + right) / 2},
		[4]float32{0, tmb / 2, 0, (bottom + top) / 2},
		[4]float32{0, 0, -fmn / 2, -(near + far) / 2},
		[4]float32{0, 0, 0, 1},
	)
}
