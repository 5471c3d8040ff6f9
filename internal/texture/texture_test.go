package texture

import "testing"

func TestUploadAllZero(t *testing.T) {
	tt := NewTable()
	tt.Ensure(1)
	pixels := make([]byte, 2*2*4)
	tt.Upload(1, Target2D, 0, FormatRGBA, 2, 2, FormatRGBA, TypeUnsignedByte, pixels)

	tex := tt.At(1)
	for _, c := range tex.Data {
		if c.X != 0 || c.Y != 0 || c.Z != 0 || c.W != 0 {
			t.Fatalf("expected all-zero texel, got %+v", c)
		}
	}
}

func TestUploadWhiteDivisor(t *testing.T) {
	tt := NewTable()
	tt.Ensure(1)
	pixels := []byte{255, 255, 255, 255}
	tt.Upload(1, Target2D, 0, FormatRGBA, 1, 1, FormatRGBA, TypeUnsignedByte, pixels)

	tex := tt.At(1)
	c := tex.Data[0]
	want := float32(255) / 256.0
	const eps = 1e-6
	if abs(c.X-want) > eps || abs(c.Y-want) > eps || abs(c.Z-want) > eps || abs(c.W-want) > eps {
		t.Fatalf("got %+v, want all components ~%v", c, want)
	}
}

func TestUploadUnsupportedCombinationDropped(t *testing.T) {
	tt := NewTable()
	tt.Ensure(1)
	// Unsupported type (not UNSIGNED_BYTE): silently ignored, texture stays
	// default-constructed.
	tt.Upload(1, Target2D, 0, FormatRGBA, 4, 4, FormatRGBA, 0x1406 /* FLOAT */, make([]byte, 4*4*4))

	tex := tt.At(1)
	if !tex.Empty() {
		t.Fatalf("expected texture to remain empty after unsupported upload, got %+v", tex)
	}
}

func TestBindTextureGrowsTable(t *testing.T) {
	tt := NewTable()
	tt.Ensure(5)
	if tt.At(5).Width != 0 || tt.At(5).Height != 0 {
		t.Fatalf("expected freshly grown slot to be default-constructed")
	}
	if !tt.At(0).Empty() {
		t.Fatalf("expected default texture 0 to exist and be empty")
	}
}

func TestSampleWrap(t *testing.T) {
	tt := NewTable()
	tt.Ensure(1)
	pixels := []byte{
		255, 0, 0, 255, 0, 255, 0, 255,
		0, 0, 255, 255, 255, 255, 255, 255,
	}
	tt.Upload(1, Target2D, 0, FormatRGBA, 2, 2, FormatRGBA, TypeUnsignedByte, pixels)
	tex := tt.At(1)

	corners := []struct {
		s, t       float32
		wantR, wantG, wantB float32
	}{
		{0, 0, 255.0 / 256, 0, 0},
		{0.99, 0, 0, 255.0 / 256, 0},
		{0, 0.99, 0, 0, 255.0 / 256},
		{0.99, 0.99, 255.0 / 256, 255.0 / 256, 255.0 / 256},
		// Wrapped coordinates should behave identically to their [0,1) counterparts.
		{1.0, 1.0, 255.0 / 256, 0, 0},
	}
	for _, c := range corners {
		got := tex.Sample(c.s, c.t)
		const eps = 1e-6
		if abs(got.X-c.wantR) > eps || abs(got.Y-c.wantG) > eps || abs(got.Z-c.wantB) > eps {
			t.Fatalf("Sample(%v,%v): got %+v, want (%v,%v,%v)", c.s, c.t, got, c.wantR, c.wantG, c.wantB)
		}
	}
}

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
