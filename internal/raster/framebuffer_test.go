package raster

import "testing"

func TestClearResetsBuffers(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	for i := range fb.Color {
		fb.Color[i] = 0x7F
	}
	for i := range fb.Depth {
		fb.Depth[i] = 0
	}
	fb.Clear()

	for i, c := range fb.Color {
		if c != 0 {
			t.Fatalf("color[%d] = %v, want 0 after clear", i, c)
		}
	}
	for i, d := range fb.Depth {
		if d != 1.0 {
			t.Fatalf("depth[%d] = %v, want 1.0 after clear", i, d)
		}
	}
}

func TestWritePixelBounds(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.writePixel(-1, 0, 1, 2, 3)
	fb.writePixel(0, 5, 1, 2, 3)
	for _, c := range fb.Color {
		if c != 0 {
			t.Fatalf("out-of-bounds write should be suppressed, got color byte %v", c)
		}
	}

	fb.writePixel(1, 1, 10, 20, 30)
	i := (1 + 1*2) * 4
	if fb.Color[i] != 30 || fb.Color[i+1] != 20 || fb.Color[i+2] != 10 {
		t.Fatalf("expected BGRX order, got %v", fb.Color[i:i+4])
	}
}
