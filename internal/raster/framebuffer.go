// Package raster implements the software framebuffer and the
// perspective-correct barycentric triangle rasterizer with Z-buffering.
package raster

// Framebuffer holds the color and depth buffers produced by the pipeline.
// The color buffer is BGRX, one byte per channel, the X byte left unused;
// the depth buffer is one float32 per pixel (the legacy source oversizes
// its depth buffer by 4x, which this implementation does not reproduce).
type Framebuffer struct {
	Width, Height int
	Color         []byte
	Depth         []float32
}

// NewFramebuffer allocates a cleared framebuffer of the given size.
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{
		Width:  width,
		Height: height,
		Color:  make([]byte, width*height*4),
		Depth:  make([]float32, width*height),
	}
	fb.Clear()
	return fb
}

// Clear zeroes the color buffer and resets every depth cell to 1.0.
func (fb *Framebuffer) Clear() {
	for i := range fb.Color {
		fb.Color[i] = 0
	}
	for i := range fb.Depth {
		fb.Depth[i] = 1.0
	}
}

// writePixel writes color (R,G,B, each in [0,255]) to (x,y) in BGRX order.
// Out-of-bounds writes are silently suppressed.
func (fb *Framebuffer) writePixel(x, y int, r, g, b byte) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	i := (x + y*fb.Width) * 4
	fb.Color[i+0] = b
	fb.Color[i+1] = g
	fb.Color[i+2] = r
}
