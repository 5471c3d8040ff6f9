//go:build windows

package host

import (
	"unsafe"

	"github.com/tinyrange/minigl/internal/raster"
)

const (
	biRGB         = 0
	dibRGBColors  = 0
	srcCopy       = 0x00CC0020
	bitmapV1Size  = 40 // BITMAPINFOHEADER
	planesSingle  = 1
	bitCount32bpp = 32
)

var procStretchDIBits = gdi32.NewProc("StretchDIBits")

func init() {
	if err := mustFindProc(procStretchDIBits); err != nil {
		panic(err)
	}
}

// bitmapInfoHeader mirrors BITMAPINFOHEADER exactly (win32 layout, 40
// bytes).
type bitmapInfoHeader struct {
	size          uint32
	width         int32
	height        int32
	planes        uint16
	bitCount      uint16
	compression   uint32
	sizeImage     uint32
	xPelsPerMeter int32
	yPelsPerMeter int32
	clrUsed       uint32
	clrImportant  uint32
}

// BlitFramebuffer stretches fb's color buffer onto hdc's client area using
// StretchDIBits. fb's row 0 is the bottom of the rendered image (the
// viewport mapping puts NDC y=-1 at row 0), which is exactly what a
// positive (bottom-up) DIB height means, so height is passed unnegated.
func BlitFramebuffer(hdc uintptr, fb *raster.Framebuffer) error {
	bmi := bitmapInfoHeader{
		size:        bitmapV1Size,
		width:       int32(fb.Width),
		height:      int32(fb.Height),
		planes:      planesSingle,
		bitCount:    bitCount32bpp,
		compression: biRGB,
	}

	ret, _, _ := procStretchDIBits.Call(
		hdc,
		0, 0, uintptr(fb.Width), uintptr(fb.Height),
		0, 0, uintptr(fb.Width), uintptr(fb.Height),
		uintptr(unsafe.Pointer(&fb.Color[0])),
		uintptr(unsafe.Pointer(&bmi)),
		dibRGBColors,
		srcCopy,
	)
	if ret == 0 {
		return winErr("StretchDIBits")
	}
	return nil
}
