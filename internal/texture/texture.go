// Package texture implements the fixed-function texture store: a dense,
// integer-named table of 2D textures with upload and nearest-neighbor
// sampling with wrap.
package texture

import (
	"log/slog"

	"github.com/tinyrange/minigl/internal/glmath"
)

// GL enum values this package recognizes, mirrored from the ABI surface
// so callers don't need to import the cgo package.
const (
	Target2D = 0x0DE1 // GL_TEXTURE_2D

	TypeUnsignedByte = 0x1401 // GL_UNSIGNED_BYTE

	FormatRGB            = 0x1907 // GL_RGB
	FormatRGBA           = 0x1908 // GL_RGBA
	FormatLuminance      = 0x1909 // GL_LUMINANCE
	FormatLuminanceAlpha = 0x190A // GL_LUMINANCE_ALPHA
)

// internalFormatShorthand maps the legacy glTexImage2D internalformat
// shorthand integers (1..4) onto the named formats, exactly as
// original_source/src/lib.rs's glTexImage2D match arm does.
func internalFormatShorthand(v int32) int32 {
	switch v {
	case 1:
		return FormatLuminance
	case 2:
		return FormatLuminanceAlpha
	case 3:
		return FormatRGB
	case 4:
		return FormatRGBA
	default:
		return v
	}
}

// Texture is a single uploaded 2D texture: width*height RGBA samples in
// [0,1], row-major.
type Texture struct {
	Width, Height int
	Data          []glmath.Vec4
}

// Empty reports whether t has no pixel data, the condition under which the
// rasterizer's fragment shader falls back to the barycentric-as-color debug
// path.
func (t *Texture) Empty() bool {
	return t.Width == 0 || t.Height == 0
}

// Sample performs nearest-neighbor sampling with wrap at texture coordinate
// (s, t). Callers must check Empty first; Sample on an empty texture
// divides by zero.
func (t *Texture) Sample(s, t2 float32) glmath.Vec3 {
	u := wrap01(s) * float32(t.Width)
	v := wrap01(t2) * float32(t.Height)
	x := int(u) % t.Width
	y := int(v) % t.Height
	if x < 0 {
		x += t.Width
	}
	if y < 0 {
		y += t.Height
	}
	return t.Data[x+y*t.Width].XYZ()
}

// wrap01 reduces f into [0,1) by floor subtraction, the GL_REPEAT wrap mode
// this store implements unconditionally.
func wrap01(f float32) float32 {
	f -= float32(int(f))
	if f < 0 {
		f++
	}
	return f
}

// Table is a dense, integer-named collection of textures, expanded on
// demand. Name 0 always exists and denotes the default empty texture.
type Table struct {
	textures []Texture
}

// NewTable returns a Table with only the default texture 0 present.
func NewTable() *Table {
	return &Table{textures: make([]Texture, 1)}
}

// Ensure grows the table so index name is addressable, default-constructing
// any newly created slots.
func (tt *Table) Ensure(name uint32) {
	if int(name) >= len(tt.textures) {
		grown := make([]Texture, name+1)
		copy(grown, tt.textures)
		tt.textures = grown
	}
}

// At returns a pointer to the texture named name. The caller must have
// called Ensure(name) (BindTexture does this automatically).
func (tt *Table) At(name uint32) *Texture {
	return &tt.textures[name]
}

// Upload implements texImage2D: it is a no-op unless (target, format, type)
// is the one combination this legacy-facing store supports
// (TEXTURE_2D, RGBA or LUMINANCE, UNSIGNED_BYTE), and unless format is RGBA
// and level is 0 — matching original_source/src/lib.rs's glTexImage2D body,
// which after validating the broader combination only actually stores data
// for RGBA level-0 uploads.
func (tt *Table) Upload(name uint32, target uint32, level int32, internalFormat int32, width, height int, format uint32, xtype uint32, pixels []byte) {
	internalFormat = internalFormatShorthand(internalFormat)

	if target != Target2D {
		slog.Debug("texture upload dropped: unsupported target", "target", target)
		return
	}
	if internalFormat != FormatRGB && internalFormat != FormatRGBA && internalFormat != FormatLuminance {
		slog.Debug("texture upload dropped: unsupported internal format", "internalFormat", internalFormat)
		return
	}
	if format != FormatRGBA && format != FormatLuminance {
		slog.Debug("texture upload dropped: unsupported format", "format", format)
		return
	}
	if xtype != TypeUnsignedByte {
		slog.Debug("texture upload dropped: unsupported type", "type", xtype)
		return
	}
	if format != FormatRGBA || level != 0 {
		return
	}

	tex := tt.At(name)
	tex.Width = width
	tex.Height = height
	tex.Data = make([]glmath.Vec4, width*height)

	if pixels == nil {
		return
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (x + y*width) * 4
			// Intentionally /256.0, not /255.0: preserved from the legacy
			// source's arithmetic.
			tex.Data[x+y*width] = glmath.NewVec4(
				float32(pixels[i])/256.0,
				float32(pixels[i+1])/256.0,
				float32(pixels[i+2])/256.0,
				float32(pixels[i+3])/256.0,
			)
		}
	}
}
