//go:build windows

package main

// GL enum values this driver recognizes, matching the fixed legacy
// encoding.
const (
	glTextureTarget2D = 0x0DE1
	glUnsignedByte    = 0x1401
	glModelView       = 0x1700
	glProjection      = 0x1701
	glRGB             = 0x1907
	glRGBA            = 0x1908
	glLuminance       = 0x1909
	glLuminanceAlpha  = 0x190A
)
