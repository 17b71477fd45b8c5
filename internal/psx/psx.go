// Package psx holds PlayStation data conventions shared by the decoders:
// 15-bit VRAM colors and the fixed-point coordinate encoding.
package psx

import "image/color"

// Color555 converts a 16-bit VRAM word (R in bits 0-4, G 5-9, B 10-14,
// STP in 15) to NRGBA. Channels scale as c*255/31. The all-zero word is
// the hardware's transparent color.
func Color555(v uint16) color.NRGBA {
	r := uint32(v & 0x1F)
	g := uint32((v >> 5) & 0x1F)
	b := uint32((v >> 10) & 0x1F)
	a := uint8(255)
	if v == 0 {
		a = 0
	}
	return color.NRGBA{
		R: uint8(r * 255 / 31),
		G: uint8(g * 255 / 31),
		B: uint8(b * 255 / 31),
		A: a,
	}
}

// signThreshold is the raw value above which a coordinate is negative.
// The game tools use 0x7F9B rather than 0x7FFF.
const signThreshold = 0x7F9B

// Signed sign-extends a raw coordinate word using the 0x7F9B threshold.
func Signed(raw uint16) int32 {
	if raw > signThreshold {
		return int32(raw) - 0x10000
	}
	return int32(raw)
}

// Fixed255 decodes a mesh/camera coordinate.
func Fixed255(raw uint16) float32 {
	return float32(Signed(raw)) / 255
}

// Fixed4096 decodes a world-map placement coordinate.
func Fixed4096(raw uint16) float32 {
	return float32(Signed(raw)) / 4096
}
