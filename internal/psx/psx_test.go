package psx

import (
	"image/color"
	"testing"
)

func TestColor555(t *testing.T) {
	tests := []struct {
		in   uint16
		want color.NRGBA
	}{
		{0x0000, color.NRGBA{0, 0, 0, 0}},
		{0x8000, color.NRGBA{0, 0, 0, 255}},
		{0x001F, color.NRGBA{255, 0, 0, 255}},
		{0x03E0, color.NRGBA{0, 255, 0, 255}},
		{0x7C00, color.NRGBA{0, 0, 255, 255}},
		{0x7FFF, color.NRGBA{255, 255, 255, 255}},
		{0x0010, color.NRGBA{131, 0, 0, 255}}, // 16*255/31
	}
	for _, tt := range tests {
		if got := Color555(tt.in); got != tt.want {
			t.Errorf("Color555(%#04x) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFixedPoint(t *testing.T) {
	tests := []struct {
		raw  uint16
		want int32
	}{
		{0, 0},
		{255, 255},
		{0x7F9B, 0x7F9B},
		{0x7F9C, 0x7F9C - 0x10000},
		{0xFFFF, -1},
		{0xFF01, -255},
	}
	for _, tt := range tests {
		if got := Signed(tt.raw); got != tt.want {
			t.Errorf("Signed(%#x) = %d, want %d", tt.raw, got, tt.want)
		}
	}
	if got := Fixed255(0xFF01); got != -1 {
		t.Errorf("Fixed255(0xFF01) = %v, want -1", got)
	}
	if got := Fixed255(510); got != 2 {
		t.Errorf("Fixed255(510) = %v, want 2", got)
	}
	if got := Fixed4096(0x2000); got != 2 {
		t.Errorf("Fixed4096(0x2000) = %v, want 2", got)
	}
}
