package tex

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image/color"
	"testing"

	"ff7-asset-extract/internal/binreader"
)

var (
	red         = color.NRGBA{255, 0, 0, 255}
	green       = color.NRGBA{0, 255, 0, 255}
	blue        = color.NRGBA{0, 0, 255, 255}
	white       = color.NRGBA{255, 255, 255, 255}
	transparent = color.NRGBA{}
)

func bgra(cs ...color.NRGBA) []byte {
	var out []byte
	for _, c := range cs {
		out = append(out, c.B, c.G, c.R, c.A)
	}
	return out
}

func build(t *testing.T, h Header, payload ...[]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, &h); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != HeaderSize {
		t.Fatalf("header encodes to %#x bytes, want %#x", buf.Len(), HeaderSize)
	}
	for _, p := range payload {
		buf.Write(p)
	}
	return buf.Bytes()
}

func palettedHeader(w, h, colors, palettes int) Header {
	return Header{
		Version:          1,
		Width:            uint32(w),
		Height:           uint32(h),
		BitDepth:         8,
		HasPalette:       1,
		ColorsPerPalette: uint32(colors),
		PaletteCount:     uint32(palettes),
		PaletteSize:      uint32(colors * palettes),
		BytesPerPixel:    1,
	}
}

func pixels(im *Image) []color.NRGBA {
	b := im.Bounds()
	var out []color.NRGBA
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out = append(out, im.NRGBAAt(x, y))
		}
	}
	return out
}

func equalColors(t *testing.T, got, want []color.NRGBA) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d pixels, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pixel %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDecodeRejectsVersion(t *testing.T) {
	for _, v := range []uint32{0, 2, 0xFFFFFFFF} {
		h := palettedHeader(64, 64, 16, 1)
		h.Version = v
		// No palette or pixel data follows: the version check must come first.
		_, err := Decode(build(t, h), Strict)
		if !errors.Is(err, ErrUnsupportedVersion) {
			t.Fatalf("version %d: err = %v, want ErrUnsupportedVersion", v, err)
		}
		if !errors.Is(err, binreader.ErrUnsupportedFormat) {
			t.Fatalf("version %d: err = %v does not wrap ErrUnsupportedFormat", v, err)
		}
	}
}

func TestDecodeShortHeader(t *testing.T) {
	_, err := Decode(make([]byte, HeaderSize-1), Strict)
	if !errors.Is(err, binreader.ErrOutOfBounds) {
		t.Fatalf("err = %v, want ErrOutOfBounds", err)
	}
}

func TestDecodePaletted(t *testing.T) {
	data := build(t, palettedHeader(2, 2, 4, 1), bgra(red, green, blue, white), []byte{0, 1, 2, 3})
	f, err := Decode(data, Strict)
	if err != nil {
		t.Fatal(err)
	}
	if !f.Paletted() || len(f.Palettes) != 1 || len(f.Palettes[0]) != 4 {
		t.Fatalf("palettes = %v", f.Palettes)
	}
	im, err := f.Image(0)
	if err != nil {
		t.Fatal(err)
	}
	if im.Format != FormatPaletted8 {
		t.Fatalf("format = %v", im.Format)
	}
	equalColors(t, pixels(im), []color.NRGBA{red, green, blue, white})
}

func TestPaletteSelection(t *testing.T) {
	data := build(t, palettedHeader(2, 1, 2, 2), bgra(red, green, blue, white), []byte{1, 0})
	f, err := Decode(data, Strict)
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Palettes) != 2 {
		t.Fatalf("got %d palettes, want 2", len(f.Palettes))
	}
	im, err := f.Image(1)
	if err != nil {
		t.Fatal(err)
	}
	equalColors(t, pixels(im), []color.NRGBA{white, blue})

	if _, err := f.Image(2); !errors.Is(err, binreader.ErrOutOfBounds) {
		t.Fatalf("palette 2: err = %v", err)
	}
}

func TestPaletteIndexModes(t *testing.T) {
	data := build(t, palettedHeader(2, 1, 2, 1), bgra(red, green), []byte{1, 7})

	strict, err := Decode(data, Strict)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := strict.Image(0); !errors.Is(err, ErrPaletteIndexOutOfBounds) {
		t.Fatalf("strict: err = %v, want ErrPaletteIndexOutOfBounds", err)
	}

	lenient, err := Decode(data, Lenient)
	if err != nil {
		t.Fatal(err)
	}
	im, err := lenient.Image(0)
	if err != nil {
		t.Fatalf("lenient: %v", err)
	}
	equalColors(t, pixels(im), []color.NRGBA{green, transparent})
}

func TestDecodeTruncatedIndices(t *testing.T) {
	data := build(t, palettedHeader(4, 4, 4, 1), bgra(red, green, blue, white), []byte{0, 1, 2})
	if _, err := Decode(data, Strict); !errors.Is(err, binreader.ErrOutOfBounds) {
		t.Fatalf("err = %v, want ErrOutOfBounds", err)
	}
}

func TestDecodeOversizedHeader(t *testing.T) {
	huge := palettedHeader(1, 1, 1, 1)
	huge.PaletteSize = 0xFFFFFFFF

	wide := palettedHeader(1, 1, 1, 1)
	wide.Width, wide.Height = 1<<31, 1<<31

	tests := []struct {
		name    string
		h       Header
		payload []byte
	}{
		{"direct pixel count wraps", Header{Version: 1, Width: 1 << 31, Height: 1 << 31, BytesPerPixel: 4}, nil},
		{"direct default depth wraps", Header{Version: 1, Width: 1 << 31, Height: 1 << 31}, bgra(red)},
		{"direct exceeds payload", Header{Version: 1, Width: 0xFFFF, Height: 0xFFFF, BytesPerPixel: 2}, make([]byte, 64)},
		{"index plane wraps", wide, bgra(red)},
		{"palette count exceeds payload", huge, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Decode(build(t, tt.h, tt.payload), Strict)
			if !errors.Is(err, binreader.ErrOutOfBounds) {
				t.Fatalf("err = %v, want ErrOutOfBounds", err)
			}
			if f != nil {
				t.Fatalf("decoded %d pixels from an oversized header", len(f.Pixels))
			}
		})
	}
}

func TestDecodeZeroColorsPerPalette(t *testing.T) {
	h := palettedHeader(1, 1, 0, 1)
	h.PaletteSize = 16
	if _, err := Decode(build(t, h, []byte{0}), Strict); !errors.Is(err, binreader.ErrInvalidFormat) {
		t.Fatalf("err = %v, want ErrInvalidFormat", err)
	}
}

func TestDecodeDirectBGRA(t *testing.T) {
	h := Header{Version: 1, Width: 2, Height: 1, BitDepth: 32, BytesPerPixel: 4}
	half := color.NRGBA{10, 20, 30, 128}
	f, err := Decode(build(t, h, bgra(blue, half)), Strict)
	if err != nil {
		t.Fatal(err)
	}
	im, err := f.Image(0)
	if err != nil {
		t.Fatal(err)
	}
	if im.Format != FormatDirect {
		t.Fatalf("format = %v", im.Format)
	}
	equalColors(t, pixels(im), []color.NRGBA{blue, half})

	got := im.ColorF(1, 0)
	if got[0] != 10.0/255 || got[3] != 128.0/255 {
		t.Fatalf("ColorF = %v", got)
	}
}

func TestDecodeDirect1555(t *testing.T) {
	h := Header{Version: 1, Width: 3, Height: 1, BitDepth: 16, BytesPerPixel: 2}
	h.Format = PixelFormat{
		RedBits: 5, GreenBits: 5, BlueBits: 5, AlphaBits: 1,
		RedMask: 0x7C00, GreenMask: 0x03E0, BlueMask: 0x001F, AlphaMask: 0x8000,
		RedShift: 10, GreenShift: 5, BlueShift: 0, AlphaShift: 15,
		RedMax: 31, GreenMax: 31, BlueMax: 31, AlphaMax: 1,
	}
	raw := []byte{0x00, 0xFC, 0xE0, 0x83, 0x1F, 0x00}
	f, err := Decode(build(t, h, raw), Strict)
	if err != nil {
		t.Fatal(err)
	}
	equalColors(t, f.Pixels, []color.NRGBA{red, green, {0, 0, 255, 0}})
}

func TestRenderRegion(t *testing.T) {
	// 3x2 image:
	// 0 1 2
	// 3 0 1
	data := build(t, palettedHeader(3, 2, 4, 1), bgra(red, green, blue, white), []byte{0, 1, 2, 3, 0, 1})
	f, err := Decode(data, Strict)
	if err != nil {
		t.Fatal(err)
	}
	im, err := f.RenderRegion(Region{X: 1, Y: 0, W: 2, H: 2})
	if err != nil {
		t.Fatal(err)
	}
	equalColors(t, pixels(im), []color.NRGBA{green, blue, red, green})

	if _, err := f.RenderRegion(Region{X: 2, Y: 0, W: 2, H: 1}); !errors.Is(err, binreader.ErrOutOfBounds) {
		t.Fatalf("overflowing region: err = %v", err)
	}
}

func TestRenderComposite(t *testing.T) {
	// 2x2 image, two palettes: {red, green} and {blue, white}.
	data := build(t, palettedHeader(2, 2, 2, 2), bgra(red, green, blue, white), []byte{0, 1, 1, 0})
	f, err := Decode(data, Strict)
	if err != nil {
		t.Fatal(err)
	}
	im, err := f.RenderComposite(
		Region{X: 0, Y: 0, W: 1, H: 2, Palette: 0},
		Region{X: 1, Y: 0, W: 1, H: 1, Palette: 1},
	)
	if err != nil {
		t.Fatal(err)
	}
	if b := im.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Fatalf("bounds = %v", b)
	}
	equalColors(t, pixels(im), []color.NRGBA{red, white, green, transparent})
}

func TestDecodeSource(t *testing.T) {
	data := build(t, palettedHeader(1, 1, 1, 1), bgra(white), []byte{0})
	f, err := DecodeSource(bytes.NewReader(data), Lenient)
	if err != nil {
		t.Fatal(err)
	}
	if f.Mode != Lenient || f.Info() == "" {
		t.Fatalf("mode = %v", f.Mode)
	}
}
