package tex

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image/color"

	"ff7-asset-extract/internal/binreader"
)

// Decode parses a TEX record starting at offset 0 of data.
func Decode(data []byte, mode Mode) (*File, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("tex: header needs %d bytes, have %d: %w", HeaderSize, len(data), binreader.ErrOutOfBounds)
	}

	var h Header
	if err := binary.Read(bytes.NewReader(data[:HeaderSize]), binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("tex: read header: %w", err)
	}
	if h.Version != SupportedVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.Version)
	}

	f := &File{Header: h, Mode: mode}
	r := binreader.New(data)
	if err := r.Seek(HeaderSize); err != nil {
		return nil, fmt.Errorf("tex: %w", err)
	}

	pixels := uint64(h.Width) * uint64(h.Height)
	if h.HasPalette == 0 {
		pixels, err := readDirect(r, &h, pixels)
		if err != nil {
			return nil, err
		}
		f.Pixels = pixels
		return f, nil
	}

	if h.ColorsPerPalette == 0 {
		return nil, fmt.Errorf("tex: paletted image with zero colors per palette: %w", binreader.ErrInvalidFormat)
	}
	count := h.PaletteSize / h.ColorsPerPalette
	if err := need(r, uint64(count)*uint64(h.ColorsPerPalette), 4, "palette colors"); err != nil {
		return nil, err
	}
	if left := uint64(r.Remaining()) - uint64(count)*uint64(h.ColorsPerPalette)*4; pixels > left {
		return nil, fmt.Errorf("tex: %dx%d index plane needs %d bytes, %d left after palettes: %w",
			h.Width, h.Height, pixels, left, binreader.ErrOutOfBounds)
	}
	f.Palettes = make([]Palette, count)
	for p := range f.Palettes {
		raw, err := r.Bytes(int(h.ColorsPerPalette) * 4)
		if err != nil {
			return nil, fmt.Errorf("tex: read palette %d: %w", p, err)
		}
		f.Palettes[p] = bgraColors(raw)
	}

	indices, err := r.Bytes(int(pixels))
	if err != nil {
		return nil, fmt.Errorf("tex: read %dx%d index plane: %w", h.Width, h.Height, err)
	}
	f.Indices = append([]byte(nil), indices...)
	return f, nil
}

// DecodeSource materializes src and decodes it.
func DecodeSource(src binreader.Source, mode Mode) (*File, error) {
	data, err := binreader.Bytes(src)
	if err != nil {
		return nil, err
	}
	return Decode(data, mode)
}

func bgraColors(raw []byte) []color.NRGBA {
	out := make([]color.NRGBA, len(raw)/4)
	for i := range out {
		b := raw[i*4:]
		out[i] = color.NRGBA{R: b[2], G: b[1], B: b[0], A: b[3]}
	}
	return out
}

// need fails unless count elements of size bytes remain. Counts come from the
// header, so the check divides instead of multiplying and runs before anything
// is allocated.
func need(r *binreader.Reader, count, size uint64, what string) error {
	if count > uint64(r.Remaining())/size {
		return fmt.Errorf("tex: %s need %d x %d bytes, have %d: %w", what, count, size, r.Remaining(), binreader.ErrOutOfBounds)
	}
	return nil
}

func readDirect(r *binreader.Reader, h *Header, pixels uint64) ([]color.NRGBA, error) {
	bpp := int(h.BytesPerPixel)
	if bpp == 0 {
		bpp = 4
	}
	if bpp < 2 || bpp > 4 {
		return nil, fmt.Errorf("tex: %d bytes per pixel: %w", bpp, binreader.ErrUnsupportedFormat)
	}
	if err := need(r, pixels, uint64(bpp), "pixels"); err != nil {
		return nil, err
	}
	n := int(pixels)
	raw, err := r.Bytes(n * bpp)
	if err != nil {
		return nil, fmt.Errorf("tex: read %dx%d pixels at %d bytes each: %w", h.Width, h.Height, bpp, err)
	}

	switch bpp {
	case 4:
		return bgraColors(raw), nil
	case 2, 3:
		out := make([]color.NRGBA, n)
		for i := range out {
			var v uint32
			for k := bpp - 1; k >= 0; k-- {
				v = v<<8 | uint32(raw[i*bpp+k])
			}
			out[i] = unpackPixel(v, &h.Format)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("tex: %d bytes per pixel: %w", bpp, binreader.ErrUnsupportedFormat)
	}
}

// unpackPixel extracts channels through the header's masks and shifts and
// scales each to 8 bits. A channel without a mask is opaque for alpha and
// zero otherwise.
func unpackPixel(v uint32, pf *PixelFormat) color.NRGBA {
	ch := func(mask, shift, maxv uint32, absent uint8) uint8 {
		if mask == 0 || maxv == 0 {
			return absent
		}
		c := (v & mask) >> shift
		return uint8(min(c*255/maxv, 255))
	}
	return color.NRGBA{
		R: ch(pf.RedMask, pf.RedShift, pf.RedMax, 0),
		G: ch(pf.GreenMask, pf.GreenShift, pf.GreenMax, 0),
		B: ch(pf.BlueMask, pf.BlueShift, pf.BlueMax, 0),
		A: ch(pf.AlphaMask, pf.AlphaShift, pf.AlphaMax, 255),
	}
}

// Info returns a one-line summary of the header.
func (f *File) Info() string {
	h := f.Header
	if f.Paletted() {
		return fmt.Sprintf("%dx%d paletted, %d palette(s) of %d colors, %d bpp, color key %d",
			h.Width, h.Height, len(f.Palettes), h.ColorsPerPalette, h.BitDepth, h.ColorKeyFlag)
	}
	return fmt.Sprintf("%dx%d direct, %d bytes/pixel, masks R%08x G%08x B%08x A%08x",
		h.Width, h.Height, h.BytesPerPixel, h.Format.RedMask, h.Format.GreenMask, h.Format.BlueMask, h.Format.AlphaMask)
}
