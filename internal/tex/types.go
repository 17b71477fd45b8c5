package tex

import (
	"fmt"
	"image"
	"image/color"

	"ff7-asset-extract/internal/binreader"
)

// HeaderSize is the fixed size of the TEX header; palette data follows it.
const HeaderSize = 0xEC

// SupportedVersion is the only header version the game ships.
const SupportedVersion = 1

var (
	// ErrUnsupportedVersion is returned when Header.Version is not 1.
	ErrUnsupportedVersion = fmt.Errorf("tex: unsupported version: %w", binreader.ErrUnsupportedFormat)
	// ErrPaletteIndexOutOfBounds is returned in Strict mode for a pixel that
	// references a color past the end of the selected palette.
	ErrPaletteIndexOutOfBounds = fmt.Errorf("tex: palette index out of bounds")
)

// Mode selects how out-of-range palette references are resolved.
type Mode int

const (
	// Strict fails the render with ErrPaletteIndexOutOfBounds.
	Strict Mode = iota
	// Lenient paints the pixel transparent black. Asset export uses this.
	Lenient
)

func (m Mode) String() string {
	if m == Lenient {
		return "lenient"
	}
	return "strict"
}

// PixelFormat describes how a direct-color pixel packs its channels.
type PixelFormat struct {
	RedBits, GreenBits, BlueBits, AlphaBits     uint32
	RedMask, GreenMask, BlueMask, AlphaMask     uint32
	RedShift, GreenShift, BlueShift, AlphaShift uint32
	Red8Bits, Green8Bits, Blue8Bits, Alpha8Bits uint32 // 8 minus channel bits
	RedMax, GreenMax, BlueMax, AlphaMax         uint32
}

// Header is the 0xEC byte TEX header. Every field is a little-endian u32.
type Header struct {
	Version           uint32
	_                 uint32
	ColorKeyFlag      uint32
	_                 uint32
	_                 uint32
	MinBitsPerColor   uint32
	MaxBitsPerColor   uint32
	MinAlphaBits      uint32
	MaxAlphaBits      uint32
	MinBitsPerPixel   uint32
	MaxBitsPerPixel   uint32
	_                 uint32
	PaletteCount      uint32
	ColorsPerPalette  uint32
	BitDepth          uint32
	Width             uint32
	Height            uint32
	Pitch             uint32
	_                 uint32
	HasPalette        uint32
	BitsPerIndex      uint32
	IndexedTo8Bit     uint32
	PaletteSize       uint32
	ColorsPerPalette2 uint32
	_                 uint32 // runtime
	BitsPerPixel      uint32
	BytesPerPixel     uint32
	Format            PixelFormat
	ColorKeyArrayFlag uint32
	_                 uint32 // runtime
	ReferenceAlpha    uint32
	_                 uint32 // runtime
	_                 uint32
	PaletteIndex      uint32
	_                 [2]uint32 // runtime
	_                 [4]uint32
}

// Palette is one color lookup table.
type Palette []color.NRGBA

// File is a decoded TEX record. Paletted files keep their index plane and
// resolve colors at render time; direct-color files keep resolved pixels.
type File struct {
	Header   Header
	Mode     Mode
	Palettes []Palette
	Indices  []byte        // width*height palette references, paletted only
	Pixels   []color.NRGBA // width*height colors, direct color only
}

// Paletted reports whether pixels are palette references.
func (f *File) Paletted() bool { return f.Header.HasPalette != 0 }

// Width returns the image width in pixels.
func (f *File) Width() int { return int(f.Header.Width) }

// Height returns the image height in pixels.
func (f *File) Height() int { return int(f.Header.Height) }

// Format tags the pixel layout an Image was decoded from.
type Format int

const (
	FormatPaletted8 Format = iota
	FormatDirect
)

func (f Format) String() string {
	if f == FormatDirect {
		return "direct"
	}
	return "paletted8"
}

// Image is a decoded RGBA8 picture plus the layout it came from.
type Image struct {
	*image.NRGBA
	Format Format
}

// ColorF returns the pixel at (x, y) with channels normalized to [0,1].
func (im *Image) ColorF(x, y int) [4]float32 {
	c := im.NRGBAAt(x, y)
	return [4]float32{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}

// Region is a crop rectangle rendered through one palette.
type Region struct {
	X, Y, W, H int
	Palette    int
}
