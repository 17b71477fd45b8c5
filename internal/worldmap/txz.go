package worldmap

import (
	"fmt"
	"image"
	"image/color"

	"ff7-asset-extract/internal/binreader"
	"ff7-asset-extract/internal/lzs"
	"ff7-asset-extract/internal/psx"
)

const (
	// TextureEntries is the size of the CLUT placement table.
	TextureEntries = 512

	// FrameWidth and FrameHeight bound the composited tile frame: the primary
	// atlas supplies the first 256 rows, the secondary atlas the next 100.
	FrameWidth    = 640
	FrameHeight   = primaryRows + secondaryRows
	primaryRows   = 256
	secondaryRows = 100

	clutColors     = 16
	textureSection = 2
)

// VRAM block roles, in file order.
const (
	PaletteBlock = iota
	PrimaryAtlas
	SecondaryAtlas
)

// TextureInfo is a bit-packed CLUT/texture-page descriptor:
//
//	bits  0-5   clut_x (in 16-word units)
//	bits  6-15  clut_y
//	bits 16-19  texture_x
//	bit  20     texture_y (1 = tile absent)
//	bits 21-22  abr (semi-transparency mode)
//	bits 23-24  tp (texture depth)
//	bits 25-31  reserved
type TextureInfo uint32

func (t TextureInfo) ClutX() int    { return int(t & 0x3F) }
func (t TextureInfo) ClutY() int    { return int(t>>6) & 0x3FF }
func (t TextureInfo) TextureX() int { return int(t>>16) & 0xF }
func (t TextureInfo) TextureY() int { return int(t>>20) & 0x1 }
func (t TextureInfo) ABR() int      { return int(t>>21) & 0x3 }
func (t TextureInfo) TP() int       { return int(t>>23) & 0x3 }
func (t TextureInfo) Reserved() int { return int(t >> 25) }

// Blank reports whether the entry marks its tile as absent.
func (t TextureInfo) Blank() bool { return t.TextureY() == 1 }

// VRAMBlock is a rectangle of 16-bit VRAM words.
type VRAMBlock struct {
	Size                uint32
	X, Y, Width, Height uint16
	Data                []byte // Width*Height little-endian words
}

// Word returns the VRAM word at (x, y) relative to the block origin.
func (b *VRAMBlock) Word(x, y int) (uint16, bool) {
	if x < 0 || y < 0 || x >= int(b.Width) || y >= int(b.Height) {
		return 0, false
	}
	i := (y*int(b.Width) + x) * 2
	return uint16(b.Data[i]) | uint16(b.Data[i+1])<<8, true
}

// Index4 returns the 4-bit texel at (x, y), two texels per byte, low nibble first.
func (b *VRAMBlock) Index4(x, y int) (uint8, bool) {
	if x < 0 || y < 0 || x >= int(b.Width)*4 || y >= int(b.Height) {
		return 0, false
	}
	v := b.Data[y*int(b.Width)*2+x/2]
	if x&1 == 1 {
		return v >> 4, true
	}
	return v & 0x0F, true
}

// Tile is one named catalog entry.
type Tile struct {
	ID            int
	Name          string
	Width, Height int
	U, V          int // top-left in the composited frame
}

// Atlas is a decoded world-map texture file.
type Atlas struct {
	Textures [TextureEntries]TextureInfo
	Blocks   []VRAMBlock
	frame    *image.NRGBA
	tiles    map[int]Tile
}

// DecodeTXZ decompresses and parses a whole TXZ file, then paints every
// catalog tile into the composited frame.
func DecodeTXZ(compressed []byte) (*Atlas, error) {
	data, err := lzs.Decompress(compressed)
	if err != nil {
		return nil, fmt.Errorf("txz: %w", err)
	}

	r := binreader.New(data)
	count, err := r.U32()
	if err != nil {
		return nil, fmt.Errorf("txz: section count: %w", err)
	}
	if count <= textureSection+1 || int(count) > r.Remaining()/4 {
		return nil, fmt.Errorf("txz: %d sections: %w", count, binreader.ErrInvalidFormat)
	}
	offsets := make([]int, count)
	for i := range offsets {
		v, _ := r.U32()
		offsets[i] = int(v)
	}

	start, end := offsets[textureSection]+4, offsets[textureSection+1]
	if start > end || end > len(data) {
		return nil, fmt.Errorf("txz: texture section [%#x,%#x) in %d bytes: %w",
			start, end, len(data), binreader.ErrInvalidFormat)
	}
	if err := r.Seek(start); err != nil {
		return nil, fmt.Errorf("txz: %w", err)
	}

	a := &Atlas{tiles: make(map[int]Tile, len(Catalog))}
	for i := range a.Textures {
		v, err := r.U32()
		if err != nil {
			return nil, fmt.Errorf("txz: texture table entry %d: %w", i, err)
		}
		a.Textures[i] = TextureInfo(v)
	}

	for r.Offset() < end {
		b, err := readVRAMBlock(r)
		if err != nil {
			return nil, fmt.Errorf("txz: vram block %d: %w", len(a.Blocks), err)
		}
		a.Blocks = append(a.Blocks, b)
	}
	if r.Offset() != end {
		return nil, fmt.Errorf("txz: vram blocks overrun section end %#x by %d bytes: %w",
			end, r.Offset()-end, binreader.ErrInvalidFormat)
	}
	if len(a.Blocks) <= PrimaryAtlas {
		return nil, fmt.Errorf("txz: %d vram blocks, need palette and atlas: %w",
			len(a.Blocks), binreader.ErrInvalidFormat)
	}

	if err := a.paint(); err != nil {
		return nil, fmt.Errorf("txz: %w", err)
	}
	return a, nil
}

// DecodeTXZSource materializes src and decodes it.
func DecodeTXZSource(src binreader.Source) (*Atlas, error) {
	data, err := binreader.Bytes(src)
	if err != nil {
		return nil, err
	}
	return DecodeTXZ(data)
}

func readVRAMBlock(r *binreader.Reader) (VRAMBlock, error) {
	var b VRAMBlock
	var err error
	if b.Size, err = r.U32(); err != nil {
		return b, err
	}
	for _, f := range []*uint16{&b.X, &b.Y, &b.Width, &b.Height} {
		if *f, err = r.U16(); err != nil {
			return b, err
		}
	}
	raw, err := r.Bytes(int(b.Width) * int(b.Height) * 2)
	if err != nil {
		return b, err
	}
	b.Data = append([]byte(nil), raw...)
	return b, nil
}

// index returns the composited 4-bit index at frame coordinate (x, y).
func (a *Atlas) index(x, y int) (uint8, bool) {
	if y < primaryRows {
		return a.Blocks[PrimaryAtlas].Index4(x, y)
	}
	if len(a.Blocks) <= SecondaryAtlas {
		return 0, false
	}
	return a.Blocks[SecondaryAtlas].Index4(x, y-primaryRows)
}

// clut resolves the 16-color table addressed by t inside the palette strip.
func (a *Atlas) clut(t TextureInfo) ([clutColors]color.NRGBA, error) {
	var out [clutColors]color.NRGBA
	pb := &a.Blocks[PaletteBlock]
	x := t.ClutX()*clutColors - int(pb.X)
	y := t.ClutY() - int(pb.Y)
	for i := range out {
		w, ok := pb.Word(x+i, y)
		if !ok {
			return out, fmt.Errorf("clut (%d,%d) outside palette block at (%d,%d) %dx%d: %w",
				t.ClutX()*clutColors, t.ClutY(), pb.X, pb.Y, pb.Width, pb.Height, binreader.ErrOutOfBounds)
		}
		out[i] = psx.Color555(w)
	}
	return out, nil
}

func (a *Atlas) paint() error {
	a.frame = image.NewNRGBA(image.Rect(0, 0, FrameWidth, FrameHeight))
	white := color.NRGBA{255, 255, 255, 255}

	for _, tile := range Catalog {
		a.tiles[tile.ID] = tile
		info := a.Textures[tile.ID]
		if info.Blank() {
			for y := 0; y < tile.Height; y++ {
				for x := 0; x < tile.Width; x++ {
					a.frame.SetNRGBA(tile.U+x, tile.V+y, white)
				}
			}
			continue
		}

		pal, err := a.clut(info)
		if err != nil {
			return fmt.Errorf("tile %d %q: %w", tile.ID, tile.Name, err)
		}
		for y := 0; y < tile.Height; y++ {
			for x := 0; x < tile.Width; x++ {
				idx, ok := a.index(tile.U+x, tile.V+y)
				if !ok {
					continue
				}
				a.frame.SetNRGBA(tile.U+x, tile.V+y, pal[idx])
			}
		}
	}
	return nil
}

// Image returns the composited frame with every catalog tile painted.
func (a *Atlas) Image() *image.NRGBA { return a.frame }

// Tile returns the catalog entry for id.
func (a *Atlas) Tile(id int) (Tile, bool) {
	t, ok := a.tiles[id]
	return t, ok
}

// TextureTile returns the painted rows of tile id, or nil when the id is
// not in the catalog.
func (a *Atlas) TextureTile(id int) [][]color.NRGBA {
	t, ok := a.tiles[id]
	if !ok {
		return nil
	}
	rows := make([][]color.NRGBA, t.Height)
	for y := range rows {
		row := make([]color.NRGBA, t.Width)
		for x := range row {
			row[x] = a.frame.NRGBAAt(t.U+x, t.V+y)
		}
		rows[y] = row
	}
	return rows
}

// TileImage returns tile id as its own image, or nil when absent.
func (a *Atlas) TileImage(id int) *image.NRGBA {
	t, ok := a.tiles[id]
	if !ok {
		return nil
	}
	return a.frame.SubImage(image.Rect(t.U, t.V, t.U+t.Width, t.V+t.Height)).(*image.NRGBA)
}

// TileUV maps a triangle UV inside tile id to normalized frame coordinates.
func (a *Atlas) TileUV(id int, u, v uint8) (float32, float32, bool) {
	t, ok := a.tiles[id]
	if !ok {
		return 0, 0, false
	}
	fu := float32(t.U+min(int(u), t.Width)) / FrameWidth
	fv := float32(t.V+min(int(v), t.Height)) / FrameHeight
	return fu, fv, true
}
