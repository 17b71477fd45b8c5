package worldmap

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"ff7-asset-extract/internal/binreader"
	"ff7-asset-extract/internal/lzs"
)

// compress wraps data in literal-only LZS tokens.
func compress(data []byte) []byte {
	var payload []byte
	for i := 0; i < len(data); i += 8 {
		payload = append(payload, 0xFF)
		payload = append(payload, data[i:min(i+8, len(data))]...)
	}
	out := binary.LittleEndian.AppendUint32(nil, uint32(len(payload)))
	return append(out, payload...)
}

type le struct{ bytes.Buffer }

func (b *le) u8(v ...uint8)   { b.Write(v) }
func (b *le) u16(v ...uint16) { binary.Write(b, binary.LittleEndian, v) }
func (b *le) u32(v ...uint32) { binary.Write(b, binary.LittleEndian, v) }

// partBytes builds a decompressed part with tris triangles and verts vertices.
func partBytes(tris, verts int, seed int) []byte {
	var b le
	b.u16(uint16(tris), uint16(verts))
	for i := 0; i < tris; i++ {
		b.u8(uint8(i), uint8(i+1), uint8(i+2), 0x43)
		b.u8(1, 2, 3, 4, 5, 6)
		b.u16(0xFE00 | uint16(seed+i)) // high bits must be dropped
	}
	for i := 0; i < verts; i++ {
		b.u16(uint16(int16(-i)), uint16(seed), uint16(i*2), 0xDEAD)
	}
	for i := 0; i < verts; i++ {
		b.u16(0, 4096, 0, 0)
	}
	return b.Bytes()
}

func buildBlock(t *testing.T, parts [PartsPerBlock][]byte) []byte {
	t.Helper()
	blk := make([]byte, BlockSize)
	off := PartsPerBlock * 4
	for i, p := range parts {
		c := compress(p)
		if off+len(c) > BlockSize {
			t.Fatalf("part %d does not fit", i)
		}
		binary.LittleEndian.PutUint32(blk[i*4:], uint32(off))
		copy(blk[off:], c)
		off += len(c)
		off = (off + 3) &^ 3
	}
	return blk
}

func TestDecodeMesh(t *testing.T) {
	var parts [PartsPerBlock][]byte
	for i := range parts {
		parts[i] = partBytes(i%5, i%7+1, i)
	}
	data := append(buildBlock(t, parts), buildBlock(t, parts)...)

	m, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(m.Blocks))
	}
	for bi, blk := range m.Blocks {
		for pi, p := range blk.Parts {
			if len(p.Vertices) != int(p.VertexCount) || len(p.Normals) != int(p.VertexCount) {
				t.Fatalf("block %d part %d: %d vertices, %d normals, count %d",
					bi, pi, len(p.Vertices), len(p.Normals), p.VertexCount)
			}
			if len(p.Triangles) != int(p.TriangleCount) {
				t.Fatalf("block %d part %d: %d triangles, count %d", bi, pi, len(p.Triangles), p.TriangleCount)
			}
			if int(p.TriangleCount) != pi%5 || int(p.VertexCount) != pi%7+1 {
				t.Fatalf("block %d part %d: counts %d/%d", bi, pi, p.TriangleCount, p.VertexCount)
			}
		}
	}

	p := m.Blocks[0].Parts[3]
	tri := p.Triangles[1]
	if tri.V != [3]uint8{1, 2, 3} || tri.UV != [3][2]uint8{{1, 2}, {3, 4}, {5, 6}} {
		t.Fatalf("triangle = %+v", tri)
	}
	if tri.TextureID != 4 {
		t.Fatalf("texture id = %#x, want 4", tri.TextureID)
	}
	if tri.WalkmapType() != 3 || tri.ScriptID() != 2 {
		t.Fatalf("walk %#x -> type %d script %d", tri.Walk, tri.WalkmapType(), tri.ScriptID())
	}
	if v := p.Vertices[2]; v != (Vertex{X: -2, Y: 3, Z: 4}) {
		t.Fatalf("vertex = %+v", v)
	}
	if n := p.Normals[0]; n != (Vertex{Y: 4096}) {
		t.Fatalf("normal = %+v", n)
	}
}

func TestDecodeMeshBadSize(t *testing.T) {
	if _, err := Decode(make([]byte, BlockSize+1)); !errors.Is(err, binreader.ErrInvalidFormat) {
		t.Fatalf("err = %v, want ErrInvalidFormat", err)
	}
}

func TestDecodeMeshTruncatedPart(t *testing.T) {
	var parts [PartsPerBlock][]byte
	for i := range parts {
		parts[i] = partBytes(1, 1, i)
	}
	parts[9] = partBytes(2, 2, 0)[:20]
	_, err := Decode(buildBlock(t, parts))
	if !errors.Is(err, binreader.ErrOutOfBounds) {
		t.Fatalf("err = %v, want ErrOutOfBounds", err)
	}
}

func TestDecodeMeshOversizedPart(t *testing.T) {
	var parts [PartsPerBlock][]byte
	for i := range parts {
		parts[i] = partBytes(1, 1, i)
	}
	blk := buildBlock(t, parts)
	off := binary.LittleEndian.Uint32(blk[4:])
	// Corrupt part 1's size prefix so the slice no longer matches it.
	binary.LittleEndian.PutUint32(blk[off:], 0xFFFF0)
	if _, err := Decode(blk); !errors.Is(err, binreader.ErrOutOfBounds) {
		t.Fatalf("err = %v, want ErrOutOfBounds", err)
	}
}

func TestOrigins(t *testing.T) {
	m := &Map{}
	if o := m.BlockOrigin(10); o != [2]float32{8, 8} {
		t.Fatalf("BlockOrigin(10) = %v", o)
	}
	if o := m.PartOrigin(0, 5); o != [2]float32{2, 2} {
		t.Fatalf("PartOrigin(0,5) = %v", o)
	}
	if p := (Vertex{X: 255, Y: -255}).Position(); p != [3]float32{1, -1, 0} {
		t.Fatalf("Position = %v", p)
	}
}

func TestTextureInfoBits(t *testing.T) {
	// clut_x=0x2A clut_y=0x155 tx=0x9 ty=1 abr=2 tp=1 reserved=0x55
	v := uint32(0x2A) | 0x155<<6 | 0x9<<16 | 1<<20 | 2<<21 | 1<<23 | 0x55<<25
	ti := TextureInfo(v)
	got := []int{ti.ClutX(), ti.ClutY(), ti.TextureX(), ti.TextureY(), ti.ABR(), ti.TP(), ti.Reserved()}
	want := []int{0x2A, 0x155, 0x9, 1, 2, 1, 0x55}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("field %d = %#x, want %#x", i, got[i], want[i])
		}
	}
	if !ti.Blank() {
		t.Fatal("texture_y=1 must be blank")
	}
	if TextureInfo(0xFFEFFFFF).Blank() {
		t.Fatal("texture_y=0 must not be blank")
	}
}

// buildTXZ returns a compressed TXZ whose palette strip holds two CLUTs:
// row 480 is a red ramp, row 481 a green ramp. Entries missing from textures
// use the red ramp. Texel (x, y) of both atlases is (x+y) & 0xF.
func buildTXZ(t *testing.T, textures map[int]uint32) []byte {
	t.Helper()
	var sec le
	for i := 0; i < TextureEntries; i++ {
		v, ok := textures[i]
		if !ok {
			v = 480 << 6
		}
		sec.u32(v)
	}

	// palette strip at VRAM (0, 480), 16x2 words
	sec.u32(12 + 16*2*2)
	sec.u16(0, 480, 16, 2)
	for i := 0; i < 16; i++ {
		sec.u16(uint16(i*2) | 0x8000)
	}
	for i := 0; i < 16; i++ {
		sec.u16(uint16(i*2)<<5 | 0x8000)
	}

	atlas := func(rows int) {
		w := FrameWidth / 4
		sec.u32(uint32(12 + w*rows*2))
		sec.u16(0, 0, uint16(w), uint16(rows))
		for y := 0; y < rows; y++ {
			for x := 0; x < FrameWidth; x += 2 {
				lo := uint8((x + y) & 0xF)
				hi := uint8((x + 1 + y) & 0xF)
				sec.u8(lo | hi<<4)
			}
		}
	}
	atlas(primaryRows)
	atlas(secondaryRows)

	var file le
	const count = 4
	hdr := 4 + count*4
	sec2 := hdr + 16
	sec3 := sec2 + 4 + sec.Len()
	file.u32(count)
	file.u32(uint32(hdr), uint32(hdr+8), uint32(sec2), uint32(sec3))
	file.Write(make([]byte, 16))
	file.u32(uint32(sec.Len()))
	file.Write(sec.Bytes())
	file.u32(0)
	return compress(file.Bytes())
}

func TestDecodeTXZ(t *testing.T) {
	textures := map[int]uint32{
		0:  480 << 6,
		1:  481 << 6,
		2:  480<<6 | 1<<20,
		76: 481 << 6,
	}
	a, err := DecodeTXZ(buildTXZ(t, textures))
	if err != nil {
		t.Fatal(err)
	}
	if len(a.Blocks) != 3 {
		t.Fatalf("got %d vram blocks", len(a.Blocks))
	}
	if a.Textures[1].ClutY() != 481 {
		t.Fatalf("clut_y = %d", a.Textures[1].ClutY())
	}

	pond := a.TextureTile(0) // U=0 V=0, red ramp
	if len(pond) != 32 || len(pond[0]) != 32 {
		t.Fatalf("pond is %dx%d", len(pond[0]), len(pond))
	}
	for _, p := range [][2]int{{0, 0}, {3, 0}, {5, 7}, {31, 31}} {
		idx := (p[0] + p[1]) & 0xF
		want := uint8(idx * 2 * 255 / 31)
		c := pond[p[1]][p[0]]
		if c.R != want || c.G != 0 || c.B != 0 || c.A != 255 {
			t.Fatalf("pond(%d,%d) = %v, want R=%d", p[0], p[1], c, want)
		}
	}

	river := a.TextureTile(1) // U=32 V=0, green ramp
	c := river[0][1]
	idx := (32 + 1) & 0xF
	if c.G != uint8(idx*2*255/31) || c.R != 0 {
		t.Fatalf("riv_m2(1,0) = %v", c)
	}

	for _, row := range a.TextureTile(2) {
		for _, px := range row {
			if px.R != 255 || px.G != 255 || px.B != 255 || px.A != 255 {
				t.Fatalf("blank tile pixel = %v, want white", px)
			}
		}
	}

	midgar := a.TextureTile(76) // secondary atlas, U=0 V=256
	if len(midgar) != 50 {
		t.Fatalf("midgar rows = %d", len(midgar))
	}
	c = midgar[2][3]
	idx = (3 + 2) & 0xF
	if c.G != uint8(idx*2*255/31) {
		t.Fatalf("midgar(3,2) = %v", c)
	}

	if rows := a.TextureTile(9999); rows != nil {
		t.Fatal("unknown tile must be empty")
	}
	if im := a.TileImage(0); im.Bounds().Dx() != 32 {
		t.Fatalf("TileImage bounds = %v", im.Bounds())
	}
	if u, v, ok := a.TileUV(1, 16, 8); !ok || u != 48.0/FrameWidth || v != 8.0/FrameHeight {
		t.Fatalf("TileUV = %v %v %v", u, v, ok)
	}
}

func TestDecodeTXZErrors(t *testing.T) {
	if _, err := DecodeTXZ([]byte{1, 2, 3}); !errors.Is(err, lzs.ErrInvalidFormat) {
		t.Fatalf("bad lzs: err = %v", err)
	}

	var few le
	few.u32(2, 8, 8)
	if _, err := DecodeTXZ(compress(few.Bytes())); !errors.Is(err, binreader.ErrInvalidFormat) {
		t.Fatalf("two sections: err = %v", err)
	}

	// A CLUT row outside the palette strip.
	_, err := DecodeTXZ(buildTXZ(t, map[int]uint32{5: 100 << 6}))
	if !errors.Is(err, binreader.ErrOutOfBounds) {
		t.Fatalf("bad clut: err = %v", err)
	}
}
