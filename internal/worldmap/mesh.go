package worldmap

import (
	"fmt"

	"ff7-asset-extract/internal/binreader"
	"ff7-asset-extract/internal/lzs"
)

// Decode parses a world-map mesh file. Its length must be a whole number of blocks.
func Decode(data []byte) (*Map, error) {
	if len(data)%BlockSize != 0 {
		return nil, fmt.Errorf("worldmap: %d bytes is not a multiple of block size %#x: %w",
			len(data), BlockSize, binreader.ErrInvalidFormat)
	}

	n := len(data) / BlockSize
	m := &Map{Blocks: make([]Block, n)}
	for i := 0; i < n; i++ {
		if err := decodeBlock(data[i*BlockSize:(i+1)*BlockSize], &m.Blocks[i]); err != nil {
			return nil, fmt.Errorf("worldmap: block %d: %w", i, err)
		}
	}
	return m, nil
}

// DecodeSource materializes src and decodes it.
func DecodeSource(src binreader.Source) (*Map, error) {
	data, err := binreader.Bytes(src)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

func decodeBlock(blk []byte, out *Block) error {
	r := binreader.New(blk)
	var offsets [PartsPerBlock]uint32
	for i := range offsets {
		v, err := r.U32()
		if err != nil {
			return err
		}
		offsets[i] = v
	}

	for i, off := range offsets {
		if err := r.Seek(int(off)); err != nil {
			return fmt.Errorf("part %d: %w", i, err)
		}
		size, err := r.U32()
		if err != nil {
			return fmt.Errorf("part %d: %w", i, err)
		}
		if err := r.Seek(int(off)); err != nil {
			return fmt.Errorf("part %d: %w", i, err)
		}
		raw, err := r.Bytes(int(size) + lzs.HeaderSize)
		if err != nil {
			return fmt.Errorf("part %d: compressed payload: %w", i, err)
		}
		dec, err := lzs.Decompress(raw)
		if err != nil {
			return fmt.Errorf("part %d: %w", i, err)
		}
		if err := decodePart(dec, &out.Parts[i]); err != nil {
			return fmt.Errorf("part %d: %w", i, err)
		}
	}
	return nil
}

func decodePart(data []byte, p *BlockPart) error {
	r := binreader.New(data)
	triCount, err := r.U16()
	if err != nil {
		return err
	}
	vertCount, err := r.U16()
	if err != nil {
		return err
	}
	need := int(triCount)*triangleSize + 2*int(vertCount)*vertexSize
	if r.Remaining() < need {
		return fmt.Errorf("%d triangles and %d vertices need %d bytes, have %d: %w",
			triCount, vertCount, need, r.Remaining(), binreader.ErrOutOfBounds)
	}

	tris := make([]Triangle, triCount)
	for i := range tris {
		b, _ := r.Bytes(triangleSize)
		t := &tris[i]
		t.V = [3]uint8{b[0], b[1], b[2]}
		t.Walk = b[3]
		t.UV = [3][2]uint8{{b[4], b[5]}, {b[6], b[7]}, {b[8], b[9]}}
		t.TextureID = (uint16(b[10]) | uint16(b[11])<<8) & 0x1FF
	}

	verts := readVertices(r, int(vertCount))
	normals := readVertices(r, int(vertCount))

	*p = BlockPart{
		TriangleCount: triCount,
		VertexCount:   vertCount,
		Triangles:     tris,
		Vertices:      verts,
		Normals:       normals,
	}
	return nil
}

// readVertices reads n 8-byte records; the caller has checked the length.
func readVertices(r *binreader.Reader, n int) []Vertex {
	out := make([]Vertex, n)
	for i := range out {
		x, _ := r.I16()
		y, _ := r.I16()
		z, _ := r.I16()
		r.Skip(2)
		out[i] = Vertex{X: x, Y: y, Z: z}
	}
	return out
}
