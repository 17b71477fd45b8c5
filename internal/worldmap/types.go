package worldmap

import "ff7-asset-extract/internal/psx"

const (
	// BlockSize is the on-disk size of one map block.
	BlockSize = 0xB800
	// PartsPerBlock is the number of independently compressed meshes in a block.
	PartsPerBlock = 16

	triangleSize = 12
	vertexSize   = 8

	blockColumns = 9
	partColumns  = 4
	partSpan     = 8192 // world units covered by one part
)

// Triangle references three vertices of its part.
type Triangle struct {
	V         [3]uint8
	Walk      uint8 // walkmap type in bits 0-4, script id in 5-7
	UV        [3][2]uint8
	TextureID uint16 // low 9 bits of the texture info word
}

// WalkmapType returns the terrain class used for movement checks.
func (t Triangle) WalkmapType() uint8 { return t.Walk & 0x1F }

// ScriptID returns the field-script trigger id.
func (t Triangle) ScriptID() uint8 { return t.Walk >> 5 }

// Vertex is a signed fixed-point position. Normals share the layout.
type Vertex struct {
	X, Y, Z int16
}

// Position decodes the vertex through the mesh fixed-point convention.
func (v Vertex) Position() [3]float32 {
	return [3]float32{
		psx.Fixed255(uint16(v.X)),
		psx.Fixed255(uint16(v.Y)),
		psx.Fixed255(uint16(v.Z)),
	}
}

// BlockPart is one decompressed mesh. len(Vertices) == len(Normals) ==
// VertexCount and len(Triangles) == TriangleCount.
type BlockPart struct {
	TriangleCount uint16
	VertexCount   uint16
	Triangles     []Triangle
	Vertices      []Vertex
	Normals       []Vertex
}

// Block is one 0xB800 byte map block.
type Block struct {
	Parts [PartsPerBlock]BlockPart
}

// Map is a whole world-map mesh file in file order.
type Map struct {
	Blocks []Block
}

// BlockOrigin returns the X/Z origin of block i on the 9-column grid.
func (m *Map) BlockOrigin(i int) [2]float32 {
	span := float32(partSpan*partColumns) / 4096
	return [2]float32{float32(i%blockColumns) * span, float32(i/blockColumns) * span}
}

// PartOrigin returns the X/Z origin of part p of block i.
func (m *Map) PartOrigin(i, p int) [2]float32 {
	o := m.BlockOrigin(i)
	o[0] += psx.Fixed4096(uint16(p%partColumns) * partSpan)
	o[1] += psx.Fixed4096(uint16(p/partColumns) * partSpan)
	return o
}

// WorldPosition places vertex v of part p in block i on the whole map, in
// the same units as Vertex.Position.
func (m *Map) WorldPosition(i, p int, v Vertex) [3]float32 {
	o := m.PartOrigin(i, p)
	pos := v.Position()
	pos[0] += o[0] * 4096 / 255
	pos[2] += o[1] * 4096 / 255
	return pos
}
