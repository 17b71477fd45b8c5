package export

import (
	"bufio"
	"fmt"
	"io"

	"ff7-asset-extract/internal/psx"
	"ff7-asset-extract/internal/worldmap"
)

// WriteOBJ writes a world-map mesh as Wavefront OBJ, one object per block
// part. When atlas is non-nil, triangles whose texture is in the catalog
// get UVs into the composited atlas image.
func WriteOBJ(w io.Writer, m *worldmap.Map, atlas *worldmap.Atlas) error {
	bw := bufio.NewWriter(w)
	vBase, vtBase := 1, 1

	for bi := range m.Blocks {
		for pi := range m.Blocks[bi].Parts {
			part := &m.Blocks[bi].Parts[pi]
			if len(part.Vertices) == 0 {
				continue
			}
			fmt.Fprintf(bw, "o block%d_part%d\n", bi, pi)
			for _, v := range part.Vertices {
				p := m.WorldPosition(bi, pi, v)
				fmt.Fprintf(bw, "v %g %g %g\n", p[0], p[1], p[2])
			}
			for _, n := range part.Normals {
				fmt.Fprintf(bw, "vn %g %g %g\n",
					psx.Fixed4096(uint16(n.X)), psx.Fixed4096(uint16(n.Y)), psx.Fixed4096(uint16(n.Z)))
			}

			for _, t := range part.Triangles {
				if int(t.V[0]) >= len(part.Vertices) || int(t.V[1]) >= len(part.Vertices) || int(t.V[2]) >= len(part.Vertices) {
					continue
				}
				a, b, c := vBase+int(t.V[0]), vBase+int(t.V[1]), vBase+int(t.V[2])
				if atlas != nil && writeUVs(bw, atlas, t) {
					fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n",
						a, vtBase, a, b, vtBase+1, b, c, vtBase+2, c)
					vtBase += 3
					continue
				}
				fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
			}
			vBase += len(part.Vertices)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export: write obj: %w", err)
	}
	return nil
}

// writeUVs emits the three vt lines of t, or nothing if its tile is unknown.
func writeUVs(w io.Writer, atlas *worldmap.Atlas, t worldmap.Triangle) bool {
	if _, ok := atlas.Tile(int(t.TextureID)); !ok {
		return false
	}
	for _, uv := range t.UV {
		u, v, _ := atlas.TileUV(int(t.TextureID), uv[0], uv[1])
		fmt.Fprintf(w, "vt %g %g\n", u, 1-v)
	}
	return true
}
