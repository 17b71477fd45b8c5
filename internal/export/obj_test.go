package export

import (
	"bytes"
	"strings"
	"testing"

	"ff7-asset-extract/internal/worldmap"
)

func TestWriteOBJ(t *testing.T) {
	m := &worldmap.Map{Blocks: make([]worldmap.Block, 1)}
	m.Blocks[0].Parts[1] = worldmap.BlockPart{
		TriangleCount: 2,
		VertexCount:   3,
		Triangles: []worldmap.Triangle{
			{V: [3]uint8{0, 1, 2}},
			{V: [3]uint8{0, 1, 9}}, // dangling reference
		},
		Vertices: []worldmap.Vertex{{X: 255}, {Y: 510}, {Z: 0}},
		Normals:  []worldmap.Vertex{{Y: 4096}, {Y: 4096}, {Y: 4096}},
	}

	var buf bytes.Buffer
	if err := WriteOBJ(&buf, m, nil); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if strings.Count(out, "o block") != 1 {
		t.Errorf("want one object:\n%s", out)
	}
	if !strings.Contains(out, "o block0_part1\n") {
		t.Error("missing part object")
	}
	if n := strings.Count(out, "\nv "); n != 3 {
		t.Errorf("got %d vertices, want 3", n)
	}
	if n := strings.Count(out, "\nvn 0 1 0"); n != 3 {
		t.Errorf("got %d unit-up normals, want 3", n)
	}
	if !strings.Contains(out, "f 1//1 2//2 3//3\n") {
		t.Errorf("missing face:\n%s", out)
	}
	if strings.Count(out, "\nf ") != 1 {
		t.Error("dangling triangle should be skipped")
	}

	// Part 1 sits one part span to the right of the block origin.
	want := m.WorldPosition(0, 1, worldmap.Vertex{X: 255})
	if want[0] <= 1 {
		t.Fatalf("part origin not applied: %v", want)
	}
}
