package objfile

import (
	"strings"
	"testing"

	"github.com/Faultbox/loopview/pkg/math"
)

const cubeFaceOBJ = `
# a single quad with texcoords
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
f 1/1 2/2 3/3 4/4
`

func TestParseQuadFanTriangulation(t *testing.T) {
	m, err := Parse([]byte(cubeFaceOBJ))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if len(m.Positions) != 4 {
		t.Errorf("vertex count = %d, want 4", len(m.Positions))
	}
	if m.TriangleCount() != 2 {
		t.Errorf("triangle count = %d, want 2", m.TriangleCount())
	}

	want := []uint32{0, 1, 2, 0, 2, 3}
	for i, idx := range m.Indices {
		if idx != want[i] {
			t.Errorf("index %d = %d, want %d", i, idx, want[i])
		}
	}

	if m.UVs[2] != (math.Vec2{X: 1, Y: 1}) {
		t.Errorf("uv 2 = %v, want {1 1}", m.UVs[2])
	}
}

func TestParseMissingTexcoordsDefaultsToZero(t *testing.T) {
	obj := `
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`
	m, err := Parse([]byte(obj))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(m.UVs) != 3 {
		t.Fatalf("uv count = %d, want 3", len(m.UVs))
	}
	for i, uv := range m.UVs {
		if uv != (math.Vec2{}) {
			t.Errorf("uv %d = %v, want zero", i, uv)
		}
	}
}

func TestParseNormalsIgnored(t *testing.T) {
	obj := `
v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
f 1//1 2//1 3//1
`
	m, err := Parse([]byte(obj))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if m.TriangleCount() != 1 {
		t.Errorf("triangle count = %d, want 1", m.TriangleCount())
	}
}

func TestParseNegativeIndices(t *testing.T) {
	obj := `
v 0 0 0
v 1 0 0
v 0 1 0
f -3 -2 -1
`
	m, err := Parse([]byte(obj))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []uint32{0, 1, 2}
	for i, idx := range m.Indices {
		if idx != want[i] {
			t.Errorf("index %d = %d, want %d", i, idx, want[i])
		}
	}
}

func TestParseOutOfRangeIndex(t *testing.T) {
	obj := `
v 0 0 0
v 1 0 0
f 1 2 5
`
	if _, err := Parse([]byte(obj)); err == nil {
		t.Fatal("expected error for out-of-range face index")
	}
}

func TestParseNoFaces(t *testing.T) {
	if _, err := Parse([]byte("v 0 0 0\n")); err == nil {
		t.Fatal("expected error for OBJ without faces")
	}
}

func TestParseSharedCornersDeduplicated(t *testing.T) {
	// Two triangles sharing an edge: the shared (v, vt) corners must
	// map to the same output vertices so adjacency survives parsing.
	obj := `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3
f 1 3 4
`
	m, err := Parse([]byte(obj))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(m.Positions) != 4 {
		t.Errorf("vertex count = %d, want 4 (corners deduplicated)", len(m.Positions))
	}
}

func TestParseBadVertexLine(t *testing.T) {
	if _, err := Parse([]byte("v 1 stone 3\nf 1 1 1\n")); err == nil {
		t.Fatal("expected error for malformed vertex line")
	}
	if _, err := Parse([]byte("v 1 2\n")); err == nil || !strings.Contains(err.Error(), "3 coordinates") {
		t.Fatalf("expected coordinate-count error, got %v", err)
	}
}
