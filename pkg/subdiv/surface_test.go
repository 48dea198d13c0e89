package subdiv

import (
	"testing"

	"github.com/Faultbox/loopview/pkg/math"
)

func meshesEqual(a, b *Mesh) bool {
	if len(a.Positions) != len(b.Positions) || len(a.UVs) != len(b.UVs) || len(a.Indices) != len(b.Indices) {
		return false
	}
	for i := range a.Positions {
		if a.Positions[i] != b.Positions[i] {
			return false
		}
	}
	for i := range a.UVs {
		if a.UVs[i] != b.UVs[i] {
			return false
		}
	}
	for i := range a.Indices {
		if a.Indices[i] != b.Indices[i] {
			return false
		}
	}
	return true
}

func TestNewSurfaceRejectsMalformedMesh(t *testing.T) {
	bad := &Mesh{
		Positions: []math.Vec3{{}, {}},
		Indices:   []uint32{0, 1, 2},
	}
	if _, err := NewSurface(bad); err == nil {
		t.Fatal("expected error for out-of-range index in base mesh")
	}
}

func TestSetLevelZeroRestoresBase(t *testing.T) {
	base := quadStrip()
	s, err := NewSurface(base)
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}

	s.SetLevel(3)
	if !s.SetLevel(0) {
		t.Error("SetLevel(0) after level 3 should report a change")
	}

	if !meshesEqual(s.Mesh(), base) {
		t.Error("level 0 mesh differs from the original base mesh")
	}
	if s.Level() != 0 {
		t.Errorf("level = %d, want 0", s.Level())
	}
}

func TestSetLevelSameTargetIsNoop(t *testing.T) {
	s, err := NewSurface(tetrahedron())
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}

	if !s.SetLevel(2) {
		t.Error("first SetLevel(2) should report a change")
	}
	snapshot := s.Mesh().Clone()

	if s.SetLevel(2) {
		t.Error("repeated SetLevel(2) should be a no-op")
	}
	if !meshesEqual(s.Mesh(), snapshot) {
		t.Error("repeated SetLevel(2) altered the mesh")
	}
}

func TestSetLevelClampsNegative(t *testing.T) {
	s, err := NewSurface(tetrahedron())
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	s.SetLevel(1)
	s.SetLevel(-3)
	if s.Level() != 0 {
		t.Errorf("level = %d, want 0 after negative target", s.Level())
	}
}

func TestDecreaseThenIncreaseMatchesDirect(t *testing.T) {
	direct, err := NewSurface(tetrahedron())
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	direct.SetLevel(3)

	roundabout, err := NewSurface(tetrahedron())
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	roundabout.SetLevel(3)
	roundabout.SetLevel(1)
	roundabout.SetLevel(3)

	if !meshesEqual(direct.Mesh(), roundabout.Mesh()) {
		t.Error("decrease-then-increase produced a different mesh than direct subdivision")
	}

	dn, rn := direct.Normals(), roundabout.Normals()
	if len(dn) != len(rn) {
		t.Fatalf("normal counts differ: %d vs %d", len(dn), len(rn))
	}
	for i := range dn {
		if dn[i] != rn[i] {
			t.Errorf("normal %d differs: %v vs %v", i, dn[i], rn[i])
		}
	}
}

func TestSurfaceLevelGrowth(t *testing.T) {
	s, err := NewSurface(tetrahedron())
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}

	wantTris := 4
	for level := 1; level <= 3; level++ {
		s.SetLevel(level)
		wantTris *= 4
		if got := s.Mesh().TriangleCount(); got != wantTris {
			t.Errorf("level %d: triangle count = %d, want %d", level, got, wantTris)
		}
		if len(s.Normals()) != len(s.Mesh().Positions) {
			t.Errorf("level %d: normal count %d != vertex count %d",
				level, len(s.Normals()), len(s.Mesh().Positions))
		}
	}
}

func TestSurfaceAnomaliesSurfaceToCaller(t *testing.T) {
	m, err := NewMesh(
		[]math.Vec3{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 0.5, Y: 1, Z: 0},
			{X: 0.5, Y: -1, Z: 0},
			{X: 0.5, Y: 0, Z: 1},
		},
		nil,
		[]uint32{
			0, 1, 2,
			1, 0, 3,
			0, 1, 4,
		},
	)
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}

	s, err := NewSurface(m)
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}

	s.SetLevel(1)
	if len(s.Anomalies()) == 0 {
		t.Error("expected anomalies for non-manifold input")
	}

	s.SetLevel(0)
	if len(s.Anomalies()) != 0 {
		t.Errorf("level 0 should clear anomalies, got %v", s.Anomalies())
	}
}
