package subdiv

import (
	"fmt"

	"github.com/Faultbox/loopview/pkg/math"
)

// Surface owns a base mesh and its current subdivision state. The
// current mesh is a pure function of (base mesh, level): every level
// change rebuilds it from scratch, and lowering the level resets to a
// copy of the immutable base before re-subdividing.
//
// A Surface is exclusively owned by its caller and is not safe for
// concurrent mutation.
type Surface struct {
	base      *Mesh
	current   *Mesh
	normals   []math.Vec3
	level     int
	anomalies []Anomaly
}

// NewSurface validates the base mesh and creates a surface at level 0.
// Missing UVs are padded with zero vectors; any other structural defect
// is a hard error, since subdividing malformed data is never meaningful.
func NewSurface(base *Mesh) (*Surface, error) {
	b := base.Clone()
	if len(b.UVs) == 0 && len(b.Positions) > 0 {
		b.UVs = make([]math.Vec2, len(b.Positions))
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("base mesh: %w", err)
	}

	s := &Surface{
		base:    b,
		current: b.Clone(),
	}
	s.normals = ComputeNormals(s.current)
	return s, nil
}

// SetLevel subdivides (or resets) to the requested level, clamped to 0.
// It reports whether the mesh topology changed, in which case any
// GPU-resident copies of the buffers must be re-uploaded. Setting the
// current level again is a no-op.
func (s *Surface) SetLevel(target int) bool {
	if target < 0 {
		target = 0
	}
	if target == s.level {
		return false
	}

	if target < s.level {
		s.current = s.base.Clone()
		s.level = 0
	}

	var anomalies []Anomaly
	for s.level < target {
		res := Subdivide(s.current)
		s.current = res.Mesh
		anomalies = append(anomalies, res.Anomalies...)
		s.level++
	}

	s.anomalies = anomalies
	s.normals = ComputeNormals(s.current)
	return true
}

// Level returns the currently applied subdivision level.
func (s *Surface) Level() int {
	return s.level
}

// Mesh returns the current-level mesh. Callers must treat it as
// read-only; it is replaced wholesale on the next level change.
func (s *Surface) Mesh() *Mesh {
	return s.current
}

// Normals returns the per-vertex normals of the current mesh.
func (s *Surface) Normals() []math.Vec3 {
	return s.normals
}

// Anomalies returns the topology anomalies detected while deriving the
// current level. Empty for level 0.
func (s *Surface) Anomalies() []Anomaly {
	return s.anomalies
}
