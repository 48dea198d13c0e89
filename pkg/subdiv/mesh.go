// Package subdiv implements Loop subdivision surfaces for triangle meshes.
package subdiv

import (
	"fmt"

	"github.com/Faultbox/loopview/pkg/math"
)

// Mesh is an indexed triangle mesh. Positions and UVs are index-aligned 1:1;
// every consecutive triple in Indices is one triangle.
type Mesh struct {
	Positions []math.Vec3
	UVs       []math.Vec2
	Indices   []uint32
}

// NewMesh builds a mesh from raw buffers and validates it. An empty UV slice
// is padded with zero vectors to match the position count; any other length
// mismatch is an error.
func NewMesh(positions []math.Vec3, uvs []math.Vec2, indices []uint32) (*Mesh, error) {
	m := &Mesh{
		Positions: positions,
		UVs:       uvs,
		Indices:   indices,
	}
	if len(m.UVs) == 0 && len(m.Positions) > 0 {
		m.UVs = make([]math.Vec2, len(m.Positions))
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks structural invariants: triangle-multiple index count,
// position/uv alignment, and index range.
func (m *Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("index count %d is not a multiple of 3", len(m.Indices))
	}
	if len(m.UVs) != len(m.Positions) {
		return fmt.Errorf("uv count %d does not match vertex count %d", len(m.UVs), len(m.Positions))
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Positions) {
			return fmt.Errorf("index %d at position %d out of range (have %d vertices)", idx, i, len(m.Positions))
		}
	}
	return nil
}

// Clone returns a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	c := &Mesh{
		Positions: make([]math.Vec3, len(m.Positions)),
		UVs:       make([]math.Vec2, len(m.UVs)),
		Indices:   make([]uint32, len(m.Indices)),
	}
	copy(c.Positions, m.Positions)
	copy(c.UVs, m.UVs)
	copy(c.Indices, m.Indices)
	return c
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}
