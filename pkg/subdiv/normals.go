package subdiv

import "github.com/Faultbox/loopview/pkg/math"

// ComputeNormals derives per-vertex normals from the triangle list by
// accumulating unnormalized face cross products, which weights each face
// by its area, then unit-normalizing. Degenerate triangles contribute a
// zero vector, and a vertex touched only by degenerate faces keeps a
// zero normal instead of propagating NaN.
func ComputeNormals(m *Mesh) []math.Vec3 {
	normals := make([]math.Vec3, len(m.Positions))

	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0, i1, i2 := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		e1 := m.Positions[i1].Sub(m.Positions[i0])
		e2 := m.Positions[i2].Sub(m.Positions[i0])
		n := e1.Cross(e2)
		normals[i0] = normals[i0].Add(n)
		normals[i1] = normals[i1].Add(n)
		normals[i2] = normals[i2].Add(n)
	}

	for i := range normals {
		// Normalize returns the zero vector for zero length.
		normals[i] = normals[i].Normalize()
	}
	return normals
}
