package subdiv

import (
	gomath "math"

	"github.com/Faultbox/loopview/pkg/math"
)

// Result is the outcome of one subdivision pass: the refined mesh plus
// any topology anomalies that forced a fallback rule. The caller decides
// whether anomalies are worth treating as fatal.
type Result struct {
	Mesh      *Mesh
	Anomalies []Anomaly
}

// Subdivide applies one level of Loop subdivision and returns a fresh
// mesh; the input is not mutated. All weights read the input mesh only,
// so partially updated vertices can never leak into neighbor sums.
//
// The pass runs in three stages: reposition the original vertices,
// insert one midpoint vertex per distinct edge, then retessellate every
// triangle into four.
func Subdivide(m *Mesh) Result {
	adj := buildAdjacency(m)

	positions, uvs, anomalies := repositionVertices(m, adj)

	// Midpoint vertices are appended after the originals in
	// first-encounter order over the triangle list, which keeps the
	// output index buffer deterministic.
	midpoints := make(map[Edge]uint32, len(adj.faces))
	midpointFor := func(e Edge) uint32 {
		if idx, ok := midpoints[e]; ok {
			return idx
		}
		p, uv := edgePoint(m, adj, e)
		idx := uint32(len(positions))
		positions = append(positions, p)
		uvs = append(uvs, uv)
		midpoints[e] = idx
		return idx
	}

	indices := make([]uint32, 0, len(m.Indices)*4)
	for i := 0; i+2 < len(m.Indices); i += 3 {
		v0, v1, v2 := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		m01 := midpointFor(MakeEdge(v0, v1))
		m12 := midpointFor(MakeEdge(v1, v2))
		m20 := midpointFor(MakeEdge(v2, v0))
		indices = append(indices,
			v0, m01, m20,
			v1, m12, m01,
			v2, m20, m12,
			m01, m12, m20,
		)
	}

	return Result{
		Mesh:      &Mesh{Positions: positions, UVs: uvs, Indices: indices},
		Anomalies: append(anomalies, adj.anomalies...),
	}
}

// repositionVertices computes the smoothed position and UV for every
// original vertex. The results occupy the same indices as the inputs.
func repositionVertices(m *Mesh, adj *adjacency) ([]math.Vec3, []math.Vec2, []Anomaly) {
	positions := make([]math.Vec3, len(m.Positions), len(m.Positions)+len(adj.faces))
	uvs := make([]math.Vec2, len(m.UVs), len(m.UVs)+len(adj.faces))
	var anomalies []Anomaly

	for i := range m.Positions {
		v := uint32(i)
		ns := adj.neighbors[i]
		k := len(ns)

		if adj.boundaryVertex[i] {
			bn := adj.boundaryNeighbors(v)
			if len(bn) != 2 {
				// Corner or isolated boundary vertex: kept in place.
				// Full corner rules are out of scope.
				positions[i] = m.Positions[i]
				uvs[i] = m.UVs[i]
				anomalies = append(anomalies, Anomaly{Kind: AnomalyCornerVertex, Vertex: v})
				continue
			}
			positions[i] = m.Positions[i].Scale(6.0 / 8.0).
				Add(m.Positions[bn[0]].Scale(1.0 / 8.0)).
				Add(m.Positions[bn[1]].Scale(1.0 / 8.0))
			uvs[i] = m.UVs[i].Scale(6.0 / 8.0).
				Add(m.UVs[bn[0]].Scale(1.0 / 8.0)).
				Add(m.UVs[bn[1]].Scale(1.0 / 8.0))
			continue
		}

		if k < 3 {
			// No interior weight is defined below valence 3.
			positions[i] = m.Positions[i]
			uvs[i] = m.UVs[i]
			continue
		}

		beta := loopBeta(k)
		sumP := math.Vec3{}
		sumUV := math.Vec2{}
		for _, n := range ns {
			sumP = sumP.Add(m.Positions[n])
			sumUV = sumUV.Add(m.UVs[n])
		}
		center := 1 - float32(k)*beta
		positions[i] = m.Positions[i].Scale(center).Add(sumP.Scale(beta))
		uvs[i] = m.UVs[i].Scale(center).Add(sumUV.Scale(beta))
	}

	return positions, uvs, anomalies
}

// loopBeta returns the interior neighbor weight for valence k >= 3.
func loopBeta(k int) float32 {
	if k == 3 {
		return 3.0 / 16.0
	}
	c := 3.0/8.0 + 0.25*gomath.Cos(2*gomath.Pi/float64(k))
	return float32((5.0/8.0 - c*c) / float64(k))
}

// edgePoint computes the new vertex for one distinct edge. Boundary
// edges (and anomalous non-manifold ones) use the plain midpoint;
// interior edges blend in the two opposite vertices.
func edgePoint(m *Mesh, adj *adjacency, e Edge) (math.Vec3, math.Vec2) {
	opp := adj.opposite[e]
	if adj.faces[e] == 2 && len(opp) == 2 {
		p := m.Positions[e.A].Add(m.Positions[e.B]).Scale(3.0 / 8.0).
			Add(m.Positions[opp[0]].Add(m.Positions[opp[1]]).Scale(1.0 / 8.0))
		uv := m.UVs[e.A].Add(m.UVs[e.B]).Scale(3.0 / 8.0).
			Add(m.UVs[opp[0]].Add(m.UVs[opp[1]]).Scale(1.0 / 8.0))
		return p, uv
	}
	p := m.Positions[e.A].Add(m.Positions[e.B]).Scale(0.5)
	uv := m.UVs[e.A].Add(m.UVs[e.B]).Scale(0.5)
	return p, uv
}
