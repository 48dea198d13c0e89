package subdiv

import "sort"

// adjacency is the edge/vertex connectivity of one subdivision level.
// It is scratch data: rebuilt from the index buffer every pass and
// discarded after the pass completes.
type adjacency struct {
	// faces counts incident faces per edge: 1 = boundary, 2 = interior.
	faces map[Edge]int

	// opposite lists, per edge, the third vertex of each incident face
	// in triangle order.
	opposite map[Edge][]uint32

	// neighbors holds each vertex's directly connected vertices,
	// deduplicated and sorted ascending for deterministic accumulation.
	neighbors [][]uint32

	// boundaryVertex marks vertices touching at least one boundary edge.
	boundaryVertex []bool

	anomalies []Anomaly
}

// buildAdjacency scans the triangle list once and derives the full
// connectivity snapshot. It never fails: edges with a face count other
// than 1 or 2 are recorded as anomalies and treated as boundary by the
// weighting passes.
func buildAdjacency(m *Mesh) *adjacency {
	adj := &adjacency{
		faces:          make(map[Edge]int),
		opposite:       make(map[Edge][]uint32),
		boundaryVertex: make([]bool, len(m.Positions)),
	}

	neighborSets := make([]map[uint32]struct{}, len(m.Positions))
	link := func(a, b uint32) {
		if neighborSets[a] == nil {
			neighborSets[a] = make(map[uint32]struct{})
		}
		neighborSets[a][b] = struct{}{}
	}

	for i := 0; i+2 < len(m.Indices); i += 3 {
		tri := [3]uint32{m.Indices[i], m.Indices[i+1], m.Indices[i+2]}
		for j := 0; j < 3; j++ {
			a, b := tri[j], tri[(j+1)%3]
			opp := tri[(j+2)%3]
			e := MakeEdge(a, b)
			adj.faces[e]++
			adj.opposite[e] = append(adj.opposite[e], opp)
			link(a, b)
			link(b, a)
		}
	}

	adj.neighbors = make([][]uint32, len(m.Positions))
	for v, set := range neighborSets {
		if len(set) == 0 {
			continue
		}
		ns := make([]uint32, 0, len(set))
		for n := range set {
			ns = append(ns, n)
		}
		sort.Slice(ns, func(i, j int) bool { return ns[i] < ns[j] })
		adj.neighbors[v] = ns
	}

	for e, count := range adj.faces {
		switch count {
		case 1:
			adj.boundaryVertex[e.A] = true
			adj.boundaryVertex[e.B] = true
		case 2:
			// interior
		default:
			adj.anomalies = append(adj.anomalies, Anomaly{
				Kind:      AnomalyNonManifoldEdge,
				Edge:      e,
				FaceCount: count,
			})
		}
	}
	sort.Slice(adj.anomalies, func(i, j int) bool {
		return adj.anomalies[i].Edge.Less(adj.anomalies[j].Edge)
	})

	return adj
}

// isBoundary reports whether e has exactly one incident face.
func (adj *adjacency) isBoundary(e Edge) bool {
	return adj.faces[e] == 1
}

// boundaryNeighbors returns the neighbors of v connected through a
// boundary edge, in ascending index order.
func (adj *adjacency) boundaryNeighbors(v uint32) []uint32 {
	var out []uint32
	for _, n := range adj.neighbors[v] {
		if adj.isBoundary(MakeEdge(v, n)) {
			out = append(out, n)
		}
	}
	return out
}
