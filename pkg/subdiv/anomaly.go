package subdiv

import "fmt"

// AnomalyKind classifies a topology defect found during a subdivision pass.
type AnomalyKind int

const (
	// AnomalyNonManifoldEdge is an edge incident to more than two faces.
	// The pass falls back to the boundary midpoint rule for such edges.
	AnomalyNonManifoldEdge AnomalyKind = iota

	// AnomalyCornerVertex is a boundary vertex without exactly two boundary
	// neighbors. The pass leaves its position and UV unchanged.
	AnomalyCornerVertex
)

// Anomaly describes one spot where the input broke the manifold assumption
// and a conservative fallback rule was applied instead of aborting.
type Anomaly struct {
	Kind      AnomalyKind
	Edge      Edge   // set for edge anomalies
	Vertex    uint32 // set for vertex anomalies
	FaceCount int    // faces incident to Edge, edge anomalies only
}

func (a Anomaly) String() string {
	switch a.Kind {
	case AnomalyNonManifoldEdge:
		return fmt.Sprintf("non-manifold edge {%d,%d} with %d incident faces", a.Edge.A, a.Edge.B, a.FaceCount)
	case AnomalyCornerVertex:
		return fmt.Sprintf("boundary vertex %d without exactly 2 boundary neighbors", a.Vertex)
	default:
		return fmt.Sprintf("unknown anomaly kind %d", int(a.Kind))
	}
}
