package subdiv

// Edge is a canonical unordered pair of vertex indices with A <= B.
// Normalizing once at construction lets it serve directly as a map key;
// MakeEdge(a, b) and MakeEdge(b, a) produce the same value.
type Edge struct {
	A, B uint32
}

// MakeEdge returns the canonical edge for the two endpoints.
func MakeEdge(a, b uint32) Edge {
	if b < a {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// Less reports whether e orders before other, for deterministic output.
func (e Edge) Less(other Edge) bool {
	if e.A != other.A {
		return e.A < other.A
	}
	return e.B < other.B
}
