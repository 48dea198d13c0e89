package app

import (
	"testing"

	"github.com/Faultbox/loopview/pkg/subdiv"
)

func TestBuiltinTetrahedronIsValid(t *testing.T) {
	mesh := builtinTetrahedron()
	if err := mesh.Validate(); err != nil {
		t.Fatalf("built-in mesh invalid: %v", err)
	}
	if mesh.TriangleCount() != 4 {
		t.Errorf("triangle count = %d, want 4", mesh.TriangleCount())
	}
}

func TestBuiltinTetrahedronIsClosed(t *testing.T) {
	mesh := builtinTetrahedron()
	surface, err := subdiv.NewSurface(mesh)
	if err != nil {
		t.Fatal(err)
	}
	surface.SetLevel(2)
	if len(surface.Anomalies()) != 0 {
		t.Errorf("unexpected anomalies: %v", surface.Anomalies())
	}
}

func TestDigitScancodeMapping(t *testing.T) {
	// Scancode 39 is the 0 key, 30 through 38 are 1 through 9.
	if level, ok := digitScancode(39); !ok || level != 0 {
		t.Errorf("scancode 39 = (%d, %v), want (0, true)", level, ok)
	}
	if level, ok := digitScancode(30); !ok || level != 1 {
		t.Errorf("scancode 30 = (%d, %v), want (1, true)", level, ok)
	}
	if level, ok := digitScancode(38); !ok || level != 9 {
		t.Errorf("scancode 38 = (%d, %v), want (9, true)", level, ok)
	}
	if _, ok := digitScancode(4); ok {
		t.Error("letter scancode should not map to a level")
	}
}
