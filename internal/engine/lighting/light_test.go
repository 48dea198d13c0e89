package lighting

import (
	gomath "math"
	"testing"
)

func TestDirectionIsNormalized(t *testing.T) {
	d := Default()
	dir := d.Direction()
	if gomath.Abs(float64(dir.Length()-1)) > 1e-5 {
		t.Errorf("direction length = %f, want 1", dir.Length())
	}
}

func TestDirectionOverhead(t *testing.T) {
	d := Directional{Latitude: 90}
	dir := d.Direction()
	if gomath.Abs(float64(dir.Y-1)) > 1e-5 {
		t.Errorf("overhead light Y = %f, want 1", dir.Y)
	}
}
