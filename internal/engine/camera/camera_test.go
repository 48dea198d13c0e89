package camera

import (
	gomath "math"
	"testing"
)

func TestPitchClamp(t *testing.T) {
	c := New()
	c.RotateBy(0, 10)
	if c.pitch > float32(gomath.Pi/2) {
		t.Errorf("pitch not clamped: %f", c.pitch)
	}
	c.RotateBy(0, -20)
	if c.pitch < -float32(gomath.Pi/2) {
		t.Errorf("pitch not clamped: %f", c.pitch)
	}
}

func TestZoomClamp(t *testing.T) {
	c := New()
	c.Zoom(1000)
	if c.distance < minDistance {
		t.Errorf("distance below minimum: %f", c.distance)
	}
	c.Zoom(-1000)
	if c.distance > maxDistance {
		t.Errorf("distance above maximum: %f", c.distance)
	}
}

func TestPositionDistance(t *testing.T) {
	c := New()
	c.RotateBy(0.7, 0.2)
	pos := c.Position().Sub(c.target)
	got := pos.Length()
	if gomath.Abs(float64(got-c.distance)) > 1e-4 {
		t.Errorf("position distance = %f, want %f", got, c.distance)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	c := New()
	c.RotateBy(1, 0.3)
	c.Zoom(5)
	c.Reset()
	if c.yaw != 0 || c.distance != defaultDistance {
		t.Errorf("reset did not restore defaults: yaw=%f distance=%f", c.yaw, c.distance)
	}
}
