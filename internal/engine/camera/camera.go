// Package camera provides an orbit camera for inspecting a model.
package camera

import (
	gomath "math"

	"github.com/Faultbox/loopview/pkg/math"
)

const (
	defaultDistance = 15.0
	defaultPitch    = 0.45
	minDistance     = 2.0
	maxDistance     = 60.0
	pitchLimit      = gomath.Pi/2 - 0.01
)

// Camera orbits around a fixed target point.
type Camera struct {
	target   math.Vec3
	yaw      float32
	pitch    float32
	distance float32

	fov  float32
	near float32
	far  float32
}

// New creates an orbit camera looking at the origin.
func New() *Camera {
	c := &Camera{
		fov:  45.0 * gomath.Pi / 180.0,
		near: 0.1,
		far:  200.0,
	}
	c.Reset()
	return c
}

// Reset restores the default orbit position.
func (c *Camera) Reset() {
	c.target = math.Vec3{}
	c.yaw = 0
	c.pitch = defaultPitch
	c.distance = defaultDistance
}

// RotateBy orbits the camera by the given yaw and pitch deltas in radians.
func (c *Camera) RotateBy(dyaw, dpitch float32) {
	c.yaw += dyaw
	c.pitch += dpitch
	if c.pitch > pitchLimit {
		c.pitch = pitchLimit
	}
	if c.pitch < -pitchLimit {
		c.pitch = -pitchLimit
	}
}

// Zoom moves the camera toward or away from the target.
// Positive delta zooms in.
func (c *Camera) Zoom(delta float32) {
	c.distance -= delta
	if c.distance < minDistance {
		c.distance = minDistance
	}
	if c.distance > maxDistance {
		c.distance = maxDistance
	}
}

// SetTarget changes the point the camera orbits around.
func (c *Camera) SetTarget(target math.Vec3) {
	c.target = target
}

// Position returns the camera position in world space.
func (c *Camera) Position() math.Vec3 {
	cosPitch := float32(gomath.Cos(float64(c.pitch)))
	return math.Vec3{
		X: c.target.X + c.distance*cosPitch*float32(gomath.Sin(float64(c.yaw))),
		Y: c.target.Y + c.distance*float32(gomath.Sin(float64(c.pitch))),
		Z: c.target.Z + c.distance*cosPitch*float32(gomath.Cos(float64(c.yaw))),
	}
}

// ViewMatrix returns the world-to-camera transform.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.target, math.Vec3{Y: 1})
}

// ProjectionMatrix returns the perspective projection for the given aspect ratio.
func (c *Camera) ProjectionMatrix(aspect float32) math.Mat4 {
	return math.Perspective(c.fov, aspect, c.near, c.far)
}
