// Package lighting provides lighting utilities for 3D rendering.
package lighting

import (
	gomath "math"

	"github.com/Faultbox/loopview/pkg/math"
)

// Directional is a single directional light for shading a model.
// Longitude is rotation around the Y axis in degrees, latitude is
// elevation from the horizon in degrees.
type Directional struct {
	Longitude float32
	Latitude  float32
	Ambient   math.Vec3
	Diffuse   math.Vec3
}

// Default returns the viewer's standard overhead light.
func Default() Directional {
	return Directional{
		Longitude: 45,
		Latitude:  55,
		Ambient:   math.Vec3{X: 0.25, Y: 0.25, Z: 0.25},
		Diffuse:   math.Vec3{X: 1.0, Y: 1.0, Z: 1.0},
	}
}

// Direction converts the longitude/latitude angles to a normalized
// direction vector pointing towards the light.
func (d Directional) Direction() math.Vec3 {
	lonRad := float64(d.Longitude) * gomath.Pi / 180.0
	latRad := float64(d.Latitude) * gomath.Pi / 180.0

	return math.Vec3{
		X: float32(gomath.Cos(latRad) * gomath.Sin(lonRad)),
		Y: float32(gomath.Sin(latRad)),
		Z: float32(gomath.Cos(latRad) * gomath.Cos(lonRad)),
	}
}
