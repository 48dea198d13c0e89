package app

import (
	"github.com/Faultbox/loopview/pkg/math"
	"github.com/Faultbox/loopview/pkg/subdiv"
)

// builtinTetrahedron returns the default model shown when no OBJ file is
// given. Subdividing it converges towards a sphere-like surface, which
// makes level changes easy to see.
func builtinTetrahedron() *subdiv.Mesh {
	positions := []math.Vec3{
		{X: 0, Y: 2, Z: 0},
		{X: -2, Y: -2, Z: -2},
		{X: 2, Y: -2, Z: -2},
		{X: 0, Y: -2, Z: 2},
	}
	uvs := []math.Vec2{
		{X: 0.5, Y: 1},
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 0.5, Y: 0.5},
	}
	indices := []uint32{
		1, 0, 2,
		2, 0, 3,
		3, 0, 1,
		3, 1, 2,
	}

	mesh, err := subdiv.NewMesh(positions, uvs, indices)
	if err != nil {
		// The constants above are known valid.
		panic(err)
	}
	return mesh
}
