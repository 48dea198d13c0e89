package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/loopview/internal/engine/scene/shaders"
	"github.com/Faultbox/loopview/internal/engine/shader"
	"github.com/Faultbox/loopview/pkg/math"
)

// Grid draws a reference line grid on the XZ plane.
type Grid struct {
	program     uint32
	locMVP      int32
	locColor    int32
	vao         uint32
	vbo         uint32
	vertexCount int32
}

// NewGrid builds a grid spanning halfExtent units from the origin in
// each direction, with lines every step units.
func NewGrid(halfExtent, step float32) (*Grid, error) {
	program, err := shader.CompileProgram(shaders.GridVertexShader, shaders.GridFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("grid shader: %w", err)
	}

	g := &Grid{program: program}
	g.locMVP = shader.GetUniform(program, "uMVP")
	g.locColor = shader.GetUniform(program, "uColor")

	vertices := gridVertices(halfExtent, step)
	g.vertexCount = int32(len(vertices) / 3)

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)
	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)

	return g, nil
}

// gridVertices builds the line endpoints. Lines are placed by integer
// index so the boundary lines are never lost to float accumulation.
func gridVertices(halfExtent, step float32) []float32 {
	lines := int(halfExtent/step + 0.5)
	var vertices []float32
	for i := -lines; i <= lines; i++ {
		p := float32(i) * step
		vertices = append(vertices, p, 0, -halfExtent, p, 0, halfExtent)
		vertices = append(vertices, -halfExtent, 0, p, halfExtent, 0, p)
	}
	return vertices
}

// Render draws the grid with the given view-projection matrix.
func (g *Grid) Render(viewProj math.Mat4) {
	gl.UseProgram(g.program)
	gl.UniformMatrix4fv(g.locMVP, 1, false, viewProj.Ptr())
	gl.Uniform3f(g.locColor, 0.35, 0.35, 0.38)
	gl.BindVertexArray(g.vao)
	gl.DrawArrays(gl.LINES, 0, g.vertexCount)
	gl.BindVertexArray(0)
}

// Destroy releases GPU resources.
func (g *Grid) Destroy() {
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
		gl.DeleteBuffers(1, &g.vbo)
		g.vao, g.vbo = 0, 0
	}
	if g.program != 0 {
		gl.DeleteProgram(g.program)
		g.program = 0
	}
}
