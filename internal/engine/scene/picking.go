package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/loopview/internal/engine/scene/shaders"
	"github.com/Faultbox/loopview/internal/engine/shader"
	"github.com/Faultbox/loopview/pkg/math"
)

// pickingRenderer draws each object in a unique flat color so the object
// under the cursor can be identified by reading back a single pixel.
type pickingRenderer struct {
	program  uint32
	locMVP   int32
	locColor int32
}

func newPickingRenderer() (*pickingRenderer, error) {
	program, err := shader.CompileProgram(shaders.PickingVertexShader, shaders.PickingFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("picking shader: %w", err)
	}

	pr := &pickingRenderer{program: program}
	pr.locMVP = shader.GetUniform(program, "uMVP")
	pr.locColor = shader.GetUniform(program, "uPickColor")
	return pr, nil
}

// render draws the objects with their handles encoded as colors.
func (pr *pickingRenderer) render(viewProj math.Mat4, handles []Handle, objects []*MeshObject) {
	gl.ClearColor(0, 0, 0, 0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(pr.program)

	for i, obj := range objects {
		if obj == nil || !obj.Visible || obj.vao == 0 || obj.indexCount == 0 {
			continue
		}

		mvp := viewProj.Mul(obj.ModelMatrix())
		gl.UniformMatrix4fv(pr.locMVP, 1, false, mvp.Ptr())

		r, g, b := encodeHandle(handles[i])
		gl.Uniform4f(pr.locColor, r, g, b, 1.0)

		gl.BindVertexArray(obj.vao)
		gl.DrawElements(gl.TRIANGLES, obj.indexCount, gl.UNSIGNED_INT, nil)
	}

	gl.BindVertexArray(0)
}

func (pr *pickingRenderer) destroy() {
	if pr.program != 0 {
		gl.DeleteProgram(pr.program)
		pr.program = 0
	}
}

func encodeHandle(h Handle) (r, g, b float32) {
	id := uint32(h)
	r = float32(id&0xFF) / 255.0
	g = float32((id>>8)&0xFF) / 255.0
	b = float32((id>>16)&0xFF) / 255.0
	return r, g, b
}

func decodeHandle(r, g, b uint8) Handle {
	return Handle(uint32(r) | uint32(g)<<8 | uint32(b)<<16)
}
