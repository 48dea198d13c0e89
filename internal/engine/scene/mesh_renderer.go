package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/loopview/internal/engine/lighting"
	"github.com/Faultbox/loopview/internal/engine/scene/shaders"
	"github.com/Faultbox/loopview/internal/engine/shader"
	"github.com/Faultbox/loopview/pkg/math"
)

// MeshRenderer draws shaded mesh objects.
type MeshRenderer struct {
	program uint32

	locMVP       int32
	locModel     int32
	locLightDir  int32
	locAmbient   int32
	locDiffuse   int32
	locTexture   int32
	locFlatShade int32
	locFlatColor int32
}

// NewMeshRenderer compiles the mesh shader.
func NewMeshRenderer() (*MeshRenderer, error) {
	program, err := shader.CompileProgram(shaders.MeshVertexShader, shaders.MeshFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("mesh shader: %w", err)
	}

	mr := &MeshRenderer{program: program}
	mr.locMVP = shader.GetUniform(program, "uMVP")
	mr.locModel = shader.GetUniform(program, "uModel")
	mr.locLightDir = shader.GetUniform(program, "uLightDir")
	mr.locAmbient = shader.GetUniform(program, "uAmbient")
	mr.locDiffuse = shader.GetUniform(program, "uDiffuse")
	mr.locTexture = shader.GetUniform(program, "uTexture")
	mr.locFlatShade = shader.GetUniform(program, "uFlatShade")
	mr.locFlatColor = shader.GetUniform(program, "uFlatColor")
	return mr, nil
}

// Render draws the given objects with the given light.
func (mr *MeshRenderer) Render(viewProj math.Mat4, light lighting.Directional, objects []*MeshObject, fallbackTex uint32) {
	if len(objects) == 0 {
		return
	}

	gl.UseProgram(mr.program)

	dir := light.Direction()
	gl.Uniform3f(mr.locLightDir, dir.X, dir.Y, dir.Z)
	gl.Uniform3f(mr.locAmbient, light.Ambient.X, light.Ambient.Y, light.Ambient.Z)
	gl.Uniform3f(mr.locDiffuse, light.Diffuse.X, light.Diffuse.Y, light.Diffuse.Z)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(mr.locTexture, 0)

	for _, obj := range objects {
		if obj == nil || !obj.Visible || obj.vao == 0 || obj.indexCount == 0 {
			continue
		}

		model := obj.ModelMatrix()
		mvp := viewProj.Mul(model)
		gl.UniformMatrix4fv(mr.locMVP, 1, false, mvp.Ptr())
		gl.UniformMatrix4fv(mr.locModel, 1, false, model.Ptr())

		tex := obj.texture
		if tex == 0 {
			tex = fallbackTex
		}
		gl.BindTexture(gl.TEXTURE_2D, tex)

		gl.BindVertexArray(obj.vao)

		gl.Uniform1i(mr.locFlatShade, 0)
		gl.DrawElements(gl.TRIANGLES, obj.indexCount, gl.UNSIGNED_INT, nil)

		if obj.Wireframe {
			gl.Uniform1i(mr.locFlatShade, 1)
			gl.Uniform3f(mr.locFlatColor, 0.1, 0.9, 0.3)
			gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
			gl.Enable(gl.POLYGON_OFFSET_LINE)
			gl.PolygonOffset(-1.0, -1.0)
			gl.DrawElements(gl.TRIANGLES, obj.indexCount, gl.UNSIGNED_INT, nil)
			gl.Disable(gl.POLYGON_OFFSET_LINE)
			gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
		}
	}

	gl.BindVertexArray(0)
}

// Destroy releases the shader program.
func (mr *MeshRenderer) Destroy() {
	if mr.program != 0 {
		gl.DeleteProgram(mr.program)
		mr.program = 0
	}
}
