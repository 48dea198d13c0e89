package scene

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/loopview/internal/logger"
	"github.com/Faultbox/loopview/pkg/math"
	"github.com/Faultbox/loopview/pkg/subdiv"
)

// meshVertex is the interleaved GPU vertex layout.
type meshVertex struct {
	Position math.Vec3
	Normal   math.Vec3
	TexCoord math.Vec2
}

// MeshObject is a subdivision surface placed in the scene. It owns the
// GPU buffers for the surface's current refinement level and re-uploads
// them whenever the level changes.
type MeshObject struct {
	name    string
	surface *subdiv.Surface

	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32

	texture uint32

	Position  math.Vec3
	Rotation  math.Quat
	Scale     float32
	Wireframe bool
	Visible   bool
}

// NewMeshObject creates a scene object for the given surface and uploads
// its base mesh to the GPU.
func NewMeshObject(name string, surface *subdiv.Surface) *MeshObject {
	o := &MeshObject{
		name:     name,
		surface:  surface,
		Rotation: math.QuatIdentity(),
		Scale:    1.0,
		Visible:  true,
	}
	o.upload()
	return o
}

// Name returns the object's display name.
func (o *MeshObject) Name() string {
	return o.name
}

// Surface returns the underlying subdivision surface.
func (o *MeshObject) Surface() *subdiv.Surface {
	return o.surface
}

// SetTexture assigns an OpenGL texture to the object. Zero means the
// scene's fallback texture is used.
func (o *MeshObject) SetTexture(tex uint32) {
	o.texture = tex
}

// SetLevel changes the subdivision level and re-uploads the mesh if the
// topology changed. Returns true if the level changed.
func (o *MeshObject) SetLevel(level int) bool {
	if !o.surface.SetLevel(level) {
		return false
	}

	for _, a := range o.surface.Anomalies() {
		logger.Warn("subdivision anomaly",
			zap.String("object", o.name),
			zap.String("anomaly", a.String()),
		)
	}

	o.upload()
	logger.Debug("mesh re-uploaded",
		zap.String("object", o.name),
		zap.Int("level", o.surface.Level()),
		zap.Int("triangles", o.surface.Mesh().TriangleCount()),
	)
	return true
}

// Level returns the current subdivision level.
func (o *MeshObject) Level() int {
	return o.surface.Level()
}

// ModelMatrix returns the object's world transform.
func (o *MeshObject) ModelMatrix() math.Mat4 {
	t := math.Translate(o.Position.X, o.Position.Y, o.Position.Z)
	r := o.Rotation.ToMat4()
	s := math.Scale(o.Scale, o.Scale, o.Scale)
	return t.Mul(r).Mul(s)
}

// upload builds the interleaved vertex buffer from the surface's current
// mesh and normals and uploads it.
func (o *MeshObject) upload() {
	mesh := o.surface.Mesh()
	normals := o.surface.Normals()

	vertices := make([]meshVertex, len(mesh.Positions))
	for i := range mesh.Positions {
		vertices[i] = meshVertex{
			Position: mesh.Positions[i],
			Normal:   normals[i],
			TexCoord: mesh.UVs[i],
		}
	}
	indices := mesh.Indices

	if len(vertices) == 0 || len(indices) == 0 {
		o.indexCount = 0
		return
	}

	if o.vao == 0 {
		gl.GenVertexArrays(1, &o.vao)
		gl.GenBuffers(1, &o.vbo)
		gl.GenBuffers(1, &o.ebo)
	}

	gl.BindVertexArray(o.vao)

	vertexSize := int(unsafe.Sizeof(meshVertex{}))
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*vertexSize, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)
	// TexCoord
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, int32(vertexSize), 6*4)
	gl.EnableVertexAttribArray(2)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, o.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	o.indexCount = int32(len(indices))
	gl.BindVertexArray(0)
}

// Destroy releases the object's GPU resources.
func (o *MeshObject) Destroy() {
	if o.vao != 0 {
		gl.DeleteVertexArrays(1, &o.vao)
		gl.DeleteBuffers(1, &o.vbo)
		gl.DeleteBuffers(1, &o.ebo)
		o.vao, o.vbo, o.ebo = 0, 0, 0
	}
	if o.texture != 0 {
		gl.DeleteTextures(1, &o.texture)
		o.texture = 0
	}
}
