// Package scene manages the objects shown by the viewer and draws them.
package scene

import (
	"fmt"
	"sort"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/loopview/internal/engine/framebuffer"
	"github.com/Faultbox/loopview/internal/engine/lighting"
	"github.com/Faultbox/loopview/pkg/math"
)

// Handle identifies an object in the scene. The zero handle is never
// assigned.
type Handle uint32

// InvalidHandle is returned when no object matches.
const InvalidHandle Handle = 0

// Scene owns the set of mesh objects and the renderers that draw them.
type Scene struct {
	objects map[Handle]*MeshObject
	next    Handle

	meshRenderer *MeshRenderer
	picking      *pickingRenderer
	pickTarget   *framebuffer.Framebuffer
	grid         *Grid

	light    lighting.Directional
	ShowGrid bool

	fallbackTex uint32
}

// New creates an empty scene.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New() (*Scene, error) {
	s := &Scene{
		objects:  make(map[Handle]*MeshObject),
		next:     1,
		light:    lighting.Default(),
		ShowGrid: true,
	}

	var err error
	s.meshRenderer, err = NewMeshRenderer()
	if err != nil {
		return nil, fmt.Errorf("creating mesh renderer: %w", err)
	}

	s.picking, err = newPickingRenderer()
	if err != nil {
		s.Destroy()
		return nil, fmt.Errorf("creating picking renderer: %w", err)
	}

	s.grid, err = NewGrid(10, 1)
	if err != nil {
		s.Destroy()
		return nil, fmt.Errorf("creating grid: %w", err)
	}

	s.createFallbackTexture()

	return s, nil
}

func (s *Scene) createFallbackTexture() {
	gl.GenTextures(1, &s.fallbackTex)
	gl.BindTexture(gl.TEXTURE_2D, s.fallbackTex)
	white := []uint8{255, 255, 255, 255}
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, 1, 1, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(white))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
}

// Add places an object in the scene and returns its handle.
func (s *Scene) Add(obj *MeshObject) Handle {
	h := s.next
	s.next++
	s.objects[h] = obj
	return h
}

// Get returns the object for the given handle.
func (s *Scene) Get(h Handle) (*MeshObject, bool) {
	obj, ok := s.objects[h]
	return obj, ok
}

// Remove destroys the object's GPU resources and removes it from the
// scene. Returns false if the handle is unknown.
func (s *Scene) Remove(h Handle) bool {
	obj, ok := s.objects[h]
	if !ok {
		return false
	}
	obj.Destroy()
	delete(s.objects, h)
	return true
}

// Len returns the number of objects in the scene.
func (s *Scene) Len() int {
	return len(s.objects)
}

// SetLight changes the scene's directional light.
func (s *Scene) SetLight(light lighting.Directional) {
	s.light = light
}

// sorted returns handles and objects in handle order so draw order is
// stable between frames.
func (s *Scene) sorted() ([]Handle, []*MeshObject) {
	handles := make([]Handle, 0, len(s.objects))
	for h := range s.objects {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })

	objects := make([]*MeshObject, len(handles))
	for i, h := range handles {
		objects[i] = s.objects[h]
	}
	return handles, objects
}

// Render draws the grid and all visible objects.
func (s *Scene) Render(view, proj math.Mat4) {
	viewProj := proj.Mul(view)

	if s.ShowGrid {
		s.grid.Render(viewProj)
	}

	_, objects := s.sorted()
	s.meshRenderer.Render(viewProj, s.light, objects, s.fallbackTex)
}

// Pick renders the scene in picking colors into an offscreen target and
// returns the handle of the object at window coordinates (x, y), or
// InvalidHandle if none. y has its origin at the top left.
func (s *Scene) Pick(view, proj math.Mat4, x, y, width, height int) Handle {
	if x < 0 || y < 0 || x >= width || y >= height {
		return InvalidHandle
	}

	if s.pickTarget == nil {
		var err error
		s.pickTarget, err = framebuffer.New(int32(width), int32(height))
		if err != nil {
			return InvalidHandle
		}
	} else {
		s.pickTarget.Resize(int32(width), int32(height))
	}

	restore := s.pickTarget.BindWithViewport()
	defer restore()

	viewProj := proj.Mul(view)
	handles, objects := s.sorted()
	s.picking.render(viewProj, handles, objects)

	pixel := s.pickTarget.ReadPixel(int32(x), int32(height-1-y))
	return decodeHandle(pixel[0], pixel[1], pixel[2])
}

// Destroy releases all scene resources.
func (s *Scene) Destroy() {
	for h, obj := range s.objects {
		obj.Destroy()
		delete(s.objects, h)
	}
	if s.meshRenderer != nil {
		s.meshRenderer.Destroy()
		s.meshRenderer = nil
	}
	if s.picking != nil {
		s.picking.destroy()
		s.picking = nil
	}
	if s.pickTarget != nil {
		s.pickTarget.Destroy()
		s.pickTarget = nil
	}
	if s.grid != nil {
		s.grid.Destroy()
		s.grid = nil
	}
	if s.fallbackTex != 0 {
		gl.DeleteTextures(1, &s.fallbackTex)
		s.fallbackTex = 0
	}
}
