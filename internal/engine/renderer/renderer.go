// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/loopview/internal/logger"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer owns global OpenGL state for the viewer.
type Renderer struct {
	config Config
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.MULTISAMPLE)
	gl.ClearColor(0.0, 0.0, 0.4, 1.0)

	return r, nil
}

// Begin clears the framebuffer for a new frame. The clear color is set
// every frame because the picking pass overrides it.
func (r *Renderer) Begin() {
	gl.ClearColor(0.0, 0.0, 0.4, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Resize updates the viewport to a new window size.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Size returns the current framebuffer size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
}
