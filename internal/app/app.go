// Package app implements the viewer's main loop and input handling.
package app

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sqweek/dialog"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/loopview/internal/config"
	"github.com/Faultbox/loopview/internal/engine/camera"
	"github.com/Faultbox/loopview/internal/engine/input"
	"github.com/Faultbox/loopview/internal/engine/renderer"
	"github.com/Faultbox/loopview/internal/engine/scene"
	"github.com/Faultbox/loopview/internal/engine/texture"
	"github.com/Faultbox/loopview/internal/engine/window"
	"github.com/Faultbox/loopview/internal/logger"
	"github.com/Faultbox/loopview/pkg/objfile"
	"github.com/Faultbox/loopview/pkg/subdiv"
)

const orbitSpeed = 1.6 // radians per second for arrow-key orbit

// App is the viewer instance.
type App struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	scene    *scene.Scene
	camera   *camera.Camera

	selected scene.Handle

	// Arrow-key orbit only acts while camera control is toggled on.
	orbitEnabled bool

	// Set by the file dialog goroutine, consumed on the main thread.
	mu           sync.Mutex
	pendingModel string
}

// New creates the viewer, loads the initial model, and prepares the scene.
func New(cfg *config.Config) (*App, error) {
	slog.Info("initializing viewer",
		"width", cfg.Graphics.Width,
		"height", cfg.Graphics.Height,
	)

	a := &App{
		config: cfg,
	}

	// Create window (this also creates OpenGL context)
	var err error
	a.window, err = window.New(window.Config{
		Title:      "loopview",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	a.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.scene, err = scene.New()
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}

	a.camera = camera.New()
	a.input = input.New()

	if err := a.loadModel(cfg.Viewer.ModelPath); err != nil {
		a.Close()
		return nil, err
	}

	slog.Info("viewer initialized")
	return a, nil
}

// loadModel replaces the scene contents with the model at path. An empty
// path loads the built-in tetrahedron.
func (a *App) loadModel(path string) error {
	var mesh *subdiv.Mesh
	var err error
	var name string

	if path == "" {
		mesh = builtinTetrahedron()
		name = "tetrahedron"
	} else {
		mesh, err = objfile.Load(path)
		if err != nil {
			return fmt.Errorf("loading model: %w", err)
		}
		name = path
	}

	surface, err := subdiv.NewSurface(mesh)
	if err != nil {
		return fmt.Errorf("building surface: %w", err)
	}

	// Drop the previous model, if any.
	if a.selected != scene.InvalidHandle {
		a.scene.Remove(a.selected)
		a.selected = scene.InvalidHandle
	}

	obj := scene.NewMeshObject(name, surface)
	obj.SetTexture(a.loadTexture())
	a.selected = a.scene.Add(obj)

	level := a.config.Viewer.StartLevel
	if level > 0 {
		obj.SetLevel(a.clampLevel(level))
	}

	logger.Info("model loaded",
		zap.String("model", name),
		zap.Int("vertices", len(mesh.Positions)),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Int("level", obj.Level()),
	)
	return nil
}

// loadTexture loads the configured texture, falling back to a
// checkerboard when no path is set or decoding fails.
func (a *App) loadTexture() uint32 {
	path := a.config.Viewer.TexturePath
	if path != "" {
		img, err := texture.LoadFile(path)
		if err == nil {
			return texture.Upload(img)
		}
		logger.Warn("failed to load texture, using checkerboard",
			zap.String("path", path),
			zap.Error(err),
		)
	}
	return texture.Upload(texture.Checkerboard(256, 8))
}

func (a *App) clampLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level > a.config.Viewer.MaxLevel {
		return a.config.Viewer.MaxLevel
	}
	return level
}

// Run starts the main loop. It returns when the user quits.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	slog.Info("starting viewer loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Process input
		if a.input.Update() {
			a.running = false
			break
		}
		for _, event := range a.input.Events() {
			a.handleEvent(event)
		}
		a.handleHeldKeys(dt)

		// 2. Apply a model path queued by the file dialog
		a.mu.Lock()
		pending := a.pendingModel
		a.pendingModel = ""
		a.mu.Unlock()
		if pending != "" {
			if err := a.loadModel(pending); err != nil {
				logger.Error("failed to open model",
					zap.String("path", pending),
					zap.Error(err),
				)
			}
		}

		// 3. Render
		a.render()
		a.window.SwapBuffers()

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			if a.config.Viewer.ShowFPS {
				a.window.SetTitle(fmt.Sprintf("loopview  %d fps", frameCount))
			}
			slog.Debug("fps", "count", frameCount, "dt", fmt.Sprintf("%.2fms", dt*1000))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (a *App) handleEvent(event input.Event) {
	switch event.Type {
	case input.EventWindowResize:
		a.renderer.Resize(event.Width, event.Height)

	case input.EventMouseWheel:
		a.camera.Zoom(float32(event.WheelY))

	case input.EventMouseDown:
		if event.Button == sdl.BUTTON_LEFT {
			a.pick(event.MouseX, event.MouseY)
		}

	case input.EventKeyDown:
		a.handleKey(event.Key)
	}
}

func (a *App) handleKey(key sdl.Scancode) {
	if level, ok := digitScancode(key); ok {
		a.setLevel(level)
		return
	}

	switch key {
	case sdl.SCANCODE_ESCAPE:
		a.running = false
	case sdl.SCANCODE_W:
		a.toggleWireframe()
	case sdl.SCANCODE_G:
		a.scene.ShowGrid = !a.scene.ShowGrid
	case sdl.SCANCODE_C:
		a.orbitEnabled = !a.orbitEnabled
		slog.Debug("camera control", "enabled", a.orbitEnabled)
	case sdl.SCANCODE_R:
		a.camera.Reset()
		a.orbitEnabled = false
	case sdl.SCANCODE_O:
		a.openModelDialog()
	}
}

// handleHeldKeys applies continuous controls, currently arrow-key orbit.
func (a *App) handleHeldKeys(dt float64) {
	if !a.orbitEnabled {
		return
	}
	step := float32(dt) * orbitSpeed
	if a.input.IsKeyDown(sdl.SCANCODE_LEFT) {
		a.camera.RotateBy(-step, 0)
	}
	if a.input.IsKeyDown(sdl.SCANCODE_RIGHT) {
		a.camera.RotateBy(step, 0)
	}
	if a.input.IsKeyDown(sdl.SCANCODE_UP) {
		a.camera.RotateBy(0, step)
	}
	if a.input.IsKeyDown(sdl.SCANCODE_DOWN) {
		a.camera.RotateBy(0, -step)
	}
}

// digitScancode maps the top-row digit keys to subdivision levels.
func digitScancode(key sdl.Scancode) (int, bool) {
	if key == sdl.SCANCODE_0 {
		return 0, true
	}
	if key >= sdl.SCANCODE_1 && key <= sdl.SCANCODE_9 {
		return int(key-sdl.SCANCODE_1) + 1, true
	}
	return 0, false
}

func (a *App) setLevel(level int) {
	obj, ok := a.scene.Get(a.selected)
	if !ok {
		return
	}
	level = a.clampLevel(level)
	if obj.SetLevel(level) {
		logger.Info("subdivision level changed",
			zap.String("object", obj.Name()),
			zap.Int("level", obj.Level()),
			zap.Int("triangles", obj.Surface().Mesh().TriangleCount()),
		)
	}
}

func (a *App) toggleWireframe() {
	obj, ok := a.scene.Get(a.selected)
	if !ok {
		return
	}
	obj.Wireframe = !obj.Wireframe
}

// pick selects the object under the cursor, if any.
func (a *App) pick(x, y int) {
	width, height := a.window.GetSize()
	view := a.camera.ViewMatrix()
	proj := a.camera.ProjectionMatrix(float32(width) / float32(height))

	h := a.scene.Pick(view, proj, x, y, width, height)
	if h == scene.InvalidHandle {
		return
	}
	a.selected = h
	if obj, ok := a.scene.Get(h); ok {
		slog.Debug("object selected", "name", obj.Name())
	}
}

// openModelDialog shows a native file dialog to select an OBJ file.
func (a *App) openModelDialog() {
	// Run in a goroutine to not block the loop. SDL window operations
	// must stay on the main thread, so the chosen path is queued and
	// loaded from Run.
	go func() {
		filename, err := dialog.File().
			Filter("Wavefront OBJ", "obj").
			Filter("All Files", "*").
			Title("Open Model").
			Load()
		if err != nil {
			if err != dialog.ErrCancelled {
				logger.Error("file dialog failed", zap.Error(err))
			}
			return
		}

		a.mu.Lock()
		a.pendingModel = filename
		a.mu.Unlock()
	}()
}

func (a *App) render() {
	a.renderer.Begin()

	width, height := a.window.GetSize()
	view := a.camera.ViewMatrix()
	proj := a.camera.ProjectionMatrix(float32(width) / float32(height))
	a.scene.Render(view, proj)
}

// Close cleans up viewer resources.
func (a *App) Close() {
	slog.Info("closing viewer")

	if a.scene != nil {
		a.scene.Destroy()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
