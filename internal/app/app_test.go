package app

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/loopview/internal/config"
	"github.com/Faultbox/loopview/internal/engine/camera"
)

func testApp() *App {
	return &App{
		config: config.Default(),
		camera: camera.New(),
	}
}

func TestCameraControlToggle(t *testing.T) {
	a := testApp()
	if a.orbitEnabled {
		t.Fatal("camera control should start disabled")
	}
	a.handleKey(sdl.SCANCODE_C)
	if !a.orbitEnabled {
		t.Error("C should enable camera control")
	}
	a.handleKey(sdl.SCANCODE_C)
	if a.orbitEnabled {
		t.Error("C should disable camera control again")
	}
}

func TestResetTurnsCameraControlOff(t *testing.T) {
	a := testApp()
	a.handleKey(sdl.SCANCODE_C)
	a.handleKey(sdl.SCANCODE_R)
	if a.orbitEnabled {
		t.Error("R should turn camera control off")
	}
}

func TestHeldKeysIgnoredWhileControlDisabled(t *testing.T) {
	// input is nil here, so consulting the keyboard while control is
	// off would panic.
	a := &App{camera: camera.New()}
	a.handleHeldKeys(0.016)
}
