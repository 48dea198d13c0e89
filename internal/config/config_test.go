package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1024 {
		t.Errorf("expected width 1024, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 768 {
		t.Errorf("expected height 768, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Viewer.StartLevel != 0 {
		t.Errorf("expected start level 0, got %d", cfg.Viewer.StartLevel)
	}
	if cfg.Viewer.MaxLevel != 5 {
		t.Errorf("expected max level 5, got %d", cfg.Viewer.MaxLevel)
	}
	if cfg.Viewer.ModelPath != "" {
		t.Errorf("expected empty model path, got %s", cfg.Viewer.ModelPath)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

viewer:
  model_path: "models/torus.obj"
  texture_path: "textures/checker.png"
  start_level: 2
  max_level: 6
  show_fps: true

logging:
  level: "debug"
  log_file: "viewer.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 1080 {
		t.Errorf("expected height 1080, got %d", cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}

	if cfg.Viewer.ModelPath != "models/torus.obj" {
		t.Errorf("expected model path models/torus.obj, got %s", cfg.Viewer.ModelPath)
	}
	if cfg.Viewer.StartLevel != 2 {
		t.Errorf("expected start level 2, got %d", cfg.Viewer.StartLevel)
	}
	if cfg.Viewer.MaxLevel != 6 {
		t.Errorf("expected max level 6, got %d", cfg.Viewer.MaxLevel)
	}
	if !cfg.Viewer.ShowFPS {
		t.Error("expected show_fps to be true")
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "viewer.log" {
		t.Errorf("expected log file 'viewer.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	// Only override one section; the rest keeps defaults.
	yamlContent := `
viewer:
  start_level: 3
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Viewer.StartLevel != 3 {
		t.Errorf("expected start level 3, got %d", cfg.Viewer.StartLevel)
	}
	if cfg.Graphics.Width != 1024 {
		t.Errorf("expected default width 1024, got %d", cfg.Graphics.Width)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "sub", "config.yaml")

	cfg := Default()
	cfg.Viewer.ModelPath = "suzanne.obj"
	cfg.Viewer.StartLevel = 1

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}
	if loaded.Viewer.ModelPath != "suzanne.obj" {
		t.Errorf("expected model path suzanne.obj, got %s", loaded.Viewer.ModelPath)
	}
	if loaded.Viewer.StartLevel != 1 {
		t.Errorf("expected start level 1, got %d", loaded.Viewer.StartLevel)
	}
}
