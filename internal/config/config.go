// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Viewer   ViewerConfig   `yaml:"viewer"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// ViewerConfig holds model and subdivision settings.
type ViewerConfig struct {
	// ModelPath is the OBJ file to load on startup. Empty loads the
	// built-in tetrahedron.
	ModelPath string `yaml:"model_path"`

	// TexturePath is the texture applied to the model. Empty uses a
	// checkerboard fallback.
	TexturePath string `yaml:"texture_path"`

	// StartLevel is the subdivision level applied at startup.
	StartLevel int `yaml:"start_level"`

	// MaxLevel caps requested subdivision depth. Each level multiplies
	// the triangle count by 4.
	MaxLevel int `yaml:"max_level"`

	ShowFPS bool `yaml:"show_fps"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1024,
			Height:     768,
			Fullscreen: false,
			VSync:      true,
		},
		Viewer: ViewerConfig{
			ModelPath:   "",
			TexturePath: "",
			StartLevel:  0,
			MaxLevel:    5,
			ShowFPS:     false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
