// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Render  RenderConfig  `yaml:"render"`
	Data    DataConfig    `yaml:"data"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display and input settings.
type WindowConfig struct {
	Title      string  `yaml:"title"`
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	WheelStep  float32 `yaml:"wheel_step"` // Pixels per wheel tick
}

// CameraConfig holds orbit camera tuning and the projection frustum.
type CameraConfig struct {
	InitialZoom  float32 `yaml:"initial_zoom"`
	Amortization float32 `yaml:"amortization"`
	WheelDrag    float32 `yaml:"wheel_drag"`
	FOVDegrees   float32 `yaml:"fov_degrees"`
	ZNear        float32 `yaml:"z_near"`
	ZFar         float32 `yaml:"z_far"`
}

// RenderConfig holds rendering settings.
type RenderConfig struct {
	ClearColor [4]float32 `yaml:"clear_color"`
}

// DataConfig holds the mesh to open at startup.
type DataConfig struct {
	MeshPath string `yaml:"mesh_path"`
	Watch    bool   `yaml:"watch"` // Reload the mesh when the file changes

	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "meshview",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			WheelStep:  100,
		},
		Camera: CameraConfig{
			InitialZoom:  -5,
			Amortization: 0.95,
			WheelDrag:    512,
			FOVDegrees:   45,
			ZNear:        1,
			ZFar:         100,
		},
		Render: RenderConfig{
			ClearColor: [4]float32{0.375, 0.375, 0.375, 1.0},
		},
		Data: DataConfig{
			Watch:         true,
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:      "info",
			LogFile:    "",
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}
}
