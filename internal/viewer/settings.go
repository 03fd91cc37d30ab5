package viewer

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/meshview/internal/config"
	"github.com/Faultbox/meshview/internal/engine/camera"
	"github.com/Faultbox/meshview/internal/engine/renderer"
	"github.com/Faultbox/meshview/internal/engine/transform"
	"github.com/Faultbox/meshview/internal/engine/window"
)

func windowConfig(cfg *config.Config) window.Config {
	return window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
		WheelStep:  cfg.Window.WheelStep,
	}
}

func rendererConfig(cfg *config.Config) renderer.Config {
	return renderer.Config{ClearColor: cfg.Render.ClearColor}
}

func cameraSettings(cfg *config.Config) camera.Settings {
	return camera.Settings{
		InitialZoom:  cfg.Camera.InitialZoom,
		Amortization: cfg.Camera.Amortization,
		WheelDrag:    cfg.Camera.WheelDrag,
	}
}

func projection(cfg *config.Config) transform.Projection {
	return transform.Projection{
		FOVY: cfg.Camera.FOVDegrees * math32.Pi / 180,
		Near: cfg.Camera.ZNear,
		Far:  cfg.Camera.ZFar,
	}
}
