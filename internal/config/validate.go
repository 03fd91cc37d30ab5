package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Validate rejects values the camera or the projection cannot work with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Window.WheelStep <= 0 {
		return fmt.Errorf("%w: wheel_step %v must be positive", ErrInvalid, c.Window.WheelStep)
	}

	cam := c.Camera
	if cam.Amortization <= 0 || cam.Amortization >= 1 {
		return fmt.Errorf("%w: amortization %v must be in (0, 1)", ErrInvalid, cam.Amortization)
	}
	if cam.WheelDrag <= 0 {
		return fmt.Errorf("%w: wheel_drag %v must be positive", ErrInvalid, cam.WheelDrag)
	}
	if cam.FOVDegrees <= 0 || cam.FOVDegrees >= 180 {
		return fmt.Errorf("%w: fov_degrees %v must be in (0, 180)", ErrInvalid, cam.FOVDegrees)
	}
	if cam.ZNear <= 0 || cam.ZFar <= cam.ZNear {
		return fmt.Errorf("%w: clip planes near=%v far=%v", ErrInvalid, cam.ZNear, cam.ZFar)
	}

	for i, v := range c.Render.ClearColor {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: clear_color[%d] = %v", ErrInvalid, i, v)
		}
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Logging.Level)
	}

	return nil
}
