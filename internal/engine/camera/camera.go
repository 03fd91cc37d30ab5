// Package camera provides the orbit camera driven by mouse drag and wheel input.
package camera

import (
	"github.com/chewxy/math32"
)

// Default tuning values.
const (
	DefaultZoom         = -5.0
	DefaultAmortization = 0.95
	DefaultWheelDrag    = 512.0
)

// Settings holds the tunable camera constants.
type Settings struct {
	InitialZoom  float32
	Amortization float32 // Per-frame velocity decay, in (0, 1)
	WheelDrag    float32 // Wheel delta units per unit of zoom
}

// DefaultSettings returns the default camera tuning.
func DefaultSettings() Settings {
	return Settings{
		InitialZoom:  DefaultZoom,
		Amortization: DefaultAmortization,
		WheelDrag:    DefaultWheelDrag,
	}
}

// OrbitCamera orbits a fixed look-at point at the origin.
//
// Angles accumulate without wrapping. Velocity (DX, DY) is set by pointer
// motion while dragging and decays in Step once the drag ends.
type OrbitCamera struct {
	Zoom  float32 // Distance along the view axis, negative moves the mesh away
	Theta float32 // Azimuth (radians), rotation about Y
	Phi   float32 // Elevation (radians), rotation about X

	// Angular velocity, radians per frame
	DX, DY float32

	Dragging bool

	settings Settings
}

// NewOrbitCamera creates a camera at rest with the given settings.
func NewOrbitCamera(settings Settings) *OrbitCamera {
	c := &OrbitCamera{settings: settings}
	c.Reset()
	return c
}

// Settings returns the camera tuning.
func (c *OrbitCamera) Settings() Settings {
	return c.settings
}

// Reset puts the camera back to its initial pose and stops any motion.
func (c *OrbitCamera) Reset() {
	c.Zoom = c.settings.InitialZoom
	c.Theta = 0
	c.Phi = 0
	c.DX = 0
	c.DY = 0
	c.Dragging = false
}

// HandleWheel moves the camera along the view axis. delta is in wheel units
// (pixels, positive when scrolling towards the user). Zoom is not clamped.
func (c *OrbitCamera) HandleWheel(delta float32) {
	c.Zoom += delta / c.settings.WheelDrag
}

// BeginDrag starts a drag.
func (c *OrbitCamera) BeginDrag() {
	c.Dragging = true
}

// EndDrag ends a drag. The last velocity is kept so the mesh coasts.
func (c *OrbitCamera) EndDrag() {
	c.Dragging = false
}

// HandleMotion turns pointer movement into rotation while dragging.
// A full viewport width (height) of movement is one full turn, so movX and
// width must be in the same unit.
func (c *OrbitCamera) HandleMotion(movementX, movementY float32, width, height int) {
	if !c.Dragging || width <= 0 || height <= 0 {
		return
	}
	c.DX = movementX * 2 * math32.Pi / float32(width)
	c.DY = movementY * 2 * math32.Pi / float32(height)
	c.Theta += c.DX
	c.Phi += c.DY
}

// Step advances inertia by one frame. It does nothing while dragging.
func (c *OrbitCamera) Step() {
	if c.Dragging {
		return
	}
	c.DX *= c.settings.Amortization
	c.DY *= c.settings.Amortization
	c.Theta += c.DX
	c.Phi += c.DY
}

// State returns the values the transform pipeline consumes.
func (c *OrbitCamera) State() State {
	return State{Zoom: c.Zoom, Theta: c.Theta, Phi: c.Phi}
}

// State is a snapshot of the camera pose.
type State struct {
	Zoom, Theta, Phi float32
}
