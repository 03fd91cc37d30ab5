// Package transform builds the per-frame projection and model-view matrices
// from the orbit camera and the viewport.
package transform

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/meshview/internal/engine/camera"
	"github.com/Faultbox/meshview/pkg/math"
)

// ErrInvalidViewport is returned for viewports with a non-positive side.
var ErrInvalidViewport = errors.New("invalid viewport")

// Viewport is the drawable size in pixels.
type Viewport struct {
	Width  int
	Height int
}

// Validate reports whether the viewport can produce a projection.
func (v Viewport) Validate() error {
	if v.Width <= 0 || v.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidViewport, v.Width, v.Height)
	}
	return nil
}

// Aspect returns width/height. Only meaningful for a valid viewport.
func (v Viewport) Aspect() float32 {
	return float32(v.Width) / float32(v.Height)
}

// Projection holds the fixed frustum parameters.
type Projection struct {
	FOVY float32 // Vertical field of view, radians
	Near float32
	Far  float32
}

// DefaultProjection returns a 45° frustum from 1 to 100.
func DefaultProjection() Projection {
	return Projection{
		FOVY: 45 * math32.Pi / 180,
		Near: 1.0,
		Far:  100.0,
	}
}

// Matrices are the two uniforms the renderer binds each frame.
type Matrices struct {
	Projection math.Mat4
	ModelView  math.Mat4
}

// Build derives the frame matrices. The viewport is validated first so the
// projection never divides by a zero height.
func Build(state camera.State, vp Viewport, p Projection) (Matrices, error) {
	if err := vp.Validate(); err != nil {
		return Matrices{}, err
	}

	proj, err := math.NewPerspective(p.FOVY, vp.Aspect(), p.Near, p.Far)
	if err != nil {
		return Matrices{}, err
	}

	return Matrices{
		Projection: proj,
		ModelView:  ModelView(state),
	}, nil
}

// ModelView returns translate(0, 0, zoom), then rotate phi about X, then
// rotate theta about Y, each applied to the previous result.
func ModelView(state camera.State) math.Mat4 {
	return math.Identity().
		Translated(0, 0, state.Zoom).
		RotatedX(state.Phi).
		RotatedY(state.Theta)
}
