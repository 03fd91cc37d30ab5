package transform

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Faultbox/meshview/internal/engine/camera"
	"github.com/Faultbox/meshview/pkg/math"
)

func TestViewportValidate(t *testing.T) {
	tests := []struct {
		vp      Viewport
		wantErr bool
	}{
		{Viewport{800, 600}, false},
		{Viewport{1, 1}, false},
		{Viewport{0, 600}, true},
		{Viewport{800, 0}, true},
		{Viewport{-1, 600}, true},
	}

	for _, tt := range tests {
		err := tt.vp.Validate()
		if tt.wantErr {
			require.ErrorIs(t, err, ErrInvalidViewport, "viewport %v", tt.vp)
		} else {
			require.NoError(t, err, "viewport %v", tt.vp)
		}
	}
}

func TestBuildRejectsInvalidViewport(t *testing.T) {
	_, err := Build(camera.State{Zoom: -5}, Viewport{Width: 640, Height: 0}, DefaultProjection())
	require.ErrorIs(t, err, ErrInvalidViewport)
}

func TestBuildRejectsDegenerateProjection(t *testing.T) {
	p := Projection{FOVY: 1, Near: 10, Far: 10}
	_, err := Build(camera.State{}, Viewport{Width: 640, Height: 480}, p)
	require.ErrorIs(t, err, math.ErrDegenerateProjection)
}

func TestBuildProjection(t *testing.T) {
	vp := Viewport{Width: 1600, Height: 900}
	p := DefaultProjection()

	m, err := Build(camera.State{Zoom: -5}, vp, p)
	require.NoError(t, err)
	require.Equal(t, math.Perspective(p.FOVY, vp.Aspect(), p.Near, p.Far), m.Projection)
	require.Equal(t, float32(-1), m.Projection[11])
}

func TestModelViewAtRest(t *testing.T) {
	mv := ModelView(camera.State{Zoom: -5})

	require.Equal(t, math.Translate(0, 0, -5), mv)
	require.Equal(t, math.Vec3{0, 0, -5}, mv.TransformPoint(math.Vec3{}))
}

func TestModelViewRotationOrder(t *testing.T) {
	state := camera.State{Zoom: -3, Theta: 0.8, Phi: -0.4}
	mv := ModelView(state)

	want := math.Translate(0, 0, -3).Mul(math.RotateX(-0.4)).Mul(math.RotateY(0.8))
	require.Equal(t, want, mv)

	// Swapping the rotations gives a different transform
	swapped := math.Translate(0, 0, -3).Mul(math.RotateY(0.8)).Mul(math.RotateX(-0.4))
	require.NotEqual(t, swapped, mv)
}

func TestModelViewKeepsOriginOnAxis(t *testing.T) {
	// The mesh is centered on the origin, so only zoom moves its center.
	for _, state := range []camera.State{
		{Zoom: -5, Theta: 1, Phi: 2},
		{Zoom: -2, Theta: -7, Phi: 100},
		{Zoom: 3, Theta: 1000, Phi: -1000},
	} {
		p := ModelView(state).TransformPoint(math.Vec3{})
		require.InDelta(t, 0, p[0], 1e-5)
		require.InDelta(t, 0, p[1], 1e-5)
		require.InDelta(t, state.Zoom, p[2], 1e-5)
	}
}

func TestBuildFromCamera(t *testing.T) {
	cam := camera.NewOrbitCamera(camera.DefaultSettings())
	cam.BeginDrag()
	cam.HandleMotion(100, 40, 800, 600)
	cam.EndDrag()
	cam.Step()

	m, err := Build(cam.State(), Viewport{Width: 800, Height: 600}, DefaultProjection())
	require.NoError(t, err)
	require.Equal(t, ModelView(cam.State()), m.ModelView)
}
