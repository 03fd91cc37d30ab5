package viewer

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/meshview/internal/config"
	"github.com/Faultbox/meshview/internal/engine/camera"
	"github.com/Faultbox/meshview/internal/engine/input"
	"github.com/Faultbox/meshview/internal/engine/transform"
	"github.com/Faultbox/meshview/pkg/formats"
)

type fakeRenderer struct {
	uploads   []*formats.STLMesh
	clears    int
	draws     []transform.Matrices
	uploadErr error
}

func (f *fakeRenderer) Upload(mesh *formats.STLMesh) error {
	if f.uploadErr != nil {
		return f.uploadErr
	}
	f.uploads = append(f.uploads, mesh)
	return nil
}

func (f *fakeRenderer) Clear(transform.Viewport) {
	f.clears++
}

func (f *fakeRenderer) Draw(_ transform.Viewport, m transform.Matrices) {
	f.draws = append(f.draws, m)
}

// stlBytes encodes one triangle per offset, each spanning a unit square.
func stlBytes(offsets ...float32) []byte {
	buf := new(bytes.Buffer)
	buf.Write(make([]byte, formats.STLHeaderSize))
	binary.Write(buf, binary.LittleEndian, uint32(len(offsets)))
	for _, o := range offsets {
		binary.Write(buf, binary.LittleEndian, [3]float32{0, 0, 1})
		binary.Write(buf, binary.LittleEndian, [3][3]float32{{o, 0, 0}, {o + 1, 0, 0}, {o, 1, 1}})
		binary.Write(buf, binary.LittleEndian, uint16(0))
	}
	return buf.Bytes()
}

func newTestSession(r Renderer) *Session {
	return NewSession(r, camera.DefaultSettings(), transform.DefaultProjection(),
		transform.Viewport{Width: 800, Height: 600})
}

func TestSessionLoad(t *testing.T) {
	r := &fakeRenderer{}
	s := newTestSession(r)

	require.NotEmpty(t, s.ID)
	require.Nil(t, s.Mesh())

	require.NoError(t, s.Load("a.stl", stlBytes(0, 3)))
	require.Len(t, r.uploads, 1)
	assert.Equal(t, uint32(6), s.Mesh().VertexCount)
	assert.Equal(t, "a.stl", s.Path())
}

func TestSessionRejectedLoadKeepsMesh(t *testing.T) {
	r := &fakeRenderer{}
	s := newTestSession(r)
	require.NoError(t, s.Load("good.stl", stlBytes(0)))
	good := s.Mesh()

	s.Camera().HandleWheel(512)

	err := s.Load("bad.stl", stlBytes(0)[:90])
	require.ErrorIs(t, err, formats.ErrMisalignedPayload)

	assert.Same(t, good, s.Mesh())
	assert.Equal(t, "good.stl", s.Path())
	assert.Len(t, r.uploads, 1)
	assert.Equal(t, float32(-4), s.Camera().Zoom, "failed load must not reset the camera")
}

func TestSessionUploadFailureKeepsMesh(t *testing.T) {
	r := &fakeRenderer{}
	s := newTestSession(r)
	require.NoError(t, s.Load("good.stl", stlBytes(0)))

	r.uploadErr = errors.New("out of memory")
	err := s.Load("other.stl", stlBytes(5, 6))
	require.Error(t, err)
	assert.Equal(t, "good.stl", s.Path())
	assert.Equal(t, uint32(3), s.Mesh().VertexCount)
}

func TestSessionCameraResetOnNewFile(t *testing.T) {
	s := newTestSession(&fakeRenderer{})
	require.NoError(t, s.Load("a.stl", stlBytes(0)))

	s.Camera().HandleWheel(1024)
	s.Camera().Theta = 2

	// Same file with new content keeps the view
	require.NoError(t, s.Load("a.stl", stlBytes(0, 1)))
	assert.Equal(t, float32(-3), s.Camera().Zoom)
	assert.Equal(t, float32(2), s.Camera().Theta)

	// A different file starts from the initial pose
	require.NoError(t, s.Load("b.stl", stlBytes(4)))
	assert.Equal(t, camera.State{Zoom: -5}, s.Camera().State())
}

func TestSessionIdenticalContentNotUploaded(t *testing.T) {
	r := &fakeRenderer{}
	s := newTestSession(r)
	data := stlBytes(0, 2)

	require.NoError(t, s.Load("a.stl", data))
	require.NoError(t, s.Load("a.stl", append([]byte(nil), data...)))
	assert.Len(t, r.uploads, 1)
}

func TestSessionLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "part.stl")
	require.NoError(t, os.WriteFile(path, stlBytes(0), 0644))

	s := newTestSession(&fakeRenderer{})
	require.NoError(t, s.LoadFile(path))
	assert.True(t, filepath.IsAbs(s.Path()))

	err := s.LoadFile(filepath.Join(dir, "missing.stl"))
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, path, s.Path())
}

func TestSessionHandleEvent(t *testing.T) {
	s := newTestSession(&fakeRenderer{})
	cam := s.Camera()

	s.HandleEvent(input.Event{Type: input.EventMouseMove, RelX: 100})
	assert.Zero(t, cam.Theta, "motion without a pressed button")

	s.HandleEvent(input.Event{Type: input.EventMouseDown, Button: input.ButtonLeft})
	assert.True(t, cam.Dragging)

	s.HandleEvent(input.Event{Type: input.EventMouseMove, RelX: 800, RelY: 150})
	assert.InDelta(t, 2*3.14159265, cam.Theta, 1e-4)
	assert.InDelta(t, 150*2*3.14159265/600, cam.Phi, 1e-4)

	s.HandleEvent(input.Event{Type: input.EventMouseLeave})
	assert.False(t, cam.Dragging)

	s.HandleEvent(input.Event{Type: input.EventMouseWheel, WheelY: -512})
	assert.Equal(t, float32(-6), cam.Zoom)

	s.HandleEvent(input.Event{Type: input.EventWindowResize, Width: 1024, Height: 768})
	assert.Equal(t, transform.Viewport{Width: 1024, Height: 768}, s.Viewport())

	s.HandleEvent(input.Event{Type: input.EventMouseDown})
	s.HandleEvent(input.Event{Type: input.EventMouseUp})
	assert.False(t, cam.Dragging)
}

func TestSessionFrame(t *testing.T) {
	r := &fakeRenderer{}
	s := newTestSession(r)

	// No mesh: clear only
	assert.True(t, s.Frame())
	assert.Equal(t, 1, r.clears)
	assert.Empty(t, r.draws)

	require.NoError(t, s.Load("a.stl", stlBytes(0)))
	s.Camera().DX = 0.1

	assert.True(t, s.Frame())
	require.Len(t, r.draws, 1)
	assert.Equal(t, transform.ModelView(s.Camera().State()), r.draws[0].ModelView)
	assert.InDelta(t, 0.095, s.Camera().Theta, 1e-6, "frame applies one decay step")
}

func TestSessionFrameEmptyViewport(t *testing.T) {
	r := &fakeRenderer{}
	s := newTestSession(r)
	require.NoError(t, s.Load("a.stl", stlBytes(0)))

	s.Resize(0, 0)
	assert.False(t, s.Frame())
	assert.Zero(t, r.clears)
	assert.Empty(t, r.draws)
}

func TestSettingsFromConfig(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, camera.DefaultSettings(), cameraSettings(cfg))

	p := projection(cfg)
	want := transform.DefaultProjection()
	assert.InDelta(t, want.FOVY, p.FOVY, 1e-6)
	assert.Equal(t, want.Near, p.Near)
	assert.Equal(t, want.Far, p.Far)

	assert.Equal(t, cfg.Render.ClearColor, rendererConfig(cfg).ClearColor)
	assert.Equal(t, cfg.Window.WheelStep, windowConfig(cfg).WheelStep)
}

func TestDialogStartDir(t *testing.T) {
	assert.Equal(t, "", dialogStartDir(""))
	assert.Equal(t, filepath.Join("models", "parts"), dialogStartDir(filepath.Join("models", "parts", "gear.stl")))
}
