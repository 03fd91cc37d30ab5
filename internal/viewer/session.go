// Package viewer ties the decoder, the orbit camera and the renderer into an
// interactive mesh viewer.
package viewer

import (
	"fmt"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/engine/camera"
	"github.com/Faultbox/meshview/internal/engine/input"
	"github.com/Faultbox/meshview/internal/engine/transform"
	"github.com/Faultbox/meshview/internal/logger"
	"github.com/Faultbox/meshview/pkg/formats"
)

// Renderer is the part of the GPU renderer a session drives.
type Renderer interface {
	Upload(mesh *formats.STLMesh) error
	Clear(vp transform.Viewport)
	Draw(vp transform.Viewport, m transform.Matrices)
}

// Session owns the camera, the viewport and the current mesh. All methods
// must be called from the render thread.
type Session struct {
	ID string

	renderer   Renderer
	camera     *camera.OrbitCamera
	projection transform.Projection
	viewport   transform.Viewport

	mesh   *formats.STLMesh
	path   string
	digest uint64

	log *zap.Logger
}

// NewSession creates a session with no mesh loaded.
func NewSession(r Renderer, settings camera.Settings, projection transform.Projection, vp transform.Viewport) *Session {
	id := uuid.NewString()
	return &Session{
		ID:         id,
		renderer:   r,
		camera:     camera.NewOrbitCamera(settings),
		projection: projection,
		viewport:   vp,
		log:        logger.Named("session", zap.String("session", id)),
	}
}

// Camera returns the session's camera.
func (s *Session) Camera() *camera.OrbitCamera {
	return s.camera
}

// Mesh returns the mesh on screen, or nil.
func (s *Session) Mesh() *formats.STLMesh {
	return s.mesh
}

// Path returns the name of the mesh on screen.
func (s *Session) Path() string {
	return s.path
}

// Viewport returns the current drawable size.
func (s *Session) Viewport() transform.Viewport {
	return s.viewport
}

// LoadFile reads and loads a mesh from disk.
func (s *Session) LoadFile(path string) error {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	data, err := formats.ReadSTLFile(path)
	if err != nil {
		s.log.Warn("failed to read mesh", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return s.Load(path, data)
}

// Load decodes data and puts it on screen. Nothing changes unless the mesh
// decodes and uploads, so a bad file leaves the previous mesh in place.
// A mesh under a new name resets the camera. Content identical to the mesh
// already shown is not decoded again.
func (s *Session) Load(name string, data []byte) error {
	digest := xxhash.Sum64(data)
	if s.mesh != nil && digest == s.digest {
		if name != s.path {
			s.path = name
			s.camera.Reset()
		}
		s.log.Debug("mesh unchanged", zap.String("path", name), zap.Uint64("digest", digest))
		return nil
	}

	mesh, err := formats.DecodeSTL(data)
	if err != nil {
		s.log.Warn("mesh rejected",
			zap.String("path", name),
			zap.Int("bytes", len(data)),
			zap.Error(err),
		)
		return fmt.Errorf("loading %s: %w", name, err)
	}

	if err := s.renderer.Upload(mesh); err != nil {
		s.log.Error("mesh upload failed", zap.String("path", name), zap.Error(err))
		return fmt.Errorf("uploading %s: %w", name, err)
	}

	if name != s.path {
		s.camera.Reset()
	}
	s.mesh = mesh
	s.path = name
	s.digest = digest

	s.log.Info("mesh loaded",
		zap.String("path", name),
		zap.String("header", mesh.Header),
		zap.Uint32("facets", mesh.FacetCount),
		zap.Uint32("vertices", mesh.VertexCount),
	)
	return nil
}

// HandleEvent applies pointer and resize events to the camera and viewport.
// Other events are ignored.
func (s *Session) HandleEvent(e input.Event) {
	switch e.Type {
	case input.EventMouseDown:
		s.camera.BeginDrag()
	case input.EventMouseUp, input.EventMouseLeave:
		s.camera.EndDrag()
	case input.EventMouseMove:
		s.camera.HandleMotion(e.RelX, e.RelY, s.viewport.Width, s.viewport.Height)
	case input.EventMouseWheel:
		s.camera.HandleWheel(e.WheelY)
	case input.EventWindowResize:
		s.Resize(e.Width, e.Height)
	}
}

// Resize records a new drawable size.
func (s *Session) Resize(width, height int) {
	s.viewport = transform.Viewport{Width: width, Height: height}
	s.log.Debug("viewport resized", zap.Int("width", width), zap.Int("height", height))
}

// ResetCamera puts the camera back to its initial pose.
func (s *Session) ResetCamera() {
	s.camera.Reset()
}

// Frame advances the camera by one frame and draws. It reports whether
// anything was drawn; an empty viewport (minimized window) draws nothing.
func (s *Session) Frame() bool {
	s.camera.Step()

	m, err := transform.Build(s.camera.State(), s.viewport, s.projection)
	if err != nil {
		return false
	}

	s.renderer.Clear(s.viewport)
	if s.mesh != nil {
		s.renderer.Draw(s.viewport, m)
	}
	return true
}
