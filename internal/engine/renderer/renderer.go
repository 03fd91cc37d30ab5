// Package renderer uploads a decoded mesh to the GPU and draws it with the
// orbit camera's matrices.
package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/engine/renderer/shaders"
	"github.com/Faultbox/meshview/internal/engine/shader"
	"github.com/Faultbox/meshview/internal/engine/transform"
	"github.com/Faultbox/meshview/internal/logger"
	"github.com/Faultbox/meshview/pkg/formats"
)

// Uniform names the mesh program must expose.
const (
	UniformProjection = "uProjectionMatrix"
	UniformModelView  = "uModelViewMatrix"
)

// Config holds renderer configuration.
type Config struct {
	ClearColor [4]float32
}

// DefaultConfig returns the mid-grey background.
func DefaultConfig() Config {
	return Config{ClearColor: [4]float32{0.375, 0.375, 0.375, 1.0}}
}

// MeshRenderer draws a single indexed triangle mesh.
type MeshRenderer struct {
	config Config

	program       uint32
	locProjection int32
	locModelView  int32

	vao uint32
	vbo uint32
	ebo uint32

	indexCount int32
}

// New creates a mesh renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*MeshRenderer, error) {
	r := &MeshRenderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, errors.Wrap(err, "failed to initialize OpenGL")
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.ClearDepth(1.0)
	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])

	var err error
	r.program, err = shader.CompileProgram(shaders.MeshVertexShader, shaders.MeshFragmentShader)
	if err != nil {
		return nil, errors.Wrap(err, "mesh program")
	}

	if r.locProjection, err = shader.RequireUniform(r.program, UniformProjection); err != nil {
		r.Close()
		return nil, err
	}
	if r.locModelView, err = shader.RequireUniform(r.program, UniformModelView); err != nil {
		r.Close()
		return nil, err
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.GenBuffers(1, &r.ebo)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	// Position attribute (location = 0), tightly packed vec3
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	logger.Debug("mesh renderer created",
		zap.Uint32("program", r.program),
		zap.Uint32("vao", r.vao),
	)
	return r, nil
}

// Upload replaces the GPU buffers with the mesh's vertices and its implicit
// index sequence.
func (r *MeshRenderer) Upload(mesh *formats.STLMesh) error {
	if mesh == nil || len(mesh.Vertices) == 0 {
		return errors.New("upload: empty mesh")
	}
	indices := mesh.Indices()

	gl.BindVertexArray(r.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*4, unsafe.Pointer(&mesh.Vertices[0]), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	r.indexCount = int32(len(indices))

	logger.Debug("mesh uploaded",
		zap.Uint32("vertices", mesh.VertexCount),
		zap.Int("bytes", len(mesh.Vertices)*4+len(indices)*4),
	)
	return nil
}

// Clear sets the viewport and clears color and depth.
func (r *MeshRenderer) Clear(vp transform.Viewport) {
	gl.Viewport(0, 0, int32(vp.Width), int32(vp.Height))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw draws the uploaded mesh into the viewport. Call Clear first.
func (r *MeshRenderer) Draw(vp transform.Viewport, m transform.Matrices) {
	if r.indexCount == 0 {
		return
	}

	gl.Viewport(0, 0, int32(vp.Width), int32(vp.Height))
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locProjection, 1, false, m.Projection.Ptr())
	gl.UniformMatrix4fv(r.locModelView, 1, false, m.ModelView.Ptr())

	gl.BindVertexArray(r.vao)
	gl.DrawElements(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// ReadPixels reads the back buffer as RGBA, bottom row first. Call it after
// Draw and before the buffers are swapped.
func (r *MeshRenderer) ReadPixels(vp transform.Viewport) []byte {
	pixels := make([]byte, vp.Width*vp.Height*4)
	if len(pixels) == 0 {
		return pixels
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(vp.Width), int32(vp.Height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}

// Close cleans up renderer resources.
func (r *MeshRenderer) Close() {
	logger.Info("closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}
