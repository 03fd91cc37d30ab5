// Package formats provides decoders for the mesh file formats the viewer loads.
// STL (binary stereolithography) triangle mesh decoder.
package formats

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	gomath "math"
	"os"
	"strings"

	"github.com/Faultbox/meshview/pkg/math"
)

// STL layout constants.
const (
	STLHeaderSize     = 80
	STLFacetCountSize = 4
	STLFacetSize      = 50 // normal (12) + 3 vertices (36) + attribute (2)

	stlVerticesPerFacet = 3
	stlAxes             = 3
)

// STL format errors.
var (
	ErrTruncatedHeader    = errors.New("STL: header too short")
	ErrMisalignedPayload  = errors.New("STL: payload is not aligned to facet records")
	ErrFacetCountMismatch = errors.New("STL: payload does not match declared facet count")
	ErrTrailingData       = errors.New("STL: payload is too large")
	ErrTruncatedFacet     = errors.New("STL: truncated facet record")
	ErrDegenerateMesh     = errors.New("STL: degenerate mesh")
)

// stlFacet is one 50-byte facet record as stored on disk.
type stlFacet struct {
	Normal    [3]float32 // Discarded
	Vertices  [stlVerticesPerFacet][stlAxes]float32
	Attribute uint16 // Discarded
}

// STLMesh is a decoded, normalized binary STL mesh.
type STLMesh struct {
	Header      string    // Preamble text, for diagnostics only
	FacetCount  uint32    // Declared (and verified) facet count
	VertexCount uint32    // 3 * FacetCount
	Vertices    []float32 // x, y, z per vertex in file order, every component in [-1, 1]
}

// Extent is the per-axis bounding box accumulated while reading vertices.
type Extent struct {
	Min, Max math.Vec3
}

// NewExtent returns an empty extent that any point will grow.
func NewExtent() Extent {
	return Extent{
		Min: math.Splat(float32(gomath.Inf(1))),
		Max: math.Splat(float32(gomath.Inf(-1))),
	}
}

// Include grows the extent to contain p.
func (e *Extent) Include(p math.Vec3) {
	e.Min = e.Min.MinWith(p)
	e.Max = e.Max.MaxWith(p)
}

// Normalization returns the translation that centers the box on the origin and
// the divisor that maps its largest half-extent to 1. It works in float64 so
// the extreme vertices land on ±1 after rounding back to float32.
func (e Extent) Normalization() (translation math.Vector3[float64], scale float64) {
	var half math.Vector3[float64]
	for i := range half {
		half[i] = (float64(e.Max[i]) - float64(e.Min[i])) * 0.5
		translation[i] = half[i] - float64(e.Max[i])
	}
	return translation, half.Max()
}

// normalize maps one component into [-1, 1].
func normalize(v float32, translation, scale float64) float32 {
	n := (float64(v) + translation) / scale
	return float32(gomath.Max(-1, gomath.Min(1, n)))
}

// DecodeSTL parses a binary STL file and normalizes its vertices into [-1, 1].
func DecodeSTL(data []byte) (*STLMesh, error) {
	if len(data) < STLHeaderSize+STLFacetCountSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d",
			ErrTruncatedHeader, len(data), STLHeaderSize+STLFacetCountSize)
	}

	facetCount := binary.LittleEndian.Uint32(data[STLHeaderSize:])
	payload := data[STLHeaderSize+STLFacetCountSize:]

	if len(payload)%STLFacetSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of %d",
			ErrMisalignedPayload, len(payload), STLFacetSize)
	}
	if uint64(len(payload)/STLFacetSize) != uint64(facetCount) {
		return nil, fmt.Errorf("%w: header declares %d facets, payload holds %d",
			ErrFacetCountMismatch, facetCount, len(payload)/STLFacetSize)
	}

	mesh := &STLMesh{
		Header:      strings.TrimRight(string(data[:STLHeaderSize]), "\x00 "),
		FacetCount:  facetCount,
		VertexCount: facetCount * stlVerticesPerFacet,
	}

	vertices, extent, err := readFacets(bytes.NewReader(payload), facetCount)
	if err != nil {
		return nil, err
	}

	translation, scale := extent.Normalization()
	if scale == 0 || gomath.IsInf(scale, 0) || gomath.IsNaN(scale) {
		return nil, fmt.Errorf("%w: bounding box %v..%v has no extent",
			ErrDegenerateMesh, extent.Min, extent.Max)
	}

	for i, v := range vertices {
		if v != v {
			return nil, fmt.Errorf("%w: NaN coordinate in vertex %d", ErrDegenerateMesh, i/stlAxes)
		}
		vertices[i] = normalize(v, translation[i%stlAxes], scale)
	}
	mesh.Vertices = vertices

	return mesh, nil
}

// readFacets reads exactly count facet records, returning the flat vertex
// array and its bounding extent. The reader must be exhausted afterwards.
func readFacets(r *bytes.Reader, count uint32) ([]float32, Extent, error) {
	vertices := make([]float32, 0, int(count)*stlVerticesPerFacet*stlAxes)
	extent := NewExtent()

	var facet stlFacet
	for i := uint32(0); i < count; i++ {
		if err := binary.Read(r, binary.LittleEndian, &facet); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, extent, fmt.Errorf("%w: facet %d", ErrTruncatedFacet, i)
			}
			return nil, extent, fmt.Errorf("reading facet %d: %w", i, err)
		}

		for _, v := range facet.Vertices {
			vertices = append(vertices, v[0], v[1], v[2])
			extent.Include(math.Vec3(v))
		}
	}

	if r.Len() != 0 {
		return nil, extent, fmt.Errorf("%w: %d bytes after facet %d", ErrTrailingData, r.Len(), count)
	}

	return vertices, extent, nil
}

// ReadSTLFile reads the raw bytes of an STL file for DecodeSTL.
func ReadSTLFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading STL file: %w", err)
	}
	return data, nil
}

// Indices returns the implicit index sequence 0..VertexCount-1.
// Vertices are not shared between facets.
func (m *STLMesh) Indices() []uint32 {
	indices := make([]uint32, m.VertexCount)
	for i := range indices {
		indices[i] = uint32(i)
	}
	return indices
}

// Bounds returns the extent of the normalized vertices.
func (m *STLMesh) Bounds() Extent {
	extent := NewExtent()
	for i := 0; i+stlAxes <= len(m.Vertices); i += stlAxes {
		extent.Include(math.Vec3{m.Vertices[i], m.Vertices[i+1], m.Vertices[i+2]})
	}
	return extent
}
