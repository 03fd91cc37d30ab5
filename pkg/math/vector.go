// Package math provides the vector and matrix kernel shared by the mesh decoder
// and the camera transform pipeline.
package math

// Number is the set of element types a Vector3 can hold.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Vector3 is a fixed-size 3-component vector.
// All operations return a new value; the receiver is never modified.
type Vector3[T Number] [3]T

// Vec3 is the float32 vector used for vertex positions and bounding extents.
type Vec3 = Vector3[float32]

// Splat returns a vector with every component set to v.
func Splat[T Number](v T) Vector3[T] {
	return Vector3[T]{v, v, v}
}

// Get returns the component at idx. ok is false when idx is out of range.
func (v Vector3[T]) Get(idx int) (T, bool) {
	if idx < 0 || idx >= len(v) {
		var zero T
		return zero, false
	}
	return v[idx], true
}

// Set returns a copy of v with the component at idx replaced.
// ok is false (and v is returned unchanged) when idx is out of range.
func (v Vector3[T]) Set(idx int, value T) (Vector3[T], bool) {
	if idx < 0 || idx >= len(v) {
		return v, false
	}
	v[idx] = value
	return v, true
}

// Add returns v + other.
func (v Vector3[T]) Add(other Vector3[T]) Vector3[T] {
	return Vector3[T]{v[0] + other[0], v[1] + other[1], v[2] + other[2]}
}

// Sub returns v - other.
func (v Vector3[T]) Sub(other Vector3[T]) Vector3[T] {
	return Vector3[T]{v[0] - other[0], v[1] - other[1], v[2] - other[2]}
}

// Scale returns v * s.
func (v Vector3[T]) Scale(s T) Vector3[T] {
	return Vector3[T]{v[0] * s, v[1] * s, v[2] * s}
}

// Translate returns v moved by op.
func (v Vector3[T]) Translate(op Vector3[T]) Vector3[T] {
	return v.Add(op)
}

// Max returns the largest component. NaN components are skipped unless all are NaN.
func (v Vector3[T]) Max() T {
	m := v[0]
	for _, c := range v[1:] {
		if c > m || m != m {
			m = c
		}
	}
	return m
}

// MinWith returns the component-wise minimum of v and other.
func (v Vector3[T]) MinWith(other Vector3[T]) Vector3[T] {
	for i, c := range other {
		if c < v[i] {
			v[i] = c
		}
	}
	return v
}

// MaxWith returns the component-wise maximum of v and other.
func (v Vector3[T]) MaxWith(other Vector3[T]) Vector3[T] {
	for i, c := range other {
		if c > v[i] {
			v[i] = c
		}
	}
	return v
}
