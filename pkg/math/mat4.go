package math

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

// ErrDegenerateProjection is returned by NewPerspective for inputs that cannot
// produce an invertible frustum.
var ErrDegenerateProjection = errors.New("degenerate perspective projection")

// Mat4 is a 4x4 matrix in column-major order (OpenGL compatible).
// Layout: [m0 m4 m8  m12]
//
//	[m1 m5 m9  m13]
//	[m2 m6 m10 m14]
//	[m3 m7 m11 m15]
type Mat4 [16]float32

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Perspective returns a symmetric perspective projection matrix.
// fovY is in radians, aspect is width/height. Inputs are not checked;
// use NewPerspective when they come from outside.
func Perspective(fovY, aspect, near, far float32) Mat4 {
	f := 1.0 / math32.Tan(fovY/2.0)
	nf := 1.0 / (near - far)

	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, -1,
		0, 0, 2 * far * near * nf, 0,
	}
}

// NewPerspective is Perspective with input validation.
func NewPerspective(fovY, aspect, near, far float32) (Mat4, error) {
	if aspect == 0 || !finite(aspect) {
		return Mat4{}, fmt.Errorf("%w: aspect %v", ErrDegenerateProjection, aspect)
	}
	if near == far {
		return Mat4{}, fmt.Errorf("%w: near == far (%v)", ErrDegenerateProjection, near)
	}
	t := math32.Tan(fovY / 2.0)
	if t == 0 || !finite(t) {
		return Mat4{}, fmt.Errorf("%w: fovY %v", ErrDegenerateProjection, fovY)
	}
	return Perspective(fovY, aspect, near, far), nil
}

// Translate returns a translation matrix.
func Translate(x, y, z float32) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// RotateX returns a right-handed rotation matrix around the X axis.
// angle is in radians.
func RotateX(angle float32) Mat4 {
	a := WrapAngle(angle)
	c, s := math32.Cos(a), math32.Sin(a)

	return Mat4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY returns a right-handed rotation matrix around the Y axis.
// angle is in radians.
func RotateY(angle float32) Mat4 {
	a := WrapAngle(angle)
	c, s := math32.Cos(a), math32.Sin(a)

	return Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// Mul multiplies this matrix by another (m * other).
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			result[col*4+row] =
				m[0*4+row]*other[col*4+0] +
					m[1*4+row]*other[col*4+1] +
					m[2*4+row]*other[col*4+2] +
					m[3*4+row]*other[col*4+3]
		}
	}
	return result
}

// Translated returns m * Translate(x, y, z).
func (m Mat4) Translated(x, y, z float32) Mat4 {
	return m.Mul(Translate(x, y, z))
}

// RotatedX returns m * RotateX(angle).
func (m Mat4) RotatedX(angle float32) Mat4 {
	return m.Mul(RotateX(angle))
}

// RotatedY returns m * RotateY(angle).
func (m Mat4) RotatedY(angle float32) Mat4 {
	return m.Mul(RotateY(angle))
}

// TransformPoint transforms a 3D point by this matrix (assumes w=1).
// The result is divided by w when w is neither 0 nor 1.
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	x := m[0]*p[0] + m[4]*p[1] + m[8]*p[2] + m[12]
	y := m[1]*p[0] + m[5]*p[1] + m[9]*p[2] + m[13]
	z := m[2]*p[0] + m[6]*p[1] + m[10]*p[2] + m[14]
	w := m[3]*p[0] + m[7]*p[1] + m[11]*p[2] + m[15]
	if w != 0 && w != 1 {
		return Vec3{x / w, y / w, z / w}
	}
	return Vec3{x, y, z}
}

// Ptr returns a pointer to the first element (for OpenGL uniform calls).
func (m *Mat4) Ptr() *float32 {
	return &m[0]
}

// WrapAngle reduces angle into (-2π, 2π). Rotations built from the result
// are the same as from the original angle.
func WrapAngle(angle float32) float32 {
	return math32.Mod(angle, 2*math32.Pi)
}

func finite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}
