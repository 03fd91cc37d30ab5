package math

import (
	"testing"
)

func TestVector3Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -5, 6}

	if got, want := a.Add(b), (Vec3{5, -3, 9}); got != want {
		t.Errorf("Add() = %v, want %v", got, want)
	}
	if got, want := a.Sub(b), (Vec3{-3, 7, -3}); got != want {
		t.Errorf("Sub() = %v, want %v", got, want)
	}
	if got, want := a.Scale(0.5), (Vec3{0.5, 1, 1.5}); got != want {
		t.Errorf("Scale() = %v, want %v", got, want)
	}
	if got, want := a.Translate(b), a.Add(b); got != want {
		t.Errorf("Translate() = %v, want %v", got, want)
	}
	if a != (Vec3{1, 2, 3}) {
		t.Errorf("receiver modified: %v", a)
	}
}

func TestVector3Max(t *testing.T) {
	tests := []struct {
		v    Vec3
		want float32
	}{
		{Vec3{1, 2, 3}, 3},
		{Vec3{3, 2, 1}, 3},
		{Vec3{-1, -7, -2}, -1},
		{Vec3{0.5, 0.5, 0.5}, 0.5},
	}

	for _, tt := range tests {
		if got := tt.v.Max(); got != tt.want {
			t.Errorf("%v.Max() = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestVector3Integers(t *testing.T) {
	v := Vector3[int32]{3, -4, 9}
	if got := v.Scale(2); got != (Vector3[int32]{6, -8, 18}) {
		t.Errorf("Scale() = %v", got)
	}
	if got := v.Max(); got != 9 {
		t.Errorf("Max() = %v, want 9", got)
	}
}

func TestVector3GetOutOfRange(t *testing.T) {
	v := Splat[float32](2)

	if got, ok := v.Get(1); !ok || got != 2 {
		t.Errorf("Get(1) = %v, %v", got, ok)
	}
	for _, idx := range []int{-1, 3, 100} {
		if _, ok := v.Get(idx); ok {
			t.Errorf("Get(%d) should report out of range", idx)
		}
		if got, ok := v.Set(idx, 9); ok || got != v {
			t.Errorf("Set(%d) should leave vector unchanged, got %v", idx, got)
		}
	}
}

func TestVector3Extents(t *testing.T) {
	lo := Vec3{1, 5, -2}
	hi := Vec3{0, 7, -3}

	if got, want := lo.MinWith(hi), (Vec3{0, 5, -3}); got != want {
		t.Errorf("MinWith() = %v, want %v", got, want)
	}
	if got, want := lo.MaxWith(hi), (Vec3{1, 7, -2}); got != want {
		t.Errorf("MaxWith() = %v, want %v", got, want)
	}
}
