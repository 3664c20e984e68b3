package core

import (
	"errors"
	"math"
	"testing"
)

func TestNewVector_Zero(t *testing.T) {
	tests := []struct {
		name    string
		x, y, z float64
		wantErr bool
	}{
		{"unit x", 1, 0, 0, false},
		{"negative", -1, -2, -3, false},
		{"zero", 0, 0, 0, true},
		{"round-off zero", 1e-12, -1e-13, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewVector(tt.x, tt.y, tt.z)
			if tt.wantErr {
				if !errors.Is(err, ErrZeroVector) {
					t.Errorf("Expected ErrZeroVector, got %v", err)
				}
			} else if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestVector_Arithmetic(t *testing.T) {
	v1 := MustVector(1, 2, 3)
	v2 := MustVector(-2, 3, -4)

	if got := v1.Add(v2); !got.Equal(MustVector(-1, 5, -1)) {
		t.Errorf("Add: expected (-1, 5, -1), got %v", got)
	}
	if got := v1.Subtract(v2); !got.Equal(MustVector(3, -1, 7)) {
		t.Errorf("Subtract: expected (3, -1, 7), got %v", got)
	}
	if got := v1.Scale(-2); !got.Equal(MustVector(-2, -4, -6)) {
		t.Errorf("Scale: expected (-2, -4, -6), got %v", got)
	}
	if got := v1.Dot(v2); got != -8 {
		t.Errorf("Dot: expected -8, got %f", got)
	}
	if got := v1.Cross(v2); !got.Equal(MustVector(-17, -2, 7)) {
		t.Errorf("Cross: expected (-17, -2, 7), got %v", got)
	}
	if got := v1.LengthSquared(); got != 14 {
		t.Errorf("LengthSquared: expected 14, got %f", got)
	}
	if got := MustVector(0, 3, 4).Length(); got != 5 {
		t.Errorf("Length: expected 5, got %f", got)
	}

	// Parallel vectors have a zero cross product
	if !v1.Cross(v1.Scale(3)).IsZero() {
		t.Errorf("Expected zero cross product for parallel vectors")
	}
}

func TestVector_Normalize(t *testing.T) {
	vectors := []Vector{
		MustVector(1, 2, 3),
		MustVector(-0.001, 0, 0),
		MustVector(1e6, -1e6, 3),
	}

	for _, v := range vectors {
		original := v
		n := v.Normalized()
		if math.Abs(n.Length()-1) > 1e-9 {
			t.Errorf("Normalized %v has length %f", original, n.Length())
		}
		if !v.Equal(original) {
			t.Errorf("Normalized must not modify the receiver, got %v", v)
		}

		v.Normalize()
		if !v.Equal(n) {
			t.Errorf("Normalize in place: expected %v, got %v", n, v)
		}
	}
}

func TestVector_Rotate(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vector
		axis     Vector
		theta    float64
		expected Vector
	}{
		{"90 degrees around z", MustVector(1, 0, 0), MustVector(0, 0, 1), math.Pi / 2, MustVector(0, 1, 0)},
		{"90 degrees around y", MustVector(1, 0, 0), MustVector(0, 2, 0), math.Pi / 2, MustVector(0, 0, -1)},
		{"180 degrees around x", MustVector(0, 1, 0), MustVector(1, 0, 0), math.Pi, MustVector(0, -1, 0)},
		{"around itself", MustVector(0, 0, 3), MustVector(0, 0, 1), 1.234, MustVector(0, 0, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.vector.Rotate(tt.axis, tt.theta)
			if result.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVector_Orthogonal(t *testing.T) {
	vectors := []Vector{
		MustVector(1, 0, 0),
		MustVector(0, 0, -5),
		MustVector(1, 1, 1),
		MustVector(-3, 7, 0.5),
	}

	for _, v := range vectors {
		o := v.Orthogonal()
		if !IsZero(o.Dot(v)) {
			t.Errorf("Orthogonal of %v is %v, dot = %g", v, o, o.Dot(v))
		}
		if math.Abs(o.Length()-1) > 1e-9 {
			t.Errorf("Orthogonal of %v should be unit length, got %f", v, o.Length())
		}
	}
}

func TestAlignZero(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{0, 0},
		{1e-11, 0},
		{-1e-11, 0},
		{1e-9, 1e-9},
		{-2, -2},
	}

	for _, tt := range tests {
		if got := AlignZero(tt.in); got != tt.expected {
			t.Errorf("AlignZero(%g): expected %g, got %g", tt.in, tt.expected, got)
		}
	}

	if Sign(1e-12) != 0 || Sign(-3) != -1 || Sign(0.5) != 1 {
		t.Errorf("Sign should align to zero before comparing")
	}
}
