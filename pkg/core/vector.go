package core

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// ErrZeroVector is returned when a vector would have no direction
var ErrZeroVector = errors.New("zero vector")

// Vector is a direction in 3D space. Vectors built with NewVector are never zero;
// arithmetic results are not re-validated, callers check IsZero where it matters.
type Vector struct {
	xyz r3.Vector
}

// NewVector creates a vector, rejecting components that all align to zero
func NewVector(x, y, z float64) (Vector, error) {
	v := Vector{r3.Vector{X: x, Y: y, Z: z}}
	if v.IsZero() {
		return Vector{}, fmt.Errorf("vector (%g, %g, %g): %w", x, y, z, ErrZeroVector)
	}
	return v, nil
}

// MustVector is like NewVector but panics on a zero vector.
// Intended for literals in scene presets and tests.
func MustVector(x, y, z float64) Vector {
	v, err := NewVector(x, y, z)
	if err != nil {
		panic(err)
	}
	return v
}

func (v Vector) X() float64 { return v.xyz.X }
func (v Vector) Y() float64 { return v.xyz.Y }
func (v Vector) Z() float64 { return v.xyz.Z }

// Add returns the sum of two vectors
func (v Vector) Add(other Vector) Vector {
	return Vector{v.xyz.Add(other.xyz)}
}

// Subtract returns the difference of two vectors
func (v Vector) Subtract(other Vector) Vector {
	return Vector{v.xyz.Sub(other.xyz)}
}

// Scale returns the vector multiplied by a scalar
func (v Vector) Scale(scalar float64) Vector {
	return Vector{v.xyz.Mul(scalar)}
}

// Negate returns the opposite vector
func (v Vector) Negate() Vector {
	return Vector{v.xyz.Mul(-1)}
}

// Dot returns the dot product of two vectors
func (v Vector) Dot(other Vector) float64 {
	return v.xyz.Dot(other.xyz)
}

// Cross returns the cross product of two vectors
func (v Vector) Cross(other Vector) Vector {
	return Vector{v.xyz.Cross(other.xyz)}
}

// Length returns the magnitude of the vector
func (v Vector) Length() float64 {
	return v.xyz.Norm()
}

// LengthSquared returns the squared magnitude of the vector
func (v Vector) LengthSquared() float64 {
	return v.xyz.Norm2()
}

// Normalize scales the vector to unit length in place and returns it.
// Only use it on a vector that is not shared; Normalized returns a copy.
func (v *Vector) Normalize() *Vector {
	length := v.Length()
	if length == 0 {
		return v
	}
	v.xyz = v.xyz.Mul(1 / length)
	return v
}

// Normalized returns a unit vector in the same direction
func (v Vector) Normalized() Vector {
	v.Normalize()
	return v
}

// Rotate rotates the vector by theta radians around axis (Rodrigues' formula)
func (v Vector) Rotate(axis Vector, theta float64) Vector {
	k := axis.Normalized()
	cos, sin := math.Cos(theta), math.Sin(theta)
	return v.Scale(cos).
		Add(k.Cross(v).Scale(sin)).
		Add(k.Scale(k.Dot(v) * (1 - cos)))
}

// Orthogonal returns a unit vector perpendicular to v
func (v Vector) Orthogonal() Vector {
	return Vector{v.xyz.Ortho()}
}

// IsZero reports whether every component aligns to zero
func (v Vector) IsZero() bool {
	return IsZero(v.xyz.X) && IsZero(v.xyz.Y) && IsZero(v.xyz.Z)
}

// Equal reports whether two vectors match within Epsilon per component
func (v Vector) Equal(other Vector) bool {
	return v.Subtract(other).IsZero()
}

func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.xyz.X, v.xyz.Y, v.xyz.Z)
}
