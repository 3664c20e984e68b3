package core

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Point is a position in 3D space
type Point struct {
	xyz r3.Vector
}

// Origin is the point (0, 0, 0)
var Origin = Point{}

// NewPoint creates a new point
func NewPoint(x, y, z float64) Point {
	return Point{r3.Vector{X: x, Y: y, Z: z}}
}

func (p Point) X() float64 { return p.xyz.X }
func (p Point) Y() float64 { return p.xyz.Y }
func (p Point) Z() float64 { return p.xyz.Z }

// Add moves the point along a vector
func (p Point) Add(v Vector) Point {
	return Point{p.xyz.Add(v.xyz)}
}

// Subtract returns the vector from other to p
func (p Point) Subtract(other Point) Vector {
	return Vector{p.xyz.Sub(other.xyz)}
}

// Distance returns the euclidean distance between two points
func (p Point) Distance(other Point) float64 {
	return p.xyz.Distance(other.xyz)
}

// DistanceSquared returns the squared distance between two points
func (p Point) DistanceSquared(other Point) float64 {
	return p.xyz.Sub(other.xyz).Norm2()
}

// Equal reports whether two points coincide within Epsilon per component
func (p Point) Equal(other Point) bool {
	return p.Subtract(other).IsZero()
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.xyz.X, p.xyz.Y, p.xyz.Z)
}
