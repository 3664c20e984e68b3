package geometry

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	Polygon
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(surface Surface, v0, v1, v2 core.Point) (*Triangle, error) {
	p, err := NewPolygon(surface, v0, v1, v2)
	if err != nil {
		return nil, fmt.Errorf("triangle: %w", err)
	}
	return &Triangle{Polygon: *p}, nil
}

// Intersect returns the point where the ray crosses the triangle
func (t *Triangle) Intersect(ray core.Ray) []GeoPoint {
	return t.intersectAs(ray, t)
}
