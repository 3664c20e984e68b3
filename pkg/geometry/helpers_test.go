package geometry

import (
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

var testSurface = NewSurface(core.Black, core.NewMaterial(0.5, 0.5, 10))

func v(x, y, z float64) core.Vector { return core.MustVector(x, y, z) }

func p(x, y, z float64) core.Point { return core.NewPoint(x, y, z) }

func ray(origin core.Point, direction core.Vector) core.Ray {
	return core.NewRay(origin, direction)
}

// checkHits verifies the hit points and that they are ordered along the ray
func checkHits(t *testing.T, r core.Ray, hits []GeoPoint, expected []core.Point) {
	t.Helper()

	if len(expected) == 0 {
		if hits != nil {
			t.Errorf("Expected no intersections, got %v", hits)
		}
		return
	}
	if len(hits) != len(expected) {
		t.Fatalf("Expected %d intersections, got %d: %v", len(expected), len(hits), hits)
	}
	prev := 0.0
	for i, hit := range hits {
		if !pointNear(hit.Point, expected[i]) {
			t.Errorf("Intersection %d: expected %v, got %v", i, expected[i], hit.Point)
		}
		tt := r.T(hit.Point)
		if tt <= 0 || tt < prev {
			t.Errorf("Intersection %d has t=%f after t=%f", i, tt, prev)
		}
		prev = tt
	}
}

func pointNear(a, b core.Point) bool {
	return a.Distance(b) < 1e-9
}

func vectorNear(a, b core.Vector) bool {
	return a.Subtract(b).Length() < 1e-9
}
