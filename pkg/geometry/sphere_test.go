package geometry

import (
	"errors"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func TestNewSphere_InvalidRadius(t *testing.T) {
	for _, radius := range []float64{0, -1, 1e-12} {
		if _, err := NewSphere(p(0, 0, 0), radius, testSurface); !errors.Is(err, ErrNonPositiveRadius) {
			t.Errorf("radius %g: expected ErrNonPositiveRadius, got %v", radius, err)
		}
	}
}

func TestSphere_Normal(t *testing.T) {
	sphere, err := NewSphere(p(0, 0, 1), 1, testSurface)
	if err != nil {
		t.Fatal(err)
	}
	if got := sphere.Normal(p(0, 0, 2)); !vectorNear(got, v(0, 0, 1)) {
		t.Errorf("Expected normal (0, 0, 1), got %v", got)
	}
}

func TestSphere_Intersect(t *testing.T) {
	sphere, err := NewSphere(p(1, 0, 0), 1, testSurface)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		ray      core.Ray
		expected []core.Point
	}{
		{"ray misses", ray(p(-1, 0, 0), v(1, 1, 0)), nil},
		{
			"ray crosses the sphere",
			ray(p(-1, 0, 0), v(3, 1, 0)),
			[]core.Point{p(0.0651530771650466, 0.355051025721682, 0), p(1.53484692283495, 0.844948974278318, 0)},
		},
		{"ray starts inside", ray(p(0.5, 0.5, 0), v(3, 1, 0)), []core.Point{p(1.5348469228349535, 0.8449489742783178, 0)}},
		{"ray starts at the center", ray(p(1, 0, 0), v(0, 0, 1)), []core.Point{p(1, 0, 1)}},
		{"ray starts after the sphere", ray(p(2, 1, 0), v(3, 1, 0)), nil},
		{"ray starts on the surface going in", ray(p(1, 0, 1), v(0, 0, -1)), []core.Point{p(1, 0, -1)}},
		{"ray starts on the surface going out", ray(p(1, 0, 1), v(0, 0, 1)), nil},
		{"tangent ray", ray(p(0, 0, 1), v(1, 0, 0)), nil},
		{"ray line passes the center, pointing away", ray(p(3, 0, 0), v(1, 0, 0)), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkHits(t, tt.ray, sphere.Intersect(tt.ray), tt.expected)
		})
	}
}

func TestSphere_IntersectOnAxis(t *testing.T) {
	sphere, err := NewSphere(p(0, 0, 3), 2, testSurface)
	if err != nil {
		t.Fatal(err)
	}
	r := ray(p(0, 0, 0.5), v(0, 0, 1))
	hits := sphere.Intersect(r)
	checkHits(t, r, hits, []core.Point{p(0, 0, 1), p(0, 0, 5)})

	for _, hit := range hits {
		if hit.Geometry != Geometry(sphere) {
			t.Errorf("Expected hit to belong to the sphere, got %T", hit.Geometry)
		}
	}
}
