package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// positiveRoots solves a*t² + b*t + c = 0 for a > 0 and returns the roots
// that lie strictly ahead of the ray origin, in ascending order. Tangent
// solutions (zero discriminant) count as no intersection.
func positiveRoots(a, b, c float64) []float64 {
	discriminant := core.AlignZero(b*b - 4*a*c)
	if discriminant <= 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := core.AlignZero((-b - sqrtD) / (2 * a))
	t2 := core.AlignZero((-b + sqrtD) / (2 * a))

	var roots []float64
	if t1 > 0 {
		roots = append(roots, t1)
	}
	if t2 > 0 {
		roots = append(roots, t2)
	}
	return roots
}
