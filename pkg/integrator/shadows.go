package integrator

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// spiralTurns is how many times the soft shadow spiral winds around the light
const spiralTurns = 4

// ktr multiplies the transmittance of every surface the shadow ray crosses
// before reaching distance. It drops to 0 once too little light is left.
func (pi *PhongIntegrator) ktr(shadowRay core.Ray, distance float64) float64 {
	ktr := 1.0
	for _, hit := range pi.scene.Geometries.Intersect(shadowRay) {
		// hits are sorted, everything from here on is behind the light
		if core.AlignZero(hit.Point.Distance(shadowRay.Origin())-distance) >= 0 {
			break
		}
		ktr *= hit.Geometry.Material().KT
		if ktr < pi.config.MinK {
			return 0
		}
	}
	return ktr
}

// softKtr averages ktr over shadow rays aimed at points spread across a disk
// of the light's radius, facing the main shadow ray.
func (pi *PhongIntegrator) softKtr(mainRay core.Ray, distance, radius float64) float64 {
	if math.IsInf(distance, 1) {
		return pi.ktr(mainRay, distance)
	}

	start := mainRay.Origin()
	center := mainRay.At(distance)
	samples := spiralPoints(center, mainRay.Direction(), radius, pi.config.SoftShadowRays)

	sum := 0.0
	for _, end := range samples {
		toLight := end.Subtract(start)
		if toLight.IsZero() {
			// the sample sits on the shadow ray origin, nothing can block it
			sum++
			continue
		}
		sum += pi.ktr(core.NewRay(start, toLight), toLight.Length())
	}
	return sum / float64(len(samples))
}

// spiralPoints spreads count points along an Archimedean spiral (r = b·θ)
// of spiralTurns turns, in the disk of the given radius around center that
// is perpendicular to normal. The first point is the center itself.
func spiralPoints(center core.Point, normal core.Vector, radius float64, count int) []core.Point {
	if count <= 0 {
		return nil
	}

	maxRotation := spiralTurns * 2 * math.Pi
	b := radius / maxRotation
	axis := normal.Normalized()
	orthogonal := axis.Orthogonal()

	points := make([]core.Point, count)
	for i := range count {
		theta := float64(i) * maxRotation / float64(count)
		r := core.AlignZero(b * theta)
		if r == 0 {
			points[i] = center
			continue
		}
		points[i] = center.Add(orthogonal.Rotate(axis, theta).Scale(r))
	}
	return points
}
