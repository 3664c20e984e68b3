package integrator

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// PhongIntegrator implements Whitted style ray tracing: Phong direct lighting
// with translucent shadows plus one recursive reflected and one recursive
// refracted ray per hit. It only reads the scene and is safe for concurrent use.
type PhongIntegrator struct {
	scene  *scene.Scene
	config ShadingConfig
}

// NewPhongIntegrator creates a new Phong integrator
func NewPhongIntegrator(s *scene.Scene, config ShadingConfig) *PhongIntegrator {
	return &PhongIntegrator{
		scene:  s,
		config: config,
	}
}

// Config returns the shading configuration
func (pi *PhongIntegrator) Config() ShadingConfig {
	return pi.config
}

// RayColor returns the shaded color of the closest hit, or the background
func (pi *PhongIntegrator) RayColor(ray core.Ray) core.Color {
	gp, ok := pi.scene.FindClosestIntersection(ray)
	if !ok {
		return pi.scene.Background
	}
	return pi.Shade(gp, ray)
}

// Shade returns the color of a hit seen along ray, ambient light included
func (pi *PhongIntegrator) Shade(gp geometry.GeoPoint, ray core.Ray) core.Color {
	return pi.calcColor(gp, ray, pi.config.MaxLevel, 1.0).
		Add(pi.scene.Ambient.Intensity())
}

// calcColor is the recursive part of shading. level counts the hits still
// allowed on this path and k is the attenuation accumulated so far.
func (pi *PhongIntegrator) calcColor(gp geometry.GeoPoint, ray core.Ray, level int, k float64) core.Color {
	if level <= 0 || k < pi.config.MinK {
		return core.Black
	}

	v := ray.Direction()
	n := gp.Geometry.Normal(gp.Point)
	material := gp.Geometry.Material()

	color := gp.Geometry.Emission().
		Add(pi.localEffects(gp, v, n, material, k))

	// Reflection
	if kkr := k * material.KR; kkr > pi.config.MinK {
		if reflected, ok := reflectedRay(gp.Point, v, n); ok {
			color = color.Add(pi.secondary(reflected, level, kkr).Scale(material.KR))
		}
	}

	// Refraction keeps the incoming direction: both sides share one refractive index
	if kkt := k * material.KT; kkt > pi.config.MinK {
		refracted := core.NewOffsetRay(gp.Point, v, n)
		color = color.Add(pi.secondary(refracted, level, kkt).Scale(material.KT))
	}

	return color
}

// secondary traces a reflected or refracted ray one level deeper
func (pi *PhongIntegrator) secondary(ray core.Ray, level int, k float64) core.Color {
	gp, ok := pi.scene.FindClosestIntersection(ray)
	if !ok {
		return core.Black
	}
	return pi.calcColor(gp, ray, level-1, k)
}

// localEffects sums the diffuse and specular light of every source that
// reaches the visible side of the surface
func (pi *PhongIntegrator) localEffects(gp geometry.GeoPoint, v, n core.Vector, material core.Material, k float64) core.Color {
	nv := core.Sign(n.Dot(v))
	if nv == 0 {
		return core.Black
	}

	color := core.Black
	for _, light := range pi.scene.Lights {
		l := light.Direction(gp.Point)
		if l.IsZero() {
			continue
		}
		l.Normalize()

		// Light and viewer must be on the same side of the surface
		if core.Sign(n.Dot(l)) != nv {
			continue
		}

		ktr := pi.transparency(light, l, n, gp)
		if ktr*k <= pi.config.MinK {
			continue
		}

		intensity := light.Intensity(gp.Point).Scale(ktr)
		color = color.Add(
			diffuse(material.KD, l, n, intensity),
			specular(material.KS, l, n, v, material.Shininess, intensity),
		)
	}
	return color
}

// diffuse is kD·|l·n|·I
func diffuse(kd float64, l, n core.Vector, intensity core.Color) core.Color {
	return intensity.Scale(kd * math.Abs(l.Dot(n)))
}

// specular is kS·max(0, -v·r)^shininess·I with r the light vector mirrored about n
func specular(ks float64, l, n, v core.Vector, shininess int, intensity core.Color) core.Color {
	r := l
	if ln := l.Dot(n); !core.IsZero(ln) {
		r = l.Subtract(n.Scale(2 * ln)).Normalized()
	}
	vr := core.AlignZero(-v.Dot(r))
	if vr <= 0 {
		return core.Black
	}
	return intensity.Scale(ks * math.Pow(vr, float64(shininess)))
}

// reflectedRay mirrors v about n, r = v - 2(v·n)n. A ray grazing the surface
// has no reflection.
func reflectedRay(p core.Point, v, n core.Vector) (core.Ray, bool) {
	dotP := core.AlignZero(2 * v.Dot(n))
	if dotP == 0 {
		return core.Ray{}, false
	}
	return core.NewOffsetRay(p, v.Subtract(n.Scale(dotP)), n), true
}

// transparency returns the fraction of light from a source that reaches gp
// through the translucent surfaces in between. l points from the light to gp.
func (pi *PhongIntegrator) transparency(light lights.LightSource, l, n core.Vector, gp geometry.GeoPoint) float64 {
	shadowRay := core.NewOffsetRay(gp.Point, l.Negate(), n)
	distance := light.Distance(gp.Point)

	if finite, ok := light.(lights.FiniteLight); ok && pi.config.SoftShadowRays > 0 && finite.Radius() > 0 {
		return pi.softKtr(shadowRay, distance, finite.Radius())
	}
	return pi.ktr(shadowRay, distance)
}
