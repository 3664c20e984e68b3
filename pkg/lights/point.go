package lights

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
)

// PointLight radiates equally in all directions from a position.
// Intensity falls off as 1 / (kC + kL·d + kQ·d²).
type PointLight struct {
	intensity  core.Color
	position   core.Point
	kC, kL, kQ float64
	radius     float64
}

// NewPointLight creates a point light with the given attenuation coefficients.
// All three zero means no falloff (kC = 1).
func NewPointLight(intensity core.Color, position core.Point, kC, kL, kQ float64) *PointLight {
	if kC == 0 && kL == 0 && kQ == 0 {
		kC = 1
	}
	return &PointLight{
		intensity: intensity,
		position:  position,
		kC:        kC,
		kL:        kL,
		kQ:        kQ,
	}
}

// WithRadius sets the emitter radius used for soft shadows
func (l *PointLight) WithRadius(radius float64) *PointLight {
	l.radius = max(0, radius)
	return l
}

func (l *PointLight) Type() LightType {
	return LightTypePoint
}

func (l *PointLight) Position() core.Point {
	return l.position
}

func (l *PointLight) Radius() float64 {
	return l.radius
}

// Intensity returns the attenuated intensity at p
func (l *PointLight) Intensity(p core.Point) core.Color {
	return l.intensity.Reduce(l.attenuation(p))
}

// Direction returns the vector from the light to p
func (l *PointLight) Direction(p core.Point) core.Vector {
	return p.Subtract(l.position)
}

// Distance returns the distance from the light to p
func (l *PointLight) Distance(p core.Point) float64 {
	return p.Distance(l.position)
}

func (l *PointLight) attenuation(p core.Point) float64 {
	d := l.Distance(p)
	return l.kC + l.kL*d + l.kQ*d*d
}
