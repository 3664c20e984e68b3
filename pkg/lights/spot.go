package lights

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
)

// SpotLight is a point light that shines along a direction, scaled by how
// directly the lit point faces it.
type SpotLight struct {
	PointLight
	direction core.Vector
}

// NewSpotLight creates a spot light; the direction is normalized
func NewSpotLight(intensity core.Color, position core.Point, direction core.Vector, kC, kL, kQ float64) *SpotLight {
	return &SpotLight{
		PointLight: *NewPointLight(intensity, position, kC, kL, kQ),
		direction:  direction.Normalized(),
	}
}

// WithRadius sets the emitter radius used for soft shadows
func (s *SpotLight) WithRadius(radius float64) *SpotLight {
	s.PointLight.WithRadius(radius)
	return s
}

func (s *SpotLight) Type() LightType {
	return LightTypeSpot
}

// Intensity returns I·max(0, dir·l) / attenuation, with l the unit vector from the light to p
func (s *SpotLight) Intensity(p core.Point) core.Color {
	l := s.Direction(p)
	if l.IsZero() {
		return s.PointLight.Intensity(p)
	}
	factor := max(0, s.direction.Dot(l.Normalized()))
	return s.PointLight.Intensity(p).Scale(factor)
}
