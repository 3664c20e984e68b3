package lights

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// DirectionalLight is a light at infinity shining along one direction
type DirectionalLight struct {
	intensity core.Color
	direction core.Vector
}

// NewDirectionalLight creates a directional light; the direction is normalized
func NewDirectionalLight(intensity core.Color, direction core.Vector) *DirectionalLight {
	return &DirectionalLight{intensity: intensity, direction: direction.Normalized()}
}

func (d *DirectionalLight) Type() LightType {
	return LightTypeDirectional
}

// Intensity is the same everywhere
func (d *DirectionalLight) Intensity(core.Point) core.Color {
	return d.intensity
}

// Direction is the same everywhere
func (d *DirectionalLight) Direction(core.Point) core.Vector {
	return d.direction
}

// Distance is infinite
func (d *DirectionalLight) Distance(core.Point) float64 {
	return math.Inf(1)
}
