package lights

import "github.com/df07/go-phong-raytracer/pkg/core"

// AmbientLight is a uniform wash of light added once to every hit
type AmbientLight struct {
	intensity core.Color
}

// NewAmbientLight creates an ambient light of color scaled by k
func NewAmbientLight(color core.Color, k float64) AmbientLight {
	return AmbientLight{intensity: color.Scale(k)}
}

// Intensity returns the ambient intensity
func (a AmbientLight) Intensity() core.Color {
	return a.intensity
}
