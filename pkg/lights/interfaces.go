package lights

import "github.com/df07/go-phong-raytracer/pkg/core"

type LightType string

const (
	LightTypeDirectional LightType = "directional"
	LightTypePoint       LightType = "point"
	LightTypeSpot        LightType = "spot"
)

// LightSource is a light that illuminates surface points directly
type LightSource interface {
	Type() LightType

	// Intensity returns the light arriving at p, before any shadowing
	Intensity(p core.Point) core.Color

	// Direction returns the vector FROM the light TO p
	Direction(p core.Point) core.Vector

	// Distance returns the distance from p to the light, +Inf for lights at infinity
	Distance(p core.Point) float64
}

// FiniteLight is a light with a position and an emitter radius.
// A radius of zero makes it a true point emitter, casting hard shadows.
type FiniteLight interface {
	LightSource
	Position() core.Point
	Radius() float64
}
