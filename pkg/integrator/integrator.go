package integrator

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the color seen along a camera ray
	RayColor(ray core.Ray) core.Color
}

// ShadingConfig bounds the recursion of secondary rays and sets shadow quality
type ShadingConfig struct {
	MaxLevel       int     // Maximum number of surface hits along one path
	MinK           float64 // Paths whose attenuation falls below this are dropped
	SoftShadowRays int     // Shadow rays per finite light with a radius, 0 for hard shadows
}

// DefaultShadingConfig returns the default recursion limits with hard shadows
func DefaultShadingConfig() ShadingConfig {
	return ShadingConfig{
		MaxLevel:       10,
		MinK:           0.001,
		SoftShadowRays: 0,
	}
}
