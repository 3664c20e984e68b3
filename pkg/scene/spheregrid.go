package scene

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// hueToColor converts a hue in degrees to a fully saturated color scaled to brightness
func hueToColor(hue, brightness float64) core.Color {
	channel := func(offset float64) float64 {
		// cosine ramp, peaks 120 degrees apart
		return (math.Cos((hue-offset)*math.Pi/180) + 1) / 2
	}
	return core.NewColor(channel(0), channel(120), channel(240)).Scale(brightness)
}

// NewSphereGridScene creates a grid of spheres whose diffuse coefficient grows
// along one axis and whose shininess grows along the other
func NewSphereGridScene() (*Scene, error) {
	b := newBuilder("spheregrid")

	const (
		gridSize = 6
		spacing  = 50.0
		radius   = 20.0
	)
	center := spacing * (gridSize - 1) / 2

	b.camera(
		core.NewPoint(center, -300, 400),
		core.MustVector(0, 3, -4),
		core.MustVector(0, 4, 3),
		geometry.View{Distance: 500, Width: 400, Height: 300},
	)
	b.scene.
		SetAmbient(lights.NewAmbientLight(core.NewColor(255, 255, 255), 0.1)).
		SetResolution(800, 600)

	b.add(geometry.NewPlane(core.NewPoint(0, 0, -radius), core.MustVector(0, 0, 1),
		geometry.NewSurface(core.NewColor(20, 20, 20), core.NewMaterial(0.6, 0, 1))), nil)

	for row := range gridSize {
		for col := range gridSize {
			kd := 0.2 + 0.6*float64(col)/(gridSize-1)
			material := core.NewMaterial(kd, 1-kd, 1<<(row+1))
			hue := 360 * float64(row*gridSize+col) / (gridSize * gridSize)

			b.add(geometry.NewSphere(
				core.NewPoint(float64(col)*spacing, float64(row)*spacing, 0), radius,
				geometry.NewSurface(hueToColor(hue, 120), material),
			))
		}
	}

	b.scene.AddLights(
		lights.NewPointLight(core.NewColor(800, 800, 800), core.NewPoint(center, -100, 300), 1, 1e-4, 1e-6).
			WithRadius(25),
		lights.NewDirectionalLight(core.NewColor(60, 60, 80), core.MustVector(-1, 1, -2)),
	)

	return b.build()
}
