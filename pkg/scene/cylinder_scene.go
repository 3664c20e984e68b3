package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// NewCylinderScene creates capped cylinders and an infinite tube on a reflective floor
func NewCylinderScene() (*Scene, error) {
	b := newBuilder("cylinders")

	b.camera(
		core.NewPoint(0, -400, 150),
		core.MustVector(0, 4, -1),
		core.MustVector(0, 1, 4),
		geometry.View{Distance: 400, Width: 400, Height: 225},
	)
	b.scene.
		SetBackground(core.NewColor(20, 20, 40)).
		SetAmbient(lights.NewAmbientLight(core.NewColor(255, 255, 255), 0.1)).
		SetResolution(640, 360)

	up := core.MustVector(0, 0, 1)
	shiny := core.NewMaterial(0.4, 0.6, 80)

	b.add(geometry.NewPlane(core.Origin, up,
		geometry.NewSurface(core.NewColor(30, 30, 30), core.NewMaterial(0.5, 0.2, 10).WithReflectance(0.3))), nil)

	b.add(geometry.NewCylinder(core.NewRay(core.NewPoint(-120, 0, 0), up), 40, 120,
		geometry.NewSurface(core.NewColor(150, 30, 30), shiny)))
	b.add(geometry.NewCylinder(core.NewRay(core.NewPoint(0, 60, 0), up), 50, 60,
		geometry.NewSurface(core.NewColor(30, 30, 150), shiny.WithTransparency(0.5))))
	b.add(geometry.NewCylinder(core.NewRay(core.NewPoint(120, 0, 40), core.MustVector(1, 1, 1)), 25, 80,
		geometry.NewSurface(core.NewColor(160, 120, 30), shiny.WithReflectance(0.4))))

	// A rail lying across the back of the scene
	b.add(geometry.NewTube(core.NewRay(core.NewPoint(0, 250, 20), core.MustVector(1, 0, 0)), 20,
		geometry.NewSurface(core.NewColor(30, 120, 30), shiny)))

	b.scene.AddLights(
		lights.NewDirectionalLight(core.NewColor(120, 120, 100), core.MustVector(1, 2, -2)),
		lights.NewSpotLight(core.NewColor(600, 600, 600), core.NewPoint(-200, -150, 300), core.MustVector(1, 1, -2), 1, 1e-5, 1e-7).
			WithRadius(15),
	)

	return b.build()
}
