package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// NewShadowScene creates a triangle casting a shadow from a spot light onto
// a sphere, over a floor of two large triangles. The spot light has a
// radius so the shadow edge softens when soft shadows are enabled.
func NewShadowScene() (*Scene, error) {
	b := newBuilder("shadow")

	b.camera(
		core.NewPoint(0, 0, 1000),
		core.MustVector(0, 0, -1),
		core.MustVector(0, 1, 0),
		geometry.View{Distance: 1000, Width: 200, Height: 200},
	)
	b.scene.
		SetAmbient(lights.NewAmbientLight(core.NewColor(255, 255, 255), 0.15)).
		SetResolution(600, 600)

	shiny := core.NewMaterial(0.5, 0.5, 30)
	floor := geometry.NewSurface(core.Black, core.NewMaterial(0.5, 0.5, 60))

	b.add(geometry.NewTriangle(floor,
		core.NewPoint(-150, -150, -115), core.NewPoint(150, -150, -135), core.NewPoint(75, 75, -150)))
	b.add(geometry.NewTriangle(floor,
		core.NewPoint(-150, -150, -115), core.NewPoint(-70, 70, -140), core.NewPoint(75, 75, -150)))

	b.add(geometry.NewSphere(core.NewPoint(0, 0, -50), 30,
		geometry.NewSurface(core.NewColor(0, 0, 255), shiny)))
	b.add(geometry.NewTriangle(geometry.NewSurface(core.Black, shiny),
		core.NewPoint(-70, -40, 0), core.NewPoint(-40, -70, 0), core.NewPoint(-68, -68, -4)))

	b.scene.AddLights(
		lights.NewSpotLight(core.NewColor(700, 400, 400), core.NewPoint(-100, -100, 200), core.MustVector(1, 1, -3), 1, 1e-5, 1.5e-7).
			WithRadius(10),
	)

	return b.build()
}
