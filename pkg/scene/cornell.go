package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// NewCornellScene creates a Cornell box built from polygon walls, with a
// mirror sphere, a glass sphere and a soft ceiling light.
func NewCornellScene() (*Scene, error) {
	b := newBuilder("cornell")

	// Cornell box dimensions (standard 555x555x555 units)
	const boxSize = 555.0

	b.camera(
		core.NewPoint(278, 278, -800),
		core.MustVector(0, 0, 1),
		core.MustVector(0, 1, 0),
		geometry.View{Distance: 800, Width: 600, Height: 600},
	)
	b.scene.
		SetAmbient(lights.NewAmbientLight(core.NewColor(255, 255, 255), 0.05)).
		SetResolution(500, 500)

	matte := core.NewMaterial(0.6, 0.2, 10)
	white := geometry.NewSurface(core.NewColor(40, 40, 40), matte)
	red := geometry.NewSurface(core.NewColor(120, 10, 10), matte)
	green := geometry.NewSurface(core.NewColor(20, 90, 25), matte)

	corner := func(x, y, z float64) core.Point {
		return core.NewPoint(x*boxSize, y*boxSize, z*boxSize)
	}

	// Floor, ceiling and back wall
	b.add(geometry.NewPolygon(white, corner(0, 0, 0), corner(1, 0, 0), corner(1, 0, 1), corner(0, 0, 1)))
	b.add(geometry.NewPolygon(white, corner(0, 1, 0), corner(1, 1, 0), corner(1, 1, 1), corner(0, 1, 1)))
	b.add(geometry.NewPolygon(white, corner(0, 0, 1), corner(1, 0, 1), corner(1, 1, 1), corner(0, 1, 1)))

	// Left wall (red) and right wall (green)
	b.add(geometry.NewPolygon(red, corner(0, 0, 0), corner(0, 0, 1), corner(0, 1, 1), corner(0, 1, 0)))
	b.add(geometry.NewPolygon(green, corner(1, 0, 0), corner(1, 1, 0), corner(1, 1, 1), corner(1, 0, 1)))

	// Left sphere (mirror), right sphere (glass)
	b.add(geometry.NewSphere(core.NewPoint(185, 82.5, 169), 82.5,
		geometry.NewSurface(core.NewColor(10, 10, 15), core.NewMaterial(0.2, 0.8, 200).WithReflectance(0.8))))
	b.add(geometry.NewSphere(core.NewPoint(370, 90, 351), 90,
		geometry.NewSurface(core.NewColor(5, 15, 20), core.NewMaterial(0.1, 0.9, 300).WithTransparency(0.7))))

	b.scene.AddLights(
		lights.NewPointLight(core.NewColor(400, 380, 350), core.NewPoint(278, 500, 278), 1, 1e-4, 5e-6).
			WithRadius(40),
	)

	return b.build()
}
