package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// NewDefaultScene creates the showcase scene: every primitive type, a mirror
// wall, translucent shapes and all three kinds of light.
func NewDefaultScene() (*Scene, error) {
	b := newBuilder("default")

	b.camera(
		core.NewPoint(170, 170, 170),
		core.MustVector(-1, -1, -1),
		core.MustVector(-3, -3, 6),
		geometry.View{Distance: 100, Width: 200, Height: 200},
	)
	b.scene.
		SetBackground(core.Black).
		SetAmbient(lights.NewAmbientLight(core.NewColor(255, 255, 255), 0.15)).
		SetResolution(800, 800)

	base := core.NewMaterial(0.1, 0.1, 20)
	surface := func(r, g, bl float64, material core.Material) geometry.Surface {
		return geometry.NewSurface(core.NewColor(r, g, bl), material)
	}

	// Ground
	b.add(geometry.NewPlane(core.Origin, core.MustVector(0, 0, 1), surface(0, 153, 204, base)), nil)

	// Mirror wall
	b.add(geometry.NewPolygon(surface(51, 100, 51, base.WithReflectance(1)),
		core.NewPoint(-40, -40, 0),
		core.NewPoint(100, -40, 0),
		core.NewPoint(100, -40, 150),
		core.NewPoint(-40, -40, 150),
	))

	// Glass pyramid without a base
	glassGreen := surface(51, 153, 51, base.WithTransparency(0.3))
	apex := core.NewPoint(36, 69, 40)
	b.add(geometry.NewTriangle(glassGreen, core.NewPoint(-4, 87, 0), core.NewPoint(47, 32, 0), apex))
	b.add(geometry.NewTriangle(glassGreen, core.NewPoint(63, 96, 0), core.NewPoint(-4, 87, 0), apex))
	b.add(geometry.NewTriangle(glassGreen, core.NewPoint(63, 96, 0), core.NewPoint(47, 32, 0), apex))

	b.add(geometry.NewTube(
		core.NewRay(core.NewPoint(100, 100, 0), core.MustVector(-1, 1, 0)), 20,
		surface(50, 150, 50, base.WithTransparency(0.5)),
	))

	b.add(geometry.NewSphere(core.NewPoint(-70, 60, 120), 20, surface(0, 255, 255, base)))
	b.add(geometry.NewSphere(core.NewPoint(20, 20, 20), 20, surface(0, 0, 255, base)))
	b.add(geometry.NewSphere(core.Origin, 200, surface(100, 50, 50, base.WithTransparency(0.4))))

	b.add(geometry.NewCylinder(
		core.NewRay(core.NewPoint(-70, 60, 0), core.MustVector(0, 0, 1)), 30, 100,
		surface(0, 255, 0, base.WithReflectance(0.5)),
	))

	b.scene.AddLights(
		lights.NewDirectionalLight(core.NewColor(255, 255, 0), core.MustVector(0, 1, -1)),
		lights.NewPointLight(core.NewColor(1000, 1000, 0), core.NewPoint(-70, 40, 170), 1, 1e-4, 1e-6).
			WithRadius(20),
		lights.NewSpotLight(core.NewColor(500, 500, 500), core.NewPoint(130, 130, 30), core.MustVector(-1, 0, -1), 1, 1e-6, 1e-9).
			WithRadius(20),
	)

	return b.build()
}
