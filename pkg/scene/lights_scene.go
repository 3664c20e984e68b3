package scene

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// NewSphereLightScene creates a single shiny sphere lit by one light of the given type
func NewSphereLightScene(lightType lights.LightType) (*Scene, error) {
	b := newBuilder("sphere-" + string(lightType))

	b.camera(
		core.NewPoint(0, 0, -1000),
		core.MustVector(0, 0, 1),
		core.MustVector(0, -1, 0),
		geometry.View{Distance: 1000, Width: 150, Height: 150},
	)
	b.scene.SetResolution(500, 500)

	b.add(geometry.NewSphere(core.NewPoint(0, 0, 50), 50,
		geometry.NewSurface(core.NewColor(0, 0, 255), core.NewMaterial(0.5, 0.5, 100)),
	))

	lightColor := core.NewColor(500, 300, 0)
	lightPosition := core.NewPoint(-50, 50, -50)
	switch lightType {
	case lights.LightTypeDirectional:
		b.scene.AddLights(lights.NewDirectionalLight(lightColor, core.MustVector(1, -1, 1)))
	case lights.LightTypePoint:
		b.scene.AddLights(lights.NewPointLight(lightColor, lightPosition, 1, 1e-5, 1e-6))
	case lights.LightTypeSpot:
		b.scene.AddLights(lights.NewSpotLight(lightColor, lightPosition, core.MustVector(1, -1, 2), 1, 1e-5, 1e-6))
	default:
		return nil, fmt.Errorf("unsupported light type %q", lightType)
	}

	return b.build()
}
