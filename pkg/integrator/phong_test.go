package integrator

import (
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

func mustSphere(t *testing.T, center core.Point, radius float64, surface geometry.Surface) *geometry.Sphere {
	t.Helper()
	s, err := geometry.NewSphere(center, radius, surface)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func floorPlane(z float64, surface geometry.Surface) *geometry.Plane {
	return geometry.NewPlane(core.NewPoint(0, 0, z), core.MustVector(0, 0, 1), surface)
}

func colorNear(a, b core.Color) bool {
	const tolerance = 1e-6
	return math.Abs(a.R-b.R) < tolerance && math.Abs(a.G-b.G) < tolerance && math.Abs(a.B-b.B) < tolerance
}

// straight down onto the z = 0 plane
var downRay = core.NewRay(core.NewPoint(0, 0, 10), core.MustVector(0, 0, -1))

func TestPhong_Background(t *testing.T) {
	s := scene.New("empty").SetBackground(core.NewColor(1, 2, 3))
	s.SetAmbient(lights.NewAmbientLight(core.NewColor(100, 100, 100), 1))

	pi := NewPhongIntegrator(s, DefaultShadingConfig())
	if got := pi.RayColor(downRay); !colorNear(got, core.NewColor(1, 2, 3)) {
		t.Errorf("Expected the background without ambient light, got %v", got)
	}
}

func TestPhong_DirectLighting(t *testing.T) {
	white := core.NewColor(100, 100, 100)

	tests := []struct {
		name     string
		material core.Material
		light    lights.LightSource
		expected core.Color
	}{
		{
			name:     "diffuse, light above",
			material: core.NewMaterial(0.5, 0, 1),
			light:    lights.NewDirectionalLight(white, core.MustVector(0, 0, -1)),
			expected: core.NewColor(60, 50, 50),
		},
		{
			name:     "specular, light above",
			material: core.NewMaterial(0, 1, 10),
			light:    lights.NewDirectionalLight(white, core.MustVector(0, 0, -1)),
			expected: core.NewColor(110, 100, 100),
		},
		{
			name:     "diffuse, oblique light",
			material: core.NewMaterial(1, 0, 1),
			light:    lights.NewDirectionalLight(white, core.MustVector(0, 1, -1)),
			expected: core.NewColor(10+100/sqrt2, 100/sqrt2, 100/sqrt2),
		},
		{
			name:     "light below the surface",
			material: core.NewMaterial(1, 1, 1),
			light:    lights.NewDirectionalLight(white, core.MustVector(0, 0, 1)),
			expected: core.NewColor(10, 0, 0),
		},
		{
			name:     "attenuated point light",
			material: core.NewMaterial(1, 0, 1),
			light:    lights.NewPointLight(white, core.NewPoint(0, 0, 4), 1, 0.25, 0),
			expected: core.NewColor(60, 50, 50),
		},
		{
			name:     "spot light facing away",
			material: core.NewMaterial(1, 1, 1),
			light:    lights.NewSpotLight(white, core.NewPoint(0, 0, 4), core.MustVector(0, 0, 1), 1, 0, 0),
			expected: core.NewColor(10, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := scene.New("lit plane").
				AddGeometries(floorPlane(0, geometry.NewSurface(core.NewColor(10, 0, 0), tt.material))).
				AddLights(tt.light)

			pi := NewPhongIntegrator(s, DefaultShadingConfig())
			if got := pi.RayColor(downRay); !colorNear(got, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

const sqrt2 = 1.4142135623730951

func TestPhong_AmbientAddedOnce(t *testing.T) {
	mirror := core.NewMaterial(0, 0, 1).WithReflectance(1)
	s := scene.New("ambient").
		AddGeometries(
			floorPlane(0, geometry.NewSurface(core.Black, mirror)),
			mustSphere(t, core.NewPoint(0, 0, 20), 2, geometry.NewSurface(core.NewColor(0, 50, 0), core.NewMaterial(0, 0, 1))),
		).
		SetAmbient(lights.NewAmbientLight(core.NewColor(10, 10, 10), 1))

	pi := NewPhongIntegrator(s, DefaultShadingConfig())
	// mirror reflects the sphere, ambient light is added at the top only
	if got := pi.RayColor(downRay); !colorNear(got, core.NewColor(10, 60, 10)) {
		t.Errorf("Expected (10, 60, 10), got %v", got)
	}
}

func TestPhong_Reflection(t *testing.T) {
	mirror := core.NewMaterial(0, 0, 1).WithReflectance(1)
	s := scene.New("mirror").
		AddGeometries(
			floorPlane(0, geometry.NewSurface(core.Black, mirror)),
			mustSphere(t, core.NewPoint(20, 0, 10), 2, geometry.NewSurface(core.NewColor(100, 0, 0), core.NewMaterial(0, 0, 1))),
		)
	ray := core.NewRay(core.NewPoint(0, 0, 10), core.MustVector(1, 0, -1))

	pi := NewPhongIntegrator(s, DefaultShadingConfig())
	if got := pi.RayColor(ray); !colorNear(got, core.NewColor(100, 0, 0)) {
		t.Errorf("Expected the reflected sphere (100, 0, 0), got %v", got)
	}

	// With a single level the mirror hit is the last one shaded
	pi = NewPhongIntegrator(s, ShadingConfig{MaxLevel: 1, MinK: 0.001})
	if got := pi.RayColor(ray); !colorNear(got, core.Black) {
		t.Errorf("Expected black with one level, got %v", got)
	}
}

func TestPhong_Refraction(t *testing.T) {
	glass := core.NewMaterial(0, 0, 1).WithTransparency(0.5)
	s := scene.New("glass").
		AddGeometries(
			floorPlane(5, geometry.NewSurface(core.NewColor(0, 0, 20), glass)),
			mustSphere(t, core.Origin, 1, geometry.NewSurface(core.NewColor(0, 200, 0), core.NewMaterial(0, 0, 1))),
		)

	pi := NewPhongIntegrator(s, DefaultShadingConfig())
	// straight through the glass without bending
	if got := pi.RayColor(downRay); !colorNear(got, core.NewColor(0, 100, 20)) {
		t.Errorf("Expected (0, 100, 20), got %v", got)
	}
}

func TestPhong_RecursionTerminates(t *testing.T) {
	tests := []struct {
		name     string
		kr       float64
		config   ShadingConfig
		expected float64
	}{
		{"bounded by level", 1, DefaultShadingConfig(), 10},
		{"bounded by level 3", 1, ShadingConfig{MaxLevel: 3, MinK: 0.001}, 3},
		// 1 + 1/2 + ... + 1/2^9, the next bounce falls below MinK
		{"bounded by attenuation", 0.5, ShadingConfig{MaxLevel: 100, MinK: 0.001}, 2 * (1 - 1.0/1024)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mirror := geometry.NewSurface(core.NewColor(1, 0, 0), core.NewMaterial(0, 0, 1).WithReflectance(tt.kr))
			s := scene.New("facing mirrors").AddGeometries(floorPlane(0, mirror), floorPlane(10, mirror))

			pi := NewPhongIntegrator(s, tt.config)
			ray := core.NewRay(core.NewPoint(0, 0, 5), core.MustVector(0, 0, -1))
			if got := pi.RayColor(ray); !colorNear(got, core.NewColor(tt.expected, 0, 0)) {
				t.Errorf("Expected red %f, got %v", tt.expected, got)
			}
		})
	}
}
