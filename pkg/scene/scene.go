package scene

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// Scene contains all the elements needed for rendering. It is read only
// while a render is running.
type Scene struct {
	Name       string
	Background core.Color // Color of rays that hit nothing
	Ambient    lights.AmbientLight
	Geometries *geometry.Geometries // Objects in the scene
	Lights     []lights.LightSource // Lights in the scene
	Camera     *geometry.Camera
	View       geometry.View // View plane in front of the camera
	Resolution Resolution
}

// Resolution is the size of the output image in pixels
type Resolution struct {
	Columns int
	Rows    int
}

// New creates an empty scene with a black background and no ambient light
func New(name string) *Scene {
	return &Scene{
		Name:       name,
		Background: core.Black,
		Geometries: geometry.NewGeometries(),
	}
}

// AddGeometries adds objects to the scene
func (s *Scene) AddGeometries(items ...geometry.Intersectable) *Scene {
	s.Geometries.Add(items...)
	return s
}

// AddLights adds light sources to the scene
func (s *Scene) AddLights(ls ...lights.LightSource) *Scene {
	s.Lights = append(s.Lights, ls...)
	return s
}

// SetCamera sets the camera and its view plane
func (s *Scene) SetCamera(camera *geometry.Camera, view geometry.View) *Scene {
	s.Camera = camera
	s.View = view
	return s
}

// SetBackground sets the color of rays that hit nothing
func (s *Scene) SetBackground(background core.Color) *Scene {
	s.Background = background
	return s
}

// SetAmbient sets the ambient light
func (s *Scene) SetAmbient(ambient lights.AmbientLight) *Scene {
	s.Ambient = ambient
	return s
}

// SetResolution sets the output image size
func (s *Scene) SetResolution(columns, rows int) *Scene {
	s.Resolution = Resolution{Columns: columns, Rows: rows}
	return s
}

// FindClosestIntersection returns the nearest hit of the ray in the scene
func (s *Scene) FindClosestIntersection(ray core.Ray) (geometry.GeoPoint, bool) {
	return s.Geometries.FindClosestIntersection(ray)
}

// builder collects scene objects and keeps the first construction error
type builder struct {
	scene *Scene
	err   error
}

func newBuilder(name string) *builder {
	return &builder{scene: New(name)}
}

func (b *builder) add(g geometry.Geometry, err error) {
	if b.err != nil {
		return
	}
	if err != nil {
		b.err = err
		return
	}
	b.scene.AddGeometries(g)
}

func (b *builder) camera(position core.Point, to, up core.Vector, view geometry.View) {
	if b.err != nil {
		return
	}
	camera, err := geometry.NewCamera(position, to, up)
	if err != nil {
		b.err = err
		return
	}
	b.scene.SetCamera(camera, view)
}

func (b *builder) build() (*Scene, error) {
	if b.err != nil {
		return nil, fmt.Errorf("scene %s: %w", b.scene.Name, b.err)
	}
	return b.scene, nil
}
