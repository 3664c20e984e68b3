package loaders

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

var ErrInvalidView = errors.New("view plane distance, width and height must be positive")

// Default image size for scene files that do not set a resolution
const (
	DefaultColumns = 500
	DefaultRows    = 500
)

// Vec3 is a point, vector or color written as [x, y, z]
type Vec3 [3]float64

func (v Vec3) point() core.Point { return core.NewPoint(v[0], v[1], v[2]) }

func (v Vec3) vector() (core.Vector, error) { return core.NewVector(v[0], v[1], v[2]) }

func (v Vec3) color() core.Color { return core.NewColor(v[0], v[1], v[2]) }

type MaterialCfg struct {
	KD        float64 `json:"kd"`
	KS        float64 `json:"ks"`
	Shininess int     `json:"shininess"`
	KT        float64 `json:"kt,omitempty"`
	KR        float64 `json:"kr,omitempty"`
}

func (m MaterialCfg) Build() core.Material {
	return core.NewMaterial(m.KD, m.KS, m.Shininess).
		WithTransparency(m.KT).
		WithReflectance(m.KR)
}

// SurfaceCfg is embedded in every geometry config
type SurfaceCfg struct {
	Emission Vec3        `json:"emission"`
	Material MaterialCfg `json:"material"`
}

func (s SurfaceCfg) surface() geometry.Surface {
	return geometry.NewSurface(s.Emission.color(), s.Material.Build())
}

type SphereCfg struct {
	Center Vec3    `json:"center"`
	Radius float64 `json:"radius"`
	SurfaceCfg
}

func (c SphereCfg) Build() (*geometry.Sphere, error) {
	return geometry.NewSphere(c.Center.point(), c.Radius, c.surface())
}

// PlaneCfg describes a plane either by a point and a normal or by three points
type PlaneCfg struct {
	Point  Vec3   `json:"point"`
	Normal Vec3   `json:"normal"`
	Points []Vec3 `json:"points,omitempty"`
	SurfaceCfg
}

func (c PlaneCfg) Build() (*geometry.Plane, error) {
	if len(c.Points) > 0 {
		if len(c.Points) != 3 {
			return nil, fmt.Errorf("plane needs exactly 3 points, got %d", len(c.Points))
		}
		return geometry.NewPlaneFromPoints(c.Points[0].point(), c.Points[1].point(), c.Points[2].point(), c.surface())
	}
	normal, err := c.Normal.vector()
	if err != nil {
		return nil, fmt.Errorf("normal: %w", err)
	}
	return geometry.NewPlane(c.Point.point(), normal, c.surface()), nil
}

// AxisCfg is the ray along the center line of a tube or cylinder
type AxisCfg struct {
	Origin    Vec3 `json:"origin"`
	Direction Vec3 `json:"direction"`
}

func (a AxisCfg) ray() (core.Ray, error) {
	dir, err := a.Direction.vector()
	if err != nil {
		return core.Ray{}, fmt.Errorf("axis direction: %w", err)
	}
	return core.NewRay(a.Origin.point(), dir), nil
}

type TubeCfg struct {
	Axis   AxisCfg `json:"axis"`
	Radius float64 `json:"radius"`
	SurfaceCfg
}

func (c TubeCfg) Build() (*geometry.Tube, error) {
	axis, err := c.Axis.ray()
	if err != nil {
		return nil, err
	}
	return geometry.NewTube(axis, c.Radius, c.surface())
}

type CylinderCfg struct {
	Axis   AxisCfg `json:"axis"`
	Radius float64 `json:"radius"`
	Height float64 `json:"height"`
	SurfaceCfg
}

func (c CylinderCfg) Build() (*geometry.Cylinder, error) {
	axis, err := c.Axis.ray()
	if err != nil {
		return nil, err
	}
	return geometry.NewCylinder(axis, c.Radius, c.Height, c.surface())
}

type PolygonCfg struct {
	Vertices []Vec3 `json:"vertices"`
	SurfaceCfg
}

func (c PolygonCfg) Build() (*geometry.Polygon, error) {
	vertices := make([]core.Point, len(c.Vertices))
	for i, v := range c.Vertices {
		vertices[i] = v.point()
	}
	return geometry.NewPolygon(c.surface(), vertices...)
}

type TriangleCfg struct {
	Vertices [3]Vec3 `json:"vertices"`
	SurfaceCfg
}

func (c TriangleCfg) Build() (*geometry.Triangle, error) {
	return geometry.NewTriangle(c.surface(), c.Vertices[0].point(), c.Vertices[1].point(), c.Vertices[2].point())
}

type AmbientCfg struct {
	Color Vec3    `json:"color"`
	K     float64 `json:"k"`
}

type DirectionalLightCfg struct {
	Intensity Vec3 `json:"intensity"`
	Direction Vec3 `json:"direction"`
}

func (c DirectionalLightCfg) Build() (*lights.DirectionalLight, error) {
	dir, err := c.Direction.vector()
	if err != nil {
		return nil, fmt.Errorf("direction: %w", err)
	}
	return lights.NewDirectionalLight(c.Intensity.color(), dir), nil
}

// AttenuationCfg holds the constant, linear and quadratic falloff terms.
// All three zero means no falloff.
type AttenuationCfg struct {
	KC float64 `json:"kc"`
	KL float64 `json:"kl"`
	KQ float64 `json:"kq"`
}

func (a AttenuationCfg) terms() (kC, kL, kQ float64, err error) {
	if a.KC < 0 || a.KL < 0 || a.KQ < 0 {
		return 0, 0, 0, fmt.Errorf("negative attenuation %+v", a)
	}
	if a.KC == 0 && a.KL == 0 && a.KQ == 0 {
		return 1, 0, 0, nil
	}
	return a.KC, a.KL, a.KQ, nil
}

type PointLightCfg struct {
	Intensity Vec3    `json:"intensity"`
	Position  Vec3    `json:"position"`
	Radius    float64 `json:"radius,omitempty"`
	AttenuationCfg
}

func (c PointLightCfg) Build() (*lights.PointLight, error) {
	kC, kL, kQ, err := c.terms()
	if err != nil {
		return nil, err
	}
	return lights.NewPointLight(c.Intensity.color(), c.Position.point(), kC, kL, kQ).WithRadius(c.Radius), nil
}

type SpotLightCfg struct {
	Intensity Vec3    `json:"intensity"`
	Position  Vec3    `json:"position"`
	Direction Vec3    `json:"direction"`
	Radius    float64 `json:"radius,omitempty"`
	AttenuationCfg
}

func (c SpotLightCfg) Build() (*lights.SpotLight, error) {
	kC, kL, kQ, err := c.terms()
	if err != nil {
		return nil, err
	}
	dir, err := c.Direction.vector()
	if err != nil {
		return nil, fmt.Errorf("direction: %w", err)
	}
	return lights.NewSpotLight(c.Intensity.color(), c.Position.point(), dir, kC, kL, kQ).WithRadius(c.Radius), nil
}

type CameraCfg struct {
	Position Vec3 `json:"position"`
	To       Vec3 `json:"to"`
	Up       Vec3 `json:"up"`
}

func (c CameraCfg) Build() (*geometry.Camera, error) {
	to, err := c.To.vector()
	if err != nil {
		return nil, fmt.Errorf("to: %w", err)
	}
	up, err := c.Up.vector()
	if err != nil {
		return nil, fmt.Errorf("up: %w", err)
	}
	return geometry.NewCamera(c.Position.point(), to, up)
}

// SceneCfg is the top level of a JSON scene file
type SceneCfg struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Background  Vec3       `json:"background"`
	Ambient     AmbientCfg `json:"ambient"`
	Camera      CameraCfg  `json:"camera"`
	Distance    float64    `json:"distance"`
	ViewWidth   float64    `json:"viewWidth"`
	ViewHeight  float64    `json:"viewHeight"`
	Resolution  [2]int     `json:"resolution,omitempty"` // columns, rows

	Spheres           []SphereCfg           `json:"spheres,omitempty"`
	Planes            []PlaneCfg            `json:"planes,omitempty"`
	Tubes             []TubeCfg             `json:"tubes,omitempty"`
	Cylinders         []CylinderCfg         `json:"cylinders,omitempty"`
	Polygons          []PolygonCfg          `json:"polygons,omitempty"`
	Triangles         []TriangleCfg         `json:"triangles,omitempty"`
	DirectionalLights []DirectionalLightCfg `json:"directionalLights,omitempty"`
	PointLights       []PointLightCfg       `json:"pointLights,omitempty"`
	SpotLights        []SpotLightCfg        `json:"spotLights,omitempty"`
}

// buildAll builds every element of cfgs, naming the failing element in the error
func buildAll[T any, C interface{ Build() (T, error) }](kind string, cfgs []C) ([]T, error) {
	built := make([]T, 0, len(cfgs))
	for i, cfg := range cfgs {
		obj, err := cfg.Build()
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", kind, i, err)
		}
		built = append(built, obj)
	}
	return built, nil
}

// Build validates the configuration and constructs the scene
func (c SceneCfg) Build() (*scene.Scene, error) {
	if c.Distance <= 0 || c.ViewWidth <= 0 || c.ViewHeight <= 0 {
		return nil, fmt.Errorf("%w: distance %g, %gx%g", ErrInvalidView, c.Distance, c.ViewWidth, c.ViewHeight)
	}
	columns, rows := c.Resolution[0], c.Resolution[1]
	if columns == 0 && rows == 0 {
		columns, rows = DefaultColumns, DefaultRows
	}
	if columns <= 0 || rows <= 0 {
		return nil, fmt.Errorf("invalid resolution %dx%d", columns, rows)
	}

	camera, err := c.Camera.Build()
	if err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}

	s := scene.New(c.Name).
		SetBackground(c.Background.color()).
		SetAmbient(lights.NewAmbientLight(c.Ambient.Color.color(), c.Ambient.K)).
		SetCamera(camera, geometry.View{Distance: c.Distance, Width: c.ViewWidth, Height: c.ViewHeight}).
		SetResolution(columns, rows)

	if err := c.addGeometries(s); err != nil {
		return nil, err
	}
	if err := c.addLights(s); err != nil {
		return nil, err
	}
	return s, nil
}

func (c SceneCfg) addGeometries(s *scene.Scene) error {
	spheres, err := buildAll[*geometry.Sphere]("spheres", c.Spheres)
	if err != nil {
		return err
	}
	planes, err := buildAll[*geometry.Plane]("planes", c.Planes)
	if err != nil {
		return err
	}
	tubes, err := buildAll[*geometry.Tube]("tubes", c.Tubes)
	if err != nil {
		return err
	}
	cylinders, err := buildAll[*geometry.Cylinder]("cylinders", c.Cylinders)
	if err != nil {
		return err
	}
	polygons, err := buildAll[*geometry.Polygon]("polygons", c.Polygons)
	if err != nil {
		return err
	}
	triangles, err := buildAll[*geometry.Triangle]("triangles", c.Triangles)
	if err != nil {
		return err
	}

	for _, g := range spheres {
		s.AddGeometries(g)
	}
	for _, g := range planes {
		s.AddGeometries(g)
	}
	for _, g := range tubes {
		s.AddGeometries(g)
	}
	for _, g := range cylinders {
		s.AddGeometries(g)
	}
	for _, g := range polygons {
		s.AddGeometries(g)
	}
	for _, g := range triangles {
		s.AddGeometries(g)
	}
	return nil
}

func (c SceneCfg) addLights(s *scene.Scene) error {
	directional, err := buildAll[*lights.DirectionalLight]("directionalLights", c.DirectionalLights)
	if err != nil {
		return err
	}
	points, err := buildAll[*lights.PointLight]("pointLights", c.PointLights)
	if err != nil {
		return err
	}
	spots, err := buildAll[*lights.SpotLight]("spotLights", c.SpotLights)
	if err != nil {
		return err
	}

	for _, l := range directional {
		s.AddLights(l)
	}
	for _, l := range points {
		s.AddLights(l)
	}
	for _, l := range spots {
		s.AddLights(l)
	}
	return nil
}

// ParseScene decodes and builds a scene from JSON. Unknown fields are rejected.
func ParseScene(r io.Reader) (*scene.Scene, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var cfg SceneCfg
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	s, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", cfg.Name, err)
	}
	return s, nil
}

// LoadScene reads a JSON scene file. The file name is the scene name unless
// the file sets one.
func LoadScene(path string) (*scene.Scene, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	s, err := ParseScene(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// ResolveScene returns the scene named by id: a built-in scene id, a
// discovered "json:<name>" id, or a path to a .json file
func ResolveScene(id string) (*scene.Scene, error) {
	if strings.HasSuffix(id, ".json") {
		return LoadScene(id)
	}

	if strings.HasPrefix(id, "json:") {
		scenes, err := scene.ListJSONScenes()
		if err != nil {
			return nil, err
		}
		for _, info := range scenes {
			if info.ID == id {
				return LoadScene(info.FilePath)
			}
		}
		return nil, fmt.Errorf("%w %q", scene.ErrUnknownScene, id)
	}

	return scene.NewBuiltinScene(id)
}
