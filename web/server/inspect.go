package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

func vec3(x, y, z float64) [3]float64 { return [3]float64{x, y, z} }

func pointArray(p core.Point) [3]float64 { return vec3(p.X(), p.Y(), p.Z()) }

func vectorArray(v core.Vector) [3]float64 { return vec3(v.X(), v.Y(), v.Z()) }

func colorArray(c core.Color) [3]float64 { return vec3(c.R, c.G, c.B) }

// extractMaterialInfo lists the Phong coefficients and emission of a surface
func (s *Server) extractMaterialInfo(g geometry.Geometry) map[string]interface{} {
	m := g.Material()
	emission := g.Emission()
	rgba := emission.RGBA()
	return map[string]interface{}{
		"kd":        m.KD,
		"ks":        m.KS,
		"shininess": m.Shininess,
		"kt":        m.KT,
		"kr":        m.KR,
		"emission":  colorArray(emission),
		"color":     fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B),
	}
}

// extractGeometryInfo extracts detailed geometry information
func (s *Server) extractGeometryInfo(g geometry.Geometry) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := g.(type) {
	case *geometry.Sphere:
		properties["center"] = pointArray(geom.Center())
		properties["radius"] = geom.Radius()
		return "sphere", properties

	case *geometry.Plane:
		properties["point"] = pointArray(geom.Point())
		return "plane", properties

	case *geometry.Cylinder:
		properties["origin"] = pointArray(geom.Axis().Origin())
		properties["axis"] = vectorArray(geom.Axis().Direction())
		properties["radius"] = geom.Radius()
		properties["height"] = geom.Height()
		return "cylinder", properties

	case *geometry.Tube:
		properties["origin"] = pointArray(geom.Axis().Origin())
		properties["axis"] = vectorArray(geom.Axis().Direction())
		properties["radius"] = geom.Radius()
		return "tube", properties

	case *geometry.Triangle:
		properties["vertices"] = vertexArrays(geom.Vertices())
		return "triangle", properties

	case *geometry.Polygon:
		properties["vertices"] = vertexArrays(geom.Vertices())
		return "polygon", properties

	default:
		return "unknown", properties
	}
}

func vertexArrays(vertices []core.Point) [][3]float64 {
	out := make([][3]float64, len(vertices))
	for i, v := range vertices {
		out[i] = pointArray(v)
	}
	return out
}

// inspectPixel casts the center ray of pixel (x, y) and returns the closest hit
func inspectPixel(sceneObj *scene.Scene, width, height, x, y int) (core.Ray, geometry.GeoPoint, bool) {
	ray := sceneObj.Camera.ConstructRayThroughPixel(sceneObj.View, width, height, x, y)
	gp, ok := sceneObj.FindClosestIntersection(ray)
	return ray, gp, ok
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	inspectReq := &RenderRequest{}
	if err := s.parseCommonSceneParams(r, inspectReq); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}
	if pixelX < 0 || pixelX >= inspectReq.Width || pixelY < 0 || pixelY >= inspectReq.Height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	sceneObj, err := s.createScene(inspectReq)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Unknown scene: "+inspectReq.Scene)
		return
	}

	ray, gp, ok := inspectPixel(sceneObj, inspectReq.Width, inspectReq.Height, pixelX, pixelY)
	if !ok {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false})
		return
	}

	geometryType, geometryProps := s.extractGeometryInfo(gp.Geometry)
	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:          true,
		GeometryType: geometryType,
		Point:        pointArray(gp.Point),
		Normal:       vectorArray(gp.Geometry.Normal(gp.Point)),
		Distance:     ray.Origin().Distance(gp.Point),
		Properties: map[string]interface{}{
			"material": s.extractMaterialInfo(gp.Geometry),
			"geometry": geometryProps,
		},
	})
}
