package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// ErrUnknownScene is returned for a scene id that names no known scene
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Scene name
	Description string `json:"description"` // Optional description
	Type        string `json:"type"`        // "builtin" or "json"
	FilePath    string `json:"filePath"`    // Path to the scene file (json type only)
}

type builtinScene struct {
	info  SceneInfo
	build func() (*Scene, error)
}

var builtinScenes = []builtinScene{
	{SceneInfo{ID: "default", Name: "Default Scene", Description: "Every primitive with mirror, glass and three light types"}, NewDefaultScene},
	{SceneInfo{ID: "cornell", Name: "Cornell Box", Description: "Polygon Cornell box with mirror and glass spheres"}, NewCornellScene},
	{SceneInfo{ID: "spheregrid", Name: "Sphere Grid", Description: "Grid of spheres with varying diffuse and shininess"}, NewSphereGridScene},
	{SceneInfo{ID: "cylinders", Name: "Cylinders", Description: "Capped cylinders and a tube on a reflective floor"}, NewCylinderScene},
	{SceneInfo{ID: "shadow", Name: "Shadow", Description: "Triangle shadowing a sphere under a spot light"}, NewShadowScene},
	{SceneInfo{ID: "sphere-directional", Name: "Sphere, Directional Light"}, sphereScene(lights.LightTypeDirectional)},
	{SceneInfo{ID: "sphere-point", Name: "Sphere, Point Light"}, sphereScene(lights.LightTypePoint)},
	{SceneInfo{ID: "sphere-spot", Name: "Sphere, Spot Light"}, sphereScene(lights.LightTypeSpot)},
}

func sphereScene(lightType lights.LightType) func() (*Scene, error) {
	return func() (*Scene, error) {
		return NewSphereLightScene(lightType)
	}
}

// ListBuiltinScenes returns the scenes that are constructed in code
func ListBuiltinScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(builtinScenes))
	for i, s := range builtinScenes {
		scenes[i] = s.info
		scenes[i].Type = "builtin"
	}
	return scenes
}

// NewBuiltinScene constructs the built-in scene with the given id
func NewBuiltinScene(id string) (*Scene, error) {
	for _, s := range builtinScenes {
		if s.info.ID == id {
			return s.build()
		}
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownScene, id)
}

// ListJSONScenes scans the scenes directory and returns discovered JSON scenes
func ListJSONScenes() ([]SceneInfo, error) {
	// Try different possible paths for scenes directory
	possiblePaths := []string{"scenes", "../scenes"}
	var scenesDir string

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			scenesDir = path
			break
		}
	}

	if scenesDir == "" {
		// No scenes directory found, return empty list
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(scenesDir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	var scenes []SceneInfo
	for _, filePath := range files {
		sceneInfo, err := parseJSONMetadata(filePath)
		if err != nil {
			// Log warning but continue processing other files
			fmt.Printf("Warning: failed to parse metadata for %s: %v\n", filePath, err)
			continue
		}
		scenes = append(scenes, sceneInfo)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})

	return scenes, nil
}

// parseJSONMetadata reads the name and description fields of a scene file
func parseJSONMetadata(filePath string) (SceneInfo, error) {
	nameWithoutExt := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))

	sceneInfo := SceneInfo{
		ID:       "json:" + nameWithoutExt,
		Name:     nameWithoutExt,
		Type:     "json",
		FilePath: filePath,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return sceneInfo, err
	}

	var header struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return sceneInfo, err
	}
	if header.Name != "" {
		sceneInfo.Name = header.Name
	}
	sceneInfo.Description = header.Description

	return sceneInfo, nil
}
