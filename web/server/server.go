package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-phong-raytracer/pkg/loaders"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Config holds the web server settings
type Config struct {
	Port         int    // Port to listen on
	StaticDir    string // Directory served at /
	DefaultScene string // Scene rendered when a request names none
	DefaultSize  int    // Image width and height when a request gives none
	MaxSize      int    // Largest accepted image width or height
}

// DefaultConfig returns the settings used by the web command
func DefaultConfig() Config {
	return Config{
		Port:         8080,
		StaticDir:    "static",
		DefaultScene: "default",
		DefaultSize:  400,
		MaxSize:      2000,
	}
}

// Server handles web requests for the raytracer
type Server struct {
	config Config
}

// NewServer creates a new web server
func NewServer(config Config) *Server {
	return &Server{config: config}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene          string `json:"scene"`          // Scene id or .json path
	Width          int    `json:"width"`          // Image width
	Height         int    `json:"height"`         // Image height
	SoftShadowRays int    `json:"softShadowRays"` // Shadow rays per light with a radius
	SuperSampling  int    `json:"superSampling"`  // Adaptive supersampling depth
	GridSamples    int    `json:"gridSamples"`    // NxN ray grid per pixel, 0 = off
	NumWorkers     int    `json:"numWorkers"`     // 0 = auto
}

// Handler returns the routes of the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Serve static files
	mux.Handle("/", http.FileServer(http.Dir(s.config.StaticDir)))

	// API endpoints
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes and the scene files in scenes/
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	scenes := scene.ListBuiltinScenes()
	jsonScenes, err := scene.ListJSONScenes()
	if err != nil {
		log.Printf("Error listing JSON scenes: %v", err)
	}
	scenes = append(scenes, jsonScenes...)

	writeJSON(w, http.StatusOK, scenes)
}

// parseCommonSceneParams parses the parameters shared by render and inspect
func (s *Server) parseCommonSceneParams(r *http.Request, req *RenderRequest) error {
	values := r.URL.Query()

	req.Scene = values.Get("scene")
	if req.Scene == "" {
		req.Scene = s.config.DefaultScene
	}

	var err error
	if req.Width, err = parseIntParam(values, "width", s.config.DefaultSize, 10, s.config.MaxSize); err != nil {
		return err
	}
	if req.Height, err = parseIntParam(values, "height", s.config.DefaultSize, 10, s.config.MaxSize); err != nil {
		return err
	}
	return nil
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{}
	if err := s.parseCommonSceneParams(r, req); err != nil {
		return nil, err
	}

	values := r.URL.Query()
	var err error
	if req.SoftShadowRays, err = parseIntParam(values, "softShadowRays", 0, 0, 200); err != nil {
		return nil, err
	}
	if req.SuperSampling, err = parseIntParam(values, "superSampling", 0, 0, 5); err != nil {
		return nil, err
	}
	if req.GridSamples, err = parseIntParam(values, "gridSamples", 0, 0, 16); err != nil {
		return nil, err
	}
	if req.NumWorkers, err = parseIntParam(values, "numWorkers", 0, 0, 256); err != nil {
		return nil, err
	}

	// Performance warning
	if req.Width*req.Height > 800*600 && req.SoftShadowRays > 50 {
		log.Printf("Render warning: Large image with many shadow rays may render slowly")
	}

	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// createScene resolves the requested scene and sizes it to the request
func (s *Server) createScene(req *RenderRequest) (*scene.Scene, error) {
	sceneObj, err := loaders.ResolveScene(req.Scene)
	if err != nil {
		return nil, err
	}
	sceneObj.SetResolution(req.Width, req.Height)
	return sceneObj, nil
}

// writeJSON writes v as a JSON response with the given status
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
