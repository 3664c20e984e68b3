package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image/png"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/scene"
)

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

// sseEvents splits an SSE body into (event, data) pairs
func sseEvents(body string) [][2]string {
	var events [][2]string
	for _, block := range strings.Split(body, "\n\n") {
		var event, data string
		for _, line := range strings.Split(block, "\n") {
			if v, ok := strings.CutPrefix(line, "event: "); ok {
				event = v
			}
			if v, ok := strings.CutPrefix(line, "data: "); ok {
				data = v
			}
		}
		if event != "" {
			events = append(events, [2]string{event, data})
		}
	}
	return events
}

func TestHandleHealth(t *testing.T) {
	rec := get(t, NewServer(DefaultConfig()), "/api/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("Unexpected body %s", rec.Body.String())
	}
}

func TestHandleScenes(t *testing.T) {
	rec := get(t, NewServer(DefaultConfig()), "/api/scenes")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var scenes []scene.SceneInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &scenes); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if len(scenes) < len(scene.ListBuiltinScenes()) {
		t.Errorf("Expected at least the built-in scenes, got %d", len(scenes))
	}
}

func TestHandleInspect(t *testing.T) {
	s := NewServer(DefaultConfig())

	t.Run("hit", func(t *testing.T) {
		rec := get(t, s, "/api/inspect?scene=sphere-point&width=11&height=11&x=5&y=5")
		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		var resp InspectResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("Invalid JSON: %v", err)
		}
		if !resp.Hit || resp.GeometryType != "sphere" {
			t.Fatalf("Expected a sphere hit, got %+v", resp)
		}
		if math.Abs(resp.Distance-1000) > 1e-6 {
			t.Errorf("Expected distance 1000, got %f", resp.Distance)
		}
		if math.Abs(resp.Normal[2]+1) > 1e-6 {
			t.Errorf("Expected normal (0, 0, -1), got %v", resp.Normal)
		}
	})

	t.Run("miss", func(t *testing.T) {
		rec := get(t, s, "/api/inspect?scene=sphere-point&width=11&height=11&x=0&y=0")
		var resp InspectResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("Invalid JSON: %v", err)
		}
		if resp.Hit {
			t.Errorf("Expected a miss, got %+v", resp)
		}
	})

	badRequests := []string{
		"/api/inspect?scene=sphere-point&width=11&height=11&x=a&y=0",
		"/api/inspect?scene=sphere-point&width=11&height=11&x=0",
		"/api/inspect?scene=sphere-point&width=11&height=11&x=11&y=0",
		"/api/inspect?scene=nonexistent&width=11&height=11&x=0&y=0",
		"/api/inspect?scene=sphere-point&width=5&height=11&x=0&y=0",
	}
	for _, target := range badRequests {
		t.Run(target, func(t *testing.T) {
			if rec := get(t, s, target); rec.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestHandleRender(t *testing.T) {
	rec := get(t, NewServer(DefaultConfig()), "/api/render?scene=sphere-point&width=12&height=10&numWorkers=3&superSampling=1")

	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("Expected an event stream, got %q", ct)
	}

	events := sseEvents(rec.Body.String())
	if len(events) == 0 {
		t.Fatal("Expected SSE events")
	}

	last := events[len(events)-1]
	if last[0] != "complete" {
		t.Fatalf("Expected the stream to end with complete, got %v", events)
	}

	var result RenderResult
	if err := json.Unmarshal([]byte(last[1]), &result); err != nil {
		t.Fatalf("Invalid result JSON: %v", err)
	}
	if result.TotalPixels != 120 || result.Workers != 3 {
		t.Errorf("Expected 120 pixels on 3 workers, got %+v", result)
	}

	raw, err := base64.StdEncoding.DecodeString(result.ImageData)
	if err != nil {
		t.Fatalf("Invalid base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Invalid PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 10 {
		t.Errorf("Expected a 12x10 image, got %v", b)
	}

	lastPercent := -1
	for _, event := range events {
		if event[0] != "progress" {
			continue
		}
		var update ProgressUpdate
		if err := json.Unmarshal([]byte(event[1]), &update); err != nil {
			t.Fatalf("Invalid progress JSON: %v", err)
		}
		if update.Percent <= lastPercent {
			t.Errorf("Progress not increasing: %d after %d", update.Percent, lastPercent)
		}
		lastPercent = update.Percent
	}
}

func TestHandleRender_GridSamples(t *testing.T) {
	rec := get(t, NewServer(DefaultConfig()), "/api/render?scene=sphere-point&width=12&height=10&numWorkers=2&gridSamples=2")

	events := sseEvents(rec.Body.String())
	if len(events) == 0 || events[len(events)-1][0] != "complete" {
		t.Fatalf("Expected the stream to end with complete, got %v", events)
	}

	var result RenderResult
	if err := json.Unmarshal([]byte(events[len(events)-1][1]), &result); err != nil {
		t.Fatalf("Invalid result JSON: %v", err)
	}
	if result.PrimaryRays != 120*4 || result.MaxPixelRays != 4 {
		t.Errorf("Expected 4 rays on each of 120 pixels, got %+v", result)
	}
}

func TestHandleInspect_Config(t *testing.T) {
	config := DefaultConfig()
	config.DefaultScene = "sphere-point"
	config.DefaultSize = 20
	config.MaxSize = 50
	s := NewServer(config)

	tests := []struct {
		name   string
		target string
		status int
	}{
		{"defaults fill scene and size", "/api/inspect?x=10&y=10", http.StatusOK},
		{"pixel outside the default size", "/api/inspect?x=30&y=10", http.StatusBadRequest},
		{"size within the limit", "/api/inspect?width=50&height=50&x=30&y=10", http.StatusOK},
		{"size above the limit", "/api/inspect?width=51&height=50&x=30&y=10", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec := get(t, s, tt.target); rec.Code != tt.status {
				t.Errorf("Expected status %d, got %d: %s", tt.status, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestHandleRender_Errors(t *testing.T) {
	tests := []string{
		"/api/render?scene=nonexistent&width=10&height=10",
		"/api/render?scene=default&width=1&height=10",
		"/api/render?scene=default&width=10&height=10&superSampling=9",
		"/api/render?scene=default&width=10&height=10&gridSamples=17",
	}

	for _, target := range tests {
		t.Run(target, func(t *testing.T) {
			events := sseEvents(get(t, NewServer(DefaultConfig()), target).Body.String())
			if len(events) == 0 || events[len(events)-1][0] != "error" {
				t.Errorf("Expected an error event, got %v", events)
			}
		})
	}
}
