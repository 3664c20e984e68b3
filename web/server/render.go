package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/loaders"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
)

// SSEEvent represents a unified SSE event for thread-safe writing
type SSEEvent struct {
	Type string `json:"type"` // "console", "progress", "error", "complete"
	Data string `json:"data"` // JSON-encoded data or a plain message
}

// ProgressUpdate reports the share of claimed pixels
type ProgressUpdate struct {
	Percent   int   `json:"percent"`
	ElapsedMs int64 `json:"elapsedMs"`
}

// RenderResult is sent once the image is complete
type RenderResult struct {
	ImageData    string  `json:"imageData"` // Base64 encoded PNG
	Width        int     `json:"width"`
	Height       int     `json:"height"`
	TotalPixels  int     `json:"totalPixels"`
	PrimaryRays  int     `json:"primaryRays"`
	RaysPerPixel float64 `json:"raysPerPixel"`
	MaxPixelRays int     `json:"maxPixelRays"`
	Workers      int     `json:"workers"`
	ElapsedMs    int64   `json:"elapsedMs"`
}

// handleRender renders a scene and streams progress and the final image via SSE.
// The render runs to completion even if the client goes away.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)
	ctx := r.Context()

	sseEventChan := make(chan SSEEvent, 100)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		s.writeSSEEvents(w, ctx, sseEventChan)
	}()
	defer func() {
		close(sseEventChan)
		<-writerDone
	}()

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.sendEvent(ctx, sseEventChan, SSEEvent{Type: "error", Data: fmt.Sprintf("Invalid request: %v", err)})
		return
	}

	consoleChan, webLogger := s.setupConsoleLogging()
	consoleDone := make(chan struct{})
	go func() {
		defer close(consoleDone)
		s.streamConsoleMessages(ctx, consoleChan, sseEventChan)
	}()

	result, err := s.render(ctx, req, webLogger, sseEventChan)

	// flush the console before the final event
	close(consoleChan)
	<-consoleDone

	if err != nil {
		s.sendEvent(ctx, sseEventChan, SSEEvent{Type: "error", Data: err.Error()})
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		log.Printf("Error marshaling render result: %v", err)
		return
	}
	s.sendEvent(ctx, sseEventChan, SSEEvent{Type: "complete", Data: string(data)})
}

// render builds the scene and raytracer for req and renders into memory
func (s *Server) render(ctx context.Context, req *RenderRequest, logger core.Logger, sseEventChan chan<- SSEEvent) (*RenderResult, error) {
	sceneObj, err := s.createScene(req)
	if err != nil {
		return nil, fmt.Errorf("Unknown scene: %v", err)
	}

	// no path: the image never leaves memory
	writer := loaders.NewPNGWriter("", req.Width, req.Height)
	config := renderer.RenderConfig{
		NumWorkers:         req.NumWorkers,
		SoftShadowRays:     req.SoftShadowRays,
		SuperSamplingLevel: req.SuperSampling,
		GridSamples:        req.GridSamples,
		ReportProgress:     true,
	}
	raytracer, err := renderer.NewRaytracer(sceneObj, writer, config, logger)
	if err != nil {
		return nil, err
	}

	startTime := time.Now()
	raytracer.SetProgressCallback(func(percent int) {
		data, err := json.Marshal(ProgressUpdate{Percent: percent, ElapsedMs: time.Since(startTime).Milliseconds()})
		if err != nil {
			return
		}
		// progress is best effort; a full channel drops the update
		select {
		case sseEventChan <- SSEEvent{Type: "progress", Data: string(data)}:
		default:
		}
	})

	stats, err := raytracer.Render()
	if err != nil {
		return nil, err
	}

	imageData, err := s.imageToBase64PNG(writer.Image())
	if err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return &RenderResult{
		ImageData:    imageData,
		Width:        req.Width,
		Height:       req.Height,
		TotalPixels:  stats.TotalPixels,
		PrimaryRays:  stats.PrimaryRays,
		RaysPerPixel: stats.RaysPerPixel(),
		MaxPixelRays: stats.MaxPixelRays,
		Workers:      stats.Workers,
		ElapsedMs:    time.Since(startTime).Milliseconds(),
	}, nil
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// setupConsoleLogging creates console channel and web logger for a render
func (s *Server) setupConsoleLogging() (chan ConsoleMessage, core.Logger) {
	consoleChan := make(chan ConsoleMessage, 50)
	renderID := fmt.Sprintf("render-%d", time.Now().UnixNano())
	webLogger := NewWebLogger(renderID, consoleChan)
	return consoleChan, webLogger
}

// writeSSEEvents handles writing all SSE events in a single goroutine (thread-safe).
// After the client disconnects it keeps draining so senders never block.
func (s *Server) writeSSEEvents(w http.ResponseWriter, ctx context.Context, sseEventChan <-chan SSEEvent) {
	connected := true
	for event := range sseEventChan {
		if !connected || ctx.Err() != nil {
			connected = false
			continue
		}

		if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data); err != nil {
			// Client disconnected during write
			connected = false
			continue
		}
		if flusher, ok := w.(http.Flusher); ok {
			flusher.Flush()
		}
	}
}

// streamConsoleMessages forwards log lines of the render as console events
func (s *Server) streamConsoleMessages(ctx context.Context, consoleChan <-chan ConsoleMessage, sseEventChan chan<- SSEEvent) {
	for consoleMsg := range consoleChan {
		data, err := json.Marshal(consoleMsg)
		if err != nil {
			log.Printf("Error marshaling console message: %v", err)
			continue
		}
		s.sendEvent(ctx, sseEventChan, SSEEvent{Type: "console", Data: string(data)})
	}
}

// sendEvent queues an event unless the client is gone
func (s *Server) sendEvent(ctx context.Context, sseEventChan chan<- SSEEvent, event SSEEvent) {
	select {
	case sseEventChan <- event:
	case <-ctx.Done():
	}
}

// imageToBase64PNG converts an image to base64-encoded PNG
func (s *Server) imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
