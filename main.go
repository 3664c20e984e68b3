package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/loaders"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Built-in scene id, json:<name> or path to a .json scene file")
	width := flag.Int("width", 0, "Image width in pixels (0 = scene default)")
	height := flag.Int("height", 0, "Image height in pixels (0 = scene default)")
	threads := flag.Int("threads", 0, "Worker goroutines (0 = all CPUs but 2)")
	soft := flag.Int("soft", 0, "Shadow rays per light with a radius (0 = hard shadows)")
	super := flag.Int("super", 0, "Adaptive supersampling depth (0 = one ray per pixel)")
	gridSamples := flag.Int("grid-samples", 0, "Shoot an NxN ray grid through every pixel instead of adaptive sampling (0 = off)")
	grid := flag.Int("grid", 0, "Overlay grid lines every N pixels (0 = off)")
	progress := flag.Bool("progress", false, "Report rendering progress in percent")
	out := flag.String("out", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		showHelp()
		return
	}

	fmt.Println("Starting Phong Raytracer...")

	selectedScene, err := createScene(*sceneType)
	if err != nil {
		log.Fatalf("Error creating scene: %v", err)
	}

	columns, rows := selectedScene.Resolution.Columns, selectedScene.Resolution.Rows
	if *width > 0 {
		columns = *width
	}
	if *height > 0 {
		rows = *height
	}

	filename := *out
	if filename == "" {
		filename = outputPath(*sceneType, time.Now())
	}

	config := renderer.RenderConfig{
		NumWorkers:         *threads,
		SoftShadowRays:     *soft,
		SuperSamplingLevel: *super,
		GridSamples:        *gridSamples,
		ReportProgress:     *progress,
	}

	logger := renderer.NewDefaultLogger()
	writer := loaders.NewPNGWriter(filename, columns, rows)
	raytracer, err := renderer.NewRaytracer(selectedScene, writer, config, logger)
	if err != nil {
		log.Fatalf("Error creating raytracer: %v", err)
	}

	stats, err := raytracer.Render()
	if err != nil {
		log.Fatalf("Error rendering: %v", err)
	}
	if *grid > 0 {
		if err := raytracer.PrintGrid(*grid, core.NewColor(255, 255, 255)); err != nil {
			log.Fatalf("Error drawing grid: %v", err)
		}
	}

	if err := raytracer.WriteToImage(); err != nil {
		log.Fatalf("Error saving PNG: %v", err)
	}

	fmt.Printf("Rays per pixel: %.2f (max %d) on %d workers\n", stats.RaysPerPixel(), stats.MaxPixelRays, stats.Workers)
	fmt.Printf("Render saved as %s\n", filename)
}

func showHelp() {
	fmt.Println("Phong Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListBuiltinScenes() {
		fmt.Printf("  %-20s %s\n", info.ID, info.Description)
	}
	if jsonScenes, err := scene.ListJSONScenes(); err == nil {
		for _, info := range jsonScenes {
			fmt.Printf("  %-20s %s\n", info.ID, info.Name)
		}
	}
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png unless -out is set")
}

// createScene resolves a scene id or scene file path
func createScene(sceneType string) (*scene.Scene, error) {
	if sceneType == "" {
		return nil, errors.New("no scene given")
	}
	return loaders.ResolveScene(sceneType)
}

// outputPath names the default output file of a render started at t
func outputPath(sceneType string, t time.Time) string {
	dir := strings.TrimSuffix(filepath.Base(sceneType), filepath.Ext(sceneType))
	dir = strings.TrimPrefix(dir, "json:")
	timestamp := t.Format("20060102_150405")
	return filepath.Join("output", dir, fmt.Sprintf("render_%s.png", timestamp))
}
