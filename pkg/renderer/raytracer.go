package renderer

import (
	"errors"
	"fmt"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/integrator"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

var (
	ErrNoCamera      = errors.New("scene has no camera")
	ErrNoImageWriter = errors.New("no image writer")
	ErrInvalidConfig = errors.New("invalid render config")
)

// ImageWriter receives rendered pixels. WritePixel is called concurrently for
// distinct pixels.
type ImageWriter interface {
	Columns() int
	Rows() int
	WritePixel(col, row int, c core.Color)
	Flush() error
}

// RenderConfig contains rendering configuration
type RenderConfig struct {
	NumWorkers         int  // 0 = all CPUs but SpareWorkers
	SoftShadowRays     int  // Shadow rays per finite light with a radius, 0 for hard shadows
	SuperSamplingLevel int  // Adaptive supersampling depth, 0 = one ray through each pixel center
	GridSamples        int  // Rays per pixel side on a regular grid; above 0 it replaces adaptive sampling
	ReportProgress     bool // Log whole percentages while rendering
}

// DefaultRenderConfig returns a single-ray-per-pixel config with automatic workers
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		NumWorkers:         0,
		SoftShadowRays:     0,
		SuperSamplingLevel: 0,
		GridSamples:        0,
		ReportProgress:     false,
	}
}

// Validate checks that no count in the config is negative
func (c RenderConfig) Validate() error {
	switch {
	case c.NumWorkers < 0:
		return fmt.Errorf("%w: negative worker count %d", ErrInvalidConfig, c.NumWorkers)
	case c.SoftShadowRays < 0:
		return fmt.Errorf("%w: negative soft shadow rays %d", ErrInvalidConfig, c.SoftShadowRays)
	case c.SuperSamplingLevel < 0:
		return fmt.Errorf("%w: negative supersampling level %d", ErrInvalidConfig, c.SuperSamplingLevel)
	case c.GridSamples < 0:
		return fmt.Errorf("%w: negative grid samples %d", ErrInvalidConfig, c.GridSamples)
	}
	return nil
}

// Raytracer casts camera rays through every pixel of an image and writes the
// resulting colors to an ImageWriter
type Raytracer struct {
	scene      *scene.Scene
	writer     ImageWriter
	integrator integrator.Integrator
	config     RenderConfig
	logger     core.Logger
	progress   *progressReporter
}

// NewRaytracer creates a raytracer that renders s into writer
func NewRaytracer(s *scene.Scene, writer ImageWriter, config RenderConfig, logger core.Logger) (*Raytracer, error) {
	if s == nil || s.Camera == nil {
		return nil, ErrNoCamera
	}
	if writer == nil {
		return nil, ErrNoImageWriter
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if writer.Columns() <= 0 || writer.Rows() <= 0 {
		return nil, fmt.Errorf("%w: image is %dx%d", ErrInvalidConfig, writer.Columns(), writer.Rows())
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	shading := integrator.DefaultShadingConfig()
	shading.SoftShadowRays = config.SoftShadowRays

	return &Raytracer{
		scene:      s,
		writer:     writer,
		integrator: integrator.NewPhongIntegrator(s, shading),
		config:     config,
		logger:     logger,
		progress:   newProgressReporter(logger),
	}, nil
}

// SetProgressCallback replaces the default progress logging. The callback is
// invoked from worker goroutines, once per whole percentage and in increasing
// order.
func (rt *Raytracer) SetProgressCallback(callback func(percent int)) {
	rt.progress.callback = callback
}

// Render renders the image the way the config asks for: a GridSamples by
// GridSamples ray grid per pixel when set, RenderImage otherwise
func (rt *Raytracer) Render() (RenderStats, error) {
	if g := rt.config.GridSamples; g > 0 {
		return rt.RenderSuperSampled(g, g)
	}
	return rt.RenderImage(), nil
}

// RenderImage renders every pixel, with adaptive supersampling when the
// configured level is above zero
func (rt *Raytracer) RenderImage() RenderStats {
	nX, nY := rt.writer.Columns(), rt.writer.Rows()
	level := rt.config.SuperSamplingLevel

	if level == 0 {
		return rt.render("center", func(col, row int, ws *workerStats) {
			ray := rt.scene.Camera.ConstructRayThroughPixel(rt.scene.View, nX, nY, col, row)
			ws.rays++
			rt.writer.WritePixel(col, row, rt.integrator.RayColor(ray))
		})
	}

	return rt.render(fmt.Sprintf("adaptive level %d", level), func(col, row int, ws *workerStats) {
		rt.writer.WritePixel(col, row, rt.adaptiveSample(nX, nY, col, row, level, ws))
	})
}

// RenderSuperSampled renders every pixel as the average of a regular
// subX by subY grid of rays
func (rt *Raytracer) RenderSuperSampled(subX, subY int) (RenderStats, error) {
	if subX <= 0 || subY <= 0 {
		return RenderStats{}, fmt.Errorf("%w: sub-pixel grid %dx%d", ErrInvalidConfig, subX, subY)
	}
	nX, nY := rt.writer.Columns(), rt.writer.Rows()

	stats := rt.render(fmt.Sprintf("grid %dx%d", subX, subY), func(col, row int, ws *workerStats) {
		rays := rt.scene.Camera.ConstructRaysThroughPixel(rt.scene.View, nX, nY, col, row, subX, subY)
		sum := core.Black
		for _, ray := range rays {
			sum = sum.Add(rt.integrator.RayColor(ray))
		}
		ws.rays += len(rays)
		rt.writer.WritePixel(col, row, sum.Reduce(float64(len(rays))))
	})
	return stats, nil
}

func (rt *Raytracer) render(mode string, pixel pixelFunc) RenderStats {
	nX, nY := rt.writer.Columns(), rt.writer.Rows()
	numWorkers := resolveWorkers(rt.config.NumWorkers)
	rt.logger.Printf("Rendering %s: %dx%d pixels, %s sampling, %d workers\n", rt.scene.Name, nX, nY, mode, numWorkers)

	start := time.Now()
	rt.progress.reset()
	cursor := newPixelCursor(nX, nY, rt.config.ReportProgress)
	stats := mergeStats(runWorkers(numWorkers, cursor, pixel, rt.progress.report))
	if rt.config.ReportProgress {
		rt.progress.report(100)
	}
	stats.Duration = time.Since(start)

	rt.logger.Printf("Render completed in %v (%d primary rays, %.2f per pixel)\n",
		stats.Duration, stats.PrimaryRays, stats.RaysPerPixel())
	return stats
}

// adaptiveSample colors pixel (j, i) of an nX by nY grid from the rays through
// its four corners. When the corners disagree and level allows, the pixel is
// split into four quadrants, each sampled the same way on a grid twice as fine.
func (rt *Raytracer) adaptiveSample(nX, nY, j, i, level int, ws *workerStats) core.Color {
	rays := rt.scene.Camera.ConstructRaysThroughPixelEdges(rt.scene.View, nX, nY, j, i)
	colors := make([]core.Color, len(rays))
	for k, ray := range rays {
		colors[k] = rt.integrator.RayColor(ray)
	}
	ws.rays += len(rays)

	if level <= 0 {
		return core.Black.Add(colors...).Reduce(float64(len(colors)))
	}
	if allEqual(colors) {
		return colors[0]
	}

	sum := core.Black
	for dj := range 2 {
		for di := range 2 {
			sum = sum.Add(rt.adaptiveSample(2*nX, 2*nY, 2*j+dj, 2*i+di, level-1, ws))
		}
	}
	return sum.Reduce(4)
}

func allEqual(colors []core.Color) bool {
	for _, c := range colors[1:] {
		if c != colors[0] {
			return false
		}
	}
	return true
}

// PrintGrid overwrites every interval-th row and column with color
func (rt *Raytracer) PrintGrid(interval int, color core.Color) error {
	if interval <= 0 {
		return fmt.Errorf("%w: grid interval %d", ErrInvalidConfig, interval)
	}
	for row := range rt.writer.Rows() {
		for col := range rt.writer.Columns() {
			if col%interval == 0 || row%interval == 0 {
				rt.writer.WritePixel(col, row, color)
			}
		}
	}
	return nil
}

// WriteToImage flushes the rendered image to its destination
func (rt *Raytracer) WriteToImage() error {
	if err := rt.writer.Flush(); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}
	return nil
}
