package renderer

import (
	"sync"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

var (
	background = core.NewColor(0, 0, 255)
	glow       = core.NewColor(255, 0, 0)
)

// mockWriter records pixels in memory and counts writes per pixel
type mockWriter struct {
	mu      sync.Mutex
	cols    int
	rows    int
	pixels  map[[2]int]core.Color
	writes  map[[2]int]int
	flushes int
	err     error
}

func newMockWriter(cols, rows int) *mockWriter {
	return &mockWriter{
		cols:   cols,
		rows:   rows,
		pixels: make(map[[2]int]core.Color),
		writes: make(map[[2]int]int),
	}
}

func (w *mockWriter) Columns() int { return w.cols }
func (w *mockWriter) Rows() int    { return w.rows }

func (w *mockWriter) WritePixel(col, row int, c core.Color) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pixels[[2]int{col, row}] = c
	w.writes[[2]int{col, row}]++
}

func (w *mockWriter) Flush() error {
	w.flushes++
	return w.err
}

// silentLogger discards everything
type silentLogger struct{}

func (silentLogger) Printf(string, ...interface{}) {}

// testScene looks down -z at an optional unlit glowing sphere over a blue
// background, through a 2x2 view plane at distance 1
func testScene(t *testing.T, radius float64) *scene.Scene {
	t.Helper()

	camera, err := geometry.NewCamera(core.Origin, core.MustVector(0, 0, -1), core.MustVector(0, 1, 0))
	if err != nil {
		t.Fatal(err)
	}
	s := scene.New("test").
		SetBackground(background).
		SetCamera(camera, geometry.View{Distance: 1, Width: 2, Height: 2})

	if radius > 0 {
		sphere, err := geometry.NewSphere(core.NewPoint(0, 0, -5), radius,
			geometry.NewSurface(glow, core.NewMaterial(0, 0, 0)))
		if err != nil {
			t.Fatal(err)
		}
		s.AddGeometries(sphere)
	}
	return s
}

func newTestRaytracer(t *testing.T, s *scene.Scene, writer ImageWriter, config RenderConfig) *Raytracer {
	t.Helper()

	rt, err := NewRaytracer(s, writer, config, silentLogger{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return rt
}
