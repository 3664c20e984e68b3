package loaders

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func TestPNGWriter_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "render.png")
	writer := NewPNGWriter(path, 3, 2)

	if writer.Columns() != 3 || writer.Rows() != 2 {
		t.Fatalf("Expected 3x2 writer, got %dx%d", writer.Columns(), writer.Rows())
	}

	colors := map[[2]int]core.Color{
		{0, 0}: core.NewColor(255, 255, 255),
		{1, 0}: core.NewColor(255, 0, 0),
		{2, 0}: core.NewColor(0, 255, 0),
		{0, 1}: core.NewColor(0, 0, 255),
		{1, 1}: core.NewColor(300, -20, 127.6), // clamped and rounded
		{2, 1}: core.Black,
	}
	for pixel, c := range colors {
		writer.WritePixel(pixel[0], pixel[1], c)
	}

	if err := writer.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	loaded, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if loaded.Width != 3 || loaded.Height != 2 {
		t.Fatalf("Expected 3x2 image, got %dx%d", loaded.Width, loaded.Height)
	}

	expected := map[[2]int]core.Color{
		{0, 0}: core.NewColor(255, 255, 255),
		{1, 0}: core.NewColor(255, 0, 0),
		{2, 0}: core.NewColor(0, 255, 0),
		{0, 1}: core.NewColor(0, 0, 255),
		{1, 1}: core.NewColor(255, 0, 128),
		{2, 1}: core.Black,
	}
	for pixel, want := range expected {
		if got := loaded.At(pixel[0], pixel[1]); !got.Equal(want) {
			t.Errorf("Pixel %v: expected %v, got %v", pixel, want, got)
		}
	}
}

func TestPNGWriter_FlushError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}

	writer := NewPNGWriter(filepath.Join(blocker, "render.png"), 1, 1)
	if err := writer.Flush(); err == nil {
		t.Errorf("Expected an error when the parent is a file")
	}
}

// TestLoadImage creates a test PNG and verifies loading
func TestLoadImage(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "test.png")

	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.Set(1, 0, color.RGBA{R: 51, G: 0, B: 102, A: 255})

	f, err := os.Create(testFile)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		t.Fatalf("Failed to encode PNG: %v", err)
	}
	f.Close()

	imageData, err := LoadImage(testFile)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if len(imageData.Pixels) != 2 {
		t.Fatalf("Expected 2 pixels, got %d", len(imageData.Pixels))
	}
	if c := imageData.At(1, 0); !c.Equal(core.NewColor(51, 0, 102)) {
		t.Errorf("Expected (51, 0, 102), got %v", c)
	}
}

func TestLoadImage_NotFound(t *testing.T) {
	if _, err := LoadImage(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Expected error for a missing file")
	}
}
