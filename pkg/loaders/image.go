package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	"image/png"
	"os"
	"path/filepath"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// PNGWriter collects rendered pixels in memory and encodes them as a PNG file
// on Flush. Concurrent WritePixel calls must target distinct pixels.
type PNGWriter struct {
	path string
	img  *image.RGBA
}

// NewPNGWriter creates a writer for a columns x rows image saved at path
func NewPNGWriter(path string, columns, rows int) *PNGWriter {
	return &PNGWriter{
		path: path,
		img:  image.NewRGBA(image.Rect(0, 0, max(columns, 0), max(rows, 0))),
	}
}

func (w *PNGWriter) Columns() int { return w.img.Rect.Dx() }
func (w *PNGWriter) Rows() int    { return w.img.Rect.Dy() }

// Path returns the file the image is written to
func (w *PNGWriter) Path() string { return w.path }

// Image exposes the pixel buffer
func (w *PNGWriter) Image() *image.RGBA { return w.img }

// WritePixel stores the color of pixel (col, row); out of range pixels are ignored
func (w *PNGWriter) WritePixel(col, row int, c core.Color) {
	w.img.SetRGBA(col, row, c.RGBA())
}

// Flush creates the parent directory if needed and writes the PNG file
func (w *PNGWriter) Flush() error {
	if dir := filepath.Dir(w.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	if err := png.Encode(file, w.img); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return file.Close()
}

// ImageData contains loaded image data as a row-major color array in 0..255 units
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Color
}

// At returns the color of pixel (x, y)
func (d *ImageData) At(x, y int) core.Color {
	return d.Pixels[y*d.Width+x]
}

// LoadImage loads a PNG or JPEG image, e.g. a previous render for comparison
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Decode image (auto-detects PNG/JPEG from file header)
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Color, width*height)

	for y := range height {
		for x := range width {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535]
			pixels[y*width+x] = core.NewColor(
				float64(r)*255/65535,
				float64(g)*255/65535,
				float64(b)*255/65535,
			)
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}, nil
}
