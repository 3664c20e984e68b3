package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels  int           // Total number of pixels rendered
	PrimaryRays  int           // Camera rays traced, corner and sub-pixel rays included
	MaxPixelRays int           // Most camera rays spent on any single pixel
	Workers      int           // Number of goroutines that rendered
	Duration     time.Duration // Wall time of the render pass
}

// RaysPerPixel returns the average number of camera rays per pixel
func (rs RenderStats) RaysPerPixel() float64 {
	if rs.TotalPixels == 0 {
		return 0
	}
	return float64(rs.PrimaryRays) / float64(rs.TotalPixels)
}

// workerStats counts the work of a single goroutine; merged after the join
type workerStats struct {
	pixels  int
	rays    int
	maxRays int
}

func mergeStats(workers []workerStats) RenderStats {
	stats := RenderStats{Workers: len(workers)}
	for _, w := range workers {
		stats.TotalPixels += w.pixels
		stats.PrimaryRays += w.rays
		stats.MaxPixelRays = max(stats.MaxPixelRays, w.maxRays)
	}
	return stats
}
