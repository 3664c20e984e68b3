package renderer

import (
	"runtime"
	"sync"
)

// SpareWorkers is how many CPUs are left free when the worker count is automatic
const SpareWorkers = 2

// resolveWorkers turns a configured worker count into an actual one:
// 0 means all CPUs but SpareWorkers, and there is always at least one worker.
func resolveWorkers(configured int) int {
	if configured > 0 {
		return configured
	}
	return max(1, runtime.NumCPU()-SpareWorkers)
}

// pixelCursor hands out pixels in row-major order. It is the only state the
// workers share; every pixel is claimed exactly once.
type pixelCursor struct {
	mu          sync.Mutex
	cols, rows  int
	col, row    int
	claimed     int
	lastPercent int
	report      bool
}

func newPixelCursor(cols, rows int, report bool) *pixelCursor {
	return &pixelCursor{
		cols:   cols,
		rows:   rows,
		col:    -1,
		report: report,
	}
}

// next claims the next pixel. ok is false once every pixel has been claimed.
// percent is a newly crossed whole percentage of claimed pixels, or -1 when
// there is nothing to report. 100 is left for the caller to report once the
// work is done.
func (c *pixelCursor) next() (col, row, percent int, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cols <= 0 || c.row >= c.rows {
		return 0, 0, -1, false
	}

	c.col++
	if c.col >= c.cols {
		c.col = 0
		c.row++
		if c.row >= c.rows {
			return 0, 0, -1, false
		}
	}
	c.claimed++

	percent = -1
	if c.report {
		if p := min(99, c.claimed*100/(c.cols*c.rows)); p > c.lastPercent {
			c.lastPercent = p
			percent = p
		}
	}
	return c.col, c.row, percent, true
}

// pixelFunc renders and writes one pixel, counting the rays it traces
type pixelFunc func(col, row int, stats *workerStats)

// runWorkers starts numWorkers goroutines that claim pixels from cursor until
// none are left, and waits for all of them.
func runWorkers(numWorkers int, cursor *pixelCursor, render pixelFunc, progress func(percent int)) []workerStats {
	stats := make([]workerStats, numWorkers)

	var wg sync.WaitGroup
	for i := range numWorkers {
		wg.Add(1)
		go func(ws *workerStats) {
			defer wg.Done()
			for {
				col, row, percent, ok := cursor.next()
				if !ok {
					return
				}
				if percent >= 0 {
					progress(percent)
				}
				before := ws.rays
				render(col, row, ws)
				ws.pixels++
				ws.maxRays = max(ws.maxRays, ws.rays-before)
			}
		}(&stats[i])
	}
	wg.Wait()

	return stats
}
