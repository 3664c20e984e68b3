package renderer

import (
	"sync"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// progressReporter serializes progress updates from the workers so that each
// percentage is reported at most once and never after a larger one
type progressReporter struct {
	mu       sync.Mutex
	last     int
	logger   core.Logger
	callback func(percent int)
}

func newProgressReporter(logger core.Logger) *progressReporter {
	return &progressReporter{last: -1, logger: logger}
}

func (p *progressReporter) reset() {
	p.mu.Lock()
	p.last = -1
	p.mu.Unlock()
}

func (p *progressReporter) report(percent int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if percent <= p.last {
		return
	}
	p.last = percent
	if p.callback != nil {
		p.callback(percent)
		return
	}
	p.logger.Printf("%d%%\n", percent)
}
