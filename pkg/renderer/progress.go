package renderer

import (
	"fmt"
	"sync/atomic"

	"github.com/df07/go-pathtracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Progress counts finished pixels across all workers and logs every tenth of the image
// and the last pixel.
// It only observes the render; pixel values never depend on it.
type Progress struct {
	total  int64
	step   int64
	done   atomic.Int64
	logger core.Logger
}

// NewProgress creates a progress counter for total pixels. A nil logger disables logging.
func NewProgress(total int, logger core.Logger) *Progress {
	step := int64(total) / 10
	if step < 1 {
		step = 1
	}
	return &Progress{total: int64(total), step: step, logger: logger}
}

// PixelDone implements core.ProgressReporter
func (p *Progress) PixelDone() {
	n := p.done.Add(1)
	if p.logger != nil && (n%p.step == 0 || n == p.total) {
		p.logger.Printf("Progress: %d%% (%d/%d pixels)\n", n*100/p.total, n, p.total)
	}
}

// Done returns the number of pixels finished so far
func (p *Progress) Done() int64 {
	return p.done.Load()
}

// Total returns the number of pixels in the image
func (p *Progress) Total() int64 {
	return p.total
}

// Fraction returns completion in [0,1]
func (p *Progress) Fraction() float64 {
	if p.total == 0 {
		return 1
	}
	return float64(p.Done()) / float64(p.total)
}
