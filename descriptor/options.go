package descriptor

import (
	"errors"

	"github.com/katalvlaran/lvfeat/diag"
)

var (
	// ErrNilImage indicates a nil input image.
	ErrNilImage = errors.New("descriptor: nil image")

	// ErrBadRadius indicates a negative patch radius.
	ErrBadRadius = errors.New("descriptor: patch radius must be >= 0")
)

// DefaultWorkers extracts on the calling goroutine.
const DefaultWorkers = 1

const panicWorkersInvalid = "descriptor: WithWorkers: n must be >= 1"

// Option mutates Options.
type Option func(*Options)

// Options is the effective extraction configuration.
type Options struct {
	workers int
	report  *diag.Report
}

// WithWorkers spreads extraction over n goroutines. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}
	return func(o *Options) { o.workers = n }
}

// WithDiagnostics attaches a report that receives one BoundaryExclusion
// entry per dropped keypoint.
func WithDiagnostics(r *diag.Report) Option {
	return func(o *Options) { o.report = r }
}

func gatherOptions(opts []Option) Options {
	o := Options{workers: DefaultWorkers}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
