// Package diag is the diagnostics channel of the feature pipeline.
//
// Recoverable conditions (a suboptimal parameter, a keypoint too close to the
// image edge) never abort an operation. Instead the operation appends an
// Entry to a caller-supplied *Report and goes on. The Report keeps every
// entry for later inspection and mirrors it to a *zap.Logger.
//
// A nil *Report is valid everywhere and discards entries, so library calls do
// not need a report to run.
package diag

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Kind classifies a diagnostic.
type Kind int

const (
	// ConfigWarning marks a suboptimal but usable parameter combination.
	ConfigWarning Kind = iota
	// BoundaryExclusion marks a keypoint dropped because its patch leaves the image.
	BoundaryExclusion
)

// String returns the lower-case name of k.
func (k Kind) String() string {
	switch k {
	case ConfigWarning:
		return "config_warning"
	case BoundaryExclusion:
		return "boundary_exclusion"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Entry is one recorded diagnostic.
type Entry struct {
	Kind    Kind
	Op      string // emitting operation, e.g. "corner.ComputeResponse"
	Message string
}

// String formats e as "op: kind: message".
func (e Entry) String() string {
	return e.Op + ": " + e.Kind.String() + ": " + e.Message
}

// Report collects entries. It is safe for concurrent use.
type Report struct {
	mu      sync.Mutex
	entries []Entry
	logger  *zap.Logger
}

// NewReport returns an empty report that mirrors entries to logger.
// A nil logger is replaced by zap.NewNop().
func NewReport(logger *zap.Logger) *Report {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Report{logger: logger}
}

// Add records an entry and logs it. ConfigWarning is logged at Warn level,
// everything else at Debug. Add on a nil report is a no-op.
func (r *Report) Add(kind Kind, op, format string, args ...any) {
	if r == nil {
		return
	}
	e := Entry{Kind: kind, Op: op, Message: fmt.Sprintf(format, args...)}

	r.mu.Lock()
	r.entries = append(r.entries, e)
	logger := r.logger
	r.mu.Unlock()

	fields := []zap.Field{zap.String("op", op), zap.Stringer("kind", kind)}
	if kind == ConfigWarning {
		logger.Warn(e.Message, fields...)
		return
	}
	logger.Debug(e.Message, fields...)
}

// Entries returns a copy of the recorded entries in insertion order.
func (r *Report) Entries() []Entry {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Entry(nil), r.entries...)
}

// Count returns how many entries of kind were recorded.
func (r *Report) Count(kind Kind) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.entries {
		if e.Kind == kind {
			n++
		}
	}

	return n
}

// Len returns the number of recorded entries.
func (r *Report) Len() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}

// Reset drops all entries, keeping the logger.
func (r *Report) Reset() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.entries = r.entries[:0]
	r.mu.Unlock()
}
