package match

import "errors"

var (
	// ErrEmptyInput indicates an empty query or database set.
	ErrEmptyInput = errors.New("match: empty descriptor set")

	// ErrDimensionMismatch indicates descriptors of differing or zero length.
	ErrDimensionMismatch = errors.New("match: descriptor dimension mismatch")

	// ErrBadRatio indicates a negative or non-finite distance ratio.
	ErrBadRatio = errors.New("match: distance ratio must be finite and >= 0")
)

// DefaultUnique enforces one query per database descriptor.
const DefaultUnique = true

// Option mutates Options.
type Option func(*Options)

// Options is the effective matcher configuration.
type Options struct {
	unique        bool
	nonZeroAnchor bool
}

// WithUnique toggles the one-query-per-database-descriptor filter.
func WithUnique(on bool) Option {
	return func(o *Options) { o.unique = on }
}

// WithNonZeroAnchor anchors the threshold on the smallest non-zero distance.
func WithNonZeroAnchor() Option {
	return func(o *Options) { o.nonZeroAnchor = true }
}

func gatherOptions(opts []Option) Options {
	o := Options{unique: DefaultUnique}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
