package filter

import "errors"

var (
	// ErrEmptyKernel indicates a zero-length kernel.
	ErrEmptyKernel = errors.New("filter: kernel must be non-empty")

	// ErrBadSize indicates a non-positive window size.
	ErrBadSize = errors.New("filter: window size must be > 0")

	// ErrNilInput indicates a nil source grid.
	ErrNilInput = errors.New("filter: nil input grid")
)
