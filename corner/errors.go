package corner

import "errors"

var (
	// ErrNilImage indicates a nil input image.
	ErrNilImage = errors.New("corner: nil image")

	// ErrBadPatchSize indicates a window size < 1.
	ErrBadPatchSize = errors.New("corner: patch size must be >= 1")

	// ErrBadKappa indicates a negative or non-finite Harris constant.
	ErrBadKappa = errors.New("corner: kappa must be finite and >= 0")
)
