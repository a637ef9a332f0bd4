// SPDX-License-Identifier: MIT

package grid

import "errors"

// Every message is prefixed with "grid: ..." so it can be grepped across logs.
// Sentinels are returned bare or wrapped with fmt.Errorf("ctx: %w", ErrX);
// callers match them with errors.Is.
var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("grid: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrDimensionMismatch indicates that a buffer length or a second operand
	// does not agree with the expected shape.
	ErrDimensionMismatch = errors.New("grid: dimension mismatch")

	// ErrNonRectangular indicates rows of differing lengths in FromRows.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrNilGrid indicates that a nil *Grid was passed where a value is required.
	ErrNilGrid = errors.New("grid: nil grid")

	// ErrNilImage indicates that a nil image.Image was passed to FromImage.
	ErrNilImage = errors.New("grid: nil image")
)
