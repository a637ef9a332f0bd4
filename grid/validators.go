// SPDX-License-Identifier: MIT

package grid

import "fmt"

// validatorErrorf wraps a sentinel with the validator name.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil returns ErrNilGrid when g is nil.
// Complexity: O(1).
func ValidateNotNil[T Number](g *Grid[T]) error {
	if g == nil {
		return validatorErrorf("ValidateNotNil", ErrNilGrid)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have identical shapes.
//
// Errors: ErrNilGrid, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape[T, U Number](a *Grid[T], b *Grid[U]) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilGrid)
	}
	if a.r != b.r || a.c != b.c {
		return validatorErrorf("ValidateSameShape", ErrDimensionMismatch)
	}

	return nil
}
