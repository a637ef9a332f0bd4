// Package keypoint selects a spatially spread set of keypoints from a
// cornerness response with deterministic greedy non-maximum suppression.
//
// Selection rule:
//
//	Repeatedly take the strongest remaining positive cell (ties broken by
//	smallest row, then smallest column), record it, and suppress every cell
//	within the suppression radius in Chebyshev distance, the cell itself
//	included. Stop after numKeypoints picks or when nothing positive is left.
//
// Guarantee:
//
//	Any two returned keypoints are more than radius apart in Chebyshev
//	distance, and the result is ordered by descending score.
package keypoint

import "errors"

var (
	// ErrNilResponse indicates a nil response grid.
	ErrNilResponse = errors.New("keypoint: nil response")

	// ErrBadCount indicates a negative keypoint budget.
	ErrBadCount = errors.New("keypoint: number of keypoints must be >= 0")

	// ErrBadRadius indicates a negative suppression radius.
	ErrBadRadius = errors.New("keypoint: suppression radius must be >= 0")
)

// Keypoint is an integer pixel location with the response score it was
// selected at. X is the column, Y the row.
type Keypoint struct {
	X, Y  int
	Score float64
}

// Chebyshev returns max(|ax−bx|, |ay−by|).
func Chebyshev(a, b Keypoint) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y))
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
