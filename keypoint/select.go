package keypoint

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvfeat/grid"
)

// candidate is a positive response cell awaiting selection.
type candidate struct {
	off   int // row-major offset
	score float64
}

// Select runs greedy non-maximum suppression over response.
//
// Algorithm:
//  1. Collect every cell with response > 0.
//  2. Sort by score descending, then offset ascending (row-major tie-break).
//  3. Walk the sorted list; a cell not yet suppressed becomes the next
//     keypoint and suppresses its (2r+1)² neighbourhood.
//
// Suppression only ever removes cells, so the first unsuppressed cell in this
// order is exactly the maximum a rescan of the remaining matrix would find;
// the output equals the textbook loop while touching each cell once.
//
// Errors: ErrNilResponse, ErrBadCount, ErrBadRadius.
// Complexity: O(P log P + K·(2r+1)²) time, O(W·H) memory; P = positive cells.
func Select(response *grid.Grid[float64], numKeypoints, suppressionRadius int) ([]Keypoint, error) {
	if response == nil {
		return nil, ErrNilResponse
	}
	if numKeypoints < 0 {
		return nil, fmt.Errorf("Select: %d: %w", numKeypoints, ErrBadCount)
	}
	if suppressionRadius < 0 {
		return nil, fmt.Errorf("Select: %d: %w", suppressionRadius, ErrBadRadius)
	}

	rows, cols := response.Shape()
	data := response.Data()
	var cands []candidate
	for off, v := range data {
		if v > 0 {
			cands = append(cands, candidate{off: off, score: v})
		}
	}
	slices.SortFunc(cands, func(a, b candidate) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		return cmp.Compare(a.off, b.off)
	})

	out := make([]Keypoint, 0, min(numKeypoints, len(cands)))
	suppressed := make([]bool, rows*cols)
	for _, c := range cands {
		if len(out) == numKeypoints {
			break
		}
		if suppressed[c.off] {
			continue
		}
		y, x := c.off/cols, c.off%cols
		out = append(out, Keypoint{X: x, Y: y, Score: c.score})

		for i := max(0, y-suppressionRadius); i <= min(rows-1, y+suppressionRadius); i++ {
			base := i * cols
			for j := max(0, x-suppressionRadius); j <= min(cols-1, x+suppressionRadius); j++ {
				suppressed[base+j] = true
			}
		}
	}

	return out, nil
}

// Suppressed returns a copy of response with every cell within radius of a
// keypoint zeroed, i.e. the matrix the greedy loop would be left with.
func Suppressed(response *grid.Grid[float64], kps []Keypoint, radius int) (*grid.Grid[float64], error) {
	if response == nil {
		return nil, ErrNilResponse
	}
	out := response.Clone()
	rows, cols := out.Shape()
	data := out.Data()
	for _, k := range kps {
		for i := max(0, k.Y-radius); i <= min(rows-1, k.Y+radius); i++ {
			for j := max(0, k.X-radius); j <= min(cols-1, k.X+radius); j++ {
				data[i*cols+j] = 0
			}
		}
	}

	return out, nil
}
