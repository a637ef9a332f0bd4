package descriptor

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/lvfeat/diag"
	"github.com/katalvlaran/lvfeat/grid"
	"github.com/katalvlaran/lvfeat/keypoint"
	"gonum.org/v1/gonum/mat"
)

const opDescribe = "descriptor.Describe"

// Set is the result of Describe. Keypoints[i] is described by Descriptors[i];
// every descriptor has length Dim.
type Set struct {
	Keypoints   []keypoint.Keypoint
	Descriptors [][]float64
	Dim         int
}

// Len returns the number of described keypoints.
func (s *Set) Len() int { return len(s.Keypoints) }

// Matrix returns the descriptors as a Dim×n matrix with one descriptor per
// column. It returns nil for an empty set.
func (s *Set) Matrix() *mat.Dense {
	n := len(s.Descriptors)
	if n == 0 || s.Dim == 0 {
		return nil
	}
	m := mat.NewDense(s.Dim, n, nil)
	for j, d := range s.Descriptors {
		m.SetCol(j, d)
	}

	return m
}

// Dim returns the descriptor length for a patch radius: (2r+1)².
func Dim(patchRadius int) int {
	side := 2*patchRadius + 1
	return side * side
}

// Fits reports whether the patch of radius r around kp lies inside img.
func Fits(img *grid.Grid[float64], kp keypoint.Keypoint, r int) bool {
	return img.InBounds(kp.Y-r, kp.X-r) && img.InBounds(kp.Y+r, kp.X+r)
}

// Describe extracts one raw patch descriptor per keypoint.
//
// Implementation:
//   - Stage 1: validate, then filter keypoints whose patch fits (input order
//     kept, one BoundaryExclusion diagnostic per dropped keypoint).
//   - Stage 2: copy each patch; with WithWorkers(n) the survivors are split
//     into n contiguous ranges, each goroutine writing only its own slots.
//
// Errors: ErrNilImage, ErrBadRadius.
// Complexity: O(n·(2r+1)²) time and memory.
func Describe(img *grid.Grid[float64], kps []keypoint.Keypoint, patchRadius int, opts ...Option) (*Set, error) {
	o := gatherOptions(opts)
	if img == nil {
		return nil, ErrNilImage
	}
	if patchRadius < 0 {
		return nil, fmt.Errorf("Describe: %d: %w", patchRadius, ErrBadRadius)
	}

	// Stage 1: boundary filter.
	kept := make([]keypoint.Keypoint, 0, len(kps))
	for _, kp := range kps {
		if !Fits(img, kp, patchRadius) {
			o.report.Add(diag.BoundaryExclusion, opDescribe,
				"keypoint (%d,%d) dropped: patch radius %d leaves the %dx%d image",
				kp.X, kp.Y, patchRadius, img.Cols(), img.Rows())
			continue
		}
		kept = append(kept, kp)
	}

	// Stage 2: extraction.
	set := &Set{
		Keypoints:   kept,
		Descriptors: make([][]float64, len(kept)),
		Dim:         Dim(patchRadius),
	}
	side := 2*patchRadius + 1
	extract := func(lo, hi int) {
		for i := lo; i < hi; i++ {
			kp := kept[i]
			// Fits guarantees the window is in range.
			set.Descriptors[i], _ = img.Window(kp.Y-patchRadius, kp.X-patchRadius, side, side, nil)
		}
	}

	workers := min(o.workers, len(kept))
	if workers <= 1 {
		extract(0, len(kept))
		return set, nil
	}
	var wg sync.WaitGroup
	chunk := (len(kept) + workers - 1) / workers
	for lo := 0; lo < len(kept); lo += chunk {
		hi := min(lo+chunk, len(kept))
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			extract(lo, hi)
		}(lo, hi)
	}
	wg.Wait()

	return set, nil
}
