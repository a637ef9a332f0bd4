package filter

import (
	"fmt"

	"github.com/katalvlaran/lvfeat/grid"
)

// Separable correlates src with kx along rows (x) and then with ky along
// columns (y), treating out-of-grid samples as zero.
//
// Algorithm:
//  1. tmp(y, x) = Σ_i kx[i] · src(y, x + i − len(kx)/2)
//  2. out(y, x) = Σ_j ky[j] · tmp(y + j − len(ky)/2, x)
//
// Returns ErrNilInput or ErrEmptyKernel.
// Complexity: O(r·c·(len(kx)+len(ky))) time, O(r·c) extra memory.
func Separable(src *grid.Grid[float64], kx, ky []float64) (*grid.Grid[float64], error) {
	if err := grid.ValidateNotNil(src); err != nil {
		return nil, fmt.Errorf("Separable: %w: %w", ErrNilInput, err)
	}
	if len(kx) == 0 || len(ky) == 0 {
		return nil, fmt.Errorf("Separable: %w", ErrEmptyKernel)
	}
	rows, cols := src.Shape()
	in := src.Data()

	tmp := make([]float64, rows*cols)
	ax := len(kx) / 2
	for y := 0; y < rows; y++ {
		base := y * cols
		for x := 0; x < cols; x++ {
			var acc float64
			for i, w := range kx {
				sx := x + i - ax
				if sx < 0 || sx >= cols || w == 0 {
					continue
				}
				acc += w * in[base+sx]
			}
			tmp[base+x] = acc
		}
	}

	out, _ := grid.New[float64](rows, cols) // shape already validated by src
	dst := out.Data()
	ay := len(ky) / 2
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			var acc float64
			for j, w := range ky {
				sy := y + j - ay
				if sy < 0 || sy >= rows || w == 0 {
					continue
				}
				acc += w * tmp[sy*cols+x]
			}
			dst[y*cols+x] = acc
		}
	}

	return out, nil
}

// Correlate2D correlates src with a full 2D kernel anchored at
// (kernel.Rows()/2, kernel.Cols()/2), zero outside the grid.
// Use it for kernels that do not factor; prefer Separable otherwise.
// Complexity: O(r·c·kr·kc).
func Correlate2D(src, kernel *grid.Grid[float64]) (*grid.Grid[float64], error) {
	if err := grid.ValidateNotNil(src); err != nil {
		return nil, fmt.Errorf("Correlate2D: %w: %w", ErrNilInput, err)
	}
	if kernel == nil {
		return nil, fmt.Errorf("Correlate2D: %w", ErrEmptyKernel)
	}
	rows, cols := src.Shape()
	kr, kc := kernel.Shape()
	ar, ac := kr/2, kc/2
	in, k := src.Data(), kernel.Data()

	out, _ := grid.New[float64](rows, cols)
	dst := out.Data()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			var acc float64
			for i := 0; i < kr; i++ {
				sy := y + i - ar
				if sy < 0 || sy >= rows {
					continue
				}
				for j := 0; j < kc; j++ {
					sx := x + j - ac
					if sx < 0 || sx >= cols {
						continue
					}
					acc += k[i*kc+j] * in[sy*cols+sx]
				}
			}
			dst[y*cols+x] = acc
		}
	}

	return out, nil
}

// BoxSum sums src over a size×size window anchored at size/2.
// Equivalent to Separable(src, Ones(size), Ones(size)).
func BoxSum(src *grid.Grid[float64], size int) (*grid.Grid[float64], error) {
	if size <= 0 {
		return nil, fmt.Errorf("BoxSum: %d: %w", size, ErrBadSize)
	}
	ones := Ones(size)

	return Separable(src, ones, ones)
}

// GaussianSum weights src over a size×size Gaussian window.
func GaussianSum(src *grid.Grid[float64], size int, sigma float64) (*grid.Grid[float64], error) {
	if size <= 0 {
		return nil, fmt.Errorf("GaussianSum: %d: %w", size, ErrBadSize)
	}
	k := Gaussian(size, sigma)

	return Separable(src, k, k)
}
