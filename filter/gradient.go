package filter

import "github.com/katalvlaran/lvfeat/grid"

// Gradients returns the Sobel derivatives (Ix, Iy) of src with zero border.
// No pre-smoothing: the [1 2 1] factor is the only smoothing applied.
// Ix is positive where intensity grows with x, Iy where it grows with y.
func Gradients(src *grid.Grid[float64]) (ix, iy *grid.Grid[float64], err error) {
	diff, smooth := Sobel()
	if ix, err = Separable(src, diff, smooth); err != nil {
		return nil, nil, err
	}
	if iy, err = Separable(src, smooth, diff); err != nil {
		return nil, nil, err
	}

	return ix, iy, nil
}
