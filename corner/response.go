package corner

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvfeat/diag"
	"github.com/katalvlaran/lvfeat/filter"
	"github.com/katalvlaran/lvfeat/grid"
	"github.com/katalvlaran/lvfeat/linalg"
)

const opResponse = "corner.ComputeResponse"

// BorderWidth returns the width of the zero band ComputeResponse leaves on
// every side for a given window size: the Sobel radius plus the window radius.
func BorderWidth(patchSize int) int {
	return filter.SobelRadius + patchSize/2
}

// ComputeResponse returns the cornerness response of img.
//
// Implementation:
//   - Stage 1: validate inputs, emit ConfigWarning diagnostics for suboptimal windows.
//   - Stage 2: Sobel gradients, products, window aggregation.
//   - Stage 3: per-pixel score, clamp to >= 0, zero the border band.
//
// Inputs:
//   - img: grayscale intensities.
//   - patchSize: side of the aggregation window (>= 1).
//
// Errors:
//   - ErrNilImage, ErrBadPatchSize, ErrBadKappa.
//
// Diagnostics (never fatal):
//   - patchSize smaller than the Sobel footprint (3·3 taps).
//   - even window radius (patchSize/2).
//   - border band covering the whole image (response is all zeros).
//
// Complexity:
//   - Time O(W·H·patchSize), Space O(W·H).
func ComputeResponse(img *grid.Grid[float64], patchSize int, opts ...Option) (*grid.Grid[float64], error) {
	o := gatherOptions(opts)

	// Stage 1: validate.
	if img == nil {
		return nil, ErrNilImage
	}
	if patchSize < 1 {
		return nil, fmt.Errorf("%s: patch size %d: %w", opResponse, patchSize, ErrBadPatchSize)
	}
	if o.method == Harris && (o.kappa < 0 || math.IsNaN(o.kappa) || math.IsInf(o.kappa, 0)) {
		return nil, fmt.Errorf("%s: kappa %v: %w", opResponse, o.kappa, ErrBadKappa)
	}
	checkWindow(o.report, patchSize)

	rows, cols := img.Shape()
	pad := BorderWidth(patchSize)
	if 2*pad >= rows || 2*pad >= cols {
		o.report.Add(diag.ConfigWarning, opResponse,
			"border band %d leaves no valid pixel in a %dx%d image", pad, cols, rows)
	}

	// Stage 2: structure tensor entries.
	sxx, syy, sxy, err := structureTensor(img, patchSize, o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opResponse, err)
	}

	// Stage 3: score.
	out, _ := grid.New[float64](rows, cols)
	dst := out.Data()
	a, c, b := sxx.Data(), syy.Data(), sxy.Data()
	for i := range dst {
		m := linalg.Sym2{A: a[i], B: b[i], C: c[i]}
		var r float64
		switch o.method {
		case ShiTomasi:
			r = m.MinEigenvalue()
		default:
			r = m.Harris(o.kappa)
		}
		if !(r > 0) {
			r = 0
		}
		dst[i] = r
	}
	out.ZeroBorder(pad)

	return out, nil
}

// HarrisResponse is ComputeResponse with the Harris method and the given kappa.
func HarrisResponse(img *grid.Grid[float64], patchSize int, kappa float64, opts ...Option) (*grid.Grid[float64], error) {
	all := append([]Option{}, opts...)

	return ComputeResponse(img, patchSize, append(all, WithMethod(Harris), WithKappa(kappa))...)
}

// ShiTomasiResponse is ComputeResponse with the Shi-Tomasi method.
func ShiTomasiResponse(img *grid.Grid[float64], patchSize int, opts ...Option) (*grid.Grid[float64], error) {
	all := append([]Option{}, opts...)

	return ComputeResponse(img, patchSize, append(all, WithMethod(ShiTomasi))...)
}

// checkWindow reports window sizes that still work but are not what the
// detector is tuned for.
func checkWindow(r *diag.Report, patchSize int) {
	if patchSize < filter.SobelFootprint {
		r.Add(diag.ConfigWarning, opResponse,
			"patch size %d is smaller than the Sobel footprint %d", patchSize, filter.SobelFootprint)
	}
	if radius := patchSize / 2; radius%2 == 0 {
		r.Add(diag.ConfigWarning, opResponse,
			"window radius %d is even; an odd radius keeps the aggregation symmetric", radius)
	}
}

// structureTensor returns the window-aggregated Ixx, Iyy and Ixy maps.
func structureTensor(img *grid.Grid[float64], patchSize int, o Options) (sxx, syy, sxy *grid.Grid[float64], err error) {
	ix, iy, err := filter.Gradients(img)
	if err != nil {
		return nil, nil, nil, err
	}

	rows, cols := img.Shape()
	ixx, _ := grid.New[float64](rows, cols)
	iyy, _ := grid.New[float64](rows, cols)
	ixy, _ := grid.New[float64](rows, cols)
	gx, gy := ix.Data(), iy.Data()
	pxx, pyy, pxy := ixx.Data(), iyy.Data(), ixy.Data()
	for i := range gx {
		pxx[i] = gx[i] * gx[i]
		pyy[i] = gy[i] * gy[i]
		pxy[i] = gx[i] * gy[i]
	}

	aggregate := func(src *grid.Grid[float64]) (*grid.Grid[float64], error) {
		if o.weighting == Gaussian {
			return filter.GaussianSum(src, patchSize, o.sigma)
		}
		return filter.BoxSum(src, patchSize)
	}
	if sxx, err = aggregate(ixx); err != nil {
		return nil, nil, nil, err
	}
	if syy, err = aggregate(iyy); err != nil {
		return nil, nil, nil, err
	}
	if sxy, err = aggregate(ixy); err != nil {
		return nil, nil, nil, err
	}

	return sxx, syy, sxy, nil
}
