package filter

import "math"

// SobelSize is the side length of the Sobel derivative operator.
const SobelSize = 3

// SobelRadius is the half-width of the Sobel operator.
const SobelRadius = SobelSize / 2

// SobelFootprint is the number of taps of the full 2D Sobel operator.
const SobelFootprint = SobelSize * SobelSize

// Sobel returns the two 1D factors of the Sobel operator:
//
//	Gx = smooth ⊗ diff,  Gy = diff ⊗ smooth
//	diff   = [-1 0 +1]
//	smooth = [+1 2 +1]
//
// Correlating rows with diff and columns with smooth yields ∂I/∂x.
func Sobel() (diff, smooth []float64) {
	return []float64{-1, 0, 1}, []float64{1, 2, 1}
}

// Ones returns a length-n kernel of ones (box sum, not mean).
func Ones(n int) []float64 {
	k := make([]float64, n)
	for i := range k {
		k[i] = 1
	}

	return k
}

// Gaussian returns a normalized length-n Gaussian kernel.
// sigma <= 0 derives sigma from n as 0.3·((n−1)·0.5 − 1) + 0.8.
func Gaussian(n int, sigma float64) []float64 {
	if n <= 0 {
		return nil
	}
	if sigma <= 0 {
		sigma = 0.3*((float64(n)-1)*0.5-1) + 0.8
	}
	k := make([]float64, n)
	center := float64(n-1) / 2
	var sum float64
	for i := range k {
		d := float64(i) - center
		k[i] = math.Exp(-d * d / (2 * sigma * sigma))
		sum += k[i]
	}
	for i := range k {
		k[i] /= sum
	}

	return k
}
