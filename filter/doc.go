// Package filter implements the linear filtering primitives the corner
// detector consumes: separable and full 2D correlation over a
// *grid.Grid[float64] with an isolated zero border, plus the kernels it
// needs (Sobel pair, box, Gaussian).
//
// Border policy:
//
//	Samples outside the grid read as 0 and nothing outside the grid is ever
//	consulted (no ROI extrapolation). Output always has the input's shape;
//	callers that want "valid" semantics clear a band of kernel radius
//	themselves.
//
// Anchor:
//
//	A kernel of length n is anchored at n/2, so odd kernels are centred and
//	even kernels lean one sample toward the end, matching the usual
//	image-processing convention.
//
// Correlation, not convolution:
//
//	out(x) = Σ_k kernel[k] · in(x + k − anchor). Flip the kernel to convolve.
package filter
