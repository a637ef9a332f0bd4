// Package lvfeat is a pure-Go sparse feature toolkit: corner detection,
// keypoint selection, patch description and descriptor matching over
// grayscale images.
//
// What is inside?
//
//	grid/        generic row-major Grid[T] with safe accessors and image conversion
//	filter/      separable and 2D correlation, Sobel gradients, box and Gaussian windows
//	linalg/      closed-form 2×2 symmetric eigen-analysis (structure tensor)
//	corner/      Harris and Shi-Tomasi cornerness responses
//	keypoint/    deterministic greedy non-maximum suppression
//	descriptor/  raw intensity patch descriptors
//	match/       SSD matching with a global-minimum anchored ratio test
//	pipeline/    YAML-configured detect / match / track over frames
//	imageio/     image loading (PNG, JPEG, GIF, BMP, TIFF) with optional downscale
//	plot/        keypoint and match overlays
//	diag/        non-fatal diagnostics mirrored to zap
//
// Quick start:
//
//	img, _ := imageio.Load("frame.png")
//	resp, _ := corner.HarrisResponse(img, 9, corner.DefaultKappa)
//	kps, _ := keypoint.Select(resp, 200, 8)
//	set, _ := descriptor.Describe(img, kps, 9)
//
// The cmd/lvfeat binary runs the same chain on two images or a sequence.
package lvfeat
