// Package descriptor turns keypoints into raw-intensity patch descriptors.
//
// For a keypoint (x, y) and radius r the descriptor is the (2r+1)×(2r+1)
// block of the image centred on it, flattened row by row:
//
//	d = [img(y−r, x−r), …, img(y−r, x+r), img(y−r+1, x−r), …, img(y+r, x+r)]
//
// Keypoints whose block would leave the image are dropped, never padded.
// The returned Set keeps the surviving keypoints and their descriptors in
// lockstep, in the input order.
//
// Usage:
//
//	set, err := descriptor.Describe(img, kps, 9, descriptor.WithWorkers(4))
//	m := set.Matrix() // [Dim × n] gonum matrix, one descriptor per column
package descriptor
