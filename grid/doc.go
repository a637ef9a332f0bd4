// Package grid provides the generic numeric matrix used by every stage of the
// feature pipeline: images, response maps, distance tables.
//
// What is a Grid?
//
//	A Grid[T] is a rows×cols buffer stored row-major in one flat slice
//	(offset = row*cols + col). Rows run along the image height (y) and
//	columns along the width (x), so pixel (x, y) lives at At(y, x).
//
// Key features:
//   - One generic type for every element kind (uint8 frames, float64 maps).
//   - Safe public indexers: At/Set return ErrOutOfRange instead of panicking.
//   - Deterministic row-major visitors (Do, Apply) and cheap clones.
//   - Conversions between element types and from image.Image.
//
// Usage:
//
//	img, err := grid.FromRows([][]float64{
//		{0, 0, 0},
//		{0, 9, 0},
//		{0, 0, 0},
//	})
//	v, _ := img.At(1, 1) // 9
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; At/Set: O(1); Clone/Convert: O(r*c).
package grid
