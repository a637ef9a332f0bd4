package grid

import (
	"image"
	"image/color"
	"math"
)

// Convert copies g into a new grid of element kind D (Go numeric conversion
// per element, so float→int truncates toward zero).
// Complexity: O(r*c).
func Convert[D, S Number](g *Grid[S]) *Grid[D] {
	out := &Grid[D]{r: g.r, c: g.c, data: make([]D, len(g.data))}
	for i, v := range g.data {
		out.data[i] = D(v)
	}

	return out
}

// FromImage converts img to a luminance grid in [0, 255], one cell per pixel.
// Rows follow img.Bounds() top to bottom, so cell (0,0) is Bounds().Min.
// *image.Gray is copied directly; any other model goes through color.GrayModel.
// Returns ErrNilImage or ErrInvalidDimensions for empty bounds.
func FromImage(img image.Image) (*Grid[float64], error) {
	if img == nil {
		return nil, ErrNilImage
	}
	b := img.Bounds()
	g, err := New[float64](b.Dy(), b.Dx())
	if err != nil {
		return nil, err
	}

	if gray, ok := img.(*image.Gray); ok {
		for y := 0; y < g.r; y++ {
			row := gray.Pix[y*gray.Stride : y*gray.Stride+g.c]
			for x, p := range row {
				g.data[y*g.c+x] = float64(p)
			}
		}
		return g, nil
	}

	for y := 0; y < g.r; y++ {
		for x := 0; x < g.c; x++ {
			c := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			g.data[y*g.c+x] = float64(c.Y)
		}
	}

	return g, nil
}

// ToGray renders g as an 8-bit image, clamping values into [0, 255] and
// rounding to the nearest level.
func ToGray[T Number](g *Grid[T]) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.c, g.r))
	for y := 0; y < g.r; y++ {
		for x := 0; x < g.c; x++ {
			v := math.Round(float64(g.data[y*g.c+x]))
			img.Pix[y*img.Stride+x] = uint8(math.Max(0, math.Min(255, v)))
		}
	}

	return img
}
