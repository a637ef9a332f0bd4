// Package imageio loads images from disk into luminance grids.
//
// PNG, JPEG and GIF come from the standard decoders; BMP and TIFF are
// registered from golang.org/x/image. Large frames can be downscaled on load
// with WithMaxSide, which keeps the aspect ratio.
package imageio

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG
	"os"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"  // register BMP
	_ "golang.org/x/image/tiff" // register TIFF

	"github.com/katalvlaran/lvfeat/grid"
)

// ErrBadMaxSide indicates a negative WithMaxSide value.
var ErrBadMaxSide = errors.New("imageio: max side must be >= 0")

// Option configures Load.
type Option func(*options)

type options struct {
	maxSide int
}

// WithMaxSide shrinks images whose longer side exceeds n pixels (bilinear).
// 0 disables resizing.
func WithMaxSide(n int) Option {
	return func(o *options) { o.maxSide = n }
}

// Load decodes the image at path and returns its luminance grid.
func Load(path string, opts ...Option) (*grid.Grid[float64], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("Load %s: %w", path, err)
	}

	return FromImage(img, opts...)
}

// FromImage applies the Load options to an already decoded image.
func FromImage(img image.Image, opts ...Option) (*grid.Grid[float64], error) {
	var o options
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.maxSide < 0 {
		return nil, fmt.Errorf("FromImage: %d: %w", o.maxSide, ErrBadMaxSide)
	}
	if img == nil {
		return nil, grid.ErrNilImage
	}

	if b := img.Bounds(); o.maxSide > 0 && max(b.Dx(), b.Dy()) > o.maxSide {
		w, h := uint(o.maxSide), uint(0) // 0 keeps the aspect ratio
		if b.Dy() > b.Dx() {
			w, h = 0, uint(o.maxSide)
		}
		img = resize.Resize(w, h, img, resize.Bilinear)
	}

	return grid.FromImage(img)
}
