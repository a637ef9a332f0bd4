// Package plot renders keypoints and matches over a frame as PNG overlays.
package plot

import (
	"errors"
	"image"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/lvfeat/grid"
	"github.com/katalvlaran/lvfeat/keypoint"
	"github.com/katalvlaran/lvfeat/match"
)

// ErrIndex indicates a match referring to a keypoint that does not exist.
var ErrIndex = errors.New("plot: match index out of range")

const (
	keypointRadius = 3.0
	lineWidth      = 2.0
)

// KeypointsImage draws every keypoint as a translucent red dot over img.
func KeypointsImage(img *grid.Grid[float64], kps []keypoint.Keypoint) image.Image {
	dc := canvas(img)
	dc.SetRGBA(1, 0, 0, 0.6)
	for _, k := range kps {
		dc.DrawCircle(float64(k.X), float64(k.Y), keypointRadius)
		dc.Fill()
	}

	return dc.Image()
}

// Keypoints renders KeypointsImage to a PNG file.
func Keypoints(img *grid.Grid[float64], kps []keypoint.Keypoint, path string) error {
	return gg.NewContextForImage(KeypointsImage(img, kps)).SavePNG(path)
}

// MatchesImage draws a green line from each matched query keypoint to its
// database keypoint over the query image img.
func MatchesImage(img *grid.Grid[float64], query, database []keypoint.Keypoint, ms []match.Match) (image.Image, error) {
	dc := canvas(img)
	dc.SetRGB(0, 0.8, 0)
	dc.SetLineWidth(lineWidth)
	for _, m := range ms {
		if m.Query < 0 || m.Query >= len(query) || m.Database < 0 || m.Database >= len(database) {
			return nil, ErrIndex
		}
		q, d := query[m.Query], database[m.Database]
		dc.DrawLine(float64(q.X), float64(q.Y), float64(d.X), float64(d.Y))
		dc.Stroke()
	}
	dc.SetRGBA(1, 0, 0, 0.6)
	for _, k := range query {
		dc.DrawCircle(float64(k.X), float64(k.Y), keypointRadius)
		dc.Fill()
	}

	return dc.Image(), nil
}

// Matches renders MatchesImage to a PNG file.
func Matches(img *grid.Grid[float64], query, database []keypoint.Keypoint, ms []match.Match, path string) error {
	out, err := MatchesImage(img, query, database, ms)
	if err != nil {
		return err
	}

	return gg.NewContextForImage(out).SavePNG(path)
}

// canvas returns a context holding img as its background.
func canvas(img *grid.Grid[float64]) *gg.Context {
	dc := gg.NewContext(img.Cols(), img.Rows())
	dc.DrawImage(grid.ToGray(img), 0, 0)

	return dc
}
