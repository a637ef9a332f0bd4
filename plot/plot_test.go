package plot_test

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfeat/grid"
	"github.com/katalvlaran/lvfeat/keypoint"
	"github.com/katalvlaran/lvfeat/match"
	"github.com/katalvlaran/lvfeat/plot"
)

func blank(t *testing.T) *grid.Grid[float64] {
	t.Helper()
	g, err := grid.New[float64](40, 60)
	require.NoError(t, err)

	return g
}

// red reports whether c is dominated by its red channel.
func red(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r > 2*g && r > 2*b
}

// TestKeypointsImage marks keypoints and leaves the rest untouched.
func TestKeypointsImage(t *testing.T) {
	out := plot.KeypointsImage(blank(t), []keypoint.Keypoint{{X: 10, Y: 20}})
	assert.Equal(t, 60, out.Bounds().Dx())
	assert.Equal(t, 40, out.Bounds().Dy())
	assert.True(t, red(out.At(10, 20)))
	assert.False(t, red(out.At(50, 5)))
}

// TestMatchesImage draws a line between matched keypoints.
func TestMatchesImage(t *testing.T) {
	q := []keypoint.Keypoint{{X: 5, Y: 20}}
	d := []keypoint.Keypoint{{X: 55, Y: 20}}
	out, err := plot.MatchesImage(blank(t), q, d, []match.Match{{Query: 0, Database: 0}})
	require.NoError(t, err)

	_, g, _, _ := out.At(30, 20).RGBA()
	assert.Greater(t, g, uint32(0x8000))

	_, err = plot.MatchesImage(blank(t), q, d, []match.Match{{Query: 0, Database: 3}})
	assert.ErrorIs(t, err, plot.ErrIndex)
}

// TestSavePNG writes both overlays.
func TestSavePNG(t *testing.T) {
	dir := t.TempDir()
	kps := []keypoint.Keypoint{{X: 1, Y: 1}, {X: 30, Y: 30}}
	require.NoError(t, plot.Keypoints(blank(t), kps, filepath.Join(dir, "kp.png")))
	require.NoError(t, plot.Matches(blank(t), kps, kps, []match.Match{{Query: 1, Database: 0}}, filepath.Join(dir, "m.png")))

	for _, name := range []string{"kp.png", "m.png"} {
		st, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Positive(t, st.Size())
	}
}
