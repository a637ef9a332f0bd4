package keypoint_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvfeat/grid"
	"github.com/katalvlaran/lvfeat/keypoint"
)

// BenchmarkSelect_KITTI selects 200 keypoints from a dense KITTI-sized response.
func BenchmarkSelect_KITTI(b *testing.B) {
	resp, _ := grid.New[float64](376, 1241)
	rng := rand.New(rand.NewSource(7))
	resp.Apply(func(_, _ int, _ float64) float64 { return rng.Float64() })

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := keypoint.Select(resp, 200, 8); err != nil {
			b.Fatalf("Select failed: %v", err)
		}
	}
}
