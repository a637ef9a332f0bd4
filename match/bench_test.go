package match_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvfeat/match"
)

// BenchmarkMatch_200x200 matches two default-sized sets of 19×19 patches.
func BenchmarkMatch_200x200(b *testing.B) {
	rng := rand.New(rand.NewSource(5))
	q, d := randomSet(rng, 200, 361), randomSet(rng, 200, 361)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := match.MatchDescriptors(q, d, 4); err != nil {
			b.Fatalf("MatchDescriptors failed: %v", err)
		}
	}
}
