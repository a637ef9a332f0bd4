package match_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvfeat/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomSet returns n random descriptors of length dim.
func randomSet(rng *rand.Rand, n, dim int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, dim)
		for k := range out[i] {
			out[i][k] = float64(rng.Intn(256))
		}
	}

	return out
}

// TestMatch_PermutationRecovered: the database is a shuffled copy of the query.
func TestMatch_PermutationRecovered(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	query := randomSet(rng, 12, 25)
	perm := rng.Perm(len(query))
	database := make([][]float64, len(query))
	for i, p := range perm {
		database[p] = query[i]
	}

	ms, err := match.MatchDescriptors(query, database, 4)
	require.NoError(t, err)
	require.Len(t, ms, len(query))
	for i, m := range ms {
		assert.Equal(t, i, m.Query)
		assert.Equal(t, perm[i], m.Database)
		assert.Zero(t, m.Distance)
	}
}

// TestMatch_SelfIdentity: every descriptor matches itself.
func TestMatch_SelfIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	set := randomSet(rng, 20, 9)
	ms, err := match.MatchDescriptors(set, set, 1)
	require.NoError(t, err)
	require.Len(t, ms, len(set))
	for i, m := range ms {
		assert.Equal(t, match.Match{Query: i, Database: i}, m)
	}
}

// TestMatch_GlobalThreshold checks the ratio·dmin acceptance rule.
func TestMatch_GlobalThreshold(t *testing.T) {
	query := [][]float64{{0}, {10}, {20}}
	database := [][]float64{{1}, {13}, {24}}
	// distances to nearest: 1, 9, 16; dmin = 1
	ms, err := match.MatchDescriptors(query, database, 9)
	require.NoError(t, err)
	assert.Equal(t, []match.Match{
		{Query: 0, Database: 0, Distance: 1},
		{Query: 1, Database: 1, Distance: 9}, // exactly on the threshold
	}, ms)

	ms, err = match.MatchDescriptors(query, database, 100)
	require.NoError(t, err)
	assert.Len(t, ms, 3)
}

// TestMatch_Uniqueness keeps the closest query per database descriptor.
func TestMatch_Uniqueness(t *testing.T) {
	query := [][]float64{{5}, {4}, {6}, {100}}
	database := [][]float64{{3}, {200}}
	// nearest: q0→d0 4, q1→d0 1, q2→d0 9, q3→d0 9409; dmin = 1
	ms, err := match.MatchDescriptors(query, database, 100)
	require.NoError(t, err)
	assert.Equal(t, []match.Match{{Query: 1, Database: 0, Distance: 1}}, ms)

	ms, err = match.MatchDescriptors(query, database, 5, match.WithUnique(false))
	require.NoError(t, err)
	assert.Equal(t, []match.Match{
		{Query: 0, Database: 0, Distance: 4},
		{Query: 1, Database: 0, Distance: 1},
	}, ms)
}

// TestMatch_ManyToOne keeps every accepted query when uniqueness is off.
func TestMatch_ManyToOne(t *testing.T) {
	query := [][]float64{{3}, {5}, {20}}
	database := [][]float64{{4}, {40}}
	// nearest: q0→d0 1, q1→d0 1, q2→d0 256; dmin = 1
	ms, err := match.MatchDescriptors(query, database, 2, match.WithUnique(false))
	require.NoError(t, err)
	assert.Equal(t, []match.Match{
		{Query: 0, Database: 0, Distance: 1},
		{Query: 1, Database: 0, Distance: 1},
	}, ms)

	// tie on distance: smallest query index wins
	ms, err = match.MatchDescriptors(query, database, 2)
	require.NoError(t, err)
	assert.Equal(t, []match.Match{{Query: 0, Database: 0, Distance: 1}}, ms)
}

// TestMatch_NearestTieBreak picks the smallest database index among equals.
func TestMatch_NearestTieBreak(t *testing.T) {
	ms, err := match.MatchDescriptors([][]float64{{5}}, [][]float64{{7}, {3}, {7}}, 1)
	require.NoError(t, err)
	assert.Equal(t, []match.Match{{Query: 0, Database: 0, Distance: 4}}, ms)
}

// TestMatch_NonZeroAnchor ignores exact duplicates when fixing the threshold.
func TestMatch_NonZeroAnchor(t *testing.T) {
	query := [][]float64{{0}, {10}}
	database := [][]float64{{0}, {12}}
	// distances: q0 {0, 144}, q1 {100, 4}
	ms, err := match.MatchDescriptors(query, database, 4)
	require.NoError(t, err)
	assert.Equal(t, []match.Match{{Query: 0, Database: 0}}, ms)

	ms, err = match.MatchDescriptors(query, database, 1, match.WithNonZeroAnchor())
	require.NoError(t, err)
	assert.Equal(t, []match.Match{
		{Query: 0, Database: 0},
		{Query: 1, Database: 1, Distance: 4},
	}, ms)

	// all distances zero: anchor falls back to zero
	ms, err = match.MatchDescriptors([][]float64{{1}}, [][]float64{{1}}, 2, match.WithNonZeroAnchor())
	require.NoError(t, err)
	assert.Len(t, ms, 1)
}

// TestDistanceMatrix checks layout and values.
func TestDistanceMatrix(t *testing.T) {
	d, err := match.DistanceMatrix([][]float64{{0, 0}, {1, 1}}, [][]float64{{1, 0}, {3, 4}, {1, 1}})
	require.NoError(t, err)
	assert.Equal(t, 2, d.Rows())
	assert.Equal(t, 3, d.Cols())
	assert.Equal(t, []float64{1, 25, 2, 1, 13, 0}, d.Data())
}

// TestMatch_Errors covers invalid input.
func TestMatch_Errors(t *testing.T) {
	ok := [][]float64{{1, 2}}
	_, err := match.MatchDescriptors(nil, ok, 1)
	assert.ErrorIs(t, err, match.ErrEmptyInput)
	_, err = match.MatchDescriptors(ok, [][]float64{}, 1)
	assert.ErrorIs(t, err, match.ErrEmptyInput)
	_, err = match.MatchDescriptors(ok, [][]float64{{1}}, 1)
	assert.ErrorIs(t, err, match.ErrDimensionMismatch)
	_, err = match.MatchDescriptors([][]float64{{1, 2}, {3}}, ok, 1)
	assert.ErrorIs(t, err, match.ErrDimensionMismatch)
	_, err = match.MatchDescriptors([][]float64{{}}, [][]float64{{}}, 1)
	assert.ErrorIs(t, err, match.ErrDimensionMismatch)
	_, err = match.MatchDescriptors(ok, ok, -1)
	assert.ErrorIs(t, err, match.ErrBadRatio)
	_, err = match.MatchDescriptors(ok, ok, math.NaN())
	assert.ErrorIs(t, err, match.ErrBadRatio)
}
