package match

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvfeat/grid"
	"gonum.org/v1/gonum/floats"
)

// Match pairs query descriptor Query with database descriptor Database.
// Distance is their squared Euclidean distance.
type Match struct {
	Query    int
	Database int
	Distance float64
}

// DistanceMatrix returns the Q×N grid of squared distances between every
// query (row) and database (column) descriptor.
// Errors: ErrEmptyInput, ErrDimensionMismatch.
func DistanceMatrix(query, database [][]float64) (*grid.Grid[float64], error) {
	if len(query) == 0 || len(database) == 0 {
		return nil, fmt.Errorf("DistanceMatrix: %dx%d: %w", len(query), len(database), ErrEmptyInput)
	}
	dim := len(query[0])
	if dim == 0 {
		return nil, fmt.Errorf("DistanceMatrix: zero-length descriptor: %w", ErrDimensionMismatch)
	}
	if err := checkDim("query", query, dim); err != nil {
		return nil, err
	}
	if err := checkDim("database", database, dim); err != nil {
		return nil, err
	}

	out, _ := grid.New[float64](len(query), len(database))
	d := out.Data()
	diff := make([]float64, dim)
	for i, q := range query {
		base := i * len(database)
		for j, b := range database {
			floats.SubTo(diff, q, b)
			d[base+j] = floats.Dot(diff, diff)
		}
	}

	return out, nil
}

func checkDim(name string, set [][]float64, dim int) error {
	for i, v := range set {
		if len(v) != dim {
			return fmt.Errorf("DistanceMatrix: %s[%d] has length %d, want %d: %w", name, i, len(v), dim, ErrDimensionMismatch)
		}
	}

	return nil
}

// MatchDescriptors matches query against database with the global-minimum
// anchored ratio test and returns the accepted pairs ordered by query index.
// An empty result is valid.
//
// Errors: ErrEmptyInput, ErrDimensionMismatch, ErrBadRatio.
func MatchDescriptors(query, database [][]float64, distanceRatio float64, opts ...Option) ([]Match, error) {
	o := gatherOptions(opts)
	if distanceRatio < 0 || math.IsNaN(distanceRatio) || math.IsInf(distanceRatio, 0) {
		return nil, fmt.Errorf("MatchDescriptors: ratio %v: %w", distanceRatio, ErrBadRatio)
	}
	dist, err := DistanceMatrix(query, database)
	if err != nil {
		return nil, err
	}

	threshold := distanceRatio * anchor(dist.Data(), o.nonZeroAnchor)
	n := len(database)
	d := dist.Data()

	var accepted []Match
	for i := range query {
		row := d[i*n : (i+1)*n]
		best := floats.MinIdx(row) // first minimum
		if row[best] <= threshold {
			accepted = append(accepted, Match{Query: i, Database: best, Distance: row[best]})
		}
	}
	if !o.unique {
		return accepted, nil
	}

	return keepClosest(accepted, n), nil
}

// anchor returns the matrix minimum, or the smallest positive entry when
// nonZero is set (0 if there is none).
func anchor(d []float64, nonZero bool) float64 {
	if !nonZero {
		return floats.Min(d)
	}
	m := math.Inf(1)
	for _, v := range d {
		if v > 0 && v < m {
			m = v
		}
	}
	if math.IsInf(m, 1) {
		return 0
	}

	return m
}

// keepClosest drops every match that is not the closest one for its
// database index. ms is ordered by query index, so the first of equal
// distances wins.
func keepClosest(ms []Match, n int) []Match {
	winner := make([]int, n)
	for j := range winner {
		winner[j] = -1
	}
	for k, m := range ms {
		if w := winner[m.Database]; w < 0 || m.Distance < ms[w].Distance {
			winner[m.Database] = k
		}
	}
	out := make([]Match, 0, len(ms))
	for k, m := range ms {
		if winner[m.Database] == k {
			out = append(out, m)
		}
	}

	return out
}
