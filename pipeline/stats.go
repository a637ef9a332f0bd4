package pipeline

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvfeat/match"
)

// Stats summarizes the distances of a match list.
// StdDev is the sample standard deviation (0 for fewer than two matches).
type Stats struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// String formats s on one line.
func (s Stats) String() string {
	return fmt.Sprintf("matches=%d mean=%.2f std=%.2f min=%.2f max=%.2f",
		s.Count, s.Mean, s.StdDev, s.Min, s.Max)
}

// Summarize computes Stats over ms. An empty list gives the zero Stats.
func Summarize(ms []match.Match) Stats {
	if len(ms) == 0 {
		return Stats{}
	}
	d := make([]float64, len(ms))
	for i, m := range ms {
		d[i] = m.Distance
	}
	s := Stats{Count: len(d), Min: floats.Min(d), Max: floats.Max(d)}
	if len(d) == 1 {
		s.Mean = d[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(d, nil)

	return s
}
