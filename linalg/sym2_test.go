package linalg_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvfeat/linalg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

var cases = []linalg.Sym2{
	{A: 12, B: 0, C: 12},
	{A: 6, B: 0, C: 10},
	{A: 5, B: 1, C: 5},
	{A: 3, B: -2, C: 1},
	{A: 1e6, B: 3e5, C: 2},
	{A: 0, B: 0, C: 0},
}

// TestEigenvalues_AgainstGonum cross-checks the closed form against a general
// symmetric eigensolver.
func TestEigenvalues_AgainstGonum(t *testing.T) {
	for _, m := range cases {
		var es mat.EigenSym
		ok := es.Factorize(mat.NewSymDense(2, []float64{m.A, m.B, m.B, m.C}), true)
		require.True(t, ok)
		want := es.Values(nil) // ascending

		lmin, lmax := m.Eigenvalues()
		tol := 1e-9 * math.Max(1, math.Abs(want[1]))
		assert.InDelta(t, want[0], lmin, tol, "λmin of %+v", m)
		assert.InDelta(t, want[1], lmax, tol, "λmax of %+v", m)
		assert.InDelta(t, want[0], m.MinEigenvalue(), tol)
	}
}

// TestEigen_Reconstructs verifies M·v = λ·v for the Jacobi path.
func TestEigen_Reconstructs(t *testing.T) {
	for _, m := range cases {
		vals, vecs := m.Eigen()
		assert.LessOrEqual(t, vals[0], vals[1])
		for k := 0; k < 2; k++ {
			v := vecs[k]
			mv0 := m.A*v[0] + m.B*v[1]
			mv1 := m.B*v[0] + m.C*v[1]
			tol := 1e-9 * math.Max(1, math.Abs(vals[1]))
			assert.InDelta(t, vals[k]*v[0], mv0, tol, "%+v k=%d", m, k)
			assert.InDelta(t, vals[k]*v[1], mv1, tol, "%+v k=%d", m, k)
			assert.InDelta(t, 1.0, math.Hypot(v[0], v[1]), 1e-12)
		}
	}
}

// TestHarris_Formula checks det − κ·trace² on the impulse tensor.
func TestHarris_Formula(t *testing.T) {
	m := linalg.Sym2{A: 12, C: 12}
	assert.InDelta(t, 144-0.06*576, m.Harris(0.06), 1e-12)
	assert.Equal(t, 24.0, m.Trace())
	assert.Equal(t, 144.0, m.Det())
}
