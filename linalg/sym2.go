// Package linalg provides the closed-form eigen-structure of 2×2 symmetric
// matrices, i.e. the structure tensor M = [[a, b], [b, c]] evaluated once per
// pixel by the corner detector.
//
// Everything here is allocation-free and branch-light so it can sit inside
// the per-pixel loop.
package linalg

import "math"

// Sym2 is the symmetric matrix [[A, B], [B, C]].
type Sym2 struct {
	A, B, C float64
}

// Trace returns A + C.
func (m Sym2) Trace() float64 { return m.A + m.C }

// Det returns A·C − B².
func (m Sym2) Det() float64 { return m.A*m.C - m.B*m.B }

// Eigenvalues returns (λmin, λmax) via
//
//	λ = (trace ∓ sqrt(trace² − 4·det)) / 2
//
// The discriminant of a real symmetric matrix is mathematically ≥ 0; rounding
// can push it slightly negative, in which case it is clamped to 0.
func (m Sym2) Eigenvalues() (lmin, lmax float64) {
	tr := m.Trace()
	disc := tr*tr - 4*m.Det()
	if disc < 0 {
		disc = 0
	}
	s := math.Sqrt(disc)

	return (tr - s) / 2, (tr + s) / 2
}

// MinEigenvalue returns the smaller eigenvalue (Shi-Tomasi score).
func (m Sym2) MinEigenvalue() float64 {
	lmin, _ := m.Eigenvalues()

	return lmin
}

// Harris returns det − kappa·trace².
func (m Sym2) Harris(kappa float64) float64 {
	tr := m.Trace()

	return m.Det() - kappa*tr*tr
}

// Eigen diagonalizes m with a single Jacobi rotation, which is exact for 2×2
// symmetric input. It returns the eigenvalues in ascending order and the
// matching unit eigenvectors.
//
// Rotation angle: tan(2θ) = 2B / (A − C); a zero off-diagonal is already
// diagonal and is returned as is (identity vectors).
func (m Sym2) Eigen() (vals [2]float64, vecs [2][2]float64) {
	if m.B == 0 {
		vals = [2]float64{m.A, m.C}
		vecs = [2][2]float64{{1, 0}, {0, 1}}
		if m.A > m.C {
			vals[0], vals[1] = vals[1], vals[0]
			vecs[0], vecs[1] = vecs[1], vecs[0]
		}
		return vals, vecs
	}

	theta := 0.5 * math.Atan2(2*m.B, m.A-m.C)
	c, s := math.Cos(theta), math.Sin(theta)
	// Rotated diagonal entries.
	l1 := c*c*m.A + 2*s*c*m.B + s*s*m.C
	l2 := s*s*m.A - 2*s*c*m.B + c*c*m.C
	v1 := [2]float64{c, s}
	v2 := [2]float64{-s, c}
	if l1 > l2 {
		l1, l2 = l2, l1
		v1, v2 = v2, v1
	}

	return [2]float64{l1, l2}, [2][2]float64{v1, v2}
}
