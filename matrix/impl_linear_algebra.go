// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels of Matrix3: determinant,
// closed-form inverse, true matrix/vector products and transpose.
//
// Notes:
//   - All kernels are closed-form for n=3; no loops depend on data.
//   - Kernels never mutate the receiver.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/isometry/vector"
)

// SingularityThreshold is the |det| below which Inverse refuses to run.
// It is a fixed absolute guard, not a relative conditioning test.
const SingularityThreshold = 1e-6

// Operation name constants for unified error wrapping.
const (
	opInverse = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Det returns the determinant by cofactor expansion along the first row.
func (m Matrix3) Det() float64 {
	r0, r1, r2 := m.rows[0], m.rows[1], m.rows[2]

	return r0.X*(r1.Y*r2.Z-r1.Z*r2.Y) -
		r0.Y*(r1.X*r2.Z-r1.Z*r2.X) +
		r0.Z*(r1.X*r2.Y-r1.Y*r2.X)
}

// Inverse computes m⁻¹ = adj(m) / det(m) using the closed-form 3×3 cofactors.
//
// Implementation:
//   - Stage 1: det := m.Det(); fail with ErrSingular when |det| < SingularityThreshold.
//   - Stage 2: build the adjugate (transposed cofactor matrix, checkerboard signs).
//   - Stage 3: scale by 1/det.
//
// For
//
//	| a b c |
//	| d e f |
//	| g h k |
//
// the adjugate is
//
//	|  (ek−fh)  −(bk−ch)   (bf−ce) |
//	| −(dk−fg)   (ak−cg)  −(af−cd) |
//	|  (dh−eg)  −(ah−bg)   (ae−bd) |
//
// Errors:
//   - ErrSingular (wrapped with "Inverse") when the guard trips.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - The guard is absolute: a well-conditioned matrix scaled down far enough is
//     refused, and an ill-conditioned one with |det| ≥ 1e-6 is accepted.
func (m Matrix3) Inverse() (Matrix3, error) {
	det := m.Det()
	if math.Abs(det) < SingularityThreshold {
		return Matrix3{}, matrixErrorf(opInverse, fmt.Errorf("det=%g: %w", det, ErrSingular))
	}

	a, b, c := m.rows[0].X, m.rows[0].Y, m.rows[0].Z
	d, e, f := m.rows[1].X, m.rows[1].Y, m.rows[1].Z
	g, h, k := m.rows[2].X, m.rows[2].Y, m.rows[2].Z

	// Negated cofactors are written as swapped differences so that exact zeros
	// stay +0 rather than -0.
	adj := New(
		e*k-f*h, c*h-b*k, b*f-c*e,
		f*g-d*k, a*k-c*g, c*d-a*f,
		d*h-e*g, b*g-a*h, a*e-b*d,
	)

	return adj.Scale(1 / det), nil
}

// Product returns the matrix product m × o, where out[i][j] = row_i(m) · col_j(o).
func (m Matrix3) Product(o Matrix3) Matrix3 {
	c0, c1, c2 := o.col(0), o.col(1), o.col(2)
	var out Matrix3
	for i := 0; i < Size; i++ {
		r := m.rows[i]
		out.rows[i] = vector.New(r.Dot(c0), r.Dot(c1), r.Dot(c2))
	}

	return out
}

// MatVec returns the matrix-vector product m · v.
func (m Matrix3) MatVec(v vector.Vector3) vector.Vector3 {
	return vector.New(m.rows[0].Dot(v), m.rows[1].Dot(v), m.rows[2].Dot(v))
}

// Transpose returns mᵀ.
func (m Matrix3) Transpose() Matrix3 {
	return FromRows(m.col(0), m.col(1), m.col(2))
}

// Trace returns the sum of the diagonal.
func (m Matrix3) Trace() float64 {
	return m.rows[0].X + m.rows[1].Y + m.rows[2].Z
}

// IsRotation reports whether m is a proper rotation within tol:
// mᵀm ≈ I element-wise and det(m) ≈ +1.
func (m Matrix3) IsRotation(tol float64) bool {
	if !m.Transpose().Product(m).AllClose(Identity(), 0, tol) {
		return false
	}

	return math.Abs(m.Det()-1) <= math.Abs(tol)
}
