// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Deterministic fixtures for kernels.
//   • Bridges to mgl64, used as an independent oracle.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/katalvlaran/isometry/matrix"
	"github.com/katalvlaran/isometry/vector"
	"github.com/stretchr/testify/require"
)

// oracleTol is the element-wise tolerance used when comparing against mgl64.
const oracleTol = 1e-12

// toMgl converts a Matrix3 into mgl64's column-major Mat3.
func toMgl(t *testing.T, m matrix.Matrix3) mgl64.Mat3 {
	t.Helper()
	a := m.Array()

	return mgl64.Mat3FromRows(
		mgl64.Vec3{a[0][0], a[0][1], a[0][2]},
		mgl64.Vec3{a[1][0], a[1][1], a[1][2]},
		mgl64.Vec3{a[2][0], a[2][1], a[2][2]},
	)
}

// fromMgl converts an mgl64.Mat3 back to Matrix3.
func fromMgl(m mgl64.Mat3) matrix.Matrix3 {
	return matrix.New(
		m.At(0, 0), m.At(0, 1), m.At(0, 2),
		m.At(1, 0), m.At(1, 1), m.At(1, 2),
		m.At(2, 0), m.At(2, 1), m.At(2, 2),
	)
}

// RandomMatrix returns a Matrix3 with entries uniform in [-1, 1).
func RandomMatrix(rng *rand.Rand) matrix.Matrix3 {
	var v [9]float64
	for i := range v {
		v[i] = 2*rng.Float64() - 1
	}

	return matrix.New(v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7], v[8])
}

// RequireClose fails the test unless got and want agree element-wise within tol.
func RequireClose(t *testing.T, want, got matrix.Matrix3, tol float64) {
	t.Helper()
	require.True(t, got.AllClose(want, 0, tol), "want %s\n got %s", want.Text(-1), got.Text(-1))
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix3, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// MustRow reads row i or fails the test.
func MustRow(t *testing.T, m matrix.Matrix3, i int) vector.Vector3 {
	t.Helper()
	r, err := m.Row(i)
	require.NoError(t, err)

	return r
}
