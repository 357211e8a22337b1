// SPDX-License-Identifier: MIT

package isometry_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/katalvlaran/isometry/isometry"
	"github.com/katalvlaran/isometry/matrix"
	"github.com/katalvlaran/isometry/vector"
	"github.com/stretchr/testify/require"
)

// tol is the element-wise tolerance for results that go through trig functions.
const tol = 1e-9

// fromMgl converts an mgl64.Mat3 to Matrix3.
func fromMgl(m mgl64.Mat3) matrix.Matrix3 {
	return matrix.New(
		m.At(0, 0), m.At(0, 1), m.At(0, 2),
		m.At(1, 0), m.At(1, 1), m.At(1, 2),
		m.At(2, 0), m.At(2, 1), m.At(2, 2),
	)
}

// randomVector returns a vector with components uniform in [-scale, scale).
func randomVector(rng *rand.Rand, scale float64) vector.Vector3 {
	return vector.New(
		scale*(2*rng.Float64()-1),
		scale*(2*rng.Float64()-1),
		scale*(2*rng.Float64()-1),
	)
}

// randomIsometry returns a rotation about a random axis followed by a random translation.
func randomIsometry(rng *rand.Rand) isometry.Isometry {
	axis := randomVector(rng, 1).Add(vector.New(0, 0, 2)) // keep away from zero length
	iso := isometry.RotateAround(axis, 2*math.Pi*rng.Float64())
	iso.SetTranslation(randomVector(rng, 10))

	return iso
}

// requireVecClose fails unless got ≈ want within tol.
func requireVecClose(t *testing.T, want, got vector.Vector3) {
	t.Helper()
	require.True(t, got.AllClose(want, 0, tol), "want %s\n got %s", want.Text(-1), got.Text(-1))
}

// requireIsoClose fails unless got ≈ want within tol.
func requireIsoClose(t *testing.T, want, got isometry.Isometry) {
	t.Helper()
	require.True(t, got.AllClose(want, 0, tol), "want %s\n got %s", want.Text(-1), got.Text(-1))
}
