// SPDX-License-Identifier: MIT

// Package isometry_test contains unit tests for rigid transforms.
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

// TestZeroValue documents that the zero value has a zero rotation.
func TestZeroValue(t *testing.T) {
	var iso isometry.Isometry
	require.Equal(t, matrix.Zero(), iso.Rotation())
	require.Equal(t, vector.Zero(), iso.Translation())
	require.Equal(t, vector.Zero(), iso.Transform(vector.New(5, 6, 7)))

	_, err := iso.Inverse()
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestIdentity(t *testing.T) {
	p := vector.New(1.5, -2, 3)
	require.Equal(t, p, isometry.Identity().Transform(p))

	inv, err := isometry.Identity().Inverse()
	require.NoError(t, err)
	require.True(t, inv.Equal(isometry.Identity()))
}

func TestFromTranslation(t *testing.T) {
	iso := isometry.FromTranslation(vector.New(1, 2, 3))
	require.Equal(t, vector.New(1, 2, 3), iso.Transform(vector.Zero()))
	require.Equal(t, vector.New(2, 2, 4), iso.Transform(vector.New(1, 0, 1)))
	require.Equal(t, matrix.Identity(), iso.Rotation())
}

func TestAccessors(t *testing.T) {
	r := matrix.New(0, -1, 0, 1, 0, 0, 0, 0, 1)
	tr := vector.New(4, 5, 6)
	iso := isometry.New(tr, r)
	require.Equal(t, r, iso.Rotation())
	require.Equal(t, tr, iso.Translation())

	iso.SetTranslation(vector.UnitX())
	iso.SetRotation(matrix.Identity())
	require.Equal(t, isometry.FromTranslation(vector.UnitX()), iso)

	// accessors return copies
	got := iso.Translation()
	got.ScaleInPlace(10)
	require.Equal(t, vector.UnitX(), iso.Translation())
}

// TestRotateAroundQuarterTurn is the canonical 90° about Z scenario.
func TestRotateAroundQuarterTurn(t *testing.T) {
	iso := isometry.RotateAround(vector.New(0, 0, 1), math.Pi/2)
	requireVecClose(t, vector.New(0, 1, 0), iso.Transform(vector.New(1, 0, 0)))
	requireVecClose(t, vector.New(-1, 0, 0), iso.Transform(vector.New(0, 1, 0)))
	require.Equal(t, vector.Zero(), iso.Translation())

	// axis length must not matter
	scaled := isometry.RotateAround(vector.New(0, 0, 7.5), math.Pi/2)
	requireIsoClose(t, iso, scaled)
}

// TestRotateAroundOracle compares the Rodrigues matrix with mgl64 quaternions.
func TestRotateAroundOracle(t *testing.T) {
	cases := []struct {
		axis  vector.Vector3
		angle float64
	}{
		{vector.UnitX(), 0.7},
		{vector.UnitY(), -2.1},
		{vector.New(1, 2, 2), math.Pi / 3},
		{vector.New(-0.3, 0.1, 5), 4},
		{vector.New(1, 1, 1), 0},
	}
	for _, tc := range cases {
		iso := isometry.RotateAround(tc.axis, tc.angle)
		q := mgl64.QuatRotate(tc.angle, mgl64.Vec3{tc.axis.X, tc.axis.Y, tc.axis.Z}.Normalize())
		want := fromMgl(q.Mat4().Mat3())
		require.True(t, iso.Rotation().AllClose(want, 0, tol), "axis %v angle %v", tc.axis, tc.angle)
		require.True(t, iso.Rotation().IsRotation(tol))
	}
}

// TestRotateAroundZeroAxis documents the unchecked precondition.
func TestRotateAroundZeroAxis(t *testing.T) {
	iso := isometry.RotateAround(vector.Zero(), 1)
	v, err := iso.Rotation().At(0, 0)
	require.NoError(t, err)
	require.True(t, math.IsNaN(v))
}

func TestFromEulerAngles(t *testing.T) {
	const roll, pitch, yaw = 0.3, -0.8, 1.9
	iso := isometry.FromEulerAngles(roll, pitch, yaw)

	want := fromMgl(mgl64.Rotate3DX(roll).Mul3(mgl64.Rotate3DY(pitch)).Mul3(mgl64.Rotate3DZ(yaw)))
	require.True(t, iso.Rotation().AllClose(want, 0, tol))
	require.Equal(t, vector.Zero(), iso.Translation())

	manual := isometry.RotateAround(vector.UnitX(), roll).
		Compose(isometry.RotateAround(vector.UnitY(), pitch)).
		Compose(isometry.RotateAround(vector.UnitZ(), yaw))
	require.True(t, iso.Equal(manual))

	// order matters
	reversed := isometry.RotateAround(vector.UnitZ(), yaw).
		Compose(isometry.RotateAround(vector.UnitY(), pitch)).
		Compose(isometry.RotateAround(vector.UnitX(), roll))
	require.False(t, iso.AllClose(reversed, 0, 1e-3))

	// single-axis cases reduce to RotateAround
	requireIsoClose(t, isometry.RotateAround(vector.UnitY(), pitch), isometry.FromEulerAngles(0, pitch, 0))
	requireVecClose(t, vector.New(0, 1, 0), isometry.FromEulerAngles(0, 0, math.Pi/2).Transform(vector.UnitX()))
}

// TestComposeSemantics checks that a∘b applies b first.
func TestComposeSemantics(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for n := 0; n < 50; n++ {
		a, b := randomIsometry(rng), randomIsometry(rng)
		p := randomVector(rng, 5)
		requireVecClose(t, a.Transform(b.Transform(p)), a.Compose(b).Transform(p))
	}

	rot := isometry.RotateAround(vector.UnitZ(), math.Pi/2)
	move := isometry.FromTranslation(vector.New(1, 0, 0))
	// translate then rotate: (0,0,0) -> (1,0,0) -> (0,1,0)
	requireVecClose(t, vector.New(0, 1, 0), rot.Compose(move).Transform(vector.Zero()))
	// rotate then translate: (0,0,0) -> (0,0,0) -> (1,0,0)
	requireVecClose(t, vector.New(1, 0, 0), move.Compose(rot).Transform(vector.Zero()))
}

// TestComposeUsesMatrixProduct pins R = R₁·R₂ (not the element-wise Mul).
func TestComposeUsesMatrixProduct(t *testing.T) {
	a := isometry.New(vector.New(1, 2, 3), matrix.New(0, -1, 0, 1, 0, 0, 0, 0, 1))
	b := isometry.New(vector.New(-1, 0, 4), matrix.New(1, 0, 0, 0, 0, -1, 0, 1, 0))
	c := a.Compose(b)
	require.Equal(t, a.Rotation().Product(b.Rotation()), c.Rotation())
	require.Equal(t, vector.New(1, 1, 7), c.Translation())
}

func TestComposeAssociative(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	for n := 0; n < 50; n++ {
		a, b, c := randomIsometry(rng), randomIsometry(rng), randomIsometry(rng)
		requireIsoClose(t, a.Compose(b).Compose(c), a.Compose(b.Compose(c)))
	}
}

func TestComposeInPlace(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	a, b := randomIsometry(rng), randomIsometry(rng)

	got := a
	got.ComposeInPlace(b)
	require.Equal(t, a.Compose(b), got)

	// self-composition reads the old value for both operands
	self := a
	self.ComposeInPlace(self)
	require.Equal(t, a.Compose(a), self)
}

// TestInverseRoundTrip checks I⁻¹∘I == id for valid rotations.
func TestInverseRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(14))
	for n := 0; n < 50; n++ {
		iso := randomIsometry(rng)
		inv, err := iso.Inverse()
		require.NoError(t, err)

		p := randomVector(rng, 100)
		requireVecClose(t, p, inv.Compose(iso).Transform(p))
		requireVecClose(t, p, iso.Compose(inv).Transform(p))
		requireIsoClose(t, isometry.Identity(), inv.Compose(iso))

		// for a proper rotation the inverse equals the transpose
		require.True(t, inv.Rotation().AllClose(iso.Rotation().Transpose(), 0, tol))
	}
}

// TestInverseNonOrthonormal documents the general-inverse choice: a scaled
// "rotation" is still inverted exactly as an affine map.
func TestInverseNonOrthonormal(t *testing.T) {
	iso := isometry.New(vector.New(2, 4, 6), matrix.New(2, 0, 0, 0, 4, 0, 0, 0, 0.5))
	inv, err := iso.Inverse()
	require.NoError(t, err)
	require.Equal(t, matrix.New(0.5, 0, 0, 0, 0.25, 0, 0, 0, 2), inv.Rotation())
	require.Equal(t, vector.New(-1, -1, -12), inv.Translation())

	p := vector.New(3, -1, 8)
	requireVecClose(t, p, inv.Transform(iso.Transform(p)))
}

func TestInverseSingular(t *testing.T) {
	iso := isometry.New(vector.UnitX(), matrix.Ones())
	_, err := iso.Inverse()
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestEqual(t *testing.T) {
	a := isometry.FromTranslation(vector.New(1, 2, 3))
	require.True(t, a.Equal(a))
	require.True(t, a.Equal(isometry.New(vector.New(1, 2, 3), matrix.Identity())))
	require.False(t, a.Equal(isometry.FromTranslation(vector.New(1, 2, 3+1e-9))))
	require.False(t, a.Equal(isometry.New(vector.New(1, 2, 3), matrix.Zero())))
}

func TestString(t *testing.T) {
	iso := isometry.FromTranslation(vector.New(1, 2, 3))
	require.Equal(t, "[T: (x: 1, y: 2, z: 3), R: [[1, 0, 0], [0, 1, 0], [0, 0, 1]]]", iso.String())

	third := isometry.FromTranslation(vector.New(1.0/3, 0, 0))
	require.Equal(t, "[T: (x: 0.333333333, y: 0, z: 0), R: [[1, 0, 0], [0, 1, 0], [0, 0, 1]]]", third.String())
}
