// SPDX-License-Identifier: MIT

package isometry

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/isometry/matrix"
	"github.com/katalvlaran/isometry/vector"
)

// DefaultPrecision is the number of significant digits used by String.
const DefaultPrecision = 9

// Isometry is a rigid transform: rotation followed by translation.
type Isometry struct {
	rotation    matrix.Matrix3
	translation vector.Vector3
}

// New returns the isometry p ↦ rotation·p + translation.
func New(translation vector.Vector3, rotation matrix.Matrix3) Isometry {
	return Isometry{rotation: rotation, translation: translation}
}

// Identity returns the neutral isometry.
func Identity() Isometry {
	return Isometry{rotation: matrix.Identity()}
}

// FromTranslation returns a pure translation by v.
func FromTranslation(v vector.Vector3) Isometry {
	return Isometry{rotation: matrix.Identity(), translation: v}
}

// RotateAround returns the rotation by radians about axis (right-hand rule),
// built with the Rodrigues formula. The axis is normalised internally; a
// zero-length axis is NOT checked and yields NaN components.
func RotateAround(axis vector.Vector3, radians float64) Isometry {
	u := axis.DivScalar(axis.Norm())
	c, s := math.Cos(radians), math.Sin(radians)
	t := 1 - c

	r := matrix.New(
		c+u.X*u.X*t, u.X*u.Y*t-u.Z*s, u.X*u.Z*t+u.Y*s,
		u.Y*u.X*t+u.Z*s, c+u.Y*u.Y*t, u.Y*u.Z*t-u.X*s,
		u.Z*u.X*t-u.Y*s, u.Z*u.Y*t+u.X*s, c+u.Z*u.Z*t,
	)

	return Isometry{rotation: r}
}

// FromEulerAngles returns Rx(roll) ∘ Ry(pitch) ∘ Rz(yaw).
// Applied to a point, yaw acts first and roll last. The order is fixed.
func FromEulerAngles(roll, pitch, yaw float64) Isometry {
	return RotateAround(vector.UnitX(), roll).
		Compose(RotateAround(vector.UnitY(), pitch)).
		Compose(RotateAround(vector.UnitZ(), yaw))
}

// Rotation returns a copy of the rotation matrix.
func (iso Isometry) Rotation() matrix.Matrix3 { return iso.rotation }

// Translation returns a copy of the translation vector.
func (iso Isometry) Translation() vector.Vector3 { return iso.translation }

// SetRotation replaces the rotation matrix. It is not validated.
func (iso *Isometry) SetRotation(r matrix.Matrix3) { iso.rotation = r }

// SetTranslation replaces the translation vector.
func (iso *Isometry) SetTranslation(t vector.Vector3) { iso.translation = t }

// Transform returns R·p + t.
func (iso Isometry) Transform(p vector.Vector3) vector.Vector3 {
	return iso.rotation.MatVec(p).Add(iso.translation)
}

// Compose returns iso ∘ o: o is applied first, then iso.
//
//	R = R₁·R₂
//	t = R₁·t₂ + t₁
func (iso Isometry) Compose(o Isometry) Isometry {
	return Isometry{
		rotation:    iso.rotation.Product(o.rotation),
		translation: iso.rotation.MatVec(o.translation).Add(iso.translation),
	}
}

// ComposeInPlace sets iso = iso ∘ o. Passing iso itself is safe.
func (iso *Isometry) ComposeInPlace(o Isometry) {
	*iso = iso.Compose(o)
}

// Inverse returns (−R⁻¹·t, R⁻¹), the exact inverse of the affine map.
// It wraps matrix.ErrSingular when R cannot be inverted (e.g. the zero value).
func (iso Isometry) Inverse() (Isometry, error) {
	inv, err := iso.rotation.Inverse()
	if err != nil {
		return Isometry{}, fmt.Errorf("Isometry.Inverse: %w", err)
	}

	return Isometry{
		rotation:    inv,
		translation: inv.MatVec(iso.translation).Scale(-1),
	}, nil
}

// Equal compares rotation and translation with their epsilon-tolerant Equal.
func (iso Isometry) Equal(o Isometry) bool {
	return iso.rotation.Equal(o.rotation) && iso.translation.Equal(o.translation)
}

// AllClose is the looser counterpart of Equal (|a-b| ≤ atol + rtol*|b| per element).
func (iso Isometry) AllClose(o Isometry, rtol, atol float64) bool {
	return iso.rotation.AllClose(o.rotation, rtol, atol) &&
		iso.translation.AllClose(o.translation, rtol, atol)
}

// String renders "[T: <translation>, R: <rotation>]" with DefaultPrecision digits.
func (iso Isometry) String() string { return iso.Text(DefaultPrecision) }

// Text renders like String with prec significant digits (-1 for shortest).
func (iso Isometry) Text(prec int) string {
	var b strings.Builder
	b.WriteString("[T: ")
	b.WriteString(iso.translation.Text(prec))
	b.WriteString(", R: ")
	b.WriteString(iso.rotation.Text(prec))
	b.WriteString("]")

	return b.String()
}
