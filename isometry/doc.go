// SPDX-License-Identifier: MIT

// Package isometry provides Isometry, a rigid transform p ↦ R·p + t made of a
// rotation matrix R (matrix.Matrix3) and a translation t (vector.Vector3).
//
// Construction:
//
//	isometry.Identity()                         // R = I, t = 0
//	isometry.FromTranslation(t)                 // R = I
//	isometry.RotateAround(axis, radians)        // Rodrigues, t = 0
//	isometry.FromEulerAngles(roll, pitch, yaw)  // Rx(roll) ∘ Ry(pitch) ∘ Rz(yaw)
//	isometry.New(t, R)                          // raw, R is not validated
//
// The zero value Isometry{} has a ZERO rotation matrix, not the identity. It
// maps every point to its translation and cannot be inverted. Use Identity()
// when a neutral element is needed.
//
// Composition reads right to left: a.Compose(b) applies b first, then a, and
// yields (R_a·R_b, R_a·t_b + t_a).
//
// Inverse uses the general 3×3 matrix inverse of R. For a proper rotation that
// equals the transpose; for a hand-built non-orthonormal R it is still the exact
// algebraic inverse of the affine map, and it fails with matrix.ErrSingular when
// |det R| < matrix.SingularityThreshold.
//
// Unchecked preconditions: RotateAround with a zero-length axis produces NaN
// components, and New accepts any matrix as "rotation".
package isometry
