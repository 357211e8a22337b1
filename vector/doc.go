// SPDX-License-Identifier: MIT

// Package vector provides Vector3, a three-component float64 value type.
//
// Every arithmetic operation exists in two flavours:
//
//   - value methods (Add, Sub, Mul, Div, Scale, DivScalar) return a new Vector3
//     and leave the receiver untouched;
//   - pointer methods (AddInPlace, ..., DivScalarInPlace) mutate the receiver
//     with identical semantics.
//
// Mul and Div are component-wise. Scale and DivScalar broadcast a scalar.
//
// Equality is deliberately tight: Equal compares components with a fixed
// absolute tolerance of Epsilon (float64 machine epsilon). Use AllClose when a
// looser, relative comparison is required.
//
// Indexed access goes through At/Set, which return ErrOutOfRange for any index
// outside [0,2] instead of panicking.
//
// NaN and ±Inf are not rejected; they propagate under IEEE-754 rules.
package vector
