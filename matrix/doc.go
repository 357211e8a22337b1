// SPDX-License-Identifier: MIT

// Package matrix provides Matrix3, a 3×3 float64 matrix stored as three row
// vectors (vector.Vector3).
//
// The package keeps two multiplication families strictly apart:
//
//   - Mul / MulInPlace are ROW-WISE element products (the Hadamard product),
//     mirroring Add/Sub/Div which also operate row by row;
//   - Product (matrix × matrix) and MatVec (matrix × vector) are the true
//     linear-algebra products built from row·column dot products.
//
// Inverse uses the closed-form adjugate / determinant and refuses matrices with
// |det| < SingularityThreshold by returning ErrSingular.
//
// Row, Col and At return copies; SetRow and Set write through the receiver.
// Every indexer returns ErrOutOfRange for indices outside [0,2].
//
// Matrix3 is a plain value: copying it copies all nine components, and no
// method retains a reference to its receiver.
package matrix
