// Package isometry is a small, fixed-dimension 3D linear-algebra kernel:
// vectors, 3×3 matrices and rigid-body transforms.
//
// 🚀 What is inside?
//
//	vector/   — Vector3: arithmetic, dot/cross, norm, epsilon-tolerant equality
//	matrix/   — Matrix3: row-wise arithmetic, determinant, closed-form inverse,
//	            true matrix/vector products, transpose
//	isometry/ — Isometry: rotation + translation, Rodrigues and Euler builders,
//	            composition, inversion, point transformation
//	chain/    — YAML-described transform chains applied to point batches
//	cmd/isometry — command-line front end for chain documents
//
// ✨ Guarantees
//
//   - Pure values – every type is copied by value; no shared state, no I/O in the core.
//   - No panics on user input – indexers return ErrOutOfRange, Inverse returns ErrSingular.
//   - Deterministic – closed-form kernels with fixed evaluation order.
//
// Layers depend only on the one below: isometry → matrix → vector.
//
// Quick example:
//
//	turn := isometry.RotateAround(vector.UnitZ(), math.Pi/2)
//	p := turn.Transform(vector.New(1, 0, 0)) // ≈ (0, 1, 0)
//
//	go get github.com/katalvlaran/isometry
package isometry
