// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Row-wise element kernels: each operation applies the matching vector
//     operation to row 0, row 1 and row 2 independently.
//   - Value methods copy the receiver and delegate to the in-place form, so both
//     flavours share one loop.
//
// Notes:
//   - Mul is the Hadamard (element-wise) product. Use Product for the matrix product.

package matrix

import "github.com/katalvlaran/isometry/vector"

// eachRow applies fn to every row of m with the matching row of o.
func (m *Matrix3) eachRow(o Matrix3, fn func(r *vector.Vector3, x vector.Vector3)) {
	for i := 0; i < Size; i++ {
		fn(&m.rows[i], o.rows[i])
	}
}

// eachRowScalar applies fn to every row of m.
func (m *Matrix3) eachRowScalar(fn func(r *vector.Vector3)) {
	for i := 0; i < Size; i++ {
		fn(&m.rows[i])
	}
}

// AddInPlace sets m = m + o.
func (m *Matrix3) AddInPlace(o Matrix3) { m.eachRow(o, (*vector.Vector3).AddInPlace) }

// SubInPlace sets m = m - o.
func (m *Matrix3) SubInPlace(o Matrix3) { m.eachRow(o, (*vector.Vector3).SubInPlace) }

// MulInPlace multiplies m by o element by element.
func (m *Matrix3) MulInPlace(o Matrix3) { m.eachRow(o, (*vector.Vector3).MulInPlace) }

// DivInPlace divides m by o element by element.
func (m *Matrix3) DivInPlace(o Matrix3) { m.eachRow(o, (*vector.Vector3).DivInPlace) }

// AddScalarInPlace adds s to every element of m.
func (m *Matrix3) AddScalarInPlace(s float64) {
	m.eachRowScalar(func(r *vector.Vector3) { r.AddScalarInPlace(s) })
}

// SubScalarInPlace subtracts s from every element of m.
func (m *Matrix3) SubScalarInPlace(s float64) {
	m.eachRowScalar(func(r *vector.Vector3) { r.SubScalarInPlace(s) })
}

// ScaleInPlace multiplies every element of m by s.
func (m *Matrix3) ScaleInPlace(s float64) {
	m.eachRowScalar(func(r *vector.Vector3) { r.ScaleInPlace(s) })
}

// DivScalarInPlace divides every element of m by s.
func (m *Matrix3) DivScalarInPlace(s float64) {
	m.eachRowScalar(func(r *vector.Vector3) { r.DivScalarInPlace(s) })
}

// Add returns m + o.
func (m Matrix3) Add(o Matrix3) Matrix3 {
	m.AddInPlace(o)
	return m
}

// Sub returns m - o.
func (m Matrix3) Sub(o Matrix3) Matrix3 {
	m.SubInPlace(o)
	return m
}

// Mul returns the element-wise product m ⊙ o. It is NOT the matrix product.
func (m Matrix3) Mul(o Matrix3) Matrix3 {
	m.MulInPlace(o)
	return m
}

// Div returns the element-wise quotient of m and o.
func (m Matrix3) Div(o Matrix3) Matrix3 {
	m.DivInPlace(o)
	return m
}

// AddScalar returns m with s added to every element.
func (m Matrix3) AddScalar(s float64) Matrix3 {
	m.AddScalarInPlace(s)
	return m
}

// SubScalar returns m with s subtracted from every element.
func (m Matrix3) SubScalar(s float64) Matrix3 {
	m.SubScalarInPlace(s)
	return m
}

// Scale returns s * m.
func (m Matrix3) Scale(s float64) Matrix3 {
	m.ScaleInPlace(s)
	return m
}

// DivScalar returns m / s.
func (m Matrix3) DivScalar(s float64) Matrix3 {
	m.DivScalarInPlace(s)
	return m
}
