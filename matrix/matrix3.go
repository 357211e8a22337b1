// SPDX-License-Identifier: MIT

// Package matrix - Matrix3 storage, constructors & safe accessors.
//
// Purpose:
//   - Store a 3×3 matrix as three row vectors (row-major, rows addressable 0..2).
//   - Guarantee safety at the public surface: indexers return errors instead of panicking.
//   - Expose read-only constants as constructor functions (no mutation path).

package matrix

import (
	"strings"

	"github.com/katalvlaran/isometry/vector"
)

// Size is the number of rows (and columns) of a Matrix3.
const Size = vector.Size

// ---------- Formatting literals ----------
const (
	_fmtRowsOpen = "[["
	_fmtRowSep   = "], ["
	_fmtRowsEnd  = "]]"
	_fmtSep      = ", "
)

// Matrix3 is a 3×3 matrix of float64 values held as three row vectors.
// The zero value is the zero matrix.
type Matrix3 struct {
	rows [Size]vector.Vector3
}

// New builds a matrix from nine values in row-major order:
//
//	| a1 a2 a3 |
//	| b1 b2 b3 |
//	| c1 c2 c3 |
func New(a1, a2, a3, b1, b2, b3, c1, c2, c3 float64) Matrix3 {
	return Matrix3{rows: [Size]vector.Vector3{
		{X: a1, Y: a2, Z: a3},
		{X: b1, Y: b2, Z: b3},
		{X: c1, Y: c2, Z: c3},
	}}
}

// FromRows builds a matrix whose rows are r0, r1 and r2.
func FromRows(r0, r1, r2 vector.Vector3) Matrix3 {
	return Matrix3{rows: [Size]vector.Vector3{r0, r1, r2}}
}

// FromCols builds a matrix whose columns are c0, c1 and c2.
func FromCols(c0, c1, c2 vector.Vector3) Matrix3 {
	return FromRows(c0, c1, c2).Transpose()
}

// Identity returns I₃.
func Identity() Matrix3 { return New(1, 0, 0, 0, 1, 0, 0, 0, 1) }

// Ones returns the matrix with every element equal to 1.
func Ones() Matrix3 { return New(1, 1, 1, 1, 1, 1, 1, 1, 1) }

// Zero returns the zero matrix.
func Zero() Matrix3 { return Matrix3{} }

// Row returns a copy of row i.
func (m Matrix3) Row(i int) (vector.Vector3, error) {
	if err := validateIndex(i); err != nil {
		return vector.Vector3{}, indexErrorf(ctxRow, i, err)
	}

	return m.rows[i], nil
}

// SetRow replaces row i with r.
func (m *Matrix3) SetRow(i int, r vector.Vector3) error {
	if err := validateIndex(i); err != nil {
		return indexErrorf(ctxSetRow, i, err)
	}
	m.rows[i] = r

	return nil
}

// Col returns a copy of column j. Columns have no storage of their own.
func (m Matrix3) Col(j int) (vector.Vector3, error) {
	if err := validateIndex(j); err != nil {
		return vector.Vector3{}, indexErrorf(ctxCol, j, err)
	}

	return m.col(j), nil
}

// col assumes j is already validated.
func (m Matrix3) col(j int) vector.Vector3 {
	a := m.Array()
	return vector.New(a[0][j], a[1][j], a[2][j])
}

// At returns the element at row i, column j.
func (m Matrix3) At(i, j int) (float64, error) {
	if err := validateCell(i, j); err != nil {
		return 0, cellErrorf(ctxAt, i, j, err)
	}

	return m.rows[i].At(j)
}

// Set assigns v at row i, column j. On error m is left unchanged.
func (m *Matrix3) Set(i, j int, v float64) error {
	if err := validateCell(i, j); err != nil {
		return cellErrorf(ctxSet, i, j, err)
	}

	return m.rows[i].Set(j, v)
}

// Array returns the nine elements as [row][col].
func (m Matrix3) Array() [Size][Size]float64 {
	return [Size][Size]float64{m.rows[0].Array(), m.rows[1].Array(), m.rows[2].Array()}
}

// Equal reports row-wise vector.Equal on all three rows.
func (m Matrix3) Equal(o Matrix3) bool {
	return m.rows[0].Equal(o.rows[0]) &&
		m.rows[1].Equal(o.rows[1]) &&
		m.rows[2].Equal(o.rows[2])
}

// AllClose reports whether every element satisfies |a-b| ≤ atol + rtol*|b|.
func (m Matrix3) AllClose(o Matrix3, rtol, atol float64) bool {
	for i := 0; i < Size; i++ {
		if !m.rows[i].AllClose(o.rows[i], rtol, atol) {
			return false
		}
	}

	return true
}

// String renders m as "[[a1, a2, a3], [b1, b2, b3], [c1, c2, c3]]".
func (m Matrix3) String() string { return m.Text(vector.DefaultPrecision) }

// Text renders m like String with prec significant digits (-1 for shortest).
func (m Matrix3) Text(prec int) string {
	var b strings.Builder
	var i, j int
	b.WriteString(_fmtRowsOpen)
	for i = 0; i < Size; i++ {
		if i > 0 {
			b.WriteString(_fmtRowSep)
		}
		row := m.rows[i].Array()
		for j = 0; j < Size; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(vector.FormatFloat(row[j], prec))
		}
	}
	b.WriteString(_fmtRowsEnd)

	return b.String()
}
