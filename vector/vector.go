// SPDX-License-Identifier: MIT

package vector

import (
	"math"
	"strconv"
	"strings"
)

// Epsilon is the absolute per-component tolerance used by Equal.
// It equals the float64 machine epsilon (2^-52).
const Epsilon = 0x1p-52

// Size is the number of components of a Vector3.
const Size = 3

// DefaultPrecision is the number of significant digits used by String.
const DefaultPrecision = 6

// Vector3 is a 3D vector of float64 components.
// The zero value is the zero vector.
type Vector3 struct {
	X, Y, Z float64
}

// New returns the vector (x, y, z).
func New(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Zero returns (0, 0, 0).
func Zero() Vector3 { return Vector3{} }

// UnitX returns (1, 0, 0).
func UnitX() Vector3 { return Vector3{X: 1} }

// UnitY returns (0, 1, 0).
func UnitY() Vector3 { return Vector3{Y: 1} }

// UnitZ returns (0, 0, 1).
func UnitZ() Vector3 { return Vector3{Z: 1} }

// ---------- in-place arithmetic ----------

// AddInPlace sets v = v + o.
func (v *Vector3) AddInPlace(o Vector3) {
	v.X += o.X
	v.Y += o.Y
	v.Z += o.Z
}

// SubInPlace sets v = v - o.
func (v *Vector3) SubInPlace(o Vector3) {
	v.X -= o.X
	v.Y -= o.Y
	v.Z -= o.Z
}

// MulInPlace multiplies v by o component by component.
func (v *Vector3) MulInPlace(o Vector3) {
	v.X *= o.X
	v.Y *= o.Y
	v.Z *= o.Z
}

// DivInPlace divides v by o component by component.
// A zero component in o yields ±Inf or NaN in the matching slot.
func (v *Vector3) DivInPlace(o Vector3) {
	v.X /= o.X
	v.Y /= o.Y
	v.Z /= o.Z
}

// AddScalarInPlace adds s to every component of v.
func (v *Vector3) AddScalarInPlace(s float64) {
	v.X += s
	v.Y += s
	v.Z += s
}

// SubScalarInPlace subtracts s from every component of v.
func (v *Vector3) SubScalarInPlace(s float64) {
	v.X -= s
	v.Y -= s
	v.Z -= s
}

// ScaleInPlace multiplies every component of v by s.
func (v *Vector3) ScaleInPlace(s float64) {
	v.X *= s
	v.Y *= s
	v.Z *= s
}

// DivScalarInPlace divides every component of v by s.
func (v *Vector3) DivScalarInPlace(s float64) {
	v.X /= s
	v.Y /= s
	v.Z /= s
}

// ---------- value arithmetic (copy, then in-place) ----------

// Add returns v + o.
func (v Vector3) Add(o Vector3) Vector3 {
	v.AddInPlace(o)
	return v
}

// Sub returns v - o.
func (v Vector3) Sub(o Vector3) Vector3 {
	v.SubInPlace(o)
	return v
}

// Mul returns the component-wise product of v and o.
func (v Vector3) Mul(o Vector3) Vector3 {
	v.MulInPlace(o)
	return v
}

// Div returns the component-wise quotient of v and o.
func (v Vector3) Div(o Vector3) Vector3 {
	v.DivInPlace(o)
	return v
}

// AddScalar returns v + (s, s, s).
func (v Vector3) AddScalar(s float64) Vector3 {
	v.AddScalarInPlace(s)
	return v
}

// SubScalar returns v - (s, s, s).
func (v Vector3) SubScalar(s float64) Vector3 {
	v.SubScalarInPlace(s)
	return v
}

// Scale returns s * v.
func (v Vector3) Scale(s float64) Vector3 {
	v.ScaleInPlace(s)
	return v
}

// DivScalar returns v / s.
func (v Vector3) DivScalar(s float64) Vector3 {
	v.DivScalarInPlace(s)
	return v
}

// Neg returns -v.
func (v Vector3) Neg() Vector3 { return v.Scale(-1) }

// ---------- products & norm ----------

// Dot returns the sum of component-wise products.
func (v Vector3) Dot(o Vector3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the right-handed cross product v × o:
//
//	(y1*z2 − z1*y2, z1*x2 − x1*z2, x1*y2 − y1*x2)
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Norm returns the Euclidean length sqrt(v·v). Norm of the zero vector is 0.
func (v Vector3) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// ---------- indexed access ----------

// At returns component i (0 → X, 1 → Y, 2 → Z).
func (v Vector3) At(i int) (float64, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	case 2:
		return v.Z, nil
	default:
		return 0, vectorErrorf(ctxAt, i, ErrOutOfRange)
	}
}

// Set assigns component i. On error v is left unchanged.
func (v *Vector3) Set(i int, val float64) error {
	switch i {
	case 0:
		v.X = val
	case 1:
		v.Y = val
	case 2:
		v.Z = val
	default:
		return vectorErrorf(ctxSet, i, ErrOutOfRange)
	}

	return nil
}

// Array returns the components as [X, Y, Z].
func (v Vector3) Array() [Size]float64 { return [Size]float64{v.X, v.Y, v.Z} }

// FromArray is the inverse of Array.
func FromArray(a [Size]float64) Vector3 { return Vector3{X: a[0], Y: a[1], Z: a[2]} }

// ---------- comparison ----------

// Equal reports whether every component of v and o differs by at most Epsilon.
// The tolerance is absolute, not relative.
func (v Vector3) Equal(o Vector3) bool {
	return math.Abs(v.X-o.X) <= Epsilon &&
		math.Abs(v.Y-o.Y) <= Epsilon &&
		math.Abs(v.Z-o.Z) <= Epsilon
}

// AllClose reports whether |v_i − o_i| ≤ atol + rtol*|o_i| for every component.
// Negative tolerances are treated as their absolute values. NaN is never close.
func (v Vector3) AllClose(o Vector3, rtol, atol float64) bool {
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	a, b := v.Array(), o.Array()
	for i := 0; i < Size; i++ {
		if !(math.Abs(a[i]-b[i]) <= atol+rtol*math.Abs(b[i])) {
			return false
		}
	}

	return true
}

// ---------- formatting ----------

// String renders v as "(x: <x>, y: <y>, z: <z>)" using DefaultPrecision.
func (v Vector3) String() string { return v.Text(DefaultPrecision) }

// Text renders v like String with prec significant digits (-1 for shortest).
func (v Vector3) Text(prec int) string {
	var b strings.Builder
	b.WriteString("(x: ")
	b.WriteString(FormatFloat(v.X, prec))
	b.WriteString(", y: ")
	b.WriteString(FormatFloat(v.Y, prec))
	b.WriteString(", z: ")
	b.WriteString(FormatFloat(v.Z, prec))
	b.WriteString(")")

	return b.String()
}

// FormatFloat formats f in %g style with prec significant digits.
// Shared by the matrix and isometry renderers so all three agree on layout.
func FormatFloat(f float64, prec int) string {
	return strconv.FormatFloat(f, 'g', prec, 64)
}
