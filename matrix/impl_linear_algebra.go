// SPDX-License-Identifier: MIT
// Package matrix: arithmetic kernels on *Dense.
//
// Purpose:
//   - Mutating primitives (Add, Sub, Scale, Mul) that validate first and only
//     then touch the receiver.
//   - Compound forms (AddAssign, ...) that delegate to a primitive and return
//     the receiver for chaining.
//   - Transpose and tolerance-based Equal.
//
// Notes:
//   - Non-mutating forms (Sum, Diff, Product, Scaled, ScaledBy) live in api.go
//     and are built as clone + primitive.
//   - All loops walk in fixed i→j(→k) order, so results are deterministic.

package matrix

import "math"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opDeterminant = "Determinant"
	opCofactors   = "Cofactors"
	opAdjugate    = "Adjugate"
	opInverse     = "Inverse"
)

// addSub computes m = m + sign*b in place for sign ∈ {+1, -1}.
// Shared by Add/Sub: one validation path, one flat loop.
func (m *Dense) addSub(b *Dense, sign float64, opTag string) error {
	if m == nil {
		return matrixErrorf(opTag, ErrNilMatrix)
	}
	if err := ValidateSameShape(m, b); err != nil {
		return matrixErrorf(opTag, err)
	}
	for idx := range m.data { // deterministic 0..n-1
		m.data[idx] += sign * b.data[idx]
	}

	return nil
}

// Add computes m = m + b element-wise, in place.
//
// Errors:
//   - ErrDimensionMismatch if the shapes differ (m is unchanged).
//   - ErrNilMatrix if b is nil.
//
// Complexity: O(r*c).
func (m *Dense) Add(b *Dense) error { return m.addSub(b, +1, opAdd) }

// Sub computes m = m - b element-wise, in place. Same contract as Add.
func (m *Dense) Sub(b *Dense) error { return m.addSub(b, -1, opSub) }

// Scale multiplies every cell by k, in place. Never fails.
func (m *Dense) Scale(k float64) {
	for idx := range m.data {
		m.data[idx] *= k
	}
}

// Mul replaces m with the matrix product m × b.
// MAIN DESCRIPTION:
//   - Standard row-by-column product, result shape m.Rows() × b.Cols().
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (m.Cols() == b.Rows()).
//   - Stage 2: naive i→j→k accumulation into a fresh buffer.
//   - Stage 3: swap the result into m.
//
// Behavior highlights:
//   - b may be m itself: the product is computed from the untouched operands
//     before the swap.
//
// Errors:
//   - ErrDimensionMismatch when m.Cols() != b.Rows() (m is unchanged).
//   - ErrNilMatrix if b is nil.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c) for the result.
func (m *Dense) Mul(b *Dense) error {
	if m == nil {
		return matrixErrorf(opMul, ErrNilMatrix)
	}
	if err := ValidateMulCompatible(m, b); err != nil {
		return matrixErrorf(opMul, err)
	}

	rows, inner, cols := m.r, m.c, b.c
	res := newDenseZeroOK(rows, cols)
	var i, j, k int
	var sum float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			sum = 0
			for k = 0; k < inner; k++ {
				sum += m.data[i*inner+k] * b.data[k*cols+j]
			}
			res.data[i*cols+j] = sum
		}
	}
	m.replaceWith(res)

	return nil
}

// AddAssign is the compound form of Add: it returns m so calls can chain.
// On error it returns (nil, err) and m is unchanged.
func (m *Dense) AddAssign(b *Dense) (*Dense, error) {
	if err := m.Add(b); err != nil {
		return nil, err
	}

	return m, nil
}

// SubAssign is the compound form of Sub.
func (m *Dense) SubAssign(b *Dense) (*Dense, error) {
	if err := m.Sub(b); err != nil {
		return nil, err
	}

	return m, nil
}

// MulAssign is the compound form of Mul.
func (m *Dense) MulAssign(b *Dense) (*Dense, error) {
	if err := m.Mul(b); err != nil {
		return nil, err
	}

	return m, nil
}

// ScaleAssign is the compound form of Scale.
func (m *Dense) ScaleAssign(k float64) *Dense {
	m.Scale(k)

	return m
}

// Transpose returns a new Cols()×Rows() matrix t with t[j,i] = m[i,j].
// m is never mutated. The empty matrix transposes to the empty matrix.
// Complexity: O(r*c).
func (m *Dense) Transpose() *Dense {
	res := newDenseZeroOK(m.c, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return res
}

// Equal reports whether m and other have the same shape and every pair of
// corresponding cells differs by at most Tolerance.
//
// Two empty matrices are equal. Equal is reflexive and symmetric but not
// transitive: a≈b and b≈c may hold while a and c differ by up to 2*Tolerance.
// A nil other is equal to nothing.
//
// Complexity: O(r*c), stops at the first differing cell.
func (m *Dense) Equal(other *Dense) bool {
	if other == nil {
		return false
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for idx := range m.data {
		// Written as !(d <= tol) so that a NaN cell never compares equal.
		if !(math.Abs(m.data[idx]-other.data[idx]) <= Tolerance) {
			return false
		}
	}

	return true
}
