// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Constructors with intention-revealing names (NewFromRows, NewIdentity).
//   - Non-mutating arithmetic: each facade clones its left operand, applies
//     the mutating primitive to the clone and returns it. Operands are never
//     modified.

package matrix

import "fmt"

// ---------- Constructors ----------

// NewFromRows builds a matrix from row slices, copying the values.
//
// Errors:
//   - ErrInvalidDimensions when rows is empty or the first row is empty.
//   - ErrDimensionMismatch when a row length differs from the first row.
//
// Complexity: O(r*c).
func NewFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("NewFromRows: %w", ErrInvalidDimensions)
	}
	cols := len(rows[0])
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("NewFromRows: row %d has %d values, want %d: %w", i, len(row), cols, ErrDimensionMismatch)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Errors: ErrInvalidDimensions if n <= 0.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1
	}

	return I, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
// The empty matrix yields the empty matrix.
func ZerosLike(m *Dense) *Dense {
	return newDenseZeroOK(m.r, m.c)
}

// ---------- Non-mutating arithmetic ----------

// Sum returns a + b as a new matrix. Errors as (*Dense).Add.
func Sum(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	out := a.Clone()
	if err := out.Add(b); err != nil {
		return nil, err
	}

	return out, nil
}

// Diff returns a - b as a new matrix. Errors as (*Dense).Sub.
func Diff(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	out := a.Clone()
	if err := out.Sub(b); err != nil {
		return nil, err
	}

	return out, nil
}

// Product returns a × b as a new matrix. Errors as (*Dense).Mul.
func Product(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out := a.Clone()
	if err := out.Mul(b); err != nil {
		return nil, err
	}

	return out, nil
}

// Scaled returns m·k as a new matrix.
func Scaled(m *Dense, k float64) *Dense {
	out := m.Clone()
	out.Scale(k)

	return out
}

// ScaledBy returns k·m as a new matrix; the commutative form of Scaled.
func ScaledBy(k float64, m *Dense) *Dense { return Scaled(m, k) }
