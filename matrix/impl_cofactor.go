// SPDX-License-Identifier: MIT

// Package matrix - cofactor expansion kernels.
//
// Determinant, Cofactors, Adjugate and Inverse are all built on Laplace
// (cofactor) expansion. The recursion is O(n!) in time; it is intended for
// small matrices and exact, easy-to-follow semantics, not for large inputs.

package matrix

import (
	"fmt"
	"math"
)

// minor returns the (n-1)×(n-1) submatrix of m with row `row` and column
// `col` removed; remaining rows and columns keep their relative order.
// Callers guarantee m is square with n >= 2 and valid indices.
// Complexity: O(n²).
func (m *Dense) minor(row, col int) *Dense {
	n := m.r - 1
	out := &Dense{r: n, c: n, data: make([]float64, 0, n*n)}
	var i, j int
	for i = 0; i < m.r; i++ {
		if i == row {
			continue
		}
		for j = 0; j < m.c; j++ {
			if j == col {
				continue
			}
			out.data = append(out.data, m.data[i*m.c+j])
		}
	}

	return out
}

// sign returns (-1)^k.
func sign(k int) float64 {
	if k%2 == 0 {
		return 1
	}

	return -1
}

// det is the unchecked recursive kernel behind Determinant.
func (m *Dense) det() float64 {
	switch m.r {
	case 0:
		return 0
	case 1:
		return m.data[0]
	case 2:
		return m.data[0]*m.data[3] - m.data[1]*m.data[2]
	}

	// Expand along the first column.
	var sum float64
	for i := 0; i < m.r; i++ {
		sum += sign(i) * m.data[i*m.c] * m.minor(i, 0).det()
	}

	return sum
}

// Determinant returns det(m) by recursive cofactor expansion.
// MAIN DESCRIPTION:
//   - Size 1: the single cell.
//   - Size 2: a·d − b·c.
//   - Size n > 2: Σ_i (-1)^i · m[i,0] · det(minor(i,0)).
//
// Behavior highlights:
//   - The empty matrix is square and has determinant 0.
//
// Errors:
//   - ErrNonSquare when Rows() != Cols().
//
// Determinism:
//   - Fixed expansion order (first column, top to bottom).
//
// Complexity:
//   - Time O(n!), Space O(n²) per recursion level.
//
// Notes:
//   - Do not feed large matrices: a 12×12 input already needs ~10^9 products.
func (m *Dense) Determinant() (float64, error) {
	if m != nil && m.IsEmpty() {
		return 0, nil
	}
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return m.det(), nil
}

// cofactors is the unchecked kernel behind Cofactors. m is square, n >= 1.
func (m *Dense) cofactors() *Dense {
	n := m.r
	out := newDenseZeroOK(n, n)
	if n == 1 {
		// The cofactor of a 1×1 matrix is the multiplicative identity.
		out.data[0] = 1

		return out
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			out.data[i*n+j] = sign(i+j) * m.minor(i, j).det()
		}
	}

	return out
}

// Cofactors returns the cofactor matrix C with C[i,j] = (-1)^(i+j)·det(minor(i,j)).
// For a 1×1 matrix the result is [[1]].
//
// Errors: ErrNonSquare, ErrInvalidDimensions (empty).
// Complexity: O(n² · (n-1)!).
func (m *Dense) Cofactors() (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}

	return m.cofactors(), nil
}

// Adjugate returns the transpose of the cofactor matrix.
// Errors and complexity as Cofactors.
func (m *Dense) Adjugate() (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return m.cofactors().Transpose(), nil
}

// Inverse returns m⁻¹ = adj(m) / det(m).
// MAIN DESCRIPTION:
//   - Compute det(m) first and reject |det| < Tolerance as singular.
//   - Size 1: [[1/a]] directly.
//   - Otherwise: cofactor matrix, scaled by 1/det, then transposed.
//
// Errors:
//   - ErrNonSquare from Determinant.
//   - ErrSingular when |det| < Tolerance; the message carries det. The empty
//     matrix has det 0 and is therefore singular.
//
// Complexity:
//   - Time O(n² · (n-1)!), dominated by the cofactor matrix.
func (m *Dense) Inverse() (*Dense, error) {
	d, err := m.Determinant()
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if math.Abs(d) < Tolerance {
		return nil, fmt.Errorf("%s: det=%g: %w", opInverse, d, ErrSingular)
	}

	if m.r == 1 {
		return &Dense{r: 1, c: 1, data: []float64{1 / m.data[0]}}, nil
	}
	res := m.cofactors()
	res.Scale(1 / d)

	return res.Transpose(), nil
}
