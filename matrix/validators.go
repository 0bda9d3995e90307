// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for operand checks.
//  - Keep kernels minimal by delegating nil/shape/square checks here.
//  - Return sentinels wrapped with the operand shapes so call sites only add their tag.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing on success.

package matrix

import "fmt"

// ValidateNotNil ensures the operand is a non-nil *Dense.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions (Add/Sub).
// Returns ErrNilMatrix or ErrDimensionMismatch, the latter carrying both shapes.
func ValidateSameShape(a, b *Dense) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.r != b.r || a.c != b.c {
		return shapeErrorf("ValidateSameShape", a, b, ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateMulCompatible(a, b *Dense) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.c != b.r {
		return shapeErrorf("ValidateMulCompatible", a, b, ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols) and not empty.
// Errors: ErrNilMatrix, ErrInvalidDimensions (empty), ErrNonSquare.
// AI-Hints: Use before determinant/cofactor/inverse kernels.
func ValidateSquare(m *Dense) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.r != m.c {
		return fmt.Errorf("ValidateSquare: %dx%d: %w", m.r, m.c, ErrNonSquare)
	}
	if m.r == 0 {
		return fmt.Errorf("ValidateSquare: empty matrix: %w", ErrInvalidDimensions)
	}

	return nil
}
