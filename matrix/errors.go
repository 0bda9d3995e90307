// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every failure of the package is one of the sentinels below, optionally
// wrapped with call-site context via %w. Callers match with errors.Is.
// No method panics on user-triggered conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and grep-ability.
// Context (operation, shapes, indices) is added by the detection site with
// fmt.Errorf("...: %w", ErrX); errors.Is still matches the sentinel.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive,
	// or that an operation needing at least one cell was invoked on the empty matrix.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// At/Set MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned by Inverse when |det| is below Tolerance.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil *Dense was passed as an operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// shapeErrorf reports two operand shapes next to the sentinel, e.g.
// "Add: 1x2 vs 2x2: matrix: dimension mismatch".
func shapeErrorf(tag string, a, b Matrix, err error) error {
	return fmt.Errorf("%s: %dx%d vs %dx%d: %w", tag, a.Rows(), a.Cols(), b.Rows(), b.Cols(), err)
}
