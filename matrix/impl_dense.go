// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep ownership explicit: Clone deep-copies, Move hands the buffer over and
//     leaves the source as the empty matrix.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Move: O(1).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context, the callsite
// indices and the receiver shape, e.g.
// "Dense.At(-1,-1) on 3x3: matrix: index out of range".
func (m *Dense) denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d) on %dx%d: %w", method, row, col, m.r, m.c, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// The zero value is the empty matrix: 0×0 with no storage and no
// addressable cells. It is a valid operand, equal to any other empty matrix.
type Dense struct {
	r, c int       // row and column counts (0,0 only for the empty matrix)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewEmpty returns the empty matrix (0×0, no storage).
// Equivalent to new(Dense); provided for intention-revealing call sites.
func NewEmpty() *Dense { return &Dense{} }

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Public constructor forbids empty dimensions; use NewEmpty for 0×0.
//
// Inputs:
//   - rows: positive number of rows
//   - cols: positive number of columns
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation, or rows*cols overflows int).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, err)
	}

	// make() zero-fills the buffer.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// validateShape rejects non-positive extents and shapes whose cell count
// does not fit in an int.
func validateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return ErrInvalidDimensions
	}
	if rows > math.MaxInt/cols {
		return fmt.Errorf("%dx%d cells overflow int: %w", rows, cols, ErrInvalidDimensions)
	}

	return nil
}

// newDenseZeroOK is an internal constructor that allows rows==0 or cols==0.
// Kernels use it so that operations on the empty matrix yield the empty matrix.
// Callers guarantee rows, cols >= 0.
func newDenseZeroOK(rows, cols int) *Dense {
	if rows == 0 || cols == 0 {
		return &Dense{}
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsEmpty reports whether m is the empty matrix.
func (m *Dense) IsEmpty() bool { return m.r == 0 || m.c == 0 }

// IsSquare reports whether Rows() == Cols(). The empty matrix counts as square.
func (m *Dense) IsSquare() bool { return m.r == m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns the bare sentinel; At/Set wrap it with coordinates.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at zero-based coordinates.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: load from flat buffer.
//
// Errors:
//   - ErrOutOfRange when row<0, col<0, row>=Rows() or col>=Cols(),
//     wrapped with the offending index and the matrix shape.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, m.denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Same bounds contract as At. Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return m.denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same shape and values).
// Mutations of the clone never affect m and vice versa.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	if m.IsEmpty() {
		return &Dense{}
	}
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Move transfers m's storage to a new *Dense and resets m to the empty matrix.
// No cells are copied. Never fails. Complexity: O(1).
func (m *Dense) Move() *Dense {
	out := &Dense{r: m.r, c: m.c, data: m.data}
	*m = Dense{}

	return out
}

// replaceWith swaps src's state into m. src must not be used afterwards.
// Kernels build a complete result first and then call replaceWith, so a
// failing operation never leaves m half-updated.
func (m *Dense) replaceWith(src *Dense) {
	m.r, m.c, m.data = src.r, src.c, src.data
}

// RowsData returns a deep copy of the cells as one slice per row.
// The empty matrix yields nil.
func (m *Dense) RowsData() [][]float64 {
	if m.IsEmpty() {
		return nil
	}
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// String renders rows as lines with comma-separated %g values, e.g. "[1, 2]\n[3, 4]\n".
// The empty matrix renders as "".
// Not for hot paths; intended for logs and debugging.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
