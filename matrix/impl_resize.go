// SPDX-License-Identifier: MIT

package matrix

import "fmt"

const (
	ctxSetRows = "SetRows"
	ctxSetCols = "SetCols"
)

// SetRows changes the row count to r.
// Rows that exist in both shapes keep their values, new rows are zero,
// rows past r are dropped. The new buffer is built completely before it
// replaces the old one.
//
// Errors:
//   - ErrInvalidDimensions if r <= 0, if r×Cols() overflows int, or if m
//     is empty (the resulting r×0 shape has no cells). m is unchanged on error.
//
// Complexity: O(r*c).
func (m *Dense) SetRows(r int) error {
	if err := validateShape(r, m.c); err != nil {
		return fmt.Errorf("Dense.%s(%d) on %dx%d: %w", ctxSetRows, r, m.r, m.c, err)
	}
	m.replaceWith(m.resized(r, m.c))

	return nil
}

// SetCols changes the column count to c. Same contract as SetRows, per column.
func (m *Dense) SetCols(c int) error {
	if err := validateShape(m.r, c); err != nil {
		return fmt.Errorf("Dense.%s(%d) on %dx%d: %w", ctxSetCols, c, m.r, m.c, err)
	}
	m.replaceWith(m.resized(m.r, c))

	return nil
}

// resized returns a fresh rows×cols copy of m: the overlap of the old and
// new index ranges is copied, everything else stays zero.
func (m *Dense) resized(rows, cols int) *Dense {
	out := newDenseZeroOK(rows, cols)
	keepR := min(rows, m.r)
	keepC := min(cols, m.c)
	for i := 0; i < keepR; i++ {
		copy(out.data[i*cols:i*cols+keepC], m.data[i*m.c:i*m.c+keepC])
	}

	return out
}
