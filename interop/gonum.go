// SPDX-License-Identifier: MIT

// Package interop converts between *matrix.Dense and gonum's mat types.
//
// Conversions always copy: the returned value never shares storage with its
// source. The empty matrix maps to the zero-value gonum Dense and back.
package interop

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/densemat/matrix"
)

// ToGonum copies m into a new *mat.Dense.
// A nil or empty m yields an empty (zero-value) *mat.Dense.
// Complexity: O(r*c).
func ToGonum(m *matrix.Dense) *mat.Dense {
	if m == nil || m.IsEmpty() {
		return &mat.Dense{}
	}
	r, c := m.Shape()
	flat := make([]float64, 0, r*c)
	for _, row := range m.RowsData() {
		flat = append(flat, row...)
	}

	return mat.NewDense(r, c, flat)
}

// FromGonum copies any gonum mat.Matrix into a new *matrix.Dense.
// A nil or 0×0 source yields the empty matrix.
//
// Errors:
//   - matrix.ErrInvalidDimensions for degenerate r×0 / 0×c sources.
//
// Complexity: O(r*c).
func FromGonum(g mat.Matrix) (*matrix.Dense, error) {
	if g == nil {
		return matrix.NewEmpty(), nil
	}
	r, c := g.Dims()
	if r == 0 && c == 0 {
		return matrix.NewEmpty(), nil
	}
	out, err := matrix.NewDense(r, c)
	if err != nil {
		return nil, fmt.Errorf("interop.FromGonum: %w", err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err = out.Set(i, j, g.At(i, j)); err != nil {
				return nil, fmt.Errorf("interop.FromGonum: %w", err)
			}
		}
	}

	return out, nil
}
