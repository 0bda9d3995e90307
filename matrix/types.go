// SPDX-License-Identifier: MIT

// Package matrix: shared types and numeric constants.
package matrix

// Tolerance is the fixed absolute threshold used by Equal (cell comparison)
// and Inverse (singularity check).
const Tolerance = 1e-7

// Matrix represents a two-dimensional mutable array of float64 values.
// *Dense is the only implementation in this module; interop and render
// accept the interface so any bounds-checked grid can be converted or printed.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error
}
