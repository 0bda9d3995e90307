// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernel tests.
//   • Keep all data finite and well-separated so tolerance-based Equal is unambiguous.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/densemat/matrix"
)

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustRows BUILDS a *Dense from literal rows or fails the test.
// Implementation:
//   - Stage 1: matrix.NewFromRows(rows).
//   - Stage 2: t.Fatalf on error.
//
// Notes:
//   - Prefer for small exact fixtures written as [][]float64 literals.
func MustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		t.Fatalf("NewFromRows(%v): %v", rows, err)
	}

	return m
}

// MustIdentity RETURNS I_n or fails the test.
func MustIdentity(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return m
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t testing.TB, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// RandomFill FILLS m with deterministic U(-1,1) values by seed.
func RandomFill(t testing.TB, m *matrix.Dense, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	r, c := m.Shape()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err := m.Set(i, j, rng.Float64()*2-1); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}
}

// RequireEqual fails with both renderings when !want.Equal(got).
func RequireEqual(t testing.TB, want, got *matrix.Dense) {
	t.Helper()
	if !want.Equal(got) {
		t.Fatalf("matrices differ\nwant:\n%sgot:\n%s", want, got)
	}
}

// Fixtures shared across files.
var (
	// invertible3 has det = -1 and an integer inverse.
	invertible3 = [][]float64{
		{2, 5, 7},
		{6, 3, 4},
		{5, -2, -3},
	}
	invertible3Inverse = [][]float64{
		{1, -1, 1},
		{-38, 41, -34},
		{27, -29, 24},
	}
	// singular3 has det = 0 (rows in arithmetic progression).
	singular3 = [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
)
