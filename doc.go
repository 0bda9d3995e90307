// Package densemat is a small dense-matrix toolkit.
//
// The work happens in the subpackages:
//
//   - matrix: the Dense type with shape-checked arithmetic, transpose,
//     tolerant equality and cofactor-expansion determinant, adjugate and
//     inverse.
//   - interop: conversion to and from gonum's mat.Dense.
//   - cmd/matcalc: evaluate a TOML/YAML/JSON job file from the shell.
//
// Quick start:
//
//	a, _ := matrix.NewFromRows([][]float64{{2, 5, 7}, {6, 3, 4}, {5, -2, -3}})
//	inv, err := a.Inverse()
//	if errors.Is(err, matrix.ErrSingular) {
//		// not invertible
//	}
//	fmt.Print(inv)
//
// Determinant and inverse use plain Laplace expansion, which is O(n!).
// They are meant for small matrices.
package densemat
