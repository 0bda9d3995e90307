// Package matrix implements a dense, real-valued matrix with exact,
// dependency-free linear algebra.
//
// The package provides:
//
//   - Dense: a row-major float64 grid with bounds-checked At/Set, deep Clone,
//     ownership-transferring Move and build-then-swap resizing (SetRows, SetCols).
//   - Arithmetic in three flavours: mutating primitives (Add, Sub, Scale, Mul),
//     chaining compound forms (AddAssign, ...) and non-mutating facades
//     (Sum, Diff, Product, Scaled, ScaledBy).
//   - Transpose and tolerance-based Equal (Tolerance = 1e-7).
//   - Determinant, Cofactors, Adjugate and Inverse via recursive cofactor
//     expansion. These are O(n!) and meant for small matrices.
//
// All failures are sentinel errors (ErrInvalidDimensions, ErrOutOfRange,
// ErrDimensionMismatch, ErrNonSquare, ErrSingular) wrapped with context;
// match them with errors.Is. A failing call never leaves its receiver
// partially modified.
//
// A *Dense is not safe for concurrent mutation; synchronise externally.
package matrix
