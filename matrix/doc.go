// SPDX-License-Identifier: MIT

// Package matrix provides a small, deterministic dense linear-algebra layer.
//
// The matrix package provides:
//
//   - Matrix, a minimal interface over a 2D array of float64 values with
//     bounds-checked At/Set and deep Clone.
//   - Dense, a row-major implementation backed by one flat slice.
//   - Kernels that always allocate a fresh result and never mutate operands:
//     Sub, Mul, Transpose, Scale, DivScalar.
//   - Row-wise L2 normalization (NormalizeRowsL2), tolerance comparison (AllClose)
//     and norms (FrobeniusNorm, plus SingularValues and SpectralNorm through
//     gonum's SVD).
//
// Every kernel has a *Dense fast path operating on the flat buffer and a
// generic At/Set fallback with the same fixed loop order, so results are
// reproducible bit for bit across runs.
//
// Errors are package sentinels (ErrDimensionMismatch, ErrNilMatrix, ...)
// wrapped with the operation name; match them with errors.Is.
//
// NaN and ±Inf are stored and propagated like any other value. Use
// ValidateFinite at ingestion boundaries when finite data is required;
// SingularValues rejects non-finite input with ErrSVDFailed.
package matrix
