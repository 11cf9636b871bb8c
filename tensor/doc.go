// SPDX-License-Identifier: MIT

// Package tensor provides a minimal N-dimensional array of float64 values
// stored in a flat row-major buffer, together with the two reshapes the
// projection pipeline needs: collapsing a kernel into a 2-D matrix whose
// columns are the last axis, and expanding such a matrix back.
//
// What & Why:
//
//	A convolution or dense kernel is an N-D array whose LAST axis holds the
//	output features. Spectral methods work on the matrix view
//	(∏ leading dims, last dim). Because the buffer is row-major, that view is
//	a pure reinterpretation of the same element order: no transposition is
//	involved, so Flatten2D followed by FromMatrix is the identity.
//
// Contracts:
//
//   - Every dimension is > 0; rank is ≥ 1 (kernels require rank ≥ 2).
//   - Constructors copy caller data; accessors return copies. A *Tensor is
//     never shared with the matrix it was flattened into.
//   - Operations never mutate their receiver.
//
// Errors:
//
//	ErrBadShape, ErrSizeMismatch, ErrRankTooLow. All are wrapped with an
//	operation tag; match with errors.Is.
package tensor
