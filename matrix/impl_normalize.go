// SPDX-License-Identifier: MIT
// Package matrix - row normalization and norms.
//
// Purpose:
//   - Row-wise L2 normalization, the primitive behind power iteration.
//   - Frobenius norm for diagnostics.
//
// Determinism:
//   - Fixed i→j passes; norms accumulate left to right.

package matrix

import "math"

// normalizeRowsL2 scales each row to have L2-norm == 1 when possible.
// Implementation:
//   - Stage 1: Validate X (non-nil).
//   - Stage 2: Compute per-row L2 norms deterministically.
//   - Stage 3: Build row scale factors (1/norm); for norm==0 use scale=1 to keep the row unchanged.
//   - Stage 4: Apply ewScaleRows to produce a normalized copy.
//
// Behavior highlights:
//   - Degenerate rows (norm==0) stay zero rows; no NaN is introduced here.
//   - Non-finite elements propagate (a row holding +Inf yields NaN/0 entries).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) (+ O(r) auxiliary slices).
func normalizeRowsL2(X Matrix) (Matrix, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL2, err)
	}

	r, c := X.Rows(), X.Cols()
	norms := make([]float64, r)

	var i, j int
	var sq, v float64
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			sq = 0.0
			base := i * c
			for j = 0; j < c; j++ {
				v = d.data[base+j]
				sq += v * v
			}
			norms[i] = math.Sqrt(sq)
		}
	} else {
		var err error
		for i = 0; i < r; i++ {
			sq = 0.0
			for j = 0; j < c; j++ {
				v, err = X.At(i, j)
				if err != nil {
					return nil, nil, matrixErrorf(opNormalizeRowsL2, err)
				}
				sq += v * v
			}
			norms[i] = math.Sqrt(sq)
		}
	}

	// 1/norm for normal rows; 1 for degenerate rows (leave unchanged).
	scale := make([]float64, r)
	for i = 0; i < r; i++ {
		if norms[i] > 0 {
			scale[i] = 1.0 / norms[i]
		} else {
			scale[i] = 1.0
		}
	}

	Y, err := ewScaleRows(X, scale)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL2, err)
	}

	return Y, norms, nil
}

// FrobeniusNorm returns sqrt(Σ m[i,j]²).
// Complexity: O(r*c).
func FrobeniusNorm(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf("FrobeniusNorm", err)
	}
	var sq, v float64
	var err error
	rows, cols := m.Rows(), m.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return 0, matrixErrorf("FrobeniusNorm", err)
			}
			sq += v * v
		}
	}

	return math.Sqrt(sq), nil
}
