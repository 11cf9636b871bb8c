// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// SingularValues returns the singular values of m in descending order.
// Implementation:
//   - Stage 1: copy m into a gonum *mat.Dense (one row-major copy, m untouched).
//   - Stage 2: mat.SVD.Factorize with SVDNone; only the values are computed.
//
// Returns:
//   - []float64 of length min(rows, cols), sorted descending.
//
// Errors:
//   - ErrNilMatrix, ErrSVDFailed (wrapped with "SingularValues"). Factorization
//     fails on NaN/±Inf input.
//
// Complexity:
//   - Time O(r*c*min(r,c)), Space O(r*c).
func SingularValues(m Matrix) ([]float64, error) {
	d, err := ToDense(m)
	if err != nil {
		return nil, matrixErrorf(opSingularValues, err)
	}
	if err = ValidateFinite(d); err != nil {
		return nil, matrixErrorf(opSingularValues, fmt.Errorf("%w: %w", ErrSVDFailed, err))
	}

	var svd mat.SVD
	if ok := svd.Factorize(mat.NewDense(d.r, d.c, d.RawData()), mat.SVDNone); !ok {
		return nil, matrixErrorf(opSingularValues, ErrSVDFailed)
	}

	return svd.Values(nil), nil
}

// SpectralNorm returns the largest singular value of m (‖m‖₂).
func SpectralNorm(m Matrix) (float64, error) {
	sv, err := SingularValues(m)
	if err != nil {
		return 0, err
	}

	return sv[0], nil
}
