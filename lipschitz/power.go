// SPDX-License-Identifier: MIT

package lipschitz

import (
	"fmt"

	"github.com/katalvlaran/lipnorm/backend"
	"github.com/katalvlaran/lipnorm/matrix"
)

// PowerIteration estimates the dominant right and left singular vectors of w.
//
// Implementation:
//   - Stage 1: validate iterations ≥ 1, w and u0 non-nil, u0 of shape 1×Cols(w).
//   - Stage 2: repeat exactly `iterations` times
//     v = L2Normalize(u·wᵀ), then u = L2Normalize(v·w).
//
// v is always derived from the u of the previous step, so on return v lags u
// by half a step. No convergence check is made.
//
// Returns:
//   - u: 1×Cols(w), unit L2 norm unless degenerate (an all-zero product stays zero).
//   - v: 1×Rows(w), same norm property.
//
// Errors:
//   - ErrInvalidIterations, matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
//
// Complexity:
//   - Time O(iterations · Rows(w) · Cols(w)), Space O(Rows(w) · Cols(w)) for wᵀ.
func PowerIteration(w, u0 matrix.Matrix, iterations int, opts ...Option) (u, v matrix.Matrix, err error) {
	o := gatherOptions(opts...)

	if u, v, err = powerIteration(o.backend, w, u0, iterations); err != nil {
		return nil, nil, lipschitzErrorf(opPowerIteration, err)
	}

	return u, v, nil
}

func powerIteration(b backend.Backend, w, u0 matrix.Matrix, iterations int) (matrix.Matrix, matrix.Matrix, error) {
	if iterations < 1 {
		return nil, nil, fmt.Errorf("%w: %d < 1", ErrInvalidIterations, iterations)
	}
	if err := matrix.ValidateNotNil(w); err != nil {
		return nil, nil, err
	}
	if err := matrix.ValidateShape(u0, 1, w.Cols()); err != nil {
		return nil, nil, err
	}

	w = importMatrix(b, w)
	wt, err := b.Transpose(w)
	if err != nil {
		return nil, nil, err
	}

	u := importMatrix(b, u0)
	var v, p matrix.Matrix
	for i := 0; i < iterations; i++ {
		if p, err = b.Mul(u, wt); err != nil {
			return nil, nil, err
		}
		if v, err = b.L2NormalizeRows(p); err != nil {
			return nil, nil, err
		}
		if p, err = b.Mul(v, w); err != nil {
			return nil, nil, err
		}
		if u, err = b.L2NormalizeRows(p); err != nil {
			return nil, nil, err
		}
	}

	return u, v, nil
}

// rayleigh returns v·w·uᵀ, the singular-value estimate for the pair (u, v).
func rayleigh(b backend.Backend, w, u, v matrix.Matrix) (float64, error) {
	vw, err := b.Mul(v, w)
	if err != nil {
		return 0, err
	}
	ut, err := b.Transpose(u)
	if err != nil {
		return 0, err
	}
	s, err := b.Mul(vw, ut)
	if err != nil {
		return 0, err
	}

	return s.At(0, 0)
}

// importMatrix moves a *matrix.Dense into backend storage; other values pass through.
func importMatrix(b backend.Backend, m matrix.Matrix) matrix.Matrix {
	if d, ok := m.(*matrix.Dense); ok {
		return b.FromDense(d)
	}

	return m
}
