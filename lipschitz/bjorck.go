// SPDX-License-Identifier: MIT

package lipschitz

import (
	"fmt"

	"github.com/katalvlaran/lipnorm/backend"
	"github.com/katalvlaran/lipnorm/matrix"
)

// Björck step coefficients: W ← bjorckKeep·W − bjorckCube·W·Wᵀ·W.
const (
	bjorckKeep = 1.5
	bjorckCube = 0.5
)

// BjorckOrthonormalize pushes every singular value of w toward 1.
//
// Each of the `iterations` steps computes W ← 1.5·W − 0.5·W·Wᵀ·W. The
// iteration converges when the largest singular value of w is below √3 and
// is meant to be applied after SpectralNormalize. Zero iterations return a
// copy of w. An orthonormal w is a fixed point.
//
// Errors: ErrInvalidIterations (iterations < 0), matrix.ErrNilMatrix.
//
// Complexity: Time O(iterations · r² · c), Space O(r² + r·c) for r×c input.
func BjorckOrthonormalize(w matrix.Matrix, iterations int, opts ...Option) (matrix.Matrix, error) {
	o := gatherOptions(opts...)

	out, err := bjorck(o.backend, w, iterations)
	if err != nil {
		return nil, lipschitzErrorf(opBjorck, err)
	}

	return out, nil
}

func bjorck(b backend.Backend, w matrix.Matrix, iterations int) (matrix.Matrix, error) {
	if iterations < 0 {
		return nil, fmt.Errorf("%w: %d < 0", ErrInvalidIterations, iterations)
	}
	if err := matrix.ValidateNotNil(w); err != nil {
		return nil, err
	}
	if iterations == 0 {
		return w.Clone(), nil
	}

	w = importMatrix(b, w)
	var wt, wwt, cube, keep matrix.Matrix
	var err error
	for i := 0; i < iterations; i++ {
		if wt, err = b.Transpose(w); err != nil {
			return nil, err
		}
		if wwt, err = b.Mul(w, wt); err != nil {
			return nil, err
		}
		if cube, err = b.Mul(wwt, w); err != nil {
			return nil, err
		}
		if keep, err = b.Scale(w, bjorckKeep); err != nil {
			return nil, err
		}
		if cube, err = b.Scale(cube, bjorckCube); err != nil {
			return nil, err
		}
		if w, err = b.Sub(keep, cube); err != nil {
			return nil, err
		}
	}

	return w, nil
}
