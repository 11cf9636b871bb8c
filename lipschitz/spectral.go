// SPDX-License-Identifier: MIT

package lipschitz

import (
	"fmt"

	"github.com/katalvlaran/lipnorm/backend"
	"github.com/katalvlaran/lipnorm/matrix"
	"github.com/katalvlaran/lipnorm/tensor"
)

// SpectralNormalize divides the matrix view of kernel by its estimated
// largest singular value.
//
// Implementation:
//   - Stage 1: reshape kernel to W of shape (Len/last, last).
//   - Stage 2: when u is nil, start from ones(1, last) and run 2·iterations steps.
//   - Stage 3: (u', v) = PowerIteration(W, u, iterations).
//   - Stage 4: sigma = v·W·u'ᵀ; W_bar = W / sigma.
//
// Returns:
//   - wBar: (Len/last)×last, a fresh matrix; kernel is not modified.
//   - uOut: the final power vector, to be passed to the next call.
//   - sigma: the estimate. A zero sigma is not guarded and yields NaN/±Inf in wBar.
//
// Errors:
//   - ErrNilKernel, ErrInvalidIterations (iterations < 1), tensor.ErrRankTooLow,
//     matrix.ErrDimensionMismatch (u not 1×last).
func SpectralNormalize(kernel *tensor.Tensor, u matrix.Matrix, iterations int, opts ...Option) (wBar, uOut matrix.Matrix, sigma float64, err error) {
	o := gatherOptions(opts...)

	if wBar, uOut, sigma, err = spectralNormalize(o.backend, kernel, u, iterations); err != nil {
		return nil, nil, 0, lipschitzErrorf(opSpectralNormalize, err)
	}

	return wBar, uOut, sigma, nil
}

func spectralNormalize(b backend.Backend, kernel *tensor.Tensor, u matrix.Matrix, iterations int) (matrix.Matrix, matrix.Matrix, float64, error) {
	if kernel == nil {
		return nil, nil, 0, ErrNilKernel
	}
	if iterations < 1 {
		return nil, nil, 0, fmt.Errorf("%w: %d < 1", ErrInvalidIterations, iterations)
	}
	w, err := flatten(b, kernel)
	if err != nil {
		return nil, nil, 0, err
	}

	if u == nil {
		if u, err = b.Ones(1, w.Cols()); err != nil {
			return nil, nil, 0, err
		}
		iterations *= 2 // cold start
	}

	uOut, v, err := powerIteration(b, w, u, iterations)
	if err != nil {
		return nil, nil, 0, err
	}
	sigma, err := rayleigh(b, w, uOut, v)
	if err != nil {
		return nil, nil, 0, err
	}
	wBar, err := b.Div(w, sigma)
	if err != nil {
		return nil, nil, 0, err
	}

	return wBar, uOut, sigma, nil
}

// flatten reshapes kernel to its matrix view in backend storage.
func flatten(b backend.Backend, kernel *tensor.Tensor) (matrix.Matrix, error) {
	d, err := tensor.Flatten2D(kernel)
	if err != nil {
		return nil, err
	}

	return b.FromDense(d), nil
}
