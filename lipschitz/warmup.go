// SPDX-License-Identifier: MIT

package lipschitz

import (
	"fmt"

	"github.com/katalvlaran/lipnorm/matrix"
	"github.com/katalvlaran/lipnorm/tensor"
)

// WarmStart computes an initial power vector for kernel: exactly `iterations`
// power-iteration steps from ones(1, last), with no cold-start doubling.
// Use DefaultNiterSpectralInit for the budget Lipschitz layers use at build time.
//
// Returns the 1×last vector u and the matching sigma estimate v·W·uᵀ.
//
// Errors: ErrNilKernel, ErrInvalidIterations (iterations < 1), tensor.ErrRankTooLow.
func WarmStart(kernel *tensor.Tensor, iterations int, opts ...Option) (matrix.Matrix, float64, error) {
	o := gatherOptions(opts...)
	b := o.backend

	if kernel == nil {
		return nil, 0, lipschitzErrorf(opWarmStart, ErrNilKernel)
	}
	if iterations < 1 {
		return nil, 0, lipschitzErrorf(opWarmStart, fmt.Errorf("%w: %d < 1", ErrInvalidIterations, iterations))
	}
	w, err := flatten(b, kernel)
	if err != nil {
		return nil, 0, lipschitzErrorf(opWarmStart, err)
	}
	ones, err := b.Ones(1, w.Cols())
	if err != nil {
		return nil, 0, lipschitzErrorf(opWarmStart, err)
	}
	u, v, err := powerIteration(b, w, ones, iterations)
	if err != nil {
		return nil, 0, lipschitzErrorf(opWarmStart, err)
	}
	sigma, err := rayleigh(b, w, u, v)
	if err != nil {
		return nil, 0, lipschitzErrorf(opWarmStart, err)
	}

	return u, sigma, nil
}
