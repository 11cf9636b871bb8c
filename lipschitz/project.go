// SPDX-License-Identifier: MIT

package lipschitz

import (
	"fmt"

	"github.com/katalvlaran/lipnorm/matrix"
	"github.com/katalvlaran/lipnorm/tensor"
)

// ProjectKernel returns a kernel of the same shape whose matrix view is
// approximately orthonormal, scaled by adjustmentCoef.
//
// Implementation:
//   - Stage 1: (W, u', sigma) = SpectralNormalize(kernel, u, niterSpectral).
//   - Stage 2: W = BjorckOrthonormalize(W, niterBjorck).
//   - Stage 3: W = W · adjustmentCoef, reshaped to kernel.Shape().
//
// The returned u' should be stored by the caller and passed back on the next
// call. sigma is the estimate computed before Björck.
//
// Errors: those of SpectralNormalize and BjorckOrthonormalize.
func ProjectKernel(
	kernel *tensor.Tensor,
	u matrix.Matrix,
	adjustmentCoef float64,
	niterSpectral, niterBjorck int,
	opts ...Option,
) (*tensor.Tensor, matrix.Matrix, float64, error) {
	o := gatherOptions(opts...)
	b := o.backend

	if niterBjorck < 0 {
		return nil, nil, 0, lipschitzErrorf(opProjectKernel, fmt.Errorf("%w: niterBjorck %d < 0", ErrInvalidIterations, niterBjorck))
	}
	w, uOut, sigma, err := spectralNormalize(b, kernel, u, niterSpectral)
	if err != nil {
		return nil, nil, 0, lipschitzErrorf(opProjectKernel, err)
	}
	if w, err = bjorck(b, w, niterBjorck); err != nil {
		return nil, nil, 0, lipschitzErrorf(opProjectKernel, err)
	}
	if w, err = b.Scale(w, adjustmentCoef); err != nil {
		return nil, nil, 0, lipschitzErrorf(opProjectKernel, err)
	}
	out, err := tensor.FromMatrix(w, kernel.Shape())
	if err != nil {
		return nil, nil, 0, lipschitzErrorf(opProjectKernel, err)
	}

	return out, uOut, sigma, nil
}
