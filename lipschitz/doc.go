// SPDX-License-Identifier: MIT

// Package lipschitz projects neural-network weight kernels onto the set of
// (approximately) 1-Lipschitz linear maps.
//
// What & Why:
//
//	A linear layer is 1-Lipschitz when the spectral norm (largest singular
//	value) of its weight matrix is ≤ 1. This package computes such a kernel
//	in two cheap stages:
//
//	  1. Spectral normalization: estimate σ_max with a few power-iteration
//	     steps and divide the matrix by it, so that σ_max ≈ 1.
//	  2. Björck orthonormalization: W ← 1.5·W − 0.5·W·Wᵀ·W, which drives every
//	     singular value toward 1 provided the largest one is already ≈ 1.
//
//	ProjectKernel chains both and rescales by an adjustment coefficient.
//
// Shapes:
//
//	A kernel is a *tensor.Tensor of rank ≥ 2 whose LAST axis holds the output
//	features. It is viewed as the matrix W of shape (Len/last, last). The power
//	vector u is a 1×last row matrix, the companion vector v is 1×(Len/last).
//
// State:
//
//	The package keeps no state. The power vector u returned by
//	SpectralNormalize/ProjectKernel is handed back to the caller, who passes
//	it to the next call to warm-start the iteration. Passing nil starts from
//	a vector of ones and doubles the iteration budget.
//
// Numerics:
//
//	Budgets are fixed; nothing checks convergence. Degenerate inputs are not
//	repaired: an all-zero kernel yields σ = 0 and the division produces
//	NaN/±Inf, which propagates to the caller.
//
// Backends:
//
//	All matrix arithmetic goes through backend.Backend. The default is
//	backend.Native (deterministic matrix package kernels); WithBackend selects
//	another, e.g. backend.Gonum.
package lipschitz
