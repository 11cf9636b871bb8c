// Package lipnorm constrains neural-network weight kernels to be
// (approximately) 1-Lipschitz linear maps.
//
// What is lipnorm?
//
//	A small, deterministic numeric library and CLI that brings together:
//		• Spectral normalization: power-iteration estimate of σ_max, then W/σ
//		• Björck orthonormalization: W ← 1.5·W − 0.5·W·Wᵀ·W
//		• Kernel projection: both of the above plus an adjustment coefficient
//		• Exact singular values (Jacobi) for inspection and testing
//
// Layout:
//
//	matrix/      row-major Dense matrix and deterministic kernels (Mul, Transpose, normalization, SVD values)
//	tensor/      N-D kernels and the (∏leading, last) matrix view
//	backend/     numeric primitives: Native (matrix package) or Gonum (gonum.org/v1/gonum/mat)
//	lipschitz/   PowerIteration, SpectralNormalize, BjorckOrthonormalize, ProjectKernel, WarmStart
//	cmd/lipnorm  CLI over YAML/JSON kernel and state files
//
// Quick start:
//
//	kernel, _ := tensor.New([]int{3, 3, 16, 32}, weights)
//	w, u, sigma, err := lipschitz.ProjectKernel(kernel, nil, 1.0,
//		lipschitz.DefaultNiterSpectral, lipschitz.DefaultNiterBjorck)
//	// keep u; pass it to the next ProjectKernel call to warm-start
//
// The library keeps no state and does not log; the CLI logs with zerolog.
package lipnorm
