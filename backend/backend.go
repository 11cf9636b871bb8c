// SPDX-License-Identifier: MIT

// Package backend defines the numeric primitives the Lipschitz projection is
// written against, and ships two implementations:
//
//   - Native: the deterministic kernels of package matrix (row-major *matrix.Dense).
//   - Gonum:  gonum.org/v1/gonum/mat storage and BLAS-backed products.
//
// Every primitive allocates a fresh result and never mutates its inputs.
// Results of one backend are valid inputs to the other: foreign matrix.Matrix
// values are copied in through the generic At accessor.
package backend

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/lipnorm/matrix"
)

// ErrUnknownBackend is returned by ByName for an unregistered name.
var ErrUnknownBackend = errors.New("backend: unknown backend")

// Backend is the set of primitives used by power iteration and Björck
// orthonormalization.
type Backend interface {
	// Name is the registry key ("native", "gonum").
	Name() string

	// FromDense imports d into backend storage. The result may share storage with d.
	FromDense(d *matrix.Dense) matrix.Matrix

	// Ones returns a rows×cols matrix of 1.0.
	Ones(rows, cols int) (matrix.Matrix, error)

	// Mul returns a×b; a.Cols must equal b.Rows.
	Mul(a, b matrix.Matrix) (matrix.Matrix, error)

	// Transpose returns mᵀ.
	Transpose(m matrix.Matrix) (matrix.Matrix, error)

	// Scale returns alpha·m.
	Scale(m matrix.Matrix, alpha float64) (matrix.Matrix, error)

	// Div returns m/divisor elementwise; a zero divisor yields ±Inf or NaN.
	Div(m matrix.Matrix, divisor float64) (matrix.Matrix, error)

	// Sub returns a−b for equal shapes.
	Sub(a, b matrix.Matrix) (matrix.Matrix, error)

	// L2NormalizeRows divides every row by its Euclidean norm; all-zero rows stay zero.
	L2NormalizeRows(m matrix.Matrix) (matrix.Matrix, error)
}

// Registry names.
const (
	NameNative = "native"
	NameGonum  = "gonum"
)

var registry = map[string]Backend{
	NameNative: Native{},
	NameGonum:  Gonum{},
}

// ByName returns the registered backend for name (case-insensitive).
func ByName(name string) (Backend, error) {
	b, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %s)", ErrUnknownBackend, name, strings.Join(Names(), ", "))
	}

	return b, nil
}

// Names lists the registered backend names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}
