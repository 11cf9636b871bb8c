// SPDX-License-Identifier: MIT

package backend

import "github.com/katalvlaran/lipnorm/matrix"

// Native runs every primitive on the matrix package kernels.
// Loop orders are fixed, so results are bit-for-bit reproducible.
type Native struct{}

var _ Backend = Native{}

// Name implements Backend.
func (Native) Name() string { return NameNative }

// FromDense returns d itself.
func (Native) FromDense(d *matrix.Dense) matrix.Matrix { return d }

// Ones implements Backend.
func (Native) Ones(rows, cols int) (matrix.Matrix, error) {
	o, err := matrix.NewOnes(rows, cols)
	if err != nil {
		return nil, err
	}

	return o, nil
}

// Mul implements Backend.
func (Native) Mul(a, b matrix.Matrix) (matrix.Matrix, error) { return matrix.Mul(a, b) }

// Transpose implements Backend.
func (Native) Transpose(m matrix.Matrix) (matrix.Matrix, error) { return matrix.Transpose(m) }

// Scale implements Backend.
func (Native) Scale(m matrix.Matrix, alpha float64) (matrix.Matrix, error) {
	return matrix.Scale(m, alpha)
}

// Div implements Backend.
func (Native) Div(m matrix.Matrix, divisor float64) (matrix.Matrix, error) {
	return matrix.DivScalar(m, divisor)
}

// Sub implements Backend.
func (Native) Sub(a, b matrix.Matrix) (matrix.Matrix, error) { return matrix.Sub(a, b) }

// L2NormalizeRows implements Backend; the per-row norms are discarded.
func (Native) L2NormalizeRows(m matrix.Matrix) (matrix.Matrix, error) {
	y, _, err := matrix.NormalizeRowsL2(m)

	return y, err
}
