// SPDX-License-Identifier: MIT

package backend

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lipnorm/matrix"
)

const (
	opGonumImport    = "Gonum.import"
	opGonumOnes      = "Gonum.Ones"
	opGonumMul       = "Gonum.Mul"
	opGonumTranspose = "Gonum.Transpose"
	opGonumScale     = "Gonum.Scale"
	opGonumDiv       = "Gonum.Div"
	opGonumSub       = "Gonum.Sub"
	opGonumNormalize = "Gonum.L2NormalizeRows"
)

// Gonum runs every primitive on gonum.org/v1/gonum/mat.
//
// gonum panics on shape errors, so each primitive validates shapes with the
// matrix validators first and reports the same sentinels as Native.
type Gonum struct{}

var _ Backend = Gonum{}

// GonumMatrix adapts a *mat.Dense to matrix.Matrix.
type GonumMatrix struct {
	d *mat.Dense
}

var _ matrix.Matrix = (*GonumMatrix)(nil)

// NewGonumMatrix wraps d without copying.
func NewGonumMatrix(d *mat.Dense) *GonumMatrix { return &GonumMatrix{d: d} }

// Rows implements matrix.Matrix.
func (g *GonumMatrix) Rows() int {
	r, _ := g.d.Dims()

	return r
}

// Cols implements matrix.Matrix.
func (g *GonumMatrix) Cols() int {
	_, c := g.d.Dims()

	return c
}

// At implements matrix.Matrix with bounds checks instead of gonum's panics.
func (g *GonumMatrix) At(i, j int) (float64, error) {
	if err := g.check(i, j); err != nil {
		return 0, fmt.Errorf("GonumMatrix.At(%d,%d): %w", i, j, err)
	}

	return g.d.At(i, j), nil
}

// Set implements matrix.Matrix.
func (g *GonumMatrix) Set(i, j int, v float64) error {
	if err := g.check(i, j); err != nil {
		return fmt.Errorf("GonumMatrix.Set(%d,%d): %w", i, j, err)
	}
	g.d.Set(i, j, v)

	return nil
}

// Clone implements matrix.Matrix.
func (g *GonumMatrix) Clone() matrix.Matrix { return &GonumMatrix{d: mat.DenseCopyOf(g.d)} }

// Mat exposes the underlying gonum matrix.
func (g *GonumMatrix) Mat() *mat.Dense { return g.d }

// String formats like gonum's fmt helper.
func (g *GonumMatrix) String() string { return fmt.Sprintf("%v", mat.Formatted(g.d)) }

func (g *GonumMatrix) check(i, j int) error {
	r, c := g.d.Dims()
	if i < 0 || i >= r || j < 0 || j >= c {
		return matrix.ErrOutOfRange
	}

	return nil
}

// Name implements Backend.
func (Gonum) Name() string { return NameGonum }

// FromDense copies d into a new *mat.Dense.
func (Gonum) FromDense(d *matrix.Dense) matrix.Matrix {
	return &GonumMatrix{d: mat.NewDense(d.Rows(), d.Cols(), d.RawData())}
}

// Ones implements Backend.
func (Gonum) Ones(rows, cols int) (matrix.Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%s: %w", opGonumOnes, matrix.ErrInvalidDimensions)
	}
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = 1
	}

	return &GonumMatrix{d: mat.NewDense(rows, cols, data)}, nil
}

// Mul implements Backend.
func (Gonum) Mul(a, b matrix.Matrix) (matrix.Matrix, error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, fmt.Errorf("%s: %w", opGonumMul, err)
	}
	ga, err := asGonum(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opGonumMul, err)
	}
	gb, err := asGonum(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opGonumMul, err)
	}
	var out mat.Dense
	out.Mul(ga, gb)

	return &GonumMatrix{d: &out}, nil
}

// Transpose implements Backend.
func (Gonum) Transpose(m matrix.Matrix) (matrix.Matrix, error) {
	gm, err := asGonum(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opGonumTranspose, err)
	}

	return &GonumMatrix{d: mat.DenseCopyOf(gm.T())}, nil
}

// Scale implements Backend.
func (Gonum) Scale(m matrix.Matrix, alpha float64) (matrix.Matrix, error) {
	gm, err := asGonum(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opGonumScale, err)
	}
	var out mat.Dense
	out.Scale(alpha, gm)

	return &GonumMatrix{d: &out}, nil
}

// Div implements Backend.
func (Gonum) Div(m matrix.Matrix, divisor float64) (matrix.Matrix, error) {
	gm, err := asGonum(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opGonumDiv, err)
	}
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 { return v / divisor }, gm)

	return &GonumMatrix{d: &out}, nil
}

// Sub implements Backend.
func (Gonum) Sub(a, b matrix.Matrix) (matrix.Matrix, error) {
	if err := matrix.ValidateBinarySameShape(a, b); err != nil {
		return nil, fmt.Errorf("%s: %w", opGonumSub, err)
	}
	ga, err := asGonum(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opGonumSub, err)
	}
	gb, err := asGonum(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opGonumSub, err)
	}
	var out mat.Dense
	out.Sub(ga, gb)

	return &GonumMatrix{d: &out}, nil
}

// L2NormalizeRows implements Backend.
func (Gonum) L2NormalizeRows(m matrix.Matrix) (matrix.Matrix, error) {
	gm, err := asGonum(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opGonumNormalize, err)
	}
	out := mat.DenseCopyOf(gm)
	r, _ := out.Dims()
	for i := 0; i < r; i++ {
		row := out.RawRowView(i)
		if n := floats.Norm(row, 2); n > 0 {
			floats.Scale(1/n, row)
		}
	}

	return &GonumMatrix{d: out}, nil
}

// asGonum returns a gonum view of m, copying unless m is already gonum-backed.
func asGonum(m matrix.Matrix) (*mat.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opGonumImport, err)
	}
	switch v := m.(type) {
	case *GonumMatrix:
		return v.d, nil
	case *matrix.Dense:
		return mat.NewDense(v.Rows(), v.Cols(), v.RawData()), nil
	}

	rows, cols := m.Rows(), m.Cols()
	data := make([]float64, rows*cols)
	var i, j int
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if data[i*cols+j], err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("%s: %w", opGonumImport, err)
			}
		}
	}

	return mat.NewDense(rows, cols, data), nil
}
