// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"

	"github.com/katalvlaran/lipnorm/matrix"
)

const (
	opNew        = "New"
	opReshape    = "Reshape"
	opFlatten2D  = "Flatten2D"
	opFromMatrix = "FromMatrix"
)

// inferDim marks the single dimension Reshape computes from the element count.
const inferDim = -1

// Tensor is a dense N-D array in row-major order.
type Tensor struct {
	shape []int
	data  []float64
}

// New returns a tensor of the given shape holding a copy of data.
//
// Errors: ErrBadShape (empty shape or a dimension ≤ 0), ErrSizeMismatch (len(data) != ∏shape).
func New(shape []int, data []float64) (*Tensor, error) {
	n, err := volume(shape)
	if err != nil {
		return nil, tensorErrorf(opNew, err)
	}
	if len(data) != n {
		return nil, tensorErrorf(opNew, fmt.Errorf("%w: %d values for shape %v", ErrSizeMismatch, len(data), shape))
	}

	t := &Tensor{shape: append([]int(nil), shape...), data: make([]float64, n)}
	copy(t.data, data)

	return t, nil
}

// Zeros returns a zero-filled tensor of the given shape.
func Zeros(shape ...int) (*Tensor, error) {
	n, err := volume(shape)
	if err != nil {
		return nil, tensorErrorf(opNew, err)
	}

	return &Tensor{shape: append([]int(nil), shape...), data: make([]float64, n)}, nil
}

// Shape returns a copy of the dimensions.
func (t *Tensor) Shape() []int { return append([]int(nil), t.shape...) }

// Rank returns the number of dimensions.
func (t *Tensor) Rank() int { return len(t.shape) }

// Len returns the total number of elements.
func (t *Tensor) Len() int { return len(t.data) }

// Dim returns the size of axis i; negative i counts from the end (-1 is the last axis).
func (t *Tensor) Dim(i int) int {
	if i < 0 {
		i += len(t.shape)
	}

	return t.shape[i]
}

// Data returns a copy of the row-major buffer.
func (t *Tensor) Data() []float64 {
	out := make([]float64, len(t.data))
	copy(out, t.data)

	return out
}

// Clone returns a deep copy of t.
func (t *Tensor) Clone() *Tensor {
	return &Tensor{shape: t.Shape(), data: t.Data()}
}

// String renders the shape only; kernels can be large.
func (t *Tensor) String() string { return fmt.Sprintf("Tensor%v", t.shape) }

// Reshape returns a new tensor with the same elements in the same row-major
// order and the given shape. At most one dimension may be -1; it is inferred.
//
// Errors: ErrBadShape, ErrSizeMismatch.
func (t *Tensor) Reshape(shape ...int) (*Tensor, error) {
	dims := append([]int(nil), shape...)
	infer := -1
	known := 1
	for i, d := range dims {
		switch {
		case d == inferDim && infer < 0:
			infer = i
		case d > 0:
			known *= d
		default:
			return nil, tensorErrorf(opReshape, fmt.Errorf("%w: %v", ErrBadShape, shape))
		}
	}
	if len(dims) == 0 {
		return nil, tensorErrorf(opReshape, ErrBadShape)
	}
	if infer >= 0 {
		if t.Len()%known != 0 {
			return nil, tensorErrorf(opReshape, fmt.Errorf("%w: cannot infer %v from %d values", ErrSizeMismatch, shape, t.Len()))
		}
		dims[infer] = t.Len() / known
		known *= dims[infer]
	}
	if known != t.Len() {
		return nil, tensorErrorf(opReshape, fmt.Errorf("%w: %v holds %d values, have %d", ErrSizeMismatch, shape, known, t.Len()))
	}

	return &Tensor{shape: dims, data: t.Data()}, nil
}

// Flatten2D returns the (Len/last, last) matrix view of a kernel as a fresh
// *matrix.Dense. Row-major order is kept, so element k of the tensor is
// element (k / last, k % last) of the matrix.
//
// Errors: ErrNilTensor, ErrRankTooLow (rank < 2).
func Flatten2D(t *Tensor) (*matrix.Dense, error) {
	if t == nil {
		return nil, tensorErrorf(opFlatten2D, ErrNilTensor)
	}
	if t.Rank() < 2 {
		return nil, tensorErrorf(opFlatten2D, fmt.Errorf("%w: rank %d", ErrRankTooLow, t.Rank()))
	}
	last := t.Dim(-1)
	d, err := matrix.NewDenseFrom(t.Len()/last, last, t.data)
	if err != nil {
		return nil, tensorErrorf(opFlatten2D, err)
	}

	return d, nil
}

// FromMatrix reads m in row-major order into a new tensor of the given shape.
// It inverts Flatten2D when shape is the original kernel shape.
//
// Errors: ErrBadShape, ErrSizeMismatch (Rows*Cols != ∏shape), matrix.ErrNilMatrix.
func FromMatrix(m matrix.Matrix, shape []int) (*Tensor, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, tensorErrorf(opFromMatrix, err)
	}
	n, err := volume(shape)
	if err != nil {
		return nil, tensorErrorf(opFromMatrix, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if rows*cols != n {
		return nil, tensorErrorf(opFromMatrix, fmt.Errorf("%w: %dx%d into %v", ErrSizeMismatch, rows, cols, shape))
	}

	var data []float64
	if d, ok := m.(*matrix.Dense); ok {
		data = d.RawData() // already a copy
	} else {
		data = make([]float64, n)
		var i, j int
		var v float64
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				if v, err = m.At(i, j); err != nil {
					return nil, tensorErrorf(opFromMatrix, err)
				}
				data[i*cols+j] = v
			}
		}
	}

	return &Tensor{shape: append([]int(nil), shape...), data: data}, nil
}

// volume returns ∏shape after validating every dimension is positive.
func volume(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, ErrBadShape
	}
	n := 1
	for _, d := range shape {
		if d <= 0 {
			return 0, fmt.Errorf("%w: %v", ErrBadShape, shape)
		}
		n *= d
	}

	return n, nil
}
