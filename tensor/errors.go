// SPDX-License-Identifier: MIT

package tensor

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape indicates an empty shape, a non-positive dimension or more than one -1 in Reshape.
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrSizeMismatch indicates that the element count does not match the product of the shape.
	ErrSizeMismatch = errors.New("tensor: size mismatch")

	// ErrRankTooLow indicates a tensor of rank < 2 where a kernel is required.
	ErrRankTooLow = errors.New("tensor: rank too low")

	// ErrNilTensor indicates that a nil *Tensor was passed.
	ErrNilTensor = errors.New("tensor: nil tensor")
)

// tensorErrorf prefixes err with an operation tag, keeping the sentinel for errors.Is.
func tensorErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
