// SPDX-License-Identifier: MIT

package lipschitz

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidIterations indicates an iteration count below the operation's minimum
	// (1 for power iteration, 0 for Björck).
	ErrInvalidIterations = errors.New("lipschitz: invalid iteration count")

	// ErrNilKernel indicates a nil kernel tensor.
	ErrNilKernel = errors.New("lipschitz: nil kernel")
)

// Operation tags used in wrapped errors.
const (
	opPowerIteration    = "PowerIteration"
	opSpectralNormalize = "SpectralNormalize"
	opBjorck            = "BjorckOrthonormalize"
	opProjectKernel     = "ProjectKernel"
	opWarmStart         = "WarmStart"
)

func lipschitzErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
