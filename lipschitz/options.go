// SPDX-License-Identifier: MIT

package lipschitz

import "github.com/katalvlaran/lipnorm/backend"

// Iteration budgets used by Lipschitz layers unless configured otherwise.
const (
	// DefaultNiterSpectral is the power-iteration budget per projection when
	// a previous u is supplied. A cold start (u == nil) runs twice as many.
	DefaultNiterSpectral = 3

	// DefaultNiterSpectralInit is the budget for an explicit warm-up of u (see WarmStart).
	DefaultNiterSpectralInit = 10

	// DefaultNiterBjorck is the Björck orthonormalization budget.
	DefaultNiterBjorck = 15
)

const panicNilBackend = "lipschitz: WithBackend: backend must not be nil"

// Option configures an operation.
type Option func(*Options)

// Options holds the resolved configuration. Fields are unexported; use Option setters.
type Options struct {
	backend backend.Backend
}

// WithBackend selects the numeric backend. Panics on nil.
func WithBackend(b backend.Backend) Option {
	if b == nil {
		panic(panicNilBackend)
	}

	return func(o *Options) { o.backend = b }
}

func defaultOptions() Options {
	return Options{backend: backend.Native{}}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
