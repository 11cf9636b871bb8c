// SPDX-License-Identifier: MIT

// Command lipnorm projects weight kernels stored in YAML/JSON files onto
// 1-Lipschitz linear maps and keeps the power-iteration state between runs.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lipnorm/backend"
	"github.com/katalvlaran/lipnorm/internal/config"
	"github.com/katalvlaran/lipnorm/internal/kernelio"
	"github.com/katalvlaran/lipnorm/lipschitz"
	"github.com/katalvlaran/lipnorm/tensor"
)

// Persistent flag names.
const (
	flagConfig   = "config"
	flagLogLevel = "log-level"
	flagBackend  = "backend"
	flagFinite   = "require-finite"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	configPath  string
	logLevel    string
	backendName string
	finite      bool

	cfg *config.Config
	be  backend.Backend
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree; each call returns independent flag state.
func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "lipnorm",
		Short: "Lipschitz projection of neural-network weight kernels",
		Long: `lipnorm rescales a weight kernel so that its matrix view has spectral norm
close to 1 (power iteration), then orthonormalizes it (Björck iteration).

The power vector u is kept in a state file so that the next run warm-starts.

Example usage:
  lipnorm warmup  --kernel k.yaml --state u.yaml
  lipnorm project --kernel k.yaml --state u.yaml --out k_proj.yaml
  lipnorm inspect --kernel k_proj.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, flagConfig, "", "Path to YAML configuration (defaults apply when absent)")
	root.PersistentFlags().StringVar(&a.logLevel, flagLogLevel, zerolog.InfoLevel.String(), "Log level: trace, debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.backendName, flagBackend, backend.NameNative, "Numeric backend: native, gonum")
	root.PersistentFlags().BoolVar(&a.finite, flagFinite, false, "Reject kernels and state holding NaN or Inf")

	root.AddCommand(
		newProjectCmd(a),
		newSpectralCmd(a),
		newBjorckCmd(a),
		newWarmupCmd(a),
		newInspectCmd(a),
	)

	return root
}

// setup loads the configuration, applies flag overrides and configures logging.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed(flagLogLevel) {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed(flagBackend) {
		cfg.Backend = a.backendName
	}
	if flags.Changed(flagFinite) {
		cfg.RequireFinite = a.finite
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.Kitchen})

	if a.be, err = cfg.ResolveBackend(); err != nil {
		return err
	}
	a.cfg = cfg
	log.Debug().Str("config", a.configPath).Str("backend", a.be.Name()).
		Int("niter_spectral", cfg.NiterSpectral).Int("niter_bjorck", cfg.NiterBjorck).
		Float64("adjustment_coef", cfg.AdjustmentCoef).Bool("require_finite", cfg.RequireFinite).
		Msg("configuration loaded")

	return nil
}

// options returns the lipschitz options for this invocation.
func (a *app) options() []lipschitz.Option {
	return []lipschitz.Option{lipschitz.WithBackend(a.be)}
}

// loadKernel reads a kernel file, enforcing finiteness when configured.
func (a *app) loadKernel(path string) (*tensor.Tensor, error) {
	kernel, err := kernelio.LoadKernel(path)
	if err != nil {
		return nil, err
	}
	if a.cfg.RequireFinite {
		if err = kernelio.CheckFinite(kernel); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	return kernel, nil
}

// overrideInt copies v into *dst when the named flag was set explicitly.
func overrideInt(flags *pflag.FlagSet, name string, v int, dst *int) {
	if flags.Changed(name) {
		*dst = v
	}
}
