// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lipnorm/internal/kernelio"
	"github.com/katalvlaran/lipnorm/lipschitz"
)

func newWarmupCmd(a *app) *cobra.Command {
	var (
		kernelPath, statePath string
		niter                 int
	)

	cmd := &cobra.Command{
		Use:   "warmup",
		Short: "Initialize the power vector u for a kernel",
		Long: `Run power iteration from a vector of ones for --niter steps and store u and
sigma in the state file, so that later projections start warm.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			n := a.cfg.NiterSpectralInit
			overrideInt(cmd.Flags(), "niter", niter, &n)

			kernel, err := a.loadKernel(kernelPath)
			if err != nil {
				return err
			}
			u, sigma, err := lipschitz.WarmStart(kernel, n, a.options()...)
			if err != nil {
				return fmt.Errorf("failed to warm up: %w", err)
			}
			if err = kernelio.SaveState(statePath, u, sigma); err != nil {
				return err
			}

			log.Info().Ints("shape", kernel.Shape()).Int("niter", n).Float64("sigma", sigma).
				Str("state", statePath).Msg("power vector initialized")
			fmt.Fprintf(cmd.OutOrStdout(), "sigma=%g\n", sigma)

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&kernelPath, "kernel", "", "Kernel file (YAML or JSON)")
	f.StringVar(&statePath, "state", "", "State file to write")
	f.IntVar(&niter, "niter", lipschitz.DefaultNiterSpectralInit, "Power-iteration steps")
	_ = cmd.MarkFlagRequired("kernel")
	_ = cmd.MarkFlagRequired("state")

	return cmd
}
