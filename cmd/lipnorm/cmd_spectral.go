// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lipnorm/internal/kernelio"
	"github.com/katalvlaran/lipnorm/lipschitz"
	"github.com/katalvlaran/lipnorm/tensor"
)

func newSpectralCmd(a *app) *cobra.Command {
	var (
		kernelPath, statePath, outPath string
		niter                          int
	)

	cmd := &cobra.Command{
		Use:   "spectral",
		Short: "Divide a kernel by its estimated spectral norm",
		RunE: func(cmd *cobra.Command, args []string) error {
			n := a.cfg.NiterSpectral
			overrideInt(cmd.Flags(), "niter", niter, &n)

			kernel, err := a.loadKernel(kernelPath)
			if err != nil {
				return err
			}
			u, warm, err := a.loadU(statePath)
			if err != nil {
				return err
			}
			wBar, uOut, sigma, err := lipschitz.SpectralNormalize(kernel, u, n, a.options()...)
			if err != nil {
				return fmt.Errorf("failed to normalize kernel: %w", err)
			}

			if outPath != "" {
				out, err := tensor.FromMatrix(wBar, kernel.Shape())
				if err != nil {
					return err
				}
				if err = kernelio.SaveKernel(outPath, out); err != nil {
					return err
				}
			}
			if statePath != "" {
				if err = kernelio.SaveState(statePath, uOut, sigma); err != nil {
					return err
				}
			}

			log.Info().Ints("shape", kernel.Shape()).Bool("warm_start", warm).Int("niter", n).
				Float64("sigma", sigma).Msg("kernel normalized")
			fmt.Fprintf(cmd.OutOrStdout(), "sigma=%g\n", sigma)

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&kernelPath, "kernel", "", "Kernel file (YAML or JSON)")
	f.StringVar(&statePath, "state", "", "State file holding u")
	f.StringVar(&outPath, "out", "", "Output kernel file; omitted means report sigma only")
	f.IntVar(&niter, "niter", lipschitz.DefaultNiterSpectral, "Power-iteration steps (doubled on cold start)")
	_ = cmd.MarkFlagRequired("kernel")

	return cmd
}
