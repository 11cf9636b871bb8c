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

func newBjorckCmd(a *app) *cobra.Command {
	var (
		kernelPath, outPath string
		niter               int
	)

	cmd := &cobra.Command{
		Use:   "bjorck",
		Short: "Orthonormalize a kernel that is already spectrally normalized",
		RunE: func(cmd *cobra.Command, args []string) error {
			n := a.cfg.NiterBjorck
			overrideInt(cmd.Flags(), "niter", niter, &n)

			kernel, err := a.loadKernel(kernelPath)
			if err != nil {
				return err
			}
			w, err := tensor.Flatten2D(kernel)
			if err != nil {
				return err
			}
			ortho, err := lipschitz.BjorckOrthonormalize(w, n, a.options()...)
			if err != nil {
				return fmt.Errorf("failed to orthonormalize kernel: %w", err)
			}
			out, err := tensor.FromMatrix(ortho, kernel.Shape())
			if err != nil {
				return err
			}
			if err = kernelio.SaveKernel(outPath, out); err != nil {
				return err
			}

			log.Info().Ints("shape", kernel.Shape()).Int("niter", n).Str("out", outPath).Msg("kernel orthonormalized")

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&kernelPath, "kernel", "", "Kernel file (YAML or JSON)")
	f.StringVar(&outPath, "out", "", "Output kernel file")
	f.IntVar(&niter, "niter", lipschitz.DefaultNiterBjorck, "Björck steps")
	_ = cmd.MarkFlagRequired("kernel")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
