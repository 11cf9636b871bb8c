// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lipnorm/lipschitz"
	"github.com/katalvlaran/lipnorm/matrix"
	"github.com/katalvlaran/lipnorm/tensor"
)

func newInspectCmd(a *app) *cobra.Command {
	var kernelPath string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Report shape, estimated and exact spectral norm of a kernel",
		RunE: func(cmd *cobra.Command, args []string) error {
			kernel, err := a.loadKernel(kernelPath)
			if err != nil {
				return err
			}
			w, err := tensor.Flatten2D(kernel)
			if err != nil {
				return err
			}
			_, estimate, err := lipschitz.WarmStart(kernel, a.cfg.NiterSpectralInit, a.options()...)
			if err != nil {
				return fmt.Errorf("failed to estimate sigma: %w", err)
			}
			sv, err := matrix.SingularValues(w)
			if err != nil {
				return fmt.Errorf("failed to compute singular values: %w", err)
			}
			fro, err := matrix.FrobeniusNorm(w)
			if err != nil {
				return err
			}
			log.Debug().Ints("shape", kernel.Shape()).Int("niter", a.cfg.NiterSpectralInit).Msg("kernel inspected")

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "shape\t%v\n", kernel.Shape())
			fmt.Fprintf(tw, "matrix\t%dx%d\n", w.Rows(), w.Cols())
			fmt.Fprintf(tw, "sigma_power\t%.6g\n", estimate)
			fmt.Fprintf(tw, "sigma_max\t%.6g\n", sv[0])
			fmt.Fprintf(tw, "sigma_min\t%.6g\n", sv[len(sv)-1])
			fmt.Fprintf(tw, "frobenius\t%.6g\n", fro)

			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&kernelPath, "kernel", "", "Kernel file (YAML or JSON)")
	_ = cmd.MarkFlagRequired("kernel")

	return cmd
}
