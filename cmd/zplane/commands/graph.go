package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	zplane "github.com/tphakala/go-zplane"
)

func graphCmd() *cobra.Command {
	var (
		coeffs  coeffFlags
		af      analysisFlags
		axisLim float64
		withPZ  bool
	)

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Print the frequency response and, with --zplane, the pole-zero table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, a, err := coeffs.polynomials(cmd)
			if err != nil {
				return err
			}

			analysis, err := zplane.Analyze(b, a, af.options(cmd))
			if err != nil {
				return err
			}
			warnDegenerate(analysis.Response)

			out := cmd.OutOrStdout()
			r := af.renderer(cmd)
			if err := r.RenderResponse(out, analysis.Response, analysis.SFNorm); err != nil {
				return err
			}
			if !withPZ {
				return nil
			}

			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
			return r.RenderPoleZero(out, analysis.PoleZero, axisLimit(cmd, axisLim, zplane.GraphAxisLimit))
		},
	}

	addCoeffFlags(cmd, &coeffs)
	addAnalysisFlags(cmd, &af)
	addAxisFlag(cmd, &axisLim, zplane.GraphAxisLimit)
	cmd.Flags().BoolVar(&withPZ, "zplane", false, "also print zeros, poles and gain")
	return cmd
}
