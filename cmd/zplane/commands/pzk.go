package commands

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	zplane "github.com/tphakala/go-zplane"
)

func pzkCmd() *cobra.Command {
	var (
		coeffs  coeffFlags
		axisLim float64
	)

	cmd := &cobra.Command{
		Use:   "pzk",
		Short: "Print normalized zeros, poles and gain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, a, err := coeffs.polynomials(cmd)
			if err != nil {
				return err
			}

			pzk, err := zplane.ComputePoleZeroGain(b, a)
			if err != nil {
				return err
			}
			log.Debug().
				Int("zeros", len(pzk.Zeros)).
				Int("poles", len(pzk.Poles)).
				Float64("gain", pzk.Gain).
				Msg("pole-zero analysis done")

			lim := axisLimit(cmd, axisLim, zplane.DefaultAxisLimit)
			return zplane.TableRenderer{}.RenderPoleZero(cmd.OutOrStdout(), pzk, lim)
		},
	}

	addCoeffFlags(cmd, &coeffs)
	addAxisFlag(cmd, &axisLim, zplane.DefaultAxisLimit)
	return cmd
}
