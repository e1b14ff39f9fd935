package commands

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	zplane "github.com/tphakala/go-zplane"
)

func responseCmd() *cobra.Command {
	var (
		coeffs coeffFlags
		af     analysisFlags
	)

	cmd := &cobra.Command{
		Use:   "response",
		Short: "Print magnitude (dB) and unwrapped phase of H(e^jw)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, a, err := coeffs.polynomials(cmd)
			if err != nil {
				return err
			}
			opts := af.options(cmd)

			an, err := zplane.NewAnalyzer(opts)
			if err != nil {
				return err
			}
			resp, err := an.FrequencyResponse(b, a)
			if err != nil {
				return err
			}
			warnDegenerate(resp)

			return af.renderer(cmd).RenderResponse(cmd.OutOrStdout(), resp, an.Options().SFNorm)
		},
	}

	addCoeffFlags(cmd, &coeffs)
	addAnalysisFlags(cmd, &af)
	return cmd
}

func warnDegenerate(resp *zplane.FrequencyResponse) {
	if err := resp.Err(); err != nil {
		log.Warn().Ints("samples", resp.Degenerate).Msg("response undefined at pole frequencies")
	}
}
