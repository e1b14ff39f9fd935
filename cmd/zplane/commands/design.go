package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	zplane "github.com/tphakala/go-zplane"
	"github.com/tphakala/go-zplane/internal/design"
)

const (
	defaultCutoff       = 0.25
	defaultAttenuation  = 80.0
	defaultTransitionBW = 0.05
)

func designCmd() *cobra.Command {
	var (
		params       design.Params
		transitionBW float64
		showResponse bool
		af           analysisFlags
	)

	cmd := &cobra.Command{
		Use:   "design",
		Short: "Print the taps of a Kaiser-window lowpass FIR",
		Long: "Designs a windowed-sinc lowpass filter. The cutoff and transition width are\n" +
			"fractions of the sample rate. Without --taps the length is estimated from\n" +
			"--atten and --transition.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				taps []float64
				err  error
			)
			if params.NumTaps > 0 {
				taps, err = design.Lowpass(params)
			} else {
				taps, err = design.LowpassAuto(params.Cutoff, transitionBW, params.Attenuation)
			}
			if err != nil {
				return err
			}
			log.Debug().Int("taps", len(taps)).Float64("cutoff", params.Cutoff).Msg("lowpass designed")

			out := cmd.OutOrStdout()
			for _, t := range taps {
				if _, err := fmt.Fprintf(out, "%.17g\n", t); err != nil {
					return err
				}
			}
			if !showResponse {
				return nil
			}

			an, err := zplane.NewAnalyzer(af.options(cmd))
			if err != nil {
				return err
			}
			resp, err := an.FrequencyResponse(zplane.Real(taps...), zplane.Real(1))
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
			return af.renderer(cmd).RenderResponse(out, resp, an.Options().SFNorm)
		},
	}

	cmd.Flags().Float64Var(&params.Cutoff, "cutoff", defaultCutoff, "cutoff frequency as a fraction of the sample rate (0 to 0.5)")
	cmd.Flags().Float64Var(&params.Attenuation, "atten", defaultAttenuation, "stopband attenuation in dB")
	cmd.Flags().IntVar(&params.NumTaps, "taps", 0, "filter length (0 estimates it)")
	cmd.Flags().Float64Var(&params.Gain, "gain", 1, "DC gain")
	cmd.Flags().Float64Var(&transitionBW, "transition", defaultTransitionBW, "transition bandwidth as a fraction of the sample rate")
	cmd.Flags().BoolVar(&showResponse, "response", false, "also print the frequency response of the taps")
	addAnalysisFlags(cmd, &af)
	return cmd
}
