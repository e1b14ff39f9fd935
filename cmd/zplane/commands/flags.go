package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	zplane "github.com/tphakala/go-zplane"
	"github.com/tphakala/go-zplane/internal/config"
)

// Flag names shared by several commands.
const (
	flagNum     = "num"
	flagDen     = "den"
	flagSamples = "samples"
	flagSFNorm  = "sfnorm"
	flagNyquist = "nyquist"
	flagWhole   = "whole"
	flagStrict  = "strict"
	flagStep    = "step"
	flagAxisLim = "axis-lim"
)

// coeffFlags holds the transfer function given on the command line.
type coeffFlags struct {
	num string
	den string
}

func addCoeffFlags(cmd *cobra.Command, f *coeffFlags) {
	cmd.Flags().StringVarP(&f.num, flagNum, "b", "", "numerator coefficients, highest degree first (e.g. 1,-0.5)")
	cmd.Flags().StringVarP(&f.den, flagDen, "a", "", "denominator coefficients (default 1)")
}

// polynomials merges flag values over the loaded configuration.
func (f *coeffFlags) polynomials(cmd *cobra.Command) (b, a zplane.Polynomial, err error) {
	num := cfg.Numerator
	den := cfg.Denominator

	if cmd.Flags().Changed(flagNum) {
		if num, err = config.ParseCoefficients(f.num); err != nil {
			return nil, nil, fmt.Errorf("--%s: %w", flagNum, err)
		}
	}
	if cmd.Flags().Changed(flagDen) {
		if den, err = config.ParseCoefficients(f.den); err != nil {
			return nil, nil, fmt.Errorf("--%s: %w", flagDen, err)
		}
	}
	if len(num) == 0 {
		return nil, nil, fmt.Errorf("%w: no numerator coefficients (use -b or ZPLANE_B)", zplane.ErrInvalidInput)
	}

	return zplane.Real(num...), zplane.Real(den...), nil
}

// analysisFlags holds frequency grid and output flags.
type analysisFlags struct {
	samples int
	sfNorm  float64
	nyquist bool
	whole   bool
	strict  bool
	step    int
}

func addAnalysisFlags(cmd *cobra.Command, f *analysisFlags) {
	cmd.Flags().IntVarP(&f.samples, flagSamples, "n", zplane.DefaultNumSamples, "number of frequency points")
	cmd.Flags().Float64Var(&f.sfNorm, flagSFNorm, zplane.DefaultSFNorm, "frequency the Nyquist limit maps to")
	cmd.Flags().BoolVar(&f.nyquist, flagNyquist, false, "include the Nyquist frequency in the grid")
	cmd.Flags().BoolVar(&f.whole, flagWhole, false, "sample the whole unit circle")
	cmd.Flags().BoolVar(&f.strict, flagStrict, false, "fail when the response is undefined at a sample")
	cmd.Flags().IntVar(&f.step, flagStep, 1, "print every n-th frequency point")
}

// options merges flag values over the loaded configuration.
func (f *analysisFlags) options(cmd *cobra.Command) zplane.Options {
	opts := zplane.Options{
		NumSamples:     cfg.Analysis.Samples,
		SFNorm:         cfg.Analysis.SFNorm,
		IncludeNyquist: cfg.Analysis.IncludeNyquist,
		Whole:          cfg.Analysis.Whole,
		Strict:         cfg.Analysis.Strict,
	}

	flags := cmd.Flags()
	if flags.Changed(flagSamples) {
		opts.NumSamples = f.samples
	}
	if flags.Changed(flagSFNorm) {
		opts.SFNorm = f.sfNorm
	}
	if flags.Changed(flagNyquist) {
		opts.IncludeNyquist = f.nyquist
	}
	if flags.Changed(flagWhole) {
		opts.Whole = f.whole
	}
	if flags.Changed(flagStrict) {
		opts.Strict = f.strict
	}
	return opts
}

func (f *analysisFlags) renderer(cmd *cobra.Command) zplane.TableRenderer {
	step := cfg.Output.Step
	if cmd.Flags().Changed(flagStep) {
		step = f.step
	}
	return zplane.TableRenderer{Step: step}
}

func addAxisFlag(cmd *cobra.Command, lim *float64, def float64) {
	cmd.Flags().Float64Var(lim, flagAxisLim, def, "pole-zero axis limit")
}

// axisLimit returns the flag value when set, otherwise the configured value
// when it differs from the library default, otherwise def.
func axisLimit(cmd *cobra.Command, lim, def float64) float64 {
	if cmd.Flags().Changed(flagAxisLim) {
		return lim
	}
	if cfg.Output.AxisLimit != zplane.DefaultAxisLimit {
		return cfg.Output.AxisLimit
	}
	return def
}
