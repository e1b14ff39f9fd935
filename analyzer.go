package zplane

import (
	"errors"
	"fmt"
	"math/cmplx"

	"github.com/tphakala/go-zplane/internal/freqz"
	"github.com/tphakala/simd/c128"
)

// Error values.
var (
	// ErrInvalidInput is returned for empty or non-finite coefficient
	// sequences, an all-zero denominator or a non-positive sample count.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDegenerateEvaluation marks frequency samples where the denominator
	// vanishes, i.e. a pole lies on a sampled point of the unit circle.
	ErrDegenerateEvaluation = errors.New("degenerate evaluation")
)

// Options configures an Analyzer. The zero value selects the defaults.
type Options struct {
	// NumSamples is the number of frequency points. Zero selects
	// DefaultNumSamples.
	NumSamples int

	// Whole samples the full unit circle [0, 2π) instead of [0, π).
	Whole bool

	// IncludeNyquist spaces the points over [0, π] inclusive.
	IncludeNyquist bool

	// Strict turns degenerate samples into an error instead of marking them
	// in FrequencyResponse.Degenerate.
	Strict bool

	// SFNorm is the value the Nyquist frequency maps to on the frequency
	// axis of an Analysis. Zero selects 1 (normalized frequency).
	SFNorm float64
}

// Validate checks the options for consistency.
func (o *Options) Validate() error {
	if o.NumSamples < 0 {
		return fmt.Errorf("%w: number of samples must be positive, got %d", ErrInvalidInput, o.NumSamples)
	}
	if o.SFNorm < 0 || !isFinite(o.SFNorm) {
		return fmt.Errorf("%w: frequency normalization must be a positive finite value, got %g", ErrInvalidInput, o.SFNorm)
	}
	return nil
}

func (o Options) withDefaults() Options {
	if o.NumSamples == 0 {
		o.NumSamples = DefaultNumSamples
	}
	if o.SFNorm == 0 {
		o.SFNorm = DefaultSFNorm
	}
	return o
}

// Analyzer computes frequency responses and pole/zero/gain decompositions of
// transfer functions H(z) = B(z)/A(z). It holds no mutable state and is safe
// for concurrent use.
type Analyzer struct {
	opts Options
}

// NewAnalyzer creates an Analyzer with the given options.
func NewAnalyzer(opts Options) (*Analyzer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Analyzer{opts: opts.withDefaults()}, nil
}

// Options returns the effective options, defaults applied.
func (an *Analyzer) Options() Options {
	return an.opts
}

// FrequencyResponse evaluates H(e^jw) = B(e^jw)/A(e^jw) on the configured
// grid, where coefficient k multiplies e^-jwk.
//
// Samples where |A(e^jw)| is negligible relative to the denominator
// coefficients are set to complex infinity and listed in Degenerate; with
// Options.Strict the call fails with ErrDegenerateEvaluation instead.
func (an *Analyzer) FrequencyResponse(b, a Polynomial) (*FrequencyResponse, error) {
	if err := b.validate("numerator"); err != nil {
		return nil, err
	}
	if err := a.validateDenominator(); err != nil {
		return nil, err
	}

	grid := freqz.Grid{
		N:              an.opts.NumSamples,
		Whole:          an.opts.Whole,
		IncludeNyquist: an.opts.IncludeNyquist,
	}

	num, den := freqz.Spectra(b, a, grid)

	threshold := degenerateRelTol * a.absSum()
	inv := make([]complex128, len(den))
	var degenerate []int
	for k, d := range den {
		if cmplx.Abs(d) <= threshold {
			degenerate = append(degenerate, k)
			continue
		}
		inv[k] = 1 / d
	}

	h := make([]complex128, len(num))
	c128.Mul(h, num, inv)
	for _, k := range degenerate {
		h[k] = cmplx.Inf()
	}

	resp := &FrequencyResponse{
		Omega:      grid.Omega(),
		H:          h,
		Degenerate: degenerate,
	}

	if an.opts.Strict {
		if err := resp.Err(); err != nil {
			return nil, err
		}
	}

	return resp, nil
}

// PoleZeroGain normalizes B and A by their maximum coefficients when those
// exceed one and returns the roots of the normalized polynomials together
// with the gain kn/kd.
func (an *Analyzer) PoleZeroGain(b, a Polynomial) (*PoleZeroGain, error) {
	if err := b.validate("numerator"); err != nil {
		return nil, err
	}
	if err := a.validateDenominator(); err != nil {
		return nil, err
	}

	normB, kn := b.Normalize()
	normA, kd := a.Normalize()

	zeros, err := normB.Roots()
	if err != nil {
		return nil, fmt.Errorf("numerator roots: %w", err)
	}

	poles, err := normA.Roots()
	if err != nil {
		return nil, fmt.Errorf("denominator roots: %w", err)
	}

	return &PoleZeroGain{
		Zeros:            zeros,
		Poles:            poles,
		Gain:             kn / kd,
		NumeratorScale:   kn,
		DenominatorScale: kd,
	}, nil
}

// Analyze computes the frequency response and the pole/zero/gain
// decomposition in one call.
func (an *Analyzer) Analyze(b, a Polynomial) (*Analysis, error) {
	resp, err := an.FrequencyResponse(b, a)
	if err != nil {
		return nil, err
	}

	pzk, err := an.PoleZeroGain(b, a)
	if err != nil {
		return nil, err
	}

	return &Analysis{
		Numerator:   b,
		Denominator: a,
		Response:    resp,
		PoleZero:    pzk,
		SFNorm:      an.opts.SFNorm,
	}, nil
}

// Analysis bundles everything needed to draw the magnitude, phase and
// pole-zero plots of a transfer function.
type Analysis struct {
	Numerator   Polynomial
	Denominator Polynomial
	Response    *FrequencyResponse
	PoleZero    *PoleZeroGain

	// SFNorm is the frequency the Nyquist limit maps to.
	SFNorm float64
}

// Frequencies returns the response grid scaled to SFNorm.
func (a *Analysis) Frequencies() []float64 {
	return a.Response.Frequencies(a.SFNorm)
}

// ComputeFrequencyResponse evaluates H(e^jw) at numSamples points spaced
// uniformly over [0, π).
func ComputeFrequencyResponse(b, a Polynomial, numSamples int) (*FrequencyResponse, error) {
	if numSamples <= 0 {
		return nil, fmt.Errorf("%w: number of samples must be positive, got %d", ErrInvalidInput, numSamples)
	}

	an, err := NewAnalyzer(Options{NumSamples: numSamples})
	if err != nil {
		return nil, err
	}
	return an.FrequencyResponse(b, a)
}

// ComputePoleZeroGain returns the zeros, poles and gain of H(z) = B(z)/A(z).
func ComputePoleZeroGain(b, a Polynomial) (*PoleZeroGain, error) {
	return (&Analyzer{opts: Options{}.withDefaults()}).PoleZeroGain(b, a)
}

// Analyze computes the frequency response and pole/zero/gain decomposition
// of H(z) = B(z)/A(z) with the given options.
func Analyze(b, a Polynomial, opts Options) (*Analysis, error) {
	an, err := NewAnalyzer(opts)
	if err != nil {
		return nil, err
	}
	return an.Analyze(b, a)
}
