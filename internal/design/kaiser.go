// Package design builds coefficient sets for transfer-function analysis.
// It currently provides Kaiser-window lowpass FIR filters.
package design

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-zplane/internal/mathutil"
	"github.com/tphakala/simd/f64"
)

// ErrInvalidParams is returned for out-of-range design parameters.
var ErrInvalidParams = errors.New("invalid design parameters")

const (
	minTaps = 3
	maxTaps = 8191

	// Cutoff is a fraction of the sample rate, so Nyquist is 0.5
	nyquist = 0.5

	sincZeroThreshold = 1e-10
)

// KaiserWindow returns a Kaiser window of the given length:
//
//	w[n] = I₀(β·sqrt(1 - ((n - α)/α)²)) / I₀(β),  α = (length-1)/2
//
// The window is symmetric with a peak of 1 at the center.
func KaiserWindow(length int, beta float64) []float64 {
	if length < 1 {
		return []float64{}
	}
	if length == 1 {
		return []float64{1}
	}

	window := make([]float64, length)
	alpha := float64(length-1) / 2
	i0Beta := mathutil.BesselI0(beta)

	for n := range length {
		x := (float64(n) - alpha) / alpha
		window[n] = mathutil.BesselI0(beta*math.Sqrt(max(0, 1-x*x))) / i0Beta
	}

	return window
}

// Params holds lowpass design parameters.
type Params struct {
	// NumTaps is the filter length. Odd lengths give a type I linear-phase filter.
	NumTaps int

	// Cutoff is the -6 dB frequency as a fraction of the sample rate, in (0, 0.5).
	Cutoff float64

	// Attenuation is the stopband attenuation in dB that selects the window β.
	Attenuation float64

	// Gain is the DC gain. Zero selects 1.
	Gain float64
}

// Validate checks the parameters.
func (p *Params) Validate() error {
	if p.NumTaps < minTaps || p.NumTaps > maxTaps {
		return fmt.Errorf("%w: %d taps (must be %d-%d)", ErrInvalidParams, p.NumTaps, minTaps, maxTaps)
	}
	if p.Cutoff <= 0 || p.Cutoff >= nyquist {
		return fmt.Errorf("%w: cutoff %g (must be in (0, 0.5))", ErrInvalidParams, p.Cutoff)
	}
	if p.Attenuation < 0 {
		return fmt.Errorf("%w: attenuation %g dB (must be non-negative)", ErrInvalidParams, p.Attenuation)
	}
	if p.Gain < 0 {
		return fmt.Errorf("%w: gain %g (must be positive)", ErrInvalidParams, p.Gain)
	}
	return nil
}

// Lowpass designs a windowed-sinc lowpass FIR with a Kaiser window. The taps
// are scaled so they sum to the requested DC gain.
func Lowpass(params Params) ([]float64, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	gain := params.Gain
	if gain == 0 {
		gain = 1
	}

	window := KaiserWindow(params.NumTaps, mathutil.KaiserBeta(params.Attenuation))
	taps := make([]float64, params.NumTaps)
	center := float64(params.NumTaps-1) / 2

	for n := range params.NumTaps {
		x := float64(n) - center
		var sinc float64
		if math.Abs(x) < sincZeroThreshold {
			sinc = 2 * params.Cutoff
		} else {
			sinc = math.Sin(2*math.Pi*params.Cutoff*x) / (math.Pi * x)
		}
		taps[n] = sinc * window[n]
	}

	if sum := f64.Sum(taps); math.Abs(sum) > sincZeroThreshold {
		f64.Scale(taps, taps, gain/sum)
	}

	return taps, nil
}

// LowpassAuto designs a lowpass filter whose length is estimated from the
// attenuation and the transition bandwidth (fraction of the sample rate).
func LowpassAuto(cutoff, transitionBW, attenuation float64) ([]float64, error) {
	return Lowpass(Params{
		NumTaps:     mathutil.EstimateFilterLength(attenuation, transitionBW),
		Cutoff:      cutoff,
		Attenuation: attenuation,
	})
}
