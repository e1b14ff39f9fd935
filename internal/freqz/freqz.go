// Package freqz evaluates the numerator and denominator of a digital transfer
// function on a uniform grid of the unit circle.
//
// Coefficients follow the usual filter convention: coeff[k] multiplies z^-k,
// so B(e^jw) = Σ b[k]·e^(-jwk). When the grid is an FFT grid and both
// polynomials fit in the transform length, the spectra come from a single
// zero-padded FFT each; otherwise every point is evaluated with Horner's
// method.
package freqz

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
)

const (
	// Spans of the sampled angular frequency
	halfCircle = math.Pi
	fullCircle = 2 * math.Pi

	// Real FFTs of length n produce n/2 + 1 unique bins
	hermitianDivisor = 2

	// Shortest transform worth running; below this Horner is used
	minFFTLen = 2
)

// Grid describes the sampled angular frequencies.
type Grid struct {
	// N is the number of frequency points.
	N int

	// Whole samples the full circle [0, 2π) instead of the upper half.
	Whole bool

	// IncludeNyquist places the last point at π when Whole is false, so the
	// N points span [0, π] inclusive. Otherwise the grid is [0, π) with step π/N.
	IncludeNyquist bool
}

// Omega returns the N angular frequencies of the grid in radians/sample.
func (g Grid) Omega() []float64 {
	if g.N <= 0 {
		return []float64{}
	}
	if g.N == 1 {
		return []float64{0}
	}

	upper := halfCircle
	if g.Whole {
		upper = fullCircle
	}

	if g.IncludeNyquist && !g.Whole {
		return floats.Span(make([]float64, g.N), 0, upper)
	}

	return floats.Span(make([]float64, g.N+1), 0, upper)[:g.N]
}

// FFTLen returns the transform length whose bins coincide with the grid, or
// zero when no transform grid exists.
func (g Grid) FFTLen() int {
	switch {
	case g.N <= 0:
		return 0
	case g.Whole:
		return g.N
	case g.IncludeNyquist:
		return hermitianDivisor * (g.N - 1)
	default:
		return hermitianDivisor * g.N
	}
}

// Spectra evaluates B(e^jw) and A(e^jw) on the grid.
func Spectra(b, a []complex128, g Grid) (num, den []complex128) {
	n := g.FFTLen()
	if n >= minFFTLen && len(b) <= n && len(a) <= n {
		return spectrumFFT(b, n, g), spectrumFFT(a, n, g)
	}

	omega := g.Omega()
	return spectrumHorner(b, omega), spectrumHorner(a, omega)
}

// EvalAt returns Σ coeff[k]·e^(-jwk).
func EvalAt(coeff []complex128, w float64) complex128 {
	if len(coeff) == 0 {
		return 0
	}

	x := cmplx.Exp(complex(0, -w))
	v := coeff[len(coeff)-1]
	for k := len(coeff) - 2; k >= 0; k-- {
		v = v*x + coeff[k]
	}
	return v
}

func spectrumHorner(coeff []complex128, omega []float64) []complex128 {
	out := make([]complex128, len(omega))
	for i, w := range omega {
		out[i] = EvalAt(coeff, w)
	}
	return out
}

func spectrumFFT(coeff []complex128, n int, g Grid) []complex128 {
	if isReal(coeff) && !g.Whole {
		seq := make([]float64, n)
		for i, c := range coeff {
			seq[i] = real(c)
		}
		bins := fourier.NewFFT(n).Coefficients(nil, seq)
		return bins[:g.N]
	}

	seq := make([]complex128, n)
	copy(seq, coeff)
	bins := fourier.NewCmplxFFT(n).Coefficients(nil, seq)
	return bins[:g.N]
}

func isReal(coeff []complex128) bool {
	for _, c := range coeff {
		if imag(c) != 0 {
			return false
		}
	}
	return true
}
