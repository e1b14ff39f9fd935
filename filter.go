package zplane

import (
	"fmt"
	"slices"

	"github.com/tphakala/go-zplane/internal/convolve"
)

// Filter applies a real transfer function H(z) = B(z)/A(z) to a signal, one
// block at a time, keeping its state between calls. Coefficient k multiplies
// z^-k. A Filter is not safe for concurrent use.
type Filter struct {
	b, a  []float64
	state []float64 // direct form II transposed delay line

	// FIR path: correlation with the reversed taps over history + block
	fir     bool
	conv    *convolve.Correlator
	history []float64
}

// NewFilter creates a filter from real coefficients. Both polynomials are
// divided by a[0], which must be nonzero.
func NewFilter(b, a Polynomial) (*Filter, error) {
	if err := b.validate("numerator"); err != nil {
		return nil, err
	}
	if err := a.validateDenominator(); err != nil {
		return nil, err
	}
	if !b.IsReal() || !a.IsReal() {
		return nil, fmt.Errorf("%w: filter coefficients must be real", ErrInvalidInput)
	}
	if a[0] == 0 {
		return nil, fmt.Errorf("%w: leading denominator coefficient is zero", ErrInvalidInput)
	}

	a0 := real(a[0])
	bn := b.RealParts()
	an := a.RealParts()
	for i := range bn {
		bn[i] /= a0
	}
	for i := range an {
		an[i] /= a0
	}

	f := &Filter{b: bn, a: an}

	if len(an) == 1 {
		f.fir = true
		taps := slices.Clone(bn)
		slices.Reverse(taps)
		f.conv = convolve.New(taps)
		f.history = make([]float64, len(bn)-1)
		return f, nil
	}

	order := max(len(bn), len(an))
	f.b = append(f.b, make([]float64, order-len(bn))...)
	f.a = append(f.a, make([]float64, order-len(an))...)
	f.state = make([]float64, order-1)
	return f, nil
}

// Process filters x and returns a new slice of the same length.
func (f *Filter) Process(x []float64) []float64 {
	if len(x) == 0 {
		return []float64{}
	}
	if f.fir {
		return f.processFIR(x)
	}

	y := make([]float64, len(x))
	z := f.state // len >= 1 on this path
	n := len(z)
	for i, xi := range x {
		yi := f.b[0]*xi + z[0]
		for k := range n - 1 {
			z[k] = f.b[k+1]*xi - f.a[k+1]*yi + z[k+1]
		}
		z[n-1] = f.b[n]*xi - f.a[n]*yi
		y[i] = yi
	}
	return y
}

// processFIR correlates the history-prefixed block with the reversed taps so
// y[n] = Σ b[k]·x[n-k]. Long filters are evaluated with FFT blocks.
func (f *Filter) processFIR(x []float64) []float64 {
	m := len(f.history)
	buf := make([]float64, m+len(x))
	copy(buf, f.history)
	copy(buf[m:], x)

	y := make([]float64, len(x))
	f.conv.Valid(y, buf)

	copy(f.history, buf[len(buf)-m:])
	return y
}

// Reset clears the filter state.
func (f *Filter) Reset() {
	clear(f.state)
	clear(f.history)
}

// ImpulseResponse returns the first n samples of h[n]. The filter state is
// not touched.
func (f *Filter) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return []float64{}
	}

	g := f.clone()
	g.Reset()
	impulse := make([]float64, n)
	impulse[0] = 1
	return g.Process(impulse)
}

func (f *Filter) clone() *Filter {
	return &Filter{
		b:       f.b,
		a:       f.a,
		state:   slices.Clone(f.state),
		fir:     f.fir,
		conv:    f.conv,
		history: slices.Clone(f.history),
	}
}
