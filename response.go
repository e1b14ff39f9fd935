package zplane

import (
	"fmt"
	"math"
	"math/cmplx"
	"slices"

	"github.com/tphakala/go-zplane/internal/mathutil"
	"gonum.org/v1/gonum/floats"
)

// FrequencyResponse holds H(e^jw) sampled on a grid of angular frequencies.
type FrequencyResponse struct {
	// Omega is the angular frequency of each sample in radians/sample.
	Omega []float64

	// H is the complex response at each frequency.
	H []complex128

	// Degenerate lists the indices where the denominator vanishes. H is
	// complex infinity at those points.
	Degenerate []int
}

// Len returns the number of samples.
func (r *FrequencyResponse) Len() int {
	return len(r.H)
}

// Err returns an error wrapping ErrDegenerateEvaluation when any sample is
// undefined, nil otherwise.
func (r *FrequencyResponse) Err() error {
	if len(r.Degenerate) == 0 {
		return nil
	}
	k := r.Degenerate[0]
	return fmt.Errorf("%w: %d undefined samples, first at w=%g rad/sample",
		ErrDegenerateEvaluation, len(r.Degenerate), r.Omega[k])
}

// IsDegenerate reports whether sample i is undefined.
func (r *FrequencyResponse) IsDegenerate(i int) bool {
	_, found := slices.BinarySearch(r.Degenerate, i)
	return found
}

// Magnitude returns |H| at each sample. Undefined samples are +Inf.
func (r *FrequencyResponse) Magnitude() []float64 {
	out := make([]float64, len(r.H))
	for i, h := range r.H {
		out[i] = cmplx.Abs(h)
	}
	return out
}

// MagnitudeDB returns 20·log10|H| at each sample. Zeros of the response map
// to -Inf and undefined samples to +Inf.
func (r *FrequencyResponse) MagnitudeDB() []float64 {
	out := r.Magnitude()
	for i, m := range out {
		out[i] = mathutil.MagnitudeDB(m)
	}
	return out
}

// Phase returns the wrapped angle of H in (-π, π]. Undefined samples are NaN.
func (r *FrequencyResponse) Phase() []float64 {
	out := mathutil.Angles(r.H)
	for _, k := range r.Degenerate {
		out[k] = math.NaN()
	}
	return out
}

// UnwrappedPhase returns the angle of H with 2π jumps removed, so no two
// consecutive defined samples differ by more than π. Undefined samples are
// NaN and skipped when unwrapping.
func (r *FrequencyResponse) UnwrappedPhase() []float64 {
	if len(r.Degenerate) == 0 {
		return mathutil.Unwrap(mathutil.Angles(r.H))
	}

	out := make([]float64, len(r.H))
	defined := make([]int, 0, len(r.H)-len(r.Degenerate))
	angles := make([]float64, 0, cap(defined))
	for i, h := range r.H {
		if r.IsDegenerate(i) {
			out[i] = math.NaN()
			continue
		}
		defined = append(defined, i)
		angles = append(angles, cmplx.Phase(h))
	}

	for j, v := range mathutil.Unwrap(angles) {
		out[defined[j]] = v
	}
	return out
}

// Frequencies maps the angular grid to a frequency axis where π becomes
// sfNorm, i.e. w/π·sfNorm. With sfNorm = fs/2 the axis is in Hz.
func (r *FrequencyResponse) Frequencies(sfNorm float64) []float64 {
	return floats.ScaleTo(make([]float64, len(r.Omega)), sfNorm/math.Pi, r.Omega)
}

// GroupDelay returns -dφ/dw in samples estimated from the unwrapped phase
// with central differences (one-sided at the ends). Samples next to an
// undefined point are NaN.
func (r *FrequencyResponse) GroupDelay() []float64 {
	n := len(r.H)
	out := make([]float64, n)
	if n < 2 {
		return out
	}

	phase := r.UnwrappedPhase()
	for i := range n {
		lo, hi := max(i-1, 0), min(i+1, n-1)
		out[i] = -(phase[hi] - phase[lo]) / (r.Omega[hi] - r.Omega[lo])
	}
	return out
}
