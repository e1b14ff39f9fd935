package mathutil

import (
	"math"
	"math/cmplx"
)

// Unwrap removes the 2π discontinuities from a sequence of phase angles in
// radians. Whenever two consecutive samples differ by more than π, a
// multiple of 2π is added to the rest of the sequence so the jump becomes
// its principal value in [-π, π]. A jump of exactly π keeps its sign.
func Unwrap(phase []float64) []float64 {
	out := make([]float64, len(phase))
	if len(phase) == 0 {
		return out
	}

	out[0] = phase[0]
	correction := 0.0

	for i := 1; i < len(phase); i++ {
		d := phase[i] - phase[i-1]
		if math.Abs(d) >= math.Pi {
			wrapped := principal(d)
			if wrapped == -math.Pi && d > 0 {
				wrapped = math.Pi
			}
			correction += wrapped - d
		}
		out[i] = phase[i] + correction
	}

	return out
}

// principal maps x into [-π, π).
func principal(x float64) float64 {
	m := math.Mod(x+math.Pi, twoPi)
	if m < 0 {
		m += twoPi
	}
	return m - math.Pi
}

// Angles returns the argument of each complex value in (-π, π].
func Angles(h []complex128) []float64 {
	out := make([]float64, len(h))
	for i, v := range h {
		out[i] = cmplx.Phase(v)
	}
	return out
}

// MagnitudeDB converts a linear magnitude to decibels, 20·log10(m).
// Zero maps to -Inf and +Inf stays +Inf.
func MagnitudeDB(magnitude float64) float64 {
	return dbMagnitudeMultiplier * math.Log10(magnitude)
}
