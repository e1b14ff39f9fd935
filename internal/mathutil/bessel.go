// Package mathutil provides numeric helpers shared by the response and
// filter design code: phase unwrapping, decibel conversion, the modified
// Bessel function I₀ and Kaiser window parameter estimates.
package mathutil

import "math"

// BesselI0 computes the zeroth-order modified Bessel function of the first
// kind by summing its power series
//
//	I₀(x) = Σ ((x/2)^k / k!)²
//
// until the next term no longer changes the result. The series converges for
// all x; the Kaiser windows built from it use β ≤ ~20.
func BesselI0(x float64) float64 {
	half := x / 2
	sum := 1.0
	term := 1.0

	for k := 1; k <= besselSeriesMaxTerms; k++ {
		f := half / float64(k)
		term *= f * f
		sum += term
		if term < sum*besselSeriesRelTol {
			break
		}
	}

	return sum
}

// KaiserBeta calculates the Kaiser window β parameter for a desired stopband
// attenuation in dB.
//
//	β = 0.1102(A - 8.7)                        A > 50
//	β = 0.5842(A - 21)^0.4 + 0.07886(A - 21)   21 ≤ A ≤ 50
//	β = 0                                       A < 21
func KaiserBeta(attenuation float64) float64 {
	switch {
	case attenuation > kaiserAttHigh:
		return kaiserBetaHighCoeff1 * (attenuation - kaiserBetaHighOffset)
	case attenuation >= kaiserAttMedium:
		delta := attenuation - kaiserAttMedium
		return kaiserBetaMediumCoeff1*math.Pow(delta, kaiserBetaMediumPower) + kaiserBetaMediumCoeff2*delta
	default:
		return 0
	}
}

// EstimateFilterLength estimates the number of taps a Kaiser-window FIR needs
// for the given attenuation (dB) and transition bandwidth (fraction of the
// sample rate). The result is odd and clamped to [3, 8191].
func EstimateFilterLength(attenuation, transitionBW float64) int {
	if transitionBW <= 0 {
		transitionBW = defaultTransitionBW
	}

	numTaps := (attenuation - kaiserFilterLengthOffset) /
		(kaiserFilterLengthMultiplier * kaiserFilterLengthPiFactor * math.Pi * transitionBW)

	taps := int(math.Ceil(numTaps))
	if taps%2 == 0 {
		taps++
	}

	return min(max(taps, minFilterLength), maxFilterLength)
}
