package zplane

import "math/cmplx"

// PoleZeroGain is the factored form of a transfer function.
type PoleZeroGain struct {
	// Zeros are the roots of the normalized numerator.
	Zeros []complex128

	// Poles are the roots of the normalized denominator.
	Poles []complex128

	// Gain is NumeratorScale / DenominatorScale.
	Gain float64

	// NumeratorScale (kn) is the divisor applied to the numerator: its
	// maximum coefficient when that exceeds one, otherwise 1.
	NumeratorScale float64

	// DenominatorScale (kd) is the divisor applied to the denominator.
	DenominatorScale float64
}

// Stable reports whether every pole lies strictly inside the unit circle.
func (p *PoleZeroGain) Stable() bool {
	return insideUnitCircle(p.Poles)
}

// MinimumPhase reports whether the system is stable and every zero lies
// strictly inside the unit circle.
func (p *PoleZeroGain) MinimumPhase() bool {
	return p.Stable() && insideUnitCircle(p.Zeros)
}

// MaxRadius returns the largest magnitude among poles and zeros, useful for
// choosing the axis limit of a pole-zero diagram. It is 0 when there are none.
func (p *PoleZeroGain) MaxRadius() float64 {
	var r float64
	for _, set := range [][]complex128{p.Zeros, p.Poles} {
		for _, z := range set {
			r = max(r, cmplx.Abs(z))
		}
	}
	return r
}

func insideUnitCircle(roots []complex128) bool {
	for _, z := range roots {
		if cmplx.Abs(z) >= 1 {
			return false
		}
	}
	return true
}
