package zplane

import (
	"fmt"
	"math"
	"math/cmplx"
	"slices"
	"strings"

	"github.com/tphakala/go-zplane/internal/polyroot"
)

// Polynomial is an ordered sequence of coefficients, highest-degree term
// first. The same slice read in the filter convention gives the coefficient
// of z^-k at index k.
type Polynomial []complex128

// Real builds a Polynomial from real coefficients.
func Real(coeffs ...float64) Polynomial {
	p := make(Polynomial, len(coeffs))
	for i, c := range coeffs {
		p[i] = complex(c, 0)
	}
	return p
}

// Degree returns len(p) - 1, or -1 for an empty polynomial.
func (p Polynomial) Degree() int {
	return len(p) - 1
}

// IsReal reports whether every coefficient has a zero imaginary part.
func (p Polynomial) IsReal() bool {
	for _, c := range p {
		if imag(c) != 0 {
			return false
		}
	}
	return true
}

// RealParts returns the real part of every coefficient.
func (p Polynomial) RealParts() []float64 {
	out := make([]float64, len(p))
	for i, c := range p {
		out[i] = real(c)
	}
	return out
}

// Max returns the largest coefficient ordering by real part first and
// imaginary part second. It returns 0 for an empty polynomial.
func (p Polynomial) Max() complex128 {
	if len(p) == 0 {
		return 0
	}
	return slices.MaxFunc(p, polyroot.Compare)
}

// Roots returns the complex roots of p, sorted by real then imaginary part.
func (p Polynomial) Roots() ([]complex128, error) {
	return polyroot.Roots(p)
}

// Normalize divides p by its maximum coefficient when that maximum is
// greater than one and returns the divided polynomial with the scale used.
// Otherwise it returns a copy of p and a scale of 1.
//
// The maximum follows the order of Max; only its real part is used as the
// scale so the result is always real. A complex maximum with real part 1 and
// positive imaginary part compares greater than 1 but still scales by 1.
func (p Polynomial) Normalize() (Polynomial, float64) {
	scale := real(p.Max())
	if scale <= 1 {
		return slices.Clone(p), 1
	}

	out := make(Polynomial, len(p))
	for i, c := range p {
		out[i] = c / complex(scale, 0)
	}
	return out, scale
}

// String formats the coefficients as a comma separated list.
func (p Polynomial) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, c := range p {
		if i > 0 {
			sb.WriteString(", ")
		}
		if imag(c) == 0 {
			fmt.Fprintf(&sb, "%g", real(c))
		} else {
			fmt.Fprintf(&sb, "%g", c)
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

// validate rejects empty or non-finite coefficient sequences.
func (p Polynomial) validate(name string) error {
	if len(p) == 0 {
		return fmt.Errorf("%w: %s coefficients are empty", ErrInvalidInput, name)
	}
	for i, c := range p {
		if cmplx.IsNaN(c) || cmplx.IsInf(c) {
			return fmt.Errorf("%w: %s[%d] is not finite", ErrInvalidInput, name, i)
		}
	}
	return nil
}

// validateDenominator additionally rejects an all-zero denominator.
func (p Polynomial) validateDenominator() error {
	if err := p.validate("denominator"); err != nil {
		return err
	}
	if !slices.ContainsFunc(p, func(c complex128) bool { return c != 0 }) {
		return fmt.Errorf("%w: denominator coefficients are all zero", ErrInvalidInput)
	}
	return nil
}

// absSum returns Σ|p[k]|.
func (p Polynomial) absSum() float64 {
	var s float64
	for _, c := range p {
		s += cmplx.Abs(c)
	}
	return s
}

// isFinite reports whether x is neither NaN nor infinite.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
