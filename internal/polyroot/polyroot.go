// Package polyroot finds the complex roots of polynomials given in
// descending power order: coeff[0]*z^n + coeff[1]*z^(n-1) + ... + coeff[n].
package polyroot

import (
	"cmp"
	"errors"
	"math"
	"math/cmplx"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// ErrDegeneratePolynomial is returned when the roots of a polynomial cannot
// be determined (eigen decomposition or iteration failed to converge).
var ErrDegeneratePolynomial = errors.New("polyroot: degenerate polynomial")

const (
	// Durand-Kerner iteration limits
	maxIterations     = 500
	convergenceTol    = 1e-12
	acceptResidualTol = 1e-6

	// Initial guess layout on a circle slightly rotated off the real axis
	initialAngleOffset = 0.3
	initialRadiusStep  = 0.1

	// Nudge applied when two estimates coincide
	collisionNudge = 1e-10
)

// Roots returns all roots of the polynomial, sorted by real part and then
// imaginary part.
//
// Leading zero coefficients are ignored, each trailing zero contributes a
// root at the origin, and an all-zero or constant polynomial has no roots.
// Polynomials with purely real coefficients are solved as the eigenvalues of
// their companion matrix; complex polynomials use Durand-Kerner iteration.
func Roots(coeff []complex128) ([]complex128, error) {
	trimmed, trailing := Trim(coeff)

	var (
		roots []complex128
		err   error
	)

	switch {
	case len(trimmed) < 2:
		roots = nil
	case isReal(trimmed):
		rc := make([]float64, len(trimmed))
		for i, c := range trimmed {
			rc[i] = real(c)
		}
		roots, err = CompanionRoots(rc)
	default:
		roots, err = DurandKerner(trimmed)
	}
	if err != nil {
		return nil, err
	}

	out := make([]complex128, 0, len(roots)+trailing)
	out = append(out, roots...)
	for range trailing {
		out = append(out, 0)
	}

	Sort(out)
	return out, nil
}

// Trim strips leading and trailing zero coefficients. It returns the
// remaining coefficients and the number of trailing zeros removed, which is
// the multiplicity of the root at z = 0.
func Trim(coeff []complex128) ([]complex128, int) {
	first := slices.IndexFunc(coeff, func(c complex128) bool { return c != 0 })
	if first < 0 {
		return nil, 0
	}

	last := len(coeff) - 1
	for coeff[last] == 0 {
		last--
	}

	return coeff[first : last+1], len(coeff) - 1 - last
}

// Companion builds the companion matrix of a real polynomial with nonzero
// leading coefficient. The first row holds -c[1:]/c[0] and the subdiagonal
// is one, so its eigenvalues are the polynomial roots.
func Companion(c []float64) *mat.Dense {
	n := len(c) - 1
	m := mat.NewDense(n, n, nil)
	for j := range n {
		m.Set(0, j, -c[j+1]/c[0])
	}
	for i := 1; i < n; i++ {
		m.Set(i, i-1, 1)
	}
	return m
}

// CompanionRoots returns the roots of a real polynomial as the eigenvalues of
// its companion matrix. c[0] must be nonzero and len(c) >= 2.
func CompanionRoots(c []float64) ([]complex128, error) {
	if len(c) < 2 || c[0] == 0 {
		return nil, ErrDegeneratePolynomial
	}

	if len(c) == 2 {
		return []complex128{complex(-c[1]/c[0], 0)}, nil
	}

	var eig mat.Eigen
	if ok := eig.Factorize(Companion(c), mat.EigenNone); !ok {
		return nil, ErrDegeneratePolynomial
	}

	return eig.Values(nil), nil
}

// DurandKerner finds all roots of a polynomial using the Durand-Kerner
// (Weierstrass) simultaneous iteration method.
//
//nolint:cyclop
func DurandKerner(coeff []complex128) ([]complex128, error) {
	if len(coeff) < 2 {
		return nil, ErrDegeneratePolynomial
	}

	lead := coeff[0]
	if lead == 0 {
		return nil, ErrDegeneratePolynomial
	}

	n := len(coeff) - 1

	norm := make([]complex128, len(coeff))
	for i := range coeff {
		norm[i] = coeff[i] / lead
	}

	radius := 1.0
	for i := 1; i <= n; i++ {
		radius = math.Max(radius, cmplx.Abs(norm[i]))
	}

	roots := make([]complex128, n)
	for i := range n {
		angle := 2*math.Pi*float64(i)/float64(n) + initialAngleOffset
		r := radius * (1 + initialRadiusStep*float64(i)/float64(n))
		roots[i] = cmplx.Rect(r, angle)
	}

	for range maxIterations {
		maxDelta := 0.0

		for i := range n {
			den := complex(1, 0)
			for j := range n {
				if i != j {
					den *= roots[i] - roots[j]
				}
			}

			if den == 0 {
				roots[i] += complex(collisionNudge, collisionNudge)
				continue
			}

			delta := PolyEval(norm, roots[i]) / den
			roots[i] -= delta
			maxDelta = math.Max(maxDelta, cmplx.Abs(delta))
		}

		if maxDelta < convergenceTol {
			return roots, nil
		}
	}

	for _, r := range roots {
		if cmplx.Abs(PolyEval(norm, r)) >= acceptResidualTol {
			return nil, ErrDegeneratePolynomial
		}
	}

	return roots, nil
}

// PolyEval evaluates a polynomial at x using Horner's method.
func PolyEval(coeff []complex128, x complex128) complex128 {
	if len(coeff) == 0 {
		return 0
	}

	v := coeff[0]
	for i := 1; i < len(coeff); i++ {
		v = v*x + coeff[i]
	}

	return v
}

// Sort orders roots by real part, then by imaginary part.
func Sort(roots []complex128) {
	slices.SortFunc(roots, Compare)
}

// Compare orders complex numbers lexicographically by real part and then by
// imaginary part.
func Compare(a, b complex128) int {
	if c := cmp.Compare(real(a), real(b)); c != 0 {
		return c
	}
	return cmp.Compare(imag(a), imag(b))
}

func isReal(coeff []complex128) bool {
	for _, c := range coeff {
		if imag(c) != 0 {
			return false
		}
	}
	return true
}
