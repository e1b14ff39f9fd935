// Package testutil provides reusable assertions for transfer-function tests.
package testutil

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-10
	RootTolerance    = 1e-8
	WindowTolerance  = 1e-10
	DBTolerance      = 0.01
)

// AssertComplexInDelta verifies that |expected - actual| <= tolerance.
func AssertComplexInDelta(t *testing.T, expected, actual complex128, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if d := cmplx.Abs(expected - actual); d > tolerance {
		return assert.Fail(t, "complex values differ",
			"expected %v, got %v (|diff|=%e > %e)", expected, actual, d, tolerance)
	}
	return true
}

// AssertRootsMatch verifies that two root sets are equal as multisets within
// tolerance, independent of order.
func AssertRootsMatch(t *testing.T, expected, actual []complex128, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}

	used := make([]bool, len(actual))
	for _, want := range expected {
		best := -1
		bestDist := math.Inf(1)
		for j, got := range actual {
			if used[j] {
				continue
			}
			if d := cmplx.Abs(want - got); d < bestDist {
				best, bestDist = j, d
			}
		}
		if best < 0 || bestDist > tolerance {
			return assert.Fail(t, "root not found",
				"no root within %e of %v in %v", tolerance, want, actual)
		}
		used[best] = true
	}
	return true
}

// AssertPolyZeros verifies that every root evaluates to ~0 on the polynomial
// given in descending power order.
func AssertPolyZeros(t *testing.T, coeff, roots []complex128, tolerance float64) bool {
	t.Helper()
	for i, r := range roots {
		var v complex128
		for _, c := range coeff {
			v = v*r + c
		}
		if cmplx.Abs(v) > tolerance {
			return assert.Fail(t, "not a root",
				"p(roots[%d]=%v) = %v, want ~0", i, r, v)
		}
	}
	return true
}

// AssertSymmetric verifies that a slice is symmetric (s[i] == s[n-1-i]).
func AssertSymmetric(t *testing.T, s []float64, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	n := len(s)
	for i := 0; i < n/2; i++ {
		j := n - 1 - i
		if !assert.InDelta(t, s[i], s[j], tolerance,
			"slice not symmetric at i=%d: s[%d]=%f != s[%d]=%f", i, i, s[i], j, s[j]) {
			return false
		}
	}
	return true
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertMonotonic verifies that a slice is strictly increasing.
func AssertMonotonic(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] <= s[i-1] {
			return assert.Fail(t, "not monotonic",
				"s[%d]=%f <= s[%d]=%f", i, s[i], i-1, s[i-1])
		}
	}
	return true
}

// AssertMaxStep verifies that consecutive elements never differ by more than
// maxStep.
func AssertMaxStep(t *testing.T, s []float64, maxStep float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if d := math.Abs(s[i] - s[i-1]); d > maxStep {
			return assert.Fail(t, "step too large",
				"|s[%d]-s[%d]| = %f exceeds %f", i, i-1, d, maxStep)
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)
}

// Real converts real coefficients to complex ones.
func Real(coeffs ...float64) []complex128 {
	out := make([]complex128, len(coeffs))
	for i, c := range coeffs {
		out[i] = complex(c, 0)
	}
	return out
}
