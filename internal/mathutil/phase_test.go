package mathutil

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-zplane/internal/testutil"
)

func TestUnwrap_LinearPhase(t *testing.T) {
	// A pure delay of 5 samples wraps several times over [0, π).
	const n = 64
	want := make([]float64, n)
	h := make([]complex128, n)
	for k := range n {
		w := math.Pi * float64(k) / n
		want[k] = -5 * w
		h[k] = cmplx.Exp(complex(0, -5*w))
	}

	got := Unwrap(Angles(h))

	require.Len(t, got, n)
	for k := range n {
		assert.InDelta(t, want[k], got[k], testutil.DefaultTolerance, "k=%d", k)
	}
	testutil.AssertMaxStep(t, got, math.Pi)
}

func TestUnwrap_CrossesBoundary(t *testing.T) {
	in := []float64{3.0, -3.0, -2.5, 3.1}

	got := Unwrap(in)

	assert.InDelta(t, 3.0, got[0], testutil.DefaultTolerance)
	assert.InDelta(t, -3.0+2*math.Pi, got[1], testutil.DefaultTolerance)
	assert.InDelta(t, -2.5+2*math.Pi, got[2], testutil.DefaultTolerance)
	assert.InDelta(t, 3.1, got[3], testutil.DefaultTolerance)
	testutil.AssertMaxStep(t, got, math.Pi)
}

func TestUnwrap_ExactPiJumpKept(t *testing.T) {
	got := Unwrap([]float64{0, math.Pi, 0, -math.Pi})

	assert.Equal(t, []float64{0, math.Pi, 0, -math.Pi}, got)
}

func TestUnwrap_EdgeCases(t *testing.T) {
	assert.Empty(t, Unwrap(nil))
	assert.Equal(t, []float64{1.5}, Unwrap([]float64{1.5}))
}

func TestUnwrap_DoesNotModifyInput(t *testing.T) {
	in := []float64{3.0, -3.0}
	_ = Unwrap(in)
	assert.Equal(t, []float64{3.0, -3.0}, in)
}

func TestMagnitudeDB(t *testing.T) {
	assert.InDelta(t, 0.0, MagnitudeDB(1), testutil.DefaultTolerance)
	assert.InDelta(t, 20.0, MagnitudeDB(10), testutil.DefaultTolerance)
	assert.InDelta(t, -6.0206, MagnitudeDB(0.5), 1e-4)
	assert.True(t, math.IsInf(MagnitudeDB(0), -1))
	assert.True(t, math.IsInf(MagnitudeDB(math.Inf(1)), 1))
}
