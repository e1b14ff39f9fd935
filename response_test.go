package zplane

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-zplane/internal/testutil"
)

func TestFrequencyResponse_UnwrappedPhaseDelay(t *testing.T) {
	// z^-8 has linear phase -8w that wraps four times over [0, π).
	b := Real(0, 0, 0, 0, 0, 0, 0, 0, 1)

	resp, err := ComputeFrequencyResponse(b, Real(1), testSamples512)
	require.NoError(t, err)

	wrapped := resp.Phase()
	unwrapped := resp.UnwrappedPhase()

	assert.Greater(t, maxStep(wrapped), math.Pi, "wrapped phase should jump")
	testutil.AssertMaxStep(t, unwrapped, math.Pi)
	for i, w := range resp.Omega {
		assert.InDelta(t, -8*w, unwrapped[i], 1e-9, "i=%d", i)
	}
}

func TestFrequencyResponse_GroupDelay(t *testing.T) {
	resp, err := ComputeFrequencyResponse(Real(0, 0, 0, 1), Real(1), testSamples64)
	require.NoError(t, err)

	for i, gd := range resp.GroupDelay() {
		assert.InDelta(t, 3.0, gd, 1e-6, "i=%d", i)
	}
}

func TestFrequencyResponse_Frequencies(t *testing.T) {
	resp, err := ComputeFrequencyResponse(Real(1), Real(1), testSamples4)
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{0, 0.25, 0.5, 0.75}, resp.Frequencies(1), testutil.DefaultTolerance)
	assert.InDeltaSlice(t, []float64{0, 5512.5, 11025, 16537.5}, resp.Frequencies(22050), 1e-6)
}

func TestFrequencyResponse_Magnitude(t *testing.T) {
	// 1 + z^-1 has |H| = 2 at DC and a null at Nyquist.
	an, err := NewAnalyzer(Options{NumSamples: 3, IncludeNyquist: true})
	require.NoError(t, err)

	resp, err := an.FrequencyResponse(Real(1, 1), Real(1))
	require.NoError(t, err)

	mag := resp.Magnitude()
	assert.InDelta(t, 2.0, mag[0], testutil.DefaultTolerance)
	assert.InDelta(t, math.Sqrt2, mag[1], testutil.DefaultTolerance)
	assert.InDelta(t, 0.0, mag[2], 1e-12)

	db := resp.MagnitudeDB()
	assert.InDelta(t, 6.0206, db[0], 1e-4)
	assert.Less(t, db[2], -200.0)
}

func maxStep(s []float64) float64 {
	var m float64
	for i := 1; i < len(s); i++ {
		m = max(m, math.Abs(s[i]-s[i-1]))
	}
	return m
}
