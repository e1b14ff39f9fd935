package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tphakala/go-zplane/internal/testutil"
)

// TestBesselI0 tests BesselI0 against known values.
func TestBesselI0(t *testing.T) {
	tests := []struct {
		name      string
		x         float64
		expected  float64
		tolerance float64
	}{
		{"Zero", 0.0, 1.0, 1e-15},
		{"Small positive", 0.5, 1.0634833707413236, 1e-12},
		{"One", 1.0, 1.2660658777520082, 1e-12},
		{"Two", 2.0, 2.2795853023360673, 1e-12},
		{"Five", 5.0, 27.239871823604442, 1e-12},
		{"Ten", 10.0, 2815.716628466254, 1e-12},
		{"Twenty", 20.0, 4.355828255955353e7, 1e-12},
		{"Negative one", -1.0, 1.2660658777520082, 1e-12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertRelativeError(t, tt.expected, BesselI0(tt.x), tt.tolerance)
		})
	}
}

// TestBesselI0_Monotonic tests I₀(x) is increasing for x > 0.
func TestBesselI0_Monotonic(t *testing.T) {
	prev := BesselI0(0)
	for x := 0.25; x <= 20; x += 0.25 {
		v := BesselI0(x)
		assert.Greater(t, v, prev, "BesselI0 not increasing at x=%v", x)
		prev = v
	}
}

// TestKaiserBeta tests Kaiser beta calculation.
func TestKaiserBeta(t *testing.T) {
	tests := []struct {
		name        string
		attenuation float64
		expectedMin float64
		expectedMax float64
	}{
		{"20dB", 20.0, 0.0, 0.0},
		{"50dB", 50.0, 4.5, 4.6},
		{"60dB", 60.0, 5.6, 5.7},
		{"80dB", 80.0, 7.8, 7.9},
		{"100dB", 100.0, 10.0, 10.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			beta := KaiserBeta(tt.attenuation)
			assert.GreaterOrEqual(t, beta, tt.expectedMin)
			assert.LessOrEqual(t, beta, tt.expectedMax)
		})
	}
}

// TestEstimateFilterLength tests that EstimateFilterLength produces odd, bounded lengths.
func TestEstimateFilterLength(t *testing.T) {
	tests := []struct {
		name         string
		attenuation  float64
		transitionBW float64
		minTaps      int
		maxTaps      int
	}{
		{"96dB_0.1", 96.0, 0.1, 60, 80},
		{"80dB_0.2", 80.0, 0.2, 20, 35},
		{"zero_transition", 100.0, 0.0, 3, 8191},
		{"low_attenuation", 10.0, 0.1, 3, 3},
		{"clamped_high", 200.0, 0.0001, 8191, 8191},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			taps := EstimateFilterLength(tt.attenuation, tt.transitionBW)

			assert.Equal(t, 1, taps%2, "filter length should be odd: %d", taps)
			assert.GreaterOrEqual(t, taps, tt.minTaps)
			assert.LessOrEqual(t, taps, tt.maxTaps)
		})
	}
}

func BenchmarkBesselI0(b *testing.B) {
	for b.Loop() {
		_ = BesselI0(8.6)
	}
}
