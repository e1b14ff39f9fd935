package convolve

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const convTolerance = 1e-9

func randomSlice(r *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = r.Float64()*2 - 1
	}
	return out
}

func naive(signal, kernel []float64) []float64 {
	n := len(signal) - len(kernel) + 1
	out := make([]float64, n)
	for i := range n {
		for k, h := range kernel {
			out[i] += signal[i+k] * h
		}
	}
	return out
}

func TestNew_SelectsMethod(t *testing.T) {
	assert.False(t, New(make([]float64, FFTThreshold-1)).UsesFFT())
	assert.True(t, New(make([]float64, FFTThreshold)).UsesFFT())
	assert.True(t, NewFFT([]float64{1, 2}).UsesFFT())
}

func TestValid_MatchesNaive(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	tests := []struct {
		name      string
		kernelLen int
		signalLen int
		fft       bool
	}{
		{"direct short", 5, 100, false},
		{"fft short kernel", 5, 100, true},
		{"fft one block", 64, 300, true},
		{"fft many blocks", 200, 5000, true},
		{"fft long kernel", 700, 3000, true},
		{"auto long kernel", FFTThreshold, 2000, false},
		{"signal equals kernel", 450, 450, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kernel := randomSlice(r, tt.kernelLen)
			signal := randomSlice(r, tt.signalLen)

			c := New(kernel)
			if tt.fft {
				c = NewFFT(kernel)
			}

			want := naive(signal, kernel)
			got := make([]float64, len(want))
			require.Equal(t, len(want), c.Valid(got, signal))
			assert.InDeltaSlice(t, want, got, convTolerance)
		})
	}
}

func TestValid_Reuse(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	kernel := randomSlice(r, 500)
	c := New(kernel)

	for range 3 {
		signal := randomSlice(r, 1500)
		want := naive(signal, kernel)
		got := make([]float64, len(want))
		c.Valid(got, signal)
		assert.InDeltaSlice(t, want, got, convTolerance)
	}
}

func TestValid_ShortInputs(t *testing.T) {
	c := New([]float64{1, 2, 3})
	dst := make([]float64, 4)

	assert.Equal(t, 0, c.Valid(dst, []float64{1, 2}))
	assert.Equal(t, 0, c.Valid(dst[:1], []float64{1, 2, 3, 4}))
	assert.Equal(t, 0, New(nil).Valid(dst, []float64{1}))
	assert.Equal(t, []float64{0, 0, 0, 0}, dst)
}
