// Package convolve computes valid-mode correlations
//
//	dst[i] = Σ_k signal[i+k]·kernel[k],  i = 0 .. len(signal)-len(kernel)
//
// the form f64.ConvolveValid uses. Short kernels go straight to the SIMD
// routine; long ones use overlap-save FFT blocks.
package convolve

import (
	"github.com/tphakala/simd/c128"
	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/dsp/fourier"
)

const (
	// FFTThreshold is the kernel length from which FFT blocks are used.
	FFTThreshold = 400

	minFFTSize = 512
)

// Correlator correlates signals with a fixed kernel. It reuses internal
// buffers and is not safe for concurrent use.
type Correlator struct {
	kernel []float64

	// overlap-save state, nil for direct correlation
	fft      *fourier.FFT
	size     int
	spectrum []complex128 // FFT of the reversed, zero-padded kernel
	block    []float64
	blockFFT []complex128
	product  []complex128
	out      []float64
}

// New returns a correlator for kernel, choosing the method by its length.
func New(kernel []float64) *Correlator {
	if len(kernel) >= FFTThreshold {
		return NewFFT(kernel)
	}
	return &Correlator{kernel: kernel}
}

// NewFFT returns a correlator that always uses overlap-save FFT blocks.
func NewFFT(kernel []float64) *Correlator {
	n := len(kernel)
	size := minFFTSize
	for size < 2*n {
		size *= 2
	}
	fft := fourier.NewFFT(size)

	// Circular convolution with the reversed kernel yields the correlation
	// at offset n-1 of each block.
	padded := make([]float64, size)
	for i, h := range kernel {
		padded[n-1-i] = h
	}

	bins := size/2 + 1
	return &Correlator{
		kernel:   kernel,
		fft:      fft,
		size:     size,
		spectrum: fft.Coefficients(nil, padded),
		block:    make([]float64, size),
		blockFFT: make([]complex128, bins),
		product:  make([]complex128, bins),
		out:      make([]float64, size),
	}
}

// UsesFFT reports whether the correlator works in the frequency domain.
func (c *Correlator) UsesFFT() bool {
	return c.fft != nil
}

// Valid writes len(signal)-len(kernel)+1 outputs to dst and returns that
// count. It writes nothing when the signal is shorter than the kernel or
// dst is too short.
func (c *Correlator) Valid(dst, signal []float64) int {
	n := len(signal) - len(c.kernel) + 1
	if n <= 0 || len(dst) < n || len(c.kernel) == 0 {
		return 0
	}
	if c.fft == nil {
		f64.ConvolveValid(dst[:n], signal, c.kernel)
		return n
	}

	overlap := len(c.kernel) - 1
	step := c.size - overlap
	scale := 1 / float64(c.size)

	for pos := 0; pos < n; pos += step {
		clear(c.block)
		copy(c.block, signal[pos:min(pos+c.size, len(signal))])

		c.blockFFT = c.fft.Coefficients(c.blockFFT, c.block)
		c128.Mul(c.product, c.blockFFT, c.spectrum)
		c.out = c.fft.Sequence(c.out, c.product)
		f64.Scale(c.out, c.out, scale)

		m := min(step, n-pos)
		copy(dst[pos:pos+m], c.out[overlap:overlap+m])
	}
	return n
}
