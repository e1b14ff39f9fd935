// Package zplane analyzes discrete-time linear systems given by the
// coefficients of their transfer function
//
//	H(z) = B(z) / A(z) = (b[0] + b[1]z^-1 + ... + b[M]z^-M) / (a[0] + a[1]z^-1 + ... + a[N]z^-N)
//
// It provides the numbers behind the two classic filter plots: the
// magnitude/phase response sampled on the unit circle, and the pole-zero
// diagram with the system gain.
//
// # Quick Start
//
// Frequency response on 1024 points over [0, π):
//
//	resp, err := zplane.ComputeFrequencyResponse(zplane.Real(1, -0.5), zplane.Real(1), 1024)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	db := resp.MagnitudeDB()
//	phase := resp.UnwrappedPhase()
//
// Zeros, poles and gain:
//
//	pzk, err := zplane.ComputePoleZeroGain(b, a)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(pzk.Zeros, pzk.Poles, pzk.Gain)
//
// # Normalization
//
// Before root finding each polynomial is divided by its largest coefficient
// when that coefficient exceeds one. The divisors kn and kd are reported in
// [PoleZeroGain] and the gain is kn/kd. Coefficients are ordered by real part
// (then imaginary part), and only the real part of the maximum is used as the
// divisor, so the gain is always real.
//
// # Degenerate Samples
//
// A pole lying exactly on a sampled point of the unit circle makes H
// undefined there. Such samples are set to complex infinity and listed in
// [FrequencyResponse.Degenerate]; [FrequencyResponse.Err] reports them as
// [ErrDegenerateEvaluation]. [Options.Strict] turns them into an immediate
// error.
//
// # Rendering
//
// Drawing is left to a [Renderer], which receives the output target on every
// call. [TableRenderer] prints aligned text tables.
//
// # Thread Safety
//
// All functions and [Analyzer] methods are pure and safe for concurrent
// use. [Filter] keeps state and must not be shared between goroutines.
package zplane
