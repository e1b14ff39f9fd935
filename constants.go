package zplane

const (
	// DefaultNumSamples is the number of frequency points used when none is
	// given.
	DefaultNumSamples = 1024

	// DefaultSFNorm maps the Nyquist frequency to 1 (normalized frequency).
	DefaultSFNorm = 1.0

	// DefaultAxisLimit is the radius a pole-zero diagram is drawn to.
	DefaultAxisLimit = 1.0

	// GraphAxisLimit is the axis limit of the pole-zero part of a combined
	// response and pole-zero report.
	GraphAxisLimit = 2.0

	// axisMargin extends the visible z-plane beyond the axis limit.
	axisMargin = 0.5

	// degenerateRelTol is the threshold on |A(e^jw)| relative to Σ|a_k|
	// below which a sample is treated as lying on a pole.
	degenerateRelTol = 1e-12
)
