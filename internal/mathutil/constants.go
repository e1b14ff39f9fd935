package mathutil

import "math"

// Bessel series constants
const (
	besselSeriesMaxTerms = 500
	besselSeriesRelTol   = 1e-17
)

// Kaiser window formula constants
// From Kaiser & Schafer's empirical formulas
const (
	// Attenuation thresholds for β calculation
	kaiserAttHigh   = 50.0 // High attenuation threshold (dB)
	kaiserAttMedium = 21.0 // Medium attenuation threshold (dB)

	// Kaiser β formula coefficients
	kaiserBetaHighCoeff1 = 0.1102 // Coefficient for high attenuation
	kaiserBetaHighOffset = 8.7    // Offset for high attenuation

	kaiserBetaMediumCoeff1 = 0.5842  // Primary coefficient for medium attenuation
	kaiserBetaMediumPower  = 0.4     // Power for medium attenuation formula
	kaiserBetaMediumCoeff2 = 0.07886 // Secondary coefficient for medium attenuation
)

// Filter length estimation constants
const (
	// Kaiser's filter length formula: N ≈ (att - 8) / (2.285 * 2π * Δf)
	kaiserFilterLengthOffset     = 8.0
	kaiserFilterLengthMultiplier = 2.285
	kaiserFilterLengthPiFactor   = 2.0

	minFilterLength = 3
	maxFilterLength = 8191

	defaultTransitionBW = 0.01
)

// Response conversion constants
const (
	dbMagnitudeMultiplier = 20.0
	twoPi                 = 2 * math.Pi
)
