package zplane

import (
	"fmt"
	"io"
	"math"
	"math/cmplx"
	"text/tabwriter"
)

// Renderer presents computed results. The output target is always passed
// in; implementations must not keep global drawing state.
type Renderer interface {
	// RenderResponse draws magnitude (dB) and unwrapped phase (radians)
	// against frequency scaled so that π maps to sfNorm.
	RenderResponse(w io.Writer, r *FrequencyResponse, sfNorm float64) error

	// RenderPoleZero draws zeros and poles relative to the unit circle.
	// The visible square extends half a unit beyond ±axisLim.
	RenderPoleZero(w io.Writer, pzk *PoleZeroGain, axisLim float64) error
}

// TableRenderer writes results as aligned text tables.
type TableRenderer struct {
	// Step prints every Step-th frequency sample. Values below 1 print all.
	Step int
}

var _ Renderer = TableRenderer{}

const (
	tabMinWidth = 0
	tabWidth    = 8
	tabPadding  = 2
)

// RenderResponse implements Renderer.
func (t TableRenderer) RenderResponse(w io.Writer, r *FrequencyResponse, sfNorm float64) error {
	step := max(t.Step, 1)
	freqs := r.Frequencies(sfNorm)
	mag := r.MagnitudeDB()
	phase := r.UnwrappedPhase()

	tw := tabwriter.NewWriter(w, tabMinWidth, tabWidth, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "freq\tmagnitude_db\tphase_rad\t")
	for i := 0; i < r.Len(); i += step {
		fmt.Fprintf(tw, "%.6g\t%s\t%s\t\n", freqs[i], formatValue(mag[i]), formatValue(phase[i]))
	}
	return tw.Flush()
}

// RenderPoleZero implements Renderer.
func (t TableRenderer) RenderPoleZero(w io.Writer, pzk *PoleZeroGain, axisLim float64) error {
	tw := tabwriter.NewWriter(w, tabMinWidth, tabWidth, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "kind\treal\timag\tradius\tnote\t")
	writeRoots(tw, "zero", pzk.Zeros, axisLim)
	writeRoots(tw, "pole", pzk.Poles, axisLim)
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "gain: %g (kn=%g, kd=%g) stable: %t\n",
		pzk.Gain, pzk.NumeratorScale, pzk.DenominatorScale, pzk.Stable())
	return err
}

func writeRoots(w io.Writer, kind string, roots []complex128, axisLim float64) {
	view := axisLim + axisMargin
	for _, z := range roots {
		r := cmplx.Abs(z)
		note := ""
		switch {
		case math.Abs(real(z)) > view || math.Abs(imag(z)) > view:
			note = "outside view"
		case r >= 1:
			note = "outside unit circle"
		}
		fmt.Fprintf(w, "%s\t%.6g\t%.6g\t%.6g\t%s\t\n", kind, real(z), imag(z), r, note)
	}
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "undefined"
	}
	return fmt.Sprintf("%.6g", v)
}
