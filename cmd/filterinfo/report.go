package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/admacollub/JPO-DSP-lib/dsp/filter"
	"github.com/admacollub/JPO-DSP-lib/dsp/filter/fir"
	"github.com/admacollub/JPO-DSP-lib/dsp/filter/iir"
	"github.com/admacollub/JPO-DSP-lib/dsp/spectrum"
)

// report writes a summary of f, optionally its coefficients, and points
// rows of its magnitude response sampled with an fftSize-point FFT.
func report(w io.Writer, f filter.Filter, fftSize, points int, coeffs bool) error {
	resp, err := spectrum.FilterResponse(f, fftSize)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, titleStyle.Render(f.Name())); err != nil {
		return err
	}
	if err := keyValue(w, "Sample rate", fmt.Sprintf("%g Hz", f.SampleRate())); err != nil {
		return err
	}
	if err := describe(w, f); err != nil {
		return err
	}

	if coeffs {
		if err := printCoefficients(w, f); err != nil {
			return err
		}
	}

	return printResponse(w, resp, points)
}

func describe(w io.Writer, f filter.Filter) error {
	switch v := f.(type) {
	case *fir.Designed:
		if err := keyValue(w, "Taps", fmt.Sprint(v.Len())); err != nil {
			return err
		}
		if v.Kind().IsBand() {
			return keyValue(w, "Band", fmt.Sprintf("%g - %g Hz", v.LowCutoff(), v.HighCutoff()))
		}
		return keyValue(w, "Cutoff", fmt.Sprintf("%g Hz", v.Cutoff()))
	case *iir.Chebyshev:
		if err := keyValue(w, "Cutoff", fmt.Sprintf("%g Hz", v.Cutoff())); err != nil {
			return err
		}
		return keyValue(w, "Ripple", fmt.Sprintf("%g dB", v.Ripple()))
	}
	return nil
}

type coeffRow struct {
	label string
	vals  []float64
}

func printCoefficients(w io.Writer, f filter.Filter) error {
	var rows []coeffRow
	switch v := f.(type) {
	case *fir.Designed:
		rows = []coeffRow{{"h", v.Coefficients()}}
	case *iir.Chebyshev:
		rows = []coeffRow{{"b", v.FeedForward()}, {"a", v.Feedback()}}
	default:
		return nil
	}

	if _, err := fmt.Fprintln(w, sectionStyle.Render("Coefficients")); err != nil {
		return err
	}
	for _, r := range rows {
		parts := make([]string, len(r.vals))
		for i, c := range r.vals {
			parts[i] = fmt.Sprintf("%.10g", c)
		}
		if _, err := fmt.Fprintf(w, "  %s = [%s]\n", keyStyle.Render(r.label), strings.Join(parts, ", ")); err != nil {
			return err
		}
	}
	return nil
}

func printResponse(w io.Writer, resp *spectrum.Response, points int) error {
	if points < 2 {
		points = 2
	}
	freqs := resp.Frequencies()
	mag := resp.Magnitude()
	db := resp.MagnitudeDB()
	phase := resp.Phase()

	if _, err := fmt.Fprintln(w, sectionStyle.Render("Magnitude response")); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Freq [Hz]\tMagnitude\tLevel [dB]\tPhase [rad]\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "---------\t---------\t----------\t-----------\n"); err != nil {
		return err
	}

	last := len(freqs) - 1
	for i := range points {
		k := i * last / (points - 1)
		if _, err := fmt.Fprintf(tw, "%.1f\t%.6f\t%.2f\t%.4f\n", freqs[k], mag[k], db[k], phase[k]); err != nil {
			return err
		}
	}
	return tw.Flush()
}
