package design

import (
	"math"

	"github.com/admacollub/JPO-DSP-lib/dsp/window"
	"github.com/tphakala/simd/f64"
)

// WindowedSinc designs order+1 FIR taps of the given kind.
//
// Lowpass and Highpass use low as their single cutoff and ignore high.
// Bandpass and Bandstop expect low < high. All frequencies are in Hz. Tap i
// sits at offset n = i - order/2; odd orders give a half-integer centre, in
// which case no tap takes the n = 0 limit. A negative order or unknown kind
// yields nil.
//
// Cutoffs are not range checked; frequencies outside (0, sampleRate/2)
// produce valid but meaningless taps, and sampleRate == 0 produces NaN.
func WindowedSinc(kind Kind, order int, low, high, sampleRate float64, opts ...Option) []float64 {
	if order < 0 {
		return nil
	}

	w1 := 2 * math.Pi * low / sampleRate
	w2 := 2 * math.Pi * high / sampleRate

	var tap func(n float64) float64
	switch kind {
	case Lowpass:
		tap = func(n float64) float64 {
			if n == 0 {
				return w1 / math.Pi
			}
			return math.Sin(w1*n) / (math.Pi * n)
		}
	case Highpass:
		tap = func(n float64) float64 {
			if n == 0 {
				return (math.Pi - w1) / math.Pi
			}
			return -math.Sin(w1*n) / (math.Pi * n)
		}
	case Bandpass:
		tap = func(n float64) float64 {
			if n == 0 {
				return (w2 - w1) / math.Pi
			}
			return (math.Sin(w2*n) - math.Sin(w1*n)) / (math.Pi * n)
		}
	case Bandstop:
		tap = func(n float64) float64 {
			if n == 0 {
				return (math.Pi - w2 + w1) / math.Pi
			}
			return (math.Sin(w1*n) - math.Sin(w2*n)) / (math.Pi * n)
		}
	default:
		return nil
	}

	center := float64(order) / 2
	taps := make([]float64, order+1)
	for i := range taps {
		taps[i] = tap(float64(i) - center)
	}

	cfg := applyOptions(opts)
	if cfg.window != window.TypeRectangular {
		window.Apply(cfg.window, taps, cfg.windowOpts...)
	}

	if kind == Lowpass {
		normalizeDC(taps)
	}

	return taps
}

// LowpassFIR designs a windowed-sinc lowpass normalised to unity DC gain.
func LowpassFIR(order int, cutoff, sampleRate float64, opts ...Option) []float64 {
	return WindowedSinc(Lowpass, order, cutoff, 0, sampleRate, opts...)
}

// HighpassFIR designs a windowed-sinc highpass (spectral inversion of the
// lowpass prototype, without normalisation).
func HighpassFIR(order int, cutoff, sampleRate float64, opts ...Option) []float64 {
	return WindowedSinc(Highpass, order, cutoff, 0, sampleRate, opts...)
}

// BandpassFIR designs a windowed-sinc bandpass passing [low, high] Hz.
func BandpassFIR(order int, low, high, sampleRate float64, opts ...Option) []float64 {
	return WindowedSinc(Bandpass, order, low, high, sampleRate, opts...)
}

// BandstopFIR designs a windowed-sinc bandstop rejecting [low, high] Hz.
func BandstopFIR(order int, low, high, sampleRate float64, opts ...Option) []float64 {
	return WindowedSinc(Bandstop, order, low, high, sampleRate, opts...)
}

// normalizeDC scales taps so they sum to one. A sum of exactly zero is
// left alone.
func normalizeDC(taps []float64) {
	sum := f64.Sum(taps)
	if sum == 0 {
		return
	}
	f64.Scale(taps, taps, 1/sum)
}
