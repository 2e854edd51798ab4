// Package design computes filter coefficients.
//
// The designers are free functions parameterised by [Kind]. They only
// produce coefficient vectors; the runtime engines in dsp/filter/fir and
// dsp/filter/iir consume them.
//
// FIR taps come from the truncated ideal (sinc) impulse response, optionally
// tapered with a window from dsp/window via [WithWindow]. Lowpass taps are
// normalised to unity DC gain. The IIR designer produces a single
// second-order Chebyshev Type I section using bilinear-transform
// prewarping.
//
// Frequencies are given in Hz together with the sample rate.
package design
