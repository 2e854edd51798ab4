// Package spectrum measures filters in the frequency domain.
//
// [FilterResponse] drives a clone of any filter.Filter with a unit impulse,
// transforms the truncated impulse response with an FFT and exposes the
// bins from DC to Nyquist. The truncation means IIR responses are
// approximations whose accuracy grows with the FFT size.
package spectrum
