// Package iir provides a direct-form recursive filter runtime and
// Chebyshev Type I biquad filters built on it.
//
// A [Filter] holds feedforward (b) and feedback (a) coefficients, with a0
// normalised to 1 and not stored, plus input and output delay lines:
//
//	y[n] = sum_i b[i]*x[n-i] - sum_i a[i]*y[n-1-i]
//
// The engine performs no stability check; pole placement is entirely the
// caller's responsibility.
package iir
