// Package fir provides a direct-form FIR filter runtime and windowed-sinc
// designed filters built on it.
//
// A [Filter] applies a fixed coefficient vector to an input stream through a
// most-recent-first delay line. [Designed] wraps a Filter together with the
// design parameters (kind, order, cutoffs) it was computed from, so it can be
// redesigned in place with [Designed.Update].
//
// Coefficient formulas live in dsp/filter/design.
package fir
