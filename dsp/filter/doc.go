// Package filter defines the contract shared by every streaming filter in
// this module.
//
// A [Filter] processes one sample at a time, can be reset to zero memory and
// can produce a deep copy of itself. Concrete engines live in the fir and iir
// sub-packages; the cascade sub-package chains filters in series. Coefficient
// design is a separate concern handled by dsp/filter/design.
package filter
