// Package core holds small helpers shared by the filter packages: numeric
// comparisons and dB conversions, delay-line slice helpers, and the
// sample-rate/name configuration every filter is created with.
package core
