// Package window generates the tapers used to shape truncated-sinc FIR
// designs: rectangular, Hann, Hamming, Blackman, Kaiser and triangle.
//
// Windows are symmetric by default, which is what linear-phase FIR design
// needs; [WithPeriodic] selects the FFT-framing form.
package window
