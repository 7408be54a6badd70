// Package design provides digital IIR filter coefficient designers.
//
// The functions in this package produce biquad coefficients consumable by
// dsp/filter/biquad for runtime processing: RBJ cookbook [Lowpass],
// [Highpass] and [Notch] designs. Degenerate parameters (cutoff outside
// (0, Nyquist), non-finite rates) yield zero-valued coefficients; callers
// that need hard errors validate before designing.
//
// The sub-package design/pass builds Butterworth low-/high-pass cascades
// from these sections.
package design
