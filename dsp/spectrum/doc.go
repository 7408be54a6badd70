// Package spectrum provides spectrum-domain utilities: magnitude and power
// extraction from complex FFT bins, and power spectral density estimation
// via Welch's method of averaged overlapping periodograms.
package spectrum
