// Package frequency provides band statistics over sampled spectra.
//
// Functions pair a frequency grid with spectral values (for example a Welch
// PSD estimate) and extract per-band quantities. Band bounds are inclusive
// on both ends.
package frequency

// MaxInBand returns the largest value whose frequency lies in [lo, hi],
// together with its frequency. Ties resolve to the lowest-frequency bin.
// ok is false when the band contains no bins or the slices differ in length.
func MaxInBand(freqs, values []float64, lo, hi float64) (value, freq float64, ok bool) {
	if len(freqs) != len(values) {
		return 0, 0, false
	}

	for i, f := range freqs {
		if f < lo || f > hi {
			continue
		}

		if !ok || values[i] > value {
			value = values[i]
			freq = f
			ok = true
		}
	}

	return value, freq, ok
}

// MeanInBand returns the arithmetic mean of values whose frequencies lie in
// [lo, hi]. ok is false when the band contains no bins or the slices differ
// in length.
func MeanInBand(freqs, values []float64, lo, hi float64) (mean float64, ok bool) {
	if len(freqs) != len(values) {
		return 0, false
	}

	sum := 0.0
	count := 0

	for i, f := range freqs {
		if f < lo || f > hi {
			continue
		}

		sum += values[i]
		count++
	}

	if count == 0 {
		return 0, false
	}

	return sum / float64(count), true
}
