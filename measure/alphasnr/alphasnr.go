// Package alphasnr compares a channel's alpha-band activity against a
// high-frequency noise reference band.
package alphasnr

import (
	"fmt"
	"math"

	"github.com/antonkonsta/EEG-Analysis/dsp/spectrum"
	frequencystats "github.com/antonkonsta/EEG-Analysis/stats/frequency"
)

// Band bounds in Hz. The alpha peak is a single-bin maximum, matching
// the peak a reviewer would pick off a spectral plot.
const (
	AlphaLowHz  = 8
	AlphaHighHz = 12
	NoiseLowHz  = 80
	NoiseHighHz = 100
)

// Result holds the alpha peak against the noise floor, plus the full
// spectrum for plotting. A degenerate spectrum (no bins in a band, or a
// zero floor) leaves the metrics zero.
type Result struct {
	SNR           float64
	PeakFreqHz    float64
	PeakAmplitude float64 // power density at the peak, signal²/Hz
	NoiseFloor    float64 // mean power density over the noise band
	Freqs         []float64
	PSD           []float64
}

// Analyze estimates the power spectral density via Welch's method and
// forms SNR = alpha peak / noise floor. Recordings too short or too
// slowly sampled to populate the bands degrade to a zero-valued result
// rather than an error.
func Analyze(samples []float64, sampleRate float64) (Result, error) {
	psd, err := spectrum.Welch(samples, sampleRate)
	if err != nil {
		return Result{}, fmt.Errorf("alphasnr: %w", err)
	}

	for _, v := range psd.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Result{}, fmt.Errorf("alphasnr: non-finite spectrum")
		}
	}

	r := Result{Freqs: psd.Freqs, PSD: psd.Values}

	peak, peakFreq, alphaOK := frequencystats.MaxInBand(psd.Freqs, psd.Values, AlphaLowHz, AlphaHighHz)
	floor, noiseOK := frequencystats.MeanInBand(psd.Freqs, psd.Values, NoiseLowHz, NoiseHighHz)

	if !alphaOK || !noiseOK || floor == 0 {
		return r, nil
	}

	r.SNR = peak / floor
	r.PeakFreqHz = peakFreq
	r.PeakAmplitude = peak
	r.NoiseFloor = floor

	return r, nil
}
