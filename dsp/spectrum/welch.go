package spectrum

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/antonkonsta/EEG-Analysis/dsp/window"
)

// PSD holds a one-sided power spectral density estimate. Values are in
// signal units squared per Hz; Freqs spans DC to Nyquist inclusive.
type PSD struct {
	Freqs  []float64
	Values []float64
}

type welchConfig struct {
	segmentLength int
	windowType    window.Type
}

// WelchOption configures the Welch estimator.
type WelchOption func(*welchConfig)

// WithSegmentLength overrides the automatic segment length. Values larger
// than the input are reduced to the input length.
func WithSegmentLength(n int) WelchOption {
	return func(c *welchConfig) {
		if n > 0 {
			c.segmentLength = n
		}
	}
}

// WithWindowType selects the segment window. The default is Hann.
func WithWindowType(t window.Type) WelchOption {
	return func(c *welchConfig) {
		c.windowType = t
	}
}

// Welch estimates the one-sided power spectral density of x.
//
// Segments of length nperseg overlap by half and are linearly detrended and
// windowed (periodic form) before the transform; periodograms are averaged
// and density-scaled by the window power. The transform is zero-padded to
// the next power of two at or above twice the segment length, so bins are
// spaced sampleRate/nfft apart.
//
// Unless overridden, nperseg is len(x)/8 clamped to [1024, 8192], and never
// more than len(x).
func Welch(x []float64, sampleRate float64, opts ...WelchOption) (PSD, error) {
	if len(x) == 0 {
		return PSD{}, fmt.Errorf("welch: empty input")
	}
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return PSD{}, fmt.Errorf("welch: sample rate must be positive and finite: %v", sampleRate)
	}

	cfg := welchConfig{windowType: window.TypeHann}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	n := len(x)

	nperseg := cfg.segmentLength
	if nperseg <= 0 {
		nperseg = n / 8
		if nperseg < 1024 {
			nperseg = 1024
		}
		if nperseg > 8192 {
			nperseg = 8192
		}
	}
	if nperseg > n {
		nperseg = n
	}

	noverlap := nperseg / 2
	step := nperseg - noverlap
	nfft := nextPowerOf2(2 * nperseg)
	half := nfft / 2

	freqs := make([]float64, half+1)
	for k := range freqs {
		freqs[k] = float64(k) * sampleRate / float64(nfft)
	}

	win := window.Generate(cfg.windowType, nperseg, window.WithPeriodic())

	winSumSq := 0.0
	for _, w := range win {
		winSumSq += w * w
	}
	if winSumSq == 0 {
		// A single-sample Hann window is all zeros; nothing to estimate.
		return PSD{Freqs: freqs, Values: make([]float64, half+1)}, nil
	}

	plan, err := algofft.NewPlan64(nfft)
	if err != nil {
		return PSD{}, fmt.Errorf("welch: %w", err)
	}

	seg := make([]float64, nperseg)
	inData := make([]complex128, nfft)
	out := make([]complex128, nfft)
	acc := make([]float64, half+1)

	re, im, buf := getScratch(half + 1)
	defer putScratch(buf)
	pwr := make([]float64, half+1)

	segments := 0
	for start := 0; start+nperseg <= n; start += step {
		copy(seg, x[start:start+nperseg])
		detrendLinear(seg)
		vecmath.MulBlockInPlace(seg, win)

		for i, v := range seg {
			inData[i] = complex(v, 0)
		}

		if err := plan.Forward(out, inData); err != nil {
			return PSD{}, fmt.Errorf("welch: %w", err)
		}

		for k := 0; k <= half; k++ {
			re[k] = real(out[k])
			im[k] = imag(out[k])
		}
		PowerFromParts(pwr, re, im)

		for k := range acc {
			acc[k] += pwr[k]
		}
		segments++
	}

	scale := 1 / (sampleRate * winSumSq * float64(segments))

	values := make([]float64, half+1)
	for k := range values {
		v := acc[k] * scale
		if k != 0 && k != half {
			v *= 2
		}
		values[k] = v
	}

	return PSD{Freqs: freqs, Values: values}, nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}

// detrendLinear removes the least-squares line from seg in place.
func detrendLinear(seg []float64) {
	m := len(seg)
	if m == 0 {
		return
	}

	yMean := 0.0
	for _, v := range seg {
		yMean += v
	}
	yMean /= float64(m)

	if m < 2 {
		seg[0] -= yMean
		return
	}

	xMean := float64(m-1) / 2

	var num, den float64
	for i, v := range seg {
		dx := float64(i) - xMean
		num += dx * (v - yMean)
		den += dx * dx
	}
	slope := num / den

	for i := range seg {
		seg[i] -= yMean + slope*(float64(i)-xMean)
	}
}
