// Package amplitude estimates the representative peak-to-peak amplitude
// of an EEG channel, robust to transient spikes and slow drift.
package amplitude

import (
	"fmt"
	"math"
	"slices"

	"github.com/antonkonsta/EEG-Analysis/dsp/filter/biquad"
	"github.com/antonkonsta/EEG-Analysis/dsp/filter/design/pass"
	"github.com/antonkonsta/EEG-Analysis/dsp/filter/zerophase"
	"github.com/antonkonsta/EEG-Analysis/stats/percentile"
)

const (
	// CutoffHz removes slow drift before measuring amplitude.
	CutoffHz = 0.5

	// Order of the Butterworth high-pass.
	Order = 4

	// WindowSeconds is the analysis window length.
	WindowSeconds = 5

	// The extreme half percent of samples on each side is ignored, so a
	// handful of spike samples cannot inflate the estimate.
	upperPercentile = 99.5
	lowerPercentile = 0.5
)

// Window marks a half-open sample index range [Start, End).
type Window struct {
	Start int
	End   int
}

// Result holds the amplitude estimate and the window chosen to
// represent it for visualization.
type Result struct {
	AmplitudeV float64
	Window     Window
}

// Analyze estimates the channel's peak-to-peak amplitude. The series is
// high-pass filtered zero-phase, split into consecutive 5-second
// windows (a trailing partial window is discarded), and the median of
// the per-window percentile peak-to-peak values is returned. The
// representative window is the one closest to that median, earliest on
// ties. A series no longer than one window is measured globally and
// represented by a quarter-window around its midpoint.
func Analyze(samples []float64, sampleRate float64) (Result, error) {
	sections := pass.ButterworthHP(CutoffHz, Order, sampleRate)
	for _, c := range sections {
		if c == (biquad.Coefficients{}) {
			return Result{}, fmt.Errorf("amplitude: no high-pass design for %g Hz sample rate", sampleRate)
		}
	}

	filtered, err := zerophase.Filter(sections, samples)
	if err != nil {
		return Result{}, fmt.Errorf("amplitude: %w", err)
	}

	n := len(filtered)
	winSize := int(WindowSeconds * sampleRate)

	if n <= winSize {
		mid := n / 2
		start := max(0, mid-winSize/4)
		end := min(n, start+winSize/2)

		return Result{
			AmplitudeV: peakToPeak(filtered),
			Window:     Window{Start: start, End: end},
		}, nil
	}

	var (
		values  []float64
		windows []Window
	)

	for start := 0; start+winSize <= n; start += winSize {
		values = append(values, peakToPeak(filtered[start:start+winSize]))
		windows = append(windows, Window{Start: start, End: start + winSize})
	}

	med := percentile.Median(values)

	best := 0
	bestDiff := math.Abs(values[0] - med)

	for i := 1; i < len(values); i++ {
		if d := math.Abs(values[i] - med); d < bestDiff {
			best = i
			bestDiff = d
		}
	}

	return Result{AmplitudeV: med, Window: windows[best]}, nil
}

// peakToPeak is the percentile-based spread of one window.
func peakToPeak(w []float64) float64 {
	sorted := slices.Clone(w)
	slices.Sort(sorted)

	return percentile.FromSorted(sorted, upperPercentile) - percentile.FromSorted(sorted, lowerPercentile)
}
