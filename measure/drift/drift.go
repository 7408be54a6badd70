// Package drift isolates the slow baseline wander of an EEG channel and
// locates its extrema on the original time axis.
package drift

import (
	"fmt"

	"github.com/antonkonsta/EEG-Analysis/dsp/filter/biquad"
	"github.com/antonkonsta/EEG-Analysis/dsp/filter/design/pass"
	"github.com/antonkonsta/EEG-Analysis/dsp/filter/zerophase"
	timestats "github.com/antonkonsta/EEG-Analysis/stats/time"
)

const (
	// CutoffHz follows the slow electrode drift while smoothing
	// everything faster away.
	CutoffHz = 0.1

	// Order of the Butterworth low-pass. Kept gentle so the drift curve
	// stays smooth.
	Order = 2
)

// Result holds the extracted drift curve and its extrema. Indices refer
// to the input sample axis; on ties the first occurrence wins.
type Result struct {
	Signal   []float64 // drift component, same length as the input
	RangeV   float64   // Signal[MaxIndex] - Signal[MinIndex], always >= 0
	MinIndex int
	MaxIndex int
}

// Analyze extracts the DC drift component of one channel by zero-phase
// low-pass filtering and reports the global extrema of the drift curve.
func Analyze(samples []float64, sampleRate float64) (Result, error) {
	sections := pass.ButterworthLP(CutoffHz, Order, sampleRate)
	for _, c := range sections {
		if c == (biquad.Coefficients{}) {
			return Result{}, fmt.Errorf("drift: no low-pass design for %g Hz sample rate", sampleRate)
		}
	}

	curve, err := zerophase.Filter(sections, samples)
	if err != nil {
		return Result{}, fmt.Errorf("drift: %w", err)
	}

	s := timestats.Calculate(curve)

	return Result{
		Signal:   curve,
		RangeV:   s.Range,
		MinIndex: s.MinPos,
		MaxIndex: s.MaxPos,
	}, nil
}
