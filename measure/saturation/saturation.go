// Package saturation flags channels whose raw samples cross fixed voltage
// thresholds, indicating amplifier or electrode clipping.
//
// Detection expects raw, unfiltered samples. Zero-phase filtering smooths
// the clipped plateaus that detection relies on, so run this before any
// filter stage.
package saturation

import "math"

// Default thresholds for a 3.3 V acquisition front end.
const (
	DefaultLowV  = 0.053
	DefaultHighV = 3.247
)

// Thresholds bound the usable input range in volts. Samples strictly below
// LowV or strictly above HighV count as saturated; samples exactly at a
// threshold do not.
type Thresholds struct {
	LowV  float64
	HighV float64
}

// DefaultThresholds returns the stock rail limits.
func DefaultThresholds() Thresholds {
	return Thresholds{LowV: DefaultLowV, HighV: DefaultHighV}
}

// Result describes threshold crossings for a single channel.
//
// IsSaturated triggers on any single crossing sample. BelowPct and AbovePct
// are time fractions in percent, reported separately so severity can be
// judged independently of the any-point trigger.
type Result struct {
	BelowPct    float64
	AbovePct    float64
	IsSaturated bool
}

// TotalPct is the larger of the two crossing fractions, used as a single
// severity figure when ranking channels.
func (r Result) TotalPct() float64 {
	return math.Max(r.BelowPct, r.AbovePct)
}

// Detect counts threshold crossings in one channel. Empty input yields a
// zero Result.
func Detect(samples []float64, thresholds Thresholds) Result {
	below, above := crossings(samples, thresholds)
	n := len(samples)
	if n == 0 {
		return Result{}
	}
	return Result{
		BelowPct:    float64(below) / float64(n) * 100,
		AbovePct:    float64(above) / float64(n) * 100,
		IsSaturated: below > 0 || above > 0,
	}
}

func crossings(samples []float64, t Thresholds) (below, above int) {
	for _, v := range samples {
		if v < t.LowV {
			below++
		}
		if v > t.HighV {
			above++
		}
	}
	return below, above
}

// Channel pairs a name with its raw samples for batch detection.
type Channel struct {
	Name    string
	Samples []float64
}

// ChannelResult is a named per-channel Result.
type ChannelResult struct {
	Name string
	Result
}

// BatchResult aggregates detection over a channel batch. Below and Above
// list the names of channels with at least one sample past the respective
// threshold, in input order. SaturatedCount is the size of their union;
// channel names are assumed unique within a batch.
type BatchResult struct {
	Channels       []ChannelResult
	Below          []string
	Above          []string
	SaturatedCount int
}

// DetectBatch runs Detect over every channel and collects the batch-level
// crossing lists.
func DetectBatch(channels []Channel, thresholds Thresholds) BatchResult {
	b := BatchResult{Channels: make([]ChannelResult, 0, len(channels))}
	for _, ch := range channels {
		below, above := crossings(ch.Samples, thresholds)
		r := Result{IsSaturated: below > 0 || above > 0}
		if n := len(ch.Samples); n > 0 {
			r.BelowPct = float64(below) / float64(n) * 100
			r.AbovePct = float64(above) / float64(n) * 100
		}
		b.Channels = append(b.Channels, ChannelResult{Name: ch.Name, Result: r})
		if below > 0 {
			b.Below = append(b.Below, ch.Name)
		}
		if above > 0 {
			b.Above = append(b.Above, ch.Name)
		}
		if r.IsSaturated {
			b.SaturatedCount++
		}
	}
	return b
}
