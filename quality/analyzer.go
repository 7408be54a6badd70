package quality

import (
	"fmt"
	"sort"

	"github.com/antonkonsta/EEG-Analysis/eeg"
	"github.com/antonkonsta/EEG-Analysis/measure/alphasnr"
	"github.com/antonkonsta/EEG-Analysis/measure/amplitude"
	"github.com/antonkonsta/EEG-Analysis/measure/drift"
	"github.com/antonkonsta/EEG-Analysis/measure/saturation"
	"github.com/antonkonsta/EEG-Analysis/stats/percentile"
	timestats "github.com/antonkonsta/EEG-Analysis/stats/time"
)

// Record carries every metric for one channel. A stage that failed leaves
// its zero-valued result in place and the cause in the matching error
// field, so "computed as zero" and "defaulted after failure" stay
// distinguishable. Saturation cannot fail and has no error field.
type Record struct {
	Name  string
	Label Label

	Drift      drift.Result
	Amplitude  amplitude.Result
	SNR        alphasnr.Result
	Saturation saturation.Result

	DriftErr     error
	AmplitudeErr error
	SNRErr       error
}

// ChannelValue pairs a channel name with one metric value for rankings.
type ChannelValue struct {
	Name  string
	Value float64
}

// Rankings order all channels by one metric each, descending. Ties keep
// input order.
type Rankings struct {
	Amplitude  []ChannelValue
	DriftRange []ChannelValue
	SNR        []ChannelValue
}

// Summary holds batch-wide order statistics for one metric. Failed
// channels contribute their defaulted zero values.
type Summary struct {
	Mean   float64
	Median float64
	Min    float64
	Max    float64
}

// SaturationSummary aggregates threshold crossings over the batch.
// OverallPct is the mean over all channels of each channel's larger
// crossing fraction.
type SaturationSummary struct {
	SaturatedCount int
	Below          []string
	Above          []string
	OverallPct     float64
}

// BatchReport is the ordered result of one analysis run. Records follow
// the input channel order. QualityScore is the percentage of channels
// classified NORMAL.
type BatchReport struct {
	Records  []Record
	Warnings []string
	Filtered bool

	Saturation SaturationSummary
	Rankings   Rankings

	DriftRange Summary // volts
	Amplitude  Summary // volts
	SNR        Summary

	// MeanAlphaPeakHz averages the alpha peak frequency over channels
	// with a nonzero peak; zero when no channel has one.
	MeanAlphaPeakHz float64

	ProblematicCount int
	QualityScore     float64
}

// Analyzer runs the full quality pipeline over channel batches.
type Analyzer struct {
	cfg Config
}

// NewAnalyzer validates the thresholds and builds an analyzer. Filter
// problems are not rejected here: they surface per batch as a skipped
// stage with a warning.
func NewAnalyzer(cfg Config) (*Analyzer, error) {
	if err := cfg.Thresholds.Validate(); err != nil {
		return nil, err
	}
	return &Analyzer{cfg: cfg}, nil
}

// Config returns the analyzer configuration.
func (a *Analyzer) Config() Config {
	return a.cfg
}

// AnalyzeBatch analyzes every channel of the recording in order. All
// failures short of an empty batch are recorded per channel and the
// batch runs to completion.
func (a *Analyzer) AnalyzeBatch(rec *eeg.Recording) (*BatchReport, error) {
	if rec == nil || rec.Len() == 0 {
		return nil, ErrNoChannels
	}
	channels := rec.Channels()
	report := &BatchReport{Records: make([]Record, 0, len(channels))}

	// Saturation always sees the raw samples; filtering smooths away the
	// clipping evidence it looks for.
	raw := make([]saturation.Channel, len(channels))
	for i, ch := range channels {
		raw[i] = saturation.Channel{Name: ch.Name, Samples: ch.Samples}
	}
	sat := saturation.DetectBatch(raw, saturation.Thresholds{
		LowV:  a.cfg.Thresholds.LowV,
		HighV: a.cfg.Thresholds.HighV,
	})

	// The filter stage finishes for the whole batch before any analyzer
	// consumes its output.
	working := channels
	if a.cfg.Filter.Enabled() {
		filtered, warns, err := FilterBatch(channels, a.cfg.Filter)
		if err != nil {
			report.Warnings = append(report.Warnings, fmt.Sprintf("filter stage skipped, raw data used: %v", err))
		} else {
			working = filtered
			report.Warnings = append(report.Warnings, warns...)
			report.Filtered = true
		}
	}

	for i, ch := range working {
		rate := ch.SampleRateHz
		if rate <= 0 {
			rate = a.cfg.Filter.SampleRateHz
		}

		r := Record{Name: ch.Name, Saturation: sat.Channels[i].Result}

		if d, err := drift.Analyze(ch.Samples, rate); err != nil {
			r.DriftErr = stageError(err)
			report.Warnings = append(report.Warnings, fmt.Sprintf("drift: channel %s: %v", ch.Name, r.DriftErr))
		} else {
			r.Drift = d
		}

		if amp, err := amplitude.Analyze(ch.Samples, rate); err != nil {
			r.AmplitudeErr = stageError(err)
			report.Warnings = append(report.Warnings, fmt.Sprintf("amplitude: channel %s: %v", ch.Name, r.AmplitudeErr))
		} else {
			r.Amplitude = amp
		}

		if snr, err := alphasnr.Analyze(ch.Samples, rate); err != nil {
			r.SNRErr = stageError(err)
			report.Warnings = append(report.Warnings, fmt.Sprintf("snr: channel %s: %v", ch.Name, r.SNRErr))
		} else {
			r.SNR = snr
		}

		r.Label = Classify(ch.Name, r.Amplitude.AmplitudeV, r.Saturation.IsSaturated, a.cfg.Thresholds)
		report.Records = append(report.Records, r)
	}

	aggregate(report, sat)
	return report, nil
}

func aggregate(report *BatchReport, sat saturation.BatchResult) {
	n := len(report.Records)

	var totalSatPct float64
	for _, cr := range sat.Channels {
		totalSatPct += cr.TotalPct()
	}
	report.Saturation = SaturationSummary{
		SaturatedCount: sat.SaturatedCount,
		Below:          sat.Below,
		Above:          sat.Above,
		OverallPct:     totalSatPct / float64(n),
	}

	driftVals := make([]float64, n)
	ampVals := make([]float64, n)
	snrVals := make([]float64, n)
	var alphaFreqs []float64
	problems := 0
	for i, r := range report.Records {
		driftVals[i] = r.Drift.RangeV
		ampVals[i] = r.Amplitude.AmplitudeV
		snrVals[i] = r.SNR.SNR
		if r.SNR.PeakFreqHz > 0 {
			alphaFreqs = append(alphaFreqs, r.SNR.PeakFreqHz)
		}
		if r.Label.Problematic() {
			problems++
		}
	}

	report.Rankings = Rankings{
		Amplitude:  rankDescending(report.Records, ampVals),
		DriftRange: rankDescending(report.Records, driftVals),
		SNR:        rankDescending(report.Records, snrVals),
	}
	report.DriftRange = summarize(driftVals)
	report.Amplitude = summarize(ampVals)
	report.SNR = summarize(snrVals)
	if len(alphaFreqs) > 0 {
		report.MeanAlphaPeakHz = timestats.Mean(alphaFreqs)
	}
	report.ProblematicCount = problems
	report.QualityScore = 100 - float64(problems)/float64(n)*100
}

func summarize(values []float64) Summary {
	s := timestats.Calculate(values)
	return Summary{
		Mean:   s.Mean,
		Median: percentile.Median(values),
		Min:    s.Min,
		Max:    s.Max,
	}
}

func rankDescending(records []Record, values []float64) []ChannelValue {
	out := make([]ChannelValue, len(records))
	for i, r := range records {
		out[i] = ChannelValue{Name: r.Name, Value: values[i]}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	return out
}
