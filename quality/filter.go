package quality

import (
	"errors"
	"fmt"

	"github.com/antonkonsta/EEG-Analysis/dsp/filter/biquad"
	"github.com/antonkonsta/EEG-Analysis/dsp/filter/design"
	"github.com/antonkonsta/EEG-Analysis/dsp/filter/design/pass"
	"github.com/antonkonsta/EEG-Analysis/dsp/filter/zerophase"
	"github.com/antonkonsta/EEG-Analysis/eeg"
)

// lowpassOrder is the Butterworth order of the stage low-pass.
const lowpassOrder = 4

// FilterBatch applies the configured zero-phase filters to every channel
// and returns a new batch in the same order. Low-pass runs first, notch
// second. With everything disabled the input batch is returned as is;
// callers must not rely on that aliasing. The input series are never
// modified.
//
// A channel too short for the filter padding, or one that filters to
// non-finite values, is kept raw and reported in the returned warnings.
// Invalid parameters (including a cutoff at or past the Nyquist frequency
// of a channel's own rate) fail the whole stage.
func FilterBatch(channels []eeg.ChannelSeries, cfg FilterConfig) ([]eeg.ChannelSeries, []string, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	if !cfg.Enabled() {
		return channels, nil, nil
	}

	out := make([]eeg.ChannelSeries, len(channels))
	var warnings []string
	for i, ch := range channels {
		rate := ch.SampleRateHz
		if rate <= 0 {
			rate = cfg.SampleRateHz
		}

		filtered, err := filterChannel(ch.Samples, rate, cfg)
		switch {
		case err == nil:
			out[i] = eeg.ChannelSeries{Name: ch.Name, Samples: filtered, SampleRateHz: ch.SampleRateHz}
		case errors.Is(err, zerophase.ErrTooShort) || errors.Is(err, zerophase.ErrNonFinite):
			warnings = append(warnings, fmt.Sprintf("filter: channel %s kept raw: %v", ch.Name, err))
			out[i] = ch
		default:
			return nil, nil, fmt.Errorf("channel %s: %w", ch.Name, err)
		}
	}
	return out, warnings, nil
}

func filterChannel(samples []float64, rate float64, cfg FilterConfig) ([]float64, error) {
	out := samples
	var err error

	if cfg.LowpassEnabled {
		sections := pass.ButterworthLP(cfg.LowpassCutoffHz, lowpassOrder, rate)
		for _, c := range sections {
			if c == (biquad.Coefficients{}) {
				return nil, fmt.Errorf("quality: no low-pass design for %g Hz at %g Hz sample rate", cfg.LowpassCutoffHz, rate)
			}
		}
		out, err = zerophase.Filter(sections, out)
		if err != nil {
			return nil, err
		}
	}

	if cfg.NotchEnabled {
		coeff := design.Notch(cfg.NotchFreqHz, cfg.NotchQ, rate)
		if coeff == (biquad.Coefficients{}) {
			return nil, fmt.Errorf("quality: no notch design for %g Hz at %g Hz sample rate", cfg.NotchFreqHz, rate)
		}
		out, err = zerophase.Filter([]biquad.Coefficients{coeff}, out)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}
