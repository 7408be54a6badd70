package quality

import (
	"fmt"

	"github.com/antonkonsta/EEG-Analysis/measure/saturation"
)

// FilterConfig controls the optional pre-analysis filter stage. Cutoffs
// are validated against the Nyquist frequency of the configured rate;
// violations are configuration errors, never silent clamps.
type FilterConfig struct {
	LowpassEnabled  bool
	LowpassCutoffHz float64
	NotchEnabled    bool
	NotchFreqHz     float64
	NotchQ          float64
	SampleRateHz    float64
}

// Enabled reports whether any filter is switched on.
func (c FilterConfig) Enabled() bool {
	return c.LowpassEnabled || c.NotchEnabled
}

// Validate checks the parameters of every enabled filter. A fully
// disabled stage always validates.
func (c FilterConfig) Validate() error {
	if !c.Enabled() {
		return nil
	}
	if !(c.SampleRateHz > 0) {
		return fmt.Errorf("quality: filter sample rate %g Hz, want > 0", c.SampleRateHz)
	}
	nyquist := c.SampleRateHz / 2
	if c.LowpassEnabled {
		if !(c.LowpassCutoffHz > 0) || c.LowpassCutoffHz >= nyquist {
			return fmt.Errorf("quality: low-pass cutoff %g Hz outside (0, %g)", c.LowpassCutoffHz, nyquist)
		}
	}
	if c.NotchEnabled {
		if !(c.NotchFreqHz > 0) || c.NotchFreqHz >= nyquist {
			return fmt.Errorf("quality: notch frequency %g Hz outside (0, %g)", c.NotchFreqHz, nyquist)
		}
		if !(c.NotchQ > 0) {
			return fmt.Errorf("quality: notch Q %g, want > 0", c.NotchQ)
		}
	}
	return nil
}

// ThresholdConfig holds the classification limits. Saturation thresholds
// are in volts, the low-amplitude threshold in millivolts.
type ThresholdConfig struct {
	LowV           float64
	HighV          float64
	LowAmplitudeMV float64
}

// Validate checks threshold ordering.
func (c ThresholdConfig) Validate() error {
	if !(c.HighV > c.LowV) {
		return fmt.Errorf("quality: high threshold %g V must exceed low threshold %g V", c.HighV, c.LowV)
	}
	if c.LowAmplitudeMV < 0 {
		return fmt.Errorf("quality: low-amplitude threshold %g mV, want >= 0", c.LowAmplitudeMV)
	}
	return nil
}

// Config bundles the engine configuration.
type Config struct {
	Filter     FilterConfig
	Thresholds ThresholdConfig
}

// DefaultConfig returns the stock configuration: filtering disabled (with
// usable parameters preloaded for when it is switched on), 3.3 V rail
// thresholds, 0.5 mV low-amplitude limit.
func DefaultConfig() Config {
	return Config{
		Filter: FilterConfig{
			LowpassCutoffHz: 40,
			NotchFreqHz:     60,
			NotchQ:          30,
			SampleRateHz:    500,
		},
		Thresholds: ThresholdConfig{
			LowV:           saturation.DefaultLowV,
			HighV:          saturation.DefaultHighV,
			LowAmplitudeMV: 0.5,
		},
	}
}

// Validate checks both halves of the configuration.
func (c Config) Validate() error {
	if err := c.Thresholds.Validate(); err != nil {
		return err
	}
	return c.Filter.Validate()
}
