package quality

import (
	"math"
	"testing"
)

func TestFilterConfig_Validate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     FilterConfig
		wantErr bool
	}{
		{"disabled stage ignores parameters", FilterConfig{}, false},
		{"valid lowpass", FilterConfig{LowpassEnabled: true, LowpassCutoffHz: 40, SampleRateHz: 500}, false},
		{"valid notch", FilterConfig{NotchEnabled: true, NotchFreqHz: 60, NotchQ: 30, SampleRateHz: 500}, false},
		{"lowpass cutoff zero", FilterConfig{LowpassEnabled: true, SampleRateHz: 500}, true},
		{"lowpass cutoff negative", FilterConfig{LowpassEnabled: true, LowpassCutoffHz: -5, SampleRateHz: 500}, true},
		{"lowpass cutoff at nyquist", FilterConfig{LowpassEnabled: true, LowpassCutoffHz: 250, SampleRateHz: 500}, true},
		{"lowpass cutoff above nyquist", FilterConfig{LowpassEnabled: true, LowpassCutoffHz: 300, SampleRateHz: 500}, true},
		{"lowpass cutoff NaN", FilterConfig{LowpassEnabled: true, LowpassCutoffHz: math.NaN(), SampleRateHz: 500}, true},
		{"missing sample rate", FilterConfig{LowpassEnabled: true, LowpassCutoffHz: 40}, true},
		{"notch at nyquist", FilterConfig{NotchEnabled: true, NotchFreqHz: 250, NotchQ: 30, SampleRateHz: 500}, true},
		{"notch q zero", FilterConfig{NotchEnabled: true, NotchFreqHz: 60, SampleRateHz: 500}, true},
		{"notch q negative", FilterConfig{NotchEnabled: true, NotchFreqHz: 60, NotchQ: -1, SampleRateHz: 500}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestThresholdConfig_Validate(t *testing.T) {
	if err := (ThresholdConfig{LowV: 0.053, HighV: 3.247, LowAmplitudeMV: 0.5}).Validate(); err != nil {
		t.Errorf("valid thresholds rejected: %v", err)
	}
	if err := (ThresholdConfig{LowV: 1, HighV: 1}).Validate(); err == nil {
		t.Error("equal thresholds accepted")
	}
	if err := (ThresholdConfig{LowV: 2, HighV: 1}).Validate(); err == nil {
		t.Error("inverted thresholds accepted")
	}
	if err := (ThresholdConfig{LowV: -1, HighV: 1, LowAmplitudeMV: -0.5}).Validate(); err == nil {
		t.Error("negative low-amplitude threshold accepted")
	}
	if err := (ThresholdConfig{LowV: -1, HighV: 1}).Validate(); err != nil {
		t.Errorf("zero low-amplitude threshold rejected: %v", err)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config does not validate: %v", err)
	}
	if cfg.Filter.Enabled() {
		t.Error("filtering enabled by default")
	}
	if cfg.Thresholds.LowV != 0.053 || cfg.Thresholds.HighV != 3.247 {
		t.Errorf("saturation thresholds = %g/%g, want 0.053/3.247", cfg.Thresholds.LowV, cfg.Thresholds.HighV)
	}
	if cfg.Thresholds.LowAmplitudeMV != 0.5 {
		t.Errorf("low-amplitude threshold = %g, want 0.5", cfg.Thresholds.LowAmplitudeMV)
	}
	if cfg.Filter.SampleRateHz != 500 {
		t.Errorf("sample rate = %g, want 500", cfg.Filter.SampleRateHz)
	}
}
