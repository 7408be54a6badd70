package config

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/antonkonsta/EEG-Analysis/internal/logging"
	"github.com/antonkonsta/EEG-Analysis/quality"
)

// Config materialises application configuration.
type Config struct {
	App        AppConfig       `mapstructure:"app"`
	Logging    logging.Config  `mapstructure:"logging"`
	Input      InputConfig     `mapstructure:"input"`
	Filter     FilterConfig    `mapstructure:"filter"`
	Thresholds ThresholdConfig `mapstructure:"thresholds"`
}

// AppConfig general metadata.
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
}

// InputConfig governs recording ingestion.
type InputConfig struct {
	// Format forces the input format ("csv" or "edf"); empty derives it
	// from the file extension.
	Format string `mapstructure:"format"`
	// SampleRateHz applies to CSV input, which carries no rate of its own.
	SampleRateHz float64 `mapstructure:"sample_rate_hz"`
	// Channels restricts analysis to the named channels; empty means all.
	Channels []string `mapstructure:"channels"`
}

// FilterConfig mirrors the engine's filter stage settings.
type FilterConfig struct {
	LowpassEnabled  bool    `mapstructure:"lowpass_enabled"`
	LowpassCutoffHz float64 `mapstructure:"lowpass_cutoff_hz"`
	NotchEnabled    bool    `mapstructure:"notch_enabled"`
	NotchFreqHz     float64 `mapstructure:"notch_freq_hz"`
	NotchQ          float64 `mapstructure:"notch_q"`
	SampleRateHz    float64 `mapstructure:"sample_rate_hz"`
}

// ThresholdConfig mirrors the engine's classification thresholds.
type ThresholdConfig struct {
	LowV           float64 `mapstructure:"low_v"`
	HighV          float64 `mapstructure:"high_v"`
	LowAmplitudeMV float64 `mapstructure:"low_amplitude_mv"`
}

// Load builds configuration from file, environment, and defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("EEGQUAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("eegqual")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, decodeHook()); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "eegqual")
	v.SetDefault("app.environment", "development")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("input.format", "")
	v.SetDefault("input.sample_rate_hz", 500.0)

	v.SetDefault("filter.lowpass_enabled", false)
	v.SetDefault("filter.lowpass_cutoff_hz", 40.0)
	v.SetDefault("filter.notch_enabled", false)
	v.SetDefault("filter.notch_freq_hz", 60.0)
	v.SetDefault("filter.notch_q", 30.0)
	v.SetDefault("filter.sample_rate_hz", 500.0)

	v.SetDefault("thresholds.low_v", 0.053)
	v.SetDefault("thresholds.high_v", 3.247)
	v.SetDefault("thresholds.low_amplitude_mv", 0.5)
}

func decodeHook() viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToSliceHookFunc(","),
		)
	}
}

// Quality maps the file-level sections onto the engine configuration.
func (c *Config) Quality() quality.Config {
	return quality.Config{
		Filter: quality.FilterConfig{
			LowpassEnabled:  c.Filter.LowpassEnabled,
			LowpassCutoffHz: c.Filter.LowpassCutoffHz,
			NotchEnabled:    c.Filter.NotchEnabled,
			NotchFreqHz:     c.Filter.NotchFreqHz,
			NotchQ:          c.Filter.NotchQ,
			SampleRateHz:    c.Filter.SampleRateHz,
		},
		Thresholds: quality.ThresholdConfig{
			LowV:           c.Thresholds.LowV,
			HighV:          c.Thresholds.HighV,
			LowAmplitudeMV: c.Thresholds.LowAmplitudeMV,
		},
	}
}

// Validate performs basic sanity checks on the configuration values.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Input.Format) {
	case "", "csv", "edf":
	default:
		return fmt.Errorf("input.format %q is not csv or edf", c.Input.Format)
	}
	if c.Input.SampleRateHz < 0 {
		return fmt.Errorf("input.sample_rate_hz cannot be negative")
	}
	return c.Quality().Validate()
}

// ResolveSampleRate returns either the CLI override or the config default.
func (c *Config) ResolveSampleRate(override float64) float64 {
	if override > 0 {
		return override
	}
	return c.Input.SampleRateHz
}
