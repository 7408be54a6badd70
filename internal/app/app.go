package app

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/antonkonsta/EEG-Analysis/internal/config"
)

// App aggregates configuration and shared dependencies for the CLI commands.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
}

// NewApp constructs a new application handle.
func NewApp(cfg *config.Config, logger zerolog.Logger) *App {
	return &App{Config: cfg, Logger: logger.With().Str("component", "app").Logger()}
}

// AnalyzeOptions hold parameters for the analyze command.
type AnalyzeOptions struct {
	// InputPath is the recording to analyze.
	InputPath string
	// Format forces "csv" or "edf"; empty falls back to the config value
	// and then the file extension.
	Format string
	// SampleRateHz overrides the configured CSV sampling rate when positive.
	SampleRateHz float64
	// JSON renders the report as JSON instead of the plain-text table.
	JSON bool
	// Out receives the report; nil means stdout.
	Out io.Writer
}
