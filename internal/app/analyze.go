package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/antonkonsta/EEG-Analysis/eeg"
	"github.com/antonkonsta/EEG-Analysis/quality"
)

// Analyze loads a recording, runs the quality engine over it, and renders
// the channel report.
func (a *App) Analyze(ctx context.Context, opts AnalyzeOptions) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	rec, err := a.loadRecording(opts)
	if err != nil {
		return err
	}
	rec, err = selectChannels(rec, a.Config.Input.Channels)
	if err != nil {
		return err
	}
	a.Logger.Info().Str("input", opts.InputPath).Int("channels", rec.Len()).Msg("recording loaded")

	if err := ctx.Err(); err != nil {
		return err
	}

	analyzer, err := quality.NewAnalyzer(a.Config.Quality())
	if err != nil {
		return err
	}
	report, err := analyzer.AnalyzeBatch(rec)
	if err != nil {
		return err
	}

	for _, warning := range report.Warnings {
		a.Logger.Warn().Msg(warning)
	}
	a.Logger.Info().
		Int("problematic", report.ProblematicCount).
		Float64("quality_score", report.QualityScore).
		Msg("analysis complete")

	if opts.JSON {
		return writeJSONReport(out, opts.InputPath, report)
	}
	return writeTextReport(out, opts.InputPath, report)
}

func (a *App) loadRecording(opts AnalyzeOptions) (*eeg.Recording, error) {
	format := opts.Format
	if format == "" {
		format = a.Config.Input.Format
	}
	if format == "" {
		format = formatFromPath(opts.InputPath)
	}

	switch strings.ToLower(format) {
	case "csv":
		return eeg.LoadCSV(opts.InputPath, a.Config.ResolveSampleRate(opts.SampleRateHz))
	case "edf":
		return eeg.LoadEDF(opts.InputPath)
	default:
		return nil, fmt.Errorf("input format %q is not csv or edf", format)
	}
}

func formatFromPath(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".edf") {
		return "edf"
	}
	return "csv"
}

// selectChannels narrows a recording to the named channels, in the order
// given. An empty selection keeps the whole recording.
func selectChannels(rec *eeg.Recording, names []string) (*eeg.Recording, error) {
	if len(names) == 0 {
		return rec, nil
	}
	var out eeg.Recording
	for _, name := range names {
		ch, ok := rec.Channel(name)
		if !ok {
			return nil, fmt.Errorf("channel %q not in recording (have %s)", name, strings.Join(rec.Names(), ", "))
		}
		if err := out.Add(ch); err != nil {
			return nil, err
		}
	}
	return &out, nil
}
