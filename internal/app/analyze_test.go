package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/antonkonsta/EEG-Analysis/eeg"
	"github.com/antonkonsta/EEG-Analysis/internal/config"
)

func newTestApp() *App {
	cfg := &config.Config{
		Input: config.InputConfig{SampleRateHz: 250},
		Filter: config.FilterConfig{
			LowpassCutoffHz: 40,
			NotchFreqHz:     60,
			NotchQ:          30,
			SampleRateHz:    250,
		},
		Thresholds: config.ThresholdConfig{LowV: -10, HighV: 10, LowAmplitudeMV: 0},
	}
	return NewApp(cfg, zerolog.Nop())
}

// writeSineCSV writes n samples of a 10 Hz unit sine for every channel.
func writeSineCSV(t *testing.T, channels []string, n int, rate float64) string {
	t.Helper()

	var b strings.Builder
	b.WriteString("Sample Num," + strings.Join(channels, ",") + "\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "%d", i)
		v := math.Sin(2 * math.Pi * 10 * float64(i) / rate)
		for range channels {
			fmt.Fprintf(&b, ",%.8f", v)
		}
		b.WriteString("\n")
	}

	path := filepath.Join(t.TempDir(), "session.csv")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestAnalyze_CSVEndToEnd(t *testing.T) {
	a := newTestApp()
	path := writeSineCSV(t, []string{"Fp1", "Cz"}, 2500, 250)

	var out bytes.Buffer
	err := a.Analyze(context.Background(), AnalyzeOptions{InputPath: path, Out: &out})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"EEG channel quality report",
		"channels: 2",
		"Fp1",
		"Cz",
		"NORMAL",
		"Mean alpha peak frequency: 10.0 Hz",
		"Data quality score: 100.0% (2/2 good channels)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "warnings:") {
		t.Errorf("clean run produced warnings:\n%s", got)
	}
}

func TestAnalyze_JSON(t *testing.T) {
	a := newTestApp()
	path := writeSineCSV(t, []string{"Fp1", "Cz"}, 2500, 250)

	var out bytes.Buffer
	err := a.Analyze(context.Background(), AnalyzeOptions{InputPath: path, JSON: true, Out: &out})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	var report reportJSON
	if err := json.Unmarshal(out.Bytes(), &report); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out.String())
	}

	if report.Source != path {
		t.Errorf("Source = %q, want %q", report.Source, path)
	}
	if len(report.Channels) != 2 {
		t.Fatalf("Channels = %d, want 2", len(report.Channels))
	}
	if report.Channels[0].Name != "Fp1" || report.Channels[0].Status != "NORMAL" {
		t.Errorf("Channels[0] = %+v, want Fp1 NORMAL", report.Channels[0])
	}
	if report.QualityScore != 100 {
		t.Errorf("QualityScore = %v, want 100", report.QualityScore)
	}
	// 10 Hz lands on bin 82 of the 2048-point transform at 250 Hz.
	if want := 82.0 * 250.0 / 2048.0; report.Channels[0].AlphaPeakHz != want {
		t.Errorf("AlphaPeakHz = %v, want %v", report.Channels[0].AlphaPeakHz, want)
	}
	if len(report.Rankings.AmplitudeMV) != 2 {
		t.Errorf("amplitude ranking has %d entries, want 2", len(report.Rankings.AmplitudeMV))
	}
	if report.Saturation.Count != 0 {
		t.Errorf("Saturation.Count = %d, want 0", report.Saturation.Count)
	}
}

func TestAnalyze_ChannelSelection(t *testing.T) {
	a := newTestApp()
	a.Config.Input.Channels = []string{"Cz"}
	path := writeSineCSV(t, []string{"Fp1", "Cz"}, 2500, 250)

	var out bytes.Buffer
	err := a.Analyze(context.Background(), AnalyzeOptions{InputPath: path, JSON: true, Out: &out})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	var report reportJSON
	if err := json.Unmarshal(out.Bytes(), &report); err != nil {
		t.Fatal(err)
	}
	if len(report.Channels) != 1 || report.Channels[0].Name != "Cz" {
		t.Errorf("Channels = %+v, want only Cz", report.Channels)
	}
}

func TestAnalyze_UnknownSelectedChannel(t *testing.T) {
	a := newTestApp()
	a.Config.Input.Channels = []string{"Zz"}
	path := writeSineCSV(t, []string{"Fp1"}, 100, 250)

	err := a.Analyze(context.Background(), AnalyzeOptions{InputPath: path})
	if err == nil {
		t.Fatal("Analyze accepted an unknown channel selection")
	}
	if !strings.Contains(err.Error(), `"Zz"`) {
		t.Errorf("err = %v, want the missing channel named", err)
	}
}

func TestAnalyze_UnknownFormat(t *testing.T) {
	a := newTestApp()
	err := a.Analyze(context.Background(), AnalyzeOptions{InputPath: "x.dat", Format: "xml"})
	if err == nil {
		t.Fatal("Analyze accepted an unknown format")
	}
}

func TestAnalyze_CancelledContext(t *testing.T) {
	a := newTestApp()
	path := writeSineCSV(t, []string{"Fp1"}, 100, 250)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := a.Analyze(ctx, AnalyzeOptions{InputPath: path, Out: &bytes.Buffer{}})
	if err != context.Canceled {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path, want string
	}{
		{"session.edf", "edf"},
		{"SESSION.EDF", "edf"},
		{"session.csv", "csv"},
		{"session", "csv"},
	}
	for _, tt := range tests {
		if got := formatFromPath(tt.path); got != tt.want {
			t.Errorf("formatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestSelectChannels_Order(t *testing.T) {
	rec, err := eeg.NewRecording(
		eeg.ChannelSeries{Name: "Fp1"},
		eeg.ChannelSeries{Name: "Cz"},
		eeg.ChannelSeries{Name: "O1"},
	)
	if err != nil {
		t.Fatal(err)
	}

	selected, err := selectChannels(rec, []string{"O1", "Fp1"})
	if err != nil {
		t.Fatalf("selectChannels: %v", err)
	}
	names := selected.Names()
	if len(names) != 2 || names[0] != "O1" || names[1] != "Fp1" {
		t.Errorf("Names = %v, want [O1 Fp1]", names)
	}
}
