package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/antonkonsta/EEG-Analysis/internal/app"
)

var (
	analyzeInput      string
	analyzeFormat     string
	analyzeSampleRate float64
	analyzeJSON       bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a recording and print the channel quality report",
	RunE: func(cmd *cobra.Command, args []string) error {
		if analyzeInput == "" {
			return fmt.Errorf("--input is required")
		}

		opts := app.AnalyzeOptions{
			InputPath:    analyzeInput,
			Format:       analyzeFormat,
			SampleRateHz: analyzeSampleRate,
			JSON:         analyzeJSON,
			Out:          cmd.OutOrStdout(),
		}

		return getApp().Analyze(cmd.Context(), opts)
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeInput, "input", "", "Recording to analyze (CSV or EDF)")
	analyzeCmd.Flags().StringVar(&analyzeFormat, "format", "", "Input format: csv or edf (defaults to config, then file extension)")
	analyzeCmd.Flags().Float64Var(&analyzeSampleRate, "sample-rate", 0, "Sampling rate in Hz for CSV input (defaults to config)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Emit the report as JSON")
}
