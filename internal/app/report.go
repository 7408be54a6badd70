package app

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/antonkonsta/EEG-Analysis/quality"
)

// The engine works in volts; the rendered report shows millivolts, like the
// acquisition software the recordings come from.

func writeTextReport(w io.Writer, source string, report *quality.BatchReport) error {
	n := len(report.Records)

	fmt.Fprintf(w, "EEG channel quality report: %s\n", source)
	filtered := "no"
	if report.Filtered {
		filtered = "yes"
	}
	fmt.Fprintf(w, "channels: %d  filtered: %s\n\n", n, filtered)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tChannel\tStatus\tAvg Amplitude (mV)\tDC Drift (mV)\tSat Time (%)\tAlpha SNR\tAlpha Freq (Hz)")
	for i, r := range report.Records {
		alphaFreq := "N/A"
		if r.SNR.PeakFreqHz > 0 {
			alphaFreq = fmt.Sprintf("%.1f", r.SNR.PeakFreqHz)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.1f\t%.1f\t%.1f\t%.1f\t%s\n",
			i+1,
			r.Name,
			r.Label.Status(),
			r.Amplitude.AmplitudeV*1000,
			r.Drift.RangeV*1000,
			r.Saturation.TotalPct(),
			r.SNR.SNR,
			alphaFreq,
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nAvg amplitude (mV): mean %.2f  median %.2f  range %.2f - %.2f\n",
		report.Amplitude.Mean*1000, report.Amplitude.Median*1000,
		report.Amplitude.Min*1000, report.Amplitude.Max*1000)
	fmt.Fprintf(w, "DC drift (mV): mean %.2f  median %.2f  range %.2f - %.2f\n",
		report.DriftRange.Mean*1000, report.DriftRange.Median*1000,
		report.DriftRange.Min*1000, report.DriftRange.Max*1000)
	fmt.Fprintf(w, "Alpha SNR: mean %.1f  median %.1f  range %.1f - %.1f\n",
		report.SNR.Mean, report.SNR.Median, report.SNR.Min, report.SNR.Max)
	if report.MeanAlphaPeakHz > 0 {
		fmt.Fprintf(w, "Mean alpha peak frequency: %.1f Hz\n", report.MeanAlphaPeakHz)
	}

	sat := report.Saturation
	satPct := 0.0
	if n > 0 {
		satPct = float64(sat.SaturatedCount) / float64(n) * 100
	}
	fmt.Fprintf(w, "Saturated channels: %d/%d (%.1f%%)  below: %d  above: %d\n",
		sat.SaturatedCount, n, satPct, len(sat.Below), len(sat.Above))
	fmt.Fprintf(w, "Overall saturation level: %.2f%%\n", sat.OverallPct)
	fmt.Fprintf(w, "Data quality score: %.1f%% (%d/%d good channels)\n",
		report.QualityScore, n-report.ProblematicCount, n)

	if len(report.Warnings) > 0 {
		fmt.Fprintln(w, "\nwarnings:")
		for _, warning := range report.Warnings {
			fmt.Fprintf(w, "  - %s\n", warning)
		}
	}
	return nil
}

type channelJSON struct {
	Name          string   `json:"name"`
	Status        string   `json:"status"`
	AmplitudeMV   float64  `json:"avg_amplitude_mv"`
	DriftMV       float64  `json:"dc_drift_mv"`
	SaturationPct float64  `json:"saturation_pct"`
	AlphaSNR      float64  `json:"alpha_snr"`
	AlphaPeakHz   float64  `json:"alpha_peak_hz,omitempty"`
	Errors        []string `json:"errors,omitempty"`
}

type summaryJSON struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

type rankingJSON struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type rankingsJSON struct {
	AmplitudeMV []rankingJSON `json:"avg_amplitude_mv"`
	DriftMV     []rankingJSON `json:"dc_drift_mv"`
	AlphaSNR    []rankingJSON `json:"alpha_snr"`
}

type saturationJSON struct {
	Count      int      `json:"count"`
	Below      []string `json:"below,omitempty"`
	Above      []string `json:"above,omitempty"`
	OverallPct float64  `json:"overall_pct"`
}

type reportJSON struct {
	Source           string         `json:"source"`
	Filtered         bool           `json:"filtered"`
	Channels         []channelJSON  `json:"channels"`
	AmplitudeMV      summaryJSON    `json:"avg_amplitude_mv"`
	DriftMV          summaryJSON    `json:"dc_drift_mv"`
	AlphaSNR         summaryJSON    `json:"alpha_snr"`
	MeanAlphaPeakHz  float64        `json:"mean_alpha_peak_hz,omitempty"`
	Saturation       saturationJSON `json:"saturation"`
	Rankings         rankingsJSON   `json:"rankings"`
	ProblematicCount int            `json:"problematic_count"`
	QualityScore     float64        `json:"quality_score"`
	Warnings         []string       `json:"warnings,omitempty"`
}

func writeJSONReport(w io.Writer, source string, report *quality.BatchReport) error {
	out := reportJSON{
		Source:          source,
		Filtered:        report.Filtered,
		Channels:        make([]channelJSON, 0, len(report.Records)),
		AmplitudeMV:     scaledSummary(report.Amplitude, 1000),
		DriftMV:         scaledSummary(report.DriftRange, 1000),
		AlphaSNR:        scaledSummary(report.SNR, 1),
		MeanAlphaPeakHz: report.MeanAlphaPeakHz,
		Saturation: saturationJSON{
			Count:      report.Saturation.SaturatedCount,
			Below:      report.Saturation.Below,
			Above:      report.Saturation.Above,
			OverallPct: report.Saturation.OverallPct,
		},
		Rankings: rankingsJSON{
			AmplitudeMV: scaledRanking(report.Rankings.Amplitude, 1000),
			DriftMV:     scaledRanking(report.Rankings.DriftRange, 1000),
			AlphaSNR:    scaledRanking(report.Rankings.SNR, 1),
		},
		ProblematicCount: report.ProblematicCount,
		QualityScore:     report.QualityScore,
		Warnings:         report.Warnings,
	}
	for _, r := range report.Records {
		out.Channels = append(out.Channels, channelRecordJSON(r))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func channelRecordJSON(r quality.Record) channelJSON {
	c := channelJSON{
		Name:          r.Name,
		Status:        r.Label.Status(),
		AmplitudeMV:   r.Amplitude.AmplitudeV * 1000,
		DriftMV:       r.Drift.RangeV * 1000,
		SaturationPct: r.Saturation.TotalPct(),
		AlphaSNR:      r.SNR.SNR,
		AlphaPeakHz:   r.SNR.PeakFreqHz,
	}
	for _, err := range []error{r.DriftErr, r.AmplitudeErr, r.SNRErr} {
		if err != nil {
			c.Errors = append(c.Errors, err.Error())
		}
	}
	return c
}

func scaledSummary(s quality.Summary, scale float64) summaryJSON {
	return summaryJSON{
		Mean:   s.Mean * scale,
		Median: s.Median * scale,
		Min:    s.Min * scale,
		Max:    s.Max * scale,
	}
}

func scaledRanking(values []quality.ChannelValue, scale float64) []rankingJSON {
	out := make([]rankingJSON, len(values))
	for i, v := range values {
		out[i] = rankingJSON{Name: v.Name, Value: v.Value * scale}
	}
	return out
}
