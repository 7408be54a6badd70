package eeg

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// sampleIndexColumn names the CSV column carrying the running sample counter
// instead of channel data. Matched case-insensitively.
const sampleIndexColumn = "Sample Num"

// ReadCSV parses an exported recording from r.
//
// The first row is the header. A column named "Sample Num" (any case) is an
// index column and is skipped; every other column becomes one channel, in
// header order. Values are volts. CSV files carry no sampling rate, so the
// caller supplies one and it is applied to every channel; a nonpositive rate
// is stored as given and left for downstream configuration to resolve.
func ReadCSV(r io.Reader, sampleRateHz float64) (*Recording, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("eeg: csv: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("eeg: csv header: %w", err)
	}

	columns := make([]int, 0, len(header))
	names := make([]string, 0, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if strings.EqualFold(name, sampleIndexColumn) {
			continue
		}
		columns = append(columns, i)
		names = append(names, name)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("eeg: csv: no channel columns")
	}

	samples := make([][]float64, len(columns))
	row := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("eeg: csv: %w", err)
		}
		row++
		for j, col := range columns {
			v, err := strconv.ParseFloat(strings.TrimSpace(record[col]), 64)
			if err != nil {
				return nil, fmt.Errorf("eeg: csv row %d, column %q: %w", row, names[j], err)
			}
			samples[j] = append(samples[j], v)
		}
	}

	channels := make([]ChannelSeries, len(columns))
	for j, name := range names {
		channels[j] = ChannelSeries{Name: name, Samples: samples[j], SampleRateHz: sampleRateHz}
	}
	return NewRecording(channels...)
}

// LoadCSV reads the CSV file at path. See ReadCSV.
func LoadCSV(path string, sampleRateHz float64) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("eeg: %w", err)
	}
	defer f.Close()
	return ReadCSV(f, sampleRateHz)
}
