package eeg

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/OpenPSG/edf"
)

// EDF headers are 256 bytes of fixed fields plus 256 bytes per signal.
const edfHeaderBlock = 256

// annotationsLabel marks EDF+ annotation signals, which carry text events
// rather than samples.
const annotationsLabel = "EDF Annotations"

type edfSignal struct {
	label            string
	dimension        string
	samplesPerRecord int
}

type edfHeader struct {
	dataRecords   int
	recordSeconds float64
	signals       []edfSignal
}

// ReadEDF parses an EDF recording from r.
//
// Every data signal becomes one channel: the trimmed signal label is the
// channel name, samples are the calibrated physical values scaled to volts
// from the signal's physical dimension (uV, mV or V; unknown dimensions pass
// through unscaled), and the sampling rate is samples-per-record divided by
// the record duration. EDF+ annotation signals are skipped.
func ReadEDF(r io.ReadSeeker) (*Recording, error) {
	hdr, err := readEDFHeader(r)
	if err != nil {
		return nil, fmt.Errorf("eeg: edf: %w", err)
	}
	if hdr.dataRecords < 0 {
		return nil, fmt.Errorf("eeg: edf: unknown data record count")
	}
	if hdr.recordSeconds <= 0 {
		return nil, fmt.Errorf("eeg: edf: record duration %g s", hdr.recordSeconds)
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("eeg: edf: %w", err)
	}
	reader, err := edf.Open(r)
	if err != nil {
		return nil, fmt.Errorf("eeg: edf: %w", err)
	}

	var rec Recording
	for i, sig := range hdr.signals {
		if sig.label == annotationsLabel {
			continue
		}
		sr, err := reader.Signal(i)
		if err != nil {
			return nil, fmt.Errorf("eeg: edf signal %q: %w", sig.label, err)
		}
		samples := make([]float64, hdr.dataRecords*sig.samplesPerRecord)
		if _, err := sr.Read(samples); err != nil {
			return nil, fmt.Errorf("eeg: edf signal %q: %w", sig.label, err)
		}
		if scale := physicalScale(sig.dimension); scale != 1 {
			for j := range samples {
				samples[j] *= scale
			}
		}
		ch := ChannelSeries{
			Name:         sig.label,
			Samples:      samples,
			SampleRateHz: float64(sig.samplesPerRecord) / hdr.recordSeconds,
		}
		if err := rec.Add(ch); err != nil {
			return nil, fmt.Errorf("eeg: edf: %w", err)
		}
	}
	if rec.Len() == 0 {
		return nil, fmt.Errorf("eeg: edf: no data signals")
	}
	return &rec, nil
}

// LoadEDF reads the EDF file at path. See ReadEDF.
func LoadEDF(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("eeg: %w", err)
	}
	defer f.Close()
	return ReadEDF(f)
}

// readEDFHeader pulls the handful of header fields the loader needs that the
// edf package keeps private: record count and duration, and per signal the
// label, physical dimension and samples per record.
func readEDFHeader(r io.ReadSeeker) (*edfHeader, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	fixed := make([]byte, edfHeaderBlock)
	if _, err := io.ReadFull(r, fixed); err != nil {
		return nil, fmt.Errorf("fixed header: %w", err)
	}

	records, err := strconv.Atoi(trimField(fixed[236:244]))
	if err != nil {
		return nil, fmt.Errorf("data record count: %w", err)
	}
	seconds, err := strconv.ParseFloat(trimField(fixed[244:252]), 64)
	if err != nil {
		return nil, fmt.Errorf("record duration: %w", err)
	}
	count, err := strconv.Atoi(trimField(fixed[252:256]))
	if err != nil {
		return nil, fmt.Errorf("signal count: %w", err)
	}
	if count <= 0 {
		return nil, fmt.Errorf("signal count %d", count)
	}

	block := make([]byte, count*edfHeaderBlock)
	if _, err := io.ReadFull(r, block); err != nil {
		return nil, fmt.Errorf("signal headers: %w", err)
	}

	hdr := &edfHeader{
		dataRecords:   records,
		recordSeconds: seconds,
		signals:       make([]edfSignal, count),
	}
	for i := range hdr.signals {
		hdr.signals[i].label = trimField(block[i*16 : (i+1)*16])

		off := count*96 + i*8
		hdr.signals[i].dimension = trimField(block[off : off+8])

		off = count*216 + i*8
		spr, err := strconv.Atoi(trimField(block[off : off+8]))
		if err != nil {
			return nil, fmt.Errorf("signal %d samples per record: %w", i, err)
		}
		if spr < 0 {
			return nil, fmt.Errorf("signal %d samples per record %d", i, spr)
		}
		hdr.signals[i].samplesPerRecord = spr
	}
	return hdr, nil
}

// physicalScale converts one unit of an EDF physical dimension to volts.
func physicalScale(dimension string) float64 {
	switch dimension {
	case "uV":
		return 1e-6
	case "mV":
		return 1e-3
	default:
		return 1
	}
}

func trimField(b []byte) string {
	return strings.TrimSpace(string(b))
}
