package quality

import (
	"fmt"
	"strings"
)

// ReferenceMarker flags reference electrodes. Channels whose name
// contains it are exempt from the low-amplitude criterion; a reference
// lead records little signal by construction. They remain subject to
// saturation.
const ReferenceMarker = "REF"

// Label is the per-channel classification.
type Label int

const (
	LabelNormal Label = iota
	LabelSaturated
	LabelLowAmplitude
	LabelBoth
)

func (l Label) String() string {
	switch l {
	case LabelNormal:
		return "NORMAL"
	case LabelSaturated:
		return "SATURATED"
	case LabelLowAmplitude:
		return "LOW_AMPLITUDE"
	case LabelBoth:
		return "BOTH"
	default:
		return fmt.Sprintf("Label(%d)", int(l))
	}
}

// Status returns the compact form used in report tables.
func (l Label) Status() string {
	switch l {
	case LabelSaturated:
		return "SAT"
	case LabelLowAmplitude:
		return "LOW-AMP"
	case LabelBoth:
		return "SAT, LOW-AMP"
	default:
		return "NORMAL"
	}
}

// Problematic reports whether the label marks a channel needing
// attention.
func (l Label) Problematic() bool {
	return l != LabelNormal
}

// IsReference reports whether a channel name marks a reference electrode.
func IsReference(name string) bool {
	return strings.Contains(name, ReferenceMarker)
}

// Classify composes a label from already-computed metrics. It performs no
// numerical analysis of its own, only threshold comparison; amplitude is
// in volts and compared against the millivolt threshold.
func Classify(name string, amplitudeV float64, isSaturated bool, t ThresholdConfig) Label {
	lowAmp := amplitudeV*1000 < t.LowAmplitudeMV && !IsReference(name)
	switch {
	case isSaturated && lowAmp:
		return LabelBoth
	case isSaturated:
		return LabelSaturated
	case lowAmp:
		return LabelLowAmplitude
	}
	return LabelNormal
}
