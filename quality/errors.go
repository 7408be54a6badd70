package quality

import (
	"errors"
	"fmt"

	"github.com/antonkonsta/EEG-Analysis/dsp/filter/zerophase"
)

var (
	// ErrNoChannels is returned for a batch with nothing to classify,
	// the only fatal input.
	ErrNoChannels = errors.New("quality: no channels to analyze")

	// ErrInsufficientData marks a per-channel metric that defaulted to
	// zero because the series is shorter than the stage minimum.
	ErrInsufficientData = errors.New("quality: insufficient data")

	// ErrComputation marks a per-channel metric that defaulted to zero
	// after a numerical failure.
	ErrComputation = errors.New("quality: computation failed")
)

// stageError sorts a measure failure into the report taxonomy so callers
// can tell a too-short series from a numerical breakdown.
func stageError(err error) error {
	if errors.Is(err, zerophase.ErrTooShort) {
		return fmt.Errorf("%w: %v", ErrInsufficientData, err)
	}
	return fmt.Errorf("%w: %v", ErrComputation, err)
}
