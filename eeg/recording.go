package eeg

import (
	"errors"
	"fmt"
)

// ErrDuplicateChannel is returned when a channel name already exists in
// the recording. Names must be unique within a batch.
var ErrDuplicateChannel = errors.New("eeg: duplicate channel name")

// ChannelSeries is one electrode's voltage trace.
type ChannelSeries struct {
	Name         string
	Samples      []float64 // volts
	SampleRateHz float64
}

// Duration returns the trace length in seconds, or 0 when the sampling
// rate is unset.
func (c ChannelSeries) Duration() float64 {
	if c.SampleRateHz <= 0 {
		return 0
	}
	return float64(len(c.Samples)) / c.SampleRateHz
}

// Recording is an ordered set of channels from one acquisition. Iteration
// and report order follow insertion order; lookup by name is constant
// time.
type Recording struct {
	channels []ChannelSeries
	byName   map[string]int
}

// NewRecording builds a recording from channels in the given order.
func NewRecording(channels ...ChannelSeries) (*Recording, error) {
	r := &Recording{byName: make(map[string]int, len(channels))}
	for _, ch := range channels {
		if err := r.Add(ch); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Add appends a channel, keeping insertion order.
func (r *Recording) Add(ch ChannelSeries) error {
	if r.byName == nil {
		r.byName = make(map[string]int)
	}
	if _, ok := r.byName[ch.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateChannel, ch.Name)
	}
	r.byName[ch.Name] = len(r.channels)
	r.channels = append(r.channels, ch)
	return nil
}

// Len returns the channel count.
func (r *Recording) Len() int {
	return len(r.channels)
}

// Channels returns the channels in insertion order. The slice is shared
// with the recording; treat it as read-only.
func (r *Recording) Channels() []ChannelSeries {
	return r.channels
}

// Channel looks a channel up by name.
func (r *Recording) Channel(name string) (ChannelSeries, bool) {
	i, ok := r.byName[name]
	if !ok {
		return ChannelSeries{}, false
	}
	return r.channels[i], true
}

// Names returns the channel names in insertion order.
func (r *Recording) Names() []string {
	names := make([]string, len(r.channels))
	for i, ch := range r.channels {
		names[i] = ch.Name
	}
	return names
}
