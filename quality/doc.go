// Package quality classifies EEG channels as usable or problematic.
//
// The Analyzer runs the optional zero-phase filter stage over a batch,
// then the four per-channel analyzers (drift, amplitude, alpha SNR on the
// working data; saturation on the raw data), and aggregates the results
// into an ordered BatchReport with labels, rankings, and summary
// statistics. Per-channel failures are carried as explicit error values
// on the record; only an empty batch is fatal.
package quality
