// Command eegqual scores EEG channel quality from recorded sessions.
//
// Usage:
//
//	eegqual analyze --input session.csv [--sample-rate 500] [--json]
//	eegqual analyze --input session.edf
//	eegqual version
//
// Configuration is read from eegqual.yaml (or --config), with EEGQUAL_*
// environment overrides.
package main

import "github.com/antonkonsta/EEG-Analysis/internal/cli"

func main() {
	cli.Execute()
}
