// Package eeg holds the recording domain types and file ingestion.
//
// A Recording is an ordered collection of named channel traces in volts.
// Loaders exist for headered CSV exports and EDF files; the analysis
// packages only ever see the in-memory types.
package eeg
