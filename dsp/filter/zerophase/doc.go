// Package zerophase applies biquad cascades forward and backward so the
// combined result has zero phase distortion.
//
// Each pass seeds the section states with their step-response steady state,
// scaled by the first sample of the (edge-padded) input. Together with odd
// reflection padding at both edges this keeps startup transients out of the
// returned signal. The effective magnitude response is the square of the
// cascade's response; the effective order doubles.
package zerophase
