package quality

import "testing"

func TestClassify(t *testing.T) {
	th := ThresholdConfig{LowV: -1, HighV: 1, LowAmplitudeMV: 0.5}

	cases := []struct {
		name      string
		channel   string
		ampV      float64
		saturated bool
		want      Label
	}{
		{"normal", "Fp1", 0.001, false, LabelNormal},
		{"saturated", "Fp1", 0.001, true, LabelSaturated},
		{"low amplitude", "Fp1", 0.0004, false, LabelLowAmplitude},
		{"both", "Fp1", 0.0004, true, LabelBoth},
		{"reference exempt from low amplitude", "Fp1 (REF)", 0.0004, false, LabelNormal},
		{"reference still saturates", "Fp1 (REF)", 0.0004, true, LabelSaturated},
		{"amplitude at the threshold is not low", "Cz", 0.0005, false, LabelNormal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.channel, tc.ampV, tc.saturated, th)
			if got != tc.want {
				t.Errorf("Classify(%q, %v, %v) = %v, want %v", tc.channel, tc.ampV, tc.saturated, got, tc.want)
			}
		})
	}
}

func TestLabelStrings(t *testing.T) {
	cases := []struct {
		label  Label
		str    string
		status string
	}{
		{LabelNormal, "NORMAL", "NORMAL"},
		{LabelSaturated, "SATURATED", "SAT"},
		{LabelLowAmplitude, "LOW_AMPLITUDE", "LOW-AMP"},
		{LabelBoth, "BOTH", "SAT, LOW-AMP"},
	}

	for _, tc := range cases {
		if got := tc.label.String(); got != tc.str {
			t.Errorf("%d.String() = %q, want %q", int(tc.label), got, tc.str)
		}
		if got := tc.label.Status(); got != tc.status {
			t.Errorf("%v.Status() = %q, want %q", tc.label, got, tc.status)
		}
	}

	if LabelNormal.Problematic() {
		t.Error("NORMAL marked problematic")
	}
	for _, l := range []Label{LabelSaturated, LabelLowAmplitude, LabelBoth} {
		if !l.Problematic() {
			t.Errorf("%v not marked problematic", l)
		}
	}
}

func TestIsReference(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"Fp1 (REF)", true},
		{"REF", true},
		{"A1-REF", true},
		{"Fp1", false},
		{"ref", false},
	}
	for _, tc := range cases {
		if got := IsReference(tc.name); got != tc.want {
			t.Errorf("IsReference(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}
