package alphasnr

import (
	"math"
	"testing"

	"github.com/antonkonsta/EEG-Analysis/internal/testutil"
)

func TestAnalyze_PeakTracksAlphaSine(t *testing.T) {
	const rate = 256.0

	// 30 s at 256 Hz: nperseg clamps to 1024, nfft 2048, so 10 Hz lands
	// exactly on bin 80 and the reported frequency is exact.
	n := int(30 * rate)
	samples := testutil.DeterministicSine(10, rate, 1.0, n)

	r, err := Analyze(samples, rate)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if r.PeakFreqHz != 10.0 {
		t.Errorf("PeakFreqHz = %v, want 10", r.PeakFreqHz)
	}

	// Peak density of a full-bin unit sine under an averaged periodic
	// Hann window is nperseg/(3*fs).
	want := 1024.0 / (3 * rate)
	if math.Abs(r.PeakAmplitude-want) > 0.02*want {
		t.Errorf("PeakAmplitude = %v, want %v", r.PeakAmplitude, want)
	}

	if r.SNR < 1000 {
		t.Errorf("SNR = %v, want very large for a clean sine", r.SNR)
	}

	if len(r.Freqs) != len(r.PSD) {
		t.Fatalf("Freqs/PSD length mismatch: %d vs %d", len(r.Freqs), len(r.PSD))
	}
}

func TestAnalyze_KnownSignalScenario(t *testing.T) {
	const (
		rate  = 1000.0
		noise = 0.3
	)

	// 60 s at 1000 Hz: unit 10 Hz sine in uniform white noise. The
	// expected SNR is the sine's Welch peak density over the noise
	// density 2*noise^2/(3*fs).
	n := int(60 * rate)
	samples := testutil.Sum(
		testutil.DeterministicSine(10, rate, 1.0, n),
		testutil.DeterministicNoise(11, noise, n),
	)

	r, err := Analyze(samples, rate)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	// Bins of the 16384-point transform sit 0.061 Hz apart, so the
	// reported peak lands within a bin of the true tone.
	if math.Abs(r.PeakFreqHz-10.0) > 0.05 {
		t.Errorf("PeakFreqHz = %v, want 10", r.PeakFreqHz)
	}

	peak := 7500.0 / (3 * rate)
	floor := 2 * noise * noise / (3 * rate)
	want := peak / floor

	if math.Abs(r.SNR-want) > 0.25*want {
		t.Errorf("SNR = %v, want within 25%% of %v", r.SNR, want)
	}

	if math.Abs(r.NoiseFloor-floor) > 0.25*floor {
		t.Errorf("NoiseFloor = %v, want within 25%% of %v", r.NoiseFloor, floor)
	}
}

func TestAnalyze_ConstantSignalZeroResult(t *testing.T) {
	samples := testutil.DC(1.0, 8192)

	r, err := Analyze(samples, 500)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if r.SNR != 0 || r.PeakFreqHz != 0 || r.PeakAmplitude != 0 || r.NoiseFloor != 0 {
		t.Errorf("got %+v, want zero metrics for constant input", r)
	}

	if len(r.Freqs) == 0 || len(r.Freqs) != len(r.PSD) {
		t.Errorf("spectrum missing: %d freqs, %d psd", len(r.Freqs), len(r.PSD))
	}
}

func TestAnalyze_DegenerateShortInput(t *testing.T) {
	// 10 samples at 1000 Hz pad to a 32-point transform whose first
	// nonzero bin sits at 31.25 Hz, so the alpha band is empty. That
	// degrades to zero, never an error.
	samples := testutil.DeterministicSine(10, 1000, 1.0, 10)

	r, err := Analyze(samples, 1000)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if r.SNR != 0 {
		t.Errorf("SNR = %v, want 0", r.SNR)
	}

	if len(r.Freqs) != 17 {
		t.Errorf("len(Freqs) = %d, want 17", len(r.Freqs))
	}
}

func TestAnalyze_InvalidInputs(t *testing.T) {
	if _, err := Analyze(nil, 500); err == nil {
		t.Error("empty input: expected error")
	}

	if _, err := Analyze(make([]float64, 100), 0); err == nil {
		t.Error("zero rate: expected error")
	}
}

func TestAnalyze_NonFiniteInput(t *testing.T) {
	samples := testutil.DeterministicSine(10, 500, 1.0, 2048)
	samples[512] = math.NaN()

	if _, err := Analyze(samples, 500); err == nil {
		t.Error("NaN input: expected error")
	}
}

func BenchmarkAnalyze(b *testing.B) {
	const rate = 500.0

	n := int(60 * rate)
	samples := testutil.Sum(
		testutil.DeterministicSine(10, rate, 0.05, n),
		testutil.DeterministicNoise(1, 0.01, n),
	)

	b.SetBytes(int64(n * 8))
	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		_, _ = Analyze(samples, rate)
	}
}
