package window

import (
	"math"
	"testing"
)

func TestGenerateAllTypes(t *testing.T) {
	types := []Type{
		TypeRectangular,
		TypeHann,
		TypeHamming,
		TypeBlackman,
	}

	for _, typ := range types {
		t.Run(Info(typ).Name, func(t *testing.T) {
			w := Generate(typ, 64)
			if len(w) != 64 {
				t.Fatalf("len=%d, want 64", len(w))
			}

			for i, v := range w {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("coefficient[%d] invalid: %v", i, v)
				}
			}
		})
	}
}

func TestPeriodicDiffersFromSymmetric(t *testing.T) {
	a := Generate(TypeHann, 16)

	b := Generate(TypeHann, 16, WithPeriodic())
	if len(a) != 16 || len(b) != 16 {
		t.Fatalf("unexpected lengths: %d %d", len(a), len(b))
	}

	if almostEqual(a[15], b[15], 1e-12) {
		t.Fatal("expected different end coefficient for periodic form")
	}
}

func TestApplyInPlaceByType(t *testing.T) {
	buf := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	Apply(TypeRectangular, buf)

	for i, v := range buf {
		if v != float64(i+1) {
			t.Fatalf("rectangular should be passthrough at %d: %v", i, v)
		}
	}

	Apply(TypeHann, buf)

	if buf[0] != 0 {
		t.Fatalf("hann first sample should be 0, got %v", buf[0])
	}
}

func TestMetadataAndENBW(t *testing.T) {
	m := Info(TypeHann)
	if m.Name != "Hann" {
		t.Fatalf("name=%q", m.Name)
	}

	if !almostEqual(m.ENBW, 1.5, 0.01) {
		t.Fatalf("ENBW metadata=%v", m.ENBW)
	}

	w := Generate(TypeHann, 2048)

	enbw, err := EquivalentNoiseBandwidth(w)
	if err != nil {
		t.Fatalf("EquivalentNoiseBandwidth error: %v", err)
	}

	if !almostEqual(enbw, 1.5, 0.01) {
		t.Fatalf("hann ENBW=%v, want ~1.5", enbw)
	}
}

// The periodic Hann window has ENBW of exactly 1.5 bins at any length,
// since the cosine terms sum to zero over a whole period.
func TestPeriodicHannENBWExact(t *testing.T) {
	for _, n := range []int{8, 256, 1024} {
		w := Generate(TypeHann, n, WithPeriodic())

		enbw, err := EquivalentNoiseBandwidth(w)
		if err != nil {
			t.Fatal(err)
		}

		if !almostEqual(enbw, 1.5, 1e-9) {
			t.Fatalf("n=%d: ENBW=%v, want 1.5", n, enbw)
		}
	}
}

func TestCompatibilityWrappers(t *testing.T) {
	_, err := Hann(64)
	if err != nil {
		t.Fatal(err)
	}

	_, err = Hamming(64)
	if err != nil {
		t.Fatal(err)
	}

	_, err = Blackman(64)
	if err != nil {
		t.Fatal(err)
	}
}

func TestApplyCoefficientsHelpers(t *testing.T) {
	samples := []float64{1, 2, 3}
	coeffs := []float64{0.5, 0.5, 0.5}

	out, err := ApplyCoefficients(samples, coeffs)
	if err != nil {
		t.Fatal(err)
	}

	if !almostEqual(out[2], 1.5, 1e-12) {
		t.Fatalf("out[2]=%v", out[2])
	}

	err = ApplyCoefficientsInPlace(samples, coeffs)
	if err != nil {
		t.Fatal(err)
	}

	if !almostEqual(samples[1], 1.0, 1e-12) {
		t.Fatalf("samples[1]=%v", samples[1])
	}
}

func TestGoldenVectors(t *testing.T) {
	hannExpected := []float64{
		0.0, 0.1882550990706332, 0.6112604669781572, 0.9504844339512095,
		0.9504844339512095, 0.6112604669781573, 0.1882550990706333, 0.0,
	}
	hammingExpected := []float64{
		0.08, 0.25319469114498255, 0.6423596296199047, 0.9544456792351128,
		0.9544456792351128, 0.6423596296199048, 0.25319469114498266, 0.08,
	}
	blackmanExpected := []float64{
		0.0, 0.0904534243541281, 0.4591829575459637, 0.9203636180999083,
		0.9203636180999083, 0.4591829575459637, 0.0904534243541281, 0.0,
	}

	checkGolden(t, Generate(TypeHann, 8), hannExpected, 1e-10)
	checkGolden(t, Generate(TypeHamming, 8), hammingExpected, 1e-10)
	checkGolden(t, Generate(TypeBlackman, 8), blackmanExpected, 1e-10)
}

func TestGoldenVectorsPeriodicHann(t *testing.T) {
	want := []float64{
		0.0, 0.14644660940672627, 0.5, 0.8535533905932737,
		1.0, 0.8535533905932737, 0.5, 0.14644660940672627,
	}

	checkGolden(t, Generate(TypeHann, 8, WithPeriodic()), want, 1e-10)
}

func TestValidationAndEdgeCases(t *testing.T) {
	if got := Generate(TypeHann, 0); got != nil {
		t.Fatalf("expected nil for zero length, got %v", got)
	}

	_, err := Hann(0)
	if err == nil {
		t.Fatal("expected size validation error")
	}

	_, err = EquivalentNoiseBandwidth(nil)
	if err == nil {
		t.Fatal("expected empty coeffs error")
	}

	_, err = EquivalentNoiseBandwidth([]float64{0, 0, 0})
	if err == nil {
		t.Fatal("expected zero coherent gain error")
	}

	_, err = ApplyCoefficients([]float64{1, 2}, []float64{1})
	if err == nil {
		t.Fatal("expected mismatch error")
	}

	err = ApplyCoefficientsInPlace([]float64{1, 2}, []float64{1})
	if err == nil {
		t.Fatal("expected mismatch error")
	}
}

func checkGolden(t *testing.T, got, want []float64, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("len mismatch got=%d want=%d", len(got), len(want))
	}

	for i := range got {
		if !almostEqual(got[i], want[i], tol) {
			t.Fatalf("index %d: got=%.16f want=%.16f", i, got[i], want[i])
		}
	}
}

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
