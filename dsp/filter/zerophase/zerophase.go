package zerophase

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/antonkonsta/EEG-Analysis/dsp/filter/biquad"
)

var (
	// ErrNoSections is returned when the cascade is empty.
	ErrNoSections = errors.New("zerophase: empty section cascade")

	// ErrTooShort is returned when the input has too few samples for the
	// edge padding. Filter needs strictly more than PadLen samples.
	ErrTooShort = errors.New("zerophase: input shorter than padding length")

	// ErrNonFinite is returned when filtering produced NaN or Inf values,
	// either from non-finite input or an unstable cascade.
	ErrNonFinite = errors.New("zerophase: filter produced non-finite output")
)

// PadLen returns the number of samples reflected onto each edge of the
// input before filtering a cascade of numSections sections.
func PadLen(numSections int) int {
	return 3 * (2*numSections + 1)
}

// Filter runs the cascade over x forward, then over the reversed result
// backward, and returns the central slice aligned with x. The input is not
// modified. len(x) must exceed PadLen(len(sections)).
func Filter(sections []biquad.Coefficients, x []float64) ([]float64, error) {
	if len(sections) == 0 {
		return nil, ErrNoSections
	}

	padlen := PadLen(len(sections))
	if len(x) <= padlen {
		return nil, fmt.Errorf("%w: have %d samples, need more than %d", ErrTooShort, len(x), padlen)
	}

	ext := oddReflect(x, padlen)

	runCascade(sections, ext)
	slices.Reverse(ext)
	runCascade(sections, ext)
	slices.Reverse(ext)

	out := make([]float64, len(x))
	copy(out, ext[padlen:padlen+len(x)])

	for _, v := range out {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNonFinite
		}
	}
	return out, nil
}

// runCascade filters buf in place, seeding each section with the steady
// state it would hold after an infinitely long run of buf's first sample.
func runCascade(sections []biquad.Coefficients, buf []float64) {
	x0 := buf[0]
	for i := range sections {
		c := sections[i]
		g := c.DCGain()

		s := biquad.NewSection(c)
		s.SetState([2]float64{(g - c.B0) * x0, (c.B2 - c.A2*g) * x0})
		s.ProcessBlock(buf)

		// The next section sees this section's steady-state level.
		x0 *= g
	}
}

// oddReflect extends x by padlen samples on each side, point-reflecting
// the signal around its first and last values.
func oddReflect(x []float64, padlen int) []float64 {
	n := len(x)
	ext := make([]float64, padlen+n+padlen)

	for i := 0; i < padlen; i++ {
		ext[i] = 2*x[0] - x[padlen-i]
		ext[padlen+n+i] = 2*x[n-1] - x[n-2-i]
	}
	copy(ext[padlen:], x)

	return ext
}
