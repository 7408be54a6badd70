package design_test

import (
	"fmt"
	"math/cmplx"

	"github.com/antonkonsta/EEG-Analysis/dsp/filter/design"
)

func ExampleNotch() {
	// 60 Hz powerline notch at 500 Hz sampling, Q = 30.
	c := design.Notch(60, 30, 500)

	center := cmplx.Abs(c.Response(60, 500))
	fmt.Printf("|H(60)| = %.6f\n", center)
	fmt.Printf("|H(0)|  = %.4f\n", c.DCGain())
	// Output:
	// |H(60)| = 0.000000
	// |H(0)|  = 1.0000
}

func ExampleLowpass() {
	// 40 Hz lowpass at 500 Hz sampling, Butterworth Q.
	c := design.Lowpass(40, 0.7071, 500)

	fmt.Printf("dc gain: %.4f\n", c.DCGain())
	fmt.Printf("stable:  %v\n", c.Stable())
	// Output:
	// dc gain: 1.0000
	// stable:  true
}
