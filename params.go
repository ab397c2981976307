package mcx

import (
	"fmt"
	"math"
)

// FormatParam formats a rotation angle, using pi notation when it matches a
// common fraction. Synthesis emits controlled-root angles π/2^j, so the
// table covers the small powers and falls back to %g.
func FormatParam(val float64) string {
	type piForm struct {
		value   float64
		display string
	}
	piForms := []piForm{
		{2 * math.Pi, "2*pi"},
		{math.Pi, "pi"},
		{math.Pi / 2, "pi/2"},
		{math.Pi / 4, "pi/4"},
		{math.Pi / 8, "pi/8"},
		{math.Pi / 16, "pi/16"},
		{math.Pi / 32, "pi/32"},
		{3 * math.Pi / 4, "3*pi/4"},
		{3 * math.Pi / 2, "3*pi/2"},
	}

	for _, pf := range piForms {
		if math.Abs(val-pf.value) < 1e-12 {
			return pf.display
		}
		if math.Abs(val+pf.value) < 1e-12 {
			return "-" + pf.display
		}
	}

	return fmt.Sprintf("%g", val)
}
