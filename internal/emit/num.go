package emit

import (
	"math"
	"strconv"
)

// Float renders a float in the shortest decimal form: no trailing zeros, no
// exponent, rounded to four decimals to drop binary float noise.
func Float(f float64) string {
	r := math.Round(f*10000) / 10000
	s := strconv.FormatFloat(r, 'f', -1, 64)
	if s == "-0" {
		return "0"
	}
	return s
}
