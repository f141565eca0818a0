package filesize

import (
	"math"
	"strconv"
	"strings"
)

// round rounds value to precision fractional digits, half away from zero.
// The decision digit is taken from the shortest decimal representation of
// value, so 1.005 rounds to 1.01 even though its binary form is slightly
// below 1.005.
func round(value float64, precision int) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) || value == 0 {
		return value
	}

	digits := strconv.FormatFloat(math.Abs(value), 'f', -1, 64)
	whole, frac, _ := strings.Cut(digits, ".")
	if len(frac) <= precision {
		return value
	}

	kept := whole
	if precision > 0 {
		kept += "." + frac[:precision]
	}
	rounded, err := strconv.ParseFloat(kept, 64)
	if err != nil {
		return value
	}

	if frac[precision] >= '5' {
		rounded += math.Pow10(-precision)
		// Re-parse to land on the float nearest the intended decimal.
		rounded, _ = strconv.ParseFloat(strconv.FormatFloat(rounded, 'f', precision, 64), 64)
	}

	if rounded == 0 {
		return 0
	}
	return math.Copysign(rounded, value)
}
