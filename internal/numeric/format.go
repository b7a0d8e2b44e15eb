package numeric

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Decimal exponents (value = 0.ddd x 10^exp) rendered without scientific
// notation lie in (minFixedExponent, maxFixedExponent].
const (
	maxFixedExponent = 16
	minFixedExponent = -4
)

// Format renders f with the shortest digits that round-trip, always keeping a
// fractional part: 10 becomes "10.0", 1e16 becomes "1.0e+16" and 1e-5 becomes
// "1.0e-05". Non-finite values render as "NaN", "Infinity" and "-Infinity".
func Format(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	sign := ""
	if math.Signbit(f) {
		sign = "-"
		f = -f
	}
	if f == 0 {
		return sign + "0.0"
	}

	digits, exp := shortestDigits(f)
	switch {
	case exp > 0 && exp <= maxFixedExponent:
		if len(digits) <= exp {
			return sign + digits + strings.Repeat("0", exp-len(digits)) + ".0"
		}
		return sign + digits[:exp] + "." + digits[exp:]
	case exp <= 0 && exp > minFixedExponent:
		return sign + "0." + strings.Repeat("0", -exp) + digits
	default:
		fraction := digits[1:]
		if fraction == "" {
			fraction = "0"
		}
		return fmt.Sprintf("%s%s.%se%+03d", sign, digits[:1], fraction, exp-1)
	}
}

// Echo renders the line that reports the first two operands.
func Echo(actual, target float64) string {
	return "calc(" + Format(actual) + ", " + Format(target) + ")"
}

// shortestDigits returns the significant decimal digits of a positive finite
// f and its decimal exponent, so that f == 0.digits x 10^exp.
func shortestDigits(f float64) (string, int) {
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exponent, _ := strings.Cut(s, "e")
	exp, _ := strconv.Atoi(exponent)
	return strings.Replace(mantissa, ".", "", 1), exp + 1
}
