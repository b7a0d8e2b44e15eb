package numeric

import (
	"errors"
	"strconv"
	"strings"
)

const whitespace = " \t\n\v\f\r"

// ToFloat converts s to a float64 using its longest numeric prefix.
// Strings without a numeric prefix convert to 0. Prefixes too large for a
// float64 convert to +Inf or -Inf.
func ToFloat(s string) float64 {
	prefix := numericPrefix(s)
	if prefix == "" {
		return 0
	}
	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return f
}

// numericPrefix extracts the longest leading decimal literal of s with digit
// separators removed, or "" when s does not start with a number.
func numericPrefix(s string) string {
	s = strings.TrimLeft(s, whitespace)

	var b strings.Builder
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		b.WriteByte(s[i])
		i++
	}

	intDigits, n := scanDigits(s[i:])
	b.WriteString(intDigits)
	i += n

	hasFraction := false
	if i < len(s) && s[i] == '.' {
		if fracDigits, n := scanDigits(s[i+1:]); n > 0 {
			b.WriteByte('.')
			b.WriteString(fracDigits)
			i += 1 + n
			hasFraction = true
		}
	}

	if intDigits == "" && !hasFraction {
		return ""
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		sign := ""
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			sign = s[j : j+1]
			j++
		}
		if expDigits, n := scanDigits(s[j:]); n > 0 {
			b.WriteByte('e')
			b.WriteString(sign)
			b.WriteString(expDigits)
		}
	}

	return b.String()
}

// scanDigits returns the leading run of digits in s and the number of bytes
// it spans. A single underscore is accepted between two digits and dropped.
func scanDigits(s string) (string, int) {
	var b strings.Builder
	i := 0
	for i < len(s) {
		c := s[i]
		if isDigit(c) {
			b.WriteByte(c)
			i++
			continue
		}
		if c == '_' && i > 0 && isDigit(s[i-1]) && i+1 < len(s) && isDigit(s[i+1]) {
			i++
			continue
		}
		break
	}
	return b.String(), i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
