package decimalinput

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// number converts decimal text to a float64. Empty or whitespace-only text
// is zero. Text that is not [sign] digits [. digits], [sign] . digits or
// [sign] digits . yields NaN; exponent and hexadecimal forms are not
// decimal input and are rejected too. Values beyond float64 range yield
// an infinity.
func number(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if !isDecimalText(s) {
		return math.NaN()
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}

func isDecimalText(s string) bool {
	pos := 0
	if pos < len(s) && (s[pos] == '+' || s[pos] == '-') {
		pos++
	}

	digits := 0
	for pos < len(s) && isDigit(s[pos]) {
		digits++
		pos++
	}
	if pos < len(s) && s[pos] == '.' {
		pos++
		for pos < len(s) && isDigit(s[pos]) {
			digits++
			pos++
		}
	}

	return pos == len(s) && digits > 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
