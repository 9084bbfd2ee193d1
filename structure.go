package decimalinput

import "strings"

// IsStructurallyValid reports whether normalized has an acceptable shape
// for a decimal, independent of any range. A lone "." is accepted: it is
// the state a field passes through right before it is shown as "0.".
//
// Otherwise the text must read as a finite number, must not be "00", must
// not have exactly "00" after its decimal point, and must satisfy
// WithinDigits with digits.
func IsStructurallyValid(normalized string, digits *int) bool {
	trimmed := strings.TrimSpace(normalized)
	if trimmed == "." {
		return true
	}

	fraction, _ := FractionDigits(trimmed)
	return isSafeDecimal(number(normalized), digits) &&
		trimmed != "00" &&
		fraction != "00" &&
		WithinDigits(normalized, digits)
}
