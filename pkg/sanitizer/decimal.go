package sanitizer

import "strings"

// IntegerPart returns the text before the first decimal point, or s itself
// when it has no point.
func IntegerPart(s string) string {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return s[:i]
	}
	return s
}

// ExpandLeadingPoint prefixes a zero to a value that starts with a decimal
// point, so ".5" reads "0.5" and "." reads "0.". Other values are returned
// unchanged.
func ExpandLeadingPoint(s string) string {
	if s == "" || s[0] != '.' || s == "0." {
		return s
	}
	return "0" + s
}

// CollapseLeadingZeros drops leading '0' characters while the integer part
// is at least two characters long: "007" becomes "7", "00." becomes "0."
// and "0" stays "0". The result shares memory with s.
func CollapseLeadingZeros(s string) string {
	for hasLeadingZeros(s) {
		s = s[1:]
	}
	return s
}

func hasLeadingZeros(s string) bool {
	return len(IntegerPart(s)) >= 2 && s[0] == '0'
}
