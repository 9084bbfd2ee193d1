package decimalinput

import "github.com/didley/decimal-input/pkg/sanitizer"

var normalizeOnce = sanitizer.Compose(
	sanitizer.Trim,
	sanitizer.ExpandLeadingPoint,
	sanitizer.CollapseLeadingZeros,
)

// Normalize rewrites raw into the canonical form shown back in a text
// field: surrounding whitespace is trimmed, a leading decimal point gains a
// zero (".5" becomes "0.5", "." becomes "0.") and redundant leading zeros
// of the integer part are dropped ("007" becomes "7", "00." becomes "0.").
// Signs, interior digits and the decimal point pass through unchanged.
//
// Normalize is idempotent.
func Normalize(raw string) string {
	s := normalizeOnce(raw)
	// Dropping zeros can expose whitespace, as in "0 5"; repeat until stable.
	for {
		next := normalizeOnce(s)
		if next == s {
			return s
		}
		s = next
	}
}
