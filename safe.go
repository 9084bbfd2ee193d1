package decimalinput

import (
	"math"
	"strconv"

	"github.com/govalues/decimal"
)

// SafeDecimal is a float64 that has passed IsSafeDecimal: it is finite and,
// when a digit limit applied, has no more fractional digits than allowed.
// Values come from NewSafeDecimal or from a valid Result; a plain
// conversion skips the check and should only be used when the caller has
// already validated the number.
type SafeDecimal float64

// NewSafeDecimal returns n as a SafeDecimal if IsSafeDecimal(n, digits...)
// holds.
func NewSafeDecimal(n float64, digits ...int) (SafeDecimal, bool) {
	if !IsSafeDecimal(n, digits...) {
		return 0, false
	}
	return SafeDecimal(n), true
}

// Float64 returns the underlying value.
func (d SafeDecimal) Float64() float64 {
	return float64(d)
}

// String formats d in the same shortest, exponent-free form WithinDigits
// counts digits on.
func (d SafeDecimal) String() string {
	return strconv.FormatFloat(float64(d), 'f', -1, 64)
}

// Decimal converts d to an exact decimal. It fails when d needs more than
// 19 significant digits.
func (d SafeDecimal) Decimal() (decimal.Decimal, error) {
	return decimal.Parse(d.String())
}

// IsSafeDecimal reports whether n is an admissible decimal: an integer or a
// non-integer real, and finite, which rules out NaN and both infinities.
// When digits is given, only its first element is used, and n must also
// satisfy WithinDigits with that limit.
func IsSafeDecimal(n float64, digits ...int) bool {
	safe := (isInteger(n) || isFraction(n)) && isFinite(n)
	if !safe || len(digits) == 0 {
		return safe
	}
	return WithinDigits(n, &digits[0])
}

func isSafeDecimal(n float64, digits *int) bool {
	if digits == nil {
		return IsSafeDecimal(n)
	}
	return IsSafeDecimal(n, *digits)
}

func isInteger(n float64) bool {
	return isFinite(n) && math.Trunc(n) == n
}

// isFraction is true for NaN-free values with a fractional part; the
// infinities also pass here and are excluded by isFinite.
func isFraction(n float64) bool {
	return !math.IsNaN(n) && math.Mod(n, 1) != 0
}

func isFinite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}
