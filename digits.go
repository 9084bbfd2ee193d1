package decimalinput

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Numeric is the set of Go number types accepted by WithinDigits.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// FractionDigits returns the text between the first decimal point of s and
// the next one (or the end of s), and whether s has a decimal point at all.
// For "1.00.5" the fraction is "00".
func FractionDigits(s string) (string, bool) {
	_, rest, ok := strings.Cut(s, ".")
	fraction, _, _ := strings.Cut(rest, ".")
	return fraction, ok
}

// WithinDigits reports whether the textual form of value has at most limit
// characters in its FractionDigits. A nil limit, or a value without
// a decimal point, always passes. The count is textual: "1.100" has three
// fractional digits even though it equals 1.1.
//
// Strings are inspected as-is. Numbers are formatted in base 10 using the
// shortest representation that reads back to the same value, without an
// exponent.
func WithinDigits[T ~string | Numeric](value T, limit *int) bool {
	if limit == nil {
		return true
	}
	fraction, ok := FractionDigits(textOf(value))
	if !ok {
		return true
	}
	return len(fraction) <= *limit
}

func textOf(value any) string {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	default:
		return fmt.Sprint(value)
	}
}
