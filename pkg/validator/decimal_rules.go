package validator

import (
	"fmt"
	"math"
	"strings"
)

// Finite validates that value is neither NaN nor an infinity.
func Finite(field string, value float64) Rule {
	return Rule{
		Check: func() bool {
			return !math.IsNaN(value) && !math.IsInf(value, 0)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a finite number",
			TranslationKey: "validation.finite",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MaxFractionDigits validates that the text after the first decimal point
// in value is at most limit characters long. Trailing zeros count.
func MaxFractionDigits(field, value string, limit int) Rule {
	return Rule{
		Check: func() bool {
			_, fraction, ok := strings.Cut(value, ".")
			return !ok || len(fraction) <= limit
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must have at most %d digits after the decimal point", limit),
			TranslationKey: "validation.decimal_digits",
			TranslationValues: map[string]any{
				"field":  field,
				"digits": limit,
			},
		},
	}
}

// DecimalFormat wraps a shape check for a decimal string. The check is
// supplied by the caller so the rule stays independent of any one parser.
func DecimalFormat(field, value string, valid func(string) bool) Rule {
	return Rule{
		Check: func() bool {
			return valid(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a decimal number",
			TranslationKey: "validation.decimal_format",
			TranslationValues: map[string]any{
				"field": field,
				"value": value,
			},
		},
	}
}
