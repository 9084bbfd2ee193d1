package validator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/didley/decimal-input/pkg/validator"
)

func TestFinite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value float64
		want  bool
	}{
		{name: "zero", value: 0, want: true},
		{name: "negative fraction", value: -0.01, want: true},
		{name: "max float", value: math.MaxFloat64, want: true},
		{name: "NaN", value: math.NaN(), want: false},
		{name: "positive infinity", value: math.Inf(1), want: false},
		{name: "negative infinity", value: math.Inf(-1), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rule := validator.Finite("value", tt.value)
			assert.Equal(t, tt.want, rule.Check())
			assert.Equal(t, "validation.finite", rule.Error.TranslationKey)
		})
	}
}

func TestMaxFractionDigits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		limit int
		want  bool
	}{
		{name: "no fraction", value: "100", limit: 0, want: true},
		{name: "lone point", value: "1.", limit: 0, want: true},
		{name: "within limit", value: "1.01", limit: 2, want: true},
		{name: "above limit", value: "1.011", limit: 2, want: false},
		{name: "trailing zeros count", value: "1.100", limit: 2, want: false},
		{name: "only first point splits", value: "1.1.1", limit: 1, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rule := validator.MaxFractionDigits("value", tt.value, tt.limit)
			assert.Equal(t, tt.want, rule.Check())
		})
	}

	rule := validator.MaxFractionDigits("value", "1.011", 2)
	assert.Equal(t, "must have at most 2 digits after the decimal point", rule.Error.Message)
	assert.Equal(t, map[string]any{"field": "value", "digits": 2}, rule.Error.TranslationValues)
}

func TestDecimalFormat(t *testing.T) {
	t.Parallel()

	isDigits := func(s string) bool {
		for _, r := range s {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	}

	assert.True(t, validator.DecimalFormat("value", "123", isDigits).Check())

	rule := validator.DecimalFormat("value", "$1", isDigits)
	assert.False(t, rule.Check())
	assert.Equal(t, "validation.decimal_format", rule.Error.TranslationKey)
	assert.Equal(t, "$1", rule.Error.TranslationValues["value"])
}
