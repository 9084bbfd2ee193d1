package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/didley/decimal-input/pkg/validator"
)

func TestMinNum(t *testing.T) {
	t.Parallel()

	t.Run("passes when value equals minimum", func(t *testing.T) {
		rule := validator.MinNum("amount", 0.0, 0.0)
		assert.True(t, rule.Check())
		assert.Equal(t, "amount", rule.Error.Field)
		assert.Equal(t, "must be at least 0", rule.Error.Message)
		assert.Equal(t, "validation.min", rule.Error.TranslationKey)
		assert.Equal(t, map[string]any{"field": "amount", "min": 0.0}, rule.Error.TranslationValues)
	})

	t.Run("fails below minimum", func(t *testing.T) {
		rule := validator.MinNum("amount", -0.01, 0.0)
		assert.False(t, rule.Check())
	})

	t.Run("formats fractional minimum", func(t *testing.T) {
		rule := validator.MinNum("amount", 80.0, 85.5)
		assert.False(t, rule.Check())
		assert.Equal(t, "must be at least 85.5", rule.Error.Message)
	})

	t.Run("works with integers", func(t *testing.T) {
		assert.True(t, validator.MinNum("count", 3, 1).Check())
		assert.False(t, validator.MinNum("count", uint8(0), uint8(1)).Check())
	})
}

func TestMaxNum(t *testing.T) {
	t.Parallel()

	t.Run("passes when value equals maximum", func(t *testing.T) {
		rule := validator.MaxNum("amount", 10.0, 10.0)
		assert.True(t, rule.Check())
		assert.Equal(t, "must be at most 10", rule.Error.Message)
		assert.Equal(t, "validation.max", rule.Error.TranslationKey)
	})

	t.Run("fails above maximum", func(t *testing.T) {
		assert.False(t, validator.MaxNum("amount", 11.0, 10.0).Check())
	})

	t.Run("works with float32", func(t *testing.T) {
		assert.True(t, validator.MaxNum("ratio", float32(0.5), float32(1)).Check())
	})
}
