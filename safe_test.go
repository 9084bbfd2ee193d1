package decimalinput_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	decimalinput "github.com/didley/decimal-input"
)

func TestIsSafeDecimal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		value  float64
		digits []int
		want   bool
	}{
		{name: "zero", value: 0, want: true},
		{name: "integer", value: 42, want: true},
		{name: "negative fraction", value: -0.01, want: true},
		{name: "max float", value: math.MaxFloat64, want: true},
		{name: "smallest denormal", value: math.SmallestNonzeroFloat64, want: true},
		{name: "NaN", value: math.NaN(), want: false},
		{name: "positive infinity", value: math.Inf(1), want: false},
		{name: "negative infinity", value: math.Inf(-1), want: false},
		{name: "within digit limit", value: 1.11, digits: []int{2}, want: true},
		{name: "beyond digit limit", value: 1.111, digits: []int{2}, want: false},
		{name: "integer with zero limit", value: 3, digits: []int{0}, want: true},
		{name: "NaN with digit limit", value: math.NaN(), digits: []int{2}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, decimalinput.IsSafeDecimal(tt.value, tt.digits...))
		})
	}
}

func TestNewSafeDecimal(t *testing.T) {
	t.Parallel()

	d, ok := decimalinput.NewSafeDecimal(12.5, 1)
	require.True(t, ok)
	assert.Equal(t, 12.5, d.Float64())
	assert.Equal(t, "12.5", d.String())

	_, ok = decimalinput.NewSafeDecimal(12.55, 1)
	assert.False(t, ok)

	_, ok = decimalinput.NewSafeDecimal(math.Inf(1))
	assert.False(t, ok)
}

func TestSafeDecimalDecimal(t *testing.T) {
	t.Parallel()

	dec, err := decimalinput.SafeDecimal(0.1).Decimal()
	require.NoError(t, err)
	assert.Equal(t, "0.1", dec.String())

	dec, err = decimalinput.SafeDecimal(-11111.01).Decimal()
	require.NoError(t, err)
	assert.Equal(t, "-11111.01", dec.String())

	_, err = decimalinput.SafeDecimal(1e30).Decimal()
	assert.Error(t, err)
}
