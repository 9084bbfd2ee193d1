package decimalinput

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected float64
	}{
		{input: "", expected: 0},
		{input: "   ", expected: 0},
		{input: "0", expected: 0},
		{input: "0.", expected: 0},
		{input: ".5", expected: 0.5},
		{input: "-.5", expected: -0.5},
		{input: "+1", expected: 1},
		{input: " 1.25 ", expected: 1.25},
		{input: "-0.01", expected: -0.01},
		{input: "007", expected: 7},
		{input: "11111.01", expected: 11111.01},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, number(tt.input))
		})
	}
}

func TestNumberNaN(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		".", "-", "+", "-.", "$1", "1.1.1", "1e5", "1E-2", "0x10", "Infinity", "NaN",
		"inf", "1_000", "1 2", "1,5", "--1",
	} {
		assert.True(t, math.IsNaN(number(input)), "input: %q", input)
	}
}

func TestNumberOverflow(t *testing.T) {
	t.Parallel()

	assert.True(t, math.IsInf(number("1"+strings.Repeat("0", 400)), 1))
	assert.True(t, math.IsInf(number("-1"+strings.Repeat("0", 400)), -1))
}

func TestIsFraction(t *testing.T) {
	t.Parallel()

	assert.True(t, isFraction(0.5))
	assert.False(t, isFraction(2))
	assert.False(t, isFraction(math.NaN()))
	assert.True(t, isFraction(math.Inf(1)), "infinities are excluded by isFinite, not here")
	assert.False(t, isInteger(math.Inf(1)))
}
