package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/didley/decimal-input/pkg/sanitizer"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		transforms []func(string) string
		expected   string
	}{
		{
			name:       "applies single transform",
			input:      "  1.5  ",
			transforms: []func(string) string{sanitizer.Trim},
			expected:   "1.5",
		},
		{
			name:  "applies multiple transforms in sequence",
			input: "  .5 ",
			transforms: []func(string) string{
				sanitizer.Trim,
				sanitizer.ExpandLeadingPoint,
			},
			expected: "0.5",
		},
		{
			name:  "order matters",
			input: " .5",
			transforms: []func(string) string{
				sanitizer.ExpandLeadingPoint,
				sanitizer.Trim,
			},
			expected: ".5",
		},
		{
			name:       "handles empty transforms slice",
			input:      "007",
			transforms: []func(string) string{},
			expected:   "007",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, sanitizer.Apply(tt.input, tt.transforms...))
		})
	}
}

func TestCompose(t *testing.T) {
	t.Parallel()

	normalize := sanitizer.Compose(
		sanitizer.Trim,
		sanitizer.ExpandLeadingPoint,
		sanitizer.CollapseLeadingZeros,
	)

	t.Run("composed pipeline can be reused", func(t *testing.T) {
		t.Parallel()

		inputs := []string{"  007.5 ", ".5", "00.", "", "-1"}
		expected := []string{"7.5", "0.5", "0.", "", "-1"}

		for i, input := range inputs {
			assert.Equal(t, expected[i], normalize(input), "input: %q", input)
		}
	})

	t.Run("works with non-string types", func(t *testing.T) {
		t.Parallel()

		double := func(n int) int { return n * 2 }
		assert.Equal(t, 8, sanitizer.Compose(double, double)(2))
	})
}
