package decimalinput_test

import (
	"strings"
	"testing"

	decimalinput "github.com/didley/decimal-input"
)

func BenchmarkNormalize(b *testing.B) {
	inputs := []struct {
		name  string
		input string
	}{
		{name: "canonical", input: "1234.56"},
		{name: "leading zeros", input: "  0007.50 "},
		{name: "leading point", input: ".25"},
		{name: "exposed whitespace", input: "0 5"},
		{name: "long zero run", input: strings.Repeat("0", 256) + "1"},
	}

	for _, in := range inputs {
		b.Run(in.name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = decimalinput.Normalize(in.input)
			}
		})
	}
}

func BenchmarkParse(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_ = decimalinput.Parse(" 0012.50", decimalinput.WithDigits(2), decimalinput.WithRange(0, 100))
	}
}
