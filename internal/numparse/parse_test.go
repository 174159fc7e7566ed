package numparse

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"plain integer", "42", 42},
		{"decimal comma", "16,5", 16.5},
		{"thousands separator", "1.234,56", 1234.56},
		{"multiple thousands groups", "1.234.567,89", 1234567.89},
		{"percent suffix", "12,34%", 12.34},
		{"currency prefix", "R$ 10,00", 10},
		{"currency and percent", "R$1.500,00", 1500},
		{"negative", "-5,5", -5.5},
		{"negative percent", "-16,67%", -16.67},
		{"unicode minus", "−5%", -5},
		{"surrounding whitespace", "  7,1  ", 7.1},
		{"dollar prefix", "$3,25", 3.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Parse(tt.input), 1e-9)
		})
	}
}

func TestParseMissing(t *testing.T) {
	inputs := []string{"", "   ", "-", "n/a", "abc", "R$", "%", "12,3,4x"}

	for _, input := range inputs {
		got := Parse(input)
		assert.True(t, math.IsInf(got, -1), "Parse(%q) = %v, want -Inf", input, got)
	}
}

func TestParseNeverNaN(t *testing.T) {
	// "nan" would survive strconv.ParseFloat; it must not escape.
	got := Parse("NaN")
	assert.False(t, math.IsNaN(got))
	assert.True(t, math.IsInf(got, -1))
}

func TestParseAscending(t *testing.T) {
	// Identical to Parse on concrete values.
	assert.Equal(t, Parse("1.234,5"), ParseAscending("1.234,5"))

	// Missing remaps to +Inf, and only missing.
	assert.True(t, math.IsInf(ParseAscending(""), 1))
	assert.True(t, math.IsInf(ParseAscending("n/a"), 1))
	assert.Equal(t, -5.0, ParseAscending("-5"))
}

func TestIsMissing(t *testing.T) {
	assert.True(t, IsMissing(math.Inf(-1)))
	assert.True(t, IsMissing(math.Inf(1)))
	assert.False(t, IsMissing(0))
	assert.False(t, IsMissing(-16.67))
}
