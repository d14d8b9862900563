package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAddress(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "lowercases",
			input:    "123 MAIN ST",
			expected: "123 main st",
		},
		{
			name:     "trims and collapses whitespace",
			input:    "  123   Main \t St  ",
			expected: "123 main st",
		},
		{
			name:     "strips commas and periods",
			input:    "123 Main St., Springfield",
			expected: "123 main st springfield",
		},
		{
			name:     "unit marker becomes bare number",
			input:    "123 Main St #5",
			expected: "123 main st 5",
		},
		{
			name:     "unit marker without preceding space",
			input:    "123 Main St Apt.#5",
			expected: "123 main st apt 5",
		},
		{
			name:     "street type abbreviation",
			input:    "123 Main Street",
			expected: "123 main st",
		},
		{
			name:     "multiple street types",
			input:    "100 Boulevard Avenue",
			expected: "100 blvd ave",
		},
		{
			name:     "directional abbreviation",
			input:    "123 North Main Street",
			expected: "123 n main st",
		},
		{
			name:     "compound directional",
			input:    "55 Southwest Oak Drive",
			expected: "55 sw oak dr",
		},
		{
			name:     "directional not matched inside words",
			input:    "1 Northgate Dr",
			expected: "1 northgate dr",
		},
		{
			name:     "abbreviations already present are untouched",
			input:    "123 n main st",
			expected: "123 n main st",
		},
		{
			name:     "trailing punctuation does not defeat whole-word match",
			input:    "123 Main Street.",
			expected: "123 main st",
		},
		{
			name:     "punctuation only",
			input:    ".,.",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeAddress(tt.input))
		})
	}
}

func TestNormalizeAddressIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"123 Main Street",
		"123 North Main Street, Apt. #5",
		"  55 Southwest Oak Drive  ",
		"742 Evergreen Terrace",
		"100 Boulevard Avenue",
		"1 Northgate Dr",
	}

	for _, input := range inputs {
		once := NormalizeAddress(input)
		assert.Equal(t, once, NormalizeAddress(once), "input %q", input)
	}
}

func TestExtractStreetNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{
			name:     "leading digits",
			input:    "123 Main St",
			expected: "123",
			ok:       true,
		},
		{
			name:     "long number",
			input:    "10250 W Sunset Blvd",
			expected: "10250",
			ok:       true,
		},
		{
			name:  "no leading digits",
			input: "Main St",
		},
		{
			name:  "leading whitespace is not trimmed",
			input: " 123 Main St",
		},
		{
			name:  "empty string",
			input: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			number, ok := ExtractStreetNumber(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, number)
		})
	}
}

func TestExtractStreetName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "strips leading number",
			input:    "123 Main Street",
			expected: "main st",
		},
		{
			name:     "no leading number",
			input:    "Main Street",
			expected: "main st",
		},
		{
			name:     "already abbreviated",
			input:    "456 Oak Ave",
			expected: "oak ave",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractStreetName(tt.input))
		})
	}
}
