package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected int
	}{
		{
			name:     "identical strings",
			a:        "hello",
			b:        "hello",
			expected: 0,
		},
		{
			name:     "single substitution",
			a:        "hello",
			b:        "hallo",
			expected: 1,
		},
		{
			name:     "empty to non-empty",
			a:        "",
			b:        "hello",
			expected: 5,
		},
		{
			name:     "non-empty to empty",
			a:        "hello",
			b:        "",
			expected: 5,
		},
		{
			name:     "both empty",
			a:        "",
			b:        "",
			expected: 0,
		},
		{
			name:     "classic kitten sitting",
			a:        "kitten",
			b:        "sitting",
			expected: 3,
		},
		{
			name:     "insertion at end",
			a:        "main st",
			b:        "main str",
			expected: 1,
		},
		{
			name:     "multi-byte runes count as single edits",
			a:        "café",
			b:        "cafe",
			expected: 1,
		},
		{
			name:     "completely different",
			a:        "abc",
			b:        "xyz",
			expected: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LevenshteinDistance(tt.a, tt.b))
		})
	}
}

func TestLevenshteinDistanceSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"123 main st", "123 main street"},
		{"", "hello"},
		{"café", "coffee"},
	}

	for _, pair := range pairs {
		assert.Equal(t,
			LevenshteinDistance(pair[0], pair[1]),
			LevenshteinDistance(pair[1], pair[0]),
			"distance(%q,%q) should be symmetric", pair[0], pair[1])
	}
}
