package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateSimilarityIdentity(t *testing.T) {
	assert.InDelta(t, 1.0, CalculateSimilarity("742 Evergreen Terrace", "742 Evergreen Terrace"), 0.0001)
	assert.InDelta(t, 1.0, CalculateSimilarity("", ""), 0.0001)
}

func TestCalculateSimilarityDegenerateInputs(t *testing.T) {
	// One empty side scores zero no matter what the other side says.
	assert.InDelta(t, 0.0, CalculateSimilarity("", "123 Main St"), 0.0001)
	assert.InDelta(t, 0.0, CalculateSimilarity("123 Main St", ""), 0.0001)
	// Punctuation-only input normalizes to empty.
	assert.InDelta(t, 0.0, CalculateSimilarity(".,.", "123 Main St"), 0.0001)
	assert.InDelta(t, 1.0, CalculateSimilarity(".,.", "  "), 0.0001)
}

func TestCalculateSimilarityEquivalentForms(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
	}{
		{
			name: "street type expansion",
			a:    "123 Main Street",
			b:    "123 Main St",
		},
		{
			name: "directional expansion",
			a:    "123 North Main St",
			b:    "123 N Main Street",
		},
		{
			name: "punctuation and case",
			a:    "123 MAIN ST.",
			b:    "123 main st",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, 1.0, CalculateSimilarity(tt.a, tt.b), 0.0001)
		})
	}
}

func TestCalculateSimilarityNearMatches(t *testing.T) {
	// Spec-level expectations for realistic transcription noise.
	assert.Greater(t, CalculateSimilarity("123 Main Street", "123 Main St"), 0.95)
	assert.Greater(t, CalculateSimilarity("123 North Main St", "123 North Main Street"), 0.9)

	// One wrong digit in the street number.
	sim := CalculateSimilarity("123 Main St", "124 Main St")
	assert.Greater(t, sim, 0.85)
	assert.Less(t, sim, 1.0)

	// Unrelated addresses score low.
	assert.Less(t, CalculateSimilarity("123 Main St", "456 Oak Ave"), 0.5)
}

func TestCalculateSimilaritySymmetric(t *testing.T) {
	pairs := [][2]string{
		{"123 Main Street", "123 Main St"},
		{"123 Main St", "456 Oak Ave"},
		{"", "123 Main St"},
		{"742 Evergreen Ter", "742 Evergreen Terrace"},
	}

	for _, pair := range pairs {
		assert.InDelta(t,
			CalculateSimilarity(pair[0], pair[1]),
			CalculateSimilarity(pair[1], pair[0]),
			0.0001,
			"similarity(%q,%q) should be symmetric", pair[0], pair[1])
	}
}

func TestCalculateSimilarityBounded(t *testing.T) {
	pairs := [][2]string{
		{"a", "zzzzzzzzzzzzzzzzzzzz"},
		{"123 Main St", "completely unrelated text with many words"},
		{"x", "y"},
	}

	for _, pair := range pairs {
		sim := CalculateSimilarity(pair[0], pair[1])
		assert.GreaterOrEqual(t, sim, 0.0)
		assert.LessOrEqual(t, sim, 1.0)
	}
}
