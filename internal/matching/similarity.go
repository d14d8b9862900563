package matching

// CalculateSimilarity scores how plausibly two raw addresses refer to the
// same property, as a value in [0,1]. Both inputs are normalized internally;
// callers pass raw strings.
//
// Degenerate inputs are resolved explicitly: two addresses that normalize to
// empty are a trivial match of absence (1.0), while exactly one empty side
// scores 0.0 regardless of the other string. Otherwise the score is
// 1 - distance/longestLength, clamped to [0,1]. The function is symmetric and
// returns exactly 1.0 whenever the normalized forms are identical.
func CalculateSimilarity(a, b string) float64 {
	normA := NormalizeAddress(a)
	normB := NormalizeAddress(b)

	if normA == "" && normB == "" {
		return 1.0
	}
	if normA == "" || normB == "" {
		return 0.0
	}

	longest := len([]rune(normA))
	if l := len([]rune(normB)); l > longest {
		longest = l
	}

	similarity := 1.0 - float64(LevenshteinDistance(normA, normB))/float64(longest)
	if similarity < 0 {
		return 0.0
	}
	if similarity > 1 {
		return 1.0
	}
	return similarity
}
