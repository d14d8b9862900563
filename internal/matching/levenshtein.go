package matching

// LevenshteinDistance returns the minimum number of single-rune insertions,
// deletions, and substitutions required to transform a into b. It is the
// generic string primitive behind CalculateSimilarity and carries no
// address-specific logic.
//
// Uses the iterative two-row formulation of the standard dynamic program:
// O(len(a)*len(b)) time, O(min-row) space, identical results to the full
// matrix.
func LevenshteinDistance(a, b string) int {
	if a == b {
		return 0
	}

	// Runes, not bytes, so multi-byte characters count as single edits.
	s, t := []rune(a), []rune(b)
	if len(s) == 0 {
		return len(t)
	}
	if len(t) == 0 {
		return len(s)
	}

	prev := make([]int, len(t)+1)
	curr := make([]int, len(t)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 0; i < len(s); i++ {
		curr[0] = i + 1
		for j := 0; j < len(t); j++ {
			deletion := prev[j+1] + 1
			insertion := curr[j] + 1
			substitution := prev[j]
			if s[i] != t[j] {
				substitution++
			}
			curr[j+1] = min(deletion, insertion, substitution)
		}
		prev, curr = curr, prev
	}

	return prev[len(t)]
}
