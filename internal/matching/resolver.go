package matching

import (
	"sort"
	"strings"
)

// Default thresholds for match resolution.
const (
	// DefaultMinSimilarity is the minimum score a candidate needs to be
	// considered a match at all.
	DefaultMinSimilarity = 0.7
	// DefaultMatchLimit bounds FindMatches result lists.
	DefaultMatchLimit = 5
	// DefaultSimilarThreshold is the bar for the AreAddressesSimilar
	// predicate.
	DefaultSimilarThreshold = 0.85
)

// CandidateAddress is a homeowner record reduced to what the resolver needs.
// Callers map storage rows into this shape before invoking the engine.
type CandidateAddress struct {
	ID      string
	Name    string
	Address string
}

// MatchResult pairs a candidate with its similarity to the query address.
type MatchResult struct {
	Candidate  CandidateAddress
	Similarity float64
}

// MatchOptions configures a single resolution call. There is no global or
// persisted matching configuration; every call carries its own thresholds.
type MatchOptions struct {
	MinSimilarity float64
	Limit         int
}

// DefaultOptions returns the standard thresholds for claim intake.
func DefaultOptions() MatchOptions {
	return MatchOptions{
		MinSimilarity: DefaultMinSimilarity,
		Limit:         DefaultMatchLimit,
	}
}

// FindBestMatch scores every candidate against the query address and returns
// the highest-scoring one, or nil when the query is blank or no candidate
// reaches opts.MinSimilarity. Candidates without an address are skipped.
//
// Ties go to the first candidate in input order (the scan only replaces the
// current best on a strictly greater score), so exact-match duplicates
// resolve deterministically.
func FindBestMatch(candidates []CandidateAddress, query string, opts MatchOptions) *MatchResult {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	var best *MatchResult
	for _, candidate := range candidates {
		if strings.TrimSpace(candidate.Address) == "" {
			continue
		}
		similarity := CalculateSimilarity(query, candidate.Address)
		if best == nil || similarity > best.Similarity {
			best = &MatchResult{Candidate: candidate, Similarity: similarity}
		}
	}

	if best == nil || best.Similarity < opts.MinSimilarity {
		return nil
	}
	return best
}

// FindMatches returns every candidate scoring at or above opts.MinSimilarity,
// ordered by descending similarity and truncated to opts.Limit (falling back
// to DefaultMatchLimit when the limit is zero or negative). The sort is
// stable, so equal scores keep their input order.
func FindMatches(candidates []CandidateAddress, query string, opts MatchOptions) []MatchResult {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultMatchLimit
	}

	var results []MatchResult
	for _, candidate := range candidates {
		if strings.TrimSpace(candidate.Address) == "" {
			continue
		}
		similarity := CalculateSimilarity(query, candidate.Address)
		if similarity >= opts.MinSimilarity {
			results = append(results, MatchResult{Candidate: candidate, Similarity: similarity})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// AreAddressesSimilar reports whether two raw addresses score at or above the
// given threshold. A non-positive threshold falls back to
// DefaultSimilarThreshold.
func AreAddressesSimilar(a, b string, threshold float64) bool {
	if threshold <= 0 {
		threshold = DefaultSimilarThreshold
	}
	return CalculateSimilarity(a, b) >= threshold
}

// MatchQuality maps a similarity score to a reviewer-facing label. Bands are
// inclusive at their lower edge: exactly 0.95 is still "Excellent match".
func MatchQuality(similarity float64) string {
	switch {
	case similarity >= 0.95:
		return "Excellent match"
	case similarity >= 0.85:
		return "Very good match"
	case similarity >= 0.70:
		return "Good match"
	case similarity >= 0.50:
		return "Fair match"
	default:
		return "Weak match"
	}
}
