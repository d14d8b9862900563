// Package matching implements the address resolution engine that links
// free-text property addresses (usually transcribed from inbound calls) to
// stored homeowner records. All functions are pure and safe for concurrent
// use; nothing in this package caches or performs I/O.
package matching

import (
	"regexp"
	"sort"
	"strings"
)

// streetTypes maps full street-type words to their USPS-style abbreviations.
// Abbreviations already present in an address are left untouched, which keeps
// normalization idempotent.
var streetTypes = map[string]string{
	"street":    "st",
	"avenue":    "ave",
	"road":      "rd",
	"drive":     "dr",
	"court":     "ct",
	"lane":      "ln",
	"boulevard": "blvd",
	"place":     "pl",
	"circle":    "cir",
	"terrace":   "ter",
	"parkway":   "pkwy",
	"highway":   "hwy",
}

// directionals maps compass words to their single/double letter forms.
// Matched as whole words only so "north" inside "northgate" is untouched.
var directionals = map[string]string{
	"north":     "n",
	"south":     "s",
	"east":      "e",
	"west":      "w",
	"northeast": "ne",
	"northwest": "nw",
	"southeast": "se",
	"southwest": "sw",
}

var (
	mutePunctRegex     = regexp.MustCompile(`[.,]`)
	whitespaceRegex    = regexp.MustCompile(`\s+`)
	leadingDigitsRegex = regexp.MustCompile(`^\d+`)
	streetNumberRegex  = regexp.MustCompile(`^\d+\s*`)
)

type abbrevRule struct {
	pattern *regexp.Regexp
	abbrev  string
}

var abbrevRules = compileAbbrevRules(streetTypes, directionals)

// compileAbbrevRules turns the substitution tables into word-boundary regexp
// rules. Keys are sorted so the rule order is deterministic; the tables have
// no overlapping whole-word keys, so order does not affect results.
func compileAbbrevRules(tables ...map[string]string) []abbrevRule {
	var rules []abbrevRule
	for _, table := range tables {
		words := make([]string, 0, len(table))
		for word := range table {
			words = append(words, word)
		}
		sort.Strings(words)
		for _, word := range words {
			rules = append(rules, abbrevRule{
				pattern: regexp.MustCompile(`\b` + word + `\b`),
				abbrev:  table[word],
			})
		}
	}
	return rules
}

// NormalizeAddress canonicalizes a raw address string for comparison:
// lowercase, whitespace collapsed, commas and periods stripped, unit markers
// like "#5" reduced to a bare "5", and street-type/directional words folded
// to their abbreviations. Cleanup happens before the whole-word substitutions
// so trailing punctuation cannot defeat the word-boundary match. The result
// is a fixed point: NormalizeAddress(NormalizeAddress(x)) == NormalizeAddress(x).
func NormalizeAddress(address string) string {
	if address == "" {
		return ""
	}

	s := strings.ToLower(address)
	s = mutePunctRegex.ReplaceAllString(s, "")
	// A unit marker separates the unit number from whatever precedes it.
	s = strings.ReplaceAll(s, "#", " ")
	s = whitespaceRegex.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)

	for _, rule := range abbrevRules {
		s = rule.pattern.ReplaceAllString(s, rule.abbrev)
	}

	return s
}

// ExtractStreetNumber returns the leading run of digits of the raw address.
// The second return value is false when the address does not start with a
// digit (no trimming is applied first).
func ExtractStreetNumber(address string) (string, bool) {
	number := leadingDigitsRegex.FindString(address)
	if number == "" {
		return "", false
	}
	return number, true
}

// ExtractStreetName returns the normalized address with the leading street
// number removed.
func ExtractStreetName(address string) string {
	return streetNumberRegex.ReplaceAllString(NormalizeAddress(address), "")
}
