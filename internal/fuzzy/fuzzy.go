// Package fuzzy grades free-text responses with approximate matching.
package fuzzy

import "strings"

// Matcher compares user responses against expected answers, tolerating
// small typos.
type Matcher struct {
	threshold float64 // similarity threshold (0.0 - 1.0)
}

// NewMatcher creates a Matcher requiring 80% similarity.
func NewMatcher() *Matcher {
	return &Matcher{threshold: 0.8}
}

// Match reports whether response is close enough to answer. Both sides are
// lowercased, trimmed, and whitespace-collapsed before comparison; anything
// at or above the similarity threshold passes.
func (m *Matcher) Match(response, answer string) bool {
	got := normalize(response)
	want := normalize(answer)

	if got == want {
		return true
	}

	return similarity(got, want) >= m.threshold
}

// normalize lowercases, trims, and collapses inner whitespace.
func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), " ")
}

// similarity is 1 minus the normalized Levenshtein distance, computed over
// runes so a multibyte character counts as one edit.
func similarity(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)

	maxLen := max(len(ra), len(rb))
	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(levenshtein(ra, rb))/float64(maxLen)
}

// levenshtein computes the edit distance with a two-row table.
func levenshtein(a, b []rune) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(
				curr[j-1]+1,    // insertion
				prev[j]+1,      // deletion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
