package similarity

import "strings"

// DefaultThreshold is the score at or above which FuzzyMatch accepts
// two strings as referring to the same thing.
const DefaultThreshold = 0.5

// Similarity returns a score in [0,1] based on normalized Levenshtein
// distance over the upper-cased inputs. Equal strings score 1, as do
// two empty strings.
func Similarity(a, b string) float64 {
	a = strings.ToUpper(a)
	b = strings.ToUpper(b)

	if a == b {
		return 1
	}

	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 1
	}

	return 1 - float64(levenshtein(a, b))/float64(maxLen)
}

// FuzzyMatch reports whether input and target refer to the same name:
// exact match, case-insensitive containment either way (after trimming),
// or Similarity at or above threshold.
func FuzzyMatch(input, target string, threshold float64) bool {
	if input == target {
		return true
	}

	in := strings.ToUpper(strings.TrimSpace(input))
	tg := strings.ToUpper(strings.TrimSpace(target))

	if in == tg {
		return true
	}
	if in != "" && tg != "" && (strings.Contains(in, tg) || strings.Contains(tg, in)) {
		return true
	}

	return Similarity(input, target) >= threshold
}

// levenshtein computes edit distance with a two-row matrix.
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			curr[j] = min3(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
