package match

import "unicode/utf8"

// Levenshtein computes the edit distance between two strings, counted in runes:
// the minimum number of insertions, deletions or substitutions that turn one
// string into the other.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}

	if len(rb) == 0 {
		return len(ra)
	}

	// Ensure ra is the shorter one for space optimization
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	// Two rows instead of the full matrix
	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// LevenshteinNormalized computes a normalized similarity score between 0 and 1.
// 1.0 means identical strings, 0.0 means completely different.
// The score is: 1 - (distance / longest rune count).
func LevenshteinNormalized(a, b string) float64 {
	maxLen := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if maxLen == 0 {
		return 1.0
	}

	distance := Levenshtein(a, b)

	return 1.0 - float64(distance)/float64(maxLen)
}

// Similarity scores two names after folding them, taking the better of the
// plain comparison and the one without qualifier suffixes.
func Similarity(a, b string) float64 {
	return max(
		LevenshteinNormalized(Fold(a), Fold(b)),
		LevenshteinNormalized(FoldStripped(a), FoldStripped(b)),
	)
}
