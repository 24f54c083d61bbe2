package match

import (
	"sort"
)

// Candidate is a known name scored against an unknown one.
type Candidate struct {
	Name string

	// Score is the normalized Levenshtein similarity (0-1), the better of the
	// plain and the suffix-stripped comparison.
	Score float64

	// Metadata for debugging/explanation
	Normalized string
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankCandidates scores every known name against target.
// Returns candidates sorted by score (descending).
func RankCandidates(target string, names []string) CandidateList {
	candidates := make(CandidateList, 0, len(names))

	for _, name := range names {
		score := Similarity(name, target)

		candidates = append(candidates, Candidate{
			Name:       name,
			Score:      score,
			Normalized: Fold(name),
		})
	}

	// Sort by score (descending), then by name for determinism
	sort.Sort(candidates)

	return candidates
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}
	return c[:n]
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}
	return &c[0]
}

// AboveThreshold returns candidates with a score at or above the threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList
	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}
	return result
}

// Names returns the candidate names in rank order.
func (c CandidateList) Names() []string {
	names := make([]string, 0, len(c))
	for _, cand := range c {
		names = append(names, cand.Name)
	}
	return names
}

// DefaultSuggestThreshold is the minimum score for a name to be suggested.
const DefaultSuggestThreshold = 0.6

// Suggest returns at most limit known names that are close to target.
func Suggest(target string, names []string, limit int) []string {
	return RankCandidates(target, names).AboveThreshold(DefaultSuggestThreshold).Top(limit).Names()
}
