// Package match provides name normalization, Levenshtein distance calculation
// and candidate ranking used for "did you mean" suggestions when configuration
// names a field or type that does not exist.
//
// Key functions:
//   - Fold: reduces field, element and type names to comparable words
//   - Levenshtein: computes edit distance between strings
//   - RankCandidates: ranks known names against an unknown one
//   - Suggest: returns the closest known names
package match
