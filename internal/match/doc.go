// Package match provides identifier normalization, Levenshtein distance and
// the "did you mean" ranking used across the generator, plus go/types based
// signature checks for custom-mode render and parse functions.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes rune-wise edit distance between strings
//   - RankCandidates / Suggest: ranks known names against a misspelled one
//   - ScoreSignature: checks a function against an expected signature
package match
