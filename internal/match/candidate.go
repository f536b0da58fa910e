package match

import (
	"sort"
)

// Candidate is a known name scored against a name that did not resolve.
type Candidate struct {
	Name string
	// Score is the normalized Levenshtein similarity (0-1).
	Score float64
	// Normalized is Name after NormalizeIdent.
	Normalized string
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankCandidates scores every known name against name. Returns candidates
// sorted by score (descending).
func RankCandidates(name string, known []string) CandidateList {
	candidates := make(CandidateList, 0, len(known))
	for _, k := range known {
		candidates = append(candidates, Candidate{
			Name:       k,
			Score:      NormalizedLevenshteinScore(name, k),
			Normalized: NormalizeIdent(k),
		})
	}

	sort.Sort(candidates)

	return candidates
}

// Suggest returns the best known name for a misspelled one, or false when
// nothing scores at least DefaultMinScore or the top two are ambiguous.
func Suggest(name string, known []string) (string, bool) {
	best := RankCandidates(name, known).HighConfidence(DefaultMinScore, DefaultMinGap)
	if best == nil {
		return "", false
	}

	return best.Name, true
}

// SuggestAll returns the clear winner when there is one, and otherwise up to
// n names scoring at least DefaultMinScore, best first.
func SuggestAll(name string, known []string, n int) []string {
	ranked := RankCandidates(name, known)
	if best := ranked.HighConfidence(DefaultMinScore, DefaultMinGap); best != nil {
		return []string{best.Name}
	}

	return ranked.AboveThreshold(DefaultMinScore).Top(n).Names()
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by name for determinism.
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

// Names returns the candidate names in ranking order.
func (c CandidateList) Names() []string {
	names := make([]string, 0, len(c))
	for _, cand := range c {
		names = append(names, cand.Name)
	}

	return names
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

// HighConfidence returns the best candidate if it's significantly better than alternatives.
// Returns nil if no clear winner exists.
func (c CandidateList) HighConfidence(minScore, minGap float64) *Candidate {
	if len(c) == 0 {
		return nil
	}

	best := &c[0]
	if best.Score < minScore {
		return nil
	}

	if len(c) > 1 && best.Score-c[1].Score < minGap {
		return nil
	}

	return best
}

// Confidence thresholds for suggestions.
const (
	// DefaultMinScore is the minimum score for a suggestion.
	DefaultMinScore = 0.6
	// DefaultMinGap is the minimum score gap between the top two candidates.
	DefaultMinGap = 0.1
)
