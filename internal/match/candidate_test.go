package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankCandidates(t *testing.T) {
	known := []string{"Grass", "Fire", "Water", "fire_type"}

	candidates := RankCandidates("FireType", known)
	if len(candidates) != 4 {
		t.Fatalf("Expected 4 candidates, got %d", len(candidates))
	}

	// Same name after normalization
	if candidates[0].Name != "fire_type" {
		t.Errorf("Expected best match to be 'fire_type', got '%s'", candidates[0].Name)
	}

	if candidates[0].Score != 1.0 {
		t.Errorf("Expected score 1.0 for normalized match, got %f", candidates[0].Score)
	}

	if candidates[1].Name != "Fire" {
		t.Errorf("Expected second match to be 'Fire', got '%s'", candidates[1].Name)
	}
}

func TestCandidateList_Sorting(t *testing.T) {
	candidates := RankCandidates("zzz", []string{"b", "a", "c"})

	// All tie at 0, so ordering falls back to name
	assert.Equal(t, []string{"a", "b", "c"}, candidates.Names())
}

func TestCandidateList_TopAndThreshold(t *testing.T) {
	candidates := CandidateList{
		{Name: "A", Score: 0.9},
		{Name: "B", Score: 0.7},
		{Name: "C", Score: 0.2},
	}

	assert.Len(t, candidates.Top(2), 2)
	assert.Len(t, candidates.Top(10), 3)
	assert.Equal(t, []string{"A", "B"}, candidates.AboveThreshold(0.7).Names())
	assert.Empty(t, candidates.AboveThreshold(0.95))
}

func TestCandidateList_HighConfidence(t *testing.T) {
	assert.Nil(t, CandidateList{}.HighConfidence(DefaultMinScore, DefaultMinGap))

	clear := CandidateList{{Name: "A", Score: 0.9}, {Name: "B", Score: 0.5}}
	best := clear.HighConfidence(DefaultMinScore, DefaultMinGap)
	if assert.NotNil(t, best) {
		assert.Equal(t, "A", best.Name)
	}

	tied := CandidateList{{Name: "A", Score: 0.9}, {Name: "B", Score: 0.85}}
	assert.Nil(t, tied.HighConfidence(DefaultMinScore, DefaultMinGap))

	low := CandidateList{{Name: "A", Score: 0.4}}
	assert.Nil(t, low.HighConfidence(DefaultMinScore, DefaultMinGap))
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		name   string
		known  []string
		want   string
		wantOK bool
	}{
		{"Fyre", []string{"Grass", "Fire", "Water"}, "Fire", true},
		{"strng", []string{"string", "alias"}, "string", true},
		{"alias", []string{"string", "alias"}, "alias", true},
		{"Xyz", []string{"Grass", "Fire", "Water"}, "", false},
		{"abc", []string{"abd", "abe"}, "", false},
		{"Fire", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Suggest(tt.name, tt.known)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSuggestAll(t *testing.T) {
	tests := []struct {
		name  string
		known []string
		want  []string
	}{
		{"Fyre", []string{"Grass", "Fire", "Water"}, []string{"Fire"}},
		{"abc", []string{"abe", "abd", "xyz"}, []string{"abd", "abe"}},
		{"abcd", []string{"abce", "abcf", "abcg", "abch"}, []string{"abce", "abcf", "abcg"}},
		{"Xyz", []string{"Grass", "Fire", "Water"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SuggestAll(tt.name, tt.known, 3))
		})
	}
}
