// internal/matching/skills_test.go
package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ==========================
// SKILL MATCHING
// ==========================

func TestMatchSkills(t *testing.T) {
	synonyms := DefaultSynonyms()

	tests := []struct {
		name             string
		skills           []string
		requirements     []string
		expectedCoverage float64
		expectedMatched  []string
		expectedMissing  []string
	}{
		{
			name:             "exact match after normalization",
			skills:           []string{"Python", "SQL"},
			requirements:     []string{"python", "sql"},
			expectedCoverage: 1.0,
			expectedMatched:  []string{"python", "sql"},
			expectedMissing:  []string{},
		},
		{
			name:             "substring match in either direction",
			skills:           []string{"python programming"},
			requirements:     []string{"Python", "Go"},
			expectedCoverage: 0.5,
			expectedMatched:  []string{"Python"},
			expectedMissing:  []string{"Go"},
		},
		{
			name:             "synonym group match",
			skills:           []string{"ML"},
			requirements:     []string{"Artificial Intelligence"},
			expectedCoverage: 1.0,
			expectedMatched:  []string{"Artificial Intelligence"},
			expectedMissing:  []string{},
		},
		{
			name:             "empty requirements count as full coverage",
			skills:           []string{"python"},
			requirements:     []string{},
			expectedCoverage: 1.0,
			expectedMatched:  []string{},
			expectedMissing:  []string{},
		},
		{
			name:             "no skills at all",
			skills:           []string{},
			requirements:     []string{"Kubernetes"},
			expectedCoverage: 0.0,
			expectedMatched:  []string{},
			expectedMissing:  []string{"Kubernetes"},
		},
		{
			name:             "matched and missing keep original phrasing",
			skills:           []string{"docker"},
			requirements:     []string{"Docker Containers", "Rust"},
			expectedCoverage: 0.5,
			expectedMatched:  []string{"Docker Containers"},
			expectedMissing:  []string{"Rust"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MatchSkills(tt.skills, tt.requirements, synonyms)

			assert.InDelta(t, tt.expectedCoverage, result.Coverage, 0.0001)
			assert.Equal(t, tt.expectedMatched, result.Matched)
			assert.Equal(t, tt.expectedMissing, result.Missing)
		})
	}
}

func TestMatchSkillsPartition(t *testing.T) {
	result := MatchSkills(
		[]string{"python", "aws"},
		[]string{"Python", "Terraform", "Amazon Web Services", "Rust"},
		DefaultSynonyms(),
	)

	// Matched and missing together cover every requirement exactly once.
	assert.Len(t, result.Matched, 2)
	assert.Len(t, result.Missing, 2)
	assert.Equal(t, []string{"Python", "Amazon Web Services"}, result.Matched)
	assert.Equal(t, []string{"Terraform", "Rust"}, result.Missing)
}
