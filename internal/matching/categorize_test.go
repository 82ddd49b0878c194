// internal/matching/categorize_test.go
package matching

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"jobmatch-workers/internal/models"
)

// ==========================
// CATEGORY ASSIGNMENT
// ==========================

func TestCategorize(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	fresh := now.Add(-2 * 24 * time.Hour)
	old := now.Add(-90 * 24 * time.Hour)
	e := NewEngine(nil)

	tests := []struct {
		name        string
		currentRole string
		skill       SkillMatch
		job         models.JobPosting
		expected    string
	}{
		{
			name:     "majority skill match wins over everything",
			skill:    SkillMatch{Matched: []string{"a", "b"}},
			job:      models.JobPosting{Title: "Senior Engineer", RequiredSkills: []string{"a", "b", "c"}, PostedDate: fresh},
			expected: models.CategorySkillMatch,
		},
		{
			name:     "seniority step up is career growth",
			skill:    SkillMatch{Matched: []string{"a"}},
			job:      models.JobPosting{Title: "Lead Engineer", RequiredSkills: []string{"a", "b", "c"}, PostedDate: old},
			expected: models.CategoryCareerGrowth,
		},
		{
			name:     "career growth beats freshness",
			skill:    SkillMatch{},
			job:      models.JobPosting{Title: "Engineering Manager", RequiredSkills: []string{"a"}, PostedDate: fresh},
			expected: models.CategoryCareerGrowth,
		},
		{
			name:     "recently posted is a new opportunity",
			skill:    SkillMatch{},
			job:      models.JobPosting{Title: "Engineer", RequiredSkills: []string{"a"}, PostedDate: fresh},
			expected: models.CategoryNewOpportunity,
		},
		{
			name:     "default bucket",
			skill:    SkillMatch{},
			job:      models.JobPosting{Title: "Engineer", RequiredSkills: []string{"a"}, PostedDate: old},
			expected: models.CategoryForYou,
		},
		{
			name:     "exactly half the requirements is not a skill match",
			skill:    SkillMatch{Matched: []string{"a"}},
			job:      models.JobPosting{Title: "Engineer", RequiredSkills: []string{"a", "b"}, PostedDate: old},
			expected: models.CategoryForYou,
		},
		{
			name:        "marker already in current role is not growth",
			currentRole: "Senior Software Engineer",
			skill:       SkillMatch{},
			job:         models.JobPosting{Title: "Senior Engineer", RequiredSkills: []string{"a"}, PostedDate: old},
			expected:    models.CategoryForYou,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role := tt.currentRole
			if role == "" {
				role = "Software Engineer"
			}
			cand := models.CandidateProfile{CurrentRole: role}
			assert.Equal(t, tt.expected, e.categorize(tt.skill, &cand, &tt.job, now))
		})
	}
}

// ==========================
// FEED BUILDING
// ==========================

func TestBuildFeedsCapsWithoutBackfill(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Caps = CategoryCaps{ForYou: 3, CareerGrowth: 2, SkillMatch: 2, NewOpportunity: 2}
	e := NewEngine(cfg)

	var ranked []models.MatchResult
	for i := 0; i < 6; i++ {
		ranked = append(ranked, models.MatchResult{
			JobID:    fmt.Sprintf("fy-%d", i),
			Category: models.CategoryForYou,
		})
	}
	ranked = append(ranked, models.MatchResult{JobID: "sm-0", Category: models.CategorySkillMatch})

	f := e.buildFeeds(ranked)

	assert.Len(t, f.ForYou, 3)
	assert.Equal(t, "fy-0", f.ForYou[0].JobID)
	assert.Equal(t, "fy-2", f.ForYou[2].JobID)

	// Short feeds stay short; nothing spills over from other categories.
	assert.Len(t, f.SkillMatch, 1)
	assert.Empty(t, f.CareerGrowth)
	assert.Empty(t, f.NewOpportunity)
}
