// internal/matching/score_test.go
package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ==========================
// AGGREGATE SCORING
// ==========================

func TestAggregateWeights(t *testing.T) {
	tests := []struct {
		name       string
		dimensions []string
		components componentScores
		expected   float64
	}{
		{
			name:       "two dimensions split preference share in half",
			dimensions: []string{DimensionLocation, DimensionJobType},
			components: componentScores{
				skill:      SkillMatch{Coverage: 1.0},
				experience: 1.0,
				location:   1.0,
				jobType:    1.0,
			},
			// 0.40 + 0.30 + 0.15 + 0.15
			expected: 1.0,
		},
		{
			name:       "four dimensions split preference share in quarters",
			dimensions: []string{DimensionLocation, DimensionJobType, DimensionIndustry, DimensionExperienceLevel},
			components: componentScores{
				skill:      SkillMatch{Coverage: 0.5},
				experience: 0.0,
				location:   1.0,
				jobType:    0.0,
				industry:   1.0,
				level:      0.0,
			},
			// 0.5*0.40 + 0 + (1+0+1+0)*0.075
			expected: 0.35,
		},
		{
			name:       "no active dimensions drops preference share",
			dimensions: nil,
			components: componentScores{
				skill:      SkillMatch{Coverage: 1.0},
				experience: 1.0,
				location:   1.0,
			},
			expected: 0.70,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.PreferenceDimensions = tt.dimensions
			e := NewEngine(cfg)

			assert.InDelta(t, tt.expected, e.aggregate(tt.components), 0.0001)
		})
	}
}

func TestAggregateClamped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Weights = Weights{SkillCoverage: 2.0, TextSimilarity: 0.0, Preferences: 0.0}
	e := NewEngine(cfg)

	score := e.aggregate(componentScores{skill: SkillMatch{Coverage: 1.0}})
	assert.Equal(t, 1.0, score)
}

// ==========================
// EXPLANATIONS
// ==========================

func TestBuildReasonsOrder(t *testing.T) {
	e := NewEngine(nil)

	reasons := e.buildReasons(componentScores{
		skill:      SkillMatch{Coverage: 0.75},
		experience: 0.4,
		location:   1.0,
		jobType:    1.0,
		industry:   1.0,
	})

	assert.Equal(t, []string{
		"Strong skill match (75%)",
		"Relevant experience",
		"Matches your preferred location",
		"Matches your preferred job type",
		"In your preferred industry",
	}, reasons)
}

func TestBuildReasonsThresholds(t *testing.T) {
	e := NewEngine(nil)

	tests := []struct {
		name       string
		components componentScores
		expected   []string
	}{
		{
			name:       "skill line is always present",
			components: componentScores{skill: SkillMatch{Coverage: 0.0}},
			expected:   []string{"Low skill match (0%)"},
		},
		{
			name:       "moderate skill band",
			components: componentScores{skill: SkillMatch{Coverage: 0.3}},
			expected:   []string{"Moderate skill match (30%)"},
		},
		{
			name: "experience below threshold is silent",
			components: componentScores{
				skill:      SkillMatch{Coverage: 0.6},
				experience: 0.3,
			},
			expected: []string{"Strong skill match (60%)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, e.buildReasons(tt.components))
		})
	}
}

func TestBuildReasonsSkipsInactiveDimensions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PreferenceDimensions = []string{DimensionLocation, DimensionJobType}
	e := NewEngine(cfg)

	reasons := e.buildReasons(componentScores{
		skill:    SkillMatch{Coverage: 0.6},
		location: 1.0,
		industry: 1.0,
	})

	assert.Equal(t, []string{
		"Strong skill match (60%)",
		"Matches your preferred location",
	}, reasons)
}

// ==========================
// APPLY PROBABILITY
// ==========================

func TestApplyProbability(t *testing.T) {
	assert.InDelta(t, 0.6, applyProbability(0.5, 0.5), 0.0001)
	assert.Equal(t, 1.0, applyProbability(0.95, 1.0))
	assert.Equal(t, 0.0, applyProbability(0.0, 0.0))

	// Deterministic for identical inputs.
	assert.Equal(t, applyProbability(0.42, 0.7), applyProbability(0.42, 0.7))
}
