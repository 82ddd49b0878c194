// internal/matching/preferences_test.go
package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ==========================
// LOCATION MATCHING
// ==========================

func TestLocationMatch(t *testing.T) {
	tests := []struct {
		name      string
		preferred []string
		location  string
		remote    bool
		expected  float64
	}{
		{"no preferences means no constraint", nil, "Berlin", false, 1.0},
		{"substring match city in full location", []string{"Berlin"}, "Berlin, Germany", false, 1.0},
		{"substring match either direction", []string{"Berlin, Germany"}, "Berlin", false, 1.0},
		{"remote overrides mismatch", []string{"Berlin"}, "New York", true, 1.0},
		{"plain mismatch", []string{"Berlin"}, "New York", false, 0.0},
		{"case and punctuation ignored", []string{"berlin"}, "BERLIN!", false, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LocationMatch(tt.preferred, tt.location, tt.remote))
		})
	}
}

// ==========================
// JOB TYPE MATCHING
// ==========================

func TestJobTypeMatch(t *testing.T) {
	tests := []struct {
		name      string
		preferred []string
		jobType   string
		expected  float64
	}{
		{"no preferences means no constraint", nil, "full-time", 1.0},
		{"normalized equality", []string{"Full-Time"}, "full-time", 1.0},
		{"mismatch", []string{"contract"}, "full-time", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, JobTypeMatch(tt.preferred, tt.jobType))
		})
	}
}

// ==========================
// INDUSTRY AND LEVEL MATCHING
// ==========================

func TestIndustryMatch(t *testing.T) {
	assert.Equal(t, 1.0, IndustryMatch([]string{"Fintech", "Healthcare"}, "fintech"))
	assert.Equal(t, 0.0, IndustryMatch([]string{"Fintech"}, "gaming"))
	assert.Equal(t, 0.0, IndustryMatch(nil, "fintech"))
}

func TestExperienceLevelMatch(t *testing.T) {
	assert.Equal(t, 1.0, ExperienceLevelMatch("Senior", "senior"))
	assert.Equal(t, 0.0, ExperienceLevelMatch("mid", "senior"))
}
