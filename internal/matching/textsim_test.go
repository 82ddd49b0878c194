// internal/matching/textsim_test.go
package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ==========================
// EXPERIENCE SIMILARITY
// ==========================

func TestExperienceSimilarity(t *testing.T) {
	tests := []struct {
		name        string
		experience  []string
		description string
		expected    float64
	}{
		{
			name:        "identical keyword sets",
			experience:  []string{"built backend services"},
			description: "built backend services",
			expected:    1.0,
		},
		{
			name:        "disjoint keyword sets",
			experience:  []string{"painting murals"},
			description: "kubernetes platform engineering",
			expected:    0.0,
		},
		{
			name:        "empty both sides",
			experience:  nil,
			description: "",
			expected:    0.0,
		},
		{
			name:       "frequency weighting counts repeats",
			experience: []string{"python python services"},
			// candidate {python:2, services:1}, job {python:1, services:1}
			// min sum 2, max sum 3
			description: "python services",
			expected:    2.0 / 3.0,
		},
		{
			name:        "partial overlap across entries",
			experience:  []string{"managed database migrations", "tuned database queries"},
			description: "database migrations specialist",
			// candidate {managed:1 database:2 migrations:1 tuned:1 queries:1}
			// job {database:1 migrations:1 specialist:1}
			// min sum 2, max sum 7
			expected: 2.0 / 7.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ExperienceSimilarity(tt.experience, tt.description), 0.0001)
		})
	}
}
