// internal/matching/normalize_test.go
package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ==========================
// TEXT NORMALIZATION
// ==========================

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases and strips punctuation",
			input:    "Senior Go Developer (Remote!)",
			expected: "senior go developer remote",
		},
		{
			name:     "keeps word characters and whitespace",
			input:    "C++ / Node.js, SQL-Server",
			expected: "c  nodejs sqlserver",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "already normalized",
			input:    "backend engineering",
			expected: "backend engineering",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeText(tt.input))
		})
	}
}

// ==========================
// KEYWORD EXTRACTION
// ==========================

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "drops stop words",
			input:    "worked on the backend and with distributed systems",
			expected: []string{"worked", "backend", "distributed", "systems"},
		},
		{
			name:     "drops short tokens",
			input:    "go is ok but k8s ops are fun",
			expected: []string{"k8s", "ops", "fun"},
		},
		{
			name:     "empty input yields empty slice",
			input:    "",
			expected: []string{},
		},
		{
			name:     "keeps duplicates for frequency weighting",
			input:    "python services python tooling",
			expected: []string{"python", "services", "python", "tooling"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractKeywords(tt.input))
		})
	}
}
