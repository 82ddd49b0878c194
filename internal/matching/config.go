// internal/matching/config.go
package matching

import "time"

// Preference dimensions the aggregate scorer can fold into the
// preference weight share.
const (
	DimensionLocation        = "location"
	DimensionJobType         = "job_type"
	DimensionIndustry        = "industry"
	DimensionExperienceLevel = "experience_level"
)

// Weights controls how the component scores combine. The preference
// share is split evenly across the active preference dimensions so the
// three weights always describe the full score.
type Weights struct {
	SkillCoverage  float64
	TextSimilarity float64
	Preferences    float64
}

// ActivityWeights controls the behavioural score adjustment.
type ActivityWeights struct {
	Window           time.Duration
	AppliedBoost     float64
	SavedBoost       float64
	DismissedPenalty float64
}

// CategoryCaps limits the size of each recommendation feed. Feeds are
// truncated, never backfilled.
type CategoryCaps struct {
	ForYou         int
	CareerGrowth   int
	SkillMatch     int
	NewOpportunity int
}

type Config struct {
	Weights              Weights
	PreferenceDimensions []string
	Activity             ActivityWeights
	Caps                 CategoryCaps
	FreshnessWindow      time.Duration
	Synonyms             SynonymTable
	MaxConcurrency       int
}

// DefaultConfig returns the production defaults. All four preference
// dimensions are active, so each carries a quarter of the preference
// weight share.
func DefaultConfig() *Config {
	return &Config{
		Weights: Weights{
			SkillCoverage:  0.40,
			TextSimilarity: 0.30,
			Preferences:    0.30,
		},
		PreferenceDimensions: []string{
			DimensionLocation,
			DimensionJobType,
			DimensionIndustry,
			DimensionExperienceLevel,
		},
		Activity: ActivityWeights{
			Window:           30 * 24 * time.Hour,
			AppliedBoost:     0.10,
			SavedBoost:       0.05,
			DismissedPenalty: 0.20,
		},
		Caps: CategoryCaps{
			ForYou:         10,
			CareerGrowth:   5,
			SkillMatch:     5,
			NewOpportunity: 5,
		},
		FreshnessWindow: 7 * 24 * time.Hour,
		Synonyms:        DefaultSynonyms(),
		MaxConcurrency:  8,
	}
}
