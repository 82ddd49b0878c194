// internal/models/match.go
package models

// MatchResult is the scored outcome for a single job posting.
type MatchResult struct {
	JobID            string   `json:"jobId"`
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Location         string   `json:"location"`
	Score            float64  `json:"score"`
	SkillCoverage    float64  `json:"skillCoverage"`
	MatchedSkills    []string `json:"matchedSkills"`
	MissingSkills    []string `json:"missingSkills"`
	Reasons          []string `json:"reasons"`
	Category         string   `json:"category"`
	ApplyProbability float64  `json:"applyProbability"`
}

// SkippedJob reports a posting that failed validation and was left out
// of the ranking.
type SkippedJob struct {
	JobID  string `json:"jobId,omitempty"`
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// Recommendation categories. SkillMatch takes precedence over
// CareerGrowth, which takes precedence over NewOpportunity; ForYou is
// the default bucket.
const (
	CategoryForYou         = "for_you"
	CategoryCareerGrowth   = "career_growth"
	CategorySkillMatch     = "skill_match"
	CategoryNewOpportunity = "new_opportunity"
)
