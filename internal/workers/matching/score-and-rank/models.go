// internal/workers/matching/score-and-rank/models.go
package scoreandrank

import "jobmatch-workers/internal/models"

type Input struct {
	CandidateID string                   `json:"candidateId"`
	Candidate   *models.CandidateProfile `json:"candidate,omitempty"`
	Activity    []models.ActivityEvent   `json:"activity,omitempty"`
	Jobs        []models.JobPosting      `json:"jobs"`
}

type Output struct {
	RunID            string               `json:"matchRunId"`
	Ranked           []models.MatchResult `json:"ranked"`
	ForYou           []models.MatchResult `json:"forYou"`
	CareerGrowth     []models.MatchResult `json:"careerGrowth"`
	SkillMatch       []models.MatchResult `json:"skillMatch"`
	NewOpportunities []models.MatchResult `json:"newOpportunities"`
	SkippedJobs      []models.SkippedJob  `json:"skippedJobs"`
	TotalScored      int                  `json:"totalScored"`
}
