// internal/matching/categorize.go
package matching

import (
	"strings"
	"time"

	"jobmatch-workers/internal/models"
)

var growthTitleMarkers = []string{"senior", "lead", "manager"}

// categorize assigns the primary recommendation category for one scored
// job. Precedence: skill_match over career_growth over new_opportunity
// over for_you.
func (e *Engine) categorize(skill SkillMatch, candidate *models.CandidateProfile, job *models.JobPosting, now time.Time) string {
	if isSkillMatch(skill, len(job.RequiredSkills)) {
		return models.CategorySkillMatch
	}
	if isCareerGrowth(candidate.CurrentRole, job.Title) {
		return models.CategoryCareerGrowth
	}
	if e.isNewOpportunity(job, now) {
		return models.CategoryNewOpportunity
	}
	return models.CategoryForYou
}

// isSkillMatch holds when more than half the requirements matched.
func isSkillMatch(skill SkillMatch, requirementCount int) bool {
	return requirementCount > 0 && float64(len(skill.Matched)) > float64(requirementCount)*0.5
}

// isCareerGrowth holds when the job title carries a seniority marker
// the candidate's current role does not.
func isCareerGrowth(currentRole, jobTitle string) bool {
	title := strings.ToLower(jobTitle)
	role := strings.ToLower(currentRole)
	for _, marker := range growthTitleMarkers {
		if strings.Contains(title, marker) && !strings.Contains(role, marker) {
			return true
		}
	}
	return false
}

func (e *Engine) isNewOpportunity(job *models.JobPosting, now time.Time) bool {
	if job.PostedDate.IsZero() {
		return false
	}
	return !job.PostedDate.Before(now.Add(-e.cfg.FreshnessWindow))
}

// feeds splits the ranked results into the per-category lists, keeping
// rank order and truncating each at its cap. Short feeds stay short.
type feeds struct {
	ForYou         []models.MatchResult
	CareerGrowth   []models.MatchResult
	SkillMatch     []models.MatchResult
	NewOpportunity []models.MatchResult
}

func (e *Engine) buildFeeds(ranked []models.MatchResult) feeds {
	f := feeds{
		ForYou:         make([]models.MatchResult, 0, e.cfg.Caps.ForYou),
		CareerGrowth:   make([]models.MatchResult, 0, e.cfg.Caps.CareerGrowth),
		SkillMatch:     make([]models.MatchResult, 0, e.cfg.Caps.SkillMatch),
		NewOpportunity: make([]models.MatchResult, 0, e.cfg.Caps.NewOpportunity),
	}
	for _, r := range ranked {
		switch r.Category {
		case models.CategoryForYou:
			if len(f.ForYou) < e.cfg.Caps.ForYou {
				f.ForYou = append(f.ForYou, r)
			}
		case models.CategoryCareerGrowth:
			if len(f.CareerGrowth) < e.cfg.Caps.CareerGrowth {
				f.CareerGrowth = append(f.CareerGrowth, r)
			}
		case models.CategorySkillMatch:
			if len(f.SkillMatch) < e.cfg.Caps.SkillMatch {
				f.SkillMatch = append(f.SkillMatch, r)
			}
		case models.CategoryNewOpportunity:
			if len(f.NewOpportunity) < e.cfg.Caps.NewOpportunity {
				f.NewOpportunity = append(f.NewOpportunity, r)
			}
		}
	}
	return f
}
