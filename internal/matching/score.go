// internal/matching/score.go
package matching

import (
	"fmt"

	"jobmatch-workers/internal/models"
)

// componentScores holds the per-dimension scores for one job before
// aggregation.
type componentScores struct {
	skill      SkillMatch
	experience float64
	location   float64
	jobType    float64
	industry   float64
	level      float64
}

func (e *Engine) scoreComponents(candidate *models.CandidateProfile, job *models.JobPosting) componentScores {
	return componentScores{
		skill:      MatchSkills(candidate.Skills, job.RequiredSkills, e.cfg.Synonyms),
		experience: ExperienceSimilarity(candidate.Experience, job.Description),
		location:   LocationMatch(candidate.PreferredLocations, job.Location, job.Remote),
		jobType:    JobTypeMatch(candidate.PreferredJobTypes, job.JobType),
		industry:   IndustryMatch(candidate.PreferredIndustries, job.Industry),
		level:      ExperienceLevelMatch(candidate.ExperienceLevel, job.ExperienceLevel),
	}
}

// aggregate combines component scores under the configured weights. The
// preference share is split evenly across the active dimensions, so the
// weights always sum to 1.0 regardless of which dimensions are on.
func (e *Engine) aggregate(s componentScores) float64 {
	score := s.skill.Coverage*e.cfg.Weights.SkillCoverage +
		s.experience*e.cfg.Weights.TextSimilarity

	dims := e.cfg.PreferenceDimensions
	if len(dims) > 0 {
		perDim := e.cfg.Weights.Preferences / float64(len(dims))
		for _, dim := range dims {
			score += e.dimensionScore(s, dim) * perDim
		}
	}

	return clamp01(score)
}

func (e *Engine) dimensionScore(s componentScores, dim string) float64 {
	switch dim {
	case DimensionLocation:
		return s.location
	case DimensionJobType:
		return s.jobType
	case DimensionIndustry:
		return s.industry
	case DimensionExperienceLevel:
		return s.level
	}
	return 0.0
}

// buildReasons produces the explanation list in fixed order: skills,
// experience relevance, location, job type, industry. The skill line is
// always present.
func (e *Engine) buildReasons(s componentScores) []string {
	reasons := make([]string, 0, 5)

	pct := int(s.skill.Coverage * 100)
	switch {
	case s.skill.Coverage > 0.5:
		reasons = append(reasons, fmt.Sprintf("Strong skill match (%d%%)", pct))
	case s.skill.Coverage > 0.2:
		reasons = append(reasons, fmt.Sprintf("Moderate skill match (%d%%)", pct))
	default:
		reasons = append(reasons, fmt.Sprintf("Low skill match (%d%%)", pct))
	}

	if s.experience > 0.3 {
		reasons = append(reasons, "Relevant experience")
	}
	if e.dimensionActive(DimensionLocation) && s.location == 1.0 {
		reasons = append(reasons, "Matches your preferred location")
	}
	if e.dimensionActive(DimensionJobType) && s.jobType == 1.0 {
		reasons = append(reasons, "Matches your preferred job type")
	}
	if e.dimensionActive(DimensionIndustry) && s.industry == 1.0 {
		reasons = append(reasons, "In your preferred industry")
	}

	return reasons
}

func (e *Engine) dimensionActive(dim string) bool {
	for _, d := range e.cfg.PreferenceDimensions {
		if d == dim {
			return true
		}
	}
	return false
}

// applyProbability estimates how likely the candidate is to apply.
// Deterministic: the adjusted score lifted by a fraction of the skill
// coverage.
func applyProbability(adjusted, skillCoverage float64) float64 {
	return clamp01(adjusted + 0.2*skillCoverage)
}

func clamp01(v float64) float64 {
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}
