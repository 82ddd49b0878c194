// internal/matching/engine.go
package matching

import (
	"sort"
	"sync"
	"time"

	"jobmatch-workers/internal/models"
)

// Engine scores, adjusts, ranks and categorizes job postings for one
// candidate. It is stateless and safe for concurrent use.
type Engine struct {
	cfg *Config
}

func NewEngine(cfg *Config) *Engine {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = 1
	}
	return &Engine{cfg: cfg}
}

// Request carries the full input of one matching run. Now anchors the
// activity window and the freshness check, keeping runs reproducible.
type Request struct {
	Candidate models.CandidateProfile
	Activity  []models.ActivityEvent
	Jobs      []models.JobPosting
	Now       time.Time
}

// Result is the outcome of one matching run. Ranked holds one entry
// per valid input job; Skipped reports the invalid ones.
type Result struct {
	Ranked           []models.MatchResult
	ForYou           []models.MatchResult
	CareerGrowth     []models.MatchResult
	SkillMatch       []models.MatchResult
	NewOpportunities []models.MatchResult
	Skipped          []models.SkippedJob
}

// ScoreAndRank runs the full pipeline: validate, score each job, apply
// activity adjustments, rank and split into category feeds. Malformed
// postings are skipped and reported, never aborting the run. Identical
// inputs produce identical output.
func (e *Engine) ScoreAndRank(req *Request) *Result {
	now := req.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	valid := make([]int, 0, len(req.Jobs))
	skipped := make([]models.SkippedJob, 0)
	for i := range req.Jobs {
		if reason := validateJob(&req.Jobs[i]); reason != "" {
			skipped = append(skipped, models.SkippedJob{
				JobID:  req.Jobs[i].ID,
				Index:  i,
				Reason: reason,
			})
			continue
		}
		valid = append(valid, i)
	}

	// Per-job scoring is pure, so jobs fan out across a bounded pool
	// and land in their input slot before ranking.
	ranked := make([]models.MatchResult, len(valid))
	sem := make(chan struct{}, e.cfg.MaxConcurrency)
	var wg sync.WaitGroup
	for slot, jobIdx := range valid {
		wg.Add(1)
		sem <- struct{}{}
		go func(slot, jobIdx int) {
			defer wg.Done()
			defer func() { <-sem }()
			ranked[slot] = e.scoreJob(&req.Candidate, &req.Jobs[jobIdx], req.Activity, now)
		}(slot, jobIdx)
	}
	wg.Wait()

	// Stable: equal scores keep input order.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	f := e.buildFeeds(ranked)
	return &Result{
		Ranked:           ranked,
		ForYou:           f.ForYou,
		CareerGrowth:     f.CareerGrowth,
		SkillMatch:       f.SkillMatch,
		NewOpportunities: f.NewOpportunity,
		Skipped:          skipped,
	}
}

func (e *Engine) scoreJob(candidate *models.CandidateProfile, job *models.JobPosting, events []models.ActivityEvent, now time.Time) models.MatchResult {
	components := e.scoreComponents(candidate, job)
	base := e.aggregate(components)
	adjusted := e.adjustForActivity(base, job.ID, events, now)

	return models.MatchResult{
		JobID:            job.ID,
		Title:            job.Title,
		Company:          job.Company,
		Location:         job.Location,
		Score:            adjusted,
		SkillCoverage:    components.skill.Coverage,
		MatchedSkills:    components.skill.Matched,
		MissingSkills:    components.skill.Missing,
		Reasons:          e.buildReasons(components),
		Category:         e.categorize(components.skill, candidate, job, now),
		ApplyProbability: applyProbability(adjusted, components.skill.Coverage),
	}
}

func validateJob(job *models.JobPosting) string {
	if job.ID == "" {
		return "missing job id"
	}
	if job.Title == "" {
		return "missing job title"
	}
	return ""
}
