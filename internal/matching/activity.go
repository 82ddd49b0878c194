// internal/matching/activity.go
package matching

import (
	"time"

	"jobmatch-workers/internal/models"
)

// adjustForActivity shifts a job's score based on the candidate's
// recent interactions with that job. Only events inside the trailing
// window count; adjustments accumulate additively and the result is
// clamped once at the end. Events for other jobs are ignored.
func (e *Engine) adjustForActivity(score float64, jobID string, events []models.ActivityEvent, now time.Time) float64 {
	cutoff := now.Add(-e.cfg.Activity.Window)
	adjusted := score

	for _, ev := range events {
		if ev.JobID != jobID {
			continue
		}
		if ev.Timestamp.Before(cutoff) {
			continue
		}
		switch ev.Action {
		case models.ActivityApplied:
			adjusted += e.cfg.Activity.AppliedBoost
		case models.ActivityDismissed:
			adjusted -= e.cfg.Activity.DismissedPenalty
		case models.ActivitySaved:
			adjusted += e.cfg.Activity.SavedBoost
		}
	}

	return clamp01(adjusted)
}
