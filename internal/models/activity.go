// internal/models/activity.go
package models

import "time"

// ActivityEvent is one recorded interaction between a candidate and a
// job posting.
type ActivityEvent struct {
	CandidateID string    `json:"candidateId,omitempty"`
	JobID       string    `json:"jobId"`
	Action      string    `json:"action"`
	Timestamp   time.Time `json:"timestamp"`
}

const (
	ActivityViewed    = "viewed"
	ActivityApplied   = "applied"
	ActivitySaved     = "saved"
	ActivityDismissed = "dismissed"
)
