// internal/workers/matching/fetch-job-pool/models.go
package fetchjobpool

import "jobmatch-workers/internal/models"

type Input struct {
	Index      string     `json:"index,omitempty"`
	Filters    Filters    `json:"filters"`
	Pagination Pagination `json:"pagination"`
}

// Filters narrows the job pool before scoring. All fields are optional;
// an empty filter set returns the whole index page by page.
type Filters struct {
	Keywords        string `json:"keywords,omitempty"`
	Location        string `json:"location,omitempty"`
	Industry        string `json:"industry,omitempty"`
	JobType         string `json:"jobType,omitempty"`
	ExperienceLevel string `json:"experienceLevel,omitempty"`
	RemoteOnly      bool   `json:"remoteOnly,omitempty"`
	PostedAfter     string `json:"postedAfter,omitempty"` // RFC 3339
	SortBy          string `json:"sortBy,omitempty"`
}

type Pagination struct {
	From int `json:"from"`
	Size int `json:"size"`
}

type Output struct {
	Jobs      []models.JobPosting `json:"jobs"`
	TotalHits int64               `json:"totalHits"`
	Took      int64               `json:"took"` // milliseconds
}
