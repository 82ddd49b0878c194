// internal/models/candidate.go
package models

// CandidateProfile is the scoring-side view of a job seeker. All slice
// fields may be empty; empty preference lists mean "no preference".
type CandidateProfile struct {
	ID                  string   `json:"id"`
	Skills              []string `json:"skills"`
	Experience          []string `json:"experience"`
	Education           []string `json:"education"`
	CurrentRole         string   `json:"currentRole"`
	YearsExperience     int      `json:"yearsExperience"`
	ExperienceLevel     string   `json:"experienceLevel"`
	PreferredRoles      []string `json:"preferredRoles"`
	PreferredIndustries []string `json:"preferredIndustries"`
	PreferredLocations  []string `json:"preferredLocations"`
	PreferredJobTypes   []string `json:"preferredJobTypes"`
	SalaryMin           int      `json:"salaryMin,omitempty"`
	SalaryMax           int      `json:"salaryMax,omitempty"`
}

// Experience levels used by both candidates and job postings.
const (
	ExperienceLevelEntry     = "entry"
	ExperienceLevelMid       = "mid"
	ExperienceLevelSenior    = "senior"
	ExperienceLevelExecutive = "executive"
)
