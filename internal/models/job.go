// internal/models/job.go
package models

import "time"

type JobPosting struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Company         string    `json:"company"`
	Description     string    `json:"description"`
	RequiredSkills  []string  `json:"requiredSkills"`
	Location        string    `json:"location"`
	Remote          bool      `json:"remote"`
	JobType         string    `json:"jobType"`
	Industry        string    `json:"industry"`
	ExperienceLevel string    `json:"experienceLevel"`
	SalaryMin       int       `json:"salaryMin,omitempty"`
	SalaryMax       int       `json:"salaryMax,omitempty"`
	PostedDate      time.Time `json:"postedDate"`
}

const (
	JobTypeFullTime   = "full-time"
	JobTypePartTime   = "part-time"
	JobTypeContract   = "contract"
	JobTypeInternship = "internship"
)
