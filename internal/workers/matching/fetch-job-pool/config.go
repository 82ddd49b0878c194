// internal/workers/matching/fetch-job-pool/config.go
package fetchjobpool

import "time"

type Config struct {
	Index   string
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Index:   "job_postings",
		Timeout: 30 * time.Second,
	}
}
