// internal/matching/preferences.go
package matching

import "strings"

// LocationMatch returns 1.0 when the job location contains (or is
// contained by) any preferred location after normalization, or when the
// job is remote. An empty preference list means no constraint.
func LocationMatch(preferred []string, jobLocation string, remote bool) float64 {
	if len(preferred) == 0 {
		return 1.0
	}
	if remote {
		return 1.0
	}
	normalized := NormalizeText(jobLocation)
	for _, pref := range preferred {
		p := NormalizeText(pref)
		if p == "" || normalized == "" {
			continue
		}
		if strings.Contains(normalized, p) || strings.Contains(p, normalized) {
			return 1.0
		}
	}
	return 0.0
}

// JobTypeMatch returns 1.0 when the job type matches any preferred type
// after normalization. An empty preference list means no constraint.
func JobTypeMatch(preferred []string, jobType string) float64 {
	if len(preferred) == 0 {
		return 1.0
	}
	normalized := NormalizeText(jobType)
	for _, pref := range preferred {
		p := NormalizeText(pref)
		if p == "" || normalized == "" {
			continue
		}
		if strings.Contains(normalized, p) || strings.Contains(p, normalized) {
			return 1.0
		}
	}
	return 0.0
}

// IndustryMatch returns 1.0 when the job industry is a member of the
// preferred industry set.
func IndustryMatch(preferred []string, industry string) float64 {
	normalized := NormalizeText(industry)
	for _, pref := range preferred {
		if NormalizeText(pref) == normalized {
			return 1.0
		}
	}
	return 0.0
}

// ExperienceLevelMatch returns 1.0 when the job's stated level equals
// the candidate's.
func ExperienceLevelMatch(candidateLevel, jobLevel string) float64 {
	if NormalizeText(candidateLevel) == NormalizeText(jobLevel) {
		return 1.0
	}
	return 0.0
}
