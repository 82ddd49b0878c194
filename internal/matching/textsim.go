// internal/matching/textsim.go
package matching

// ExperienceSimilarity measures how closely a candidate's free-text
// experience entries resemble a job description, as a frequency
// weighted Jaccard coefficient over extracted keywords: the sum of
// per-keyword minimum counts divided by the sum of maximum counts.
// Returns 0.0 when both sides are empty.
func ExperienceSimilarity(experience []string, description string) float64 {
	var candidateKeywords []string
	for _, entry := range experience {
		candidateKeywords = append(candidateKeywords, ExtractKeywords(entry)...)
	}

	candidateCounts := keywordCounts(candidateKeywords)
	jobCounts := keywordCounts(ExtractKeywords(description))

	intersection := 0
	union := 0
	for kw, c := range candidateCounts {
		j := jobCounts[kw]
		if c < j {
			intersection += c
			union += j
		} else {
			intersection += j
			union += c
		}
	}
	for kw, j := range jobCounts {
		if _, seen := candidateCounts[kw]; !seen {
			union += j
		}
	}

	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}
