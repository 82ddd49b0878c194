// internal/matching/synonyms.go
package matching

// SynonymTable groups interchangeable skill spellings under a canonical
// name. Lookup is by normalized form.
type SynonymTable map[string][]string

// sameGroup reports whether two normalized skill strings belong to the
// same synonym group.
func (t SynonymTable) sameGroup(a, b string) bool {
	for _, variations := range t {
		foundA, foundB := false, false
		for _, v := range variations {
			switch v {
			case a:
				foundA = true
			case b:
				foundB = true
			}
		}
		if foundA && foundB {
			return true
		}
	}
	return false
}

// DefaultSynonyms covers the skill spellings most common in the job
// corpus. Deployments extend this via the matching.synonyms config key.
func DefaultSynonyms() SynonymTable {
	return SynonymTable{
		"python":             {"python", "python programming", "python development"},
		"javascript":         {"javascript", "js", "javascript development"},
		"react":              {"react", "reactjs"},
		"node.js":            {"nodejs", "node"},
		"sql":                {"sql", "structured query language"},
		"docker":             {"docker", "docker containers", "containerization"},
		"aws":                {"aws", "amazon web services", "amazon cloud"},
		"machine learning":   {"machine learning", "ml", "ai", "artificial intelligence"},
		"data analysis":      {"data analysis", "data analytics", "data science"},
		"project management": {"project management", "pm", "agile", "scrum"},
	}
}
