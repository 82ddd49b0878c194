// internal/matching/skills.go
package matching

import "strings"

// SkillMatch is the outcome of comparing a candidate's skills against a
// job's requirement list. Matched and Missing carry the requirement
// strings in their original phrasing and together partition the
// requirement list.
type SkillMatch struct {
	Coverage float64
	Matched  []string
	Missing  []string
}

// MatchSkills scores each requirement against the candidate's skills.
// Rules apply in order and the first hit wins: exact normalized
// equality, substring containment in either direction, then synonym
// group membership. Coverage is matched over total requirements; an
// empty requirement list counts as full coverage.
func MatchSkills(candidateSkills, requirements []string, synonyms SynonymTable) SkillMatch {
	normalizedSkills := make([]string, len(candidateSkills))
	for i, skill := range candidateSkills {
		normalizedSkills[i] = NormalizeText(skill)
	}

	matched := make([]string, 0, len(requirements))
	missing := make([]string, 0)

	for _, requirement := range requirements {
		req := NormalizeText(requirement)
		if matchesAnySkill(req, normalizedSkills, synonyms) {
			matched = append(matched, requirement)
		} else {
			missing = append(missing, requirement)
		}
	}

	coverage := 1.0
	if len(requirements) > 0 {
		coverage = float64(len(matched)) / float64(len(requirements))
	}

	return SkillMatch{Coverage: coverage, Matched: matched, Missing: missing}
}

func matchesAnySkill(req string, normalizedSkills []string, synonyms SynonymTable) bool {
	for _, skill := range normalizedSkills {
		if req == skill {
			return true
		}
	}
	for _, skill := range normalizedSkills {
		if skill != "" && req != "" && (strings.Contains(skill, req) || strings.Contains(req, skill)) {
			return true
		}
	}
	for _, skill := range normalizedSkills {
		if synonyms.sameGroup(req, skill) {
			return true
		}
	}
	return false
}
