// internal/matching/normalize.go
package matching

import (
	"regexp"
	"strings"
)

var punctuation = regexp.MustCompile(`[^\w\s]`)

// Stop words filtered out during keyword extraction.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "or": {}, "but": {}, "in": {}, "on": {},
	"at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"is": {}, "are": {}, "was": {}, "were": {},
}

// NormalizeText lowercases the input and strips punctuation, keeping
// word characters and whitespace.
func NormalizeText(text string) string {
	return punctuation.ReplaceAllString(strings.ToLower(text), "")
}

// ExtractKeywords tokenizes normalized text, dropping stop words and
// tokens shorter than three characters. Empty input yields an empty
// slice.
func ExtractKeywords(text string) []string {
	words := strings.Fields(NormalizeText(text))
	keywords := make([]string, 0, len(words))
	for _, word := range words {
		if _, stop := stopWords[word]; stop {
			continue
		}
		if len(word) <= 2 {
			continue
		}
		keywords = append(keywords, word)
	}
	return keywords
}

func keywordCounts(keywords []string) map[string]int {
	counts := make(map[string]int, len(keywords))
	for _, kw := range keywords {
		counts[kw]++
	}
	return counts
}
