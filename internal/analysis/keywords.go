package analysis

import (
	"math"
	"strings"
)

// MatchKeywords compares the document text against a role's required skills.
// A skill matches only as an exact token or an exact consecutive multi-word
// phrase; partial-word matches do not count, so "java" never matches inside
// "javascript". The returned sets keep the required list's casing and order
// and always partition it.
func MatchKeywords(text string, requiredSkills []string) KeywordMatch {
	matched := make([]string, 0, len(requiredSkills))
	missing := make([]string, 0, len(requiredSkills))

	tokens := tokenize(text)
	for _, skill := range requiredSkills {
		if containsPhrase(tokens, tokenize(skill)) {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	score := 0.0
	if len(requiredSkills) > 0 {
		score = math.Round(float64(len(matched)) / float64(len(requiredSkills)) * 100)
	}

	return KeywordMatch{
		Score:         score,
		MatchedSkills: matched,
		MissingSkills: missing,
	}
}

// DetectSkills scans the text for entries of the technology vocabulary and
// returns the distinct hits in vocabulary order, vocabulary casing.
func DetectSkills(text string, vocabulary []string) []string {
	tokens := tokenize(text)
	seen := make(map[string]struct{}, len(vocabulary))
	found := make([]string, 0, len(vocabulary))

	for _, entry := range vocabulary {
		key := strings.ToLower(strings.TrimSpace(entry))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		if containsPhrase(tokens, tokenize(entry)) {
			seen[key] = struct{}{}
			found = append(found, entry)
		}
	}

	return found
}
