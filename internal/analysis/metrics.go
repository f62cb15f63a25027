package analysis

import (
	"strings"
	"unicode"
)

// BuildMetrics collects the raw sub-metrics the aggregator scores.
func BuildMetrics(text string, vocabulary []string) Metrics {
	return Metrics{
		WordCount:       len(strings.Fields(text)),
		SentenceCount:   countSentences(text),
		SkillsCount:     len(DetectSkills(text, vocabulary)),
		ExperienceYears: ExperienceYears(text),
	}
}

// countSentences counts segments terminated by sentence punctuation that
// contain at least one letter or digit. A trailing unterminated segment
// still counts.
func countSentences(text string) int {
	count := 0
	hasContent := false

	for _, r := range text {
		switch {
		case r == '.' || r == '!' || r == '?':
			if hasContent {
				count++
				hasContent = false
			}
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			hasContent = true
		}
	}

	if hasContent {
		count++
	}

	return count
}
