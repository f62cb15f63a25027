package analysis

import "fmt"

// Suggestions derives improvement advice from the collected metrics. The
// thresholds are the aggregator targets plus the sentence and experience
// minimums from the config.
func Suggestions(m Metrics, cfg Config) []string {
	cfg = cfg.withDefaults()

	var suggestions []string

	if m.WordCount < cfg.Weights.WordCountTarget {
		suggestions = append(suggestions, fmt.Sprintf(
			"Add more detail to your resume - aim for at least %d words", cfg.Weights.WordCountTarget))
	}
	if m.SkillsCount < cfg.Weights.SkillsTarget {
		suggestions = append(suggestions,
			"Include more relevant technical skills and technologies")
	}
	if m.SentenceCount < cfg.MinSentences {
		suggestions = append(suggestions,
			"Add more achievements and responsibilities from your experience")
	}
	if m.ExperienceYears < cfg.MinExperienceYears {
		suggestions = append(suggestions,
			"Highlight any internships, projects, or relevant coursework")
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions,
			"Your resume looks great! Consider adding more quantifiable achievements")
	}

	return suggestions
}
