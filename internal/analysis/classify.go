package analysis

import (
	"strings"
	"unicode/utf8"
)

// Classify decides whether extracted text is a resume, a cover letter, or
// something else. The function is pure: the same text always yields the
// same type.
//
// A document is a resume when at least MinResumeSections distinct resume
// section keywords appear and no cover-letter salutation opens the text.
// Text shorter than MinClassifyChars is unknown and must not be scored.
func Classify(text string, cfg Config) DocumentType {
	cfg = cfg.withDefaults()

	trimmed := strings.TrimSpace(text)
	if utf8.RuneCountInString(trimmed) < cfg.MinClassifyChars {
		return DocTypeUnknown
	}

	lower := strings.ToLower(trimmed)

	if hasLeadingSalutation(lower, cfg) {
		return DocTypeCoverLetter
	}

	resumeHits := countMarkers(lower, cfg.ResumeSections)
	coverHits := countMarkers(lower, cfg.CoverLetterMarkers)

	switch {
	case resumeHits >= cfg.MinResumeSections && resumeHits >= coverHits:
		return DocTypeResume
	case coverHits > 0:
		return DocTypeCoverLetter
	default:
		return DocTypeOther
	}
}

// hasLeadingSalutation checks the opening window for a strong cover-letter
// salutation such as "dear hiring manager".
func hasLeadingSalutation(lower string, cfg Config) bool {
	window := lower
	if runes := []rune(lower); len(runes) > cfg.SalutationWindow {
		window = string(runes[:cfg.SalutationWindow])
	}

	for _, salutation := range cfg.Salutations {
		if strings.Contains(window, salutation) {
			return true
		}
	}

	return false
}

// countMarkers counts distinct markers present in the text.
func countMarkers(lower string, markers []string) int {
	hits := 0
	for _, marker := range markers {
		if strings.Contains(lower, marker) {
			hits++
		}
	}
	return hits
}
