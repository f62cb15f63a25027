// Package analysis implements the resume analysis engine: document
// classification, keyword matching against a role profile, metric
// collection, and ATS score aggregation.
package analysis

import (
	"time"

	"github.com/google/uuid"
)

// DocumentType is the classifier verdict for an extracted document.
type DocumentType string

const (
	DocTypeResume      DocumentType = "resume"
	DocTypeCoverLetter DocumentType = "cover_letter"
	DocTypeOther       DocumentType = "other"
	DocTypeUnknown     DocumentType = "unknown"
)

// State tracks the engine progression for a single analysis call.
type State string

const (
	StateReceived   State = "received"
	StateExtracted  State = "extracted"
	StateClassified State = "classified"
	StateScored     State = "scored"
	StateRejected   State = "rejected"
)

// KeywordMatch reports how the document text covers a role's required skills.
// MatchedSkills and MissingSkills always partition the required list; both
// keep the catalog casing.
type KeywordMatch struct {
	Score         float64  `json:"score"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
}

// Metrics are the raw sub-metrics feeding the score aggregator.
type Metrics struct {
	WordCount       int `json:"word_count"`
	SentenceCount   int `json:"sentence_count"`
	SkillsCount     int `json:"skills_count"`
	ExperienceYears int `json:"experience_years"`
}

// Result is produced fresh per analysis call. A rejected document carries
// only the identity fields and the detected type; scoring never ran.
type Result struct {
	ID           uuid.UUID     `json:"id"`
	CreatedAt    time.Time     `json:"created_at"`
	State        State         `json:"state"`
	DocumentType DocumentType  `json:"document_type"`
	ATSScore     int           `json:"ats_score"`
	KeywordMatch *KeywordMatch `json:"keyword_match,omitempty"`
	Metrics      *Metrics      `json:"metrics,omitempty"`
	Suggestions  []string      `json:"suggestions,omitempty"`
}

// Rejected reports whether the engine stopped before scoring.
func (r *Result) Rejected() bool {
	return r.State == StateRejected
}
