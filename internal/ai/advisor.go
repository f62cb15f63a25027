// Package ai defines the optional advisor abstraction. Advisors enrich a
// finished analysis with tailored improvement advice; they never influence
// the deterministic score.
package ai

import (
	"context"

	"github.com/smartscreen/resume-screener/internal/analysis"
	"github.com/smartscreen/resume-screener/internal/catalog"
)

// ResumeAdvice is the advisor output for a scored resume.
type ResumeAdvice struct {
	Summary   string
	Strengths []string
	Gaps      []string
	Rewrite   string
	Raw       string
}

// Advisor generates advice from a scored analysis result.
type Advisor interface {
	Advise(ctx context.Context, result *analysis.Result, resumeText string, profile *catalog.RoleProfile) (*ResumeAdvice, error)
}
