package analysis

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/smartscreen/resume-screener/internal/catalog"
	"github.com/smartscreen/resume-screener/internal/extract"
)

func testProfile() *catalog.RoleProfile {
	return &catalog.RoleProfile{
		Name:           "Backend Developer",
		Category:       "Software Development",
		Description:    "Builds services.",
		RequiredSkills: []string{"Python", "SQL", "Java"},
	}
}

func TestEngineScoresResume(t *testing.T) {
	t.Parallel()

	text := `John Doe
Summary: backend engineer.
Experience: 5 years building APIs at Example Corp.
Education: BSc Computer Science.
Skills: Python, SQL.`

	engine := NewEngine(DefaultConfig(), zap.NewNop())
	result, err := engine.Analyze(context.Background(), text, testProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.DocumentType != DocTypeResume {
		t.Fatalf("expected resume, got %q", result.DocumentType)
	}
	if result.State != StateScored {
		t.Fatalf("expected scored state, got %q", result.State)
	}
	if result.ID.String() == "" || result.CreatedAt.IsZero() {
		t.Fatalf("expected identity fields to be set")
	}

	km := result.KeywordMatch
	if km == nil {
		t.Fatalf("expected keyword match to be populated")
	}
	if km.Score != 67 {
		t.Fatalf("expected keyword score 67, got %v", km.Score)
	}
	if len(km.MatchedSkills) != 2 || km.MatchedSkills[0] != "Python" || km.MatchedSkills[1] != "SQL" {
		t.Fatalf("unexpected matched skills: %v", km.MatchedSkills)
	}
	if len(km.MissingSkills) != 1 || km.MissingSkills[0] != "Java" {
		t.Fatalf("unexpected missing skills: %v", km.MissingSkills)
	}

	if result.Metrics == nil {
		t.Fatalf("expected metrics to be populated")
	}
	if result.Metrics.ExperienceYears != 5 {
		t.Fatalf("expected 5 years detected, got %d", result.Metrics.ExperienceYears)
	}

	// Experience meets its target, so its full cap is in the score.
	w := DefaultConfig().Weights
	if result.ATSScore < int(w.ExperienceCap) {
		t.Fatalf("expected score to include experience cap %v, got %d", w.ExperienceCap, result.ATSScore)
	}
	if want := AggregateScore(*result.Metrics, w); result.ATSScore != want {
		t.Fatalf("expected score %d, got %d", want, result.ATSScore)
	}
	if result.ATSScore > 100 {
		t.Fatalf("score above 100: %d", result.ATSScore)
	}

	if len(result.Suggestions) == 0 {
		t.Fatalf("expected suggestions")
	}
}

func TestEngineRejectsCoverLetter(t *testing.T) {
	t.Parallel()

	text := `Dear Hiring Manager,

I would be thrilled to join your team and contribute from day one.

Sincerely,
John Doe`

	engine := NewEngine(DefaultConfig(), zap.NewNop())
	result, err := engine.Analyze(context.Background(), text, testProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.DocumentType != DocTypeCoverLetter {
		t.Fatalf("expected cover letter, got %q", result.DocumentType)
	}
	if !result.Rejected() {
		t.Fatalf("expected rejected result")
	}
	if result.KeywordMatch != nil || result.Metrics != nil {
		t.Fatalf("rejected result must not carry scoring data")
	}
	if result.ATSScore != 0 {
		t.Fatalf("rejected result must not carry a score, got %d", result.ATSScore)
	}
}

func TestEngineRejectsEmptyText(t *testing.T) {
	t.Parallel()

	engine := NewEngine(DefaultConfig(), zap.NewNop())
	result, err := engine.Analyze(context.Background(), "   ", testProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.DocumentType != DocTypeUnknown {
		t.Fatalf("expected unknown, got %q", result.DocumentType)
	}
	if !result.Rejected() {
		t.Fatalf("expected rejection before scoring")
	}
}

func TestEngineRequiresProfile(t *testing.T) {
	t.Parallel()

	engine := NewEngine(DefaultConfig(), zap.NewNop())
	if _, err := engine.Analyze(context.Background(), "text", nil); err == nil {
		t.Fatalf("expected error for nil profile")
	}
}

func TestEngineBudgetExceeded(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	engine := NewEngine(DefaultConfig(), zap.NewNop())
	_, err := engine.Analyze(ctx, "some text", testProfile())
	if !errors.Is(err, ErrBudget) {
		t.Fatalf("expected ErrBudget, got %v", err)
	}
}

func TestEngineAnalyzeDocumentPlainText(t *testing.T) {
	t.Parallel()

	data := []byte(`Summary: data engineer.
Experience: 3 years with warehouses.
Education: MSc.
Skills: SQL, Python.`)

	engine := NewEngine(DefaultConfig(), zap.NewNop())
	result, err := engine.AnalyzeDocument(context.Background(), data, extract.FormatPlain, testProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.DocumentType != DocTypeResume {
		t.Fatalf("expected resume, got %q", result.DocumentType)
	}
}

func TestEngineAnalyzeDocumentExtractionFailure(t *testing.T) {
	t.Parallel()

	engine := NewEngine(DefaultConfig(), zap.NewNop())
	_, err := engine.AnalyzeDocument(context.Background(), []byte("not a pdf"), extract.FormatPDF, testProfile())
	if !errors.Is(err, extract.ErrExtraction) {
		t.Fatalf("expected ErrExtraction, got %v", err)
	}
}
