package analysis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/smartscreen/resume-screener/internal/catalog"
	"github.com/smartscreen/resume-screener/internal/extract"
)

// ErrBudget is returned when the caller-imposed wall-clock budget expires
// before the analysis finishes. It is a safety net against pathological
// inputs; the engine itself never blocks.
var ErrBudget = errors.New("analysis budget exceeded")

// Engine orchestrates a single analysis call:
// Received -> Extracted -> Classified -> {Scored | Rejected}.
//
// Every step is a pure function over the input text, so there are no
// retries and no state shared between calls.
type Engine struct {
	cfg    Config
	logger *zap.Logger
}

// NewEngine creates an engine with the given config. Zero-valued config
// fields fall back to the defaults.
func NewEngine(cfg Config, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Engine{
		cfg:    cfg.withDefaults(),
		logger: logger,
	}
}

// AnalyzeDocument extracts text from the document bytes and analyzes it.
// The byte buffer is not retained after the call returns.
func (e *Engine) AnalyzeDocument(ctx context.Context, data []byte, format extract.Format, profile *catalog.RoleProfile) (*Result, error) {
	doc, err := extract.Text(data, format)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("document extracted",
		zap.Stringer("format", doc.SourceFormat),
		zap.Int("chars", len(doc.RawText)),
	)

	return e.Analyze(ctx, doc.RawText, profile)
}

// Analyze classifies the text and, for resumes, scores it against the role
// profile. Non-resume input is a normal Rejected outcome, not an error; the
// only failure mode is the context budget expiring between stages.
func (e *Engine) Analyze(ctx context.Context, text string, profile *catalog.RoleProfile) (*Result, error) {
	if profile == nil {
		return nil, fmt.Errorf("role profile is required")
	}

	result := &Result{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		State:     StateReceived,
	}

	if err := checkBudget(ctx); err != nil {
		return nil, err
	}

	result.DocumentType = Classify(text, e.cfg)
	result.State = StateClassified

	e.logger.Debug("document classified",
		zap.String("analysis_id", result.ID.String()),
		zap.String("document_type", string(result.DocumentType)),
	)

	if result.DocumentType != DocTypeResume {
		result.State = StateRejected
		e.logger.Info("document rejected before scoring",
			zap.String("analysis_id", result.ID.String()),
			zap.String("document_type", string(result.DocumentType)),
		)
		return result, nil
	}

	if err := checkBudget(ctx); err != nil {
		return nil, err
	}

	keywordMatch := MatchKeywords(text, profile.RequiredSkills)
	result.KeywordMatch = &keywordMatch

	metrics := BuildMetrics(text, e.cfg.Vocabulary)
	result.Metrics = &metrics

	if err := checkBudget(ctx); err != nil {
		return nil, err
	}

	result.ATSScore = AggregateScore(metrics, e.cfg.Weights)
	result.Suggestions = Suggestions(metrics, e.cfg)
	result.State = StateScored

	e.logger.Info("document scored",
		zap.String("analysis_id", result.ID.String()),
		zap.String("role", profile.Name),
		zap.Int("ats_score", result.ATSScore),
		zap.Float64("keyword_score", keywordMatch.Score),
		zap.Int("matched_skills", len(keywordMatch.MatchedSkills)),
		zap.Int("missing_skills", len(keywordMatch.MissingSkills)),
	)

	return result, nil
}

// checkBudget surfaces an expired context as ErrBudget between stages.
func checkBudget(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", ErrBudget, ctx.Err())
	default:
		return nil
	}
}
