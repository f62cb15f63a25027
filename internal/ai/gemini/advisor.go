package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/smartscreen/resume-screener/internal/ai"
	"github.com/smartscreen/resume-screener/internal/analysis"
	"github.com/smartscreen/resume-screener/internal/catalog"
	"github.com/smartscreen/resume-screener/internal/utils"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

//go:embed prompt.md
var promptTemplate string

const (
	defaultMaxLogLength = 200
	retryBackoff        = 500 * time.Millisecond
)

// Advisor turns a scored analysis into coaching advice via Gemini.
type Advisor struct {
	generator  contentGenerator
	maxRetries int
	maxLogLen  int
	logger     *zap.Logger
}

// NewAdvisor wires a content generator into an Advisor. maxRetries counts
// additional attempts after the first.
func NewAdvisor(generator contentGenerator, maxRetries, maxLogLength int, logger *zap.Logger) *Advisor {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if maxRetries < 0 {
		maxRetries = 0
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Advisor{
		generator:  generator,
		maxRetries: maxRetries,
		maxLogLen:  maxLogLength,
		logger:     logger,
	}
}

// Advise builds the coaching prompt and parses the model's JSON response.
func (a *Advisor) Advise(ctx context.Context, result *analysis.Result, resumeText string, profile *catalog.RoleProfile) (*ai.ResumeAdvice, error) {
	if result == nil {
		return nil, fmt.Errorf("analysis result is required")
	}
	if result.Rejected() {
		return nil, fmt.Errorf("cannot advise on a rejected document of type %q", result.DocumentType)
	}
	if profile == nil {
		return nil, fmt.Errorf("role profile is required")
	}

	roleJSON, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal role payload: %w", err)
	}

	analysisJSON, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal analysis payload: %w", err)
	}

	prompt := buildPrompt(string(roleJSON), string(analysisJSON), resumeText)

	a.logger.Debug("gemini advice request",
		zap.String("analysis_id", result.ID.String()),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, a.maxLogLen)),
	)

	raw, err := a.generate(ctx, prompt, result.ID.String())
	if err != nil {
		return nil, err
	}

	a.logger.Debug("gemini advice response",
		zap.String("analysis_id", result.ID.String()),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, a.maxLogLen)),
	)

	advice, err := parseAdvice(raw)
	if err != nil {
		return nil, err
	}

	advice.Raw = raw
	return advice, nil
}

// generate calls the generator, retrying transient failures with a linear
// backoff that respects the context.
func (a *Advisor) generate(ctx context.Context, prompt, analysisID string) (string, error) {
	var lastErr error

	for attempt := 0; attempt <= a.maxRetries; attempt++ {
		if attempt > 0 {
			if err := utils.WaitFor(ctx, time.Duration(attempt)*retryBackoff); err != nil {
				return "", err
			}
		}

		raw, err := a.generator.GenerateContent(ctx, prompt)
		if err == nil {
			return raw, nil
		}

		lastErr = err
		a.logger.Warn("advice generation attempt failed",
			zap.String("analysis_id", analysisID),
			zap.Int("attempt", attempt+1),
			zap.Error(err),
		)
	}

	return "", fmt.Errorf("after %d attempts: %w", a.maxRetries+1, lastErr)
}

func buildPrompt(roleJSON, analysisJSON, resumeText string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Role:\n{{ROLE_JSON}}\n\nAnalysis:\n{{ANALYSIS_JSON}}\n\nResume:\n{{RESUME_TEXT}}\n\nJSON Response:"
	}

	prompt := strings.ReplaceAll(template, "{{ROLE_JSON}}", roleJSON)
	prompt = strings.ReplaceAll(prompt, "{{ANALYSIS_JSON}}", analysisJSON)
	prompt = strings.ReplaceAll(prompt, "{{RESUME_TEXT}}", strings.TrimSpace(resumeText))
	return prompt
}

func parseAdvice(raw string) (*ai.ResumeAdvice, error) {
	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	return &ai.ResumeAdvice{
		Summary:   coerceString(data["summary"]),
		Strengths: coerceStrings(data["strengths"]),
		Gaps:      coerceStrings(data["gaps"]),
		Rewrite:   coerceString(data["rewrite"]),
	}, nil
}

// extractJSON strips markdown code fences the model sometimes wraps around
// its response.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case fmt.Stringer:
		return strings.TrimSpace(val.String())
	default:
		if v == nil {
			return ""
		}
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(encoded)
	}
}

func coerceStrings(v any) []string {
	switch val := v.(type) {
	case []any:
		result := make([]string, 0, len(val))
		for _, item := range val {
			if s := coerceString(item); s != "" {
				result = append(result, s)
			}
		}
		return result
	case []string:
		return val
	case string:
		if s := strings.TrimSpace(val); s != "" {
			return []string{s}
		}
		return nil
	default:
		return nil
	}
}
