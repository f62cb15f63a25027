package analysis

import (
	"strings"
	"testing"
)

func TestAggregateScoreComponents(t *testing.T) {
	t.Parallel()

	w := DefaultConfig().Weights

	tests := []struct {
		name string
		m    Metrics
		want int
	}{
		{name: "all zero", m: Metrics{}, want: 0},
		{name: "word count at cap", m: Metrics{WordCount: 300}, want: 25},
		{name: "word count beyond target stays capped", m: Metrics{WordCount: 3000}, want: 25},
		{name: "word count half way", m: Metrics{WordCount: 150}, want: 13}, // 12.5 rounds up
		{name: "skills at cap", m: Metrics{SkillsCount: 8}, want: 35},
		{name: "experience at cap", m: Metrics{ExperienceYears: 5}, want: 40},
		{name: "everything at cap", m: Metrics{WordCount: 300, SkillsCount: 8, ExperienceYears: 5}, want: 100},
		{name: "everything far beyond targets clamps to 100", m: Metrics{WordCount: 9999, SkillsCount: 99, ExperienceYears: 40}, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AggregateScore(tt.m, w); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestAggregateScoreWordCountMonotonic(t *testing.T) {
	t.Parallel()

	w := DefaultConfig().Weights
	counts := []int{0, w.WordCountTarget - 1, w.WordCountTarget, w.WordCountTarget * 10}

	previous := -1
	for _, count := range counts {
		score := AggregateScore(Metrics{WordCount: count}, w)
		if score < previous {
			t.Fatalf("score decreased at word count %d: %d < %d", count, score, previous)
		}
		previous = score
	}

	atTarget := AggregateScore(Metrics{WordCount: w.WordCountTarget}, w)
	beyond := AggregateScore(Metrics{WordCount: w.WordCountTarget * 10}, w)
	if atTarget != beyond {
		t.Fatalf("expected cap to hold beyond target: %d vs %d", atTarget, beyond)
	}
}

func TestAggregateScoreClampsCustomWeights(t *testing.T) {
	t.Parallel()

	// Caps summing above 100 must still clamp.
	w := Weights{
		WordCountCap: 60, WordCountTarget: 100,
		SkillsCap: 60, SkillsTarget: 2,
		ExperienceCap: 60, ExperienceTarget: 1,
	}

	got := AggregateScore(Metrics{WordCount: 100, SkillsCount: 2, ExperienceYears: 1}, w)
	if got != 100 {
		t.Fatalf("expected clamp to 100, got %d", got)
	}
}

func TestBuildMetrics(t *testing.T) {
	t.Parallel()

	text := "Senior engineer with 6 years of experience. Built services in Python and Docker! Led a team of four."
	m := BuildMetrics(text, DefaultConfig().Vocabulary)

	if m.WordCount != len(strings.Fields(text)) {
		t.Fatalf("unexpected word count: %d", m.WordCount)
	}
	if m.SentenceCount != 3 {
		t.Fatalf("expected 3 sentences, got %d", m.SentenceCount)
	}
	if m.SkillsCount != 2 { // python, docker
		t.Fatalf("expected 2 detected skills, got %d", m.SkillsCount)
	}
	if m.ExperienceYears != 6 {
		t.Fatalf("expected 6 years, got %d", m.ExperienceYears)
	}
}

func TestCountSentences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "empty", text: "", want: 0},
		{name: "punctuation only", text: "...!?", want: 0},
		{name: "single terminated", text: "I build APIs.", want: 1},
		{name: "unterminated trailing segment counts", text: "First sentence. second without period", want: 2},
		{name: "repeated punctuation is one boundary", text: "Really?! Yes.", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := countSentences(tt.text); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}
