package analysis

import (
	"testing"
)

func TestMatchKeywordsFullCoverage(t *testing.T) {
	t.Parallel()

	required := []string{"Python", "SQL", "Docker"}
	match := MatchKeywords("Worked with Python, SQL and Docker in production.", required)

	if match.Score != 100 {
		t.Fatalf("expected score 100, got %v", match.Score)
	}
	if len(match.MissingSkills) != 0 {
		t.Fatalf("expected no missing skills, got %v", match.MissingSkills)
	}
	if len(match.MatchedSkills) != len(required) {
		t.Fatalf("expected all skills matched, got %v", match.MatchedSkills)
	}
}

func TestMatchKeywordsNoCoverage(t *testing.T) {
	t.Parallel()

	required := []string{"Python", "SQL"}
	match := MatchKeywords("An essay about gardening and landscape design.", required)

	if match.Score != 0 {
		t.Fatalf("expected score 0, got %v", match.Score)
	}
	if len(match.MatchedSkills) != 0 {
		t.Fatalf("expected no matched skills, got %v", match.MatchedSkills)
	}
	if len(match.MissingSkills) != len(required) {
		t.Fatalf("expected all skills missing, got %v", match.MissingSkills)
	}
}

func TestMatchKeywordsPartition(t *testing.T) {
	t.Parallel()

	required := []string{"Python", "SQL", "Java", "Docker"}
	match := MatchKeywords("Python and Docker experience.", required)

	if len(match.MatchedSkills)+len(match.MissingSkills) != len(required) {
		t.Fatalf("matched %v and missing %v do not partition %v",
			match.MatchedSkills, match.MissingSkills, required)
	}

	seen := make(map[string]struct{})
	for _, s := range append(append([]string{}, match.MatchedSkills...), match.MissingSkills...) {
		if _, dup := seen[s]; dup {
			t.Fatalf("skill %q appears in both sets", s)
		}
		seen[s] = struct{}{}
	}
	for _, s := range required {
		if _, ok := seen[s]; !ok {
			t.Fatalf("skill %q lost from the partition", s)
		}
	}
}

func TestMatchKeywordsRounding(t *testing.T) {
	t.Parallel()

	match := MatchKeywords("Python and SQL.", []string{"Python", "SQL", "Java"})
	if match.Score != 67 {
		t.Fatalf("expected 2/3 to round to 67, got %v", match.Score)
	}
}

func TestMatchKeywordsEmptyRequired(t *testing.T) {
	t.Parallel()

	match := MatchKeywords("any text at all", nil)
	if match.Score != 0 {
		t.Fatalf("expected defined score 0 for zero required skills, got %v", match.Score)
	}
}

// Exact-token policy: a skill matches only as a whole token or a whole
// consecutive phrase, never as a substring of a longer word.
func TestMatchKeywordsTokenBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		skill   string
		matched bool
	}{
		{name: "java not inside javascript", text: "Expert in JavaScript frameworks.", skill: "Java", matched: false},
		{name: "java as exact token", text: "Expert in Java and Spring.", skill: "Java", matched: true},
		{name: "javascript as exact token", text: "Expert in JavaScript frameworks.", skill: "JavaScript", matched: true},
		{name: "multi-word phrase", text: "Applied machine learning to fraud detection.", skill: "Machine Learning", matched: true},
		{name: "phrase requires both words", text: "Operated machine tools on the shop floor.", skill: "Machine Learning", matched: false},
		{name: "phrase words must be consecutive", text: "machine assisted learning", skill: "Machine Learning", matched: false},
		{name: "c++ survives tokenization", text: "Ten years of C++ development.", skill: "C++", matched: true},
		{name: "node.js survives tokenization", text: "Built APIs with Node.js runtime.", skill: "Node.js", matched: true},
		{name: "ci/cd matches across slash", text: "Maintained CI/CD pipelines.", skill: "CI/CD", matched: true},
		{name: "case insensitive", text: "worked with PYTHON daily", skill: "Python", matched: true},
		{name: "trailing sentence period stripped", text: "My strongest language is Python.", skill: "Python", matched: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match := MatchKeywords(tt.text, []string{tt.skill})
			got := len(match.MatchedSkills) == 1
			if got != tt.matched {
				t.Fatalf("skill %q in %q: expected matched=%v, got matched=%v",
					tt.skill, tt.text, tt.matched, got)
			}
		})
	}
}

func TestMatchKeywordsPreservesCasing(t *testing.T) {
	t.Parallel()

	match := MatchKeywords("python and sql everywhere", []string{"Python", "SQL", "Java"})

	if len(match.MatchedSkills) != 2 || match.MatchedSkills[0] != "Python" || match.MatchedSkills[1] != "SQL" {
		t.Fatalf("expected original casing in matched skills, got %v", match.MatchedSkills)
	}
	if len(match.MissingSkills) != 1 || match.MissingSkills[0] != "Java" {
		t.Fatalf("expected original casing in missing skills, got %v", match.MissingSkills)
	}
}

func TestDetectSkills(t *testing.T) {
	t.Parallel()

	vocabulary := []string{"python", "sql", "machine learning", "docker", "python"}
	text := "Used Python for machine learning pipelines. More Python scripts ran in Docker."

	found := DetectSkills(text, vocabulary)

	want := []string{"python", "machine learning", "docker"}
	if len(found) != len(want) {
		t.Fatalf("expected %d distinct skills, got %v", len(want), found)
	}
	for i := range want {
		if found[i] != want[i] {
			t.Fatalf("skill %d: expected %q, got %q", i, want[i], found[i])
		}
	}
}
