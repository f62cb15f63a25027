package analysis

import (
	"strings"
	"unicode"
)

// tokenize lowercases the text and splits it on word boundaries. Interior
// '+', '#', and '.' survive so tokens like "c++", "c#", and "node.js" stay
// intact; trailing periods are sentence punctuation and are stripped.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
		switch r {
		case '+', '#', '.':
			return false
		}
		return true
	})

	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		field = strings.TrimRight(field, ".")
		if field == "" {
			continue
		}
		tokens = append(tokens, field)
	}

	return tokens
}

// containsPhrase reports whether want occurs as a consecutive token
// subsequence of tokens. Exact-token matching keeps "java" from matching
// inside "javascript".
func containsPhrase(tokens, want []string) bool {
	if len(want) == 0 || len(want) > len(tokens) {
		return false
	}

	for i := 0; i+len(want) <= len(tokens); i++ {
		match := true
		for j := range want {
			if tokens[i+j] != want[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}

	return false
}
