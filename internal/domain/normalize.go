package domain

import (
	"strings"
)

// NormalizeAnswer trims leading and trailing whitespace from a user answer.
func NormalizeAnswer(answer string) string {
	return strings.TrimSpace(answer)
}

// AnswersMatch compares a vocabulary answer against the expected word.
// Both sides are trimmed and compared case-insensitively (Unicode case folding).
// Inner whitespace, diacritics and punctuation must match exactly.
func AnswersMatch(given, expected string) bool {
	return strings.EqualFold(NormalizeAnswer(given), NormalizeAnswer(expected))
}
