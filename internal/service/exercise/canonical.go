package exercise

import (
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

// CanonicalSentenceAnswer rebuilds the expected word order of a sentence.
// It scans text left to right and at each position takes the word whose next
// occurrence comes first; on a tie the longer word wins, then the one listed
// first. The picked words are joined by single spaces. Words may repeat in
// the result when they repeat in the text.
func CanonicalSentenceAnswer(text string, words []string) string {
	candidates := lo.Uniq(lo.Filter(words, func(w string, _ int) bool { return w != "" }))

	var ordered []string
	for pos := 0; pos < len(text); {
		best, bestAt := -1, -1
		for i, w := range candidates {
			at := strings.Index(text[pos:], w)
			if at < 0 {
				continue
			}
			if best < 0 || at < bestAt ||
				(at == bestAt && utf8.RuneCountInString(w) > utf8.RuneCountInString(candidates[best])) {
				best, bestAt = i, at
			}
		}
		if best < 0 {
			break
		}

		ordered = append(ordered, candidates[best])
		pos += bestAt + len(candidates[best])
	}

	return strings.Join(ordered, " ")
}
