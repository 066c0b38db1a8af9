package detector

import (
	"regexp"
	"strings"
)

var (
	sentenceBoundary = regexp.MustCompile(`[.!?]+`)
	wordPattern      = regexp.MustCompile(`[a-zA-Z]+`)
)

// SplitSentences splits text on runs of terminal punctuation and returns the
// trimmed, non-empty pieces in order of appearance.
func SplitSentences(text string) []string {
	parts := sentenceBoundary.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}

// Words extracts maximal alphabetic runs from text, case preserved, in order of
// appearance. Digits and punctuation never become tokens.
func Words(text string) []string {
	return wordPattern.FindAllString(text, -1)
}
