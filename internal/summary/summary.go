// Package summary produces extractive summaries: ordered lists of sentences
// taken verbatim from the source text.
package summary

import "strings"

// DefaultTerminator ends a sentence.
const DefaultTerminator = "。"

// Summarizer picks up to n sentences from text.
type Summarizer interface {
	Summarize(text string, n int) ([]string, error)
}

// splitSentences splits on term, trims each piece and drops empty ones.
func splitSentences(text, term string) []string {
	if term == "" {
		term = DefaultTerminator
	}
	var out []string
	for _, s := range strings.Split(text, term) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
