package summary

import (
	"sort"
	"strings"

	"github.com/yyyklk/news-app/internal/keyword"
)

// DefaultTopK is how many salient terms KeywordDensity scores against.
const DefaultTopK = 10

// KeywordDensity ranks sentences by how many of the document's salient
// terms they contain. Each distinct term counts at most once per sentence.
type KeywordDensity struct {
	Extractor  keyword.Extractor
	TopK       int
	Terminator string
}

type scoredSentence struct {
	text  string
	score int
}

// Summarize never fails; the error is always nil.
func (k KeywordDensity) Summarize(text string, n int) ([]string, error) {
	if n <= 0 || strings.TrimSpace(text) == "" {
		return nil, nil
	}

	topK := k.TopK
	if topK <= 0 {
		topK = DefaultTopK
	}
	var terms []string
	if k.Extractor != nil {
		terms = distinct(k.Extractor.Extract(text, topK))
	}

	sentences := splitSentences(text, k.Terminator)
	scored := make([]scoredSentence, len(sentences))
	for i, s := range sentences {
		scored[i] = scoredSentence{text: s, score: countTerms(s, terms)}
	}

	// Ties keep source order.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > n {
		scored = scored[:n]
	}
	out := make([]string, 0, len(scored))
	for _, s := range scored {
		if s.text != "" {
			out = append(out, s.text)
		}
	}
	return out, nil
}

func countTerms(sentence string, terms []string) int {
	score := 0
	for _, t := range terms {
		if strings.Contains(sentence, t) {
			score++
		}
	}
	return score
}

func distinct(terms []string) []string {
	seen := make(map[string]bool, len(terms))
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
