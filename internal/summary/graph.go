package summary

import (
	"fmt"
	"strings"

	"github.com/ramenjuniti/lexrankmmr"
)

// maxCharacters bounds the text handed to lexrankmmr.
const maxCharacters = 100000

// GraphRank selects sentences with LexRank and MMR re-ranking.
type GraphRank struct {
	Terminator string
}

func (g GraphRank) Summarize(text string, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	clean := g.prepare(text)
	if clean == "" {
		return nil, nil
	}

	lr, err := lexrankmmr.New(
		lexrankmmr.MaxLines(n),
		lexrankmmr.MaxCharacters(maxCharacters),
	)
	if err != nil {
		return nil, fmt.Errorf("initializing lexrank: %w", err)
	}
	if err := lr.Summarize(clean); err != nil {
		return nil, fmt.Errorf("ranking sentences: %w", err)
	}

	var out []string
	for _, s := range lr.LineLimitedSummary {
		sentence := strings.TrimSuffix(strings.TrimSpace(s.Sentence), "。")
		if sentence != "" {
			out = append(out, sentence)
		}
	}
	return out, nil
}

// prepare turns every sentence break into the terminator and removes empty
// sentences; lexrankmmr fails on a sentence with an all-zero TF-IDF vector.
func (g GraphRank) prepare(text string) string {
	term := g.Terminator
	if term == "" {
		term = DefaultTerminator
	}
	breaks := strings.NewReplacer(
		"\r\n", "\n",
		"\r", "\n",
		term, "\n",
		"。", "\n",
		"！", "\n",
		"？", "\n",
		"!", "\n",
		"?", "\n",
	)

	var lines []string
	for _, line := range strings.Split(breaks.Replace(text), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return ""
	}
	// lexrankmmr splits on 。 internally and drops the trailing empty piece.
	return strings.Join(lines, "。") + "。"
}
