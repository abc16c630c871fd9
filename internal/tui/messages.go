package tui

import "github.com/yyyklk/news-app/internal/digest"

// articleSummarizedMsg carries one finished article of a digest pass.
type articleSummarizedMsg struct {
	pos   int
	entry digest.Entry
}
