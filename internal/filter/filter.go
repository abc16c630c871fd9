// Package filter selects articles by date range and keywords.
package filter

import (
	"strings"

	"github.com/yyyklk/news-app/internal/news"
	"github.com/yyyklk/news-app/internal/normalize"
)

// DateRange is inclusive on both ends. Start after End matches nothing.
type DateRange struct {
	Start news.Date
	End   news.Date
}

// Contains reports whether d lies within the range.
func (r DateRange) Contains(d news.Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// Query is the input snapshot of one filter interaction.
type Query struct {
	Range    DateRange
	Keywords []string
}

// CleanKeywords trims each keyword and drops blank ones, keeping order.
func CleanKeywords(keywords []string) []string {
	var out []string
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw != "" {
			out = append(out, kw)
		}
	}
	return out
}

// Apply returns the articles matching q in their original order.
func Apply(articles []news.Article, q Query) []news.Article {
	keywords := normalize.Keywords(CleanKeywords(q.Keywords))
	var out []news.Article
	for _, a := range articles {
		if matches(a, q.Range, keywords) {
			out = append(out, a)
		}
	}
	return out
}

// Match reports whether a single article passes q.
func Match(a news.Article, q Query) bool {
	return matches(a, q.Range, normalize.Keywords(CleanKeywords(q.Keywords)))
}

// matches expects keywords already cleaned and normalized.
func matches(a news.Article, r DateRange, keywords []string) bool {
	if !r.Contains(a.Date) {
		return false
	}
	if len(keywords) == 0 {
		return true
	}
	text := normalize.Text(a.Title) + normalize.Text(a.Body)
	for _, kw := range keywords {
		if !strings.Contains(text, kw) {
			return false
		}
	}
	return true
}
