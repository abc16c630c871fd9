package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yyyklk/news-app/internal/digest"
	"github.com/yyyklk/news-app/internal/news"
)

const (
	graphHeading   = "Graph-rank summary"
	keywordHeading = "Keyword summary"
)

// numbered renders items as a 1-based list wrapped to width.
func numbered(items []string, width int) string {
	if len(items) == 0 {
		return helpDimStyle.Render("  (no sentences)")
	}
	var b strings.Builder
	for i, s := range items {
		prefix := fmt.Sprintf("  %d. ", i+1)
		text := lipgloss.NewStyle().Width(max(10, width-lipgloss.Width(prefix))).Render(s)
		lines := strings.Split(text, "\n")
		indent := strings.Repeat(" ", lipgloss.Width(prefix))
		for j, l := range lines {
			if j == 0 {
				b.WriteString(prefix + l)
			} else {
				b.WriteString("\n" + indent + l)
			}
		}
		if i < len(items)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderSummaries(e digest.Entry, width int) string {
	return sectionStyle.Render(graphHeading) + "\n" +
		numbered(e.GraphRank, width) + "\n\n" +
		sectionStyle.Render(keywordHeading) + "\n" +
		numbered(e.KeywordDensity, width)
}

// renderPreview is the right-hand pane of the browse view.
func renderPreview(a news.Article, e digest.Entry, summarized bool, width, height int) string {
	if width < 10 {
		width = 10
	}
	var b strings.Builder
	b.WriteString(previewTitleStyle.Width(width).Render(a.Title) + "\n")
	b.WriteString(previewDateStyle.Render(a.Date.String()) + "\n")
	if summarized {
		b.WriteString(renderSummaries(e, width))
	} else {
		b.WriteString(previewBodyStyle.Width(width).Render(a.Body))
	}

	lines := strings.Split(b.String(), "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

// renderDetail draws one article as a card, like a briefing card with the
// original text behind a toggle.
func renderDetail(a news.Article, e digest.Entry, summarized, showBody bool, pos, total, width, height, scroll int) string {
	cardWidth := min(width-4, 100)
	if cardWidth < 20 {
		cardWidth = 20
	}
	inner := cardWidth - 4

	counter := helpDimStyle.Render(fmt.Sprintf("%d / %d", pos+1, total))

	var b strings.Builder
	b.WriteString(counter + "\n\n")
	b.WriteString(previewTitleStyle.Width(inner).Render(a.Title) + "\n")
	b.WriteString(previewDateStyle.Render(a.Date.String()) + "\n")

	if showBody {
		b.WriteString(sectionStyle.Render("Original article") + helpDimStyle.Render("  (b to hide)") + "\n")
		b.WriteString(previewBodyStyle.Width(inner).Render(a.Body) + "\n\n")
	} else {
		b.WriteString(helpDimStyle.Render("Original article hidden (b to show)") + "\n\n")
	}

	if summarized {
		b.WriteString(renderSummaries(e, inner))
	} else {
		b.WriteString(helpDimStyle.Render("Not summarized yet. Press s in the list to summarize matching articles."))
	}

	lines := strings.Split(b.String(), "\n")
	view := max(1, height-4)
	if scroll > len(lines)-view {
		scroll = max(0, len(lines)-view)
	}
	lines = lines[scroll:]
	if len(lines) > view {
		lines = lines[:view]
	}

	card := detailCardStyle.Width(cardWidth).Render(strings.Join(lines, "\n"))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}
