package tui

import (
	"strings"

	"github.com/yyyklk/news-app/internal/digest"
	"github.com/yyyklk/news-app/internal/news"
)

func renderListItem(a news.Article, summarized, selected bool, width int) string {
	if width < 10 {
		width = 30
	}

	var title string
	if selected {
		title = itemSelectedStyle.Render("> " + truncateStr(a.Title, width-4))
	} else {
		title = itemTitleStyle.Render("  " + truncateStr(a.Title, width-4))
	}

	meta := "  " + itemDateStyle.Render(a.Date.String())
	if summarized {
		meta += " " + itemDoneStyle.Render("· summarized")
	}

	return title + "\n" + meta
}

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// visibleWindow returns the [start, end) slice of n items to draw so the
// cursor stays on screen.
func visibleWindow(n, cursor, visible int) (int, int) {
	if visible < 1 {
		visible = 1
	}
	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > n {
		end = n
		start = max(0, end-visible)
	}
	return start, end
}

func renderList(articles []news.Article, entries map[int]digest.Entry, cursor int, height int, width int) string {
	if len(articles) == 0 {
		return lipglossCenter("No matching articles", width, height)
	}

	// Each item is 2 lines + 1 blank line = 3 lines
	start, end := visibleWindow(len(articles), cursor, height/3)

	var b strings.Builder
	for i := start; i < end; i++ {
		_, done := entries[articles[i].ID]
		b.WriteString(renderListItem(articles[i], done, i == cursor, width))
		if i < end-1 {
			b.WriteString("\n\n")
		}
	}

	return b.String()
}

func lipglossCenter(s string, width, height int) string {
	pad := (width - len([]rune(s))) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat("\n", height/3) + strings.Repeat(" ", pad) + s
}
