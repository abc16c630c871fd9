package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(matches int, width int, editing bool) string {
	left := fmt.Sprintf(" %d matching articles", matches)

	right := " + add keyword  - remove  s summarize  enter detail  ? help  q quit "
	if editing {
		right = " tab next field  esc done "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return statusBarStyle.Width(width).Render(bar)
}

func renderBottomBar(hints string, width int) string {
	right := " " + hints + " "

	gap := width - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	return statusBarStyle.Width(width).Render(fmt.Sprintf("%*s", gap, "") + right)
}
