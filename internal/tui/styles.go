package tui

import "github.com/charmbracelet/lipgloss"

// Palette. Each color has a light and a dark terminal variant.
var (
	inkColor      = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#D1D5DB"}
	mutedColor    = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}
	headlineColor = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"}
	focusColor    = lipgloss.AdaptiveColor{Light: "#C2410C", Dark: "#FB923C"}
	okColor       = lipgloss.AdaptiveColor{Light: "#047857", Dark: "#34D399"}
	cautionColor  = lipgloss.AdaptiveColor{Light: "#A16207", Dark: "#FACC15"}
	frameColor    = lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"}
	barBgColor    = lipgloss.AdaptiveColor{Light: "#F3F4F6", Dark: "#1F2937"}
)

// Header and controls.
var (
	headerStyle      = lipgloss.NewStyle().Bold(true).Foreground(headlineColor).PaddingLeft(1)
	headerDateStyle  = lipgloss.NewStyle().Foreground(mutedColor).Align(lipgloss.Right)
	labelStyle       = lipgloss.NewStyle().Foreground(inkColor).PaddingLeft(1).Width(11)
	labelActiveStyle = labelStyle.Foreground(focusColor).Bold(true)
	inputPromptStyle = lipgloss.NewStyle().Foreground(focusColor)
	infoStyle        = lipgloss.NewStyle().Foreground(okColor).PaddingLeft(1)
	warnStyle        = lipgloss.NewStyle().Foreground(cautionColor).PaddingLeft(1)
	errorStyle       = lipgloss.NewStyle().Foreground(headlineColor).Bold(true).PaddingLeft(1)
)

// Result list and preview panes.
var (
	listPaneStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(frameColor)
	listPaneActiveStyle = listPaneStyle.BorderForeground(focusColor)
	previewPaneStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(frameColor).PaddingLeft(1)

	itemTitleStyle    = lipgloss.NewStyle().Foreground(inkColor)
	itemSelectedStyle = lipgloss.NewStyle().Foreground(focusColor).Bold(true)
	itemDateStyle     = lipgloss.NewStyle().Foreground(mutedColor)
	itemDoneStyle     = lipgloss.NewStyle().Foreground(okColor)

	previewTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(headlineColor)
	previewDateStyle  = lipgloss.NewStyle().Foreground(mutedColor).MarginBottom(1)
	previewBodyStyle  = lipgloss.NewStyle().Foreground(inkColor)
	sectionStyle      = lipgloss.NewStyle().Foreground(focusColor).Bold(true).Underline(true)
)

// Detail card, help overlay, status bar.
var (
	detailCardStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(headlineColor).Padding(0, 1)
	helpCardStyle   = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(focusColor).Padding(1, 3)
	helpDimStyle    = lipgloss.NewStyle().Foreground(mutedColor)
	statusBarStyle  = lipgloss.NewStyle().Background(barBgColor).Foreground(inkColor).Padding(0, 1)
)
