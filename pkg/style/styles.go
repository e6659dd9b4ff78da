package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Italic(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(1, 2)
)

// Markup element styles
var (
	TagStyle = lipgloss.NewStyle().
			Foreground(TagColor).
			Bold(true)

	AttributeStyle = lipgloss.NewStyle().
			Foreground(AttributeColor)

	SnippetStyle = lipgloss.NewStyle().
			Foreground(SnippetColor).
			Bold(true)

	ExpandoStyle = lipgloss.NewStyle().
			Foreground(ExpandoColor).
			Bold(true)

	ReferenceStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Italic(true)
)

// Status indicators
var (
	SuccessIndicator = SuccessStyle.Render("✓")
	ErrorIndicator   = ErrorStyle.Render("✗")
	InfoIndicator    = InfoStyle.Render("•")
)
