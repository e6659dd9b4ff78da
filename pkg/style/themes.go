package style

import (
	"github.com/charmbracelet/lipgloss"
)

func adaptive(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// Palette, switching automatically between light and dark terminals
var (
	SecondaryColor = adaptive("#6C757D", "#A0A8B0")
	HeadingColor   = adaptive("#212529", "#F8F9FA")
	MutedColor     = adaptive("#6C757D", "#ADB5BD")
	BorderColor    = adaptive("#DEE2E6", "#3B3C4F")

	SuccessColor = adaptive("#28A745", "#4CDD76")
	ErrorColor   = adaptive("#DC3545", "#FF6B7D")
	InfoColor    = adaptive("#17A2B8", "#4DD0E1")
)

// Colors of markup elements in trees and listings
var (
	TagColor       = adaptive("#0EA5E9", "#38BDF8")
	AttributeColor = adaptive("#8B5CF6", "#A78BFA")
	SnippetColor   = adaptive("#F59E0B", "#FBBF24")
	ExpandoColor   = adaptive("#10B981", "#34D399")
)
