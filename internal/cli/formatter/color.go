package formatter

import (
	"github.com/alexanderramin/telos/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// TierStyle returns the lipgloss style for an importance tier.
func TierStyle(tier domain.ImportanceTier) lipgloss.Style {
	switch tier {
	case domain.TierCritical:
		return StyleRed
	case domain.TierHigh:
		return StyleYellow
	case domain.TierMedium:
		return StyleBlue
	case domain.TierLow:
		return StyleDim
	default:
		return StyleFg
	}
}

// Dim renders s in the dim style.
func Dim(s string) string {
	return StyleDim.Render(s)
}

// Header renders s in the header style.
func Header(s string) string {
	return StyleHeader.Render(s)
}
