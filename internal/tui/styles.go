package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/drawpoker/internal/config"
)

// Styles holds the rendered look of the table, built from the theme.
type Styles struct {
	Header    lipgloss.Style
	Table     lipgloss.Style
	RedCard   lipgloss.Style
	BlackCard lipgloss.Style
	Hidden    lipgloss.Style
	Cursor    lipgloss.Style
	Discard   lipgloss.Style
	Rank      lipgloss.Style
	Win       lipgloss.Style
	Lose      lipgloss.Style
	Tie       lipgloss.Style
	Info      lipgloss.Style
	Error     lipgloss.Style
}

// NewStyles builds styles from theme colours.
func NewStyles(theme *config.ThemeSettings) Styles {
	if theme == nil {
		theme = config.Default().Theme
	}
	accent := lipgloss.Color(theme.Accent)
	muted := lipgloss.Color(theme.Muted)

	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(accent).
			Padding(0, 1).
			Bold(true),

		Table: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1),

		RedCard: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.RedSuit)).
			Bold(true),

		BlackCard: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.BlackSuit)).
			Bold(true),

		Hidden: lipgloss.NewStyle().
			Foreground(muted),

		Cursor: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),

		Discard: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")),

		Rank: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),

		Win: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),

		Lose: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),

		Tie: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(muted),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")),
	}
}
