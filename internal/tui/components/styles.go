// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/kanban/internal/config/colors"
)

// These are cached to avoid recomputing on every redraw.
var (
	// compared to the defaults, these feel like
	// they take up less space
	activeTabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      " ",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┘",
		BottomRight: "└",
	}

	tabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      "─",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┴",
		BottomRight: "┴",
	}

	// current scheme, kept for styles derived at render time
	scheme colors.ColorScheme

	TabStyle       lipgloss.Style
	ActiveTabStyle lipgloss.Style
	TabGapStyle    lipgloss.Style

	// ColumnStyle defines the appearance of board columns
	ColumnStyle lipgloss.Style

	// CardStyle defines the appearance of individual cards
	CardStyle lipgloss.Style

	// TitleStyle defines the appearance of column headers
	TitleStyle lipgloss.Style

	SubtleStyle lipgloss.Style

	// CreateInputBoxStyle defines the base style for creation dialogs
	CreateInputBoxStyle lipgloss.Style

	// EditInputBoxStyle defines the base style for rename dialogs
	EditInputBoxStyle lipgloss.Style

	// DeleteConfirmBoxStyle defines the base style for deletion confirmations
	DeleteConfirmBoxStyle lipgloss.Style

	// HelpBoxStyle defines the base style for the help screen
	HelpBoxStyle lipgloss.Style

	InfoBannerStyle    lipgloss.Style
	WarningBannerStyle lipgloss.Style
	ErrorBannerStyle   lipgloss.Style

	StatusBarStyle lipgloss.Style
)

func init() {
	InitStyles(*colors.Default())
}

// InitStyles initializes all styles with the given color scheme
func InitStyles(c colors.ColorScheme) {
	scheme = c

	TabStyle = lipgloss.NewStyle().
		Border(tabBorder, true).
		BorderForeground(lipgloss.Color(c.Accent)).
		Padding(0, 1)

	ActiveTabStyle = TabStyle.Border(activeTabBorder, true).Bold(true)

	TabGapStyle = TabStyle.
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false)

	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.ColumnBorder)).
		Padding(0, 1, 1, 1)

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.CardBorder)).
		Foreground(lipgloss.Color(c.Normal)).
		Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Title))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Subtle)).
		Italic(true)

	dialog := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2)

	CreateInputBoxStyle = dialog.BorderForeground(lipgloss.Color(c.Accent))
	EditInputBoxStyle = dialog.BorderForeground(lipgloss.Color(c.SelectedBorder))
	DeleteConfirmBoxStyle = dialog.BorderForeground(lipgloss.Color(c.Error))
	HelpBoxStyle = dialog.BorderForeground(lipgloss.Color(c.SelectedBorder))

	banner := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	InfoBannerStyle = banner.Foreground(lipgloss.Color(c.Accent))
	WarningBannerStyle = banner.Foreground(lipgloss.Color(c.DraggingBorder))
	ErrorBannerStyle = banner.Foreground(lipgloss.Color(c.Error))

	StatusBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Subtle))
}
