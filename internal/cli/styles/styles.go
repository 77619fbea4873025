package styles

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/kanban/internal/config/colors"
	"github.com/thenoetrevino/kanban/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "ID:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For column headers

	// Status styles
	ErrorStyle lipgloss.Style
)

func init() {
	Init(*colors.Default())
}

// Init initializes all CLI styles with the given color scheme
func Init(scheme colors.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Accent)).
		Bold(true).
		MarginTop(1)

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Error)).
		Padding(0, 1)
}

// RenderBoard renders a board as a bordered card with one section per column
func RenderBoard(board models.Board) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(board.Title))
	b.WriteString("\n")
	b.WriteString(LabelStyle.Render("ID: "))
	b.WriteString(SubtitleStyle.Render(board.ID.String()))

	if len(board.Columns) == 0 {
		b.WriteString("\n\n")
		b.WriteString(SubtitleStyle.Render("No columns yet"))
		return CardStyle.Render(b.String())
	}

	for _, col := range board.Columns {
		b.WriteString("\n")
		b.WriteString(SectionStyle.Render(fmt.Sprintf("%s (%d)", col.Title, len(col.Cards))))
		b.WriteString("  ")
		b.WriteString(SubtitleStyle.Render(col.ID.String()))
		if len(col.Cards) == 0 {
			b.WriteString("\n  ")
			b.WriteString(SubtitleStyle.Render("empty"))
			continue
		}
		for _, card := range col.Cards {
			b.WriteString("\n  • ")
			b.WriteString(ValueStyle.Render(card.Title))
			b.WriteString("  ")
			b.WriteString(SubtitleStyle.Render(card.ID.String()))
		}
	}

	return CardStyle.Render(b.String())
}

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}
