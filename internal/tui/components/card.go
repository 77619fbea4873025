package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/kanban/internal/models"
)

// CardHeight is the rendered height of a card: one title line plus border
const CardHeight = 3

// RenderCard renders a single card. A dragged card keeps its place in the
// source column, highlighted, until it is dropped.
//
//	╭─────────────────────╮
//	│ {Card Title}        │
//	╰─────────────────────╯
func RenderCard(card models.Card, width int, selected, dragging bool) string {
	style := CardStyle.Width(max(width, 6))
	switch {
	case dragging:
		style = style.BorderForeground(lipgloss.Color(scheme.DraggingBorder)).Bold(true)
	case selected:
		style = style.BorderForeground(lipgloss.Color(scheme.SelectedBorder))
	}

	// border + padding take 4 cells
	title := truncate(card.Title, max(width-4, 1))
	if title == "" {
		title = SubtleStyle.Render("untitled")
	}
	if dragging {
		title = "↕ " + truncate(card.Title, max(width-6, 1))
	}
	return style.Render(title)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 1 {
		return "…"
	}
	return string(runes[:n-1]) + "…"
}
