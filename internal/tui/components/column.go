package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/types"
)

// ColumnProps describes how a column should be drawn
type ColumnProps struct {
	Column models.Column
	Width  int
	Height int // total box height, 0 for auto

	// Selected marks the column under the cursor
	Selected bool
	// SelectedCard is the card index under the cursor, -1 for none
	SelectedCard int
	// Dragging is the id of the card being dragged, if any
	Dragging types.CardID
	// DropTarget marks the column a dragged card would land in
	DropTarget bool
}

// RenderColumn renders a column header and its cards, scrolled so the
// selected card stays visible.
//
//	{Column Title} ({count})
//	▲ more above
//	{Card 1}
//	{Card 2}
//	▼ more below
func RenderColumn(p ColumnProps) string {
	header := TitleStyle.Render(fmt.Sprintf("%s (%d)", p.Column.Title, len(p.Column.Cards)))
	lines := []string{header}

	// inner width: border(2) + padding(2)
	cardWidth := max(p.Width-4, 8)

	if len(p.Column.Cards) == 0 {
		hint := "No cards"
		if p.DropTarget {
			hint = "Drop here"
		}
		lines = append(lines, "", SubtleStyle.Render(hint))
	} else {
		// border(2) + bottom padding(1) + header(1) + two indicator lines
		const columnOverhead = 6
		visible := len(p.Column.Cards)
		if p.Height > 0 {
			visible = max((p.Height-columnOverhead)/CardHeight, 1)
		}
		offset := scrollOffset(p.SelectedCard, visible, len(p.Column.Cards))
		end := min(offset+visible, len(p.Column.Cards))

		if offset > 0 {
			lines = append(lines, SubtleStyle.Render("▲ more above"))
		} else {
			lines = append(lines, "")
		}
		for i := offset; i < end; i++ {
			card := p.Column.Cards[i]
			lines = append(lines, RenderCard(card, cardWidth,
				p.Selected && i == p.SelectedCard,
				!p.Dragging.IsZero() && card.ID == p.Dragging))
		}
		if end < len(p.Column.Cards) {
			lines = append(lines, SubtleStyle.Render("▼ more below"))
		}
	}

	style := ColumnStyle.Width(p.Width)
	if p.Height > 0 {
		style = style.Height(p.Height)
	}
	switch {
	case p.DropTarget:
		style = style.BorderForeground(lipgloss.Color(scheme.DraggingBorder))
	case p.Selected:
		style = style.BorderForeground(lipgloss.Color(scheme.SelectedBorder))
	}
	return style.Render(strings.Join(lines, "\n"))
}

// scrollOffset returns the first visible index that keeps selected in view
func scrollOffset(selected, visible, total int) int {
	if selected < 0 || total <= visible {
		return 0
	}
	offset := max(selected-visible+1, 0)
	return min(offset, total-visible)
}
