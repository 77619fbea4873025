package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// RenderTabs renders one tab per board title. selectedIdx may be -1 when no
// board is active. The notification, if any, sits at the right end of the
// tab gap.
//
//	╭──────╮ ╭──────╮                      [Notification]
//	│ Tab1 │ │ Tab2 │──────────────────────
func RenderTabs(titles []string, selectedIdx int, width int, notification string) string {
	if len(titles) == 0 {
		titles = []string{"no boards"}
		selectedIdx = -1
	}

	rendered := make([]string, 0, len(titles))
	for i, title := range titles {
		if i == selectedIdx {
			rendered = append(rendered, ActiveTabStyle.Render(title))
		} else {
			rendered = append(rendered, TabStyle.Render(title))
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)

	gapWidth := max(width-lipgloss.Width(row)-lipgloss.Width(notification)-2, 0)
	gap := TabGapStyle.Render(strings.Repeat(" ", gapWidth))

	if notification != "" {
		return lipgloss.JoinHorizontal(lipgloss.Bottom, row, gap, notification)
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, row, gap)
}
