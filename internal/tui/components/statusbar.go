package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// StatusBarProps holds the status bar text
type StatusBarProps struct {
	Width int
	// Left replaces the default title, e.g. with drag instructions
	Left string
}

// RenderStatusBar renders a status bar with left and right aligned text
func RenderStatusBar(props StatusBarProps) string {
	leftText := props.Left
	if leftText == "" {
		leftText = "Kanban"
	}
	rightText := "press ? for help"

	leftRendered := StatusBarStyle.Render(leftText)
	rightRendered := StatusBarStyle.Render(rightText)

	gapWidth := max(props.Width-lipgloss.Width(leftRendered)-lipgloss.Width(rightRendered), 1)
	gap := strings.Repeat(" ", gapWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}
