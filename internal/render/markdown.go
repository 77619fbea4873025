// Package render turns boards into markdown documents and renders them for
// the terminal with glamour.
package render

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/kanban/internal/models"
)

// DefaultWidth is the word-wrap width used when none is given
const DefaultWidth = 80

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// BoardMarkdown builds a markdown document: the board as H1, one H2 per
// column with its card count, one bullet per card.
func BoardMarkdown(board models.Board) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", escape(board.Title))

	if len(board.Columns) == 0 {
		b.WriteString("_No columns yet._\n")
		return b.String()
	}

	for _, col := range board.Columns {
		fmt.Fprintf(&b, "## %s (%d)\n\n", escape(col.Title), len(col.Cards))
		if len(col.Cards) == 0 {
			b.WriteString("_empty_\n\n")
			continue
		}
		for _, card := range col.Cards {
			title := escape(card.Title)
			if title == "" {
				title = "_untitled_"
			}
			fmt.Fprintf(&b, "- %s\n", title)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Terminal renders markdown for display. If glamour fails the markdown is
// returned unchanged.
func Terminal(markdown string, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	renderer, err := getRenderer(width)
	if err != nil {
		return markdown
	}
	out, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return strings.TrimSpace(out)
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"#", `\#`,
	"[", `\[`,
	"]", `\]`,
)

// escape keeps user titles from being read as markdown syntax
func escape(s string) string {
	return markdownEscaper.Replace(s)
}
