// Package design builds the decorative chrome for dashboard panels.
//
// This file provides the panel frame builder. A PanelFrame is a plain
// descriptor: the host rendering surface owns the screen buffer and
// decides where the frame is drawn. Render is a convenience for hosts
// that compose strings instead of writing cells.
package design

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// PanelFrame describes the chrome of one dashboard panel: the padded
// title label, the border character set, and the styles to draw them
// with. It holds no mutable state and is recomputed on every redraw.
type PanelFrame struct {
	Label       string          // title with one space of padding each side
	TitleStyle  lipgloss.Style  // applied to Label by the host
	Border      lipgloss.Border // rounded, all four sides
	BorderStyle lipgloss.Style  // active emphasis, border already attached
}

// PanelBlock builds the frame descriptor for a titled panel.
//
// The active border emphasis is applied unconditionally; there is no
// inactive variant in this entry point. Hosts that need focus-dependent
// styling layer it themselves (the theme carries BorderInactive for
// that), rather than mutating shared theme state between calls.
func PanelBlock(theme *Theme, title string) PanelFrame {
	return PanelFrame{
		Label:       " " + title + " ",
		TitleStyle:  theme.Styles.Title,
		Border:      theme.Border,
		BorderStyle: theme.Styles.BorderActive,
	}
}

// Render draws content inside the frame at the given outer width.
// Build complete content, then apply the border style in one pass --
// lipgloss handles the corners and side runs.
func (f PanelFrame) Render(content string, width int) string {
	parts := []string{f.TitleStyle.Render(f.Label)}
	if content != "" {
		parts = append(parts, content)
	}

	inner := width - 2 // borders
	if inner < 0 {
		inner = 0
	}
	return f.BorderStyle.Width(inner).Render(strings.Join(parts, "\n"))
}

// FitTitle truncates a title to at most max display cells, appending
// an ellipsis when it shortens. Wide runes count per cell. Hosts call
// this before PanelBlock when column budgets are tight.
func FitTitle(title string, max int) string {
	if max <= 0 {
		return ""
	}
	if runewidth.StringWidth(title) <= max {
		return title
	}
	return runewidth.Truncate(title, max, "…")
}
