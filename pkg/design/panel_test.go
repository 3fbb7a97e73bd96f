package design

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestPanelBlock_Label_PadsTitle(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"plain title", "Replication Lag", " Replication Lag "},
		{"empty title", "", "  "},
		{"title with spaces", "WAL I/O", " WAL I/O "},
		{"unicode title", "Wraparound ⚠", " Wraparound ⚠ "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := PanelBlock(theme, tt.title)
			assert.Equal(t, tt.want, frame.Label)
		})
	}
}

func TestPanelBlock_UsesRoundedBorder(t *testing.T) {
	t.Parallel()

	frame := PanelBlock(DefaultTheme(), "Wait Events")
	assert.Equal(t, lipgloss.RoundedBorder(), frame.Border)
}

func TestPanelBlock_AppliesActiveEmphasis(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	frame := PanelBlock(theme, "Vacuum Progress")

	// The frame carries the active border style unconditionally; any
	// focus distinction is the host's to layer.
	assert.Equal(t, theme.Styles.BorderActive.GetBorderTopForeground(),
		frame.BorderStyle.GetBorderTopForeground())
}

func TestPanelFrame_Render_DrawsAllFourBorders(t *testing.T) {
	t.Parallel()

	// Monochrome keeps the output free of escape codes so the border
	// runes are directly inspectable.
	frame := PanelBlock(MonochromeTheme(), "Table Stats")
	out := frame.Render("rows: 120", 24)

	assert.Contains(t, out, "╭")
	assert.Contains(t, out, "╮")
	assert.Contains(t, out, "╰")
	assert.Contains(t, out, "╯")
	assert.Contains(t, out, "│")
	assert.Contains(t, out, "─")
	assert.Contains(t, out, " Table Stats ")
	assert.Contains(t, out, "rows: 120")
}

func TestPanelFrame_Render_EmptyTitle(t *testing.T) {
	t.Parallel()

	frame := PanelBlock(MonochromeTheme(), "")
	out := frame.Render("", 10)

	assert.Contains(t, out, "╭")
	assert.Contains(t, out, "╯")

	lines := strings.Split(out, "\n")
	assert.GreaterOrEqual(t, len(lines), 3, "top border, label line, bottom border")
}

func TestFitTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		max   int
		want  string
	}{
		{"fits", "WAL I/O", 10, "WAL I/O"},
		{"exact", "Locks", 5, "Locks"},
		{"truncated", "Statement Statistics", 10, "Statement…"},
		{"zero budget", "Anything", 0, ""},
		{"negative budget", "Anything", -3, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FitTitle(tt.title, tt.max))
		})
	}
}
