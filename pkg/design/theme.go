// Package design builds the decorative chrome for dashboard panels.
//
// Colors use lipgloss.Color format (color names, hex, or 256-color
// numbers). Styles are composed with lipgloss methods, not manual ANSI
// escapes. A Theme is an explicit value passed into the builders; the
// package keeps no ambient styling state.
package design

import "github.com/charmbracelet/lipgloss"

// Theme defines all visual styling for panel chrome.
type Theme struct {
	Name string

	// Semantic colors for chrome elements
	Colors ThemeColors

	// Pre-built styles computed from colors
	Styles ThemeStyles

	// Border character set shared by every panel
	Border lipgloss.Border
}

// ThemeColors defines semantic color values.
// All colors use lipgloss format, NOT raw ANSI escapes.
type ThemeColors struct {
	Title          lipgloss.Color // Panel title text
	BorderActive   lipgloss.Color // Border emphasis for panels
	BorderInactive lipgloss.Color // Kept for hosts that layer focus styling
	Spark          lipgloss.Color // Sparkline glyph runs
	Text           lipgloss.Color // Normal panel text
	Muted          lipgloss.Color // De-emphasized panel text
}

// ThemeStyles provides pre-built lipgloss styles.
// These are computed once from colors and reused on every redraw.
type ThemeStyles struct {
	Title          lipgloss.Style
	BorderActive   lipgloss.Style
	BorderInactive lipgloss.Style
	Spark          lipgloss.Style
	TextNormal     lipgloss.Style
	TextMuted      lipgloss.Style
}

// NewTheme creates a theme with computed styles from colors.
func NewTheme(name string, colors ThemeColors) *Theme {
	t := &Theme{
		Name:   name,
		Colors: colors,
		Border: lipgloss.RoundedBorder(),
	}

	t.Styles = ThemeStyles{
		Title: lipgloss.NewStyle().
			Foreground(colors.Title).
			Bold(true),

		BorderActive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.BorderActive),

		BorderInactive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.BorderInactive),

		Spark: lipgloss.NewStyle().
			Foreground(colors.Spark),

		TextNormal: lipgloss.NewStyle().
			Foreground(colors.Text),

		TextMuted: lipgloss.NewStyle().
			Foreground(colors.Muted),
	}

	return t
}

// DefaultTheme returns the default pg-glimpse theme.
func DefaultTheme() *Theme {
	return NewTheme(
		"default",
		ThemeColors{
			Title:          lipgloss.Color("39"),  // Bright blue
			BorderActive:   lipgloss.Color("111"), // Pale blue
			BorderInactive: lipgloss.Color("238"), // Very dark gray
			Spark:          lipgloss.Color("120"), // Light green
			Text:           lipgloss.Color("252"), // Light gray
			Muted:          lipgloss.Color("242"), // Dark gray
		},
	)
}

// MonochromeTheme returns a theme with no colors.
// Border runes are kept so panels still read as bounded regions.
func MonochromeTheme() *Theme {
	return NewTheme(
		"monochrome",
		ThemeColors{
			Title:          lipgloss.Color(""),
			BorderActive:   lipgloss.Color(""),
			BorderInactive: lipgloss.Color(""),
			Spark:          lipgloss.Color(""),
			Text:           lipgloss.Color(""),
			Muted:          lipgloss.Color(""),
		},
	)
}
