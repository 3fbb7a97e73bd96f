// Package config resolves the active theme with explicit priority
// order: CLI flag > environment > .glimpse.yaml > built-in default.
// Resolution never fails; broken input degrades to defaults with a
// warning on stderr.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/dlt/pg-glimpse-sub001/pkg/design"
)

// CliFlags holds the values of command-line flags relevant to theming.
type CliFlags struct {
	ThemeName string
	NoColor   bool

	// Track whether flags were explicitly set by the user
	ThemeNameSet bool
	NoColorSet   bool
}

// ThemeColorsYAML is the on-disk shape of one theme's colors.
// Values are lipgloss color strings: names, hex, or 256-color numbers.
type ThemeColorsYAML struct {
	Title          string `yaml:"title"`
	BorderActive   string `yaml:"border_active"`
	BorderInactive string `yaml:"border_inactive"`
	Spark          string `yaml:"spark"`
	Text           string `yaml:"text"`
	Muted          string `yaml:"muted"`
}

// AppConfig represents the overall configuration from .glimpse.yaml.
type AppConfig struct {
	ActiveThemeName string                      `yaml:"active_theme"`
	NoColor         bool                        `yaml:"no_color"`
	Themes          map[string]*ThemeColorsYAML `yaml:"themes"`
}

// ConfigFileName is the file looked up in the working directory and
// the user config directory, in that order.
const ConfigFileName = ".glimpse.yaml"

// DefaultActiveThemeName is used when nothing selects a theme.
const DefaultActiveThemeName = "default"

// LoadConfig loads .glimpse.yaml, falling back to defaults when the
// file is missing or unreadable.
func LoadConfig() *AppConfig {
	appCfg := &AppConfig{
		ActiveThemeName: DefaultActiveThemeName,
		Themes:          make(map[string]*ThemeColorsYAML),
	}

	configPath := findConfigPath()
	if configPath == "" {
		return appCfg
	}

	yamlFile, err := os.ReadFile(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: error reading config file %s: %v. Using defaults.\n", configPath, err)
		}
		return appCfg
	}

	var yamlCfg AppConfig
	if err := yaml.Unmarshal(yamlFile, &yamlCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error unmarshalling config file %s: %v. Using defaults.\n", configPath, err)
		return appCfg
	}

	if yamlCfg.ActiveThemeName != "" {
		appCfg.ActiveThemeName = yamlCfg.ActiveThemeName
	}
	appCfg.NoColor = yamlCfg.NoColor
	for name, colors := range yamlCfg.Themes {
		if colors != nil {
			appCfg.Themes[name] = colors
		}
	}

	return appCfg
}

// findConfigPath returns the first existing config file location,
// or "" when none exists.
func findConfigPath() string {
	if _, err := os.Stat(ConfigFileName); err == nil {
		return ConfigFileName
	}
	userDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	p := filepath.Join(userDir, "glimpse", ConfigFileName)
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}

// ResolveTheme resolves the theme to render with.
//
// Priority, highest first: CLI flags, environment (GLIMPSE_THEME,
// GLIMPSE_NO_COLOR, NO_COLOR), config file, built-in default. NoColor
// from any source forces the monochrome theme regardless of name.
func ResolveTheme(flags CliFlags) *design.Theme {
	appCfg := LoadConfig()

	name := appCfg.ActiveThemeName
	if env := os.Getenv("GLIMPSE_THEME"); env != "" {
		name = env
	}
	if flags.ThemeNameSet && flags.ThemeName != "" {
		name = flags.ThemeName
	}

	noColor := appCfg.NoColor
	if os.Getenv("NO_COLOR") != "" || os.Getenv("GLIMPSE_NO_COLOR") != "" {
		noColor = true
	}
	if flags.NoColorSet {
		noColor = flags.NoColor
	}

	if noColor {
		return design.MonochromeTheme()
	}
	return themeByName(appCfg, name)
}

// themeByName maps a theme name to a built theme: file-defined themes
// first, then built-ins, then the default with a warning.
func themeByName(appCfg *AppConfig, name string) *design.Theme {
	if colors, ok := appCfg.Themes[name]; ok {
		return design.NewTheme(name, themeColors(colors))
	}

	switch name {
	case "default":
		return design.DefaultTheme()
	case "monochrome":
		return design.MonochromeTheme()
	}

	fmt.Fprintf(os.Stderr, "Warning: unknown theme %q, using default.\n", name)
	return design.DefaultTheme()
}

// themeColors converts the YAML color shape into design colors.
// Absent fields inherit the default theme's value rather than going
// colorless, so partial overrides stay readable.
func themeColors(y *ThemeColorsYAML) design.ThemeColors {
	base := design.DefaultTheme().Colors

	pick := func(v string, fallback lipgloss.Color) lipgloss.Color {
		if v == "" {
			return fallback
		}
		return lipgloss.Color(v)
	}

	return design.ThemeColors{
		Title:          pick(y.Title, base.Title),
		BorderActive:   pick(y.BorderActive, base.BorderActive),
		BorderInactive: pick(y.BorderInactive, base.BorderInactive),
		Spark:          pick(y.Spark, base.Spark),
		Text:           pick(y.Text, base.Text),
		Muted:          pick(y.Muted, base.Muted),
	}
}
