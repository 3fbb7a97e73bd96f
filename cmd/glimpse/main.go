// Command glimpse previews pg-glimpse panel chrome and sparklines with
// synthetic counters standing in for the real collectors. The encoding
// core stays pure; the event loop lives here, in the host.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dlt/pg-glimpse-sub001/internal/config"
	"github.com/dlt/pg-glimpse-sub001/pkg/design"
	"github.com/dlt/pg-glimpse-sub001/pkg/spark"
)

// metricKeys name the synthetic feeds, one per preview panel. Keys use
// the collector naming convention; display titles are derived below.
var metricKeys = []string{
	"blocking_sessions",
	"replication_lag",
	"wal_io",
	"wait_events",
	"vacuum_progress",
	"statement_stats",
}

// historyCap bounds the per-feed sample history. The encoder windows
// to the panel width anyway; this just stops unbounded growth.
const historyCap = 240

const tickInterval = 500 * time.Millisecond

func main() {
	themeName := flag.String("theme", "", "theme name (default, monochrome, or a .glimpse.yaml theme)")
	noColor := flag.Bool("no-color", false, "disable colors")
	flag.Parse()

	flags := config.CliFlags{
		ThemeName:    *themeName,
		NoColor:      *noColor,
		ThemeNameSet: *themeName != "",
		NoColorSet:   *noColor,
	}
	theme := config.ResolveTheme(flags)

	p := tea.NewProgram(newModel(theme), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "glimpse: %v\n", err)
		os.Exit(1)
	}
}

type keyMap struct {
	Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding { return []key.Binding{k.Quit} }

func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Quit}} }

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type tickMsg struct{}

type model struct {
	theme   *design.Theme
	help    help.Model
	rng     *rand.Rand
	samples map[string][]int
	width   int
}

func newModel(theme *design.Theme) model {
	m := model{
		theme:   theme,
		help:    help.New(),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		samples: make(map[string][]int, len(metricKeys)),
		width:   initialWidth(),
	}
	for _, k := range metricKeys {
		m.samples[k] = nil
	}
	return m
}

// initialWidth covers the frames before the first WindowSizeMsg.
func initialWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

func (m model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case tickMsg:
		for _, k := range metricKeys {
			m.samples[k] = advance(m.rng, m.samples[k])
		}
		return m, tick()
	}
	return m, nil
}

// advance appends one synthetic counter step: a non-negative random
// walk with occasional spikes, roughly what per-interval pg counters
// look like.
func advance(rng *rand.Rand, history []int) []int {
	last := 0
	if len(history) > 0 {
		last = history[len(history)-1]
	}

	next := last + rng.Intn(7) - 3
	if rng.Intn(20) == 0 {
		next += 25 // spike
	}
	if next < 0 {
		next = 0
	}

	history = append(history, next)
	if len(history) > historyCap {
		history = history[len(history)-historyCap:]
	}
	return history
}

// title derives a display title from a metric key: "wal_io" -> "Wal Io".
func title(key string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(key, "_", " "))
}

func (m model) View() string {
	const columns = 2

	panelWidth := m.width / columns
	if panelWidth < 12 {
		panelWidth = 12
	}
	inner := panelWidth - 4 // borders + one cell of breathing room each side

	var cells []string
	for _, k := range metricKeys {
		cells = append(cells, m.renderPanel(k, panelWidth, inner))
	}

	var rows []string
	for i := 0; i < len(cells); i += columns {
		end := i + columns
		if end > len(cells) {
			end = len(cells)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[i:end]...))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return body + "\n" + m.help.View(keys)
}

func (m model) renderPanel(metricKey string, panelWidth, inner int) string {
	history := m.samples[metricKey]

	line := m.theme.Styles.Spark.Render(spark.Render(history, inner))

	latest := 0
	if len(history) > 0 {
		latest = history[len(history)-1]
	}
	caption := m.theme.Styles.TextMuted.Render(fmt.Sprintf("last: %d", latest))

	frame := design.PanelBlock(m.theme, design.FitTitle(title(metricKey), inner))
	return frame.Render(line+"\n"+caption, panelWidth)
}
