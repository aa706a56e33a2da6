package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tiles/internal/registry"
	"github.com/vovakirdan/tui-tiles/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForStats = 84  // Below this the stats panel moves under the table
	statsWidth       = 24  // Width of the stats panel
	maxScores        = 100 // Max runs to load per mode
)

var (
	sbTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	sbMutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	sbActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	sbPanelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PrevMode, k.NextMode, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.PrevMode, k.NextMode},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		NextMode: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/tab", "next mode"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←", "prev mode"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the best runs and aggregate stats of each mode.
type ScoreboardModel struct {
	modes     []registry.GameInfo
	cursor    int
	store     *storage.Store
	scores    []storage.ScoreEntry
	stats     *storage.GameStats
	loadErr   error
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard showing the first registered mode.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.load()
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForStats
}

// newTable builds the runs table sized for the current layout.
func (m ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 8},
		{Title: "Tile", Width: 6},
		{Title: "Moves", Width: 6},
		{Title: "Won", Width: 4},
		{Title: "Date", Width: 12},
	}

	// Table height leaves room for title, tabs, borders and help
	height := m.height - 9
	if !m.wide() {
		height -= 4 // Stats line under the table
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads runs and stats for the selected mode.
func (m *ScoreboardModel) load() {
	m.scores, m.stats, m.loadErr = nil, nil, nil
	if m.store != nil && len(m.modes) > 0 {
		id := m.modes[m.cursor].ID
		m.scores, m.loadErr = m.store.TopScores(id, maxScores)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.GetGameStats(id)
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		won := ""
		if s.Won {
			won = "yes"
		}
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(s.Score),
			strconv.Itoa(s.MaxTile),
			strconv.Itoa(s.Moves),
			won,
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextMode):
			m.selectMode(m.cursor + 1)
			return m, nil

		case key.Matches(msg, m.keys.PrevMode):
			m.selectMode(m.cursor - 1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// selectMode moves the cursor to mode i, wrapping around.
func (m *ScoreboardModel) selectMode(i int) {
	if len(m.modes) == 0 {
		return
	}
	m.cursor = (i + len(m.modes)) % len(m.modes)
	m.load()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(sbTitleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n")

	runs := sbPanelStyle.Render(m.renderRuns())
	if m.wide() {
		stats := sbPanelStyle.Width(statsWidth).Render(m.renderStats())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, runs, "  ", stats))
	} else {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, runs, sbMutedStyle.Render(m.renderStats())))
	}

	b.WriteString("\n")
	b.WriteString(sbMutedStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderTabs renders one tab per mode with the selected one highlighted.
func (m ScoreboardModel) renderTabs() string {
	tabs := make([]string, len(m.modes))
	for i, mode := range m.modes {
		if i == m.cursor {
			tabs[i] = sbActiveStyle.Render(mode.Title)
		} else {
			tabs[i] = sbMutedStyle.Render(" " + mode.Title + " ")
		}
	}
	return strings.Join(tabs, " ")
}

// renderRuns renders the table or a placeholder.
func (m ScoreboardModel) renderRuns() string {
	placeholder := sbMutedStyle.Italic(true).Padding(2, 4)
	switch {
	case m.store == nil:
		return placeholder.Render("Scores are not being saved.")
	case m.loadErr != nil:
		return placeholder.Render("Could not load scores.")
	case len(m.scores) == 0:
		return placeholder.Render("No runs recorded yet.\nFinish a game to set a high score!")
	}
	return m.table.View()
}

// renderStats renders the aggregate numbers for the selected mode.
func (m ScoreboardModel) renderStats() string {
	st := m.stats
	if st == nil || st.GamesCount == 0 {
		return "No games played"
	}
	lines := []string{
		fmt.Sprintf("Games:     %d", st.GamesCount),
		fmt.Sprintf("Wins:      %d", st.Wins),
		fmt.Sprintf("Best:      %d", st.HighScore),
		fmt.Sprintf("Best tile: %d", st.BestTile),
		fmt.Sprintf("Average:   %.0f", st.AvgScore),
		"Last:      " + st.LastPlayed.Format("Jan 02 15:04"),
	}
	return strings.Join(lines, "\n")
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard as its own program.
// goBack is false when the user quit instead of going back.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
