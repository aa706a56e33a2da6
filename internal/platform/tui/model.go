package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tiles/internal/advisor"
	"github.com/vovakirdan/tui-tiles/internal/board"
	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/games/t2048"
	"github.com/vovakirdan/tui-tiles/internal/registry"
	"github.com/vovakirdan/tui-tiles/internal/storage"
)

// Deps are the collaborators a game model uses. Every field is optional.
type Deps struct {
	Store   *storage.Store
	Advisor advisor.Advisor
	AIModel string
	Logger  *log.Logger
}

// Optional game capabilities the model uses when present.
type (
	hintTarget interface {
		Grid() board.Grid
		Move(dir board.Direction) (bool, int)
		SetMessage(msg string)
	}
	bestSetter interface {
		SetBest(best int)
	}
	resizer interface {
		Resize(w, h int)
	}
	snapshotter interface {
		Snapshot() t2048.Snapshot
	}
	levelStarter interface {
		StartAt(level int)
	}
)

// adviceMsg carries the advisor's answer back into the update loop.
type adviceMsg struct {
	model string
	dir   board.Direction
	ok    bool
	err   error
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	deps       Deps
	aiModel    string
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	cancelHint context.CancelFunc
	thinking   bool // Waiting for the advisor; input is ignored
	standalone bool // Back quits the program instead of returning to a menu
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current run has been saved
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, deps Deps) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}
	aiModel := deps.AIModel
	if aiModel == "" {
		aiModel = advisor.DefaultModel
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		deps:       deps,
		aiModel:    aiModel,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.applyBest()
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case adviceMsg:
		return m.handleAdvice(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		return m.quit()
	}

	// Everything but quit waits for the advisor
	if m.thinking {
		return m, nil
	}

	switch action {
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			if m.standalone {
				return m.quit()
			}
			m.saveRun()
			m.backToMenu = true
		}
		return m, nil

	case core.ActionHint:
		return m.requestHint()

	case core.ActionNextModel:
		m.aiModel = advisor.NextModel(m.aiModel)
		m.setMessage(fmt.Sprintf("AI model: %s", m.aiModel))
		return m, nil

	case core.ActionRestart:
		m.inputFrame.Set(core.ActionRestart)
		return m, nil

	case core.ActionNone:
		return m, nil
	}

	m.inputFrame.Set(action)
	return m, nil
}

// quit saves a run with points and stops the program.
func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.cancelHint != nil {
		m.cancelHint()
	}
	m.saveRun()
	m.quitting = true
	return m, tea.Quit
}

// requestHint starts an asynchronous advisor call on a copy of the grid.
func (m Model) requestHint() (tea.Model, tea.Cmd) {
	target, ok := m.game.(hintTarget)
	if !ok || m.gameState.GameOver || m.gameState.Paused {
		return m, nil
	}
	if m.deps.Advisor == nil {
		target.SetMessage("AI hint unavailable: set OPENAI_API_KEY")
		return m, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancelHint = cancel
	m.thinking = true
	target.SetMessage(fmt.Sprintf("Asking %s...", m.aiModel))

	adv := m.deps.Advisor
	grid := target.Grid()
	model := m.aiModel
	return m, func() tea.Msg {
		defer cancel()
		dir, ok, err := adv.Advise(ctx, grid, model)
		return adviceMsg{model: model, dir: dir, ok: ok, err: err}
	}
}

// handleAdvice applies the advisor's answer through the same path as keys.
func (m Model) handleAdvice(msg adviceMsg) (tea.Model, tea.Cmd) {
	m.thinking = false
	m.cancelHint = nil

	target, ok := m.game.(hintTarget)
	if !ok {
		return m, nil
	}

	switch {
	case msg.err != nil:
		m.deps.Logger.Warn("advisor failed", "model", msg.model, "error", msg.err)
		target.SetMessage(msg.err.Error())
	case !msg.ok:
		target.SetMessage(fmt.Sprintf("%s gave no answer", msg.model))
	default:
		m.deps.Logger.Info("advisor move", "model", msg.model, "dir", msg.dir)
		if moved, _ := target.Move(msg.dir); moved {
			target.SetMessage(fmt.Sprintf("%s played %s", msg.model, msg.dir))
		}
		m.gameState = m.game.State()
		m.saveIfOver()
	}
	return m, nil
}

// setMessage shows a status line if the game supports one.
func (m Model) setMessage(msg string) {
	if target, ok := m.game.(hintTarget); ok {
		target.SetMessage(msg)
	}
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}

	// Games without Resize are restarted with the new dimensions
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// A restart abandons the current run; keep it if it scored
	if m.inputFrame.Has(core.ActionRestart) {
		m.saveRun()
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.applyBest()
		m.gameState = m.game.State()
		m.runSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.saveIfOver()

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveIfOver records the run once when the game ends.
func (m *Model) saveIfOver() {
	if m.gameState.GameOver {
		m.saveRun()
	}
}

// saveRun records the current run once if it scored.
func (m *Model) saveRun() {
	if m.runSaved {
		return
	}
	state := m.game.State()
	if state.Score <= 0 {
		return
	}
	m.runSaved = true

	if sn, ok := m.game.(snapshotter); ok {
		snap := sn.Snapshot()
		m.deps.Logger.Debug("final board", "game", m.game.ID(), "state", snap.State, "level", snap.Level, "grid", snap.Grid)
	}

	if m.deps.Store == nil {
		return
	}
	id, err := m.deps.Store.SaveRun(storage.Run{
		GameID:  m.game.ID(),
		Score:   state.Score,
		MaxTile: state.MaxTile,
		Moves:   state.Moves,
		Won:     state.Won,
	})
	if err != nil {
		m.deps.Logger.Error("could not save run", "game", m.game.ID(), "error", err)
		return
	}
	m.deps.Logger.Info("run saved", "id", id, "game", m.game.ID(), "score", state.Score, "max_tile", state.MaxTile)
}

// applyBest passes the stored high score to games that display it.
func (m Model) applyBest() {
	bs, ok := m.game.(bestSetter)
	if !ok || m.deps.Store == nil {
		return
	}
	best, err := m.deps.Store.HighScore(m.game.ID())
	if err != nil {
		m.deps.Logger.Warn("could not read high score", "error", err)
		return
	}
	bs.SetBest(best)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".tiles", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	status := "AI: off"
	if m.deps.Advisor != nil {
		status = "AI: " + m.aiModel
		if m.thinking {
			status += " (thinking)"
		}
	}
	m.screen.DrawTextColored(1, m.screen.Height()-1, status, core.ColorGray)

	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, deps Deps) error {
	model := NewModel(game, cfg, deps)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
