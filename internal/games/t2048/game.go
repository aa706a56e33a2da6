package t2048

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/vovakirdan/tui-tiles/internal/board"
	"github.com/vovakirdan/tui-tiles/internal/config"
	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic  Mode = "classic"
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// Registered game IDs.
const (
	IDClassic  = "2048"
	IDCampaign = "2048_campaign"
	IDEndless  = "2048_endless"
)

// levelClearDelay is how many ticks the level-cleared banner stays up.
const levelClearDelay = 120

// Game implements the 2048 puzzle game.
type Game struct {
	mode Mode
	rng  *rand.Rand
	tick uint64

	cfg    config.BoardConfig
	engine *board.Board
	grid   board.Grid // Last grid reported by the engine

	score      int
	best       int
	moves      int
	levelIndex int // Current level (0-indexed)
	startLevel int // Campaign level to start at on next Reset (1-indexed, 0 = first)
	target     int // Current win tile, 0 when disabled
	message    string

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver        bool
	levelCleared    bool
	won             bool
	paused          bool
	tooSmall        bool
	levelClearTicks int
}

// Board parameters shared by every new game.
var (
	settingsMu  sync.Mutex
	boardConfig = config.DefaultBoardConfig()
)

// SetBoardConfig sets the board parameters used by games reset afterwards.
func SetBoardConfig(cfg config.BoardConfig) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	boardConfig = cfg
}

// BoardConfig returns the board parameters new games will use.
func BoardConfig() config.BoardConfig {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	return boardConfig
}

// New creates a classic 2048 game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewCampaign creates a campaign mode 2048 game.
func NewCampaign() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates an endless mode 2048 game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New()
	})
	registry.Register(IDCampaign, func() registry.Game {
		return NewCampaign()
	})
	registry.Register(IDEndless, func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	switch g.mode {
	case ModeCampaign:
		return IDCampaign
	case ModeEndless:
		return IDEndless
	default:
		return IDClassic
	}
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.mode {
	case ModeCampaign:
		return "2048 (Campaign)"
	case ModeEndless:
		return "2048 (Endless)"
	default:
		return "2048"
	}
}

// StartAt selects the campaign level (1-10) the next Reset starts from.
// 0 means start from the beginning. The choice is used once.
func (g *Game) StartAt(level int) {
	g.startLevel = level
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.cfg = BoardConfig()
	g.tick = 0
	g.score = 0
	g.moves = 0
	g.message = ""
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.levelCleared = false
	g.won = false
	g.paused = false
	g.levelClearTicks = 0

	g.levelIndex = 0
	if g.mode == ModeCampaign && g.startLevel > 0 && g.startLevel <= LevelCount() {
		g.levelIndex = g.startLevel - 1
	}
	g.startLevel = 0 // Reset after use

	g.target = g.levelTarget()
	g.engine = g.newEngine(g.target)
	g.engine.Restart()

	g.checkScreenSize()
}

// levelTarget returns the win tile for the current mode and level.
func (g *Game) levelTarget() int {
	switch g.mode {
	case ModeEndless:
		return 0
	case ModeCampaign:
		level := GetLevel(g.levelIndex)
		if level == nil {
			level = GetLevel(LevelCount() - 1)
		}
		return level.Target
	default:
		return g.cfg.WinNumber
	}
}

// newEngine builds an engine for the given win tile with callbacks bound to this game.
func (g *Game) newEngine(target int) *board.Board {
	settings := g.cfg.Settings()
	settings.WinNumber = target
	settings.OnStateChanged = func(grid board.Grid) {
		g.grid = grid
	}
	settings.OnLost = func() {
		g.gameOver = true
	}
	settings.OnWin = func() {
		if g.mode == ModeCampaign {
			g.levelCleared = true
			g.levelClearTicks = 0
			return
		}
		g.won = true
	}
	return board.New(settings, g.rng)
}

// Resize updates the screen dimensions.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	boardW, boardH := boardDimensions(g.cfg.Size)
	minW := boardW + 4
	minH := boardH + hudHeight + footerHeight + 1
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// Handle window size check
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle pause
	if in.Has(core.ActionPause) && !g.finished() {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Handle level cleared banner
	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= levelClearDelay {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	// Restart is handled by the platform
	if g.finished() {
		return core.StepResult{State: g.State()}
	}

	dir, ok := directionFor(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	moved, _ := g.Move(dir)
	return core.StepResult{State: g.State(), Moved: moved}
}

// directionFor returns the first move action held in the frame.
func directionFor(in core.InputFrame) (board.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return board.Up, true
	case in.Has(core.ActionDown):
		return board.Down, true
	case in.Has(core.ActionLeft):
		return board.Left, true
	case in.Has(core.ActionRight):
		return board.Right, true
	}
	return board.Left, false
}

// Move merges the board in the given direction. It is the single entry
// point for keyboard and AI moves. Returns whether anything moved and the
// points scored.
func (g *Game) Move(dir board.Direction) (bool, int) {
	if g.engine == nil || g.finished() || g.paused || g.levelCleared {
		return false, 0
	}

	wasWon := g.won
	ok, points := g.engine.Merge(dir)
	if !ok {
		if !g.gameOver {
			g.message = fmt.Sprintf("Cannot move %s", dir)
		}
		return false, 0
	}

	g.message = ""
	if g.won && !wasWon {
		g.message = fmt.Sprintf("You win! Reached %d, keep going", g.target)
	}
	g.score += points
	g.moves++
	if g.score > g.best {
		g.best = g.score
	}
	return true, points
}

// advanceLevel moves to the next level, keeping the board and score.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.levelClearTicks = 0

	if g.levelIndex >= LevelCount()-1 {
		// Completed all levels
		g.won = true
		return
	}

	g.levelIndex++
	g.target = g.levelTarget()

	current := g.engine.State()
	g.engine = g.newEngine(g.target)
	g.engine.SetState(current)
}

// finished reports whether the run is over. Only a completed campaign
// ends on a win; classic play goes on until the board is stuck.
func (g *Game) finished() bool {
	return g.gameOver || (g.won && g.mode == ModeCampaign)
}

// Grid returns a copy of the current board.
func (g *Game) Grid() board.Grid {
	if g.engine == nil {
		return nil
	}
	return g.engine.State()
}

// Message returns the last status message shown under the board.
func (g *Game) Message() string {
	return g.message
}

// SetMessage replaces the status message, e.g. with an AI hint error.
func (g *Game) SetMessage(msg string) {
	g.message = msg
}

// SetBest sets the best score shown in the HUD.
func (g *Game) SetBest(best int) {
	g.best = best
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		MaxTile:  g.grid.MaxTile(),
		Moves:    g.moves,
		GameOver: g.finished(),
		Won:      g.won,
		Paused:   g.paused || g.tooSmall || g.levelCleared,
	}
}
