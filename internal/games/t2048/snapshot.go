package t2048

import "github.com/vovakirdan/tui-tiles/internal/board"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePaused       GameStateType = "paused"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and logging.
type Snapshot struct {
	Tick    uint64
	Mode    string // "classic", "campaign" or "endless"
	Level   int    // Current level (1-indexed), 0 outside the campaign
	Target  int    // Current win tile, 0 when disabled
	Score   int
	Moves   int
	Grid    board.Grid
	MaxTile int
	Message string
	State   GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.levelCleared:
		state = StateLevelCleared
	case g.gameOver:
		state = StateGameOver
	case g.finished():
		state = StateWin
	case g.paused:
		state = StatePaused
	}

	level := 0
	if g.mode == ModeCampaign {
		level = g.levelIndex + 1
	}

	return Snapshot{
		Tick:    g.tick,
		Mode:    string(g.mode),
		Level:   level,
		Target:  g.target,
		Score:   g.score,
		Moves:   g.moves,
		Grid:    g.Grid(),
		MaxTile: g.grid.MaxTile(),
		Message: g.message,
		State:   state,
	}
}
