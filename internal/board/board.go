package board

import (
	"math/rand"
	"time"
)

// Defaults used by DefaultSettings.
const (
	DefaultSize         = 4
	DefaultWinNumber    = 2048
	DefaultInitialTiles = 8
	DefaultNewTiles     = 2
)

// fourProbability is the chance a placed tile is a 4 instead of a 2.
const fourProbability = 0.1

// Settings configures a Board for its whole lifetime.
type Settings struct {
	Size         int // Grid dimension N
	WinNumber    int // Tile value that triggers OnWin; <= 0 disables it
	InitialTiles int // Tiles placed by Restart
	NewTiles     int // Tiles placed after each successful merge

	// OnStateChanged receives a copy of the grid.
	OnStateChanged func(Grid)
	OnLost         func()
	OnWin          func()
}

// DefaultSettings returns the standard 4×4 game with no-op callbacks.
func DefaultSettings() Settings {
	return Settings{
		Size:         DefaultSize,
		WinNumber:    DefaultWinNumber,
		InitialTiles: DefaultInitialTiles,
		NewTiles:     DefaultNewTiles,
	}
}

// Board owns the grid and applies merges to it.
// It is not safe for concurrent use; callers serialize access.
type Board struct {
	settings Settings
	state    Grid
	rng      *rand.Rand
}

// New creates a board. A nil rng is replaced with a time-seeded source.
// The grid is empty until Restart or SetState is called.
func New(settings Settings, rng *rand.Rand) *Board {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if settings.OnStateChanged == nil {
		settings.OnStateChanged = func(Grid) {}
	}
	if settings.OnLost == nil {
		settings.OnLost = func() {}
	}
	if settings.OnWin == nil {
		settings.OnWin = func() {}
	}
	return &Board{
		settings: settings,
		state:    NewGrid(settings.Size),
		rng:      rng,
	}
}

// Settings returns the configuration the board was built with.
func (b *Board) Settings() Settings {
	return b.settings
}

// Restart clears the grid, places the initial tiles and notifies once.
func (b *Board) Restart() {
	b.state = NewGrid(b.settings.Size)
	b.PlaceRandom(b.settings.InitialTiles)
	b.notifyStateChanged()
}

// State returns a copy of the current grid.
func (b *Board) State() Grid {
	return b.state.Clone()
}

// SetState replaces the grid with a copy of g. Shape and values are not
// validated.
func (b *Board) SetState(g Grid) {
	b.state = g.Clone()
}

// Merge attempts a move in dir and returns whether anything changed and the
// points earned.
//
// A board with no moves left reports OnLost and refuses the merge no matter
// which direction was asked for. A successful merge notifies OnStateChanged
// twice: once with the merged grid and once after the new tiles are placed.
func (b *Board) Merge(dir Direction) (bool, int) {
	if NoMoves(b.state) {
		b.settings.OnLost()
		return false, 0
	}

	success, merged, points := MergeMatrix(b.state, dir)
	if !success {
		return false, 0
	}

	b.state = merged
	b.notifyStateChanged()
	b.PlaceRandom(b.settings.NewTiles)
	b.notifyStateChanged()

	if NoMoves(b.state) {
		b.settings.OnLost()
	}
	if b.settings.WinNumber > 0 && HasWin(b.state, b.settings.WinNumber) {
		b.settings.OnWin()
	}
	return true, points
}

// PlaceRandom puts up to count new tiles (2 with 90%, 4 with 10%) on random
// empty cells. Asking for more tiles than there is room for fills the board.
// No callback is invoked.
func (b *Board) PlaceRandom(count int) {
	empty := EmptyCells(b.state)
	n := min(count, len(empty))

	for range n {
		value := 2
		if b.rng.Float64() < fourProbability {
			value = 4
		}
		// empty is not shrunk between picks, so skip cells filled earlier
		// in this batch.
		for {
			cell := empty[b.rng.Intn(len(empty))]
			if b.state[cell.Row][cell.Col] == 0 {
				b.state[cell.Row][cell.Col] = value
				break
			}
		}
	}
}

func (b *Board) notifyStateChanged() {
	b.settings.OnStateChanged(b.state.Clone())
}
