// Package t2048 implements the 2048 puzzle on top of the board engine,
// with classic, campaign and endless modes.
package t2048

// Level defines a campaign level with a target tile.
type Level struct {
	ID     int
	Name   string
	Target int // Tile value that clears the level
}

// Levels defines the 10 campaign levels. Every target doubles the previous
// one so a cleared level never carries its winning tile into the next.
var Levels = []Level{
	{ID: 1, Name: "Warm-up", Target: 128},
	{ID: 2, Name: "Getting Started", Target: 256},
	{ID: 3, Name: "Building Momentum", Target: 512},
	{ID: 4, Name: "The Climb", Target: 1024},
	{ID: 5, Name: "Classic 2048", Target: 2048},
	{ID: 6, Name: "Beyond Limits", Target: 4096},
	{ID: 7, Name: "Master Class", Target: 8192},
	{ID: 8, Name: "Expert Challenge", Target: 16384},
	{ID: 9, Name: "Grandmaster", Target: 32768},
	{ID: 10, Name: "Ultimate Champion", Target: 65536},
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(Levels)
}

// GetLevel returns the level at the given index (0-based).
// Returns nil if index is out of range.
func GetLevel(index int) *Level {
	if index < 0 || index >= len(Levels) {
		return nil
	}
	return &Levels[index]
}

// LevelNames returns the names of all levels.
func LevelNames() []string {
	names := make([]string, len(Levels))
	for i, lvl := range Levels {
		names[i] = lvl.Name
	}
	return names
}

// LevelTargets returns the targets of all levels.
func LevelTargets() []int {
	targets := make([]int, len(Levels))
	for i, lvl := range Levels {
		targets[i] = lvl.Target
	}
	return targets
}
