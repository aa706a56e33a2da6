// Package board implements the 2048 board engine: a square grid of
// power-of-two tiles, the directional merge, random tile placement and
// the win/lost checks. It has no dependencies on the terminal layer.
package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Direction is one of the four directions a merge can be attempted in.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Directions lists every direction in declaration order.
var Directions = [...]Direction{Left, Right, Up, Down}

// ErrBadGrid is returned by ParseGrid for malformed or non-square input.
var ErrBadGrid = errors.New("board: bad grid")

// ErrUnknownDirection is returned by ParseDirection for anything that is not
// one of the four direction names.
var ErrUnknownDirection = errors.New("board: unknown direction")

// String returns the direction name as shown to the player.
func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Up:
		return "Up"
	case Down:
		return "Down"
	default:
		return "Unknown"
	}
}

// ParseDirection converts a direction name (case-insensitive) to a Direction.
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// Grid is an N×N matrix of tile values. Zero means empty.
type Grid [][]int

// Cell is a (row, column) coordinate in a grid.
type Cell struct {
	Row int
	Col int
}

// NewGrid returns a zero-filled size×size grid.
func NewGrid(size int) Grid {
	g := make(Grid, size)
	for i := range g {
		g[i] = make([]int, size)
	}
	return g
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}
	c := make(Grid, len(g))
	for i, row := range g {
		c[i] = append([]int(nil), row...)
	}
	return c
}

// Equal reports whether both grids have the same shape and values.
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for i := range g {
		if len(g[i]) != len(other[i]) {
			return false
		}
		for j := range g[i] {
			if g[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

// MaxTile returns the highest value on the grid.
func (g Grid) MaxTile() int {
	maxVal := 0
	for _, row := range g {
		for _, v := range row {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	return maxVal
}

// String formats the grid as nested brackets, e.g. [[2 0] [0 4]].
func (g Grid) String() string {
	rows := make([]string, len(g))
	for i, row := range g {
		rows[i] = fmt.Sprint(row)
	}
	return "[" + strings.Join(rows, " ") + "]"
}

// ParseGrid reads a square grid written as rows separated by '/' and cells
// separated by ',', e.g. "2,2,0,0/0,0,0,0/0,0,4,0/0,0,0,0".
func ParseGrid(s string) (Grid, error) {
	lines := strings.Split(strings.TrimSpace(s), "/")
	g := make(Grid, len(lines))
	for r, line := range lines {
		fields := strings.Split(line, ",")
		if len(fields) != len(lines) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadGrid, r+1, len(fields), len(lines))
		}
		g[r] = make([]int, len(fields))
		for c, f := range fields {
			v, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil || v < 0 {
				return nil, fmt.Errorf("%w: cell %d,%d is %q", ErrBadGrid, r+1, c+1, f)
			}
			g[r][c] = v
		}
	}
	return g, nil
}

// EmptyCells returns the coordinates of all zero cells in row-major order.
func EmptyCells(g Grid) []Cell {
	var cells []Cell
	for i, row := range g {
		for j, v := range row {
			if v == 0 {
				cells = append(cells, Cell{Row: i, Col: j})
			}
		}
	}
	return cells
}

// NoMoves reports whether no direction can change the grid: there are no
// empty cells and no equal neighbours in any row or column.
func NoMoves(g Grid) bool {
	if len(EmptyCells(g)) != 0 {
		return false
	}
	if hasAdjacentPair(g) {
		return false
	}
	return !hasAdjacentPair(Transpose(g))
}

// hasAdjacentPair reports whether any row holds two equal neighbours.
func hasAdjacentPair(g Grid) bool {
	for _, row := range g {
		for i := 0; i < len(row)-1; i++ {
			if row[i] == row[i+1] {
				return true
			}
		}
	}
	return false
}

// HasWin reports whether any cell equals win.
func HasWin(g Grid, win int) bool {
	for _, row := range g {
		for _, v := range row {
			if v == win {
				return true
			}
		}
	}
	return false
}
