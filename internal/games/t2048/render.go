package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-tiles/internal/core"
)

const (
	cellWidth    = 7 // Width of each cell (including left border)
	cellHeight   = 2 // Height of each cell (including top border)
	hudHeight    = 3
	footerHeight = 2
)

// boardDimensions returns the drawn board size for an N×N grid.
func boardDimensions(size int) (w, h int) {
	return size*cellWidth + 1, size*cellHeight + 1
}

// tileColor returns the color for a tile value.
func tileColor(val int) core.Color {
	switch val {
	case 2:
		return core.ColorWhite
	case 4:
		return core.ColorBrightWhite
	case 8:
		return core.ColorYellow
	case 16:
		return core.ColorOrange
	case 32:
		return core.ColorRed
	case 64:
		return core.ColorBrightRed
	case 128:
		return core.ColorBrightYellow
	case 256:
		return core.ColorGreen
	case 512:
		return core.ColorBrightGreen
	case 1024:
		return core.ColorCyan
	case 2048:
		return core.ColorBrightCyan
	case 4096:
		return core.ColorBlue
	case 8192:
		return core.ColorBrightBlue
	}
	return core.ColorBrightMagenta
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check screen size
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW, boardH := boardDimensions(g.cfg.Size)
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderFooter(dst, boardY+boardH)
	g.renderOverlays(dst, core.NewRect(boardX, boardY, boardW, boardH))
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the score and level info.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := g.Title()
	dst.DrawTextColored(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightYellow)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.score))
	best := fmt.Sprintf("Best: %d", max(g.best, g.score))
	dst.DrawText(boardX+boardW-len(best), 1, best)

	dst.DrawText(boardX, 2, fmt.Sprintf("Moves: %d", g.moves))

	var info string
	switch {
	case g.mode == ModeCampaign:
		info = fmt.Sprintf("Level %d/%d  Target: %d", g.levelIndex+1, LevelCount(), g.target)
	case g.target > 0:
		info = fmt.Sprintf("Target: %d", g.target)
	default:
		info = fmt.Sprintf("Max: %d", g.grid.MaxTile())
	}
	dst.DrawText(max(boardX, boardX+boardW-len(info)), 2, info)
}

// renderBoard draws the N×N grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	size := g.cfg.Size

	// Draw grid borders
	for y := range size + 1 {
		for x := range size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == size:
				corner = '┐'
			case y == size && x == 0:
				corner = '└'
			case y == size && x == size:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == size:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == size:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColored(px, py, corner, core.ColorGray)

			if x < size {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGray)
				}
			}
			if y < size {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	// Draw tiles
	for y, row := range g.grid {
		for x, val := range row {
			if val == 0 {
				continue
			}

			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1

			valStr := strconv.Itoa(val)
			padLeft := max((cellWidth-1-len(valStr))/2, 0)
			dst.DrawTextColored(cellX+padLeft, cellY, valStr, tileColor(val))
		}
	}
}

// renderFooter draws the message line and the controls hint.
func (g *Game) renderFooter(dst *core.Screen, y int) {
	if g.message != "" {
		dst.DrawTextColored((g.screenW-len([]rune(g.message)))/2, y, g.message, core.ColorBrightRed)
	}
	controls := g.Controls()
	dst.DrawTextColored(max((g.screenW-len(controls))/2, 0), y+1, controls, core.ColorGray)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, area core.Rect) {
	if g.paused {
		g.drawOverlay(dst, area, "PAUSED", "Press P to resume")
		return
	}

	if g.levelCleared {
		targetStr := fmt.Sprintf("Target %d reached!", g.target)
		if g.levelIndex >= LevelCount()-1 {
			g.drawOverlay(dst, area, targetStr, "Final level complete!")
		} else {
			g.drawOverlay(dst, area, targetStr, fmt.Sprintf("Next: Level %d", g.levelIndex+2))
		}
		return
	}

	if g.gameOver {
		maxStr := fmt.Sprintf("Max tile: %d", g.grid.MaxTile())
		if g.won {
			g.drawOverlay(dst, area, "GAME OVER", "You won this one!", maxStr, "Press R to restart")
			return
		}
		g.drawOverlay(dst, area, "GAME OVER", maxStr, "Press R to restart")
		return
	}

	if g.won && g.mode == ModeCampaign {
		g.drawOverlay(dst, area, "CAMPAIGN COMPLETE!", "You are the champion!", "Press R to restart")
	}
}

// drawOverlay draws a boxed text overlay centered on area.
func (g *Game) drawOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := area.Centered(maxLen+4, len(lines)+2)
	centerX, _ := box.Center()

	// Clear area behind overlay
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawTextColored(centerX-len(line)/2, box.Y+1+i, line, core.ColorBrightWhite)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Move: arrows/WASD/hjkl  ?: Hint  M: Model  P: Pause  R: Restart  Q: Quit"
}
