package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 3 // Height of each cell (including top border)
	hudHeight  = 3

	boardWidth  = Size*cellWidth + 1  // +1 for right border
	boardHeight = Size*cellHeight + 1 // +1 for bottom border
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardX := core.Clamp((g.screenW-boardWidth)/2, 0, g.screenW)
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX)
	g.renderBoard(dst, boardX, boardY)
	g.renderFooter(dst, boardX, boardY+boardHeight)
	g.renderOverlays(dst, core.NewRect(boardX, boardY, boardWidth, boardHeight))
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score and highest tile.
func (g *Game) renderHUD(dst *core.Screen, boardX int) {
	title := "2048"
	dst.DrawTextColor(boardX+(boardWidth-len(title))/2, 0, title, core.ColorBrightYellow)

	grid := g.engine.Grid()
	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.engine.Score()))

	maxStr := fmt.Sprintf("Max: %d", MaxTile(grid))
	dst.DrawTextColor(boardX+boardWidth-len(maxStr), 1, maxStr, g.theme.TileColor(MaxTile(grid)))

	movesStr := fmt.Sprintf("Moves: %d", g.moves)
	dst.DrawTextColor(boardX+(boardWidth-len(movesStr))/2, 2, movesStr, core.ColorGray)
}

// renderBoard draws the 4x4 grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	border := g.theme.Border

	for y := range Size + 1 {
		for x := range Size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			dst.SetColor(px, py, junction(x, y), border)

			if x < Size {
				for i := 1; i < cellWidth; i++ {
					dst.SetColor(px+i, py, '─', border)
				}
			}
			if y < Size {
				for i := 1; i < cellHeight; i++ {
					dst.SetColor(px, py+i, '│', border)
				}
			}
		}
	}

	grid := g.engine.Grid()
	for y := range Size {
		for x := range Size {
			val := grid[y][x]
			if val == 0 {
				continue
			}

			valStr := strconv.Itoa(val)
			padLeft := max((cellWidth-1-len(valStr))/2, 0)

			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + cellHeight/2
			dst.DrawTextColor(cellX+padLeft, cellY, valStr, g.theme.TileColor(val))
		}
	}
}

// junction picks the box-drawing rune for a grid line crossing.
func junction(x, y int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == Size:
		return '┐'
	case y == Size && x == 0:
		return '└'
	case y == Size && x == Size:
		return '┘'
	case y == 0:
		return '┬'
	case y == Size:
		return '┴'
	case x == 0:
		return '├'
	case x == Size:
		return '┤'
	default:
		return '┼'
	}
}

// renderFooter draws the win banner below the board.
func (g *Game) renderFooter(dst *core.Screen, boardX, y int) {
	if g.reachedGoal && !g.gameOver {
		msg := fmt.Sprintf("%d reached! Keep going", g.cfg.Game.WinTile)
		dst.DrawTextColor(boardX+(boardWidth-len(msg))/2, y, msg, g.theme.TileColor(g.cfg.Game.WinTile))
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	centerX, centerY := board.Center()

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.gameOver {
		maxStr := fmt.Sprintf("Max tile: %d", MaxTile(g.engine.Grid()))
		scoreStr := fmt.Sprintf("Score: %d", g.engine.Score())
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", scoreStr, maxStr, "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)

	dst.FillRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}
