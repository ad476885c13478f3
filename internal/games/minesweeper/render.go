package minesweeper

import (
	"fmt"

	"github.com/vovakirdan/tui-mines/internal/core"
)

const (
	hudHeight    = 2 // Title and counters above the board
	footerHeight = 1 // Status line below the board
)

// layout places the board on screen. The box border surrounds the cells;
// each cell is cellW columns wide with its glyph at offset glyphX.
type layout struct {
	box    core.Rect
	cellW  int
	glyphX int
	minW   int
	minH   int
}

func computeLayout(rows, cols, cellW, screenW int) layout {
	if cellW < 2 || cellW > 3 {
		cellW = 2
	}
	// Even widths get a trailing pad column so the glyphs sit centered in the box
	w := cols*cellW + 2 + (1 - cellW%2)
	h := rows + 2
	return layout{
		box:    core.NewRect((screenW-w)/2, hudHeight, w, h),
		cellW:  cellW,
		glyphX: 1,
		minW:   w,
		minH:   hudHeight + h + footerHeight,
	}
}

// cellOrigin returns the screen column of cell col's first character and the
// screen row of row.
func (l layout) cellOrigin(row, col int) (x, y int) {
	return l.box.X + 1 + col*l.cellW, l.box.Y + 1 + row
}

// CellAt maps a screen position to the board cell drawn there.
func (g *Game) CellAt(x, y int) (row, col int, ok bool) {
	x0, y0 := g.layout.cellOrigin(0, 0)
	cells := core.NewRect(x0, y0, g.field.Cols()*g.layout.cellW, g.field.Rows())
	if !cells.Contains(x, y) {
		return 0, 0, false
	}
	return y - y0, (x - x0) / g.layout.cellW, true
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderFooter(dst)

	if g.paused {
		g.drawOverlay(dst, "PAUSED", "Press P to resume")
	}
}

// renderTooSmall shows a "window too small" message, shortened on narrow screens.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	msg := "Window too small"
	if len(msg) > dst.Width() {
		msg = "Too small"
	}
	dst.DrawTextCentered(y, msg)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", g.layout.minW, g.layout.minH))
}

// renderHUD draws the title, mines left and game face.
func (g *Game) renderHUD(dst *core.Screen) {
	box := g.layout.box

	title := fmt.Sprintf("%s %dx%d", g.title, g.field.Rows(), g.field.Cols())
	dst.DrawText(box.X+(box.W-len(title))/2, 0, title)

	dst.DrawText(box.X, 1, fmt.Sprintf("Mines: %d", g.visible.MinesLeft()))

	face := ":)"
	switch {
	case g.visible.Won():
		face = "B)"
	case g.visible.Lost():
		face = "X("
	}
	dst.DrawText(box.Right()-len(face), 1, face)
}

// renderBoard draws the border and every cell.
func (g *Game) renderBoard(dst *core.Screen) {
	dst.DrawBox(g.layout.box)

	for r := range g.field.Rows() {
		for c := range g.field.Cols() {
			st := g.visible.Status(r, c)
			glyph, color := cellGlyph(st)
			if !g.cfg.Display.Colors {
				color = core.ColorDefault
			}
			if r == g.cursorRow && c == g.cursorCol && !g.visible.IsGameOver() {
				color = core.ColorHighlight
			}
			x, y := g.layout.cellOrigin(r, c)
			dst.SetColor(x+g.layout.glyphX, y, glyph, color)
		}
	}
}

// renderFooter draws the status line below the board.
func (g *Game) renderFooter(dst *core.Screen) {
	box := g.layout.box
	y := box.Bottom()

	var status string
	color := core.ColorDefault
	switch {
	case g.visible.Won():
		status, color = "Cleared! Press R to play again", core.ColorGreen
	case g.visible.Lost():
		status, color = "BOOM! Press R to try again", core.ColorBrightRed
	case !g.started:
		status = "Uncover any cell to start"
	default:
		status = fmt.Sprintf("%d of %d safe cells uncovered",
			g.visible.Uncovered(), g.field.Rows()*g.field.Cols()-g.field.NumMines())
	}
	dst.DrawTextColor((dst.Width()-len(status))/2, y, status, color)
}

// cellGlyph returns the character and color drawn for a status.
func cellGlyph(st Status) (rune, core.Color) {
	switch st {
	case Covered:
		return '.', core.ColorGray
	case Flagged:
		return 'F', core.ColorBrightRed
	case Questioned:
		return '?', core.ColorYellow
	case Mine:
		return '*', core.ColorDefault
	case IncorrectFlag:
		return 'X', core.ColorYellow
	case Exploded:
		return '#', core.ColorBrightRed
	}
	n, ok := st.AdjacentCount()
	if !ok || n == 0 {
		return ' ', core.ColorDefault
	}
	return rune('0' + n), countColors[n]
}

// countColors follows the classic palette for adjacency digits.
var countColors = [9]core.Color{
	core.ColorDefault,
	core.ColorBrightBlue,
	core.ColorGreen,
	core.ColorRed,
	core.ColorBlue,
	core.ColorMagenta,
	core.ColorCyan,
	core.ColorWhite,
	core.ColorGray,
}

// drawOverlay draws a centered text box over the board.
func (g *Game) drawOverlay(dst *core.Screen, lines ...string) {
	centerX, centerY := g.layout.box.Center()

	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	// Clear area behind overlay
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
// The terminal platform shows its own key help; this is for listings.
func (g *Game) Controls() string {
	return "Arrows/HJKL: Move | Space: Uncover | F: Flag | P: Pause | R: Restart | Q: Quit"
}
