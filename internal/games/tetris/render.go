package tetris

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Layout, in screen cells. Every well column is two characters wide so
// blocks look square in most terminal fonts.
const (
	cellW    = 2
	boardTop = 1
	boardW   = Cols*cellW + 2
	boardH   = Rows + 2
	panelGap = 2
	panelX   = boardW + panelGap
	panelW   = 16
	layoutW  = panelX + panelW
)

const (
	blockRune = '█'
	emptyRune = '·'
)

// Render draws the well, the side panel and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.engine == nil {
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	left := max(0, (g.cfg.ScreenW-layoutW)/2)
	board := core.NewRect(left, boardTop, boardW, boardH)

	dst.DrawTextCentered(0, "T E T R I S")
	dst.DrawBox(board, core.ColorGray)

	snap := g.engine.Snapshot()
	renderCells(dst, board.X+1, board.Y+1, snap.Cells)
	g.renderPanel(dst, left+panelX, boardTop, snap)

	switch {
	case !g.started:
		renderBanner(dst, board, core.ColorWhite, "Press any key", "to play")
	case snap.Lost:
		renderBanner(dst, board, core.ColorRed, "YOU LOST",
			fmt.Sprintf("Score %d", snap.FinalScore), "R restart  Q quit")
	case g.paused:
		renderBanner(dst, board, core.ColorYellow, "PAUSED", "P to resume")
	}
}

func renderCells(dst *core.Screen, x0, y0 int, cells Matrix) {
	for row := range Rows {
		for col := range Cols {
			x := x0 + col*cellW
			y := y0 + row
			c := cells[row][col]
			if !c.Filled {
				dst.SetColored(x, y, emptyRune, core.ColorDim)
				dst.Set(x+1, y, ' ')
				continue
			}
			color := Palette(c.Color)
			dst.SetColored(x, y, blockRune, color)
			dst.SetColored(x+1, y, blockRune, color)
		}
	}
}

func (g *Game) renderPanel(dst *core.Screen, x, y int, snap Snapshot) {
	dst.DrawText(x, y, fmt.Sprintf("Score  %d", snap.Score))
	dst.DrawText(x, y+1, fmt.Sprintf("Best   %d", snap.HighScore))
	dst.DrawText(x, y+2, fmt.Sprintf("Lines  %d", snap.Lines))
	dst.DrawText(x, y+3, fmt.Sprintf("Speed  %dms", snap.FallInterval.Milliseconds()))

	dst.DrawText(x, y+5, "Next Shape")
	tmpl := snap.Next.Template(snap.NextRotation)
	color := snap.Next.Color()
	for row, line := range tmpl {
		for col, ch := range line {
			if ch != '0' {
				continue
			}
			px := x + col*cellW
			dst.SetColored(px, y+6+row, blockRune, color)
			dst.SetColored(px+1, y+6+row, blockRune, color)
		}
	}

	help := []string{"←/→  move", "↓    drop", "↑/x  rotate", "p    pause", "q    quit"}
	for i, line := range help {
		dst.DrawTextColored(x, y+13+i, line, core.ColorDim)
	}
}

// renderBanner draws centered lines in a framed box over the well.
func renderBanner(dst *core.Screen, board core.Rect, color core.Color, lines ...string) {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	box := board.Centered(w+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, color)
	for i, l := range lines {
		x := box.X + (box.W-len([]rune(l)))/2
		dst.DrawTextColored(x, box.Y+1+i, l, color)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.cfg.ScreenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need at least %dx%d", minScreenW, minScreenH))
}

// Palette maps a locked cell color to the terminal palette.
// Colors outside the catalog render white.
func Palette(c RGB) core.Color {
	if k, ok := KindFromColor(c); ok {
		return k.Color()
	}
	return core.ColorWhite
}

// Board renders the well as plain text, one line per row, with '#' for
// filled cells. Used by tests and screenshots.
func Board(cells Matrix) string {
	var sb strings.Builder
	for row := range Rows {
		for col := range Cols {
			if cells[row][col].Filled {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		if row < Rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
