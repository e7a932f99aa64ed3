package hexcorrupt

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/hexcorrupt/internal/core"
	sim "github.com/vovakirdan/hexcorrupt/internal/games/hexcorrupt/core"
)

const (
	hudWidth    = 36
	titleHeight = 2
	barWidth    = 12
)

// Board geometry: pointy-top hexes, four columns per step along q and two
// per step along r, one row per r.
func boardSize(radius int) (w, h int) {
	return 8*radius + 3, 2*radius + 1
}

func (g *Game) cellOrigin(h sim.Hex) (x, y int) {
	n := g.engine.Radius()
	return g.boardX + 2*(2*h.Q+h.R+2*n), g.boardY + h.R + n
}

// HexAt maps a screen position from the last render back to a board hex.
func (g *Game) HexAt(x, y int) (sim.Hex, bool) {
	if g.engine == nil {
		return sim.Hex{}, false
	}
	n := g.engine.Radius()
	bw, bh := boardSize(n)
	// Cursor brackets reach two columns left of the first cell.
	if !core.NewRect(g.boardX-2, g.boardY, bw+2, bh).Contains(x, y) {
		return sim.Hex{}, false
	}
	r := y - g.boardY - n
	t := x - g.boardX - 2*(r+2*n)
	q := int(math.Floor(float64(t+2) / 4))
	h := sim.H(q, r)
	if _, ok := g.engine.CellAt(h); !ok {
		return sim.Hex{}, false
	}
	return h, true
}

// Render draws the board, HUD and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	bw, bh := boardSize(g.engine.Radius())
	if g.screenW < bw+2 || g.screenH < bh+titleHeight+1 {
		g.renderTooSmall(dst)
		return
	}

	dst.DrawTextColored(1, 0, "HEXCORRUPT", core.ColorBrightMagenta)

	g.boardX = 2
	g.boardY = titleHeight
	g.renderBoard(dst)

	hud := core.NewRect(g.boardX+bw+2, titleHeight, hudWidth, g.screenH-titleHeight)
	if hud.Right() > g.screenW {
		hud = core.NewRect(1, g.boardY+bh+1, g.screenW-2, g.screenH-(g.boardY+bh+1))
	}
	g.renderHUD(dst, hud)

	switch {
	case g.showLetters:
		g.renderLetters(dst, dst.Bounds().Inset(1))
	case g.paused:
		g.renderBanner(dst, "PAUSED", "p to resume")
	case g.State().GameOver:
		g.renderBanner(dst, "OUT OF TURNS", "r to restart")
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorGray)
}

func (g *Game) renderBoard(dst *core.Screen) {
	progress := g.engine.TurnProgress()
	for _, c := range g.engine.Cells() {
		x, y := g.cellOrigin(c.Pos)
		r, color := g.glyph(c)
		dst.SetColored(x, y, r, color)
	}

	// Pieces removed by the turn still playing out.
	if progress < 1 {
		for _, p := range g.engine.RecentlyDestroyed() {
			if c, ok := g.engine.CellAt(p.Pos); ok && c.Empty() {
				x, y := g.cellOrigin(p.Pos)
				dst.SetColored(x, y, 'x', core.ColorRed)
			}
		}
	}

	if p, ok := g.engine.Piece(g.selected); ok {
		x, y := g.cellOrigin(p.Pos)
		dst.SetColored(x-1, y, '<', core.ColorOrange)
		dst.SetColored(x+1, y, '>', core.ColorOrange)
	}
	x, y := g.cellOrigin(g.cursor)
	dst.SetColored(x-1, y, '[', core.ColorBrightYellow)
	dst.SetColored(x+1, y, ']', core.ColorBrightYellow)
}

// glyph picks the rune and color for a cell.
func (g *Game) glyph(c sim.Cell) (rune, core.Color) {
	if c.Empty() {
		switch {
		case g.targets[c.Pos]:
			return '+', core.ColorYellow
		case c.Border():
			return ':', core.ColorRed
		default:
			return '.', core.ColorGray
		}
	}

	p, ok := g.engine.PieceAt(c.Pos)
	if !ok {
		return '?', core.ColorDefault
	}
	if p.Corrupted() {
		return energyRune(p.Energy), core.ColorBrightMagenta
	}
	switch {
	case g.targets[c.Pos]:
		return 'o', core.ColorYellow
	case p.Intent == sim.IntentGenerated:
		return 'o', core.ColorBrightGreen
	case c.Border():
		return 'o', core.ColorOrange
	default:
		return 'o', core.ColorBrightCyan
	}
}

func energyRune(e int) rune {
	if e >= 1 && e <= 9 {
		return rune('0' + e)
	}
	return '*'
}

func (g *Game) renderHUD(dst *core.Screen, r core.Rect) {
	st := g.engine.Status()
	lines := []struct {
		text  string
		color core.Color
	}{
		{fmt.Sprintf("Level %d  (stage %d)", st.Level, st.DisplayLevel), core.ColorBrightWhite},
		{g.goalLine(st), core.ColorDefault},
		{fmt.Sprintf("Pieces %d   to go %d", st.Living, st.Remaining), core.ColorDefault},
		{fmt.Sprintf("Turns left %d", st.TurnsRemaining), turnsColor(st.TurnsRemaining)},
		{g.pendingLine(), core.ColorCyan},
		{progressBar(g.engine.TurnProgress()), core.ColorGray},
		{"", core.ColorDefault},
		{fmt.Sprintf("Letters %d/%d  (m to read)", len(g.opened), len(g.letters)), core.ColorMagenta},
		{g.corruptLine(), core.ColorMagenta},
		{fmt.Sprintf("Turns %d   absorbed %d", g.engine.TurnsResolved(), g.engine.Captured()), core.ColorGray},
		{"", core.ColorDefault},
		{g.message, core.ColorYellow},
	}

	y := r.Y
	for _, l := range lines {
		if y >= r.Bottom() {
			return
		}
		dst.DrawTextColored(r.X, y, clip(l.text, r.W), l.color)
		y++
	}
	for i := len(g.recent) - 1; i >= 0 && y < r.Bottom(); i-- {
		dst.DrawTextColored(r.X, y, clip(g.recent[i], r.W), core.ColorDim)
		y++
	}
}

func (g *Game) goalLine(st sim.Status) string {
	if st.Phase == sim.PhaseGrowing {
		return fmt.Sprintf("Grow to %d pieces", st.GrowGoal)
	}
	return fmt.Sprintf("Thin to %d pieces", st.KillGoal)
}

func (g *Game) pendingLine() string {
	if a := g.engine.Pending(); a != nil {
		return "Resolving: " + a.String()
	}
	if g.engine.AcceptingInput() {
		return "Ready"
	}
	return "..."
}

func (g *Game) corruptLine() string {
	if g.engine.CorruptionUnlocked() {
		return "Corrupt: c"
	}
	return fmt.Sprintf("Corrupt: locked (%d letters)", g.cfg.Letters.CorruptionGate)
}

func turnsColor(n int) core.Color {
	switch {
	case n <= 1:
		return core.ColorBrightRed
	case n <= 3:
		return core.ColorYellow
	default:
		return core.ColorGreen
	}
}

func progressBar(p float64) string {
	filled := core.Clamp(int(p*barWidth), 0, barWidth)
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", barWidth-filled) + "]"
}

func clip(s string, w int) string {
	if w <= 0 {
		return ""
	}
	rs := []rune(s)
	if len(rs) <= w {
		return s
	}
	return string(rs[:w])
}

func (g *Game) renderBanner(dst *core.Screen, title, hint string) {
	w := max(len(title), len(hint)) + 6
	r := core.NewRect((g.screenW-w)/2, g.screenH/2-2, w, 4)
	dst.DrawRect(r, ' ')
	dst.DrawBox(r, core.ColorBrightWhite)
	dst.DrawTextCentered(r.Y+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(r.Y+2, hint, core.ColorGray)
}

func (g *Game) renderLetters(dst *core.Screen, r core.Rect) {
	dst.DrawRect(r, ' ')
	dst.DrawBox(r, core.ColorMagenta)
	inner := r.Inset(2)

	if len(g.opened) == 0 {
		dst.DrawTextColored(inner.X, inner.Y, "No letters yet.", core.ColorGray)
		return
	}

	idx := g.opened[core.Clamp(g.letterPos, 0, len(g.opened)-1)]
	header := fmt.Sprintf("%d/%d  %s", g.letterPos+1, len(g.opened), g.letterTitle(idx))
	dst.DrawTextColored(inner.X, inner.Y, clip(header, inner.W), core.ColorBrightMagenta)

	body := ""
	if idx >= 0 && idx < len(g.letters) {
		body = g.letters[idx].Body
	}
	y := inner.Y + 2
	for _, line := range strings.Split(ansi.Wordwrap(unwrap(body), inner.W, ""), "\n") {
		if y >= inner.Bottom()-1 {
			break
		}
		dst.DrawText(inner.X, y, clip(line, inner.W))
		y++
	}
	dst.DrawTextColored(inner.X, inner.Bottom()-1, "[ ] browse   m/esc close", core.ColorGray)
}

// unwrap joins the lines of each paragraph so the text can be wrapped to
// the panel width.
func unwrap(body string) string {
	paras := strings.Split(strings.TrimSpace(body), "\n\n")
	for i, p := range paras {
		paras[i] = strings.Join(strings.Fields(p), " ")
	}
	return strings.Join(paras, "\n\n")
}
