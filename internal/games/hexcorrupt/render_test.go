package hexcorrupt

import (
	"strings"
	"testing"

	"github.com/vovakirdan/hexcorrupt/internal/core"
	sim "github.com/vovakirdan/hexcorrupt/internal/games/hexcorrupt/core"
)

func TestRenderBoardGlyphs(t *testing.T) {
	g := newTestGame(t, nil)
	step(g, core.ActionRight)
	step(g, core.ActionPlace)

	s := core.NewScreen(80, 24)
	g.Render(s)

	if !strings.HasPrefix(strings.TrimSpace(s.Row(0)), "HEXCORRUPT") {
		t.Errorf("title row = %q", s.Row(0))
	}

	tests := []struct {
		name  string
		h     sim.Hex
		glyph rune
		color core.Color
	}{
		{"empty interior", sim.Origin, '.', core.ColorGray},
		{"border", sim.H(-4, 0), ':', core.ColorRed},
		{"placed piece", sim.H(1, 0), 'o', core.ColorBrightCyan},
	}
	for _, tt := range tests {
		x, y := g.cellOrigin(tt.h)
		if c := s.GetCell(x, y); c.Rune != tt.glyph || c.Color != tt.color {
			t.Errorf("%s at %v = %+v, want %q", tt.name, tt.h, c, tt.glyph)
		}
	}

	x, y := g.cellOrigin(g.Cursor())
	if s.Get(x-1, y) != '[' || s.Get(x+1, y) != ']' {
		t.Errorf("cursor brackets missing around %v: %q", g.Cursor(), s.Row(y))
	}
}

func TestGlyphHelpers(t *testing.T) {
	g := newTestGame(t, nil)
	c := sim.Cell{Pos: sim.Origin}
	if r, _ := g.glyph(c); r != '.' {
		t.Errorf("empty glyph = %q", r)
	}
	for e, want := range map[int]rune{1: '1', 9: '9', 12: '*'} {
		if got := energyRune(e); got != want {
			t.Errorf("energyRune(%d) = %q, want %q", e, got, want)
		}
	}
}

func TestRenderSelectionTargets(t *testing.T) {
	g := newTestGame(t, nil)
	step(g, core.ActionPlace)
	step(g, core.ActionSelect)

	s := core.NewScreen(80, 24)
	g.Render(s)

	x, y := g.cellOrigin(sim.H(2, 0))
	if c := s.GetCell(x, y); c.Rune != '+' {
		t.Errorf("move target drawn as %q", c.Rune)
	}
	x, y = g.cellOrigin(sim.H(1, 1))
	if c := s.GetCell(x, y); c.Rune != '.' {
		t.Errorf("off-line cell drawn as %q", c.Rune)
	}
}

func TestHexAtRoundTrip(t *testing.T) {
	g := newTestGame(t, nil)
	g.Render(core.NewScreen(80, 24))

	for _, c := range g.Engine().Cells() {
		x, y := g.cellOrigin(c.Pos)
		for _, dx := range []int{-1, 0, 1} {
			if h, ok := g.HexAt(x+dx, y); !ok || h != c.Pos {
				t.Errorf("HexAt(%d, %d) = %v, %v; want %v", x+dx, y, h, ok, c.Pos)
			}
		}
	}
	if _, ok := g.HexAt(0, 0); ok {
		t.Error("title row should not map to a hex")
	}
	bw, bh := boardSize(g.Engine().Radius())
	for _, p := range [][2]int{{g.boardX + bw, g.boardY + 4}, {g.boardX + 8, g.boardY + bh}, {g.boardX - 3, g.boardY + 4}} {
		if h, ok := g.HexAt(p[0], p[1]); ok {
			t.Errorf("HexAt(%d, %d) = %v outside the board", p[0], p[1], h)
		}
	}
}

func TestClickSelectsPiece(t *testing.T) {
	g := newTestGame(t, nil)
	step(g, core.ActionPlace)
	g.Render(core.NewScreen(80, 24))

	x, y := g.cellOrigin(sim.Origin)
	g.Click(x, y)
	if g.Selected() == sim.NoPiece {
		t.Error("click on a piece should select it")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, nil)
	g.Resize(20, 8)
	s := core.NewScreen(20, 8)
	g.Render(s)

	if !strings.Contains(s.String(), "Window too small") {
		t.Errorf("screen = %q", s.String())
	}
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(t, nil)
	s := core.NewScreen(80, 24)

	step(g, core.ActionPause)
	g.Render(s)
	if !strings.Contains(s.String(), "PAUSED") {
		t.Error("pause banner missing")
	}
	step(g, core.ActionPause)

	step(g, core.ActionLetters)
	g.Render(s)
	if !strings.Contains(s.String(), g.letters[0].Title) {
		t.Error("letters panel should show the first letter's title")
	}
}

func TestUnwrap(t *testing.T) {
	got := unwrap("one\ntwo\n\nthree  four\n")
	if want := "one two\n\nthree four"; got != want {
		t.Errorf("unwrap = %q, want %q", got, want)
	}
}
