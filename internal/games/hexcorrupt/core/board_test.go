package core_test

import (
	"testing"

	"github.com/vovakirdan/hexcorrupt/internal/games/hexcorrupt/core"
)

func TestNewBoardShape(t *testing.T) {
	tests := []struct {
		radius  int
		cells   int
		borders int
	}{
		{0, 1, 1},
		{1, 7, 6},
		{2, 19, 12},
		{4, 61, 24},
	}

	for _, tt := range tests {
		b := core.NewBoard(tt.radius)
		if b.Len() != tt.cells {
			t.Errorf("radius %d: %d cells, want %d", tt.radius, b.Len(), tt.cells)
		}
		if b.BorderCount() != tt.borders {
			t.Errorf("radius %d: %d border cells, want %d", tt.radius, b.BorderCount(), tt.borders)
		}
	}
}

func TestBoardMembership(t *testing.T) {
	const radius = 3
	b := core.NewBoard(radius)

	for q := -radius - 1; q <= radius+1; q++ {
		for r := -radius - 1; r <= radius+1; r++ {
			h := core.H(q, r)
			c, ok := b.CellAt(h)
			inside := h.Length() <= radius
			if ok != inside {
				t.Errorf("CellAt(%v) ok = %v, want %v", h, ok, inside)
				continue
			}
			if !ok {
				continue
			}
			if !c.Pos.Valid() {
				t.Errorf("cell %v breaks q+r+s == 0", c.Pos)
			}
			if c.Border() != (h.Length() == radius) {
				t.Errorf("cell %v border = %v", h, c.Border())
			}
		}
	}
}

func TestPlaceAndRemove(t *testing.T) {
	b := core.NewBoard(2)
	h := core.H(1, -1)

	if !b.Place(h, 7) {
		t.Fatal("Place on empty cell failed")
	}
	if c, _ := b.CellAt(h); c.Occupant != 7 {
		t.Errorf("occupant = %d, want 7", c.Occupant)
	}
	if b.Place(h, 8) {
		t.Error("Place on occupied cell should fail")
	}
	if b.Place(core.H(3, 0), 9) {
		t.Error("Place off board should fail")
	}

	if got := b.Remove(h); got != 7 {
		t.Errorf("Remove returned %d, want 7", got)
	}
	if c, _ := b.CellAt(h); !c.Empty() {
		t.Error("cell should be empty after Remove")
	}
}

func TestBoardMove(t *testing.T) {
	b := core.NewBoard(2)
	b.Place(core.Origin, 1)
	b.Place(core.H(1, 0), 2)

	if b.Move(core.Origin, core.H(1, 0)) {
		t.Error("Move onto occupied cell should fail")
	}
	if b.Move(core.H(1, 0), core.H(3, 0)) {
		t.Error("Move off board should fail")
	}
	if b.Move(core.H(0, 1), core.H(0, 2)) {
		t.Error("Move from empty cell should fail")
	}
	if !b.Move(core.Origin, core.H(-1, 0)) {
		t.Fatal("Move onto free cell failed")
	}
	if b.Occupant(core.Origin) != core.NoPiece || b.Occupant(core.H(-1, 0)) != 1 {
		t.Error("occupancy not transferred")
	}
	if b.OccupiedCount() != 2 {
		t.Errorf("OccupiedCount = %d, want 2", b.OccupiedCount())
	}
}

func TestStateOccupancy(t *testing.T) {
	s := core.NewState(2)

	p := s.PlacePiece(core.Origin, core.PieceNormal)
	if p == nil {
		t.Fatal("PlacePiece failed")
	}
	if p.ID != 1 || p.Energy != 1 {
		t.Errorf("new piece = %+v, want id 1 energy 1", *p)
	}
	if got := s.PieceAt(core.Origin); got != p {
		t.Error("PieceAt does not return the placed piece")
	}
	if s.PlacePiece(core.Origin, core.PieceNormal) != nil {
		t.Error("second piece on same cell should be rejected")
	}

	if !s.MovePiece(p.ID, core.H(0, 1)) {
		t.Fatal("MovePiece failed")
	}
	if p.Pos != core.H(0, 1) || p.From != core.Origin || p.Intent != core.IntentMove {
		t.Errorf("moved piece = %+v", *p)
	}

	dead, ok := s.DestroyPiece(p.ID)
	if !ok || !dead.Dead || dead.Intent != core.IntentDie {
		t.Errorf("DestroyPiece = %+v, %v", dead, ok)
	}
	if s.LivingCount() != 0 || s.Pieces.Len() != 0 {
		t.Error("destroyed piece still counted")
	}
	if got := s.Pieces.Destroyed(); len(got) != 1 || got[0].ID != p.ID {
		t.Errorf("Destroyed() = %v", got)
	}

	next := s.PlacePiece(core.Origin, core.PieceNormal)
	if next.ID != 2 {
		t.Errorf("ids must not be reused, got %d", next.ID)
	}
}

func TestCapturePiece(t *testing.T) {
	s := core.NewState(3)
	c := s.PlacePiece(core.Origin, core.PieceCorrupted)
	v := s.PlacePiece(core.H(1, 0), core.PieceNormal)

	got, ok := s.CapturePiece(v.ID, c)
	if !ok {
		t.Fatal("CapturePiece failed")
	}
	if got.Pos != c.Pos || got.Intent != core.IntentCaptured {
		t.Errorf("captured = %+v", got)
	}
	if c.Energy != 2 {
		t.Errorf("corruptor energy = %d, want 2", c.Energy)
	}
	if s.Board.Occupant(core.H(1, 0)) != core.NoPiece {
		t.Error("captured piece still on board")
	}
}
