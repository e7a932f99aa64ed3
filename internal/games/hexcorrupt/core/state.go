package core

// State is the board together with the piece arena.
// All occupancy changes go through State so that every occupied cell maps
// to exactly one live piece and every live piece sits on its own cell.
type State struct {
	Board  *Board
	Pieces *Pieces
}

// NewState creates an empty board of the given radius.
func NewState(radius int) *State {
	return &State{
		Board:  NewBoard(radius),
		Pieces: NewPieces(),
	}
}

// PieceAt returns the live piece on h, or nil.
func (s *State) PieceAt(h Hex) *Piece {
	id := s.Board.Occupant(h)
	if id == NoPiece {
		return nil
	}
	return s.Pieces.Get(id)
}

// PlacePiece spawns a piece of type t on h.
// Returns nil if h is off the board or occupied.
func (s *State) PlacePiece(h Hex, t PieceType) *Piece {
	c, ok := s.Board.CellAt(h)
	if !ok || !c.Empty() {
		return nil
	}
	p := s.Pieces.Spawn(h, t)
	s.Board.Place(h, p.ID)
	return p
}

// MovePiece moves piece id onto to and tags it with IntentMove.
func (s *State) MovePiece(id PieceID, to Hex) bool {
	p := s.Pieces.Get(id)
	if p == nil {
		return false
	}
	from := p.Pos
	if !s.Board.Move(from, to) {
		return false
	}
	p.Pos = to
	p.From = from
	p.Intent = IntentMove
	return true
}

// RemovePiece clears the cell at h without touching the arena.
// Callers decide whether the piece dies or is discarded.
func (s *State) RemovePiece(h Hex) PieceID {
	return s.Board.Remove(h)
}

// DestroyPiece removes the piece from the board and records it as
// recently destroyed with IntentDie.
func (s *State) DestroyPiece(id PieceID) (Piece, bool) {
	p := s.Pieces.Get(id)
	if p == nil {
		return Piece{}, false
	}
	s.Board.Remove(p.Pos)
	return s.Pieces.Kill(id, IntentDie)
}

// CapturePiece absorbs piece id into corruptor: the victim leaves the board,
// its position becomes the corruptor's and the corruptor gains one energy.
func (s *State) CapturePiece(id PieceID, corruptor *Piece) (Piece, bool) {
	p := s.Pieces.Get(id)
	if p == nil || corruptor == nil || p.ID == corruptor.ID {
		return Piece{}, false
	}
	s.Board.Remove(p.Pos)
	p.Pos = corruptor.Pos
	corruptor.Energy++
	return s.Pieces.Kill(id, IntentCaptured)
}

// LivingCount returns the number of pieces on the board.
func (s *State) LivingCount() int {
	return s.Board.OccupiedCount()
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	return &State{
		Board:  s.Board.Clone(),
		Pieces: s.Pieces.Clone(),
	}
}
