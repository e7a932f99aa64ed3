package core

// PieceID identifies a piece for its whole life. Ids are never reused.
type PieceID int64

// NoPiece marks an empty cell or a missing reference.
const NoPiece PieceID = 0

// PieceType is the behaviour class of a piece.
type PieceType uint8

const (
	PieceNormal PieceType = iota
	PieceCorrupted
)

// String returns the string representation of a piece type.
func (t PieceType) String() string {
	switch t {
	case PieceNormal:
		return "Normal"
	case PieceCorrupted:
		return "Corrupted"
	default:
		return "Unknown"
	}
}

// Intent tells collaborators what happened to a piece during the last turn.
// It is presentation state only and is cleared at the start of every turn.
type Intent uint8

const (
	IntentNone Intent = iota
	IntentMove
	IntentDie
	IntentCaptured
	IntentGenerated
)

// String returns the string representation of an intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentMove:
		return "Move"
	case IntentDie:
		return "Die"
	case IntentCaptured:
		return "Captured"
	case IntentGenerated:
		return "Generated"
	default:
		return "Unknown"
	}
}

// Piece is a single game piece.
type Piece struct {
	ID     PieceID
	Type   PieceType
	Pos    Hex    // Current cell; for captured pieces, the corruptor's cell
	From   Hex    // Position before this turn's effect, valid when Intent != IntentNone
	Energy int    // Stored energy, grows as a corrupted piece captures others
	Intent Intent // This turn's effect
	Dead   bool
}

// Corrupted reports whether the piece is a corruptor.
func (p *Piece) Corrupted() bool {
	return p.Type == PieceCorrupted
}

// Pieces is the arena of live pieces plus the pieces destroyed this turn.
type Pieces struct {
	live      map[PieceID]*Piece
	destroyed []Piece
	nextID    PieceID
}

// NewPieces creates an empty arena. The first piece gets id 1.
func NewPieces() *Pieces {
	return &Pieces{
		live:   make(map[PieceID]*Piece),
		nextID: 1,
	}
}

// Spawn registers a new piece at pos with stored energy 1.
func (ps *Pieces) Spawn(pos Hex, t PieceType) *Piece {
	p := &Piece{
		ID:     ps.nextID,
		Type:   t,
		Pos:    pos,
		From:   pos,
		Energy: 1,
	}
	ps.nextID++
	ps.live[p.ID] = p
	return p
}

// Get returns the live piece with the given id, or nil.
func (ps *Pieces) Get(id PieceID) *Piece {
	return ps.live[id]
}

// Len returns the number of live pieces.
func (ps *Pieces) Len() int {
	return len(ps.live)
}

// Kill marks the piece dead with the given intent and moves it to the
// recently destroyed list. Returns the final snapshot.
func (ps *Pieces) Kill(id PieceID, intent Intent) (Piece, bool) {
	p, ok := ps.live[id]
	if !ok {
		return Piece{}, false
	}
	delete(ps.live, id)
	p.Dead = true
	p.Intent = intent
	ps.destroyed = append(ps.destroyed, *p)
	return *p, true
}

// Discard drops a live piece without recording it as destroyed.
func (ps *Pieces) Discard(id PieceID) (Piece, bool) {
	p, ok := ps.live[id]
	if !ok {
		return Piece{}, false
	}
	delete(ps.live, id)
	p.Dead = true
	return *p, true
}

// Destroyed returns copies of the pieces destroyed during the last turn.
func (ps *Pieces) Destroyed() []Piece {
	out := make([]Piece, len(ps.destroyed))
	copy(out, ps.destroyed)
	return out
}

// ResetIntents starts a new turn: every live piece loses its intent and
// the recently destroyed list is emptied.
func (ps *Pieces) ResetIntents() {
	ps.destroyed = ps.destroyed[:0]
	for _, p := range ps.live {
		p.Intent = IntentNone
		p.From = p.Pos
	}
}

// Clone returns a deep copy of the arena.
func (ps *Pieces) Clone() *Pieces {
	live := make(map[PieceID]*Piece, len(ps.live))
	for id, p := range ps.live {
		cp := *p
		live[id] = &cp
	}
	destroyed := make([]Piece, len(ps.destroyed))
	copy(destroyed, ps.destroyed)
	return &Pieces{live: live, destroyed: destroyed, nextID: ps.nextID}
}
