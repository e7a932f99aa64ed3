package core

// AcceptingInput reports whether a new action would be accepted now:
// nothing pending, the previous turn finished and turns remain.
func (e *Engine) AcceptingInput() bool {
	return e.ready() == nil
}

func (e *Engine) ready() error {
	if !e.queue.Idle() {
		return ErrBusy
	}
	if e.objectives.TurnsRemaining <= 0 {
		return ErrNoTurns
	}
	if e.timer < e.cfg.TurnLength {
		return ErrNotReady
	}
	return nil
}

// offer spends a turn and queues a. Callers have already checked ready.
func (e *Engine) offer(a Action) error {
	if err := e.queue.Offer(a); err != nil {
		return err
	}
	e.objectives.Consume()
	return nil
}

// QueueMove queues a push of a Normal piece, steps cells in dir.
// The destination must be on the board.
func (e *Engine) QueueMove(id PieceID, dir Dir, steps int) error {
	if err := e.ready(); err != nil {
		return err
	}
	p := e.state.Pieces.Get(id)
	if p == nil {
		return ErrNoPiece
	}
	if p.Type != PieceNormal {
		return ErrWrongType
	}
	if !dir.Valid() || steps < 1 || !e.state.Board.InBounds(p.Pos.Add(dir.Delta().Scale(steps))) {
		return ErrInvalidTarget
	}
	return e.offer(MoveAction{Piece: id, Dir: dir, Steps: steps})
}

// QueueMoveTo queues the action for dragging a piece onto target: a move
// for Normal pieces, a release toward target for corruptors.
// Target must lie on a straight line from the piece.
func (e *Engine) QueueMoveTo(id PieceID, target Hex) error {
	if err := e.ready(); err != nil {
		return err
	}
	p := e.state.Pieces.Get(id)
	if p == nil {
		return ErrNoPiece
	}
	dir, steps, ok := Line(p.Pos, target)
	if !ok || !e.state.Board.InBounds(target) {
		return ErrInvalidTarget
	}
	if p.Corrupted() {
		return e.QueueRelease(p.Pos, dir)
	}
	return e.QueueMove(id, dir, steps)
}

// QueueRelease queues the release of the corruptor at origin. The release
// lasts one turn per unit of stored energy but costs a single turn.
func (e *Engine) QueueRelease(origin Hex, dir Dir) error {
	if err := e.ready(); err != nil {
		return err
	}
	p := e.state.PieceAt(origin)
	if p == nil {
		return ErrNoPiece
	}
	if !p.Corrupted() {
		return ErrWrongType
	}
	if !dir.Valid() {
		return ErrInvalidTarget
	}
	return e.offer(ReleaseAction{Origin: origin, Dir: dir, Energy: p.Energy})
}

// QueueCreate queues a new Normal piece on an empty interior cell.
func (e *Engine) QueueCreate(h Hex) error {
	if err := e.ready(); err != nil {
		return err
	}
	c, ok := e.state.Board.CellAt(h)
	if !ok || c.Border() || !c.Empty() {
		return ErrInvalidTarget
	}
	return e.offer(CreateAction{At: h})
}

// QueueCorrupt queues turning the Normal piece on h into a corruptor.
func (e *Engine) QueueCorrupt(h Hex) error {
	if err := e.ready(); err != nil {
		return err
	}
	if !e.corruption {
		return ErrLocked
	}
	p := e.state.PieceAt(h)
	if p == nil {
		return ErrNoPiece
	}
	if p.Type != PieceNormal {
		return ErrWrongType
	}
	return e.offer(CorruptAction{At: h})
}

// CellAt returns the cell at h.
func (e *Engine) CellAt(h Hex) (Cell, bool) {
	return e.state.Board.CellAt(h)
}

// Cells returns every cell in board order.
func (e *Engine) Cells() []Cell {
	return e.state.Board.Cells()
}

// Radius returns the board radius.
func (e *Engine) Radius() int {
	return e.state.Board.Radius()
}

// PieceAt returns a copy of the piece on h.
func (e *Engine) PieceAt(h Hex) (Piece, bool) {
	p := e.state.PieceAt(h)
	if p == nil {
		return Piece{}, false
	}
	return *p, true
}

// Piece returns a copy of the live piece with the given id.
func (e *Engine) Piece(id PieceID) (Piece, bool) {
	p := e.state.Pieces.Get(id)
	if p == nil {
		return Piece{}, false
	}
	return *p, true
}

// LivingPieceCount returns the number of pieces on the board.
func (e *Engine) LivingPieceCount() int {
	return e.state.LivingCount()
}

// RecentlyDestroyed returns the pieces removed during the last resolved turn.
func (e *Engine) RecentlyDestroyed() []Piece {
	return e.state.Pieces.Destroyed()
}

// ValidMoves returns every cell reachable by casting the six directions
// outward from the piece until the board ends, direction by direction.
func (e *Engine) ValidMoves(id PieceID) []Hex {
	p := e.state.Pieces.Get(id)
	if p == nil {
		return nil
	}
	var moves []Hex
	for _, d := range AllDirs() {
		for pos := p.Pos.Neighbor(d); e.state.Board.InBounds(pos); pos = pos.Neighbor(d) {
			moves = append(moves, pos)
		}
	}
	return moves
}

// Status returns the objective snapshot.
func (e *Engine) Status() Status {
	return e.objectives.Status(e.state.LivingCount())
}

// Pending returns the queued action, or nil.
func (e *Engine) Pending() Action {
	return e.queue.Pending()
}

// TurnProgress returns how far the current turn animation is, from 0 to 1.
func (e *Engine) TurnProgress() float64 {
	if e.cfg.TurnLength <= 0 {
		return 1
	}
	return min(1, float64(e.timer)/float64(e.cfg.TurnLength))
}

// Reveals returns how many narrative reveals have been received.
func (e *Engine) Reveals() int {
	return e.unlocks.Received()
}

// CorruptionUnlocked reports whether the corrupt tool is available.
func (e *Engine) CorruptionUnlocked() bool {
	return e.corruption
}

// TurnsResolved returns the number of turns resolved since the last restart.
func (e *Engine) TurnsResolved() int {
	return e.turns
}

// Captured returns the number of pieces absorbed since the last restart.
func (e *Engine) Captured() int {
	return e.captured
}

// Snapshot returns a deep copy of the board and pieces.
func (e *Engine) Snapshot() *State {
	return e.state.Clone()
}
