package core

import (
	"errors"
	"fmt"
)

// Rejection reasons returned by the queue entry points.
var (
	ErrBusy          = errors.New("an action is already pending")
	ErrNoTurns       = errors.New("no turns remaining")
	ErrNotReady      = errors.New("turn still resolving")
	ErrInvalidTarget = errors.New("invalid target")
	ErrNoPiece       = errors.New("no piece at target")
	ErrWrongType     = errors.New("wrong piece type")
	ErrLocked        = errors.New("tool is locked")
)

// Action is the pending turn action. Exactly one of the concrete types
// below, or nil when nothing is queued.
type Action interface {
	fmt.Stringer
	action()
}

// MoveAction pushes a piece Steps times in Dir, one step per turn.
type MoveAction struct {
	Piece PieceID
	Dir   Dir
	Steps int
}

// ReleaseAction empties a corruptor at Origin: each turn pushes the
// origin's occupant one step in Dir and spawns a piece at Origin.
type ReleaseAction struct {
	Origin Hex
	Dir    Dir
	Energy int
}

// CreateAction places a new Normal piece.
type CreateAction struct {
	At Hex
}

// CorruptAction turns the Normal piece at At into a corruptor.
type CorruptAction struct {
	At Hex
}

func (MoveAction) action()    {}
func (ReleaseAction) action() {}
func (CreateAction) action()  {}
func (CorruptAction) action() {}

func (a MoveAction) String() string {
	return fmt.Sprintf("move #%d %s x%d", a.Piece, a.Dir, a.Steps)
}

func (a ReleaseAction) String() string {
	return fmt.Sprintf("release %s %s x%d", a.Origin, a.Dir, a.Energy)
}

func (a CreateAction) String() string {
	return fmt.Sprintf("create %s", a.At)
}

func (a CorruptAction) String() string {
	return fmt.Sprintf("corrupt %s", a.At)
}

// Queue holds at most one pending action.
type Queue struct {
	pending Action
}

// Pending returns the queued action, or nil.
func (q *Queue) Pending() Action {
	return q.pending
}

// Idle reports whether nothing is queued.
func (q *Queue) Idle() bool {
	return q.pending == nil
}

// Offer queues a. Fails with ErrBusy while another action is pending.
func (q *Queue) Offer(a Action) error {
	if a == nil {
		return ErrInvalidTarget
	}
	if q.pending != nil {
		return ErrBusy
	}
	q.pending = a
	return nil
}

// Clear drops the pending action.
func (q *Queue) Clear() {
	q.pending = nil
}

// replace swaps in the remainder of a multi-step action; nil clears the slot.
func (q *Queue) replace(a Action) {
	q.pending = a
}
