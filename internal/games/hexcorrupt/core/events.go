package core

import "fmt"

// EventKind identifies an outbound notification.
type EventKind uint8

const (
	EventMoved EventKind = iota
	EventDestroyed
	EventCaptured
	EventGenerated
	EventCorrupted
	EventReleased
	EventPhaseAdvanced
	EventLevelStarted
	EventUnlocked
	EventOpened
	EventCorruptionUnlocked
)

var eventNames = [...]string{
	EventMoved:              "moved",
	EventDestroyed:          "destroyed",
	EventCaptured:           "captured",
	EventGenerated:          "generated",
	EventCorrupted:          "corrupted",
	EventReleased:           "released",
	EventPhaseAdvanced:      "phase_advanced",
	EventLevelStarted:       "level_started",
	EventUnlocked:           "unlocked",
	EventOpened:             "opened",
	EventCorruptionUnlocked: "corruption_unlocked",
}

// String returns the string representation of an event kind.
func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// Cause tells why a piece was generated.
type Cause uint8

const (
	CauseNone Cause = iota
	CausePlaced
	CauseRelease
	CauseFill
)

// String returns the string representation of a cause.
func (c Cause) String() string {
	switch c {
	case CausePlaced:
		return "placed"
	case CauseRelease:
		return "release"
	case CauseFill:
		return "fill"
	default:
		return "none"
	}
}

// Event is a notification emitted while resolving a turn or running a
// scheduled task. Fields not relevant to Kind are zero.
type Event struct {
	Kind  EventKind
	Piece PieceID
	At    Hex // Where the effect ended (corruptor cell for captures)
	From  Hex
	Level int
	Phase Phase
	Index int // Reveal index for EventUnlocked and EventOpened
	Cause Cause
}

// String returns a compact description for logs.
func (e Event) String() string {
	switch e.Kind {
	case EventMoved:
		return fmt.Sprintf("%s #%d %s->%s", e.Kind, e.Piece, e.From, e.At)
	case EventDestroyed, EventCorrupted, EventReleased:
		return fmt.Sprintf("%s #%d at %s", e.Kind, e.Piece, e.At)
	case EventCaptured:
		return fmt.Sprintf("%s #%d from %s into %s", e.Kind, e.Piece, e.From, e.At)
	case EventGenerated:
		return fmt.Sprintf("%s #%d at %s (%s)", e.Kind, e.Piece, e.At, e.Cause)
	case EventPhaseAdvanced, EventLevelStarted:
		return fmt.Sprintf("%s level=%d phase=%s", e.Kind, e.Level, e.Phase)
	case EventUnlocked, EventOpened:
		return fmt.Sprintf("%s #%d", e.Kind, e.Index)
	default:
		return e.Kind.String()
	}
}
