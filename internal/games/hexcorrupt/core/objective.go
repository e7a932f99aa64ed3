package core

// Phase is the half of a level the player is in.
type Phase uint8

const (
	PhaseGrowing Phase = iota
	PhaseShrinking
)

// String returns the string representation of a phase.
func (p Phase) String() string {
	switch p {
	case PhaseGrowing:
		return "Growing"
	case PhaseShrinking:
		return "Shrinking"
	default:
		return "Unknown"
	}
}

// Curves maps a level number to goals and turn budgets.
// Functions are expected to be monotonic and non-negative.
type Curves struct {
	GrowGoal  func(level int) int
	GrowTurns func(level int) int
	KillGoal  func(level int) int
	KillTurns func(level int) int
}

// Constant returns a curve that ignores the level.
func Constant(v int) func(int) int {
	return func(int) int { return v }
}

// DefaultCurves returns flat curves: grow to 10, shrink to 3, 10 turns each.
func DefaultCurves() Curves {
	return Curves{
		GrowGoal:  Constant(10),
		GrowTurns: Constant(10),
		KillGoal:  Constant(3),
		KillTurns: Constant(10),
	}
}

func (c Curves) withDefaults() Curves {
	def := DefaultCurves()
	if c.GrowGoal == nil {
		c.GrowGoal = def.GrowGoal
	}
	if c.GrowTurns == nil {
		c.GrowTurns = def.GrowTurns
	}
	if c.KillGoal == nil {
		c.KillGoal = def.KillGoal
	}
	if c.KillTurns == nil {
		c.KillTurns = def.KillTurns
	}
	return c
}

// Transition is the outcome of an objective evaluation.
type Transition uint8

const (
	TransitionNone Transition = iota
	TransitionPhase
	TransitionLevel
)

// Objectives tracks level, phase, goals and the turn budget.
type Objectives struct {
	Level          int
	Phase          Phase
	GrowGoal       int
	KillGoal       int
	TurnsRemaining int

	curves Curves
}

// NewObjectives creates a controller. Call StartLevel before use.
func NewObjectives(c Curves) *Objectives {
	return &Objectives{curves: c.withDefaults()}
}

// StartLevel enters level n in the growing phase and recomputes goals and budget.
func (o *Objectives) StartLevel(n int) {
	o.Level = n
	o.Phase = PhaseGrowing
	o.GrowGoal = o.curves.GrowGoal(n)
	o.KillGoal = o.curves.KillGoal(n)
	o.TurnsRemaining = o.curves.GrowTurns(n)
}

// Evaluate applies the post-turn objective check for the given living count.
// At most one transition happens per call.
func (o *Objectives) Evaluate(living int) Transition {
	switch o.Phase {
	case PhaseGrowing:
		if living >= o.GrowGoal {
			o.Phase = PhaseShrinking
			o.TurnsRemaining = o.curves.KillTurns(o.Level)
			return TransitionPhase
		}
	case PhaseShrinking:
		if living <= o.KillGoal {
			o.StartLevel(o.Level + 1)
			return TransitionLevel
		}
	}
	return TransitionNone
}

// Consume spends one turn. Returns false, leaving the budget untouched,
// when no turns remain.
func (o *Objectives) Consume() bool {
	if o.TurnsRemaining <= 0 {
		return false
	}
	o.TurnsRemaining--
	return true
}

// Status is a read-only snapshot for HUDs.
type Status struct {
	Level          int
	Phase          Phase
	DisplayLevel   int // Counts both phases: 1, 2 for level 1; 3, 4 for level 2 ...
	GrowGoal       int
	KillGoal       int
	TurnsRemaining int
	Living         int
	Remaining      int // Pieces still to add (growing) or remove (shrinking)
	OutOfTurns     bool
}

// Status builds a snapshot for the given living count.
func (o *Objectives) Status(living int) Status {
	st := Status{
		Level:          o.Level,
		Phase:          o.Phase,
		DisplayLevel:   2*o.Level - 1 + int(o.Phase),
		GrowGoal:       o.GrowGoal,
		KillGoal:       o.KillGoal,
		TurnsRemaining: o.TurnsRemaining,
		Living:         living,
		OutOfTurns:     o.TurnsRemaining <= 0,
	}
	if o.Phase == PhaseGrowing {
		st.Remaining = max(0, o.GrowGoal-living)
	} else {
		st.Remaining = max(0, living-o.KillGoal)
	}
	return st
}
