package core

import "time"

// maxPushScan bounds the push search. Boards are far smaller, so hitting
// it means something is wrong and the push fails.
const maxPushScan = 100

// Config holds the engine parameters.
type Config struct {
	Radius         int
	TurnLength     time.Duration
	Curves         Curves
	Thresholds     []Threshold
	OpenDelay      time.Duration // Delay before a reveal other than the first opens
	CorruptionGate int           // Reveals required before corrupting; 0 unlocks from the start
}

// DefaultConfig returns the stock engine parameters.
func DefaultConfig() Config {
	return Config{
		Radius:         4,
		TurnLength:     250 * time.Millisecond,
		Curves:         DefaultCurves(),
		Thresholds:     DefaultThresholds(),
		OpenDelay:      1500 * time.Millisecond,
		CorruptionGate: 5,
	}
}

// TurnResult reports what happened during one Advance call.
type TurnResult struct {
	Resolved bool   // A turn was resolved
	Action   Action // The action as it was pending before this step, nil if none resolved
	Events   []Event
}

// Engine runs the turn simulation. It is single-threaded: every method must
// be called from the goroutine that owns the engine.
type Engine struct {
	cfg        Config
	state      *State
	queue      Queue
	objectives *Objectives
	unlocks    *Unlocks
	sched      scheduler

	timer      time.Duration
	corruption bool
	turns      int
	captured   int
	outbox     []Event
}

// NewEngine creates an engine and starts level 1.
// The turn timer starts full so the first input is accepted immediately.
func NewEngine(cfg Config) *Engine {
	if cfg.TurnLength <= 0 {
		cfg.TurnLength = DefaultConfig().TurnLength
	}
	if cfg.Thresholds == nil {
		cfg.Thresholds = DefaultThresholds()
	}
	e := &Engine{
		cfg:        cfg,
		state:      NewState(cfg.Radius),
		objectives: NewObjectives(cfg.Curves),
		unlocks:    NewUnlocks(cfg.Thresholds),
		timer:      cfg.TurnLength,
		corruption: cfg.CorruptionGate <= 0,
	}
	e.startLevel(1)
	return e
}

// Advance moves the clock forward by dt. Due scheduled tasks run first; then,
// if a full turn length has elapsed and an action is pending, one step of it
// resolves followed by the post-action pipeline.
func (e *Engine) Advance(dt time.Duration) TurnResult {
	e.timer += dt
	e.emit(e.sched.advance(dt)...)

	var res TurnResult
	if e.timer >= e.cfg.TurnLength && !e.queue.Idle() {
		action := e.queue.Pending()
		if e.resolve(action) {
			e.runPipeline()
			e.timer = 0
			e.turns++
			res.Resolved = true
			res.Action = action
		}
	}
	if e.timer > e.cfg.TurnLength {
		e.timer = e.cfg.TurnLength
	}

	res.Events = e.flush()
	return res
}

// resolve executes one step of action. Returns false when nothing happened
// and no turn should be consumed.
func (e *Engine) resolve(action Action) bool {
	switch a := action.(type) {
	case MoveAction:
		return e.stepMove(a)
	case ReleaseAction:
		return e.stepRelease(a)
	case CreateAction:
		e.queue.Clear()
		e.state.Pieces.ResetIntents()
		if p := e.state.PlacePiece(a.At, PieceNormal); p != nil {
			e.emit(Event{Kind: EventGenerated, Piece: p.ID, At: p.Pos, From: p.Pos, Cause: CausePlaced})
		}
		return true
	case CorruptAction:
		e.queue.Clear()
		e.state.Pieces.ResetIntents()
		if p := e.state.PieceAt(a.At); p != nil && p.Type == PieceNormal {
			p.Type = PieceCorrupted
			e.emit(Event{Kind: EventCorrupted, Piece: p.ID, At: p.Pos, From: p.Pos})
		}
		return true
	default:
		e.queue.Clear()
		return false
	}
}

func (e *Engine) stepMove(a MoveAction) bool {
	p := e.state.Pieces.Get(a.Piece)
	if p == nil {
		e.queue.Clear()
		return false
	}
	chain, ok := e.pushChain(p.Pos, a.Dir)
	if !ok {
		e.queue.Clear()
		return false
	}

	e.state.Pieces.ResetIntents()
	e.applyChain(chain, a.Dir)

	if a.Steps > 1 {
		a.Steps--
		e.queue.replace(a)
	} else {
		e.queue.Clear()
	}
	return true
}

func (e *Engine) stepRelease(a ReleaseAction) bool {
	occ := e.state.PieceAt(a.Origin)

	var chain []PieceID
	if occ != nil && occ.Type == PieceNormal {
		var ok bool
		if chain, ok = e.pushChain(a.Origin, a.Dir); !ok {
			// The origin stays occupied, so nothing more can come out.
			e.queue.Clear()
			return false
		}
	}

	e.state.Pieces.ResetIntents()
	switch {
	case occ == nil:
	case occ.Type == PieceCorrupted:
		e.state.RemovePiece(a.Origin)
		e.state.Pieces.Discard(occ.ID)
		e.emit(Event{Kind: EventReleased, Piece: occ.ID, At: a.Origin, From: a.Origin})
	default:
		e.applyChain(chain, a.Dir)
	}

	if p := e.state.PlacePiece(a.Origin, PieceNormal); p != nil {
		p.Intent = IntentGenerated
		e.emit(Event{Kind: EventGenerated, Piece: p.ID, At: p.Pos, From: p.Pos, Cause: CauseRelease})
	}

	if a.Energy > 1 {
		a.Energy--
		e.queue.replace(a)
	} else {
		e.queue.Clear()
	}
	return true
}

// pushChain collects the pieces that move when the occupant of start is
// pushed one step in dir. ok is false if start is empty, dir is invalid or
// the line reaches the edge of the board before a free cell.
func (e *Engine) pushChain(start Hex, dir Dir) ([]PieceID, bool) {
	first := e.state.Board.Occupant(start)
	if first == NoPiece || !dir.Valid() {
		return nil, false
	}
	chain := []PieceID{first}
	step := dir.Delta()
	for i := 1; i < maxPushScan; i++ {
		pos := start.Add(step.Scale(i))
		c, ok := e.state.Board.CellAt(pos)
		if !ok {
			return nil, false
		}
		if c.Empty() {
			return chain, true
		}
		chain = append(chain, c.Occupant)
	}
	return nil, false
}

// applyChain moves the chain one step, farthest piece first.
func (e *Engine) applyChain(chain []PieceID, dir Dir) {
	for i := len(chain) - 1; i >= 0; i-- {
		p := e.state.Pieces.Get(chain[i])
		from := p.Pos
		if e.state.MovePiece(p.ID, from.Neighbor(dir)) {
			e.emit(Event{Kind: EventMoved, Piece: p.ID, At: p.Pos, From: from})
		}
	}
}

// Push moves the piece and everything in front of it one step in dir.
// The board is left untouched when the line is blocked.
func (e *Engine) Push(id PieceID, dir Dir) bool {
	p := e.state.Pieces.Get(id)
	if p == nil {
		return false
	}
	chain, ok := e.pushChain(p.Pos, dir)
	if !ok {
		return false
	}
	e.applyChain(chain, dir)
	return true
}

func (e *Engine) runPipeline() {
	e.destroyBorderPieces()
	e.enforceCorruption()
	e.fillSurroundedRegions()
	e.evaluateObjectives()
}

func (e *Engine) destroyBorderPieces() {
	doomed := e.state.Board.Filter(func(c Cell) bool {
		return c.Border() && !c.Empty()
	})
	for _, c := range doomed {
		if p, ok := e.state.DestroyPiece(c.Occupant); ok {
			e.emit(Event{Kind: EventDestroyed, Piece: p.ID, At: p.Pos, From: p.From})
		}
	}
}

func (e *Engine) enforceCorruption() {
	for _, region := range e.state.Board.OccupiedRegions() {
		var corruptor *Piece
		for _, h := range region.Cells {
			if p := e.state.PieceAt(h); p != nil && p.Corrupted() {
				corruptor = p
				break
			}
		}
		if corruptor == nil {
			continue
		}

		for _, h := range region.Cells {
			p := e.state.PieceAt(h)
			if p == nil || p.Corrupted() {
				continue
			}
			if victim, ok := e.state.CapturePiece(p.ID, corruptor); ok {
				e.captured++
				e.emit(Event{Kind: EventCaptured, Piece: victim.ID, At: corruptor.Pos, From: h})
			}
		}
	}
}

func (e *Engine) fillSurroundedRegions() {
	for _, region := range e.state.Board.EmptyRegions() {
		if region.TouchesBorder {
			continue
		}
		for _, h := range region.Cells {
			if p := e.state.PlacePiece(h, PieceNormal); p != nil {
				p.Intent = IntentGenerated
				e.emit(Event{Kind: EventGenerated, Piece: p.ID, At: h, From: h, Cause: CauseFill})
			}
		}
	}
}

func (e *Engine) evaluateObjectives() {
	switch e.objectives.Evaluate(e.state.LivingCount()) {
	case TransitionPhase:
		e.emit(Event{Kind: EventPhaseAdvanced, Level: e.objectives.Level, Phase: e.objectives.Phase})
		e.checkUnlocks()
	case TransitionLevel:
		e.emit(Event{Kind: EventLevelStarted, Level: e.objectives.Level, Phase: e.objectives.Phase})
		e.checkUnlocks()
	}
}

func (e *Engine) startLevel(n int) {
	e.objectives.StartLevel(n)
	e.emit(Event{Kind: EventLevelStarted, Level: n, Phase: PhaseGrowing})
	e.checkUnlocks()
}

// checkUnlocks fires newly reached reveals. The first reveal opens at once,
// later ones open after the configured delay.
func (e *Engine) checkUnlocks() {
	for _, idx := range e.unlocks.Check(e.objectives.Level, e.objectives.Phase) {
		e.emit(Event{Kind: EventUnlocked, Index: idx, Level: e.objectives.Level, Phase: e.objectives.Phase})
		if idx == 0 {
			e.emit(Event{Kind: EventOpened, Index: idx})
			continue
		}
		e.sched.after(e.cfg.OpenDelay, func() []Event {
			events := []Event{{Kind: EventOpened, Index: idx}}
			if !e.corruption && e.unlocks.Received() >= e.cfg.CorruptionGate {
				e.corruption = true
				events = append(events, Event{Kind: EventCorruptionUnlocked})
			}
			return events
		})
	}
}

func (e *Engine) emit(events ...Event) {
	e.outbox = append(e.outbox, events...)
}

func (e *Engine) flush() []Event {
	out := e.outbox
	e.outbox = nil
	return out
}

// Restart destroys every piece and starts again from level 1.
// Reveals already received stay received.
func (e *Engine) Restart() {
	e.queue.Clear()
	e.state.Pieces.ResetIntents()
	for _, c := range e.state.Board.Filter(func(c Cell) bool { return !c.Empty() }) {
		if p, ok := e.state.DestroyPiece(c.Occupant); ok {
			e.emit(Event{Kind: EventDestroyed, Piece: p.ID, At: p.Pos, From: p.From})
		}
	}
	e.timer = 0
	e.turns = 0
	e.captured = 0
	e.startLevel(1)
}
