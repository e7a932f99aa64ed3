// Package hexcorrupt adapts the turn engine to the terminal platform:
// a cursor over the board, piece selection, tool keys and the letters panel.
package hexcorrupt

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hexcorrupt/internal/config"
	"github.com/vovakirdan/hexcorrupt/internal/core"
	sim "github.com/vovakirdan/hexcorrupt/internal/games/hexcorrupt/core"
	"github.com/vovakirdan/hexcorrupt/internal/games/hexcorrupt/letters"
)

const maxRecent = 5

// Game implements the hexcorrupt puzzle for the terminal platform.
type Game struct {
	cfg     config.GameConfig
	letters []letters.Letter
	logger  *log.Logger

	engine *sim.Engine
	frame  time.Duration

	cursor   sim.Hex
	selected sim.PieceID
	targets  map[sim.Hex]bool

	opened      []int // Letter indices in the order they opened
	showLetters bool
	letterPos   int

	message string
	recent  []string
	paused  bool

	// Screen dimensions
	screenW int
	screenH int

	// Board origin from the last render, used for mouse hit tests.
	boardX int
	boardY int
}

// New creates a game from a validated config and a sorted letter set.
func New(cfg config.GameConfig, ls []letters.Letter) *Game {
	return &Game{
		cfg:     cfg,
		letters: ls,
		logger:  log.New(io.Discard),
	}
}

// SetLogger routes turn and event logs to l.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l
}

// ID returns the identifier used for stored runs and screenshots.
func (g *Game) ID() string {
	return "hexcorrupt"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Hexcorrupt"
}

// EngineConfig turns the file config and letters into engine parameters.
func EngineConfig(cfg config.GameConfig, ls []letters.Letter) sim.Config {
	return sim.Config{
		Radius:     cfg.Board.Radius,
		TurnLength: cfg.Turn.Length(),
		Curves: sim.Curves{
			GrowGoal:  cfg.Curves.GrowGoals.Func(),
			GrowTurns: cfg.Curves.GrowTurns.Func(),
			KillGoal:  cfg.Curves.KillGoals.Func(),
			KillTurns: cfg.Curves.KillTurns.Func(),
		},
		Thresholds:     letters.Thresholds(ls),
		OpenDelay:      cfg.Letters.Delay(),
		CorruptionGate: cfg.Letters.CorruptionGate,
	}
}

// Reset builds a fresh engine. Letters opened by a previous engine are lost.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	rate := rc.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	g.frame = time.Second / time.Duration(rate)

	g.engine = sim.NewEngine(EngineConfig(g.cfg, g.letters))
	g.cursor = sim.Origin
	g.clearSelection()
	g.opened = nil
	g.showLetters = false
	g.letterPos = 0
	g.recent = nil
	g.paused = false
	g.message = "n: place a piece"

	// Level 1 start events, including the first letter.
	g.apply(g.engine.Advance(0))
}

// Resize updates the screen size without touching the run.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Engine exposes the running engine for inspection.
func (g *Game) Engine() *sim.Engine {
	return g.engine
}

// Cursor returns the hex under the cursor.
func (g *Game) Cursor() sim.Hex {
	return g.cursor
}

// Selected returns the selected piece, or sim.NoPiece.
func (g *Game) Selected() sim.PieceID {
	return g.selected
}

// Message returns the status line text.
func (g *Game) Message() string {
	return g.message
}

// Opened returns the letter indices opened so far.
func (g *Game) Opened() []int {
	return append([]int(nil), g.opened...)
}

// Step applies one frame of input and advances the engine clock by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var restarted bool
	for _, a := range in.Actions {
		if g.handle(a) {
			restarted = true
		}
	}

	if !g.paused {
		g.apply(g.engine.Advance(g.frame))
	}

	return core.StepResult{State: g.State(), Restarted: restarted}
}

// handle performs a single action. Returns true if the run was restarted.
func (g *Game) handle(a core.Action) bool {
	switch a {
	case core.ActionPause:
		g.paused = !g.paused
		return false
	case core.ActionRestart:
		g.restart()
		return true
	case core.ActionLetters:
		g.showLetters = !g.showLetters
		return false
	}

	if g.showLetters {
		switch a {
		case core.ActionNext:
			g.letterPos = core.Clamp(g.letterPos+1, 0, max(0, len(g.opened)-1))
		case core.ActionPrev:
			g.letterPos = core.Clamp(g.letterPos-1, 0, max(0, len(g.opened)-1))
		case core.ActionCancel:
			g.showLetters = false
		}
		return false
	}
	if g.paused {
		return false
	}

	if d, ok := a.Direction(); ok {
		g.moveCursor(sim.Dir(d))
		return false
	}

	switch a {
	case core.ActionSelect:
		g.selectAt(g.cursor)
	case core.ActionPlace:
		g.report(g.engine.QueueCreate(g.cursor), "placing a piece")
	case core.ActionCorrupt:
		g.report(g.engine.QueueCorrupt(g.cursor), "corrupting")
	case core.ActionCancel:
		g.clearSelection()
		g.message = ""
	}
	return false
}

func (g *Game) restart() {
	g.engine.Restart()
	g.clearSelection()
	g.paused = false
	g.message = "restarted from level 1"
	g.logger.Info("restart")
}

func (g *Game) moveCursor(d sim.Dir) {
	next := g.cursor.Neighbor(d)
	if _, ok := g.engine.CellAt(next); ok {
		g.cursor = next
	}
}

// Click moves the cursor to the hex drawn at screen position (x, y) and
// selects it, as if the player had pressed select there.
func (g *Game) Click(x, y int) {
	if g.paused || g.showLetters {
		return
	}
	h, ok := g.HexAt(x, y)
	if !ok {
		return
	}
	g.cursor = h
	g.selectAt(h)
}

// selectAt either picks up the piece on h or, with a piece already held,
// queues a move toward h.
func (g *Game) selectAt(h sim.Hex) {
	if g.selected == sim.NoPiece {
		g.pick(h)
		return
	}

	p, ok := g.engine.Piece(g.selected)
	if !ok {
		g.clearSelection()
		g.pick(h)
		return
	}
	if p.Pos == h {
		g.clearSelection()
		g.message = ""
		return
	}

	err := g.engine.QueueMoveTo(p.ID, h)
	if errors.Is(err, sim.ErrInvalidTarget) {
		if other, ok := g.engine.PieceAt(h); ok {
			g.clearSelection()
			g.pick(other.Pos)
			return
		}
	}
	if g.report(err, "moving") {
		g.clearSelection()
	}
}

func (g *Game) pick(h sim.Hex) {
	p, ok := g.engine.PieceAt(h)
	if !ok {
		g.message = "empty cell: n to place a piece"
		return
	}
	g.selected = p.ID
	g.refreshTargets()
	if p.Corrupted() {
		g.message = fmt.Sprintf("corruptor holds %d: pick a direction to release", p.Energy)
	} else {
		g.message = "pick a target in line with the piece"
	}
}

func (g *Game) refreshTargets() {
	g.targets = make(map[sim.Hex]bool)
	for _, h := range g.engine.ValidMoves(g.selected) {
		g.targets[h] = true
	}
}

func (g *Game) clearSelection() {
	g.selected = sim.NoPiece
	g.targets = nil
}

// report sets the status line for a queue attempt and returns whether it
// was accepted.
func (g *Game) report(err error, what string) bool {
	if err == nil {
		g.message = ""
		return true
	}
	g.message = fmt.Sprintf("%s: %s", what, describe(err))
	g.logger.Debug("rejected", "what", what, "err", err)
	return false
}

func describe(err error) string {
	switch {
	case errors.Is(err, sim.ErrBusy):
		return "an action is still resolving"
	case errors.Is(err, sim.ErrNotReady):
		return "wait for the turn to finish"
	case errors.Is(err, sim.ErrNoTurns):
		return "out of turns, r to restart"
	case errors.Is(err, sim.ErrInvalidTarget):
		return "not a valid target"
	case errors.Is(err, sim.ErrNoPiece):
		return "no piece there"
	case errors.Is(err, sim.ErrWrongType):
		return "not possible with that piece"
	case errors.Is(err, sim.ErrLocked):
		return "locked until more letters arrive"
	default:
		return err.Error()
	}
}

// apply folds one Advance result into the view state.
func (g *Game) apply(res sim.TurnResult) {
	if res.Resolved {
		g.logger.Info("turn",
			"n", g.engine.TurnsResolved(),
			"action", res.Action,
			"pieces", g.engine.LivingPieceCount(),
		)
	}

	for _, ev := range res.Events {
		g.logger.Debug("event", "kind", ev.Kind, "detail", ev.String())

		switch ev.Kind {
		case sim.EventOpened:
			g.opened = append(g.opened, ev.Index)
			g.letterPos = len(g.opened) - 1
			g.message = fmt.Sprintf("new letter: %q (m to read)", g.letterTitle(ev.Index))
		case sim.EventCorruptionUnlocked:
			g.message = "corruption unlocked: c turns a piece dark"
		case sim.EventPhaseAdvanced:
			g.note(fmt.Sprintf("level %d: now thin the board", ev.Level))
		case sim.EventLevelStarted:
			g.note(fmt.Sprintf("level %d started", ev.Level))
		case sim.EventCaptured:
			g.note(fmt.Sprintf("#%d absorbed", ev.Piece))
		case sim.EventDestroyed:
			g.note(fmt.Sprintf("#%d fell off the rim", ev.Piece))
		case sim.EventGenerated:
			if ev.Cause == sim.CauseFill {
				g.note(fmt.Sprintf("#%d filled a pocket", ev.Piece))
			}
		}
	}

	if g.selected != sim.NoPiece {
		if _, ok := g.engine.Piece(g.selected); !ok {
			g.clearSelection()
		} else if res.Resolved {
			g.refreshTargets()
		}
	}
}

func (g *Game) note(s string) {
	g.recent = append(g.recent, s)
	if len(g.recent) > maxRecent {
		g.recent = g.recent[len(g.recent)-maxRecent:]
	}
}

func (g *Game) letterTitle(idx int) string {
	if idx >= 0 && idx < len(g.letters) {
		return g.letters[idx].Title
	}
	return fmt.Sprintf("letter %d", idx+1)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.engine.Status()
	return core.GameState{
		Score:    st.DisplayLevel,
		Level:    st.Level,
		Phase:    int(st.Phase),
		Turns:    g.engine.TurnsResolved(),
		Captured: g.engine.Captured(),
		GameOver: st.OutOfTurns && g.engine.Pending() == nil,
		Paused:   g.paused,
	}
}
