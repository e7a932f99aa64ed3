package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hexcorrupt/internal/core"
	"github.com/vovakirdan/hexcorrupt/internal/storage"
)

// Game is what the platform needs from a game. Games contain pure logic
// with no Bubble Tea dependency; the platform handles input, timing and
// rendering.
type Game interface {
	ID() string
	Title() string

	// Reset starts a fresh run sized for cfg.
	Reset(cfg core.RuntimeConfig)

	// Resize adapts to a new terminal size without restarting.
	Resize(w, h int)

	// Step advances the game by one frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// Click handles a primary mouse press at screen cell (x, y).
	Click(x, y int)

	State() core.GameState
}

// RunRecorder persists finished runs. *storage.Store satisfies it.
type RunRecorder interface {
	SaveRun(r storage.Run) (int64, error)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       Game
	screen     *core.Screen
	recorder   RunRecorder
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	recorded   bool // Whether the current run has been saved
	shotDir    string
}

// NewModel creates a new Bubble Tea model for the given game.
// recorder may be nil to disable run history.
func NewModel(game Game, recorder RunRecorder, cfg core.RuntimeConfig) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if cfg.Player == "" {
		cfg.Player = core.DefaultConfig().Player
	}

	h := help.New()
	h.Width = cfg.ScreenW

	home, _ := os.UserHomeDir()
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		recorder:   recorder,
		config:     cfg,
		keys:       NewKeyMapper(DefaultKeyMap()),
		help:       h,
		logger:     log.New(io.Discard),
		inputFrame: core.NewInputFrame(),
		shotDir:    filepath.Join(home, ".hexcorrupt", "screenshots"),
	}
}

// WithLogger returns a copy of the model that logs to l.
func (m Model) WithLogger(l *log.Logger) Model {
	if l != nil {
		m.logger = l
	}
	return m
}

// gameHeight leaves one row for the help bar.
func gameHeight(h int) int {
	return max(h-1, 0)
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Start resets the game for the model's screen size. Call once before
// handing the model to a program.
func (m Model) Start() Model {
	m.game.Reset(core.RuntimeConfig{
		ScreenW:  m.config.ScreenW,
		ScreenH:  gameHeight(m.config.ScreenH),
		TickRate: m.config.TickRate,
		Player:   m.config.Player,
	})
	m.gameState = m.game.State()
	return m
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.game.Click(msg.X, msg.Y)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys.Keys()
	switch {
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	case key.Matches(msg, keys.Shot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.record(m.gameState)
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.layout()
	return m, nil
}

// layout gives the game everything above the help bar.
func (m *Model) layout() {
	h := max(m.config.ScreenH-lipgloss.Height(m.help.View(m.keys.Keys())), 0)
	m.screen.Resize(m.config.ScreenW, h)
	m.game.Resize(m.config.ScreenW, h)
}

// handleTick runs one game frame and records the run once it ends.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	if result.Restarted {
		m.record(prev)
		m.recorded = false
	}
	m.gameState = result.State

	if m.gameState.GameOver {
		m.record(m.gameState)
	}

	return m, tickCmd(m.config.TickRate)
}

// record saves st as a run unless this run was already saved or nothing
// was played.
func (m *Model) record(st core.GameState) {
	if m.recorded || st.Turns == 0 {
		return
	}
	m.recorded = true
	if m.recorder == nil {
		return
	}

	run := storage.Run{
		Player:   m.config.Player,
		Level:    st.Level,
		Phase:    st.Phase,
		Score:    st.Score,
		Turns:    st.Turns,
		Captured: st.Captured,
	}
	if _, err := m.recorder.SaveRun(run); err != nil {
		m.logger.Error("could not save run", "error", err)
		return
	}
	m.logger.Info("run saved", "player", run.Player, "score", run.Score, "turns", run.Turns)
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for game.
func Run(game Game, recorder RunRecorder, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, recorder, cfg).WithLogger(logger).Start()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
