package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hexcorrupt/internal/config"
	"github.com/vovakirdan/hexcorrupt/internal/core"
	"github.com/vovakirdan/hexcorrupt/internal/games/hexcorrupt"
	"github.com/vovakirdan/hexcorrupt/internal/games/hexcorrupt/letters"
	"github.com/vovakirdan/hexcorrupt/internal/platform/tui"
	"github.com/vovakirdan/hexcorrupt/internal/storage"
)

var (
	flagPlayer  string
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run in this terminal.

Controls:
  Arrows/d e w a z x  - Move the cursor (six hex directions)
  Enter/Space         - Select a piece, then pick a target in line
  N                   - Place a piece under the cursor
  C                   - Corrupt the piece under the cursor (once unlocked)
  M                   - Read letters ([ and ] to browse)
  P                   - Pause
  R                   - Restart from level 1
  ?                   - All keys
  Q/Ctrl+C            - Quit

The mouse can select pieces and targets too.

Examples:
  hexcorrupt play
  hexcorrupt play --player ada
  hexcorrupt play --config ./easy.yaml --log-file ./turns.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Name recorded with your runs")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write turn and event logs to this file")
}

// loadGame reads the game config and letters named by the global flags.
func loadGame() (config.GameConfig, []letters.Letter, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.GameConfig{}, nil, err
	}
	ls, err := letters.Load(cfg.Letters.Dir)
	if err != nil {
		return config.GameConfig{}, nil, fmt.Errorf("loading letters: %w", err)
	}
	return cfg, ls, nil
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, ls, err := loadGame()
	if err != nil {
		return err
	}
	game := hexcorrupt.New(cfg, ls)

	// The terminal belongs to the UI, so logs only go to a file.
	var logger *log.Logger
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Level:           log.DebugLevel,
			Prefix:          "hexcorrupt",
		})
		game.SetLogger(logger)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Player:   flagPlayer,
	}

	// Open run history
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not open run history: %v\n", err)
		// Continue without storage - the game still works
	}

	var recorder tui.RunRecorder
	if store != nil {
		recorder = store
		defer store.Close()
	}

	if err := tui.Run(game, recorder, rc, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
