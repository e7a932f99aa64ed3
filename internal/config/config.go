// Package config provides YAML-based configuration loading for hexcorrupt:
// board size, turn timing, level curves and narrative reveal settings.
package config

import (
	"errors"
	"fmt"
	"time"
)

// GameConfig contains all configuration for a hexcorrupt run.
type GameConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Turn    TurnConfig    `yaml:"turn"`
	Curves  CurvesConfig  `yaml:"curves"`
	Letters LettersConfig `yaml:"letters"`
}

// BoardConfig defines the board shape.
type BoardConfig struct {
	Radius int `yaml:"radius"`
}

// TurnConfig defines turn timing.
type TurnConfig struct {
	LengthMS int `yaml:"length_ms"` // Time one resolved turn takes to play out
}

// Length returns the turn length as a duration.
func (t TurnConfig) Length() time.Duration {
	return time.Duration(t.LengthMS) * time.Millisecond
}

// CurvesConfig holds the level-indexed goal and budget curves.
type CurvesConfig struct {
	GrowGoals Curve `yaml:"grow_goals"` // Pieces needed to finish the growing phase
	GrowTurns Curve `yaml:"grow_turns"` // Turn budget for the growing phase
	KillGoals Curve `yaml:"kill_goals"` // Pieces allowed to remain after shrinking
	KillTurns Curve `yaml:"kill_turns"` // Turn budget for the shrinking phase
}

// LettersConfig controls narrative reveals.
type LettersConfig struct {
	DelayMS        int    `yaml:"delay_ms"`        // Delay before a new letter opens
	CorruptionGate int    `yaml:"corruption_gate"` // Letters required before corrupting; 0 = always
	Dir            string `yaml:"dir"`             // Optional directory of letter files
}

// Delay returns the open delay as a duration.
func (l LettersConfig) Delay() time.Duration {
	return time.Duration(l.DelayMS) * time.Millisecond
}

// Validate reports every problem in the config at once.
func (c GameConfig) Validate() error {
	var errs []error
	if c.Board.Radius < 1 || c.Board.Radius > 10 {
		errs = append(errs, fmt.Errorf("board.radius must be in [1, 10], got %d", c.Board.Radius))
	}
	if c.Turn.LengthMS <= 0 {
		errs = append(errs, fmt.Errorf("turn.length_ms must be positive, got %d", c.Turn.LengthMS))
	}
	if c.Letters.DelayMS < 0 {
		errs = append(errs, fmt.Errorf("letters.delay_ms must not be negative, got %d", c.Letters.DelayMS))
	}
	if c.Letters.CorruptionGate < 0 {
		errs = append(errs, fmt.Errorf("letters.corruption_gate must not be negative, got %d", c.Letters.CorruptionGate))
	}

	curves := []struct {
		name  string
		curve Curve
	}{
		{"grow_goals", c.Curves.GrowGoals},
		{"grow_turns", c.Curves.GrowTurns},
		{"kill_goals", c.Curves.KillGoals},
		{"kill_turns", c.Curves.KillTurns},
	}
	for _, cv := range curves {
		if err := cv.curve.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("curves.%s: %w", cv.name, err))
		}
	}

	return errors.Join(errs...)
}
