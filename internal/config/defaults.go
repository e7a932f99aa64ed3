package config

import (
	_ "embed"
)

//go:embed defaults/hexcorrupt.yaml
var defaultGameYAML []byte

// DefaultConfig returns the hardcoded configuration used when no YAML
// source can be read.
func DefaultConfig() GameConfig {
	return GameConfig{
		Board: BoardConfig{
			Radius: 4,
		},
		Turn: TurnConfig{
			LengthMS: 250,
		},
		Curves: CurvesConfig{
			GrowGoals: Curve{{Level: 1, Value: 10}, {Level: 10, Value: 30}},
			GrowTurns: Curve{{Level: 1, Value: 10}, {Level: 10, Value: 25}},
			KillGoals: Curve{{Level: 1, Value: 3}, {Level: 10, Value: 12}},
			KillTurns: Curve{{Level: 1, Value: 8}, {Level: 10, Value: 20}},
		},
		Letters: LettersConfig{
			DelayMS:        1500,
			CorruptionGate: 5,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultGameYAML
}
