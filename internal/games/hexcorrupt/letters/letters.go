// Package letters loads the narrative letters revealed as the player
// progresses. This package depends on core but core does not depend on letters.
package letters

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/vovakirdan/hexcorrupt/internal/games/hexcorrupt/core"
	"gopkg.in/yaml.v3"
)

//go:embed defaults/letters.yaml
var defaultLettersYAML []byte

// Letter is one narrative reveal.
type Letter struct {
	Index  int
	Title  string
	Body   string
	Unlock core.Threshold
}

// yamlFile is the on-disk shape of a letters file.
type yamlFile struct {
	Letters []yamlLetter `yaml:"letters"`
}

type yamlLetter struct {
	Index  int        `yaml:"index"`
	Title  string     `yaml:"title"`
	Body   string     `yaml:"body"`
	Unlock yamlUnlock `yaml:"unlock"`
}

type yamlUnlock struct {
	Level int    `yaml:"level"`
	Phase string `yaml:"phase"` // "growing" or "shrinking"
}

// Parse decodes a letters file.
func Parse(data []byte) ([]Letter, error) {
	var f yamlFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	out := make([]Letter, 0, len(f.Letters))
	for _, yl := range f.Letters {
		phase, err := parsePhase(yl.Unlock.Phase)
		if err != nil {
			return nil, fmt.Errorf("letter %d: %w", yl.Index, err)
		}
		if yl.Unlock.Level < 1 {
			return nil, fmt.Errorf("letter %d: unlock level must be at least 1", yl.Index)
		}
		out = append(out, Letter{
			Index:  yl.Index,
			Title:  yl.Title,
			Body:   strings.TrimSpace(yl.Body),
			Unlock: core.Threshold{Level: yl.Unlock.Level, Phase: phase},
		})
	}
	return out, nil
}

func parsePhase(s string) (core.Phase, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "growing", "grow":
		return core.PhaseGrowing, nil
	case "shrinking", "shrink":
		return core.PhaseShrinking, nil
	default:
		return 0, fmt.Errorf("unknown phase %q", s)
	}
}

// Default returns the embedded letter set.
func Default() []Letter {
	ls, err := Parse(defaultLettersYAML)
	if err != nil {
		return nil
	}
	Sort(ls)
	return ls
}

// Sort orders letters by index.
func Sort(ls []Letter) {
	sort.SliceStable(ls, func(i, j int) bool {
		return ls[i].Index < ls[j].Index
	})
}

// Thresholds returns the unlock thresholds in letter order.
func Thresholds(ls []Letter) []core.Threshold {
	out := make([]core.Threshold, len(ls))
	for i, l := range ls {
		out[i] = l.Unlock
	}
	return out
}
