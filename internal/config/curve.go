package config

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Keyframe is one point of a level curve.
type Keyframe struct {
	Level int     `yaml:"level"`
	Value float64 `yaml:"value"`
}

// Curve maps level numbers to integer values. Keyframes must be listed in
// increasing level order.
type Curve []Keyframe

// Eval returns the curve value at level: linear between keyframes, clamped
// outside them and rounded half to even. An empty curve evaluates to 0.
func (c Curve) Eval(level int) int {
	if len(c) == 0 {
		return 0
	}
	if level <= c[0].Level {
		return round(c[0].Value)
	}
	last := c[len(c)-1]
	if level >= last.Level {
		return round(last.Value)
	}

	// First keyframe strictly after level.
	i := sort.Search(len(c), func(i int) bool { return c[i].Level > level })
	a, b := c[i-1], c[i]
	t := float64(level-a.Level) / float64(b.Level-a.Level)
	return round(a.Value + t*(b.Value-a.Value))
}

// Func returns the curve as a plain level function.
func (c Curve) Func() func(int) int {
	cp := make(Curve, len(c))
	copy(cp, c)
	return cp.Eval
}

// Validate checks ordering and sign.
func (c Curve) Validate() error {
	if len(c) == 0 {
		return errors.New("at least one keyframe is required")
	}
	for i, k := range c {
		if k.Value < 0 {
			return fmt.Errorf("keyframe %d: value must not be negative, got %g", i, k.Value)
		}
		if i > 0 && k.Level <= c[i-1].Level {
			return fmt.Errorf("keyframe %d: level %d is not after %d", i, k.Level, c[i-1].Level)
		}
	}
	return nil
}

func round(v float64) int {
	return int(math.RoundToEven(v))
}
