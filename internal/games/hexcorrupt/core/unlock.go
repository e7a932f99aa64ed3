package core

import "time"

// Threshold is the earliest (level, phase) at which a reveal fires.
// Both parts must be reached: level >= Level and phase >= Phase.
type Threshold struct {
	Level int
	Phase Phase
}

// Reached reports whether the threshold is met.
func (t Threshold) Reached(level int, phase Phase) bool {
	return level >= t.Level && phase >= t.Phase
}

// DefaultThresholds are the six narrative reveals.
func DefaultThresholds() []Threshold {
	return []Threshold{
		{Level: 1, Phase: PhaseGrowing},
		{Level: 1, Phase: PhaseShrinking},
		{Level: 2, Phase: PhaseGrowing},
		{Level: 2, Phase: PhaseShrinking},
		{Level: 3, Phase: PhaseShrinking},
		{Level: 5, Phase: PhaseGrowing},
	}
}

// Unlocks walks an ordered list of thresholds with a counter that only grows.
type Unlocks struct {
	thresholds []Threshold
	received   int
}

// NewUnlocks creates a tracker over thresholds, checked in order.
func NewUnlocks(thresholds []Threshold) *Unlocks {
	ts := make([]Threshold, len(thresholds))
	copy(ts, thresholds)
	return &Unlocks{thresholds: ts}
}

// Received returns how many reveals have fired.
func (u *Unlocks) Received() int {
	return u.received
}

// Total returns the number of configured reveals.
func (u *Unlocks) Total() int {
	return len(u.thresholds)
}

// Check fires every consecutive threshold reached at (level, phase) and
// returns their indices. Already fired thresholds are never returned again.
func (u *Unlocks) Check(level int, phase Phase) []int {
	var fired []int
	for u.received < len(u.thresholds) && u.thresholds[u.received].Reached(level, phase) {
		fired = append(fired, u.received)
		u.received++
	}
	return fired
}

// task is a deferred callback run by the engine clock.
type task struct {
	due time.Duration
	run func() []Event
}

// scheduler runs fire-and-forget tasks against a virtual clock advanced by
// the engine. Tasks are never cancelled or merged.
type scheduler struct {
	now   time.Duration
	tasks []task
}

func (s *scheduler) after(d time.Duration, fn func() []Event) {
	s.tasks = append(s.tasks, task{due: s.now + d, run: fn})
}

// advance moves the clock forward and runs due tasks in scheduling order.
func (s *scheduler) advance(dt time.Duration) []Event {
	s.now += dt
	var events []Event
	kept := s.tasks[:0]
	var due []task
	for _, t := range s.tasks {
		if t.due <= s.now {
			due = append(due, t)
		} else {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
	for _, t := range due {
		events = append(events, t.run()...)
	}
	return events
}

func (s *scheduler) pending() int {
	return len(s.tasks)
}
