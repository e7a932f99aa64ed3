package core

// RuntimeConfig contains configuration passed to a game at initialization.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Frames per second driving the turn timer (default 30)
	Player   string // Name recorded with finished runs
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Player:   "player",
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Displayed level reached so far
	Level    int  // Engine level
	Phase    int  // 0 growing, 1 shrinking
	Turns    int  // Turns resolved in the current run
	Captured int  // Pieces absorbed by corruption in the current run
	GameOver bool // Out of turns
	Paused   bool
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState

	// Restarted is set on the frame a restart was performed; State then
	// already describes the fresh run.
	Restarted bool
}
