package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	FrameRate int   // Rendered frames per second (default 60)
	Seed      int64 // RNG seed for deterministic gameplay
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score   int    // Current score
	Enemies int    // Enemies currently alive
	Ticks   uint64 // Physics ticks simulated since reset
	Paused  bool   // Whether the game is paused
}

// StepResult is returned by Game.Update() after each rendered frame.
// It reports what the simulation did while catching up to wall-clock time.
type StepResult struct {
	State      GameState
	Ticks      int // Physics ticks run during this update
	Spawned    int // Enemies spawned during this update
	Collisions int // Collision events emitted during this update
	Sounds     int // Collision sounds played during this update
}
