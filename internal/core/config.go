package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
	RealTime bool  // Drive game timers from the wall clock instead of frames
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Outcome is how a session ended.
type Outcome int

const (
	OutcomeNone Outcome = iota // still running
	OutcomeWin
	OutcomeLoss
	OutcomeQuit
)

// String returns the outcome name used in logs and storage.
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	case OutcomeQuit:
		return "quit"
	default:
		return "none"
	}
}

// ParseOutcome is the inverse of Outcome.String.
func ParseOutcome(s string) Outcome {
	switch s {
	case "win":
		return OutcomeWin
	case "loss":
		return OutcomeLoss
	case "quit":
		return OutcomeQuit
	default:
		return OutcomeNone
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score         int     // Current score
	GameOver      bool    // Whether the game has ended
	Paused        bool    // Whether the game is paused
	Outcome       Outcome // Set once GameOver is true
	ElapsedMillis int64   // Session time
}

// EventKind classifies things that happened during a tick.
type EventKind int

const (
	EventPlayerHit EventKind = iota
	EventEntityHit
	EventEnemyKilled
	EventSpawned
	EventBulletFired
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventPlayerHit:
		return "player_hit"
	case EventEntityHit:
		return "entity_hit"
	case EventEnemyKilled:
		return "enemy_killed"
	case EventSpawned:
		return "spawned"
	case EventBulletFired:
		return "bullet_fired"
	default:
		return "unknown"
	}
}

// Event is a notable simulation occurrence, used by frontends for logging.
type Event struct {
	Kind   EventKind
	Entity string // entity kind involved, if any
	X, Y   float64
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
