package game

// Position is a cell coordinate on the game board.
type Position struct {
	Row, Col int
}

// MoveOutcome tags the result of attempting a move in one direction.
// Exactly one tag applies per attempt.
type MoveOutcome int

const (
	// MoveInvalid means the move was rejected and nothing changed.
	MoveInvalid MoveOutcome = iota
	// MoveAlive means the move succeeds and the player survives it.
	MoveAlive
	// MoveDead means the move succeeds but the player dies on the way.
	MoveDead
)

func (o MoveOutcome) String() string {
	switch o {
	case MoveInvalid:
		return "invalid"
	case MoveAlive:
		return "alive"
	case MoveDead:
		return "dead"
	default:
		return "unknown"
	}
}

// MoveResult describes everything a committed move would do. TryMove computes
// it without touching the board, so the same result can be probed, discarded,
// or handed to GameState.Apply to actually perform the move.
type MoveResult struct {
	Outcome     MoveOutcome
	Destination Position

	// Cells the slide passed over that hold pickups.
	CollectedGems  []Position
	CollectedLives []Position

	// HitMine is set only when Outcome is MoveDead.
	HitMine Position
}
