package game

import "sync"

// GameState tracks one run of the game: the board, the player, lives and the
// win/lose conditions. Reads are safe from any goroutine; mutation happens
// through Apply on the game loop goroutine.
type GameState struct {
	Board  *GameBoard
	player *Player

	mu       sync.Mutex
	lives    int
	gemsLeft int
	moves    int
}

func NewGameState(board *GameBoard, player *Player, lives int) *GameState {
	return &GameState{
		Board:    board,
		player:   player,
		lives:    lives,
		gemsLeft: board.CountGems(),
	}
}

func (gs *GameState) Player() *Player {
	return gs.player
}

// HasLost reports whether the player is out of lives. Side-effect free.
func (gs *GameState) HasLost() bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.lives <= 0
}

// HasWon reports whether every gem on the board has been collected.
func (gs *GameState) HasWon() bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.gemsLeft <= 0
}

func (gs *GameState) Lives() int {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.lives
}

func (gs *GameState) GemsLeft() int {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.gemsLeft
}

func (gs *GameState) MovesMade() int {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.moves
}

// Apply commits a TryMove result: pickups leave the board, the player is
// rebound to the destination, a dead move costs a life. An invalid result
// changes nothing. Callers hold the process-wide move decision lock so the
// board view probes saw is the one being committed.
func (gs *GameState) Apply(result MoveResult) {
	switch result.Outcome {
	case MoveInvalid:
		return

	case MoveAlive:
		for _, gem := range result.CollectedGems {
			gs.Board.SetCell(gem, CellEmpty)
		}
		for _, life := range result.CollectedLives {
			gs.Board.SetCell(life, CellEmpty)
		}
		gs.player.Bind(result.Destination)
		gs.player.addGems(len(result.CollectedGems))

		gs.mu.Lock()
		gs.gemsLeft -= len(result.CollectedGems)
		gs.lives += len(result.CollectedLives)
		gs.moves++
		gs.mu.Unlock()

	case MoveDead:
		gs.mu.Lock()
		gs.lives--
		gs.moves++
		lost := gs.lives <= 0
		gs.mu.Unlock()

		if lost {
			gs.player.Unbind()
		}
	}
}
