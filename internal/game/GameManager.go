package game

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// Messages pushed to the UI over the update channel.
type MoveAppliedMsg struct {
	Direction Direction
	Result    MoveResult
}
type PlayerDeadMsg struct {
	LivesLeft int
}
type GameWonMsg struct{}
type GameLostMsg struct{}

// GameManager runs one game session: it owns the move loop, applies committed
// moves to the game state, and releases a delegating robot after each one.
// Directions arrive on DirectionChannel from the UI (manual play) or from the
// robot (it is the robot's MoveProcessor).
type GameManager struct {
	State *GameState
	Robot *Robot

	DirectionChannel chan Direction
	UpdateChannel    chan tea.Msg

	stopOnce sync.Once
	stop     chan struct{}
}

func NewGameManager(playerName string, strategy Strategy, seed int64) *GameManager {
	board, spawn := GenerateBoard(DefaultBoardRows, DefaultBoardCols, seed)
	player := NewPlayer(playerName, 1, spawn)
	state := NewGameState(board, player, DefaultLives)

	return &GameManager{
		State:            state,
		Robot:            NewRobotWithStrategy(state, strategy),
		DirectionChannel: make(chan Direction, directionChannelSize),
		UpdateChannel:    make(chan tea.Msg, updateChannelSize),
		stop:             make(chan struct{}),
	}
}

// Move enqueues a committed direction. This is the MoveProcessor surface the
// robot invokes once per tick, and the same path manual keypresses take. The
// enqueue never blocks: the robot commits while holding the decision lock the
// loop needs to drain the queue, so waiting here could wedge them both.
func (gm *GameManager) Move(direction Direction) {
	select {
	case gm.DirectionChannel <- direction:
	case <-gm.stop:
	default:
		log.Warn("move queue full, dropping direction", "direction", direction)
	}
}

// StartGameLoop processes committed moves until the session stops. Run it on
// its own goroutine.
func (gm *GameManager) StartGameLoop() {
	log.Info("game loop started", "player", gm.State.Player().Name)
	for {
		select {
		case <-gm.stop:
			log.Info("game loop stopped", "player", gm.State.Player().Name)
			return
		case direction := <-gm.DirectionChannel:
			gm.applyMove(direction)
		}
	}
}

// StopGameLoop retires the robot and shuts the loop down. Safe to call more
// than once.
func (gm *GameManager) StopGameLoop() {
	gm.Robot.StopDelegation()
	gm.stopOnce.Do(func() { close(gm.stop) })
}

// applyMove commits one direction under the same decision lock the robot
// probes with, then releases the board so the robot may tick again.
func (gm *GameManager) applyMove(direction Direction) {
	player := gm.State.Player()

	moveDecisionLock.Lock()
	position := player.Location()
	if position == nil {
		moveDecisionLock.Unlock()
		gm.State.Board.Release()
		return
	}
	result := gm.State.Board.TryMove(*position, direction, player.ID)
	gm.State.Apply(result)
	moveDecisionLock.Unlock()

	gm.pushUpdate(MoveAppliedMsg{Direction: direction, Result: result})

	switch {
	case gm.State.HasLost():
		log.Info("player lost", "player", player.Name, "moves", gm.State.MovesMade())
		gm.pushUpdate(GameLostMsg{})
	case result.Outcome == MoveDead:
		gm.pushUpdate(PlayerDeadMsg{LivesLeft: gm.State.Lives()})
	case gm.State.HasWon():
		log.Info("player won", "player", player.Name, "moves", gm.State.MovesMade())
		gm.pushUpdate(GameWonMsg{})
	}

	gm.State.Board.Release()
}

func (gm *GameManager) pushUpdate(msg tea.Msg) {
	select {
	case gm.UpdateChannel <- msg:
	default:
		// The UI fell behind; dropping a frame beats stalling the game loop.
	}
}
