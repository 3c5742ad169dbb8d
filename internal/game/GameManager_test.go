package game

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(state *GameState, strategy Strategy) *GameManager {
	return &GameManager{
		State:            state,
		Robot:            NewRobotWithStrategy(state, strategy),
		DirectionChannel: make(chan Direction, directionChannelSize),
		UpdateChannel:    make(chan tea.Msg, updateChannelSize),
		stop:             make(chan struct{}),
	}
}

func waitForUpdate(t *testing.T, gm *GameManager) tea.Msg {
	t.Helper()
	select {
	case msg := <-gm.UpdateChannel:
		return msg
	case <-time.After(time.Second):
		t.Fatal("no update from game loop")
		return nil
	}
}

func TestGameManagerAppliesCommittedMoves(t *testing.T) {
	state := newOpenTestState(3)
	gm := newTestManager(state, StrategyRandom)
	go gm.StartGameLoop()
	defer gm.StopGameLoop()

	before := state.Board.ReleaseGeneration()
	gm.Move(Right)

	msg := waitForUpdate(t, gm)
	applied, ok := msg.(MoveAppliedMsg)
	require.True(t, ok, "expected MoveAppliedMsg, got %T", msg)
	assert.Equal(t, Right, applied.Direction)
	assert.Equal(t, MoveAlive, applied.Result.Outcome)
	assert.Equal(t, 1, state.MovesMade())

	require.Eventually(t, func() bool {
		return state.Board.ReleaseGeneration() > before
	}, time.Second, time.Millisecond, "every committed move must release the board")
}

func TestGameManagerReportsDeathAndLoss(t *testing.T) {
	board := NewGameBoard(5, 5)
	board.SetCell(Position{Row: 2, Col: 3}, CellMine)
	player := NewPlayer("tester", 1, Position{Row: 2, Col: 2})
	state := NewGameState(board, player, 1)

	gm := newTestManager(state, StrategyRandom)
	go gm.StartGameLoop()
	defer gm.StopGameLoop()

	gm.Move(Right)

	applied, ok := waitForUpdate(t, gm).(MoveAppliedMsg)
	require.True(t, ok)
	require.Equal(t, MoveDead, applied.Result.Outcome)

	_, ok = waitForUpdate(t, gm).(GameLostMsg)
	require.True(t, ok, "losing the last life must emit GameLostMsg")
	assert.True(t, state.HasLost())
}

func TestGameManagerDrivesDelegatedRobot(t *testing.T) {
	state := newOpenTestState(3)
	gm := newTestManager(state, StrategyRandom)
	gm.Robot.Interval = Every(time.Millisecond)

	go gm.StartGameLoop()
	gm.Robot.StartDelegation(gm)

	require.Eventually(t, func() bool { return state.MovesMade() >= 3 },
		2*time.Second, time.Millisecond,
		"robot ticks must flow through the game loop and be released back")

	gm.StopGameLoop()
	frozen := state.MovesMade()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, frozen, state.MovesMade())
}

func TestStopGameLoopIsIdempotent(t *testing.T) {
	gm := newTestManager(newOpenTestState(3), StrategySmart)
	go gm.StartGameLoop()
	gm.StopGameLoop()
	gm.StopGameLoop()
}
