package game

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// newOpenTestState builds a 7x7 board with no obstacles and the player bound
// to the centre, so every tick has at least one surviving direction.
func newOpenTestState(lives int) *GameState {
	board := NewGameBoard(7, 7)
	player := NewPlayer("tester", 1, Position{Row: 3, Col: 3})
	return NewGameState(board, player, lives)
}

// recordingProcessor commits moves against the state like the game loop would
// and releases the board afterwards, so a delegating robot keeps ticking.
type recordingProcessor struct {
	state *GameState

	mu      sync.Mutex
	moves   []Direction
	active  int32
	overlap atomic.Bool
}

func (p *recordingProcessor) Move(direction Direction) {
	if atomic.AddInt32(&p.active, 1) > 1 {
		p.overlap.Store(true)
	}
	defer atomic.AddInt32(&p.active, -1)

	p.mu.Lock()
	p.moves = append(p.moves, direction)
	p.mu.Unlock()

	if p.state != nil {
		if position := p.state.Player().Location(); position != nil {
			result := p.state.Board.TryMove(*position, direction, p.state.Player().ID)
			p.state.Apply(result)
		}
		p.state.Board.Release()
	}
}

func (p *recordingProcessor) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.moves)
}

func TestStopDelegationHaltsMoves(t *testing.T) {
	state := newOpenTestState(3)
	robot := NewRobot(state)
	robot.Interval = Every(time.Millisecond)
	processor := &recordingProcessor{state: state}

	robot.StartDelegation(processor)
	require.Eventually(t, func() bool { return processor.count() >= 3 },
		2*time.Second, time.Millisecond)

	robot.StopDelegation()
	frozen := processor.count()
	time.Sleep(30 * time.Millisecond)
	require.Equal(t, frozen, processor.count(),
		"no move may be committed after StopDelegation returns")
}

func TestStartDelegationRetiresPreviousRun(t *testing.T) {
	state := newOpenTestState(3)
	robot := NewRobot(state)
	robot.Interval = Every(time.Millisecond)
	processor := &recordingProcessor{state: state}

	robot.StartDelegation(processor)
	robot.StartDelegation(processor)
	require.Eventually(t, func() bool { return processor.count() >= 3 },
		2*time.Second, time.Millisecond)

	// One stop retires everything: were the first run still alive, the
	// counter would keep climbing.
	robot.StopDelegation()
	frozen := processor.count()
	time.Sleep(30 * time.Millisecond)
	require.Equal(t, frozen, processor.count())
	require.False(t, processor.overlap.Load(), "two ticks committed concurrently")
}

func TestStopDelegationIdempotent(t *testing.T) {
	state := newOpenTestState(3)
	robot := NewRobot(state)

	done := make(chan struct{})
	go func() {
		robot.StopDelegation()
		robot.StopDelegation()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("StopDelegation on an idle robot did not return promptly")
	}
}

func TestStartDelegationNilProcessorPanics(t *testing.T) {
	robot := NewRobot(newOpenTestState(3))
	require.Panics(t, func() { robot.StartDelegation(nil) })
}

func TestRobotNeverMovesAfterLoss(t *testing.T) {
	state := newOpenTestState(0)
	require.True(t, state.HasLost())

	robot := NewRobot(state)
	robot.Interval = Every(time.Millisecond)
	processor := &recordingProcessor{state: state}

	robot.StartDelegation(processor)
	time.Sleep(30 * time.Millisecond)
	robot.StopDelegation()
	require.Zero(t, processor.count())
}

func TestUnboundPlayerTicksAreNoOps(t *testing.T) {
	state := newOpenTestState(3)
	state.Player().Unbind()

	robot := NewRobot(state)
	robot.Interval = Every(time.Millisecond)
	processor := &recordingProcessor{state: state}

	robot.StartDelegation(processor)
	time.Sleep(30 * time.Millisecond)
	robot.StopDelegation()
	require.Zero(t, processor.count())
}

func TestIntervalSwapTakesEffect(t *testing.T) {
	state := newOpenTestState(3)
	robot := NewRobot(state)
	robot.Interval = Every(time.Hour)
	processor := &recordingProcessor{state: state}

	robot.StartDelegation(processor)
	time.Sleep(10 * time.Millisecond)
	require.Zero(t, processor.count())
	robot.StopDelegation()

	// Plain reassignment, picked up by the next run's first sleep.
	robot.Interval = Every(time.Millisecond)
	robot.StartDelegation(processor)
	require.Eventually(t, func() bool { return processor.count() >= 1 },
		2*time.Second, time.Millisecond)
	robot.StopDelegation()
}
