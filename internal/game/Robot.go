package game

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// MoveProcessor receives the direction a robot committed to. It is how the
// chosen move is carried onward to whatever runs the game.
type MoveProcessor interface {
	Move(Direction)
}

// moveDecisionLock serializes the probe-then-commit section of every robot in
// the process. Probes read the same board cells a commit mutates, so at most
// one tick may be deciding or moving at a time regardless of which robot owns
// it.
var moveDecisionLock sync.Mutex

// stopNudgeInterval bounds how long StopDelegation waits between wake-ups of
// a delegation goroutine that may be parked on the release condition.
const stopNudgeInterval = time.Millisecond

// Robot delegates the movement control of a player: on a background schedule
// it probes the four directions, lets its strategy pick one, commits it via
// the move processor, then waits for the game loop to release it before the
// next tick. It is safe to start and stop from any goroutine.
type Robot struct {
	gameState *GameState
	strategy  MoveStrategy

	// Interval yields the delay before each tick. Swapping it is a plain
	// assignment with last-write-wins semantics; a tick already sleeping
	// keeps the interval it drew.
	Interval Generator

	// lifecycle serializes start/stop so two concurrent starts can never
	// leave two delegation goroutines behind.
	lifecycle sync.Mutex
	run       *delegationRun
}

// delegationRun is one background delegation. stop is closed to request
// termination, done is closed by the goroutine on its way out.
type delegationRun struct {
	stop chan struct{}
	done chan struct{}
}

func NewRobot(gameState *GameState) *Robot {
	return NewRobotWithStrategy(gameState, StrategyRandom)
}

func NewRobotWithStrategy(gameState *GameState, strategy Strategy) *Robot {
	return &Robot{
		gameState: gameState,
		strategy:  newMoveStrategy(strategy),
		Interval:  EverySecond(),
	}
}

// StartDelegation retires any delegation already running for this robot, then
// starts a new one and returns without waiting for a tick. After it returns,
// at most one delegation goroutine is active for this robot. A nil processor
// is a programming error.
func (r *Robot) StartDelegation(processor MoveProcessor) {
	if processor == nil {
		panic("game: robot started with nil move processor")
	}

	r.lifecycle.Lock()
	defer r.lifecycle.Unlock()

	r.stopLocked()

	run := &delegationRun{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	r.run = run

	go r.delegate(run, processor)
}

// StopDelegation signals the active delegation to terminate and blocks until
// its goroutine has fully exited. The goroutine may be parked on the board's
// release condition, so the wake-up is repeated until it reports done. Safe
// to call when nothing is running and safe to call repeatedly.
func (r *Robot) StopDelegation() {
	r.lifecycle.Lock()
	defer r.lifecycle.Unlock()
	r.stopLocked()
}

func (r *Robot) stopLocked() {
	run := r.run
	r.run = nil
	if run == nil {
		return
	}

	close(run.stop)
	for {
		r.gameState.Board.wakeWaiters()
		select {
		case <-run.done:
			return
		case <-time.After(stopNudgeInterval):
		}
	}
}

// delegate is the background loop: one iteration is one tick. The exit
// condition is checked before and after the sleep so no move is ever
// attempted after a stop was observed or the game was lost.
func (r *Robot) delegate(run *delegationRun, processor MoveProcessor) {
	defer close(run.done)

	for {
		if r.exitRequested(run) {
			return
		}

		r.sleepInterval(run)

		if r.exitRequested(run) {
			return
		}

		generation := r.gameState.Board.ReleaseGeneration()
		r.tick(processor)
		r.gameState.Board.AwaitReleaseSince(generation, func() bool {
			return r.exitRequested(run)
		})
	}
}

func (r *Robot) exitRequested(run *delegationRun) bool {
	select {
	case <-run.stop:
		return true
	default:
	}
	return r.gameState.HasLost()
}

// sleepInterval waits the generated delay. A stop arriving mid-sleep shortens
// it; waking early is never an error.
func (r *Robot) sleepInterval(run *delegationRun) {
	generator := r.Interval
	if generator == nil {
		generator = EverySecond()
	}

	timer := time.NewTimer(generator.Next())
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-run.stop:
	}
}

// tick performs one decision under the process-wide lock: probe all four
// directions, delegate the choice to the strategy, commit it. A player with
// no board binding makes this tick a no-op.
func (r *Robot) tick(processor MoveProcessor) {
	moveDecisionLock.Lock()
	defer moveDecisionLock.Unlock()

	player := r.gameState.Player()
	position := player.Location()
	if position == nil {
		return
	}

	probe := func(direction Direction) MoveResult {
		return r.gameState.Board.TryMove(*position, direction, player.ID)
	}

	direction, ok := r.strategy.NextDirection(probe)
	if !ok {
		log.Debug("robot found no direction to move", "player", player.Name)
		return
	}
	processor.Move(direction)
}
