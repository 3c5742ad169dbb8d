package game

// Strategy names the move policy a robot is constructed with.
type Strategy int

const (
	StrategyRandom Strategy = iota
	StrategySmart
)

func (s Strategy) String() string {
	switch s {
	case StrategyRandom:
		return "random"
	case StrategySmart:
		return "smart"
	default:
		return "unknown"
	}
}

// probeFunc evaluates one direction without committing it.
type probeFunc func(Direction) MoveResult

// MoveStrategy picks the next direction given a probe over the four
// candidates. The boolean is false when no move should be made this tick.
type MoveStrategy interface {
	NextDirection(probe probeFunc) (Direction, bool)
}

func newMoveStrategy(s Strategy) MoveStrategy {
	if s == StrategySmart {
		return &SmartStrategy{}
	}
	return &RandomStrategy{}
}

// RandomStrategy moves randomly but rationally: any surviving direction is
// preferred, a dying direction still beats not moving, and when every
// direction is rejected no move is made.
type RandomStrategy struct{}

func (s *RandomStrategy) NextDirection(probe probeFunc) (Direction, bool) {
	var alive, dead *Direction

	for _, direction := range shuffledDirections() {
		direction := direction
		switch probe(direction).Outcome {
		case MoveAlive:
			alive = &direction
		case MoveDead:
			dead = &direction
		}
	}

	if alive != nil {
		return *alive, true
	}
	if dead != nil {
		return *dead, true
	}
	return 0, false
}

// SmartStrategy avoids undoing its own previous move: the reverse of the last
// chosen direction is excluded from the scan, and only surviving directions
// are acceptable. When nothing survives it reverses the previous move as a
// forced fallback. It owns the previous-direction memory and is only ever
// invoked from its robot's delegation goroutine.
type SmartStrategy struct {
	prevStep *Direction
}

func (s *SmartStrategy) NextDirection(probe probeFunc) (Direction, bool) {
	var reverse *Direction
	if s.prevStep != nil {
		r := s.prevStep.Opposite()
		reverse = &r
	}

	var alive *Direction
	for _, direction := range shuffledDirections() {
		if reverse != nil && direction == *reverse {
			continue
		}
		if probe(direction).Outcome == MoveAlive {
			direction := direction
			alive = &direction
		}
	}

	if alive != nil {
		s.prevStep = alive
		return *alive, true
	}

	// Forced fallback: reverse the previous move. Reachable with no previous
	// direction only when the very first tick has zero surviving candidates,
	// which is a caller sequencing bug rather than a game situation.
	if reverse == nil {
		panic("game: smart strategy has no previous direction to reverse")
	}
	s.prevStep = reverse
	return *reverse, true
}
