package game

import (
	"math/rand"
	"time"
)

// Generator yields the delay before each robot move. Implementations may be
// stateless or stateful; Next may be called any number of times.
type Generator interface {
	Next() time.Duration
}

type fixedInterval time.Duration

func (g fixedInterval) Next() time.Duration {
	return time.Duration(g)
}

// EverySecond is the default pacing for a delegating robot.
func EverySecond() Generator {
	return fixedInterval(time.Second)
}

// Every yields the same interval on each call.
func Every(interval time.Duration) Generator {
	return fixedInterval(interval)
}

type jitteredInterval struct {
	low, high time.Duration
}

func (g jitteredInterval) Next() time.Duration {
	if g.high <= g.low {
		return g.low
	}
	return g.low + time.Duration(rand.Int63n(int64(g.high-g.low)))
}

// Jittered yields a uniformly random interval in [low, high).
func Jittered(low, high time.Duration) Generator {
	return jitteredInterval{low: low, high: high}
}
