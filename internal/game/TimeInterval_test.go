package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEverySecond(t *testing.T) {
	generator := EverySecond()
	for i := 0; i < 3; i++ {
		assert.Equal(t, time.Second, generator.Next())
	}
}

func TestEveryYieldsConstantInterval(t *testing.T) {
	generator := Every(250 * time.Millisecond)
	assert.Equal(t, 250*time.Millisecond, generator.Next())
	assert.Equal(t, 250*time.Millisecond, generator.Next())
}

func TestJitteredStaysInRange(t *testing.T) {
	generator := Jittered(100*time.Millisecond, 200*time.Millisecond)
	for i := 0; i < 64; i++ {
		interval := generator.Next()
		require.GreaterOrEqual(t, interval, 100*time.Millisecond)
		require.Less(t, interval, 200*time.Millisecond)
	}
}

func TestJitteredDegenerateRange(t *testing.T) {
	generator := Jittered(time.Second, time.Second)
	assert.Equal(t, time.Second, generator.Next())
}
