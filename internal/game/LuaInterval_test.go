package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLuaIntervalGenerator(t *testing.T) {
	generator, err := NewLuaIntervalGenerator(`
		function nextInterval(tick)
			return 250
		end
	`)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, generator.Next())
}

func TestLuaIntervalGeneratorSeesTick(t *testing.T) {
	generator, err := NewLuaIntervalGenerator(`
		function nextInterval(tick)
			return tick * 10
		end
	`)
	require.NoError(t, err)
	assert.Equal(t, 10*time.Millisecond, generator.Next())
	assert.Equal(t, 20*time.Millisecond, generator.Next())
}

func TestLuaIntervalGeneratorRejectsBrokenScript(t *testing.T) {
	_, err := NewLuaIntervalGenerator(`this is not lua`)
	require.Error(t, err)
}

func TestLuaIntervalGeneratorRequiresNextInterval(t *testing.T) {
	_, err := NewLuaIntervalGenerator(`x = 1`)
	require.Error(t, err)
}

func TestLuaIntervalGeneratorFallsBackOnBadReturn(t *testing.T) {
	generator, err := NewLuaIntervalGenerator(`
		function nextInterval(tick)
			return -5
		end
	`)
	require.NoError(t, err)
	assert.Equal(t, time.Second, generator.Next(), "non-positive intervals fall back to the default")

	generator, err = NewLuaIntervalGenerator(`
		function nextInterval(tick)
			return "soon"
		end
	`)
	require.NoError(t, err)
	assert.Equal(t, time.Second, generator.Next())
}
