package game

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	lua "github.com/yuin/gopher-lua"
)

// LuaIntervalGenerator lets operators script the robot's pacing: the script
// must define `nextInterval(tick)` returning a number of milliseconds. Any
// script failure or non-positive return falls back to the default pacing so a
// bad script can never stall or spin the robot.
type LuaIntervalGenerator struct {
	script   string
	tick     int
	fallback Generator
}

func NewLuaIntervalGenerator(script string) (*LuaIntervalGenerator, error) {
	luaState := lua.NewState()
	defer luaState.Close()

	if err := luaState.DoString(script); err != nil {
		return nil, fmt.Errorf("could not parse lua interval script: %w", err)
	}
	if luaState.GetGlobal("nextInterval").Type() != lua.LTFunction {
		return nil, fmt.Errorf("lua interval script does not define nextInterval(tick)")
	}

	return &LuaIntervalGenerator{
		script:   script,
		fallback: EverySecond(),
	}, nil
}

func (g *LuaIntervalGenerator) Next() time.Duration {
	g.tick++

	luaState := lua.NewState()
	defer luaState.Close()
	if err := luaState.DoString(g.script); err != nil {
		log.Warn("lua interval script failed to load", "error", err)
		return g.fallback.Next()
	}

	luaState.Push(luaState.GetGlobal("nextInterval"))
	luaState.Push(lua.LNumber(g.tick))
	if err := luaState.PCall(1, 1, nil); err != nil {
		log.Warn("lua interval script failed", "tick", g.tick, "error", err)
		return g.fallback.Next()
	}

	luaReturn := luaState.Get(-1)
	luaState.Pop(1)

	millis, ok := luaReturn.(lua.LNumber)
	if !ok || millis <= 0 {
		log.Warn("lua interval script returned unusable value", "tick", g.tick, "value", luaReturn.String())
		return g.fallback.Next()
	}

	return time.Duration(millis) * time.Millisecond
}
