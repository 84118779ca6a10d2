// This file is part of emuxsync.
//
// emuxsync is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// emuxsync is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with emuxsync.  If not, see <https://www.gnu.org/licenses/>.

package macro

import (
	"os"
	"strings"

	"github.com/jetsetilly/emuxsync/curated"
	"github.com/jetsetilly/emuxsync/hardware/input"
	"github.com/jetsetilly/emuxsync/hardware/keymap"
	"github.com/jetsetilly/emuxsync/logger"
	lua "github.com/yuin/gopher-lua"
)

// Sentinal error pattern.
const LuaError = "macro: lua: %v"

// raised inside the Lua state when the script has been told to quit.
const luaQuit = "script quit"

// Lua runs a Lua script that controls the emulation. The following functions
// are available to the script:
//
//	key(name, pressed)
//	joy(port, type, value)       -- type is "ABSOLUTE", "OR" or "AND"
//	tape(command)
//	wait([frames])               -- frames defaults to 60
//	frame()                      -- returns the current frame number
//	pause()
//	quit()
type Lua struct {
	frames

	perm      logger.Permission
	emulation Emulation

	name   string
	script string

	// the most recent frame number seen by the script
	current int

	// called by the quit() function. can be nil
	quit func()
}

// NewLua is the preferred method of initialisation for the Lua type. The
// quit argument can be nil.
func NewLua(perm logger.Permission, filename string, emulation Emulation, quit func()) (*Lua, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf(LuaError, err)
	}
	return NewLuaFromString(perm, filename, string(b), emulation, quit), nil
}

// NewLuaFromString creates a new Lua from the script. The name argument is
// used in log entries.
func NewLuaFromString(perm logger.Permission, name string, script string, emulation Emulation, quit func()) *Lua {
	if perm == nil {
		perm = logger.Allow
	}
	return &Lua{
		frames:    newFrames(),
		perm:      perm,
		emulation: emulation,
		name:      name,
		script:    script,
		quit:      quit,
	}
}

// Run the script to completion. The script is run in its own goroutine and is
// registered as a frame trigger with the emulation until it completes.
func (lm *Lua) Run() {
	lm.emulation.AddFrameTrigger(lm)

	go func() {
		defer close(lm.done)
		defer lm.emulation.RemoveFrameTrigger(lm)

		if err := lm.run(); err != nil {
			logger.Log(lm.perm, logTag, err)
		}
	}()
}

func (lm *Lua) run() error {
	L := lua.NewState()
	defer L.Close()

	L.SetGlobal("key", L.NewFunction(lm.fnKey))
	L.SetGlobal("joy", L.NewFunction(lm.fnJoy))
	L.SetGlobal("tape", L.NewFunction(lm.fnTape))
	L.SetGlobal("wait", L.NewFunction(lm.fnWait))
	L.SetGlobal("frame", L.NewFunction(lm.fnFrame))
	L.SetGlobal("pause", L.NewFunction(lm.fnPause))
	L.SetGlobal("quit", L.NewFunction(lm.fnQuit))

	err := L.DoString(lm.script)
	if err != nil {
		if strings.Contains(err.Error(), luaQuit) {
			return nil
		}
		return curated.Errorf(LuaError, err)
	}
	return nil
}

func (lm *Lua) fnKey(L *lua.LState) int {
	name := L.CheckString(1)
	pressed := L.OptBool(2, true)
	k, ok := keymap.ByName(name)
	if !ok {
		L.ArgError(1, "unrecognised key")
		return 0
	}
	lm.emulation.EnqueueKey(k, pressed)
	return 0
}

func (lm *Lua) fnJoy(L *lua.LState) int {
	port := L.CheckInt(1)
	typ, ok := updateTypes[strings.ToUpper(L.CheckString(2))]
	if !ok {
		L.ArgError(2, "unrecognised update type")
		return 0
	}
	value := L.CheckInt(3)
	if value < 0 || value > input.JoyMask {
		L.ArgError(3, "joystick value out of range")
		return 0
	}
	lm.emulation.EnqueueJoy(port, MacroDevice, typ, uint8(value))
	return 0
}

func (lm *Lua) fnTape(L *lua.LState) int {
	if err := lm.emulation.PushTapeCommand(L.CheckString(1)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (lm *Lua) fnWait(L *lua.LState) int {
	w := L.OptInt(1, 60)

	var target int
	select {
	case fn := <-lm.frames.frameNum:
		target = fn + w
		lm.current = fn
	case <-lm.frames.quit:
		L.RaiseError(luaQuit)
		return 0
	}

	for lm.current < target {
		select {
		case fn := <-lm.frames.frameNum:
			lm.current = fn
		case <-lm.frames.quit:
			L.RaiseError(luaQuit)
			return 0
		}
	}
	return 0
}

func (lm *Lua) fnFrame(L *lua.LState) int {
	L.Push(lua.LNumber(lm.current))
	return 1
}

func (lm *Lua) fnPause(L *lua.LState) int {
	lm.emulation.RequestTrap()
	return 0
}

func (lm *Lua) fnQuit(L *lua.LState) int {
	if lm.quit != nil {
		lm.quit()
	}
	L.RaiseError(luaQuit)
	return 0
}
