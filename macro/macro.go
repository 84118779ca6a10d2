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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/emuxsync/curated"
	"github.com/jetsetilly/emuxsync/hardware/input"
	"github.com/jetsetilly/emuxsync/hardware/keymap"
	"github.com/jetsetilly/emuxsync/logger"
	"github.com/jetsetilly/emuxsync/userinput"
)

// Sentinal error patterns.
const (
	MacroError  = "macro: %v"
	NotAMacro   = "macro: %s: not a macro file"
	ScriptError = "macro: %s: %d: %s"
)

const logTag = "macro"

const (
	headerLineID = iota
	headerLineVersion
	headerNumLines
)

const headerID = "emuxsyncmacro"
const headerVersion = "1"

// MacroDevice is the device number used for joystick events sent by a macro.
const MacroDevice = userinput.KeyboardDevice

// the number of frames to wait after a controller instruction. this ensures
// that the input has the chance to take effect in the emulation.
const inputWait = 2

// Macro is a type that allows control of an emulation from a series of
// instructions.
type Macro struct {
	frames

	perm      logger.Permission
	emulation Emulation

	filename     string
	instructions []string

	// called by the QUIT instruction. can be nil
	quit func()
}

// NewMacro is the preferred method of initialisation for the Macro type. The
// quit argument can be nil.
func NewMacro(perm logger.Permission, filename string, emulation Emulation, quit func()) (*Macro, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(MacroError, err)
	}
	defer f.Close()
	return ReadMacro(perm, filename, f, emulation, quit)
}

// ReadMacro creates a new Macro from the contents of the io.Reader. The name
// argument is used in log entries.
func ReadMacro(perm logger.Permission, name string, r io.Reader, emulation Emulation, quit func()) (*Macro, error) {
	if perm == nil {
		perm = logger.Allow
	}

	mcr := &Macro{
		frames:    newFrames(),
		perm:      perm,
		emulation: emulation,
		filename:  name,
		quit:      quit,
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		mcr.instructions = append(mcr.instructions, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(MacroError, err)
	}

	if len(mcr.instructions) < headerNumLines {
		return nil, curated.Errorf(NotAMacro, name)
	}
	if strings.TrimSpace(mcr.instructions[headerLineID]) != headerID {
		return nil, curated.Errorf(NotAMacro, name)
	}

	// ignore version string for now

	// we no longer need the header
	mcr.instructions = mcr.instructions[headerNumLines:]

	return mcr, nil
}

type loop struct {
	line int

	// loop counters count upwards because it is more natural when
	// referencing the counter value to think of the counter as counting
	// upwards
	count    int
	countEnd int

	// if loop counter has been named then we need to know it so that we can
	// update the entry in the variables table
	countName string
}

// joystick instructions that affect port zero.
var joystickInstructions = map[string]struct {
	typ   input.UpdateType
	value uint8
}{
	"LEFT":   {input.Absolute, input.JoyLeft},
	"RIGHT":  {input.Absolute, input.JoyRight},
	"UP":     {input.Absolute, input.JoyUp},
	"DOWN":   {input.Absolute, input.JoyDown},
	"CENTRE": {input.And, input.JoyFire},
	"CENTER": {input.And, input.JoyFire},
	"FIRE":   {input.Or, input.JoyFire},
	"NOFIRE": {input.And, input.JoyMask &^ input.JoyFire},
}

var updateTypes = map[string]input.UpdateType{
	"ABSOLUTE": input.Absolute,
	"OR":       input.Or,
	"AND":      input.And,
}

// Run a macro to completion. The macro is run in its own goroutine and is
// registered as a frame trigger with the emulation until it completes.
func (mcr *Macro) Run() {
	mcr.emulation.AddFrameTrigger(mcr)

	go func() {
		defer close(mcr.done)
		defer mcr.emulation.RemoveFrameTrigger(mcr)

		if err := mcr.run(); err != nil {
			logger.Log(mcr.perm, logTag, err)
		}
	}()
}

func (mcr *Macro) run() error {
	var loops []loop
	variables := make(map[string]int)

	scriptErr := func(ln int, msg string, args ...any) error {
		return curated.Errorf(ScriptError, mcr.filename, ln+headerNumLines+1, fmt.Sprintf(msg, args...))
	}

	// converts a token to a number. the token can be a variable reference
	number := func(ln int, s string, bitSize int) (int, error) {
		if strings.HasPrefix(s, "%") {
			v, ok := variables[s[1:]]
			if !ok {
				return 0, scriptErr(ln, "variable '%s' does not exist", s[1:])
			}
			return v, nil
		}

		// convert hex indicator to one that ParseUint can deal with
		if strings.HasPrefix(s, "$") {
			s = fmt.Sprintf("0x%s", s[1:])
		}

		v, err := strconv.ParseUint(s, 0, bitSize)
		if err != nil {
			return 0, scriptErr(ln, "%v", err)
		}
		return int(v), nil
	}

	key := func(ln int, name string) (keymap.Keycode, error) {
		k, ok := keymap.ByName(name)
		if !ok {
			return keymap.KeyNone, scriptErr(ln, "unrecognised key: %s", name)
		}
		return k, nil
	}

	for ln := 0; ln < len(mcr.instructions); ln++ {
		toks := strings.Fields(mcr.instructions[ln])
		if len(toks) == 0 {
			continue // for loop
		}

		switch strings.ToUpper(toks[0]) {
		default:
			return scriptErr(ln, "unrecognised command: %s", toks[0])

		case "--":
			// ignore comment lines

		case "DO":
			switch len(toks) {
			case 1:
				return scriptErr(ln, "too few arguments for DO")
			case 2, 3:
				ct, err := number(ln, toks[1], 32)
				if err != nil {
					return err
				}
				lp := loop{
					line:     ln,
					countEnd: ct,
				}
				if len(toks) == 3 {
					lp.countName = toks[2]
					variables[lp.countName] = lp.count
				}
				loops = append(loops, lp)
			default:
				return scriptErr(ln, "too many arguments for DO")
			}

		case "LOOP":
			if len(toks) > 1 {
				return scriptErr(ln, "too many arguments for LOOP")
			}

			// check for a quit signal but don't wait for it
			if mcr.quitting() {
				return nil
			}

			idx := len(loops) - 1
			if idx == -1 {
				return scriptErr(ln, "LOOP without a DO")
			}

			lp := &loops[idx]
			lp.count++

			if lp.count < lp.countEnd {
				// loop is ongoing so return to start of loop
				ln = lp.line

				// update named variable
				if lp.countName != "" {
					variables[lp.countName] = lp.count
				}
			} else {
				// loop has ended. remove from loop stack and delete variable name
				loops = loops[:idx]
				delete(variables, lp.countName)
			}

		case "WAIT":
			// default to 60 frames
			w := 60

			switch len(toks) {
			case 1:
			case 2:
				var err error
				w, err = number(ln, toks[1], 32)
				if err != nil {
					return err
				}
			default:
				return scriptErr(ln, "too many arguments for WAIT")
			}

			if mcr.wait(w) {
				return nil
			}

		case "KEY", "PRESS", "RELEASE":
			if len(toks) != 2 {
				return scriptErr(ln, "%s requires one argument", toks[0])
			}
			k, err := key(ln, toks[1])
			if err != nil {
				return err
			}
			switch strings.ToUpper(toks[0]) {
			case "KEY":
				mcr.emulation.EnqueueKey(k, true)
				if mcr.wait(inputWait) {
					return nil
				}
				mcr.emulation.EnqueueKey(k, false)
			case "PRESS":
				mcr.emulation.EnqueueKey(k, true)
			case "RELEASE":
				mcr.emulation.EnqueueKey(k, false)
			}
			if mcr.wait(inputWait) {
				return nil
			}

		case "TYPE":
			text := strings.Join(toks[1:], " ")
			for _, c := range text {
				keys, ok := typeKeys(c)
				if !ok {
					return scriptErr(ln, "cannot type '%c'", c)
				}
				for _, k := range keys {
					mcr.emulation.EnqueueKey(k, true)
				}
				if mcr.wait(inputWait) {
					return nil
				}
				for i := len(keys) - 1; i >= 0; i-- {
					mcr.emulation.EnqueueKey(keys[i], false)
				}
				if mcr.wait(inputWait) {
					return nil
				}
			}

		case "JOY":
			if len(toks) != 4 {
				return scriptErr(ln, "JOY requires three arguments")
			}
			port, err := number(ln, toks[1], 8)
			if err != nil {
				return err
			}
			typ, ok := updateTypes[strings.ToUpper(toks[2])]
			if !ok {
				return scriptErr(ln, "unrecognised update type: %s", toks[2])
			}
			value, err := number(ln, toks[3], 8)
			if err != nil {
				return err
			}
			if value < 0 || value > input.JoyMask {
				return scriptErr(ln, "joystick value out of range: %d", value)
			}
			mcr.emulation.EnqueueJoy(port, MacroDevice, typ, uint8(value))
			if mcr.wait(inputWait) {
				return nil
			}

		case "LEFT", "RIGHT", "UP", "DOWN", "CENTRE", "CENTER", "FIRE", "NOFIRE":
			if len(toks) > 1 {
				return scriptErr(ln, "too many arguments for %s", toks[0])
			}
			j := joystickInstructions[strings.ToUpper(toks[0])]
			mcr.emulation.EnqueueJoy(0, MacroDevice, j.typ, j.value)
			if mcr.wait(inputWait) {
				return nil
			}

		case "TAPE":
			if len(toks) != 2 {
				return scriptErr(ln, "TAPE requires one argument")
			}
			if err := mcr.emulation.PushTapeCommand(toks[1]); err != nil {
				return scriptErr(ln, "%v", err)
			}

		case "PAUSE":
			if len(toks) > 1 {
				return scriptErr(ln, "too many arguments for PAUSE")
			}
			mcr.emulation.RequestTrap()

		case "QUIT":
			if len(toks) > 1 {
				return scriptErr(ln, "too many arguments for QUIT")
			}
			if mcr.quit != nil {
				mcr.quit()
			}
			return nil
		}
	}

	return nil
}

// the keys required to type the character. upper case letters are typed with
// the shift key.
func typeKeys(c rune) ([]keymap.Keycode, bool) {
	if c > 0x7f {
		return nil, false
	}
	if c == ' ' {
		return []keymap.Keycode{keymap.KeySpace}, true
	}
	k, ok := userinput.KeyByName(string(c))
	if !ok {
		return nil, false
	}
	if c >= 'A' && c <= 'Z' {
		return []keymap.Keycode{keymap.KeyLeftShift, k}, true
	}
	return []keymap.Keycode{k}, true
}
