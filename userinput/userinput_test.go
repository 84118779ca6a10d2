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

package userinput_test

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jetsetilly/emuxsync/hardware/input"
	"github.com/jetsetilly/emuxsync/hardware/keymap"
	"github.com/jetsetilly/emuxsync/hardware/tape"
	"github.com/jetsetilly/emuxsync/prefs"
	"github.com/jetsetilly/emuxsync/test"
	"github.com/jetsetilly/emuxsync/userinput"
)

// recorder implements the userinput.Input interface.
type recorder struct {
	crit   sync.Mutex
	events []string
}

func (r *recorder) add(s string) {
	r.crit.Lock()
	defer r.crit.Unlock()
	r.events = append(r.events, s)
}

func (r *recorder) EnqueueKey(key keymap.Keycode, pressed bool) {
	r.add(fmt.Sprintf("key %s %v", key, pressed))
}

func (r *recorder) EnqueueJoy(port int, device int, typ input.UpdateType, value uint8) {
	r.add(fmt.Sprintf("joy %d %d %s %02x", port, device, typ, value))
}

func (r *recorder) RequestTrap() {
	r.add("trap")
}

func (r *recorder) PushTapeCommand(name string) error {
	if _, ok := tape.ParseCommand(name); !ok {
		return fmt.Errorf("unknown tape command: %s", name)
	}
	r.add(fmt.Sprintf("tape %s", name))
	return nil
}

func (r *recorder) String() string {
	r.crit.Lock()
	defer r.crit.Unlock()
	return strings.Join(r.events, ",")
}

func TestKeyByName(t *testing.T) {
	k, ok := userinput.KeyByName("Left Shift")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, keymap.KeyLeftShift)

	k, ok = userinput.KeyByName("Return")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, keymap.KeyReturn)

	k, ok = userinput.KeyByName(";")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, keymap.KeySemiColon)

	_, ok = userinput.KeyByName("Keypad 8")
	test.ExpectFailure(t, ok)
}

func TestControllersKeyboard(t *testing.T) {
	var rec recorder
	c := userinput.NewControllers(&rec, nil)

	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventKeyboard{Key: "A", Down: true}))
	test.ExpectSuccess(t, c.LastKeyHandled)
	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventKeyboard{Key: "A", Down: true, Repeat: true}))
	test.ExpectFailure(t, c.LastKeyHandled)
	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventKeyboard{Key: "A"}))

	// keypad is not used unless keys_as_joystick is set
	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventKeyboard{Key: "Keypad 8", Down: true}))
	test.ExpectFailure(t, c.LastKeyHandled)

	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventKeyboard{Key: "Pause", Down: true}))
	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventKeyboard{Key: "F9", Down: true}))

	test.ExpectEquality(t, rec.String(), "key A true,key A false,trap,tape PLAY")

	test.ExpectFailure(t, c.Quit)
	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventQuit{}))
	test.ExpectSuccess(t, c.Quit)
}

func TestKeysAsJoystick(t *testing.T) {
	var rec recorder
	var keysAsJoystick prefs.Bool
	test.DemandSuccess(t, keysAsJoystick.Set(true))

	c := userinput.NewControllers(&rec, &keysAsJoystick)

	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventKeyboard{Key: "Keypad 8", Down: true}))
	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventKeyboard{Key: "Right Ctrl", Down: true}))
	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventKeyboard{Key: "Keypad 8"}))

	// physical joystick alongside the keyboard
	test.ExpectSuccess(t, c.HandleUserInput(userinput.EventJoystick{Device: 1, Value: 0xff}))

	test.ExpectEquality(t, rec.String(), "joy 0 3 OR 01,joy 0 3 OR 10,joy 0 3 AND 1e,joy 1 1 ABSOLUTE 1f")
}

func TestTerminal(t *testing.T) {
	var rec recorder
	var quit bool

	r := strings.NewReader("aB\x1b[A:play\n:pause\r:bogus\n:quit\n")
	term := userinput.NewTerminal(nil, r, &rec, func() { quit = true })
	term.HoldTime = time.Hour
	test.ExpectSuccess(t, term.Service())

	test.ExpectEquality(t, rec.String(), "key A true,key A false,"+
		"key LeftShift true,key B true,key B false,key LeftShift false,"+
		"key Up true,tape play,trap,key Up false")
	test.ExpectSuccess(t, quit)
	test.ExpectSuccess(t, term.Close())
}
