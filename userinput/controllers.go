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

package userinput

import (
	"github.com/jetsetilly/emuxsync/hardware/input"
	"github.com/jetsetilly/emuxsync/hardware/joystick"
	"github.com/jetsetilly/emuxsync/hardware/tape"
	"github.com/jetsetilly/emuxsync/hardware/vkbd"
	"github.com/jetsetilly/emuxsync/prefs"
)

// KeyboardDevice is the device number used for joystick events that are
// generated by the keyboard.
const KeyboardDevice = vkbd.MaxDevices - 1

// keys that act as a joystick in port zero when the keys_as_joystick
// preference is set.
var keypadJoystick = map[string]uint8{
	"Keypad 8":   input.JoyUp,
	"Keypad 2":   input.JoyDown,
	"Keypad 4":   input.JoyLeft,
	"Keypad 6":   input.JoyRight,
	"Keypad 0":   input.JoyFire,
	"Right Ctrl": input.JoyFire,
}

// hotkeys for the tape deck.
var tapeKeys = map[string]tape.Command{
	"F8":  tape.Record,
	"F9":  tape.Play,
	"F10": tape.Stop,
	"F11": tape.Rewind,
	"F12": tape.FastForward,
}

// Controllers keeps track of hardware userinput options.
type Controllers struct {
	input Input

	// joystick emulation with the keypad. can be nil
	keysAsJoystick *prefs.Bool

	// whether or not the last HandleUserInput() was for an event that was
	// consumed by the emulation as an input
	LastKeyHandled bool

	// is true if last event was a quit emulation event
	Quit bool
}

// NewControllers is the preferred method of initialisation for the
// Controllers type. The keysAsJoystick argument can be nil.
func NewControllers(in Input, keysAsJoystick *prefs.Bool) *Controllers {
	return &Controllers{
		input:          in,
		keysAsJoystick: keysAsJoystick,
	}
}

// HandleUserInput deciphers the Event and forwards it to the Input.
func (c *Controllers) HandleUserInput(ev Event) error {
	c.LastKeyHandled = false

	switch ev := ev.(type) {
	case EventQuit:
		c.Quit = true
		return nil
	case EventKeyboard:
		return c.keyboard(ev)
	case EventJoystick:
		c.joystick(ev)
	}

	return nil
}

func (c *Controllers) keyboard(ev EventKeyboard) error {
	if ev.Repeat {
		return nil
	}

	if c.keysAsJoystick != nil && c.keysAsJoystick.Get().(bool) {
		if bit, ok := keypadJoystick[ev.Key]; ok {
			if ev.Down {
				c.input.EnqueueJoy(0, KeyboardDevice, input.Or, bit)
			} else {
				c.input.EnqueueJoy(0, KeyboardDevice, input.And, input.JoyMask&^bit)
			}
			c.LastKeyHandled = true
			return nil
		}
	}

	if ev.Down {
		if ev.Key == "Pause" {
			c.input.RequestTrap()
			c.LastKeyHandled = true
			return nil
		}
		if cmd, ok := tapeKeys[ev.Key]; ok {
			c.LastKeyHandled = true
			return c.input.PushTapeCommand(string(cmd))
		}
	}

	if k, ok := KeyByName(ev.Key); ok {
		c.input.EnqueueKey(k, ev.Down)
		c.LastKeyHandled = true
	}

	return nil
}

// physical joysticks send absolute updates. devices are shared between the
// ports in turn.
func (c *Controllers) joystick(ev EventJoystick) {
	port := ev.Device % joystick.NumPorts
	c.input.EnqueueJoy(port, ev.Device, input.Absolute, ev.Value&input.JoyMask)
	c.LastKeyHandled = true
}
