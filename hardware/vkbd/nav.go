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

package vkbd

import (
	"github.com/jetsetilly/emuxsync/curated"
	"github.com/jetsetilly/emuxsync/hardware/input"
	"github.com/jetsetilly/emuxsync/hardware/keymap"
)

// MaxDevices is the number of input devices that can navigate the virtual
// keyboard.
const MaxDevices = 4

// Sentinal error pattern.
const InvalidDevice = "vkbd: invalid device (%d)"

// Keyboard is implemented by the virtual keyboard.
type Keyboard interface {
	NavUp()
	NavDown()
	NavLeft()
	NavRight()

	// the key under the cursor has been pressed or released by the device
	NavPress(pressed bool, device int)

	// a key on the host keyboard has been pressed or released. the virtual
	// keyboard can use this to keep the state of its keys in sync
	SyncEvent(key keymap.Keycode, pressed bool)

	// release every key held down by any device. called when the virtual
	// keyboard is hidden
	ReleaseAll()
}

// NavState is the navigation state of a single input device.
type NavState struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Press bool
}

// Nav converts joystick events into navigation of a virtual keyboard.
type Nav struct {
	state [MaxDevices]NavState
}

// State returns the navigation state for the device.
func (n *Nav) State(device int) NavState {
	if device < 0 || device >= MaxDevices {
		return NavState{}
	}
	return n.state[device]
}

// Reset clears the navigation state of all devices.
func (n *Nav) Reset() {
	n.state = [MaxDevices]NavState{}
}

// Apply the joystick event to the keyboard. Only ABSOLUTE updates are used.
// Other update types are ignored.
//
// A direction moves the cursor once when it is first pressed. The direction
// must be released before it moves the cursor again. Directions are ignored
// while the device is holding down a key.
func (n *Nav) Apply(ev input.JoyEvent, kbd Keyboard) error {
	if ev.Device < 0 || ev.Device >= MaxDevices {
		return curated.Errorf(InvalidDevice, ev.Device)
	}

	if ev.Type != input.Absolute {
		return nil
	}

	s := &n.state[ev.Device]

	if !s.Press {
		direction(&s.Up, ev.Value&input.JoyUp != 0, kbd.NavUp)
		direction(&s.Down, ev.Value&input.JoyDown != 0, kbd.NavDown)
		direction(&s.Left, ev.Value&input.JoyLeft != 0, kbd.NavLeft)
		direction(&s.Right, ev.Value&input.JoyRight != 0, kbd.NavRight)
	}

	fire := ev.Value&input.JoyFire != 0
	if fire != s.Press {
		s.Press = fire
		kbd.NavPress(fire, ev.Device)
	}

	return nil
}

func direction(held *bool, v bool, nav func()) {
	if v && !*held {
		*held = true
		nav()
	} else if !v && *held {
		*held = false
	}
}
