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
	"github.com/jetsetilly/emuxsync/hardware/keymap"
)

// Input conceptualises the destination of user input. Implemented by the
// framesync.Loop type. All functions must be safe to call from any goroutine.
type Input interface {
	EnqueueKey(key keymap.Keycode, pressed bool)
	EnqueueJoy(port int, device int, typ input.UpdateType, value uint8)
	RequestTrap()
	PushTapeCommand(name string) error
}

// Event represents all the different type of events that can occur in the
// GUI.
type Event interface{}

// EventQuit is sent when the user wants to end the emulation.
type EventQuit struct{}

// EventKeyboard is sent on a keyboard event. The Key field is the name of
// the key as given by SDL. For example "A", "Left Shift" or "Keypad 8".
type EventKeyboard struct {
	Key    string
	Down   bool
	Repeat bool
}

// EventJoystick is sent when the state of a physical joystick or gamepad
// changes. The Value field holds the state of every direction and the fire
// button using the joystick bits defined in the input package.
type EventJoystick struct {
	Device int
	Value  uint8
}
