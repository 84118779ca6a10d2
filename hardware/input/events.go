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

package input

import (
	"fmt"

	"github.com/jetsetilly/emuxsync/hardware/keymap"
)

// KeyEvent is a single key press or release on the host keyboard.
type KeyEvent struct {
	Key     keymap.Keycode
	Pressed bool
}

func (ev KeyEvent) String() string {
	if ev.Pressed {
		return fmt.Sprintf("%s down", ev.Key)
	}
	return fmt.Sprintf("%s up", ev.Key)
}

// UpdateType describes how the value of a JoyEvent is combined with the
// current state of the joystick port.
type UpdateType int

// List of valid UpdateType values.
const (
	// the value replaces the current state
	Absolute UpdateType = iota

	// the value is ANDed with the current state. used to release bits
	And

	// the value is ORed with the current state. used to press bits
	Or
)

func (t UpdateType) String() string {
	switch t {
	case Absolute:
		return "ABSOLUTE"
	case And:
		return "AND"
	case Or:
		return "OR"
	}
	return "unknown update type"
}

// Joystick bits used in the Value field of JoyEvent.
const (
	JoyUp    = 0x01
	JoyDown  = 0x02
	JoyLeft  = 0x04
	JoyRight = 0x08
	JoyFire  = 0x10

	// all valid joystick bits
	JoyMask = 0x1f
)

// JoyEvent is an update to the state of a joystick port. Ports are numbered
// from zero. The Device field identifies the input device that produced the
// event, which is not necessarily the same as the port.
type JoyEvent struct {
	Port   int
	Device int
	Type   UpdateType
	Value  uint8
}

func (ev JoyEvent) String() string {
	return fmt.Sprintf("port %d (dev %d): %s %#02x", ev.Port, ev.Device, ev.Type, ev.Value)
}
