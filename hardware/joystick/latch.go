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

package joystick

import (
	"fmt"

	"github.com/jetsetilly/emuxsync/curated"
	"github.com/jetsetilly/emuxsync/hardware/input"
)

// NumPorts is the number of joystick ports on the emulated machine.
const NumPorts = 2

// Sentinal error patterns.
const (
	InvalidPort       = "joystick: invalid port (%d)"
	InvalidUpdateType = "joystick: invalid update type (%v)"
)

// the bits in the order they are tested.
var bits = [...]uint8{input.JoyUp, input.JoyDown, input.JoyLeft, input.JoyRight, input.JoyFire}

// Code returns the key code used by the emulated machine for the joystick bit
// on the port. Returns -1 if the bit or port is not valid.
func Code(port int, bit uint8) int {
	if port < 0 || port >= NumPorts {
		return -1
	}
	switch bit {
	case input.JoyUp:
		return 72 + 8*port
	case input.JoyDown:
		return 73 + 8*port
	case input.JoyLeft:
		return 74 + 8*port
	case input.JoyRight:
		return 75 + 8*port
	case input.JoyFire:
		return 79 + 7*port
	}
	return -1
}

// Latch records the current state of each joystick port.
type Latch struct {
	bits [NumPorts]uint8
}

func (l *Latch) String() string {
	return fmt.Sprintf("p0=%#02x p1=%#02x", l.bits[0], l.bits[1])
}

// Bits returns the current state of the port.
func (l *Latch) Bits(port int) uint8 {
	if port < 0 || port >= NumPorts {
		return 0
	}
	return l.bits[port]
}

// Reset clears the state of all ports. No events are emitted.
func (l *Latch) Reset() {
	l.bits = [NumPorts]uint8{}
}

// Apply updates the state of the port and calls emit for every bit that has
// changed. The emit function receives the key code for the bit and whether the
// bit is now pressed. Bits that have not changed emit nothing.
//
// An error is returned if the port or update type is invalid. The state of
// the latch is unchanged in that case.
func (l *Latch) Apply(port int, typ input.UpdateType, value uint8, emit func(code int, pressed bool)) error {
	if port < 0 || port >= NumPorts {
		return curated.Errorf(InvalidPort, port)
	}

	oldv := l.bits[port]
	var newv uint8

	switch typ {
	case input.Absolute:
		newv = value
	case input.Or:
		newv = oldv | value
	case input.And:
		newv = oldv & value
	default:
		return curated.Errorf(InvalidUpdateType, typ)
	}

	newv &= input.JoyMask
	l.bits[port] = newv

	changed := oldv ^ newv
	if changed == 0 {
		return nil
	}

	for _, b := range bits {
		if changed&b == b && emit != nil {
			emit(Code(port, b), newv&b == b)
		}
	}

	return nil
}
