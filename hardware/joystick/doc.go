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

// Package joystick combines joystick updates from more than one source into
// the state of a single logical port and converts changes of state into key
// events for the emulated machine.
//
// The emulated machine sees the joysticks as extra keys. For port 0 the
// directions are codes 72 to 75 (up, down, left, right) and fire is code 79.
// For port 1 the directions are codes 80 to 83 and fire is code 86.
//
// Updates are applied in one of three ways. An ABSOLUTE update replaces the
// state of the port. An OR update presses the bits in the value. An AND update
// releases the bits that are cleared in the value. OR and AND updates allow
// more than one source (a physical joystick and keys remapped to the joystick
// for example) to drive the same port.
//
// Note that a source that disappears while holding a bit down will leave that
// bit latched until another update clears it.
package joystick
