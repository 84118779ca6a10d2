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

// Package framesync ties the input queue, the joystick latch, the virtual
// keyboard and the tape deck to the emulation core. The Loop type is the
// context object for all of them.
//
// The emulation core calls Loop.Frame() once per video frame from the
// emulation goroutine. This is the only goroutine that reads the input queue
// and the only goroutine that changes the state of the joystick latch, the
// virtual keyboard navigation and the tape deck.
//
// Other goroutines interact with the Loop through the input queue (see
// EnqueueKey(), EnqueueJoy() and RequestTrap()) and through the pushed
// function channel (see PushFunction() and PushTapeCommand()).
package framesync
