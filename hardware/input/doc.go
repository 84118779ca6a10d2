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

// Package input decouples the goroutines that collect user input from the
// goroutine running the emulation.
//
// Input collectors (the SDL event loop, the terminal reader, macro scripts)
// call EnqueueKey() and EnqueueJoy() at any time. The frame loop calls Drain()
// once per frame and handles every event that has arrived since the previous
// frame, in the order they arrived.
//
// Events are held in two fixed size ring buffers, one for keyboard events and
// one for joystick events. If a ring buffer fills up before it is drained the
// oldest event is overwritten. Losing input in this way is accepted behaviour
// and no error is reported.
//
// Drain() holds the queue's lock for the entire drain. Handlers must therefore
// not call back into the queue.
//
// A pause trap can also be requested through the queue. The trap is taken by
// the frame loop with TakeTrap() after the events have been drained.
package input
