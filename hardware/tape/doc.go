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

// Package tape simulates the transport controls of a tape deck on top of a
// tape mechanism that can only play, stop, record and seek to an absolute
// position.
//
// Rewind and fast forward are simulated by the Deck moving the mechanism by
// one position every five frames. The tape counter is refreshed every fifty
// frames while the motor is running, and every time the Deck moves the tape
// while seeking.
//
// The Deck is not safe for concurrent use. All functions must be called from
// the goroutine running the emulation. Other goroutines should send commands
// to the frame loop, which will apply them on the next frame.
//
// If the mechanism refuses a request the deck stops. The failure is logged but
// not returned to the caller.
package tape
