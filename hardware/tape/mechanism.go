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

package tape

// Mechanism is the tape transport of the emulated machine. Positions are
// measured in seconds from the start of the tape.
type Mechanism interface {
	Play() error
	Stop() error
	Record() error
	Seek(position float64) error
	Position() float64
	Length() float64
}

// Display receives the state of the tape deck so that it can be shown to the
// user.
type Display interface {
	// counter is always in the range 0 to 999
	TapeCounter(counter int)
	TapeStatus(status Status)
	TapeMotor(running bool)

	// the mechanism refused a request or a seek could not continue. the
	// deck has already stopped
	TapeRejected(err error)
}
