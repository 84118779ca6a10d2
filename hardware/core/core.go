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

package core

import (
	"github.com/jetsetilly/emuxsync/hardware/tape"
)

// Number of key codes understood by the core. This includes the codes used
// for the joysticks.
const NumKeyCodes = 128

// ROM banks. The cartridge banks are numbered from BankCartridge upwards in
// the order c0 lo, c0 hi, c1 lo, c1 hi, c2 lo, c2 hi.
const (
	BankBasic     = 0
	BankKernal    = 1
	BankCartridge = 2
	NumBanks      = 8
)

// Core is the interface to the emulation core. The tape functions of the
// core satisfy the tape.Mechanism interface and operate on the tape that is
// currently attached.
type Core interface {
	tape.Mechanism

	// attach a tape to the core. a nil value detaches the current tape
	AttachTape(mech tape.Mechanism)

	// key code is pressed or released
	KeyboardEvent(code int, pressed bool)

	// run the core for the amount of emulated time, in units of 10
	// microseconds
	Run(timeAdvance int) error

	Reset(hard bool)

	// an empty filename unloads the bank
	LoadROM(bank int, filename string, offset int) error

	SaveState(filename string) error
	LoadState(filename string) error

	SetTapeFeedbackLevel(level int)
	SetRAMConfiguration(kilobytes int) error
	SetSIDConfiguration(flags int, digiblaster bool)

	// the function is called at the end of every video frame
	SetFrameCallback(frame func())
}
