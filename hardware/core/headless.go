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
	"fmt"
	"os"

	"github.com/jetsetilly/emuxsync/curated"
	"github.com/jetsetilly/emuxsync/environment"
	"github.com/jetsetilly/emuxsync/hardware/tape"
	"github.com/jetsetilly/emuxsync/logger"
)

// Sentinal error patterns.
const (
	InvalidBank = "core: invalid ROM bank (%d)"
	ROMError    = "core: rom: %v"
	ROMOffset   = "core: rom: offset (%d) beyond end of file (%d bytes)"
	InvalidRAM  = "core: invalid RAM size (%dk)"
)

const logTag = "core"

// tape mechanisms that move with emulated time.
type advancer interface {
	Advance(seconds float64)
}

type rom struct {
	filename string
	offset   int
}

// Headless is a stand-in emulation core.
type Headless struct {
	env *environment.Environment

	frame func()

	// emulated time since the last frame in units of 10 microseconds
	elapsed  int
	frameNum int

	keys [NumKeyCodes]bool

	mech tape.Mechanism

	roms        [NumBanks]rom
	ramSize     int
	sidFlags    int
	digiblaster bool
	feedback    int

	resets int
}

// NewHeadless is the preferred method of initialisation for the Headless
// type. The initial configuration of the core is taken from the preferences
// in the environment.
func NewHeadless(env *environment.Environment) (*Headless, error) {
	hl := &Headless{
		env:      env,
		ramSize:  env.Prefs.RAMSize.Get().(int),
		feedback: env.Prefs.TapeFeedback.Get().(int),
	}
	return hl, nil
}

func (hl *Headless) String() string {
	return fmt.Sprintf("frame=%d ram=%dk resets=%d", hl.frameNum, hl.ramSize, hl.resets)
}

// SetFrameCallback implements the Core interface.
func (hl *Headless) SetFrameCallback(frame func()) {
	hl.frame = frame
}

// Run implements the Core interface. The frame callback is called every time
// enough time has passed for a frame at the current timing standard.
func (hl *Headless) Run(timeAdvance int) error {
	if a, ok := hl.mech.(advancer); ok {
		a.Advance(float64(timeAdvance) / 100000)
	}

	period := hl.env.Prefs.TimeAdvance()

	hl.elapsed += timeAdvance
	for hl.elapsed >= period {
		hl.elapsed -= period
		hl.frameNum++
		if hl.frame != nil {
			hl.frame()
		}
	}

	return nil
}

// FrameNum returns the number of frames completed since the core was created.
func (hl *Headless) FrameNum() int {
	return hl.frameNum
}

// KeyboardEvent implements the Core interface. Codes outside the range of the
// keyboard are ignored.
func (hl *Headless) KeyboardEvent(code int, pressed bool) {
	if code < 0 || code >= NumKeyCodes {
		return
	}
	hl.keys[code] = pressed
}

// KeyDown returns true if the key code is currently pressed.
func (hl *Headless) KeyDown(code int) bool {
	if code < 0 || code >= NumKeyCodes {
		return false
	}
	return hl.keys[code]
}

// Reset implements the Core interface. All keys are released.
func (hl *Headless) Reset(hard bool) {
	hl.keys = [NumKeyCodes]bool{}
	hl.elapsed = 0
	hl.resets++
	if hard {
		logger.Log(hl.env, logTag, "hard reset")
	} else {
		logger.Log(hl.env, logTag, "soft reset")
	}
}

// Resets returns the number of times the core has been reset.
func (hl *Headless) Resets() int {
	return hl.resets
}

// LoadROM implements the Core interface. The file must exist and be longer
// than the offset. The contents of the file are not used.
func (hl *Headless) LoadROM(bank int, filename string, offset int) error {
	if bank < 0 || bank >= NumBanks {
		return curated.Errorf(InvalidBank, bank)
	}

	if filename == "" {
		hl.roms[bank] = rom{}
		return nil
	}

	info, err := os.Stat(filename)
	if err != nil {
		return curated.Errorf(ROMError, err)
	}
	if int64(offset) >= info.Size() {
		return curated.Errorf(ROMOffset, offset, info.Size())
	}

	hl.roms[bank] = rom{filename: filename, offset: offset}
	logger.Logf(hl.env, logTag, "bank %d: %s (offset %d)", bank, filename, offset)

	return nil
}

// ROM returns the filename and offset of the ROM loaded into the bank.
func (hl *Headless) ROM(bank int) (string, int) {
	if bank < 0 || bank >= NumBanks {
		return "", 0
	}
	return hl.roms[bank].filename, hl.roms[bank].offset
}

// SetTapeFeedbackLevel implements the Core interface.
func (hl *Headless) SetTapeFeedbackLevel(level int) {
	hl.feedback = level
}

// TapeFeedbackLevel returns the current tape feedback level.
func (hl *Headless) TapeFeedbackLevel() int {
	return hl.feedback
}

// SetRAMConfiguration implements the Core interface.
func (hl *Headless) SetRAMConfiguration(kilobytes int) error {
	switch kilobytes {
	case 16, 32, 64:
		hl.ramSize = kilobytes
		return nil
	}
	return curated.Errorf(InvalidRAM, kilobytes)
}

// RAMSize returns the size of RAM in kilobytes.
func (hl *Headless) RAMSize() int {
	return hl.ramSize
}

// SetSIDConfiguration implements the Core interface.
func (hl *Headless) SetSIDConfiguration(flags int, digiblaster bool) {
	hl.sidFlags = flags
	hl.digiblaster = digiblaster
}

// SIDConfiguration returns the current SID flags and digiblaster setting.
func (hl *Headless) SIDConfiguration() (int, bool) {
	return hl.sidFlags, hl.digiblaster
}

// AttachTape implements the Core interface.
func (hl *Headless) AttachTape(mech tape.Mechanism) {
	if hl.mech != nil {
		_ = hl.mech.Stop()
	}
	hl.mech = mech
}

// Play implements the tape.Mechanism interface.
func (hl *Headless) Play() error {
	if hl.mech == nil {
		return curated.Errorf(tape.NoTape)
	}
	return hl.mech.Play()
}

// Stop implements the tape.Mechanism interface.
func (hl *Headless) Stop() error {
	if hl.mech == nil {
		return curated.Errorf(tape.NoTape)
	}
	return hl.mech.Stop()
}

// Record implements the tape.Mechanism interface.
func (hl *Headless) Record() error {
	if hl.mech == nil {
		return curated.Errorf(tape.NoTape)
	}
	return hl.mech.Record()
}

// Seek implements the tape.Mechanism interface.
func (hl *Headless) Seek(position float64) error {
	if hl.mech == nil {
		return curated.Errorf(tape.NoTape)
	}
	return hl.mech.Seek(position)
}

// Position implements the tape.Mechanism interface.
func (hl *Headless) Position() float64 {
	if hl.mech == nil {
		return 0
	}
	return hl.mech.Position()
}

// Length implements the tape.Mechanism interface.
func (hl *Headless) Length() float64 {
	if hl.mech == nil {
		return 0
	}
	return hl.mech.Length()
}
