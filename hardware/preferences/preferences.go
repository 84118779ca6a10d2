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

package preferences

import (
	"fmt"
	"time"

	"github.com/jetsetilly/emuxsync/curated"
	"github.com/jetsetilly/emuxsync/paths"
	"github.com/jetsetilly/emuxsync/prefs"
)

// SettingsFile is the name of the settings file in the resource path.
const SettingsFile = "settings-plus4emu.txt"

// Sentinal error pattern.
const InvalidValue = "preferences: %s: %v"

// Timing standards accepted by the timing preference.
const (
	NTSC = "NTSC"
	PAL  = "PAL"
)

// list of valid RAM sizes in kilobytes.
var ramSizes = []int{16, 32, 64}

// ROMSlot is a cartridge ROM file and the offset into the file to load from.
type ROMSlot struct {
	File   prefs.String
	Offset prefs.Int
}

// the cartridge slot names in the order they are stored in Preferences.ROM.
// the slot index plus two is the ROM bank number used by the core.
var romSlotNames = [...]string{"c0_lo", "c0_hi", "c1_lo", "c1_hi", "c2_lo", "c2_hi"}

// ROMSlotName returns the name of the cartridge slot. For example, "c1_hi".
func ROMSlotName(slot int) string {
	return romSlotNames[slot]
}

// NumROMSlots is the number of cartridge ROM slots.
const NumROMSlots = len(romSlotNames)

// Preferences defines and collates all the preference values used by the
// emulation core and the frame loop.
type Preferences struct {
	dsk *prefs.Disk

	// reset the tape drive when the CPU is reset
	ResetTapeWithCPU prefs.Bool

	// audible feedback level of the tape (0 to 10)
	TapeFeedback prefs.Int

	// RAM size in kilobytes (16, 32 or 64)
	RAMSize prefs.Int

	SIDModel       prefs.Int
	SIDWriteAccess prefs.Bool
	SIDDigiblaster prefs.Bool

	// cartridge ROMs
	ROM [NumROMSlots]ROMSlot

	// NTSC or PAL
	Timing prefs.String

	// keypad remapped to joystick port 0
	KeysAsJoystick prefs.Bool

	// number of seconds without input before the idle notification is
	// raised. zero disables the idle timer
	IdleTimeout prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. If the path argument is empty then the settings file in the resource
// path is used.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}

	p.TapeFeedback.SetHookPre(func(v prefs.Value) error {
		if n := v.(int); n < 0 || n > 10 {
			return curated.Errorf(InvalidValue, "tape_feedback", n)
		}
		return nil
	})
	p.RAMSize.SetHookPre(func(v prefs.Value) error {
		for _, s := range ramSizes {
			if v.(int) == s {
				return nil
			}
		}
		return curated.Errorf(InvalidValue, "ram_size", v)
	})
	p.Timing.SetHookPre(func(v prefs.Value) error {
		switch v.(string) {
		case NTSC, PAL:
			return nil
		}
		return curated.Errorf(InvalidValue, "timing", v)
	})
	p.IdleTimeout.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return curated.Errorf(InvalidValue, "idle_timeout", v)
		}
		return nil
	})
	for i := range p.ROM {
		name := fmt.Sprintf("rom_%s_off", romSlotNames[i])
		p.ROM[i].Offset.SetHookPre(func(v prefs.Value) error {
			if n := v.(int); n < 0 || n > 16384 {
				return curated.Errorf(InvalidValue, name, n)
			}
			return nil
		})
	}

	p.SetDefaults()

	if path == "" {
		var err error
		path, err = paths.ResourcePath("", SettingsFile)
		if err != nil {
			return nil, err
		}
	}

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	entries := []struct {
		key string
		p   interface {
			fmt.Stringer
			Set(prefs.Value) error
			Get() prefs.Value
		}
	}{
		{"reset_tape_with_cpu", &p.ResetTapeWithCPU},
		{"tape_feedback", &p.TapeFeedback},
		{"ram_size", &p.RAMSize},
		{"sid_model", &p.SIDModel},
		{"sid_write_access", &p.SIDWriteAccess},
		{"sid_digiblaster", &p.SIDDigiblaster},
		{"timing", &p.Timing},
		{"keys_as_joystick", &p.KeysAsJoystick},
		{"idle_timeout", &p.IdleTimeout},
	}
	for _, e := range entries {
		if err := p.dsk.Add(e.key, e.p); err != nil {
			return nil, err
		}
	}
	for i := range p.ROM {
		if err := p.dsk.Add(fmt.Sprintf("rom_%s", romSlotNames[i]), &p.ROM[i].File); err != nil {
			return nil, err
		}
		if err := p.dsk.Add(fmt.Sprintf("rom_%s_off", romSlotNames[i]), &p.ROM[i].Offset); err != nil {
			return nil, err
		}
	}

	err = p.dsk.Load()
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all settings to their compiled-in values.
func (p *Preferences) SetDefaults() {
	// the pre hooks accept all default values so the errors can be ignored
	_ = p.ResetTapeWithCPU.Set(true)
	_ = p.TapeFeedback.Set(0)
	_ = p.RAMSize.Set(64)
	_ = p.SIDModel.Set(0)
	_ = p.SIDWriteAccess.Set(false)
	_ = p.SIDDigiblaster.Set(false)
	for i := range p.ROM {
		_ = p.ROM[i].File.Set("")
		_ = p.ROM[i].Offset.Set(0)
	}
	_ = p.Timing.Set(PAL)
	_ = p.KeysAsJoystick.Set(false)
	_ = p.IdleTimeout.Set(0)
}

// Load current preferences from disk.
func (p *Preferences) Load() error {
	err := p.dsk.Load()
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return err
	}
	return nil
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Path returns the location of the settings file.
func (p *Preferences) Path() string {
	return p.dsk.Path()
}

// TimeAdvance returns the amount of emulated time in a single frame, in units
// of 10 microseconds. This is the value passed to the core's run function.
func (p *Preferences) TimeAdvance() int {
	if p.Timing.String() == NTSC {
		return 1666
	}
	return 2000
}

// FramePeriod returns the duration of a single frame for the current timing
// standard.
func (p *Preferences) FramePeriod() time.Duration {
	return time.Duration(p.TimeAdvance()) * 10 * time.Microsecond
}

// FrameRate returns the number of frames per second for the current timing
// standard.
func (p *Preferences) FrameRate() float32 {
	if p.Timing.String() == NTSC {
		return 60
	}
	return 50
}
