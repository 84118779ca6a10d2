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

package preferences_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/emuxsync/hardware/preferences"
	"github.com/jetsetilly/emuxsync/test"
)

func TestDefaults(t *testing.T) {
	p, err := preferences.NewPreferences(filepath.Join(t.TempDir(), preferences.SettingsFile))
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.ResetTapeWithCPU.Get().(bool), true)
	test.ExpectEquality(t, p.TapeFeedback.Get().(int), 0)
	test.ExpectEquality(t, p.RAMSize.Get().(int), 64)
	test.ExpectEquality(t, p.Timing.String(), preferences.PAL)
	test.ExpectEquality(t, p.TimeAdvance(), 2000)
	test.ExpectEquality(t, p.FramePeriod(), 20*time.Millisecond)
}

func TestLoadSettingsFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), preferences.SettingsFile)
	content := "sid_model=1\n" +
		"reset_tape_with_cpu=0\n" +
		"tape_feedback=4\n" +
		"ram_size=32\n" +
		"rom_c1_hi = /roms/c1hi.bin\n" +
		"rom_c1_hi_off=16384\n" +
		"timing=NTSC\n" +
		"usb_0_btn_0=3\n"
	test.DemandSuccess(t, os.WriteFile(fn, []byte(content), 0o600))

	p, err := preferences.NewPreferences(fn)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.SIDModel.Get().(int), 1)
	test.ExpectEquality(t, p.ResetTapeWithCPU.Get().(bool), false)
	test.ExpectEquality(t, p.TapeFeedback.Get().(int), 4)
	test.ExpectEquality(t, p.RAMSize.Get().(int), 32)
	test.ExpectEquality(t, p.ROM[3].File.String(), "/roms/c1hi.bin")
	test.ExpectEquality(t, p.ROM[3].Offset.Get().(int), 16384)
	test.ExpectEquality(t, preferences.ROMSlotName(3), "c1_hi")
	test.ExpectEquality(t, p.TimeAdvance(), 1666)

	// unknown keys are kept and empty cartridge entries are not written
	test.DemandSuccess(t, p.Save())
	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(string(data), "usb_0_btn_0=3\n"))
	test.ExpectSuccess(t, strings.Contains(string(data), "rom_c1_hi=/roms/c1hi.bin\n"))
	test.ExpectFailure(t, strings.Contains(string(data), "rom_c0_lo="))
	test.ExpectSuccess(t, strings.Contains(string(data), "rom_c0_lo_off=0\n"))
}

func TestValidation(t *testing.T) {
	p, err := preferences.NewPreferences(filepath.Join(t.TempDir(), preferences.SettingsFile))
	test.DemandSuccess(t, err)

	test.ExpectFailure(t, p.TapeFeedback.Set(11))
	test.ExpectSuccess(t, p.TapeFeedback.Set(10))
	test.ExpectFailure(t, p.RAMSize.Set(48))
	test.ExpectSuccess(t, p.RAMSize.Set(16))
	test.ExpectFailure(t, p.Timing.Set("SECAM"))
	test.ExpectFailure(t, p.ROM[0].Offset.Set(16385))
	test.ExpectFailure(t, p.IdleTimeout.Set(-1))

	p.SetDefaults()
	test.ExpectEquality(t, p.TapeFeedback.Get().(int), 0)
	test.ExpectEquality(t, p.RAMSize.Get().(int), 64)
}
