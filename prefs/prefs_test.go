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

package prefs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/emuxsync/curated"
	"github.com/jetsetilly/emuxsync/prefs"
	"github.com/jetsetilly/emuxsync/test"
)

func readFile(t *testing.T, fn string) string {
	t.Helper()
	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	return string(data)
}

func TestBool(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "settings.txt")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("1"))

	test.ExpectSuccess(t, dsk.Save())
	test.ExpectEquality(t, readFile(t, fn), "test=1\ntestB=0\ntestC=1\n")
}

func TestIntAndString(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "settings.txt")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var i prefs.Int
	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("tape_feedback", &i))
	test.ExpectSuccess(t, dsk.Add("rom_c0_lo", &s))

	test.ExpectSuccess(t, i.Set(7))
	test.ExpectFailure(t, i.Set("seven"))
	test.ExpectEquality(t, i.Get().(int), 7)

	// empty strings are not written
	test.ExpectSuccess(t, dsk.Save())
	test.ExpectEquality(t, readFile(t, fn), "tape_feedback=7\n")

	test.ExpectSuccess(t, s.Set("/roms/c0lo.bin"))
	test.ExpectSuccess(t, dsk.Save())
	test.ExpectEquality(t, readFile(t, fn), "rom_c0_lo=/roms/c0lo.bin\ntape_feedback=7\n")
}

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "settings.txt")

	content := "  reset_tape_with_cpu = 0 \n" +
		"unknown_key=foo\n" +
		"this line is ignored\n" +
		"empty_value=\n" +
		"tape_feedback=3\n"
	test.DemandSuccess(t, os.WriteFile(fn, []byte(content), 0o600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var reset prefs.Bool
	var feedback prefs.Int
	var ram prefs.Int
	test.ExpectSuccess(t, dsk.Add("reset_tape_with_cpu", &reset))
	test.ExpectSuccess(t, dsk.Add("tape_feedback", &feedback))
	test.ExpectSuccess(t, dsk.Add("ram_size", &ram))

	// compiled-in defaults
	test.ExpectSuccess(t, reset.Set(true))
	test.ExpectSuccess(t, ram.Set(64))

	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, reset.Get().(bool), false)
	test.ExpectEquality(t, feedback.Get().(int), 3)

	// absent key keeps default
	test.ExpectEquality(t, ram.Get().(int), 64)

	// unknown keys survive a save
	test.ExpectSuccess(t, dsk.Save())
	test.ExpectEquality(t, readFile(t, fn), "unknown_key=foo\nram_size=64\nreset_tape_with_cpu=0\ntape_feedback=3\n")
}

func TestMissingFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "missing.txt")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("v", &v))
	test.ExpectSuccess(t, v.Set(10))

	err = dsk.Load()
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))
	test.ExpectEquality(t, v.Get().(int), 10)
}

func TestAdd(t *testing.T) {
	dsk, err := prefs.NewDisk(filepath.Join(t.TempDir(), "settings.txt"))
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("v", &v))
	test.ExpectSuccess(t, curated.Is(dsk.Add("v", &v), prefs.DuplicateKey))
	test.ExpectSuccess(t, curated.Is(dsk.Add("a=b", &v), prefs.InvalidKey))
	test.ExpectSuccess(t, curated.Is(dsk.Add(" ", &v), prefs.InvalidKey))
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var forwarded int

	v.SetHookPre(func(value prefs.Value) error {
		if value.(int) < 0 || value.(int) > 10 {
			return curated.Errorf("out of range")
		}
		return nil
	})
	v.SetHookPost(func(value prefs.Value) error {
		forwarded = value.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(5))
	test.ExpectEquality(t, forwarded, 5)

	// pre hook vetoes the change
	test.ExpectFailure(t, v.Set(11))
	test.ExpectEquality(t, v.Get().(int), 5)
	test.ExpectEquality(t, forwarded, 5)
}

func TestFloat(t *testing.T) {
	var f prefs.Float
	test.ExpectEquality(t, f.String(), "0")
	test.ExpectSuccess(t, f.Set("37.25"))
	test.ExpectEquality(t, f.Get().(float64), 37.25)
	test.ExpectEquality(t, f.String(), "37.25")
}
