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

package modalflag_test

import (
	"testing"

	"github.com/jetsetilly/emuxsync/modalflag"
	"github.com/jetsetilly/emuxsync/prefs"
	"github.com/jetsetilly/emuxsync/test"
)

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-test", "1", "2"})
	testFlag := md.AddBool("test", false, "test flag")

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
	test.ExpectEquality(t, *testFlag, true)
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(1), "2")
}

func TestModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"headless", "-tape", "demo.wav", "extra"})
	md.AddSubModes("run", "headless", "stats")

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "HEADLESS")

	md.NewMode()
	tape := md.AddString("tape", "", "tape file")
	p, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, *tape, "demo.wav")
	test.ExpectEquality(t, md.GetArg(0), "extra")
	test.ExpectEquality(t, md.Path(), "HEADLESS")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-tape", "demo.wav"})
	md.AddSubModes("run", "headless")

	// the unrecognised flag belongs to the default mode
	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "RUN")

	md.NewMode()
	tape := md.AddString("tape", "", "tape file")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *tape, "demo.wav")
}

func TestParseError(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-nothing"})

	p, err := md.Parse()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, p, modalflag.ParseError)
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, tw.String(), "No help available\n")
}

func TestHelpFlagsAndModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")
	md.AddSubModes("A", "B", "C")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    	test flag (default true)\n" +
		"\n" +
		"  available sub-modes: A, B, C\n" +
		"    default: A\n"
	test.ExpectEquality(t, tw.String(), expectedHelp)

	tw.Clear()
	md.NewArgs([]string{"-help"})
	md.AddSubModes("A", "B", "C")
	md.Parse()
	test.ExpectEquality(t, tw.String(), "Usage:\n  available sub-modes: A, B, C\n    default: A\n")
}

func TestPrefs(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-prefs", "timing=PAL; nokey=1"})
	md.AddPrefs()

	_, err := md.Parse()
	test.ExpectSuccess(t, err)

	ok, v := prefs.GetCommandLinePref("timing")
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, v.(string), "PAL")

	unused := md.PopPrefs()
	test.ExpectEquality(t, len(unused), 1)
	test.ExpectEquality(t, unused[0], "nokey=1")

	// the stack is now empty
	ok, _ = prefs.GetCommandLinePref("nokey")
	test.ExpectEquality(t, ok, false)
}
