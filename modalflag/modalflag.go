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

package modalflag

import (
	"flag"
	"io"
	"strings"
	"time"

	"github.com/jetsetilly/emuxsync/prefs"
)

const modeSeparator = "/"

// the name of the flag added by AddPrefs()
const prefsFlag = "prefs"

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// continue with command line processing. if sub-modes were added before
	// the call to Parse() then Mode() will return the selected mode
	ParseContinue ParseResult = iota

	// help was requested and has already been printed
	ParseHelp

	// the error is returned as the second return value from Parse()
	ParseError
)

// Modes handles command line arguments for a program with several modes of
// operation, each mode having its own set of flags. Output should be set
// before calling Parse() or help messages will not be seen.
type Modes struct {
	Output io.Writer

	flags *flag.FlagSet

	args    []string
	argsIdx int

	// sub-modes for the next call to Parse(). the first entry is the default
	subModes []string

	// modes selected by successive calls to Parse(). never reset
	path []string

	additionalHelp string

	// value of the -prefs flag if AddPrefs() has been called for this mode
	prefs *string

	// number of groups pushed onto the prefs command line stack
	pushed int
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns all the modes selected so far, separated by a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs sets the argument list and begins a new mode.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.NewMode()
}

// NewMode indicates that further arguments belong to a new mode. Flags and
// sub-modes added previously are forgotten.
func (md *Modes) NewMode() {
	md.subModes = md.subModes[:0]
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.additionalHelp = ""
	md.prefs = nil
}

// AdditionalHelp is printed after the flag and sub-mode help.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// Parse the arguments for the current mode.
//
//	p, err := md.Parse()
//	if err != nil || p != modalflag.ParseContinue {
//		return err
//	}
//
// Help messages are printed by Parse(). If AddPrefs() has been called and the
// flag has been set then the value is pushed onto the prefs command line
// stack. Groups pushed in this way are removed with PopPrefs().
func (md *Modes) Parse() (ParseResult, error) {
	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if err == flag.ErrHelp {
			hw.help(md.Output, md.Path(), md.subModes, md.additionalHelp)
			return ParseHelp, nil
		}

		// an unrecognised flag might belong to the default sub-mode
		if len(md.subModes) == 0 {
			return ParseError, err
		}
		md.path = append(md.path, md.subModes[0])
		return ParseContinue, nil
	}

	if md.prefs != nil && *md.prefs != "" {
		prefs.PushCommandLineStack(*md.prefs)
		md.pushed++
	}

	if len(md.subModes) > 0 {
		mode := md.subModes[0]
		arg := strings.ToUpper(md.flags.Arg(0))
		for _, m := range md.subModes {
			if m == arg {
				mode = m

				// skip the flags and the sub-mode itself
				md.argsIdx = len(md.args) - len(md.flags.Args()) + 1
				break // for loop
			}
		}
		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

// RemainingArgs returns the arguments that are not flags or a sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns the numbered argument that is not a flag or a sub-mode.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}

// AddSubModes for the next call to Parse(). The first sub-mode is the
// default. Comparisons are case insensitive.
func (md *Modes) AddSubModes(submodes ...string) {
	for _, m := range submodes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AddPrefs adds the -prefs flag to the current mode. The value of the flag is
// a list of key=value pairs separated by semicolons and takes priority over
// the settings file.
func (md *Modes) AddPrefs() {
	md.prefs = md.flags.String(prefsFlag, "", "override settings file values (key=value; key=value)")
}

// PopPrefs removes all the groups pushed by Parse() from the prefs command
// line stack. Returns the values that were never consumed, which usually
// indicates a mistyped key.
func (md *Modes) PopPrefs() []string {
	var unused []string
	for ; md.pushed > 0; md.pushed-- {
		if s := prefs.PopCommandLineStack(); s != "" {
			unused = append(unused, s)
		}
	}
	return unused
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddDuration flag for next call to Parse().
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}
