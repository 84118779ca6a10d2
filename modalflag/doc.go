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

// Package modalflag wraps the flag package from the standard library and adds
// support for program modes. A mode is a command line argument that selects a
// different mode of operation, each with its own set of flags. The go command
// is a good example: build, test and vet all take different flags.
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "HEADLESS")
//	p, err := md.Parse()
//	if err != nil || p != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "HEADLESS":
//		md.NewMode()
//		tape := md.AddString("tape", "", "tape file to attach")
//		md.AddPrefs()
//		...
//	}
//
// The first sub-mode is the default and is selected if the argument after the
// flags is not a sub-mode. Sub-modes can be nested as deeply as required by
// calling NewMode() and Parse() again.
//
// The AddPrefs() function adds a -prefs flag to the current mode. Values
// given with the flag are pushed onto the command line stack of the prefs
// package, where they override the values in the settings file the next time
// it is loaded.
package modalflag
