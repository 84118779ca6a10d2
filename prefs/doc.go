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

// Package prefs holds preference values and persists them to disk. Values are
// created as one of the types in this package (Bool, Int, Float, String) and
// registered with a Disk under a key:
//
//	var feedback prefs.Int
//	dsk, _ := prefs.NewDisk(pth)
//	_ = dsk.Add("tape_feedback", &feedback)
//	_ = dsk.Load()
//
// The file format is one "key=value" pair per line. Leading and trailing
// whitespace around both key and value is ignored, as are lines without an
// equals sign or with an empty key or value. Keys in the file that have not
// been registered with the Disk are ignored when loading but are preserved
// when the Disk is saved, so more than one Disk can share a file.
//
// Values are safe to read and write from any goroutine. Hooks can be attached
// to a value with SetHookPre() and SetHookPost(). A pre hook can veto a new
// value by returning an error. A post hook is used to forward the new value to
// wherever it is needed.
//
// Values from the command line take priority over the values on disk. See
// PushCommandLineStack().
package prefs
