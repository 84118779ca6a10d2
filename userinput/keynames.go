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

package userinput

import (
	"strings"

	"github.com/jetsetilly/emuxsync/hardware/keymap"
)

// SDL key names that do not match the name of the keycode.
var sdlNames = map[string]keymap.Keycode{
	"Left Shift":  keymap.KeyLeftShift,
	"Right Shift": keymap.KeyRightShift,
	"Left Ctrl":   keymap.KeyLeftControl,
	"-":           keymap.KeyDash,
	"=":           keymap.KeyEquals,
	"`":           keymap.KeyBackQuote,
	"'":           keymap.KeySingleQuote,
	";":           keymap.KeySemiColon,
	"[":           keymap.KeyLeftBracket,
	"]":           keymap.KeyRightBracket,
	",":           keymap.KeyComma,
	".":           keymap.KeyPeriod,
	"/":           keymap.KeySlash,
	"\\":          keymap.KeyBackSlash,
}

// KeyByName returns the keycode for the SDL key name.
func KeyByName(name string) (keymap.Keycode, bool) {
	if k, ok := sdlNames[name]; ok {
		return k, true
	}
	return keymap.ByName(strings.ReplaceAll(name, " ", ""))
}
