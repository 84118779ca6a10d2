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

package keymap

import "strings"

// translation table from host keycode to core key code. the core codes are:
//
//	 0: Del     1: Return   2: £       3: Help    4: F1      5: F2      6: F3      7: @
//	 8: 3       9: W       10: A      11: 4      12: Z      13: S      14: E      15: Shift
//	16: 5      17: R       18: D      19: 6      20: C      21: F      22: T      23: X
//	24: 7      25: Y       26: G      27: 8      28: B      29: H      30: U      31: V
//	32: 9      33: I       34: J      35: 0      36: M      37: K      38: O      39: N
//	40: Down   41: P       42: L      43: Up     44: .      45: :      46: -      47: ,
//	48: Left   49: *       50: ;      51: Right  52: Esc    53: =      54: +      55: /
//	56: 1      57: Home    58: Ctrl   59: 2      60: Space  61: C=     62: Q      63: Stop
var table = []struct {
	key  Keycode
	code int
}{
	{KeyBackspace, 0}, {KeyReturn, 1}, {KeyBackSlash, 2}, {KeyF7, 3},
	{KeyF1, 4}, {KeyF2, 5}, {KeyF3, 6}, {KeyInsert, 7},
	{Key3, 8}, {KeyW, 9}, {KeyA, 10}, {Key4, 11},
	{KeyZ, 12}, {KeyS, 13}, {KeyE, 14}, {KeyLeftShift, 15}, {KeyRightShift, 15},
	{Key5, 16}, {KeyR, 17}, {KeyD, 18}, {Key6, 19},
	{KeyC, 20}, {KeyF, 21}, {KeyT, 22}, {KeyX, 23},
	{Key7, 24}, {KeyY, 25}, {KeyG, 26}, {Key8, 27},
	{KeyB, 28}, {KeyH, 29}, {KeyU, 30}, {KeyV, 31},
	{Key9, 32}, {KeyI, 33}, {KeyJ, 34}, {Key0, 35},
	{KeyM, 36}, {KeyK, 37}, {KeyO, 38}, {KeyN, 39},
	{KeyDown, 40}, {KeyP, 41}, {KeyL, 42}, {KeyUp, 43},
	{KeyPeriod, 44}, {KeySemiColon, 45}, {KeyLeftBracket, 46}, {KeyComma, 47},
	{KeyLeft, 48}, {KeyDash, 49}, {KeySingleQuote, 50}, {KeyRight, 51},
	{KeyBackQuote, 52}, {KeyRightBracket, 53}, {KeyEquals, 54}, {KeySlash, 55},
	{Key1, 56}, {KeyHome, 57}, {KeyTab, 58}, {Key2, 59},
	{KeySpace, 60}, {KeyLeftControl, 61}, {KeyQ, 62}, {KeyEscape, 63},
}

// NumCoreCodes is the number of key codes on the emulated keyboard.
const NumCoreCodes = 64

var toCore map[Keycode]int
var fromCore [NumCoreCodes]Keycode
var byName map[string]Keycode

func init() {
	toCore = make(map[Keycode]int, len(table))
	for _, e := range table {
		toCore[e.key] = e.code
		if fromCore[e.code] == KeyNone {
			fromCore[e.code] = e.key
		}
	}

	byName = make(map[string]Keycode, numKeycodes)
	for k := KeyNone + 1; k < numKeycodes; k++ {
		byName[strings.ToUpper(keyNames[k])] = k
	}
}

// ToCore translates a host keycode to the core key code. Returns false if the
// host key has no equivalent on the emulated keyboard.
func ToCore(key Keycode) (int, bool) {
	code, ok := toCore[key]
	return code, ok
}

// FromCore translates a core key code to the host keycode. Returns false if
// the code is out of range.
func FromCore(code int) (Keycode, bool) {
	if code < 0 || code >= NumCoreCodes {
		return KeyNone, false
	}
	return fromCore[code], true
}

// ByName returns the host keycode with the name. The name is not case
// sensitive.
func ByName(name string) (Keycode, bool) {
	k, ok := byName[strings.ToUpper(strings.TrimSpace(name))]
	return k, ok
}
