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

// Keycode identifies a key on the host keyboard.
type Keycode int

// List of host keycodes.
const (
	KeyNone Keycode = iota
	KeyBackspace
	KeyReturn
	KeyBackSlash
	KeyF1
	KeyF2
	KeyF3
	KeyF5
	KeyF7
	KeyInsert
	KeyHome
	KeyEscape
	KeyTab
	KeySpace
	KeyLeftShift
	KeyRightShift
	KeyLeftControl
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyDash
	KeyEquals
	KeyBackQuote
	KeySingleQuote
	KeySemiColon
	KeyLeftBracket
	KeyRightBracket
	KeyComma
	KeyPeriod
	KeySlash
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	numKeycodes
)

var keyNames = [numKeycodes]string{
	"None", "Backspace", "Return", "BackSlash", "F1", "F2", "F3", "F5", "F7",
	"Insert", "Home", "Escape", "Tab", "Space", "LeftShift", "RightShift",
	"LeftControl", "Up", "Down", "Left", "Right", "Dash", "Equals",
	"BackQuote", "SingleQuote", "SemiColon", "LeftBracket", "RightBracket",
	"Comma", "Period", "Slash",
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
}

func (k Keycode) String() string {
	if k < 0 || k >= numKeycodes {
		return "Unknown"
	}
	return keyNames[k]
}
