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

// the keyboard matrix, indexed by column and then row.
var matrix = [8][8]Keycode{
	{KeyBackspace, Key3, Key5, Key7, Key9, KeyDown, KeyLeft, Key1},
	{KeyReturn, KeyW, KeyR, KeyY, KeyI, KeyP, KeyDash, KeyBackQuote},
	{KeyBackSlash, KeyA, KeyD, KeyG, KeyJ, KeyL, KeySingleQuote, KeyTab},
	{KeyF7, Key4, Key6, Key8, Key0, KeyUp, KeyRight, Key2},
	{KeyF1, KeyZ, KeyC, KeyB, KeyM, KeyPeriod, KeyRightShift, KeySpace},
	{KeyF3, KeyS, KeyF, KeyH, KeyK, KeySemiColon, KeyRightBracket, KeyLeftControl},
	{KeyF5, KeyE, KeyT, KeyU, KeyO, KeyLeftBracket, KeyEquals, KeyQ},
	{KeyInsert, KeyLeftShift, KeyX, KeyV, KeyN, KeyComma, KeySlash, KeyEscape},
}

// KeyAt returns the host keycode at the row and column of the keyboard
// matrix. Returns KeyNone if the position is outside the matrix.
func KeyAt(row int, col int) Keycode {
	if row < 0 || row >= 8 || col < 0 || col >= 8 {
		return KeyNone
	}
	return matrix[col][row]
}
