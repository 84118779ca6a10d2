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

// Package keymap translates host keycodes to the key codes of the emulated
// keyboard, and back again.
//
// The translation is held in a single table of (host keycode, core code)
// pairs from which the lookup maps for both directions are built when the
// package is initialised. More than one host key can map to the same core
// code (both shift keys for example). In that case the reverse lookup returns
// the first host key listed in the table.
//
// The keyboard matrix, used by the virtual keyboard to latch keys by row and
// column, is also defined here.
package keymap
