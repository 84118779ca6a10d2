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

package vkbd

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/emuxsync/hardware/keymap"
)

// the dimensions of the keyboard matrix.
const (
	gridRows = 8
	gridCols = 8
)

// LatchFunc is called by Grid when a key is pressed or released.
type LatchFunc func(row int, col int, pressed bool)

// Grid is a virtual keyboard with the same layout as the keyboard matrix of
// the emulated machine.
type Grid struct {
	latch LatchFunc

	// cursor position
	row int
	col int

	// position of the key currently held down by each device. a key is
	// released at the position it was pressed even if the cursor has moved
	held [MaxDevices]*[2]int

	// state of the host keyboard, as reported by SyncEvent()
	down map[keymap.Keycode]bool
}

// NewGrid is the preferred method of initialisation for the Grid type.
func NewGrid(latch LatchFunc) *Grid {
	return &Grid{
		latch: latch,
		down:  make(map[keymap.Keycode]bool),
	}
}

// Cursor returns the row and column of the cursor.
func (g *Grid) Cursor() (int, int) {
	return g.row, g.col
}

// Selected returns the key under the cursor.
func (g *Grid) Selected() keymap.Keycode {
	return keymap.KeyAt(g.row, g.col)
}

// IsDown returns true if the host key is currently pressed.
func (g *Grid) IsDown(key keymap.Keycode) bool {
	return g.down[key]
}

// NavUp implements the Keyboard interface.
func (g *Grid) NavUp() {
	g.row = (g.row + gridRows - 1) % gridRows
}

// NavDown implements the Keyboard interface.
func (g *Grid) NavDown() {
	g.row = (g.row + 1) % gridRows
}

// NavLeft implements the Keyboard interface.
func (g *Grid) NavLeft() {
	g.col = (g.col + gridCols - 1) % gridCols
}

// NavRight implements the Keyboard interface.
func (g *Grid) NavRight() {
	g.col = (g.col + 1) % gridCols
}

// NavPress implements the Keyboard interface.
func (g *Grid) NavPress(pressed bool, device int) {
	if device < 0 || device >= MaxDevices {
		return
	}

	if pressed {
		g.held[device] = &[2]int{g.row, g.col}
		g.down[g.Selected()] = true
		if g.latch != nil {
			g.latch(g.row, g.col, true)
		}
		return
	}

	p := g.held[device]
	if p == nil {
		return
	}
	g.held[device] = nil
	g.down[keymap.KeyAt(p[0], p[1])] = false
	if g.latch != nil {
		g.latch(p[0], p[1], false)
	}
}

// ReleaseAll implements the Keyboard interface.
func (g *Grid) ReleaseAll() {
	for device := range g.held {
		g.NavPress(false, device)
	}
}

// SyncEvent implements the Keyboard interface.
func (g *Grid) SyncEvent(key keymap.Keycode, pressed bool) {
	g.down[key] = pressed
}

func (g *Grid) String() string {
	s := strings.Builder{}
	for r := range gridRows {
		for c := range gridCols {
			k := keymap.KeyAt(r, c)
			switch {
			case r == g.row && c == g.col:
				s.WriteString(fmt.Sprintf("[%s]", k))
			case g.down[k]:
				s.WriteString(fmt.Sprintf("*%s*", k))
			default:
				s.WriteString(fmt.Sprintf(" %s ", k))
			}
		}
		s.WriteString("\n")
	}
	return s.String()
}
