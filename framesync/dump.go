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

package framesync

import (
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/emuxsync/hardware/joystick"
	"github.com/jetsetilly/emuxsync/hardware/vkbd"
)

// the state of the loop as seen by DumpState().
type dump struct {
	Frame      int
	Warp       bool
	Phase      string
	Counter    int
	Motor      bool
	Joysticks  [joystick.NumPorts]uint8
	Navigation [vkbd.MaxDevices]vkbd.NavState
	Keyboard   bool
	KeysQueued int
	JoysQueued int
	IdleFrames int
	Idle       bool
}

// DumpState writes a graphviz description of the state of the loop to the
// io.Writer.
//
// Must only be called from the emulation goroutine.
func (l *Loop) DumpState(w io.Writer) {
	d := &dump{
		Frame:      l.frameNum,
		Warp:       l.warp.Load(),
		Phase:      l.deck.Phase().String(),
		Counter:    l.deck.Counter(),
		Motor:      l.deck.Motor(),
		Keyboard:   l.vkbdActive.Load(),
		IdleFrames: int(l.idle.count),
		Idle:       l.idle.Expired(),
	}
	for i := range joystick.NumPorts {
		d.Joysticks[i] = l.latch.Bits(i)
	}
	for i := range vkbd.MaxDevices {
		d.Navigation[i] = l.nav.State(i)
	}
	d.KeysQueued, d.JoysQueued = l.queue.Pending()

	memviz.Map(w, d)
}
