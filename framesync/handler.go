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
	"github.com/jetsetilly/emuxsync/hardware/input"
	"github.com/jetsetilly/emuxsync/hardware/keymap"
	"github.com/jetsetilly/emuxsync/logger"
)

// handler receives events drained from the input queue. it is called with
// the queue locked.
type handler struct {
	l *Loop

	// whether the virtual keyboard was active for the previous event
	vkbd bool
}

// returns true if the virtual keyboard is active. navigation is reset
// whenever the virtual keyboard is shown or hidden. keys held on the virtual
// keyboard are released when it is hidden.
func (h *handler) vkbdActive() bool {
	active := h.l.vkbdActive.Load() && h.l.vkbd != nil
	if active != h.vkbd {
		if h.vkbd && h.l.vkbd != nil {
			h.l.vkbd.ReleaseAll()
		}
		h.vkbd = active
		h.l.nav.Reset()
	}
	return active
}

// HandleKey implements the input.Handler interface.
func (h *handler) HandleKey(ev input.KeyEvent) {
	if code, ok := keymap.ToCore(ev.Key); ok {
		h.l.core.KeyboardEvent(code, ev.Pressed)
	}
	if h.vkbdActive() {
		h.l.vkbd.SyncEvent(ev.Key, ev.Pressed)
	}
}

// HandleJoy implements the input.Handler interface.
func (h *handler) HandleJoy(ev input.JoyEvent) {
	var err error
	if h.vkbdActive() {
		err = h.l.nav.Apply(ev, h.l.vkbd)
	} else {
		err = h.l.latch.Apply(ev.Port, ev.Type, ev.Value, h.l.core.KeyboardEvent)
	}
	if err != nil {
		logger.Log(h.l.env, logTag, err)
	}
}
