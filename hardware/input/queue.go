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

package input

import (
	"sync"

	"github.com/jetsetilly/emuxsync/hardware/keymap"
)

// Capacity of the event rings.
const (
	KeyCapacity = 16
	JoyCapacity = 128
)

// Handler implementations receive drained events.
type Handler interface {
	HandleKey(ev KeyEvent)
	HandleJoy(ev JoyEvent)
}

// Queue holds input events until they are drained by the frame loop. It is
// safe to call EnqueueKey(), EnqueueJoy() and RequestTrap() from any
// goroutine.
type Queue struct {
	crit sync.Mutex

	keys *Ring[KeyEvent]
	joys *Ring[JoyEvent]

	// a pause trap has been requested
	trap bool

	// drained events are mirrored to the recorder if it is not nil
	recorder EventRecorder
}

// NewQueue is the preferred method of initialisation for the Queue type.
func NewQueue() *Queue {
	return &Queue{
		keys: NewRing[KeyEvent](KeyCapacity),
		joys: NewRing[JoyEvent](JoyCapacity),
	}
}

// EnqueueKey adds a keyboard event to the queue.
func (q *Queue) EnqueueKey(key keymap.Keycode, pressed bool) {
	q.crit.Lock()
	defer q.crit.Unlock()
	q.keys.Push(KeyEvent{Key: key, Pressed: pressed})
}

// EnqueueJoy adds a joystick event to the queue.
func (q *Queue) EnqueueJoy(port int, device int, typ UpdateType, value uint8) {
	q.crit.Lock()
	defer q.crit.Unlock()
	q.joys.Push(JoyEvent{Port: port, Device: device, Type: typ, Value: value})
}

// RequestTrap marks a pause trap as pending. The trap will be taken by the
// frame loop on the next frame.
func (q *Queue) RequestTrap() {
	q.crit.Lock()
	defer q.crit.Unlock()
	q.trap = true
}

// TakeTrap returns true if a pause trap is pending. The pending flag is
// cleared.
func (q *Queue) TakeTrap() bool {
	q.crit.Lock()
	defer q.crit.Unlock()
	t := q.trap
	q.trap = false
	return t
}

// Drain passes every queued event to the handler. Keyboard events are drained
// before joystick events. Returns true if at least one event was handled.
//
// The handler is called with the queue locked. It must not call any other
// Queue function.
func (q *Queue) Drain(h Handler) bool {
	q.crit.Lock()
	defer q.crit.Unlock()

	n := q.keys.Drain(func(ev KeyEvent) {
		if q.recorder != nil {
			q.recorder.RecordKey(ev)
		}
		h.HandleKey(ev)
	})
	n += q.joys.Drain(func(ev JoyEvent) {
		if q.recorder != nil {
			q.recorder.RecordJoy(ev)
		}
		h.HandleJoy(ev)
	})

	return n > 0
}

// Pending returns the number of keyboard and joystick events waiting to be
// drained.
func (q *Queue) Pending() (int, int) {
	q.crit.Lock()
	defer q.crit.Unlock()
	return q.keys.Len(), q.joys.Len()
}
