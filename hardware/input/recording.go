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

// EventRecorder implementations mirror drained events. For example, the macro
// package can record the user's input as a script that can be played back
// later.
//
// The recorder functions are called by the frame loop with the queue locked.
type EventRecorder interface {
	RecordKey(ev KeyEvent)
	RecordJoy(ev JoyEvent)
}

// AttachRecorder attaches an EventRecorder implementation. The recorder can be
// nil in order to remove a previously attached recorder.
func (q *Queue) AttachRecorder(r EventRecorder) {
	q.crit.Lock()
	defer q.crit.Unlock()
	q.recorder = r
}
