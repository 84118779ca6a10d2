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

package notifications

// Notice describes events that somehow change the presentation of the
// emulation. These notifications can be used to present additional information
// to the user
type Notice string

// List of defined notifications.
const (
	// tape motor has started or stopped
	NotifyTapeMotorStarted Notice = "NotifyTapeMotorStarted"
	NotifyTapeMotorStopped Notice = "NotifyTapeMotorStopped"

	// a tape image has been attached or detached
	NotifyTapeAttached Notice = "NotifyTapeAttached"
	NotifyTapeDetached Notice = "NotifyTapeDetached"

	// the tape mechanism refused a request
	NotifyTapeRejected Notice = "NotifyTapeRejected"

	// no input has been received for the duration of the idle timeout
	NotifyIdle Notice = "NotifyIdle"

	// the emulation has been paused by a pause trap
	NotifyPause Notice = "NotifyPause"
)

// Notify is used for direct communication between the frame loop and the
// user interface.
type Notify interface {
	Notify(notice Notice) error
}
