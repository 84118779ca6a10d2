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

// Package notifications allow communication from the frame loop and the
// emulated hardware to the user interface. For example, the tape deck raises
// a notification when the motor starts or stops and the idle timer raises one
// when no input has been received for a while.
//
// Notifications are sometimes passed onto the GUI to indicate to the user the
// event that has happened. For some notifications however, it is appropriate
// for the receiver to deal with the notification invisibly.
package notifications
