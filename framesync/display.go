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
	"github.com/jetsetilly/emuxsync/hardware/tape"
	"github.com/jetsetilly/emuxsync/logger"
	"github.com/jetsetilly/emuxsync/notifications"
)

// Display is the sink for video frames and the tape status.
type Display interface {
	// counter is always in the range 0 to 999
	TapeCounter(counter int)
	TapeStatus(status tape.Status)
	TapeMotor(running bool)

	// publish the most recent frame. the sync argument is false when the
	// frame is being published in warp mode
	PublishFrame(sync bool)

	// the overlay is the menu or any other display drawn over the emulation
	OverlayActive() bool
	RenderOverlay()
}

// FrameTrigger implementations are notified at the end of every frame.
type FrameTrigger interface {
	NewFrame(frameNum int) error
}

// tapeDisplay forwards tape status to the Display and raises a notification
// whenever the motor changes state.
type tapeDisplay struct {
	l     *Loop
	motor bool
}

func (td *tapeDisplay) TapeCounter(v int) {
	if td.l.disp != nil {
		td.l.disp.TapeCounter(v)
	}
}

func (td *tapeDisplay) TapeStatus(s tape.Status) {
	if td.l.disp != nil {
		td.l.disp.TapeStatus(s)
	}
}

func (td *tapeDisplay) TapeMotor(motor bool) {
	if td.l.disp != nil {
		td.l.disp.TapeMotor(motor)
	}
	if motor == td.motor {
		return
	}
	td.motor = motor
	if motor {
		td.l.raise(notifications.NotifyTapeMotorStarted)
	} else {
		td.l.raise(notifications.NotifyTapeMotorStopped)
	}
}

// TapeRejected raises NotifyTapeRejected. It is not forwarded to the Display.
func (td *tapeDisplay) TapeRejected(_ error) {
	td.l.raise(notifications.NotifyTapeRejected)
}

// raise a notification. errors are logged.
func (l *Loop) raise(notice notifications.Notice) {
	if l.notify == nil {
		return
	}
	if err := l.notify.Notify(notice); err != nil {
		logger.Logf(l.env, logTag, "notification %s: %v", notice, err)
	}
}
