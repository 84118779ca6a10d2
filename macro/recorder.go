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

package macro

import (
	"fmt"
	"io"

	"github.com/jetsetilly/emuxsync/curated"
	"github.com/jetsetilly/emuxsync/hardware/input"
)

// Recorder writes a macro script of the input events drained by the frame
// loop. It implements the input.EventRecorder and framesync.FrameTrigger
// interfaces.
//
// The Recorder must be attached to the input queue with AttachRecorder() and
// added to the frame loop with AddFrameTrigger(). All functions are called
// from the emulation goroutine.
type Recorder struct {
	w   io.Writer
	err error

	// the current frame and the frame of the most recent event
	frameNum  int
	lastEvent int
}

// NewRecorder is the preferred method of initialisation for the Recorder
// type. The macro header is written immediately.
func NewRecorder(w io.Writer) (*Recorder, error) {
	rec := &Recorder{w: w}
	rec.printf("%s\n%s\n", headerID, headerVersion)
	if rec.err != nil {
		return nil, rec.err
	}
	return rec, nil
}

// Err returns the first write error encountered by the recorder.
func (rec *Recorder) Err() error {
	return rec.err
}

func (rec *Recorder) printf(format string, args ...any) {
	if rec.err != nil {
		return
	}
	if _, err := fmt.Fprintf(rec.w, format, args...); err != nil {
		rec.err = curated.Errorf(MacroError, err)
	}
}

// events that happen on different frames are separated by a WAIT
// instruction.
func (rec *Recorder) event() {
	if rec.frameNum > rec.lastEvent {
		rec.printf("WAIT %d\n", rec.frameNum-rec.lastEvent)
		rec.lastEvent = rec.frameNum
	}
}

// NewFrame implements the framesync.FrameTrigger interface.
func (rec *Recorder) NewFrame(frameNum int) error {
	rec.frameNum = frameNum
	return nil
}

// RecordKey implements the input.EventRecorder interface.
func (rec *Recorder) RecordKey(ev input.KeyEvent) {
	rec.event()
	if ev.Pressed {
		rec.printf("PRESS %s\n", ev.Key)
	} else {
		rec.printf("RELEASE %s\n", ev.Key)
	}
}

// RecordJoy implements the input.EventRecorder interface.
func (rec *Recorder) RecordJoy(ev input.JoyEvent) {
	rec.event()
	rec.printf("JOY %d %s $%02x\n", ev.Port, ev.Type, ev.Value)
}
