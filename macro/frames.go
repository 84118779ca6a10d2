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
	"github.com/jetsetilly/emuxsync/framesync"
	"github.com/jetsetilly/emuxsync/userinput"
)

// Emulation defines the parts of the frame loop used by macros. Implemented
// by the framesync.Loop type.
type Emulation interface {
	userinput.Input
	AddFrameTrigger(trigger framesync.FrameTrigger)
	RemoveFrameTrigger(trigger framesync.FrameTrigger)
}

// frames is shared by the Macro and Lua types. it implements the
// framesync.FrameTrigger interface and allows a script goroutine to wait for
// a number of frames.
type frames struct {
	quit     chan bool
	frameNum chan int
	done     chan struct{}
}

func newFrames() frames {
	return frames{
		quit:     make(chan bool),
		frameNum: make(chan int, 1),
		done:     make(chan struct{}),
	}
}

// NewFrame implements the framesync.FrameTrigger interface.
func (f *frames) NewFrame(frameNum int) error {
	// drain any frameNum channel before pushing a new value
	select {
	case <-f.frameNum:
	default:
	}
	select {
	case f.frameNum <- frameNum:
	default:
	}
	return nil
}

// wait for the specified number of frames. returns true if the script has
// been told to quit.
func (f *frames) wait(w int) bool {
	var target int
	select {
	case fn := <-f.frameNum:
		target = fn + w
	case <-f.quit:
		return true
	}

	for {
		select {
		case fn := <-f.frameNum:
			if fn >= target {
				return false
			}
		case <-f.quit:
			return true
		}
	}
}

// quitting returns true if the script has been told to quit. it does not
// wait.
func (f *frames) quitting() bool {
	select {
	case <-f.quit:
		return true
	default:
		return false
	}
}

// Quit forces a running script to end. Does nothing if the script is not
// currently waiting.
func (f *frames) Quit() {
	select {
	case f.quit <- true:
	default:
	}
}

// Done returns a channel that is closed when the script has finished.
func (f *frames) Done() <-chan struct{} {
	return f.done
}
