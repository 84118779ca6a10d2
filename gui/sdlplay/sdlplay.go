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

package sdlplay

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/jetsetilly/emuxsync/curated"
	"github.com/jetsetilly/emuxsync/hardware/tape"
	"github.com/jetsetilly/emuxsync/notifications"
	"github.com/jetsetilly/emuxsync/prefs"
	"github.com/jetsetilly/emuxsync/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// Sentinal error pattern.
const SDLError = "sdl: %v"

const windowTitle = "emuxsync"

// window dimensions before scaling.
const (
	windowWidth  = 320
	windowHeight = 200
)

// Emulation is the part of the frame loop used by SdlPlay.
type Emulation interface {
	userinput.Input
	ShowVirtualKeyboard(show bool)
	VirtualKeyboardActive() bool
	SetWarp(warp bool)
	Warp() bool
}

// the state shown by the window. written by the emulation goroutine and read
// by the main thread.
type status struct {
	counter int
	tape    tape.Status
	motor   bool
	notice  notifications.Notice
	dirty   bool
}

// SdlPlay is a simple SDL implementation of the framesync.Display interface.
type SdlPlay struct {
	emulation   Emulation
	controllers *userinput.Controllers

	window   *sdl.Window
	renderer *sdl.Renderer

	// open gamepads indexed by the SDL instance ID
	gamepads map[sdl.JoystickID]*gamepad

	crit   sync.Mutex
	status status

	// number of frames published since the last render
	frames atomic.Int64

	// the overlay is the virtual keyboard
	overlay atomic.Bool

	// emulation set by SetEmulation() and collected by Service()
	setup chan setup

	// the user has asked for the window to be closed
	quit atomic.Bool

	// number of rendered frames. used to animate the border
	rendered int
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay. The
// window is scaled by the scale argument.
//
// MUST ONLY be called from the main thread.
func NewSdlPlay(scale int32) (*SdlPlay, error) {
	scr := &SdlPlay{
		gamepads: make(map[sdl.JoystickID]*gamepad),
		setup:    make(chan setup, 1),
	}

	err := sdl.Init(uint32(sdl.INIT_VIDEO | sdl.INIT_JOYSTICK | sdl.INIT_GAMECONTROLLER))
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	scr.window, err = sdl.CreateWindow(windowTitle,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		windowWidth*scale, windowHeight*scale,
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	scr.openGamepads()
	setupService()

	return scr, nil
}

type setup struct {
	emulation      Emulation
	keysAsJoystick *prefs.Bool
}

// SetEmulation connects the window to the frame loop. The connection is made
// on the next call to Service(). Events received before then are discarded.
//
// Can be called from any goroutine.
func (scr *SdlPlay) SetEmulation(emulation Emulation, keysAsJoystick *prefs.Bool) {
	scr.setup <- setup{emulation: emulation, keysAsJoystick: keysAsJoystick}
}

// Destroy releases the SDL resources.
//
// MUST ONLY be called from the main thread.
func (scr *SdlPlay) Destroy() {
	scr.closeGamepads()
	_ = scr.renderer.Destroy()
	_ = scr.window.Destroy()
	sdl.Quit()
}

// Quit returns true if the user has closed the window.
//
// Can be called from any goroutine.
func (scr *SdlPlay) Quit() bool {
	return scr.quit.Load()
}

// PublishFrame implements the framesync.Display interface.
func (scr *SdlPlay) PublishFrame(_ bool) {
	scr.frames.Add(1)
}

// OverlayActive implements the framesync.Display interface.
func (scr *SdlPlay) OverlayActive() bool {
	return scr.overlay.Load()
}

// RenderOverlay implements the framesync.Display interface. The overlay is
// drawn by the main thread.
func (scr *SdlPlay) RenderOverlay() {
}

// TapeCounter implements the framesync.Display interface.
func (scr *SdlPlay) TapeCounter(v int) {
	scr.crit.Lock()
	defer scr.crit.Unlock()
	scr.status.counter = v
	scr.status.dirty = true
}

// TapeStatus implements the framesync.Display interface.
func (scr *SdlPlay) TapeStatus(s tape.Status) {
	scr.crit.Lock()
	defer scr.crit.Unlock()
	scr.status.tape = s
	scr.status.dirty = true
}

// TapeMotor implements the framesync.Display interface.
func (scr *SdlPlay) TapeMotor(motor bool) {
	scr.crit.Lock()
	defer scr.crit.Unlock()
	scr.status.motor = motor
	scr.status.dirty = true
}

// Notify implements the notifications.Notify interface.
func (scr *SdlPlay) Notify(notice notifications.Notice) error {
	scr.crit.Lock()
	defer scr.crit.Unlock()
	switch notice {
	case notifications.NotifyIdle, notifications.NotifyPause, notifications.NotifyTapeRejected:
		scr.status.notice = notice
	default:
		scr.status.notice = ""
	}
	scr.status.dirty = true
	return nil
}

// the window title with the current state of the tape.
func (s status) title(warp bool, keyboard bool) string {
	t := fmt.Sprintf("%s [%03d] %s", windowTitle, s.counter, s.tape)
	if warp {
		t = fmt.Sprintf("%s (warp)", t)
	}
	if keyboard {
		t = fmt.Sprintf("%s (keyboard)", t)
	}
	switch s.notice {
	case notifications.NotifyIdle:
		t = fmt.Sprintf("%s (idle)", t)
	case notifications.NotifyPause:
		t = fmt.Sprintf("%s (paused)", t)
	}
	return t
}
