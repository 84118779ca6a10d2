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
	"github.com/jetsetilly/emuxsync/logger"
	"github.com/jetsetilly/emuxsync/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// the amount of time in milliseconds that Service() waits for an event.
const serviceTimeout = 10

// keys handled by the window rather than the emulation.
const (
	keyWarp     = "F4"
	keyKeyboard = "F6"
)

func setupService() {
	// MOUSEMOTION events fill up the event queue pretty quickly. these take
	// time to service and for no good reason
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)
}

// Service checks for SDL events and redraws the window if a new frame has
// been published.
//
// MUST ONLY be called from the main thread.
func (scr *SdlPlay) Service() {
	select {
	case s := <-scr.setup:
		scr.emulation = s.emulation
		scr.controllers = userinput.NewControllers(s.emulation, s.keysAsJoystick)
	default:
	}

	// check for SDL events. the first check waits for a short time, after
	// which events are polled until the queue is empty
	for ev := sdl.WaitEventTimeout(serviceTimeout); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.handle(userinput.EventQuit{})

		case *sdl.KeyboardEvent:
			scr.keyboard(ev)

		case *sdl.JoyButtonEvent:
			scr.joyButton(ev)

		case *sdl.JoyHatEvent:
			scr.joyHat(ev)

		case *sdl.JoyAxisEvent:
			scr.joyAxis(ev)
		}
	}

	scr.updateTitle()

	if scr.frames.Swap(0) > 0 {
		scr.render()
	}
}

func (scr *SdlPlay) keyboard(ev *sdl.KeyboardEvent) {
	key := sdl.GetKeyName(ev.Keysym.Sym)
	down := ev.Type == sdl.KEYDOWN

	if down && ev.Repeat == 0 && scr.emulation != nil {
		switch key {
		case keyWarp:
			scr.emulation.SetWarp(!scr.emulation.Warp())
			return
		case keyKeyboard:
			show := !scr.emulation.VirtualKeyboardActive()
			scr.emulation.ShowVirtualKeyboard(show)
			scr.overlay.Store(show)
			return
		}
	}

	scr.handle(userinput.EventKeyboard{
		Key:    key,
		Down:   down,
		Repeat: ev.Repeat != 0,
	})
}

// forward event to the controllers.
func (scr *SdlPlay) handle(ev userinput.Event) {
	if _, ok := ev.(userinput.EventQuit); ok {
		scr.quit.Store(true)
	}
	if scr.controllers == nil {
		return
	}
	if err := scr.controllers.HandleUserInput(ev); err != nil {
		logger.Log(logger.Allow, "sdl", err)
	}
	if scr.controllers.Quit {
		scr.quit.Store(true)
	}
}

func (scr *SdlPlay) updateTitle() {
	scr.crit.Lock()
	s := scr.status
	scr.status.dirty = false
	scr.crit.Unlock()

	if !s.dirty {
		return
	}

	var warp, keyboard bool
	if scr.emulation != nil {
		warp = scr.emulation.Warp()
		keyboard = scr.emulation.VirtualKeyboardActive()
	}
	scr.window.SetTitle(s.title(warp, keyboard))
}
