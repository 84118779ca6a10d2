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
	"github.com/jetsetilly/emuxsync/hardware/input"
	"github.com/jetsetilly/emuxsync/logger"
	"github.com/jetsetilly/emuxsync/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// stick values inside the deadzone are treated as the centre position.
const stickDeadzone = 10000

// the maximum number of gamepads. the last device number is used by the
// keyboard.
const maxGamepads = userinput.KeyboardDevice

// values from the hat that are used for each direction.
var hatDirections = map[uint8]uint8{
	sdl.HAT_CENTERED:  0,
	sdl.HAT_UP:        input.JoyUp,
	sdl.HAT_DOWN:      input.JoyDown,
	sdl.HAT_LEFT:      input.JoyLeft,
	sdl.HAT_RIGHT:     input.JoyRight,
	sdl.HAT_LEFTUP:    input.JoyLeft | input.JoyUp,
	sdl.HAT_LEFTDOWN:  input.JoyLeft | input.JoyDown,
	sdl.HAT_RIGHTUP:   input.JoyRight | input.JoyUp,
	sdl.HAT_RIGHTDOWN: input.JoyRight | input.JoyDown,
}

type gamepad struct {
	joystick *sdl.Joystick
	device   int

	fire  uint8
	hat   uint8
	stick uint8
}

func (g *gamepad) value() uint8 {
	return g.fire | g.hat | g.stick
}

// the joystick bits for the position of a stick axis.
func axisBits(value int16, negative uint8, positive uint8) uint8 {
	if value < -stickDeadzone {
		return negative
	}
	if value > stickDeadzone {
		return positive
	}
	return 0
}

// open every joystick attached to the system.
func (scr *SdlPlay) openGamepads() {
	for i := 0; i < sdl.NumJoysticks() && len(scr.gamepads) < maxGamepads; i++ {
		joy := sdl.JoystickOpen(i)
		if joy == nil || !joy.Attached() {
			continue
		}
		logger.Logf(logger.Allow, "sdl", "joystick: %s", joy.Name())
		scr.gamepads[joy.InstanceID()] = &gamepad{
			joystick: joy,
			device:   len(scr.gamepads),
		}
	}

	if len(scr.gamepads) == 0 {
		logger.Log(logger.Allow, "sdl", "no joysticks/gamepads found")
	}
}

func (scr *SdlPlay) closeGamepads() {
	for _, g := range scr.gamepads {
		g.joystick.Close()
	}
	scr.gamepads = make(map[sdl.JoystickID]*gamepad)
}

// update the gamepad and forward the new state if it has changed.
func (scr *SdlPlay) updateGamepad(id sdl.JoystickID, update func(g *gamepad)) {
	g, ok := scr.gamepads[id]
	if !ok {
		return
	}

	prev := g.value()
	update(g)
	if g.value() != prev {
		scr.handle(userinput.EventJoystick{Device: g.device, Value: g.value()})
	}
}

func (scr *SdlPlay) joyButton(ev *sdl.JoyButtonEvent) {
	// the first two buttons are fire buttons
	if ev.Button > 1 {
		return
	}
	scr.updateGamepad(ev.Which, func(g *gamepad) {
		if ev.State == sdl.PRESSED {
			g.fire = input.JoyFire
		} else {
			g.fire = 0
		}
	})
}

func (scr *SdlPlay) joyHat(ev *sdl.JoyHatEvent) {
	dir, ok := hatDirections[ev.Value]
	if !ok {
		return
	}
	scr.updateGamepad(ev.Which, func(g *gamepad) {
		g.hat = dir
	})
}

func (scr *SdlPlay) joyAxis(ev *sdl.JoyAxisEvent) {
	scr.updateGamepad(ev.Which, func(g *gamepad) {
		switch ev.Axis {
		case 0:
			g.stick &^= input.JoyLeft | input.JoyRight
			g.stick |= axisBits(ev.Value, input.JoyLeft, input.JoyRight)
		case 1:
			g.stick &^= input.JoyUp | input.JoyDown
			g.stick |= axisBits(ev.Value, input.JoyUp, input.JoyDown)
		}
	})
}
