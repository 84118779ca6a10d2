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
	"github.com/veandco/go-sdl2/sdl"
)

// width of the border in pixels before scaling.
const borderSize = 32

// height of each stripe in the border while the tape motor is running.
const stripeHeight = 8

type colour struct {
	r, g, b uint8
}

var (
	background = colour{r: 0x6c, g: 0x5e, b: 0xb5}
	border     = colour{r: 0x35, g: 0x28, b: 0x79}
	stripe     = colour{r: 0xb8, g: 0xc7, b: 0x6f}
	overlay    = colour{r: 0x00, g: 0x00, b: 0x00}
)

func (scr *SdlPlay) fill(c colour, a uint8, rect *sdl.Rect) error {
	if err := scr.renderer.SetDrawColor(c.r, c.g, c.b, a); err != nil {
		return err
	}
	return scr.renderer.FillRect(rect)
}

func (scr *SdlPlay) render() {
	if err := scr.draw(); err != nil {
		logger.Log(logger.Allow, "sdl", err)
	}
	scr.renderer.Present()
	scr.rendered++
}

func (scr *SdlPlay) draw() error {
	w, h := scr.window.GetSize()

	scr.crit.Lock()
	motor := scr.status.motor
	scr.crit.Unlock()

	if err := scr.renderer.SetScale(float32(w)/windowWidth, float32(h)/windowHeight); err != nil {
		return err
	}

	if err := scr.fill(border, 0xff, nil); err != nil {
		return err
	}

	// loading stripes move down the border while the motor is running
	if motor {
		for y := int32(scr.rendered % (stripeHeight * 2)); y < windowHeight; y += stripeHeight * 2 {
			if err := scr.fill(stripe, 0xff, &sdl.Rect{X: 0, Y: y, W: windowWidth, H: stripeHeight}); err != nil {
				return err
			}
		}
	}

	screen := &sdl.Rect{X: borderSize, Y: borderSize, W: windowWidth - borderSize*2, H: windowHeight - borderSize*2}
	if err := scr.fill(background, 0xff, screen); err != nil {
		return err
	}

	if scr.overlay.Load() {
		if err := scr.renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND); err != nil {
			return err
		}
		if err := scr.fill(overlay, 0x80, screen); err != nil {
			return err
		}
	}

	return nil
}
