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
	"github.com/jetsetilly/emuxsync/curated"
	"github.com/jetsetilly/emuxsync/hardware/core"
	"github.com/jetsetilly/emuxsync/hardware/preferences"
	"github.com/jetsetilly/emuxsync/logger"
	"github.com/jetsetilly/emuxsync/prefs"
)

// the SID write access flag is added to the SID model when passed to the
// core.
const sidWriteAccess = 0x02

// ApplySettings passes the current preferences to the core, the idle timer
// and the frame limiter.
//
// Must only be called from the emulation goroutine.
func (l *Loop) ApplySettings() error {
	p := l.env.Prefs

	l.applySID()
	l.core.SetTapeFeedbackLevel(p.TapeFeedback.Get().(int))

	if err := l.core.SetRAMConfiguration(p.RAMSize.Get().(int)); err != nil {
		return curated.Errorf(SettingsError, err)
	}

	for i := range preferences.NumROMSlots {
		if err := l.loadROM(i); err != nil {
			return curated.Errorf(SettingsError, err)
		}
	}

	l.applyTiming()

	return nil
}

func (l *Loop) applySID() {
	p := l.env.Prefs
	flags := p.SIDModel.Get().(int)
	if p.SIDWriteAccess.Get().(bool) {
		flags |= sidWriteAccess
	}
	l.core.SetSIDConfiguration(flags, p.SIDDigiblaster.Get().(bool))
}

// load the ROM named in the cartridge slot. empty slots are ignored.
func (l *Loop) loadROM(slot int) error {
	rom := &l.env.Prefs.ROM[slot]
	filename := rom.File.Get().(string)
	if filename == "" {
		return nil
	}
	return l.core.LoadROM(core.BankCartridge+slot, filename, rom.Offset.Get().(int))
}

// the idle timeout and the frame limiter both depend on the timing standard.
// safe to call from any goroutine.
func (l *Loop) applyTiming() {
	p := l.env.Prefs
	l.idle.SetTimeout(int(float32(p.IdleTimeout.Get().(int)) * p.FrameRate()))
	if l.limiter != nil {
		l.limiter.SetPeriod(p.FramePeriod())
	}
}

// setHooks forwards changes to the preferences to the core. preferences can
// be changed by any goroutine so changes that affect the core are pushed to
// the emulation goroutine.
func (l *Loop) setHooks() {
	p := l.env.Prefs

	p.TapeFeedback.SetHookPost(func(v prefs.Value) error {
		return l.PushFunction(func() {
			l.core.SetTapeFeedbackLevel(v.(int))
		})
	})

	p.RAMSize.SetHookPost(func(v prefs.Value) error {
		return l.PushFunction(func() {
			if err := l.core.SetRAMConfiguration(v.(int)); err != nil {
				logger.Log(l.env, logTag, err)
			}
		})
	})

	sid := func(_ prefs.Value) error {
		return l.PushFunction(l.applySID)
	}
	p.SIDModel.SetHookPost(sid)
	p.SIDWriteAccess.SetHookPost(sid)
	p.SIDDigiblaster.SetHookPost(sid)

	timing := func(_ prefs.Value) error {
		l.applyTiming()
		return nil
	}
	p.Timing.SetHookPost(timing)
	p.IdleTimeout.SetHookPost(timing)

	for i := range preferences.NumROMSlots {
		rom := func(_ prefs.Value) error {
			return l.PushFunction(func() {
				if err := l.loadROM(i); err != nil {
					logger.Log(l.env, logTag, err)
				}
			})
		}
		p.ROM[i].File.SetHookPost(rom)
		p.ROM[i].Offset.SetHookPost(rom)
	}
}
