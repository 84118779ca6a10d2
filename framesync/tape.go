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
	"github.com/jetsetilly/emuxsync/hardware/tape"
	"github.com/jetsetilly/emuxsync/notifications"
	"github.com/jetsetilly/emuxsync/pcmtape"
)

// AttachTape loads the tape image and attaches it to the core. The deck is
// stopped and the counter is set to zero.
//
// Must only be called from the emulation goroutine.
func (l *Loop) AttachTape(filename string) error {
	tp, err := pcmtape.Load(l.env, filename)
	if err != nil {
		return curated.Errorf(TapeError, err)
	}
	l.attach(tp)
	return nil
}

// CreateTape attaches a blank tape of the specified length to the core. The
// tape can be recorded to and then saved with SaveTape().
//
// Must only be called from the emulation goroutine.
func (l *Loop) CreateTape(seconds float64) {
	l.attach(pcmtape.NewBlank(l.env, pcmtape.DefaultSampleRate, seconds))
}

func (l *Loop) attach(tp *pcmtape.Tape) {
	l.tape = tp
	l.core.AttachTape(tp)
	l.deck.Attach(l.core)
	l.raise(notifications.NotifyTapeAttached)
}

// DetachTape removes the tape from the core. The deck is stopped and the
// counter is set to zero.
//
// Must only be called from the emulation goroutine.
func (l *Loop) DetachTape() {
	l.tape = nil
	l.core.AttachTape(nil)
	l.deck.Detach()
	l.raise(notifications.NotifyTapeDetached)
}

// SaveTape writes the attached tape to the named file.
//
// Must only be called from the emulation goroutine.
func (l *Loop) SaveTape(filename string) error {
	if l.tape == nil {
		return curated.Errorf(TapeError, curated.Errorf(tape.NoTape))
	}
	if err := l.tape.Save(filename); err != nil {
		return curated.Errorf(TapeError, err)
	}
	return nil
}

// Tape returns the attached tape or nil if there is no tape.
func (l *Loop) Tape() *pcmtape.Tape {
	return l.tape
}
