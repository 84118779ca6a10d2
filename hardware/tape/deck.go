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

package tape

import (
	"fmt"

	"github.com/jetsetilly/emuxsync/curated"
	"github.com/jetsetilly/emuxsync/logger"
)

// Cadence of the deck, measured in frames.
const (
	// frames between refreshes of the counter while the motor is running
	MotorCadence = 50

	// frames between each movement of the tape while seeking
	SeekCadence = 5
)

// the counter has three digits.
const counterModulo = 1000

// Sentinal error pattern.
const NoTape = "tape: no tape attached"

// Deck simulates the transport controls of a tape deck.
type Deck struct {
	perm logger.Permission

	mech Mechanism
	disp Display

	phase     Phase
	motorTick int
	seekTick  int

	// position that the counter treats as zero
	offset float64

	// the most recently published counter
	counter int
}

// NewDeck is the preferred method of initialisation for the Deck type. The
// display argument can be nil.
func NewDeck(perm logger.Permission, disp Display) *Deck {
	if perm == nil {
		perm = logger.Allow
	}
	return &Deck{
		perm: perm,
		disp: disp,
	}
}

func (d *Deck) String() string {
	return fmt.Sprintf("%s [%03d]", d.phase, d.counter)
}

// Phase returns the current phase of the deck.
func (d *Deck) Phase() Phase {
	return d.phase
}

// Motor returns true if the tape motor is running.
func (d *Deck) Motor() bool {
	return d.phase != Stopped
}

// Counter returns the most recently published counter value.
func (d *Deck) Counter() int {
	return d.counter
}

// Attached returns true if a tape mechanism is attached to the deck.
func (d *Deck) Attached() bool {
	return d.mech != nil
}

// Attach a tape mechanism to the deck. Any seeking is cancelled, the motor is
// stopped and the counter is set to zero.
func (d *Deck) Attach(mech Mechanism) {
	d.mech = mech
	d.eject()
}

// Detach the tape mechanism from the deck. The deck is stopped as it is by
// Attach().
func (d *Deck) Detach() {
	d.mech = nil
	d.eject()
}

func (d *Deck) eject() {
	d.phase = Stopped
	d.offset = 0
	d.publishCounterValue(0)
	d.publishStatus(StatusStopped)
	d.publishMotor()
}

// Command applies the command to the deck. The control status is published
// before the command is applied and the motor status after.
//
// An unrecognised command is a programming error and will cause a panic.
func (d *Deck) Command(cmd Command) {
	switch cmd {
	case Play:
		d.publishStatus(StatusPlaying)
		d.start(cmd)
	case Record:
		d.publishStatus(StatusRecording)
		d.start(cmd)
	case Stop:
		d.publishStatus(StatusStopped)
		if d.mech != nil {
			if err := d.mech.Stop(); err != nil {
				logger.Log(d.perm, "tape", err)
			}
		}
		d.phase = Stopped
	case Rewind:
		d.publishStatus(StatusSeekingBackward)
		d.seek(SeekingBackward)
	case FastForward:
		d.publishStatus(StatusSeekingForward)
		d.seek(SeekingForward)
	case Reset:
		d.publishStatus(StatusStopped)
		d.ResetDrive()
	case Zero:
		d.publishStatus(d.phase.status())
		d.offset = d.position()
		d.publishCounterValue(0)
	default:
		panic(fmt.Sprintf("tape: unrecognised command (%s)", cmd))
	}

	d.publishMotor()
}

// start the motor for playback or recording.
func (d *Deck) start(cmd Command) {
	var err error

	if d.mech == nil {
		err = curated.Errorf(NoTape)
	} else if cmd == Play {
		err = d.mech.Play()
	} else {
		err = d.mech.Record()
	}

	if err != nil {
		logger.Logf(d.perm, "tape", "%s rejected: %v", cmd, err)
		d.phase = Stopped
		d.publishStatus(StatusStopped)
		d.publishRejected(err)
		return
	}

	if cmd == Play {
		d.phase = Playing
	} else {
		d.phase = Recording
	}
	d.motorTick = MotorCadence
}

// seek begins rewinding or fast forwarding. the mechanism is not told
// anything until the first step of the seek.
func (d *Deck) seek(phase Phase) {
	d.phase = phase
	d.seekTick = SeekCadence
	d.motorTick = MotorCadence
}

// ResetDrive rewinds the tape to the beginning and stops the motor. The
// counter is set to zero.
func (d *Deck) ResetDrive() {
	if d.mech != nil {
		if err := d.mech.Seek(0); err != nil {
			logger.Log(d.perm, "tape", err)
		}
		if err := d.mech.Stop(); err != nil {
			logger.Log(d.perm, "tape", err)
		}
	}
	d.phase = Stopped
	d.offset = 0
	d.publishCounterValue(0)
}

// Step advances the deck by one frame. It should be called once per frame
// while the motor is running. It does nothing if the deck is stopped.
func (d *Deck) Step() {
	if d.phase == Stopped {
		return
	}

	if dir := d.phase.direction(); dir != 0 {
		d.seekTick--
		if d.seekTick <= 0 {
			pos := d.position()
			if err := d.move(pos + dir); err != nil {
				logger.Logf(d.perm, "tape", "seek aborted: %v", err)
				d.phase = Stopped
				d.publishStatus(StatusStopped)
				d.publishMotor()
				d.publishRejected(err)
			}
			d.seekTick = SeekCadence

			// the counter shows the position from before the move
			d.publishCounter(pos)
		}
	}

	d.motorTick--
	if d.motorTick <= 0 {
		d.publishCounter(d.position())
		d.motorTick = MotorCadence
	}
}

// move the mechanism to the target position, clamped to the length of the
// tape.
func (d *Deck) move(target float64) error {
	if d.mech == nil {
		return curated.Errorf(NoTape)
	}
	target = min(max(target, 0), d.mech.Length())
	return d.mech.Seek(target)
}

func (d *Deck) position() float64 {
	if d.mech == nil {
		return 0
	}
	return d.mech.Position()
}

// CounterValue returns the counter value for the position given the zero
// offset. The value is always in the range 0 to 999.
func CounterValue(position float64, offset float64) int {
	v := int(position) - int(offset)
	for v < 0 {
		v += counterModulo
	}
	return v % counterModulo
}

func (d *Deck) publishCounter(position float64) {
	d.publishCounterValue(CounterValue(position, d.offset))
}

func (d *Deck) publishCounterValue(v int) {
	d.counter = v
	if d.disp != nil {
		d.disp.TapeCounter(v)
	}
}

func (d *Deck) publishStatus(s Status) {
	if d.disp != nil {
		d.disp.TapeStatus(s)
	}
}

func (d *Deck) publishMotor() {
	if d.disp != nil {
		d.disp.TapeMotor(d.Motor())
	}
}

func (d *Deck) publishRejected(err error) {
	if d.disp != nil {
		d.disp.TapeRejected(err)
	}
}
