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

package tape_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jetsetilly/emuxsync/curated"
	"github.com/jetsetilly/emuxsync/hardware/tape"
	"github.com/jetsetilly/emuxsync/logger"
	"github.com/jetsetilly/emuxsync/test"
)

// mechanism is a tape mechanism that records every request made of it.
type mechanism struct {
	pos    float64
	length float64

	seeks    []float64
	plays    int
	stops    int
	records  int
	rejectOp bool
	rejectSk bool
}

func (m *mechanism) Play() error {
	m.plays++
	if m.rejectOp {
		return curated.Errorf("mechanism: play rejected")
	}
	return nil
}

func (m *mechanism) Stop() error {
	m.stops++
	return nil
}

func (m *mechanism) Record() error {
	m.records++
	if m.rejectOp {
		return curated.Errorf("mechanism: record rejected")
	}
	return nil
}

func (m *mechanism) Seek(position float64) error {
	m.seeks = append(m.seeks, position)
	if m.rejectSk {
		return curated.Errorf("mechanism: seek rejected")
	}
	m.pos = position
	return nil
}

func (m *mechanism) Position() float64 {
	return m.pos
}

func (m *mechanism) Length() float64 {
	return m.length
}

// display records every notification in the order it was received.
type display struct {
	log      []string
	counters []int
}

func (d *display) TapeCounter(counter int) {
	d.counters = append(d.counters, counter)
	d.log = append(d.log, fmt.Sprintf("counter %d", counter))
}

func (d *display) TapeStatus(status tape.Status) {
	d.log = append(d.log, fmt.Sprintf("status %s", status))
}

func (d *display) TapeMotor(running bool) {
	d.log = append(d.log, fmt.Sprintf("motor %v", running))
}

func (d *display) TapeRejected(err error) {
	d.log = append(d.log, "rejected")
}

func (d *display) clear() {
	d.log = d.log[:0]
	d.counters = d.counters[:0]
}

func newDeck(pos float64, length float64) (*tape.Deck, *mechanism, *display) {
	disp := &display{}
	mech := &mechanism{pos: pos, length: length}
	deck := tape.NewDeck(logger.Allow, disp)
	deck.Attach(mech)
	disp.clear()
	return deck, mech, disp
}

func steps(deck *tape.Deck, n int) {
	for range n {
		deck.Step()
	}
}

func TestRewind(t *testing.T) {
	deck, mech, disp := newDeck(10.0, 100.0)

	deck.Command(tape.Rewind)
	test.ExpectEquality(t, deck.Phase(), tape.SeekingBackward)

	// the mechanism is not told about the rewind
	test.ExpectEquality(t, len(mech.seeks), 0)
	test.ExpectEquality(t, mech.plays+mech.stops+mech.records, 0)

	steps(deck, tape.SeekCadence-1)
	test.ExpectEquality(t, len(mech.seeks), 0)

	deck.Step()
	test.DemandEquality(t, len(mech.seeks), 1)
	test.ExpectEquality(t, mech.seeks[0], 9.0)

	// counter published from the position before the seek
	test.DemandEquality(t, len(disp.counters), 1)
	test.ExpectEquality(t, disp.counters[0], 10)

	// at the start of the tape the seek is clamped and if it is rejected the
	// deck stops within the same step
	mech.pos = 0.0
	mech.rejectSk = true
	steps(deck, tape.SeekCadence-1)
	test.ExpectEquality(t, deck.Phase(), tape.SeekingBackward)
	deck.Step()
	test.DemandEquality(t, len(mech.seeks), 2)
	test.ExpectEquality(t, mech.seeks[1], 0.0)
	test.ExpectEquality(t, deck.Phase(), tape.Stopped)
	test.ExpectFailure(t, deck.Motor())

	// stopped deck does nothing
	steps(deck, tape.MotorCadence*2)
	test.ExpectEquality(t, len(mech.seeks), 2)
}

func TestFastForward(t *testing.T) {
	deck, mech, _ := newDeck(99.5, 100.0)

	deck.Command(tape.FastForward)
	steps(deck, tape.SeekCadence)
	test.DemandEquality(t, len(mech.seeks), 1)
	test.ExpectEquality(t, mech.seeks[0], 100.0)
	test.ExpectEquality(t, deck.Phase(), tape.SeekingForward)

	steps(deck, tape.SeekCadence*3)
	test.ExpectEquality(t, len(mech.seeks), 4)
	test.ExpectEquality(t, mech.pos, 100.0)
}

func TestPlayCounter(t *testing.T) {
	deck, mech, disp := newDeck(37.2, 100.0)

	deck.Command(tape.Play)
	test.ExpectEquality(t, mech.plays, 1)
	test.ExpectEquality(t, deck.Phase(), tape.Playing)

	steps(deck, tape.MotorCadence-1)
	test.ExpectEquality(t, len(disp.counters), 0)

	deck.Step()
	test.DemandEquality(t, len(disp.counters), 1)
	test.ExpectEquality(t, disp.counters[0], 37)
	test.ExpectEquality(t, deck.Counter(), 37)

	// play does not seek
	test.ExpectEquality(t, len(mech.seeks), 0)
}

func TestZero(t *testing.T) {
	deck, mech, disp := newDeck(37.2, 100.0)

	deck.Command(tape.Play)
	deck.Command(tape.Zero)
	test.ExpectEquality(t, deck.Counter(), 0)
	test.ExpectEquality(t, deck.Phase(), tape.Playing)

	steps(deck, tape.MotorCadence*3)
	for _, c := range disp.counters {
		test.ExpectEquality(t, c, 0)
	}

	// counter follows the position relative to the zero point
	mech.pos = 40.9
	steps(deck, tape.MotorCadence)
	test.ExpectEquality(t, deck.Counter(), 3)

	// counter wraps below zero
	mech.pos = 30.0
	steps(deck, tape.MotorCadence)
	test.ExpectEquality(t, deck.Counter(), 993)
}

func TestCounterValue(t *testing.T) {
	test.ExpectEquality(t, tape.CounterValue(37.9, 0.5), 37)
	test.ExpectEquality(t, tape.CounterValue(5, 10), 995)
	test.ExpectEquality(t, tape.CounterValue(1500, 0), 500)
	test.ExpectEquality(t, tape.CounterValue(0, 2500), 500)
}

func TestPublishOrder(t *testing.T) {
	deck, _, disp := newDeck(0, 100.0)

	deck.Command(tape.Play)
	test.DemandEquality(t, len(disp.log), 2)
	test.ExpectEquality(t, disp.log[0], "status playing")
	test.ExpectEquality(t, disp.log[1], "motor true")

	disp.clear()
	deck.Command(tape.Stop)
	test.DemandEquality(t, len(disp.log), 2)
	test.ExpectEquality(t, disp.log[0], "status stopped")
	test.ExpectEquality(t, disp.log[1], "motor false")

	disp.clear()
	deck.Command(tape.Rewind)
	test.DemandEquality(t, len(disp.log), 2)
	test.ExpectEquality(t, disp.log[0], "status seeking backward")
	test.ExpectEquality(t, disp.log[1], "motor true")
}

func TestRejected(t *testing.T) {
	deck, mech, disp := newDeck(0, 100.0)
	mech.rejectOp = true

	deck.Command(tape.Play)
	test.ExpectEquality(t, deck.Phase(), tape.Stopped)
	test.DemandEquality(t, len(disp.log), 4)
	test.ExpectEquality(t, disp.log[0], "status playing")
	test.ExpectEquality(t, disp.log[1], "status stopped")
	test.ExpectEquality(t, disp.log[2], "rejected")
	test.ExpectEquality(t, disp.log[3], "motor false")

	deck.Command(tape.Record)
	test.ExpectEquality(t, mech.records, 1)
	test.ExpectEquality(t, deck.Phase(), tape.Stopped)
}

func TestReset(t *testing.T) {
	deck, mech, disp := newDeck(50.0, 100.0)

	deck.Command(tape.Zero)
	deck.Command(tape.FastForward)
	steps(deck, tape.SeekCadence)

	disp.clear()
	deck.Command(tape.Reset)
	test.ExpectEquality(t, deck.Phase(), tape.Stopped)
	test.ExpectEquality(t, mech.pos, 0.0)
	test.ExpectEquality(t, mech.stops, 1)
	test.ExpectEquality(t, deck.Counter(), 0)
	test.DemandEquality(t, len(disp.log), 3)
	test.ExpectEquality(t, disp.log[0], "status stopped")
	test.ExpectEquality(t, disp.log[1], "counter 0")
	test.ExpectEquality(t, disp.log[2], "motor false")

	// the zero offset was cleared by the reset
	mech.pos = 12.0
	deck.Command(tape.Play)
	steps(deck, tape.MotorCadence)
	test.ExpectEquality(t, deck.Counter(), 12)
}

func TestNoTape(t *testing.T) {
	disp := &display{}
	deck := tape.NewDeck(logger.Allow, disp)
	test.ExpectFailure(t, deck.Attached())

	deck.Command(tape.Play)
	test.ExpectEquality(t, deck.Phase(), tape.Stopped)
	test.ExpectEquality(t, strings.Count(strings.Join(disp.log, ","), "rejected"), 1)

	deck.Command(tape.Rewind)
	steps(deck, tape.SeekCadence)
	test.ExpectEquality(t, deck.Phase(), tape.Stopped)
	test.ExpectEquality(t, strings.Count(strings.Join(disp.log, ","), "rejected"), 2)

	// reset and zero are always safe
	deck.Command(tape.Reset)
	deck.Command(tape.Zero)
	test.ExpectEquality(t, deck.Counter(), 0)
}

func TestAttachDetach(t *testing.T) {
	deck, mech, disp := newDeck(20.0, 100.0)

	deck.Command(tape.Play)
	steps(deck, tape.MotorCadence)
	test.ExpectEquality(t, deck.Counter(), 20)

	disp.clear()
	deck.Detach()
	test.ExpectFailure(t, deck.Attached())
	test.ExpectEquality(t, deck.Phase(), tape.Stopped)
	test.DemandEquality(t, len(disp.log), 3)
	test.ExpectEquality(t, disp.log[0], "counter 0")
	test.ExpectEquality(t, disp.log[1], "status stopped")
	test.ExpectEquality(t, disp.log[2], "motor false")

	deck.Attach(mech)
	test.ExpectSuccess(t, deck.Attached())
	test.ExpectEquality(t, deck.Counter(), 0)
}

func TestUnrecognisedCommand(t *testing.T) {
	deck, _, _ := newDeck(0, 100.0)
	defer func() {
		test.ExpectInequality(t, recover(), nil)
	}()
	deck.Command(tape.Command("EJECT"))
}

func TestParseCommand(t *testing.T) {
	c, ok := tape.ParseCommand(" fastforward ")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c, tape.FastForward)

	_, ok = tape.ParseCommand("EJECT")
	test.ExpectFailure(t, ok)
}
