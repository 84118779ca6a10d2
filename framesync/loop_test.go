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

package framesync_test

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/emuxsync/curated"
	"github.com/jetsetilly/emuxsync/environment"
	"github.com/jetsetilly/emuxsync/framesync"
	"github.com/jetsetilly/emuxsync/hardware/core"
	"github.com/jetsetilly/emuxsync/hardware/input"
	"github.com/jetsetilly/emuxsync/hardware/joystick"
	"github.com/jetsetilly/emuxsync/hardware/keymap"
	"github.com/jetsetilly/emuxsync/hardware/preferences"
	"github.com/jetsetilly/emuxsync/hardware/tape"
	"github.com/jetsetilly/emuxsync/notifications"
	"github.com/jetsetilly/emuxsync/test"
)

// display records every call made to it.
type display struct {
	calls   []string
	overlay bool
}

func (d *display) PublishFrame(sync bool) {
	d.calls = append(d.calls, fmt.Sprintf("publish %v", sync))
}

func (d *display) OverlayActive() bool {
	return d.overlay
}

func (d *display) RenderOverlay() {
	d.calls = append(d.calls, "overlay")
}

func (d *display) TapeCounter(v int) {
	d.calls = append(d.calls, fmt.Sprintf("counter %d", v))
}

func (d *display) TapeStatus(s tape.Status) {
	d.calls = append(d.calls, fmt.Sprintf("status %s", s))
}

func (d *display) TapeMotor(motor bool) {
	d.calls = append(d.calls, fmt.Sprintf("motor %v", motor))
}

func (d *display) clear() {
	d.calls = d.calls[:0]
}

type notify struct {
	notices []notifications.Notice
}

func (n *notify) Notify(notice notifications.Notice) error {
	n.notices = append(n.notices, notice)
	return nil
}

func (n *notify) count(notice notifications.Notice) int {
	var ct int
	for _, m := range n.notices {
		if m == notice {
			ct++
		}
	}
	return ct
}

type trigger struct {
	frames []int
}

func (tr *trigger) NewFrame(frameNum int) error {
	tr.frames = append(tr.frames, frameNum)
	return nil
}

type fixture struct {
	env  *environment.Environment
	core *core.Headless
	disp *display
	ntfy *notify
	loop *framesync.Loop
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	p, err := preferences.NewPreferences(filepath.Join(t.TempDir(), preferences.SettingsFile))
	test.DemandSuccess(t, err)

	env, err := environment.NewEnvironment(environment.MainEmulation, p)
	test.DemandSuccess(t, err)

	hl, err := core.NewHeadless(env)
	test.DemandSuccess(t, err)

	f := &fixture{
		env:  env,
		core: hl,
		disp: &display{},
		ntfy: &notify{},
	}

	f.loop, err = framesync.NewLoop(env, hl, f.disp, f.ntfy, false)
	test.DemandSuccess(t, err)
	t.Cleanup(f.loop.Close)

	return f
}

// run the core for exactly one frame.
func (f *fixture) frame(t *testing.T) {
	t.Helper()
	test.DemandSuccess(t, f.core.Run(f.env.Prefs.TimeAdvance()))
}

func TestKeyboard(t *testing.T) {
	f := newFixture(t)

	code, ok := keymap.ToCore(keymap.KeyA)
	test.DemandSuccess(t, ok)

	f.loop.EnqueueKey(keymap.KeyA, true)
	test.ExpectFailure(t, f.core.KeyDown(code))
	f.frame(t)
	test.ExpectSuccess(t, f.core.KeyDown(code))

	f.loop.EnqueueKey(keymap.KeyA, false)
	f.frame(t)
	test.ExpectFailure(t, f.core.KeyDown(code))
}

func TestJoystick(t *testing.T) {
	f := newFixture(t)

	up := joystick.Code(0, input.JoyUp)
	fire := joystick.Code(1, input.JoyFire)

	f.loop.EnqueueJoy(0, 0, input.Or, input.JoyUp)
	f.loop.EnqueueJoy(1, 0, input.Absolute, input.JoyFire)
	f.frame(t)
	test.ExpectSuccess(t, f.core.KeyDown(up))
	test.ExpectSuccess(t, f.core.KeyDown(fire))

	f.loop.EnqueueJoy(0, 0, input.And, input.JoyMask&^input.JoyUp)
	f.frame(t)
	test.ExpectFailure(t, f.core.KeyDown(up))
	test.ExpectSuccess(t, f.core.KeyDown(fire))

	// an invalid port is logged and otherwise ignored
	f.loop.EnqueueJoy(5, 0, input.Or, input.JoyUp)
	f.frame(t)
	test.ExpectFailure(t, f.core.KeyDown(up))
}

func TestFrameOrder(t *testing.T) {
	f := newFixture(t)

	tr := &trigger{}
	f.loop.AddFrameTrigger(tr)

	var paused int
	f.loop.SetPauseHandler(func() {
		paused++
	})

	f.disp.overlay = true
	f.loop.RequestTrap()
	f.frame(t)

	test.ExpectEquality(t, strings.Join(f.disp.calls, ","), "publish true,overlay")
	test.ExpectEquality(t, paused, 1)
	test.ExpectEquality(t, f.ntfy.count(notifications.NotifyPause), 1)
	test.ExpectEquality(t, len(tr.frames), 1)
	test.ExpectEquality(t, tr.frames[0], 1)

	// the trap is one-shot
	f.disp.overlay = false
	f.disp.clear()
	f.loop.SetWarp(true)
	f.frame(t)
	test.ExpectEquality(t, strings.Join(f.disp.calls, ","), "publish false")
	test.ExpectEquality(t, paused, 1)
	test.ExpectEquality(t, len(tr.frames), 2)

	f.loop.RemoveFrameTrigger(tr)
	f.frame(t)
	test.ExpectEquality(t, len(tr.frames), 2)
	test.ExpectEquality(t, f.loop.FrameNum(), 3)
}

func TestSyncFrame(t *testing.T) {
	f := newFixture(t)

	tr := &trigger{}
	f.loop.AddFrameTrigger(tr)

	code, _ := keymap.ToCore(keymap.KeyQ)
	f.loop.EnqueueKey(keymap.KeyQ, true)

	// the synchronised frame is published but nothing else happens
	test.ExpectSuccess(t, f.loop.SyncFrame(f.env.Prefs.TimeAdvance()))
	test.ExpectEquality(t, strings.Join(f.disp.calls, ","), "publish true")
	test.ExpectEquality(t, len(tr.frames), 0)
	test.ExpectFailure(t, f.core.KeyDown(code))

	// the next frame is processed normally
	f.frame(t)
	test.ExpectEquality(t, len(tr.frames), 1)
	test.ExpectSuccess(t, f.core.KeyDown(code))

	// not enough time to complete a frame
	err := f.loop.SyncFrame(1)
	test.ExpectSuccess(t, curated.Is(err, framesync.SyncFailed))

	// request has been cleared
	f.frame(t)
	test.ExpectEquality(t, len(tr.frames), 2)
}

func TestTapeCommands(t *testing.T) {
	f := newFixture(t)

	err := f.loop.PushTapeCommand("eject")
	test.ExpectSuccess(t, curated.Is(err, framesync.UnknownTapeCommand))

	// no tape. play is rejected and the deck remains stopped
	test.ExpectSuccess(t, f.loop.PushTapeCommand("play"))
	f.frame(t)
	test.ExpectEquality(t, f.loop.Deck().Phase(), tape.Stopped)
	test.ExpectEquality(t, f.ntfy.count(notifications.NotifyTapeRejected), 1)

	f.loop.CreateTape(100)
	test.ExpectEquality(t, f.ntfy.count(notifications.NotifyTapeAttached), 1)

	f.disp.clear()
	test.ExpectSuccess(t, f.loop.PushTapeCommand(" Play "))
	f.frame(t)
	test.ExpectEquality(t, f.loop.Deck().Phase(), tape.Playing)
	test.ExpectEquality(t, f.ntfy.count(notifications.NotifyTapeMotorStarted), 1)
	test.ExpectEquality(t, strings.Join(f.disp.calls, ","), "publish true,status playing,motor true")

	test.ExpectSuccess(t, f.loop.PushTapeCommand("stop"))
	f.frame(t)
	test.ExpectEquality(t, f.loop.Deck().Phase(), tape.Stopped)
	test.ExpectEquality(t, f.ntfy.count(notifications.NotifyTapeMotorStopped), 1)

	f.loop.DetachTape()
	test.ExpectEquality(t, f.ntfy.count(notifications.NotifyTapeDetached), 1)
	test.ExpectFailure(t, f.loop.Deck().Attached())

	err = f.loop.SaveTape(filepath.Join(t.TempDir(), "tape.wav"))
	test.ExpectSuccess(t, curated.Has(err, tape.NoTape))
}

func TestTapeRejected(t *testing.T) {
	f := newFixture(t)

	// a tape with no content cannot be played
	f.loop.CreateTape(0)
	f.loop.TapeCommand(tape.Play)
	test.ExpectEquality(t, f.loop.Deck().Phase(), tape.Stopped)
	test.ExpectEquality(t, f.ntfy.count(notifications.NotifyTapeRejected), 1)
	test.ExpectEquality(t, f.ntfy.count(notifications.NotifyTapeMotorStarted), 0)

	// the empty tape can still be recorded to
	f.loop.TapeCommand(tape.Record)
	test.ExpectEquality(t, f.loop.Deck().Phase(), tape.Recording)
	test.ExpectEquality(t, f.ntfy.count(notifications.NotifyTapeRejected), 1)
}

func TestPushedTapeTiming(t *testing.T) {
	f := newFixture(t)
	f.loop.CreateTape(100)

	test.ExpectSuccess(t, f.loop.PushTapeCommand("fastforward"))
	f.frame(t)
	test.ExpectEquality(t, f.loop.Deck().Phase(), tape.SeekingForward)

	// the frame that applied the command does not count towards the seek
	for range tape.SeekCadence - 1 {
		f.frame(t)
	}
	test.ExpectEquality(t, f.loop.Tape().Position(), 0.0)

	f.frame(t)
	test.ExpectEquality(t, f.loop.Tape().Position(), 1.0)

	// commands applied directly are stepped in the same frame as usual
	f.loop.TapeCommand(tape.Rewind)
	for range tape.SeekCadence {
		f.frame(t)
	}
	test.ExpectEquality(t, f.loop.Tape().Position(), 0.0)
}

func TestRecordAndSave(t *testing.T) {
	f := newFixture(t)

	f.loop.CreateTape(10)
	f.loop.TapeCommand(tape.Record)
	f.loop.Tape().SetSignal(0.5)
	for range 50 {
		f.frame(t)
	}
	f.loop.TapeCommand(tape.Stop)

	test.ExpectSuccess(t, f.loop.Tape().Position() > 0)
	test.ExpectSuccess(t, f.loop.Tape().Dirty())

	fn := filepath.Join(t.TempDir(), "tape.wav")
	test.ExpectSuccess(t, f.loop.SaveTape(fn))
	test.ExpectSuccess(t, f.loop.AttachTape(fn))
	test.ExpectEquality(t, f.loop.Deck().Counter(), 0)
}

func TestReset(t *testing.T) {
	f := newFixture(t)

	f.loop.CreateTape(100)
	f.loop.TapeCommand(tape.Play)
	test.ExpectEquality(t, f.loop.Deck().Phase(), tape.Playing)

	test.DemandSuccess(t, f.env.Prefs.ResetTapeWithCPU.Set(false))
	f.loop.Reset(true)
	test.ExpectEquality(t, f.core.Resets(), 1)
	test.ExpectEquality(t, f.loop.Deck().Phase(), tape.Playing)

	test.DemandSuccess(t, f.env.Prefs.ResetTapeWithCPU.Set(true))
	f.disp.clear()
	f.loop.Reset(false)
	test.ExpectEquality(t, f.core.Resets(), 2)
	test.ExpectEquality(t, f.loop.Deck().Phase(), tape.Stopped)
	test.ExpectEquality(t, strings.Join(f.disp.calls, ","), "status stopped,counter 0,motor false")
}

func TestLatchKey(t *testing.T) {
	f := newFixture(t)

	key := keymap.KeyAt(1, 2)
	test.ExpectInequality(t, key, keymap.KeyNone)
	code, ok := keymap.ToCore(key)
	test.DemandSuccess(t, ok)

	f.loop.SetLatchKey(1, 2, true)
	test.ExpectSuccess(t, f.core.KeyDown(code))
	f.loop.SetLatchKey(1, 2, false)
	test.ExpectFailure(t, f.core.KeyDown(code))

	// out of range positions are ignored
	f.loop.SetLatchKey(9, 9, true)
}

// keyboard records navigation of the virtual keyboard.
type keyboard struct {
	calls []string
}

func (k *keyboard) NavUp()    { k.calls = append(k.calls, "up") }
func (k *keyboard) NavDown()  { k.calls = append(k.calls, "down") }
func (k *keyboard) NavLeft()  { k.calls = append(k.calls, "left") }
func (k *keyboard) NavRight() { k.calls = append(k.calls, "right") }

func (k *keyboard) NavPress(pressed bool, device int) {
	k.calls = append(k.calls, fmt.Sprintf("press %v %d", pressed, device))
}

func (k *keyboard) SyncEvent(key keymap.Keycode, pressed bool) {
	k.calls = append(k.calls, fmt.Sprintf("sync %s %v", key, pressed))
}

func (k *keyboard) ReleaseAll() {
	k.calls = append(k.calls, "release all")
}

func TestVirtualKeyboard(t *testing.T) {
	f := newFixture(t)

	kbd := &keyboard{}
	f.loop.SetVirtualKeyboard(kbd)

	// joystick and keyboard events are not seen by an inactive virtual
	// keyboard
	f.loop.EnqueueJoy(0, 0, input.Absolute, input.JoyRight)
	f.loop.EnqueueKey(keymap.KeyB, true)
	f.frame(t)
	test.ExpectEquality(t, len(kbd.calls), 0)
	test.ExpectSuccess(t, f.core.KeyDown(joystick.Code(0, input.JoyRight)))

	f.loop.ShowVirtualKeyboard(true)
	test.ExpectSuccess(t, f.loop.VirtualKeyboardActive())

	f.loop.EnqueueKey(keymap.KeyB, false)
	f.loop.EnqueueJoy(0, 1, input.Absolute, input.JoyUp)
	f.loop.EnqueueJoy(0, 1, input.Absolute, input.JoyFire)
	f.loop.EnqueueJoy(0, 1, input.Or, input.JoyDown)
	f.frame(t)

	// the OR update is ignored by the virtual keyboard
	test.ExpectEquality(t, strings.Join(kbd.calls, ","), "sync B false,up,press true 1")

	// the joystick latch is unchanged while the virtual keyboard is active
	test.ExpectSuccess(t, f.core.KeyDown(joystick.Code(0, input.JoyRight)))
	test.ExpectFailure(t, f.core.KeyDown(joystick.Code(0, input.JoyUp)))
}

func TestVirtualKeyboardHidden(t *testing.T) {
	f := newFixture(t)

	// the default virtual keyboard has the cursor on the top left key
	code, ok := keymap.ToCore(keymap.KeyAt(0, 0))
	test.DemandSuccess(t, ok)

	f.loop.ShowVirtualKeyboard(true)
	f.loop.EnqueueJoy(0, 0, input.Absolute, input.JoyFire)
	f.frame(t)
	test.ExpectSuccess(t, f.core.KeyDown(code))

	// hiding the keyboard releases the key even though fire is still held
	f.loop.ShowVirtualKeyboard(false)
	f.frame(t)
	test.ExpectFailure(t, f.core.KeyDown(code))

	// the fire button now goes to the joystick latch
	f.loop.EnqueueJoy(0, 0, input.Absolute, 0)
	f.frame(t)
	f.frame(t)
	test.ExpectFailure(t, f.core.KeyDown(code))
	test.ExpectFailure(t, f.core.KeyDown(joystick.Code(0, input.JoyFire)))

	// the fake keyboard is told to release its keys only when hidden
	kbd := &keyboard{}
	f.loop.SetVirtualKeyboard(kbd)
	f.loop.ShowVirtualKeyboard(true)
	f.frame(t)
	f.loop.ShowVirtualKeyboard(false)
	f.frame(t)
	test.ExpectEquality(t, strings.Join(kbd.calls, ","), "release all")
}

func TestSettings(t *testing.T) {
	f := newFixture(t)

	test.DemandSuccess(t, f.env.Prefs.TapeFeedback.Set(7))
	test.DemandSuccess(t, f.env.Prefs.SIDModel.Set(1))
	test.DemandSuccess(t, f.env.Prefs.SIDWriteAccess.Set(true))

	// changes are applied on the next frame
	test.ExpectEquality(t, f.core.TapeFeedbackLevel(), 0)
	f.frame(t)
	test.ExpectEquality(t, f.core.TapeFeedbackLevel(), 7)
	flags, _ := f.core.SIDConfiguration()
	test.ExpectEquality(t, flags, 0x03)

	test.DemandSuccess(t, f.env.Prefs.RAMSize.Set(16))
	f.frame(t)
	test.ExpectEquality(t, f.core.RAMSize(), 16)

	test.DemandSuccess(t, f.env.Prefs.IdleTimeout.Set(2))
	test.ExpectEquality(t, f.loop.Idle().Timeout(), 100)
	test.DemandSuccess(t, f.env.Prefs.Timing.Set(preferences.NTSC))
	test.ExpectEquality(t, f.loop.Idle().Timeout(), 120)
}

func TestIdleNotification(t *testing.T) {
	f := newFixture(t)

	test.DemandSuccess(t, f.env.Prefs.IdleTimeout.Set(1))
	for range 49 {
		f.frame(t)
	}
	test.ExpectEquality(t, f.ntfy.count(notifications.NotifyIdle), 0)

	// input resets the timer. the frame with the input is the first frame
	// of the new count
	f.loop.EnqueueKey(keymap.KeyA, true)
	f.frame(t)
	for range 48 {
		f.frame(t)
	}
	test.ExpectEquality(t, f.ntfy.count(notifications.NotifyIdle), 0)

	f.frame(t)
	test.ExpectEquality(t, f.ntfy.count(notifications.NotifyIdle), 1)

	// notification is not repeated
	for range 100 {
		f.frame(t)
	}
	test.ExpectEquality(t, f.ntfy.count(notifications.NotifyIdle), 1)
}

func TestPushFunction(t *testing.T) {
	f := newFixture(t)

	var ct int
	for range 10 {
		test.ExpectSuccess(t, f.loop.PushFunction(func() { ct++ }))
	}
	test.ExpectEquality(t, ct, 0)
	f.frame(t)
	test.ExpectEquality(t, ct, 10)
}

func TestDumpState(t *testing.T) {
	f := newFixture(t)
	f.loop.EnqueueJoy(0, 0, input.Absolute, input.JoyFire)
	f.frame(t)

	var b strings.Builder
	f.loop.DumpState(&b)
	test.ExpectSuccess(t, strings.Contains(b.String(), "digraph"))
}
