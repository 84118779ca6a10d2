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
	"sync"
	"sync/atomic"

	"github.com/jetsetilly/emuxsync/curated"
	"github.com/jetsetilly/emuxsync/environment"
	"github.com/jetsetilly/emuxsync/hardware/core"
	"github.com/jetsetilly/emuxsync/hardware/input"
	"github.com/jetsetilly/emuxsync/hardware/joystick"
	"github.com/jetsetilly/emuxsync/hardware/keymap"
	"github.com/jetsetilly/emuxsync/hardware/tape"
	"github.com/jetsetilly/emuxsync/hardware/vkbd"
	"github.com/jetsetilly/emuxsync/logger"
	"github.com/jetsetilly/emuxsync/notifications"
	"github.com/jetsetilly/emuxsync/pcmtape"
	"github.com/jetsetilly/emuxsync/performance/limiter"
)

// Sentinal error patterns.
const (
	PushQueueFull      = "framesync: pushed function queue is full"
	UnknownTapeCommand = "framesync: unknown tape command (%s)"
	SyncFailed         = "framesync: frame did not complete within %d runs"
	SettingsError      = "framesync: settings: %v"
	TapeError          = "framesync: tape: %v"
)

const logTag = "framesync"

// the number of functions that can be waiting in the pushed function queue.
const pushedCapacity = 4096

// the maximum number of calls to core.Run() that SyncFrame() will make while
// waiting for the next frame.
const maxSyncRuns = 10

// Loop is the context object for the frame loop.
type Loop struct {
	env  *environment.Environment
	core core.Core

	// disp and notify can both be nil
	disp   Display
	notify notifications.Notify

	queue   *input.Queue
	handler handler

	latch joystick.Latch
	nav   vkbd.Nav

	// the virtual keyboard receives joystick events instead of the latch
	// while it is active
	vkbd       vkbd.Keyboard
	vkbdActive atomic.Bool

	deck     *tape.Deck
	tapeDisp *tapeDisplay

	// the tape attached with AttachTape() or CreateTape()
	tape *pcmtape.Tape

	idle *Idle

	// limiter is nil if the loop was created without frame pacing
	limiter *limiter.FpsLimiter
	warp    atomic.Bool

	// functions pushed from other goroutines to be run by the frame loop
	pushed chan func()

	// a pushed tape command was applied during the current frame
	tapePushed bool

	// one-shot request set by SyncFrame() and cleared by the next Frame()
	syncRequest atomic.Bool

	// called when a pause trap is taken
	pause func()

	triggersCrit sync.Mutex
	triggers     []FrameTrigger

	frameNum int
}

// NewLoop is the preferred method of initialisation for the Loop type. The
// display and notify arguments can be nil. If the pace argument is true then
// Frame() will wait on a frame limiter at the rate specified by the timing
// preference.
//
// The core's frame callback is set to the Loop's Frame() function.
func NewLoop(env *environment.Environment, c core.Core, disp Display, notify notifications.Notify, pace bool) (*Loop, error) {
	l := &Loop{
		env:    env,
		core:   c,
		disp:   disp,
		notify: notify,
		queue:  input.NewQueue(),
		pushed: make(chan func(), pushedCapacity),
	}

	l.handler.l = l
	l.tapeDisp = &tapeDisplay{l: l}
	l.deck = tape.NewDeck(env, l.tapeDisp)
	l.vkbd = vkbd.NewGrid(l.SetLatchKey)
	l.idle = NewIdle(func() {
		l.raise(notifications.NotifyIdle)
	})

	if pace {
		l.limiter = limiter.NewFPSLimiter(env.Prefs.FramePeriod())
	}

	err := l.ApplySettings()
	if err != nil {
		return nil, err
	}
	l.setHooks()

	c.SetFrameCallback(l.Frame)

	return l, nil
}

// Close releases the resources used by the Loop.
func (l *Loop) Close() {
	if l.limiter != nil {
		l.limiter.Close()
	}
}

// Queue returns the input queue used by the Loop.
func (l *Loop) Queue() *input.Queue {
	return l.queue
}

// Deck returns the tape deck. The deck must only be used by the emulation
// goroutine.
func (l *Loop) Deck() *tape.Deck {
	return l.deck
}

// Idle returns the idle timer.
func (l *Loop) Idle() *Idle {
	return l.idle
}

// FrameNum returns the number of times Frame() has been called.
func (l *Loop) FrameNum() int {
	return l.frameNum
}

// EnqueueKey adds a keyboard event to the input queue. It is safe to call
// from any goroutine.
func (l *Loop) EnqueueKey(key keymap.Keycode, pressed bool) {
	l.queue.EnqueueKey(key, pressed)
}

// EnqueueJoy adds a joystick event to the input queue. It is safe to call
// from any goroutine.
func (l *Loop) EnqueueJoy(port int, device int, typ input.UpdateType, value uint8) {
	l.queue.EnqueueJoy(port, device, typ, value)
}

// RequestTrap causes the pause handler to be called on the next frame. It is
// safe to call from any goroutine.
func (l *Loop) RequestTrap() {
	l.queue.RequestTrap()
}

// SetPauseHandler sets the function to be called when a pause trap is taken.
// It should be called before the emulation starts.
func (l *Loop) SetPauseHandler(pause func()) {
	l.pause = pause
}

// AddFrameTrigger registers a FrameTrigger. It is safe to call from any
// goroutine.
func (l *Loop) AddFrameTrigger(trigger FrameTrigger) {
	l.triggersCrit.Lock()
	defer l.triggersCrit.Unlock()
	l.triggers = append(l.triggers, trigger)
}

// RemoveFrameTrigger removes a previously registered FrameTrigger. It is safe
// to call from any goroutine.
func (l *Loop) RemoveFrameTrigger(trigger FrameTrigger) {
	l.triggersCrit.Lock()
	defer l.triggersCrit.Unlock()
	for i, t := range l.triggers {
		if t == trigger {
			l.triggers = append(l.triggers[:i], l.triggers[i+1:]...)
			return
		}
	}
}

// SetWarp turns warp mode on or off. In warp mode frames are not
// synchronised to the frame limiter. It is safe to call from any goroutine.
func (l *Loop) SetWarp(warp bool) {
	l.warp.Store(warp)
}

// Warp returns true if warp mode is on.
func (l *Loop) Warp() bool {
	return l.warp.Load()
}

// SetVirtualKeyboard replaces the virtual keyboard. It should be called
// before the emulation starts.
func (l *Loop) SetVirtualKeyboard(kbd vkbd.Keyboard) {
	l.vkbd = kbd
}

// ShowVirtualKeyboard activates or deactivates the virtual keyboard. While
// active, joystick events navigate the virtual keyboard rather than being
// forwarded to the joystick latch. It is safe to call from any goroutine.
//
// The change takes effect on the next frame. Keys held down on the virtual
// keyboard are released at that point.
func (l *Loop) ShowVirtualKeyboard(show bool) {
	l.vkbdActive.Store(show)
}

// VirtualKeyboardActive returns true if the virtual keyboard is active.
func (l *Loop) VirtualKeyboardActive() bool {
	return l.vkbdActive.Load()
}

// PushFunction queues a function to be run by the emulation goroutine at the
// next frame. It is safe to call from any goroutine. The function is dropped
// and an error returned if the queue is full.
func (l *Loop) PushFunction(f func()) error {
	select {
	case l.pushed <- f:
	default:
		logger.Log(l.env, logTag, "dropped pushed function")
		return curated.Errorf(PushQueueFull)
	}
	return nil
}

// PushTapeCommand queues the named tape command to be applied to the deck at
// the next frame. The deck is not stepped in the frame that applies the
// command, so the first tick of the command comes on the frame after. It is
// safe to call from any goroutine.
func (l *Loop) PushTapeCommand(name string) error {
	cmd, ok := tape.ParseCommand(name)
	if !ok {
		return curated.Errorf(UnknownTapeCommand, name)
	}
	return l.PushFunction(func() {
		l.deck.Command(cmd)
		l.tapePushed = true
	})
}

// TapeCommand applies the command to the deck immediately. It must only be
// called from the emulation goroutine.
func (l *Loop) TapeCommand(cmd tape.Command) {
	l.deck.Command(cmd)
}

// Reset the emulation core. A soft reset is a reset of the CPU only. The
// tape drive is also reset if the reset_tape_with_cpu preference is set.
//
// Must only be called from the emulation goroutine.
func (l *Loop) Reset(soft bool) {
	l.core.Reset(!soft)
	if l.env.Prefs.ResetTapeWithCPU.Get().(bool) {
		l.deck.Command(tape.Reset)
	}
}

// SetLatchKey sets the state of the key at the row and column of the keyboard
// matrix.
//
// Must only be called from the emulation goroutine.
func (l *Loop) SetLatchKey(row int, col int, pressed bool) {
	key := keymap.KeyAt(row, col)
	if key == keymap.KeyNone {
		return
	}
	if code, ok := keymap.ToCore(key); ok {
		l.core.KeyboardEvent(code, pressed)
	}
}

// SyncFrame runs the core until the next call to Frame(). The frame is
// published but no other frame processing is performed. Used to display a
// fresh frame after a change to the display settings.
//
// Must only be called from the emulation goroutine.
func (l *Loop) SyncFrame(timeAdvance int) error {
	l.syncRequest.Store(true)
	for range maxSyncRuns {
		if err := l.core.Run(timeAdvance); err != nil {
			l.syncRequest.Store(false)
			return err
		}
		if !l.syncRequest.Load() {
			return nil
		}
	}
	l.syncRequest.Store(false)
	return curated.Errorf(SyncFailed, maxSyncRuns)
}

// Frame is called by the emulation core at the end of every video frame.
func (l *Loop) Frame() {
	l.frameNum++

	warp := l.warp.Load()
	if l.limiter != nil && !warp {
		l.limiter.Wait()
	}
	if l.disp != nil {
		l.disp.PublishFrame(!warp)
	}

	// frame has been requested by SyncFrame(). nothing else to do
	if l.syncRequest.CompareAndSwap(true, false) {
		return
	}

	if l.disp != nil && l.disp.OverlayActive() {
		l.disp.RenderOverlay()
	}

	// notice a change in the visibility of the virtual keyboard even if
	// there are no events to drain
	l.handler.vkbdActive()

	drained := l.queue.Drain(&l.handler)

	// the pause handler is called with the queue unlocked
	if l.queue.TakeTrap() {
		l.raise(notifications.NotifyPause)
		if l.pause != nil {
			l.pause()
		}
	}

	if drained {
		l.idle.Reset()
	}
	l.idle.Check()

	l.tapePushed = false
	l.servicePushed()

	if !l.tapePushed && l.deck.Phase() != tape.Stopped {
		l.deck.Step()
	}

	l.triggersCrit.Lock()
	triggers := append([]FrameTrigger(nil), l.triggers...)
	l.triggersCrit.Unlock()

	for _, t := range triggers {
		if err := t.NewFrame(l.frameNum); err != nil {
			logger.Log(l.env, logTag, err)
		}
	}
}

// run every function in the pushed queue without blocking.
func (l *Loop) servicePushed() {
	for {
		select {
		case f := <-l.pushed:
			f()
		default:
			return
		}
	}
}
