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

package userinput

import (
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/jetsetilly/emuxsync/curated"
	"github.com/jetsetilly/emuxsync/hardware/keymap"
	"github.com/jetsetilly/emuxsync/logger"
	"github.com/pkg/term"
)

// Sentinal error pattern.
const TerminalError = "terminal: %v"

const logTag = "userinput"

// DefaultHoldTime is the length of time a key is held down for. A terminal
// does not report when a key is released.
const DefaultHoldTime = 100 * time.Millisecond

// the byte that starts a command. the command ends with a newline.
const commandPrefix = ':'

// Terminal reads key presses from a terminal and forwards them to the Input.
//
// Commands can be entered by prefixing them with a colon. Commands are the
// names of tape commands, "pause" and "quit".
type Terminal struct {
	perm  logger.Permission
	in    io.Reader
	input Input

	// the underlying terminal if the Terminal was created with
	// OpenTerminal(). nil otherwise
	tty *term.Term

	// the amount of time a key is held for before it is released
	HoldTime time.Duration

	// keys that have been pressed but not released. key presses and key
	// releases can happen in different goroutines
	crit    sync.Mutex
	pending []keymap.Keycode
	timer   *time.Timer

	// a command is being entered
	command     bool
	commandText strings.Builder

	// called when the quit command is entered. can be nil
	quit func()
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type. The quit argument can be nil.
func NewTerminal(perm logger.Permission, r io.Reader, in Input, quit func()) *Terminal {
	if perm == nil {
		perm = logger.Allow
	}
	return &Terminal{
		perm:     perm,
		in:       r,
		input:    in,
		HoldTime: DefaultHoldTime,
		quit:     quit,
	}
}

// OpenTerminal opens the controlling terminal in cbreak mode and returns a
// Terminal that reads from it. The Close() function should be called to
// restore the terminal.
func OpenTerminal(perm logger.Permission, in Input, quit func()) (*Terminal, error) {
	tty, err := term.Open("/dev/tty", term.CBreakMode)
	if err != nil {
		return nil, curated.Errorf(TerminalError, err)
	}
	t := NewTerminal(perm, tty, in, quit)
	t.tty = tty
	return t, nil
}

// Close restores the terminal if it was opened with OpenTerminal().
func (t *Terminal) Close() error {
	t.releaseAll()
	if t.tty == nil {
		return nil
	}
	if err := t.tty.Restore(); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	if err := t.tty.Close(); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	return nil
}

// Service reads from the terminal until there is no more input. It should
// be run in its own goroutine. Returns nil when the end of the input is
// reached.
func (t *Terminal) Service() error {
	defer t.releaseAll()

	b := make([]byte, 16)
	for {
		n, err := t.in.Read(b)
		if n > 0 {
			t.translate(b[:n])
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return curated.Errorf(TerminalError, err)
		}
	}
}

// escape sequences for the cursor keys.
var cursorKeys = map[byte]keymap.Keycode{
	'A': keymap.KeyUp,
	'B': keymap.KeyDown,
	'C': keymap.KeyRight,
	'D': keymap.KeyLeft,
}

// translate a single read from the terminal.
func (t *Terminal) translate(b []byte) {
	for len(b) > 0 {
		c := b[0]
		b = b[1:]

		if t.command {
			t.commandByte(c)
			continue
		}

		switch c {
		case commandPrefix:
			t.command = true
			t.commandText.Reset()
		case 0x1b:
			if len(b) >= 2 && b[0] == '[' {
				if k, ok := cursorKeys[b[1]]; ok {
					t.press(k)
				}
				b = b[2:]
			} else {
				t.press(keymap.KeyEscape)
			}
		case '\r', '\n':
			t.press(keymap.KeyReturn)
		case 0x7f, 0x08:
			t.press(keymap.KeyBackspace)
		case '\t':
			t.press(keymap.KeyTab)
		case ' ':
			t.press(keymap.KeySpace)
		default:
			if c >= 'A' && c <= 'Z' {
				if k, ok := KeyByName(string(c)); ok {
					t.press(keymap.KeyLeftShift, k)
				}
			} else if k, ok := KeyByName(string(c)); ok {
				t.press(k)
			}
		}
	}
}

func (t *Terminal) commandByte(c byte) {
	switch c {
	case '\r', '\n':
		t.command = false
		t.runCommand(t.commandText.String())
	case 0x7f, 0x08:
		s := t.commandText.String()
		if len(s) > 0 {
			t.commandText.Reset()
			t.commandText.WriteString(s[:len(s)-1])
		}
	case 0x1b:
		t.command = false
	default:
		t.commandText.WriteByte(c)
	}
}

func (t *Terminal) runCommand(cmd string) {
	cmd = strings.TrimSpace(cmd)
	switch strings.ToLower(cmd) {
	case "":
	case "pause":
		t.input.RequestTrap()
	case "quit":
		if t.quit != nil {
			t.quit()
		}
	default:
		if err := t.input.PushTapeCommand(cmd); err != nil {
			logger.Log(t.perm, logTag, err)
		}
	}
}

// press the keys. any keys already pressed are released first. the keys are
// released after HoldTime has elapsed.
func (t *Terminal) press(keys ...keymap.Keycode) {
	t.releaseAll()

	t.crit.Lock()
	defer t.crit.Unlock()

	for _, k := range keys {
		t.input.EnqueueKey(k, true)
	}
	t.pending = append(t.pending, keys...)
	t.timer = time.AfterFunc(t.HoldTime, t.releaseAll)
}

func (t *Terminal) releaseAll() {
	t.crit.Lock()
	defer t.crit.Unlock()

	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}

	// release in reverse order so that shift is released last
	for i := len(t.pending) - 1; i >= 0; i-- {
		t.input.EnqueueKey(t.pending[i], false)
	}
	t.pending = t.pending[:0]
}
