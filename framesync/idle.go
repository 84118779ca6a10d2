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
	"sync/atomic"
)

// Idle counts the frames that pass without any input. When the timeout is
// reached the expire function is called once. The count must be Reset()
// before the expire function will be called again.
type Idle struct {
	// timeout in frames. zero or less disables the timer. the timeout can be
	// changed from any goroutine
	timeout atomic.Int64

	count   int64
	expired bool

	expire func()
}

// NewIdle is the preferred method of initialisation for the Idle type. The
// expire argument can be nil.
func NewIdle(expire func()) *Idle {
	return &Idle{
		expire: expire,
	}
}

// SetTimeout sets the number of frames without input before the timer
// expires.
func (id *Idle) SetTimeout(frames int) {
	id.timeout.Store(int64(frames))
}

// Timeout returns the number of frames without input before the timer
// expires.
func (id *Idle) Timeout() int {
	return int(id.timeout.Load())
}

// Reset the frame count.
func (id *Idle) Reset() {
	id.count = 0
	id.expired = false
}

// Expired returns true if the timer has expired since the last Reset().
func (id *Idle) Expired() bool {
	return id.expired
}

// Check should be called once per frame. Returns true on the frame the timer
// expires.
func (id *Idle) Check() bool {
	timeout := id.timeout.Load()
	if timeout <= 0 || id.expired {
		return false
	}

	id.count++
	if id.count < timeout {
		return false
	}

	id.expired = true
	if id.expire != nil {
		id.expire()
	}
	return true
}
