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

package input

import "fmt"

// Ring is a fixed capacity FIFO buffer. When the buffer is full the next Push
// overwrites the oldest entry.
//
// The head and tail counters only ever increase and are masked by the
// capacity when indexing the slots. The buffer is empty when head equals tail
// and full when the difference is equal to the capacity.
//
// Ring is not safe for concurrent use.
type Ring[T any] struct {
	slots []T
	mask  uint64
	head  uint64
	tail  uint64
}

// NewRing is the preferred method of initialisation for the Ring type. The
// capacity must be a power of two.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity <= 0 || capacity&(capacity-1) != 0 {
		panic(fmt.Sprintf("input: ring capacity must be a power of two (%d)", capacity))
	}
	return &Ring[T]{
		slots: make([]T, capacity),
		mask:  uint64(capacity - 1),
	}
}

// Push adds an entry to the tail of the ring. Returns false if an unread entry
// was overwritten.
func (r *Ring[T]) Push(v T) bool {
	overwrite := r.tail-r.head == uint64(len(r.slots))
	r.slots[r.tail&r.mask] = v
	r.tail++
	if overwrite {
		r.head++
	}
	return !overwrite
}

// Len returns the number of unread entries.
func (r *Ring[T]) Len() int {
	return int(r.tail - r.head)
}

// Cap returns the capacity of the ring.
func (r *Ring[T]) Cap() int {
	return len(r.slots)
}

// Drain calls f for every unread entry, oldest first, and then marks the ring
// as empty. Returns the number of entries processed.
func (r *Ring[T]) Drain(f func(T)) int {
	n := 0
	for ; r.head != r.tail; r.head++ {
		f(r.slots[r.head&r.mask])
		n++
	}
	return n
}
