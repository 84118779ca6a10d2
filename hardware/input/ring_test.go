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

package input_test

import (
	"testing"

	"github.com/jetsetilly/emuxsync/hardware/input"
	"github.com/jetsetilly/emuxsync/test"
)

func TestRing(t *testing.T) {
	r := input.NewRing[int](4)
	test.ExpectEquality(t, r.Cap(), 4)
	test.ExpectEquality(t, r.Len(), 0)

	for i := range 4 {
		test.ExpectSuccess(t, r.Push(i))
	}
	test.ExpectEquality(t, r.Len(), 4)

	// ring is full so the next push overwrites the oldest value
	test.ExpectFailure(t, r.Push(4))
	test.ExpectEquality(t, r.Len(), 4)

	var got []int
	n := r.Drain(func(v int) {
		got = append(got, v)
	})
	test.ExpectEquality(t, n, 4)
	test.DemandEquality(t, len(got), 4)
	for i, v := range got {
		test.ExpectEquality(t, v, i+1)
	}
	test.ExpectEquality(t, r.Len(), 0)

	// draining an empty ring
	test.ExpectEquality(t, r.Drain(func(int) {}), 0)
}

func TestRingCapacity(t *testing.T) {
	defer func() {
		test.ExpectInequality(t, recover(), nil)
	}()
	_ = input.NewRing[int](12)
}
