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

package test_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/emuxsync/test"
)

func TestExpectFailure(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))
}

func TestExpectSuccess(t *testing.T) {
	test.ExpectSuccess(t, true)
	var err error
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nil)
}

func TestExpectEquality(t *testing.T) {
	test.ExpectEquality(t, 10, 5+5)
	test.ExpectEquality(t, true, !false)
	test.ExpectEquality(t, "tape", "ta"+"pe")
}

func TestExpectInequality(t *testing.T) {
	test.ExpectInequality(t, 11, 5+5)
	test.ExpectInequality(t, true, false)
}

func TestExpectApproximate(t *testing.T) {
	test.ExpectApproximate(t, 10.0, 11.0, 0.1)
	test.ExpectApproximate(t, 37.2, 37.0, 0.01)
}

func TestCompareWriter(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectSuccess(t, tw.Compare(""))
	_, _ = tw.Write([]byte("abc"))
	_, _ = tw.Write([]byte("def"))
	test.ExpectSuccess(t, tw.Compare("abcdef"))
	tw.Clear()
	test.ExpectSuccess(t, tw.Compare(""))
}
