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

// Package test bundles helper functions that remove common boilerplate from
// tests written against the standard go test harness.
//
// The Expect*() functions report a failure with t.Errorf() and allow the test
// to continue. The Demand*() functions stop the test with t.Fatalf().
//
// Success and failure are decided by the type of the value being tested. A
// bool is a success if it is true. An error is a success if it is nil. An
// untyped nil is a success. This may not be how we want to interpret nil in
// all situations but because of how errors usually work (nil to indicate no
// error) we need to interpret nil in this way.
//
// Every function accepts optional tags which are prefixed to any failure
// message. This is useful when the same check is made inside a loop.
//
// The CompareWriter type implements the io.Writer interface and should be used
// to capture output for later comparison.
package test
