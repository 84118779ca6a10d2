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

// Package curated wraps the plain Go error type so that errors created by the
// emulation carry the formatting pattern they were created with. Packages
// export their patterns as constants and callers test for them with Is() or
// Has(), rather than comparing error strings.
//
//	const SeekOutOfRange = "pcmtape: seek: position %.2f outside tape (length %.2f)"
//
//	err := curated.Errorf(SeekOutOfRange, pos, length)
//	if curated.Is(err, SeekOutOfRange) {
//		...
//	}
//
// Has() is similar to Is() but also looks for the pattern in any curated error
// used as a placeholder value, which is how curated errors are chained:
//
//	f := curated.Errorf("tape: %v", err)
//	curated.Has(f, SeekOutOfRange) // true
//
// The Error() string of a curated error removes duplicate adjacent parts of
// the message. So "tape: tape: rewind failed" becomes "tape: rewind failed".
// Messages are expected to take the form "package: detail".
package curated
