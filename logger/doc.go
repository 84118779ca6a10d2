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

// Package logger is the central log for the emulation. Entries are tagged,
// usually with the name of the package doing the logging, and consecutive
// identical entries are collapsed into one entry with a repeat count.
//
// The number of entries kept is capped. Older entries are forgotten.
//
// Logging is gated by the Permission interface. The Allow value can be used
// when logging should always happen. Otherwise, an environment.Environment
// instance should be used so that only the main emulation logs.
//
// The package level functions operate on the central logger. Private
// instances can be created with NewLogger(), which is useful for testing.
package logger
