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

// Package core defines the interface to the emulation core and provides
// Headless, a stand-in core with no CPU, video or audio emulation.
//
// The core is driven by calling Run() with the amount of emulated time to run
// for. The core calls the frame callback every time a video frame has been
// completed. The frame loop does its work in that callback.
//
// Headless is useful for running scripts and for testing. It keeps track of
// the state of the keyboard, the ROMs that have been loaded and the tape. The
// tape is moved as emulated time passes.
package core
