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

// Package sdlplay is a simple SDL window for the frame loop. It implements
// the framesync.Display and notifications.Notify interfaces and forwards
// keyboard and gamepad input to the frame loop through the userinput
// package.
//
// The tape counter and status are shown in the window title. The border of
// the window flashes while the tape motor is running.
//
// The NewSdlPlay() and Service() functions must only be called from the main
// thread. All other functions are safe to call from any goroutine.
package sdlplay
