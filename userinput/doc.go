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

// Package userinput translates input from the real hardware being used by the
// user into events for the frame loop.
//
// It can be thought of as a translation layer between the GUI implementation
// and the input queue. Events are described by the types in this package and
// passed to Controllers.HandleUserInput(), which is GUI independent.
//
// The GUI implementation in use during development was SDL and so there will
// be a bias towards that system. The Terminal type provides input for
// headless sessions.
package userinput
