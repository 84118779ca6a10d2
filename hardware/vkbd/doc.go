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

// Package vkbd supports navigation of an on-screen virtual keyboard with a
// joystick.
//
// When the virtual keyboard is active joystick events are not passed to the
// emulated joystick ports. Instead, Nav converts ABSOLUTE joystick updates into
// navigation calls on the Keyboard interface. Each input device has its own
// navigation state so that two joysticks can not interfere with each other.
//
// Grid is a simple implementation of the Keyboard interface laid out like the
// keyboard matrix of the emulated machine.
package vkbd
