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

// Package macro implements an input system that processes instructions from a
// macro script.
//
// The macro language is very simple and does not implement any flow control
// except basic loops.
//
//	DO loopCt [loopName]
//		...
//	LOOP
//
// The 'loopName' parameter is optional. When a loop is named the current
// counter value can be referenced as a variable with the % symbol. For
// example, if a loop has been given the name "ct", then the following WAIT
// instruction could be written:
//
//	WAIT %ct
//
// Loops can be nested.
//
// The WAIT instruction will pause the execution of the macro for the specified
// number of frames. If no value is given for this the number of frames defaults
// to 60.
//
// Keyboard instructions take the name of a key. For example, "A", "Return" or
// "LeftShift". The KEY instruction presses the key and releases it two frames
// later. The TYPE instruction types every character of its argument.
//
//	KEY name
//	PRESS name
//	RELEASE name
//	TYPE text
//
// There are instructions that give basic control over the joystick in port
// zero. The JOY instruction gives full control over any port.
//
//	LEFT, RIGHT, UP, DOWN, CENTRE, FIRE, NOFIRE
//	JOY port ABSOLUTE|OR|AND value
//
// The tape deck is controlled with the TAPE instruction. For example:
//
//	TAPE PLAY
//
// The PAUSE instruction requests a pause trap and the QUIT instruction ends
// the emulation.
//
// Any errors in a macro script will result in a log entry and the termination
// of the macro execution.
//
// Lines can be commented by prefixing the line with two dashes (--). Leading
// and trailing white space is ignored.
//
// Macro scripts can be created by attaching a Recorder to the input queue.
//
// The Lua type runs a Lua script with the same abilities as a macro script.
package macro
