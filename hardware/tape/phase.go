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

package tape

import "strings"

// Phase is the state of the tape deck.
type Phase int

// List of valid Phase values.
const (
	Stopped Phase = iota
	Playing
	Recording
	SeekingBackward
	SeekingForward
)

func (p Phase) String() string {
	switch p {
	case Stopped:
		return "stopped"
	case Playing:
		return "playing"
	case Recording:
		return "recording"
	case SeekingBackward:
		return "seeking backward"
	case SeekingForward:
		return "seeking forward"
	}
	return "unknown phase"
}

// direction returns the seek direction of the phase. zero if the phase is not
// a seeking phase.
func (p Phase) direction() float64 {
	switch p {
	case SeekingBackward:
		return -1
	case SeekingForward:
		return 1
	}
	return 0
}

// status returns the control status for the phase.
func (p Phase) status() Status {
	switch p {
	case Playing:
		return StatusPlaying
	case Recording:
		return StatusRecording
	case SeekingBackward:
		return StatusSeekingBackward
	case SeekingForward:
		return StatusSeekingForward
	}
	return StatusStopped
}

// Status is the control status shown to the user.
type Status string

// List of valid Status values.
const (
	StatusStopped         Status = "stopped"
	StatusPlaying         Status = "playing"
	StatusRecording       Status = "recording"
	StatusSeekingForward  Status = "seeking forward"
	StatusSeekingBackward Status = "seeking backward"
)

// Command is a request to the tape deck.
type Command string

// List of valid Command values.
const (
	Play        Command = "PLAY"
	Stop        Command = "STOP"
	Rewind      Command = "REWIND"
	FastForward Command = "FASTFORWARD"
	Record      Command = "RECORD"
	Reset       Command = "RESET"
	Zero        Command = "ZERO"
)

// Commands is the list of all valid commands.
var Commands = []Command{Play, Stop, Rewind, FastForward, Record, Reset, Zero}

// ParseCommand returns the command with the name. The name is not case
// sensitive.
func ParseCommand(name string) (Command, bool) {
	name = strings.TrimSpace(name)
	for _, c := range Commands {
		if strings.EqualFold(string(c), name) {
			return c, true
		}
	}
	return "", false
}
