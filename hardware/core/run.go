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

package core

import (
	"github.com/jetsetilly/emuxsync/curated"
	"github.com/jetsetilly/emuxsync/govern"
)

// Run the core until the continueCheck function returns the Ending state.
// The core is run for timeAdvance every time the state is Running. The
// continueCheck function is called after every run and should block while
// the emulation is paused.
func Run(c Core, timeAdvance int, continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state != govern.Ending {
		switch state {
		case govern.Running:
			if err := c.Run(timeAdvance); err != nil {
				return err
			}
		case govern.Paused, govern.Initialising:
		default:
			return curated.Errorf("core: unsupported emulation state (%s) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}
