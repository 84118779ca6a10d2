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

// Package environment provides the context shared by the components of a
// single emulation.
package environment

import (
	"github.com/jetsetilly/emuxsync/hardware/preferences"
)

// Label is used to name the environment
type Label string

// MainEmulation is the label used by the emulation the user interacts with.
const MainEmulation = Label("")

// Environment is used to provide context for an emulation. Particularly useful
// when more than one emulation is running, for example when a headless
// emulation is used to verify a script.
type Environment struct {
	Label Label

	// the emulation preferences
	Prefs *preferences.Preferences
}

// NewEnvironment is the preferred method of initialisation for the Environment type.
//
// The prefs argument can be nil, in which case a new Preferences instance will
// be created from the default settings file. Providing a non-nil value allows
// the preferences of more than one emulation to be synchronised.
func NewEnvironment(label Label, prefs *preferences.Preferences) (*Environment, error) {
	env := &Environment{
		Label: label,
	}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences("")
		if err != nil {
			return nil, err
		}
	}

	env.Prefs = prefs

	return env, nil
}

// Normalise ensures the environment is in an known default state. Useful for
// tests where the initial state must be the same for every run.
func (env *Environment) Normalise() {
	env.Prefs.SetDefaults()
}

// IsMainEmulation returns true if the environment is intended for the main
// emulation in the system
func (env *Environment) IsMainEmulation() bool {
	return env.Label == MainEmulation
}

// IsEmulation checks the emulation label and returns true if it matches
func (env *Environment) IsEmulation(label Label) bool {
	return env.Label == label
}

// AllowLogging implements the logger.Permission interface. Only the main
// emulation is allowed to create log entries.
func (env *Environment) AllowLogging() bool {
	return env.IsMainEmulation()
}
