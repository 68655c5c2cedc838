// This file is part of GopherGBA.
//
// GopherGBA is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherGBA is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherGBA.  If not, see <https://www.gnu.org/licenses/>.

// Package environment gives each emulation the context it runs in: its
// preferences, its source of randomness and a label that distinguishes it
// from other emulations running at the same time.
package environment

import (
	"github.com/jetsetilly/gophergba/hardware/preferences"
	"github.com/jetsetilly/gophergba/random"
)

// Label names an emulation.
type Label string

// MainEmulation is the label of the emulation the user is interacting with.
// Emulations with any other label run in the background and do not write to
// the log.
const MainEmulation = Label("")

// Environment is the context of a single emulation.
type Environment struct {
	Label Label

	// randomisation in the emulation must come from here so that it can be
	// made deterministic with Normalise()
	Random *random.Random

	// preferences may be shared with other emulations
	Prefs *preferences.Preferences
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type.
//
// If prefs is nil the preferences are loaded from disk. Passing the Prefs
// field of another Environment shares the preferences between the two
// emulations.
func NewEnvironment(label Label, prefs *preferences.Preferences) (*Environment, error) {
	if prefs == nil {
		var err error
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	return &Environment{
		Label:  label,
		Random: random.NewRandom(nil),
		Prefs:  prefs,
	}, nil
}

// Normalise puts the environment into a known state. Two emulations with
// normalised environments and the same input behave identically.
func (env *Environment) Normalise() {
	env.Random.ZeroSeed = true
	env.Prefs.SetDefaults()
}

// IsMainEmulation returns true if the environment has the MainEmulation
// label.
func (env *Environment) IsMainEmulation() bool {
	return env.Label == MainEmulation
}

// AllowLogging implements the logger.Permission interface.
func (env *Environment) AllowLogging() bool {
	return env.IsMainEmulation()
}
