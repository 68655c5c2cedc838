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

package environment_test

import (
	"os"
	"testing"

	"github.com/jetsetilly/gophergba/environment"
	"github.com/jetsetilly/gophergba/test"
)

func TestEnvironment(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer os.Chdir(wd)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))

	main, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, main.IsMainEmulation())
	test.ExpectSuccess(t, main.AllowLogging())

	other, err := environment.NewEnvironment("background", main.Prefs)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, other.IsMainEmulation())
	test.ExpectFailure(t, other.AllowLogging())

	// preferences are shared
	test.ExpectSuccess(t, main.Prefs.SkipBIOS.Set(false))
	test.ExpectEquality(t, other.Prefs.SkipBIOS.Get().(bool), false)

	other.Normalise()
	test.ExpectEquality(t, main.Prefs.SkipBIOS.Get().(bool), true)
	test.ExpectSuccess(t, other.Random.ZeroSeed)
}
