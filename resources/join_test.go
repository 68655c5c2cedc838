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

package resources_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gophergba/resources"
	"github.com/jetsetilly/gophergba/test"
)

func TestJoinPath(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer os.Chdir(wd)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))

	pth, err := resources.JoinPath("saves", "game.sav")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".gophergba", "saves", "game.sav"))

	// directory is created but the file is not
	_, err = os.Stat(filepath.Join(".gophergba", "saves"))
	test.ExpectSuccess(t, err)
	_, err = os.Stat(pth)
	test.ExpectFailure(t, err)

	// base path is not prepended twice
	again, err := resources.JoinPath(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, again, pth)
}
