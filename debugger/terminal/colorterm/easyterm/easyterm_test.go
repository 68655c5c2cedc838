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

//go:build !windows

package easyterm

import (
	"os"
	"testing"

	"github.com/jetsetilly/gophergba/test"
)

func TestPrint(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "easyterm")
	test.DemandSuccess(t, err)
	defer f.Close()

	pt := &Terminal{output: f}

	// strings are printed as they are. only Printf() treats them as formats
	pt.Print("100% done ")
	pt.Printf("%d%% %s", 50, "%v")

	data, err := os.ReadFile(f.Name())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), "100% done 50% %v")
}
