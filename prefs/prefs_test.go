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

package prefs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gophergba/curated"
	"github.com/jetsetilly/gophergba/prefs"
	"github.com/jetsetilly/gophergba/test"
)

// cmpTmpFile compares the contents of the named file with the expected
// string. the boilerplate line is added to the expected string automatically
func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), prefs.WarningBoilerPlate+"\n"+expected)
}

func TestBool(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("false"))
	test.ExpectSuccess(t, dsk.Save())

	cmpTmpFile(t, fn, "test :: true\ntestB :: false\n")
}

func TestString(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, v.Set("bar"))
	test.ExpectSuccess(t, dsk.Save())

	cmpTmpFile(t, fn, "foo :: bar\n")

	// values that aren't strings are formatted
	test.ExpectSuccess(t, v.Set(0x80))
	test.ExpectEquality(t, v.String(), "128")

	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Get().(string), "")
}

func TestBoolConversion(t *testing.T) {
	var v prefs.Bool
	test.ExpectEquality(t, v.Get().(bool), false)
	test.ExpectSuccess(t, v.Set(" TRUE "))
	test.ExpectEquality(t, v.Get().(bool), true)
	test.ExpectSuccess(t, v.Set("yes"))
	test.ExpectEquality(t, v.Get().(bool), false)
	test.ExpectFailure(t, v.Set(1))
}

// entries in the file that are unknown to the Disk instance are kept
func TestBoolAndString(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.ExpectSuccess(t, dsk.Save())

	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var b prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &b))
	test.ExpectSuccess(t, b.Set(true))
	test.ExpectSuccess(t, dsk.Save())

	cmpTmpFile(t, fn, "foo :: bar\ntest :: true\n")
}

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("hardware.biosfile", &v))

	// file does not exist yet but is created because saveOnFail is true
	err = dsk.Load(true)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))
	cmpTmpFile(t, fn, "hardware.biosfile :: \n")

	test.ExpectSuccess(t, v.Set("gba_bios.bin"))
	test.ExpectSuccess(t, dsk.Save())
	test.ExpectSuccess(t, v.Reset())
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.Get().(string), "gba_bios.bin")
}

func TestIllegalKey(t *testing.T) {
	dsk, err := prefs.NewDisk(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectFailure(t, dsk.Add("bad key", &v))
	test.ExpectSuccess(t, dsk.Add("good.key_1", &v))
}

func TestDefunctKeysDropped(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")
	err := os.WriteFile(fn, []byte(prefs.WarningBoilerPlate+"\nhardware.fastboot :: true\nkeep :: 1\n"), 0600)
	test.DemandSuccess(t, err)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("keep", &v))
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.Get().(string), "1")
	test.ExpectSuccess(t, dsk.Save())

	cmpTmpFile(t, fn, "keep :: 1\n")
}
