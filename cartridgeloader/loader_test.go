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

package cartridgeloader_test

import (
	"archive/zip"
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gophergba/cartridgeloader"
	"github.com/jetsetilly/gophergba/curated"
	"github.com/jetsetilly/gophergba/test"
)

var romData = []byte("not really a cartridge but it will do")

func TestFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "test.gba")
	test.DemandSuccess(t, os.WriteFile(filename, romData, 0o644))

	cl := cartridgeloader.NewLoader(filename)
	test.ExpectEquality(t, cl.ShortName(), "test")
	test.ExpectEquality(t, cl.HasLoaded(), false)

	test.ExpectSuccess(t, cl.Load())
	test.ExpectEquality(t, cl.HasLoaded(), true)
	test.ExpectEquality(t, string(cl.Data), string(romData))
	test.ExpectEquality(t, cl.Hash, fmt.Sprintf("%x", sha1.Sum(romData)))
}

func TestHash(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "test.gba")
	test.DemandSuccess(t, os.WriteFile(filename, romData, 0o644))

	cl := cartridgeloader.NewLoader(filename)
	cl.Hash = "0000"
	err := cl.Load()
	test.ExpectEquality(t, curated.Is(err, cartridgeloader.HashMismatch), true)
	test.ExpectEquality(t, cl.HasLoaded(), false)
}

func TestMissingFile(t *testing.T) {
	cl := cartridgeloader.NewLoader(filepath.Join(t.TempDir(), "missing.gba"))
	test.ExpectFailure(t, cl.Load())
}

func TestArchive(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "test.zip")
	f, err := os.Create(filename)
	test.DemandSuccess(t, err)

	zw := zip.NewWriter(f)
	w, err := zw.Create("readme.txt")
	test.DemandSuccess(t, err)
	_, err = w.Write([]byte("readme"))
	test.DemandSuccess(t, err)
	w, err = zw.Create("game/test.GBA")
	test.DemandSuccess(t, err)
	_, err = w.Write(romData)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, zw.Close())
	test.DemandSuccess(t, f.Close())

	cl := cartridgeloader.NewLoader(filename)
	test.ExpectSuccess(t, cl.Load())
	test.ExpectEquality(t, string(cl.Data), string(romData))
}

func TestHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/test.gba" {
			http.NotFound(w, r)
			return
		}
		w.Write(romData)
	}))
	defer srv.Close()

	cl := cartridgeloader.NewLoader(srv.URL + "/test.gba")
	test.ExpectSuccess(t, cl.Load())
	test.ExpectEquality(t, string(cl.Data), string(romData))

	cl = cartridgeloader.NewLoader(srv.URL + "/missing.gba")
	test.ExpectFailure(t, cl.Load())
}
