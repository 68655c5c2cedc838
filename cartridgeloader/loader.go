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

package cartridgeloader

import (
	"archive/zip"
	"bytes"
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gophergba/curated"
)

// FileExtensions is the list of file extensions that are recognised as
// cartridge files. Used when searching an archive for a cartridge.
var FileExtensions = [...]string{".GBA", ".AGB", ".BIN", ".ROM"}

// HashMismatch is the error pattern returned when the loaded data does not
// match the expected hash.
const HashMismatch = "cartridgeloader: unexpected hash value (%s)"

// Loader is used to specify the cartridge to use.
type Loader struct {
	// filename of cartridge to load. can be a URL
	Filename string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns a shortened version of the Loader filename.
func (cl Loader) ShortName() string {
	shortCartName := filepath.Base(cl.Filename)
	return strings.TrimSuffix(shortCartName, filepath.Ext(cl.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the cartridge data. Calling Load() after a successful load has no
// effect.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	scheme := "file"

	url, err := url.Parse(cl.Filename)
	if err == nil && len(url.Scheme) > 1 {
		scheme = url.Scheme
	}

	var data []byte

	switch scheme {
	case "http", "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf("cartridgeloader: %v", resp.Status)
		}

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

	case "file":
		data, err = os.ReadFile(cl.Filename)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

	default:
		return curated.Errorf("cartridgeloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	if strings.EqualFold(filepath.Ext(cl.Filename), ".zip") {
		data, err = fromArchive(data)
		if err != nil {
			return err
		}
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf(HashMismatch, hash)
	}

	cl.Hash = hash
	cl.Data = data

	return nil
}

// the data of the first file in the archive with a cartridge file extension
func fromArchive(data []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, curated.Errorf("cartridgeloader: %v", err)
	}

	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}

		ext := strings.ToUpper(filepath.Ext(f.Name))
		for _, e := range FileExtensions {
			if ext != e {
				continue
			}

			r, err := f.Open()
			if err != nil {
				return nil, curated.Errorf("cartridgeloader: %v", err)
			}
			defer r.Close()

			d, err := io.ReadAll(r)
			if err != nil {
				return nil, curated.Errorf("cartridgeloader: %v", err)
			}
			return d, nil
		}
	}

	return nil, curated.Errorf("cartridgeloader: %v", "no cartridge in archive")
}
