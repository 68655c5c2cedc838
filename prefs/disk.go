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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/gophergba/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is inserted at the beginning of a preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// the separator between key and value in the preferences file
const keySep = " :: "

// Sentinal error patterns.
const (
	NoPrefsFile  = "prefs: no prefs file (%s)"
	PrefsFileErr = "prefs: %v"
	UnknownKey   = "prefs: unknown key (%s)"
)

// Disk represents preference values as stored on disk. Preference values are
// added to a Disk instance with the Add() function and are loaded and saved
// with the Load() and Save() functions.
//
// More than one Disk instance can use the same file. Entries in the file that
// are not known to a Disk instance are preserved when that instance saves.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

func (dsk *Disk) String() string {
	keys := dsk.keys()
	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k]))
	}
	return s.String()
}

// sorted list of keys in the Disk instance
func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add preference value to the Disk instance under the key.
func (dsk *Disk) Add(key string, p pref) error {
	for _, r := range key {
		if !(r == '.' || r == '_' || (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')) {
			return curated.Errorf(PrefsFileErr, fmt.Sprintf("illegal character [%c] in key string [%s]", r, key))
		}
	}
	dsk.entries[key] = p
	return nil
}

// Reset all preference values to their reset value.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return curated.Errorf(PrefsFileErr, err)
		}
	}
	return nil
}

// read the preferences file into a map of raw strings. a missing file is not
// an error but results in a nil map
func (dsk *Disk) read() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, curated.Errorf(PrefsFileErr, err)
	}
	defer f.Close()

	raw := make(map[string]string)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == WarningBoilerPlate || len(strings.TrimSpace(line)) == 0 {
			continue
		}
		kv := strings.SplitN(line, keySep, 2)
		if len(kv) != 2 {
			continue
		}
		if isDefunct(kv[0]) {
			continue
		}
		raw[kv[0]] = kv[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(PrefsFileErr, err)
	}

	return raw, nil
}

// Save current preference values to disk. Entries in the file that are not
// part of this Disk instance are retained.
func (dsk *Disk) Save() error {
	raw, err := dsk.read()
	if err != nil {
		return err
	}
	if raw == nil {
		raw = make(map[string]string)
	}

	for k, p := range dsk.entries {
		raw[k] = p.String()
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, raw[k]))
	}

	err = os.WriteFile(dsk.path, []byte(s.String()), 0600)
	if err != nil {
		return curated.Errorf(PrefsFileErr, err)
	}

	return nil
}

// Load preference values from disk. Values on the command line stack take
// priority over values in the file.
//
// If saveOnFail is true then the file will be created with the current values
// when it does not exist. The NoPrefsFile error is returned in either case.
func (dsk *Disk) Load(saveOnFail bool) error {
	raw, err := dsk.read()
	if err != nil {
		return err
	}

	for _, k := range dsk.keys() {
		if ok, v := GetCommandLinePref(k); ok {
			if err := dsk.entries[k].Set(v); err != nil {
				return curated.Errorf(PrefsFileErr, err)
			}
			continue
		}
		if v, ok := raw[k]; ok {
			if err := dsk.entries[k].Set(v); err != nil {
				return curated.Errorf(PrefsFileErr, err)
			}
		}
	}

	if raw == nil {
		if saveOnFail {
			if err := dsk.Save(); err != nil {
				return err
			}
		}
		return curated.Errorf(NoPrefsFile, dsk.path)
	}

	return nil
}
