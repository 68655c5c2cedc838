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

// Package savefile persists the backup memory of a cartridge between
// sessions. Save files are kept in the resources directory and are named
// after the cartridge's game code and title.
package savefile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gophergba/curated"
	"github.com/jetsetilly/gophergba/hardware/memory"
	"github.com/jetsetilly/gophergba/resources"
)

// the sub-directory of the resources directory containing the save files
const savePath = "saves"

// Memory is the part of the emulation that owns the backup memory. Satisfied
// by memory.Memory.
type Memory interface {
	Cartridge() memory.Cartridge
	SaveData() ([]byte, error)
	LoadSaveData(data []byte) error
	SaveBackend() memory.SaveBackend
}

// Filename returns the name of the save file for the cartridge, not including
// the directory.
func Filename(cart memory.Cartridge) string {
	name := strings.Map(func(r rune) rune {
		if r == ' ' || r == filepath.Separator {
			return '_'
		}
		return r
	}, fmt.Sprintf("%s_%s", cart.Code, cart.Title))
	return fmt.Sprintf("%s.sav", name)
}

// Path returns the full path of the save file for the cartridge. The save
// directory is created if necessary.
func Path(cart memory.Cartridge) (string, error) {
	return resources.JoinPath(savePath, Filename(cart))
}

// Read the save file into the backup memory. It is not an error for the save
// file to not exist.
func Read(mem Memory, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return curated.Errorf("savefile: %v", err)
	}

	err = mem.LoadSaveData(data)
	if err != nil {
		return curated.Errorf("savefile: %v", err)
	}

	// backup memory now matches what's on disk
	if save := mem.SaveBackend(); save != nil {
		save.Flushed()
	}

	return nil
}

// Write the backup memory to the save file. Nothing is written if the backup
// memory has not changed since it was last read or written.
func Write(mem Memory, filename string) error {
	save := mem.SaveBackend()
	if save == nil || !save.WritePending() {
		return nil
	}

	data, err := mem.SaveData()
	if err != nil {
		return curated.Errorf("savefile: %v", err)
	}

	err = os.WriteFile(filename, data, 0o644)
	if err != nil {
		return curated.Errorf("savefile: %v", err)
	}

	save.Flushed()

	return nil
}
