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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gophergba/curated"
	"github.com/jetsetilly/gophergba/hardware/memory/memorymap"
	"github.com/jetsetilly/gophergba/logger"
)

// Sentinal errors.
const (
	BadROMHeader = "cartridge: not a valid ROM: %v"
	BadBIOS      = "bios: %v"
)

// SaveType is the backup memory type declared by a cartridge.
type SaveType string

// List of valid SaveType values. The values are the marker strings that are
// embedded in the ROM data by the development libraries.
const (
	SaveNone     SaveType = ""
	SaveFlash    SaveType = "FLASH_V"
	SaveFlash512 SaveType = "FLASH512_V"
	SaveFlash1M  SaveType = "FLASH1M_V"
	SaveSRAM     SaveType = "SRAM_V"
	SaveEEPROM   SaveType = "EEPROM_V"
)

var saveTypes = []SaveType{SaveFlash, SaveFlash512, SaveFlash1M, SaveSRAM, SaveEEPROM}

// Size of backup memory for the save type.
func (st SaveType) Size() int {
	switch st {
	case SaveFlash, SaveFlash512:
		return memorymap.SizeCartFlash512
	case SaveFlash1M:
		return memorymap.SizeCartFlash1M
	case SaveEEPROM:
		return memorymap.SizeCartEEPROM
	}
	return memorymap.SizeCartSRAM
}

// Region the backup memory for the save type is mapped to.
func (st SaveType) Region() memorymap.Region {
	if st == SaveEEPROM {
		return memorymap.Cart2Hi
	}
	return memorymap.CartSRAM
}

// Cartridge is the information parsed from a cartridge header.
type Cartridge struct {
	Title    string
	Code     string
	Maker    string
	SaveType SaveType
	Size     int
}

func (c Cartridge) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s [%s", c.Title, c.Code))
	if c.Maker != "" {
		s.WriteString(fmt.Sprintf("-%s", c.Maker))
	}
	s.WriteString(fmt.Sprintf("] %dKB", c.Size/1024))
	if c.SaveType != SaveNone {
		s.WriteString(fmt.Sprintf(" %s", strings.TrimSuffix(string(c.SaveType), "_V")))
	}
	return s.String()
}

// offsets into the cartridge header
const (
	headerTitle   = 0xa0
	headerCode    = 0xac
	headerMaker   = 0xb0
	headerFixed   = 0xb2
	headerEnd     = 0xc0
	saveScanStart = 0xe4

	// the value of the fixed byte in a valid header
	fixedValue = 0x96
)

// header string of at most length bytes. the string stops at the first zero
// byte
func headerString(data []byte, offset int, length int) string {
	s := strings.Builder{}
	for _, c := range data[offset : offset+length] {
		if c == 0 {
			break
		}
		s.WriteByte(c)
	}
	return s.String()
}

// findSaveType scans the ROM data for one of the save type markers
func findSaveType(data []byte) SaveType {
	if len(data) <= saveScanStart {
		return SaveNone
	}

	// the markers are searched for by extending a prefix one byte at a time.
	// if the prefix stops matching any of the markers then the scan restarts
	// from the mismatching byte
	var state []byte
	for _, c := range data[saveScanStart:] {
		state = append(state, c)
		if t, ok := matchSaveType(state); ok {
			return t
		}
		if !prefixOfSaveType(state) {
			state = append(state[:0], c)
			if !prefixOfSaveType(state) {
				state = state[:0]
			}
		}
	}
	return SaveNone
}

func matchSaveType(state []byte) (SaveType, bool) {
	for _, t := range saveTypes {
		if string(state) == string(t) {
			return t, true
		}
	}
	return SaveNone, false
}

func prefixOfSaveType(state []byte) bool {
	for _, t := range saveTypes {
		if strings.HasPrefix(string(t), string(state)) {
			return true
		}
	}
	return false
}

// LoadROM inserts the cartridge data into the cartridge regions and creates
// the backup memory. The ROM is checked for a valid header.
func (mem *Memory) LoadROM(data []byte) (Cartridge, error) {
	if len(data) < headerEnd {
		return Cartridge{}, curated.Errorf(BadROMHeader, "too short")
	}
	if len(data) > memorymap.SizeCart {
		return Cartridge{}, curated.Errorf(BadROMHeader, "too long")
	}
	if data[headerFixed] != fixedValue {
		return Cartridge{}, curated.Errorf(BadROMHeader, "bad fixed value")
	}

	mem.rom = data

	cart := Cartridge{
		Title:    headerString(data, headerTitle, 12),
		Code:     headerString(data, headerCode, 4),
		Maker:    headerString(data, headerMaker, 2),
		SaveType: findSaveType(data),
		Size:     len(data),
	}

	if mem.userSave != nil {
		mem.save = mem.userSave
	} else {
		mem.save = NewSRAM(cart.SaveType.Size())
	}
	mem.saveRegion = cart.SaveType.Region()
	mem.cart = cart

	mem.InvalidateAll()

	logger.Logf(mem.env, "mmu", "cartridge: %s", cart)

	return cart, nil
}

// Cartridge returns the information about the loaded cartridge.
func (mem *Memory) Cartridge() Cartridge {
	return mem.cart
}

// ROM returns the cartridge data.
func (mem *Memory) ROM() []byte {
	return mem.rom
}

// LoadBIOS installs the BIOS data. The real argument should be true if the data
// is a dump of the real BIOS rather than a stand-in for use with high-level
// emulation.
func (mem *Memory) LoadBIOS(data []byte, real bool) error {
	if len(data) == 0 {
		return curated.Errorf(BadBIOS, "empty")
	}
	if len(data) > memorymap.SizeBIOS {
		return curated.Errorf(BadBIOS, fmt.Sprintf("image larger than %d bytes", memorymap.SizeBIOS))
	}
	mem.bios = make([]byte, len(data))
	copy(mem.bios, data)
	mem.realBIOS = real
	mem.InvalidateAll()
	return nil
}

// RealBIOS returns true if the installed BIOS is a real BIOS dump.
func (mem *Memory) RealBIOS() bool {
	return mem.realBIOS
}
