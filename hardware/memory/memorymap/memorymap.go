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

package memorymap

import "fmt"

// Region identifies one of the sixteen 16MB slots of the address space.
type Region uint8

// List of valid Region values. The value of each region is the same as the top
// byte of the addresses that belong to it.
const (
	BIOS Region = iota
	Unmapped
	WRAM
	IRAM
	IO
	Palette
	VRAM
	OAM
	Cart0
	Cart0Hi
	Cart1
	Cart1Hi
	Cart2
	Cart2Hi
	CartSRAM
	Unused

	NumRegions
)

func (r Region) String() string {
	switch r {
	case BIOS:
		return "BIOS"
	case Unmapped:
		return "Unmapped"
	case WRAM:
		return "WRAM"
	case IRAM:
		return "IRAM"
	case IO:
		return "IO"
	case Palette:
		return "Palette"
	case VRAM:
		return "VRAM"
	case OAM:
		return "OAM"
	case Cart0:
		return "Cart0"
	case Cart0Hi:
		return "Cart0 (hi)"
	case Cart1:
		return "Cart1"
	case Cart1Hi:
		return "Cart1 (hi)"
	case Cart2:
		return "Cart2"
	case Cart2Hi:
		return "Cart2 (hi)"
	case CartSRAM:
		return "SRAM"
	case Unused:
		return "Unused"
	}
	return fmt.Sprintf("region %d", r)
}

// Offset bits of an address. The remaining bits select the Region.
const (
	OffsetBits = 24
	OffsetMask = 0x00ffffff
)

// Base addresses of the regions.
const (
	BaseBIOS     = 0x00000000
	BaseWRAM     = 0x02000000
	BaseIRAM     = 0x03000000
	BaseIO       = 0x04000000
	BasePalette  = 0x05000000
	BaseVRAM     = 0x06000000
	BaseOAM      = 0x07000000
	BaseCart0    = 0x08000000
	BaseCart1    = 0x0a000000
	BaseCart2    = 0x0c000000
	BaseCartSRAM = 0x0e000000
)

// Sizes of the memory backing each region.
const (
	SizeBIOS         = 0x00004000
	SizeWRAM         = 0x00040000
	SizeIRAM         = 0x00008000
	SizeIO           = 0x00000400
	SizePalette      = 0x00000400
	SizeVRAM         = 0x00018000
	SizeOAM          = 0x00000400
	SizeCart         = 0x02000000
	SizeCartSRAM     = 0x00008000
	SizeCartFlash512 = 0x00010000
	SizeCartFlash1M  = 0x00020000
	SizeCartEEPROM   = 0x00002000
)

// RegionOf returns the region that the address belongs to. Addresses above
// the sixteenth region are treated as Unused.
func RegionOf(address uint32) Region {
	r := address >> OffsetBits
	if r >= uint32(NumRegions) {
		return Unused
	}
	return Region(r)
}

// Offset returns the address with the region bits removed.
func Offset(address uint32) uint32 {
	return address & OffsetMask
}

// IsCart returns true if the region is one of the cartridge ROM aliases.
func (r Region) IsCart() bool {
	return r >= Cart0 && r <= Cart2Hi
}

// IsOpenBus returns true if the region has no backing memory. Reads from these
// regions return the most recently prefetched instruction.
func (r Region) IsOpenBus() bool {
	return r == Unmapped || r == Unused
}

// Cacheable returns true if decoded instructions from the region can be kept
// in the instruction cache.
func (r Region) Cacheable() bool {
	switch r {
	case Unmapped, Unused, IO, CartSRAM:
		return false
	}
	return true
}

// PageBits returns the number of address bits covered by a single instruction
// cache page in the region.
func (r Region) PageBits() uint {
	switch r {
	case BIOS:
		return 14
	case WRAM:
		return 9
	case IRAM:
		return 7
	case Cart0, Cart0Hi, Cart1, Cart1Hi, Cart2, Cart2Hi:
		return 10
	}
	return 8
}

// PageMask returns the mask that isolates the address offset within a page.
func (r Region) PageMask() uint32 {
	return (1 << r.PageBits()) - 1
}
