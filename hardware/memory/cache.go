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
	"github.com/jetsetilly/gophergba/hardware/cpu/instructions"
	"github.com/jetsetilly/gophergba/hardware/memory/memorymap"
)

// cachePosition normalises an address to the region and offset under which
// its instruction cache page is stored. cartridge aliases share the pages of
// the Cart0 region and mirrored memory shares the pages of the mirrored area
func cachePosition(region memorymap.Region, offset uint32) (memorymap.Region, uint32) {
	switch region {
	case memorymap.BIOS:
		return region, offset
	case memorymap.WRAM:
		return region, offset & (memorymap.SizeWRAM - 1)
	case memorymap.IRAM:
		return region, offset & (memorymap.SizeIRAM - 1)
	case memorymap.Palette:
		return region, offset & (memorymap.SizePalette - 1)
	case memorymap.OAM:
		return region, offset & (memorymap.SizeOAM - 1)
	case memorymap.VRAM:
		return region, vramOffset(offset)
	}
	return memorymap.Cart0, romOffset(region, offset)
}

// number of pages required to cover a region
func numPages(region memorymap.Region) int {
	var size int
	switch region {
	case memorymap.BIOS:
		size = memorymap.SizeBIOS
	case memorymap.WRAM:
		size = memorymap.SizeWRAM
	case memorymap.IRAM:
		size = memorymap.SizeIRAM
	case memorymap.Palette:
		size = memorymap.SizePalette
	case memorymap.OAM:
		size = memorymap.SizeOAM
	case memorymap.VRAM:
		size = memorymap.SizeVRAM
	default:
		size = memorymap.SizeCart
	}
	return size >> region.PageBits()
}

// AccessPage returns the instruction cache page for the address. If the page
// does not exist or has been invalidated a new page is created. Returns nil if
// the address is in a region that can not be cached.
func (mem *Memory) AccessPage(address uint32) *instructions.Page {
	region := memorymap.RegionOf(address)
	if !region.Cacheable() || mem.isSave(region) {
		return nil
	}

	// the BIOS is not mirrored. addresses beyond it read as open bus and must
	// not share pages with the BIOS itself
	if region == memorymap.BIOS && memorymap.Offset(address) >= memorymap.SizeBIOS {
		return nil
	}

	region, offset := cachePosition(region, memorymap.Offset(address))
	if mem.pages[region] == nil {
		mem.pages[region] = make([]*instructions.Page, numPages(region))
	}

	id := offset >> region.PageBits()
	page := mem.pages[region][id]
	if page == nil || page.Invalid {
		page = instructions.NewPage(1 << region.PageBits())
		mem.pages[region][id] = page
	}
	return page
}

// invalidate the page covering the offset in the region
func (mem *Memory) invalidate(region memorymap.Region, offset uint32) {
	if !region.Cacheable() {
		return
	}
	if region == memorymap.BIOS && offset >= memorymap.SizeBIOS {
		return
	}
	region, offset = cachePosition(region, offset)
	if mem.pages[region] == nil {
		return
	}
	id := int(offset >> region.PageBits())
	if id < len(mem.pages[region]) {
		if page := mem.pages[region][id]; page != nil {
			page.Invalid = true
		}
	}
}

// Invalidate marks the instruction cache page covering the address as
// invalid. Any decoded instructions in the page will be decoded again on the
// next fetch.
func (mem *Memory) Invalidate(address uint32) {
	mem.invalidate(memorymap.RegionOf(address), memorymap.Offset(address))
}

// InvalidateAll marks every instruction cache page as invalid.
func (mem *Memory) InvalidateAll() {
	for r := range mem.pages {
		for _, page := range mem.pages[r] {
			if page != nil {
				page.Invalid = true
			}
		}
	}
}
