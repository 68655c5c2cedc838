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

package instructions

// Page is a window of a memory region holding decoded instructions. There is
// one slot for every possible ARM instruction address and one for every
// possible Thumb instruction address.
//
// A page is never cleared. When memory covered by the page is written to the
// page is marked as invalid and a new page is allocated on next access.
// Instructions that still refer to the invalid page can detect the condition
// with the Instruction.Valid() function.
type Page struct {
	ARM   []Instruction
	Thumb []Instruction

	Invalid bool
}

// NewPage creates a page covering the specified number of bytes.
func NewPage(size int) *Page {
	return &Page{
		ARM:   make([]Instruction, size>>2),
		Thumb: make([]Instruction, size>>1),
	}
}

// Slot returns the cache slot for the address. The mask is the region's
// page mask.
func (pg *Page) Slot(address uint32, mask uint32, thumb bool) *Instruction {
	if thumb {
		return &pg.Thumb[(address&mask)>>1]
	}
	return &pg.ARM[(address&mask)>>2]
}
