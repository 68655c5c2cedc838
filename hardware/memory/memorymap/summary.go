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

import (
	"fmt"
	"strings"
)

// Summary returns a single multiline string detailing all the regions in
// memory. Consecutive regions with the same name are collapsed into a single
// line. Useful for reference.
func Summary() string {
	s := strings.Builder{}

	start := BIOS
	for r := BIOS + 1; r <= NumRegions; r++ {
		if r < NumRegions && r.name() == start.name() {
			continue
		}
		s.WriteString(fmt.Sprintf("%08x -> %08x\t%s\n",
			uint32(start)<<OffsetBits, (uint32(r)<<OffsetBits)-1, start.name()))
		start = r
	}

	return s.String()
}

// name of region without the hi/lo qualifier
func (r Region) name() string {
	switch r {
	case Cart0Hi:
		return Cart0.String()
	case Cart1Hi:
		return Cart1.String()
	case Cart2Hi:
		return Cart2.String()
	}
	return r.String()
}
