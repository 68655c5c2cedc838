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

package disassembly_test

import (
	"encoding/binary"
	"strings"
	"testing"

	"github.com/jetsetilly/gophergba/disassembly"
	"github.com/jetsetilly/gophergba/test"
)

type memory []byte

func (m memory) Peek(address uint32) uint8 {
	if int(address) >= len(m) {
		return 0
	}
	return m[address]
}

func TestARM(t *testing.T) {
	mem := make(memory, 16)
	binary.LittleEndian.PutUint32(mem[0:], 0xe3a00005) // mov r0, #5
	binary.LittleEndian.PutUint32(mem[4:], 0xef060000) // swi 0x06

	dsm := disassembly.FromMemory(mem, 0, false, 2)
	test.ExpectEquality(t, len(dsm), 2)
	test.ExpectEquality(t, dsm[0].Operator, "MOV")
	test.ExpectEquality(t, dsm[0].Addr, uint32(0))
	test.ExpectEquality(t, dsm[1].Operator, "SWI")
	test.ExpectEquality(t, dsm[1].Addr, uint32(4))
	test.ExpectEquality(t, strings.Count(dsm.String(), "\n"), 1)

	// misaligned addresses are aligned
	e := disassembly.Entry(mem, 5, false)
	test.ExpectEquality(t, e.Addr, uint32(4))
}

func TestThumb(t *testing.T) {
	mem := make(memory, 16)
	binary.LittleEndian.PutUint16(mem[0:], 0x2005) // mov r0, #5
	binary.LittleEndian.PutUint16(mem[2:], 0xdf06) // swi 0x06

	dsm := disassembly.FromMemory(mem, 0, true, 2)
	test.ExpectEquality(t, dsm[0].Thumb, true)
	test.ExpectEquality(t, dsm[0].Operator, "MOVS")
	test.ExpectEquality(t, dsm[1].Addr, uint32(2))
	test.ExpectEquality(t, dsm[1].Operator, "SWI")
}

func TestWindow(t *testing.T) {
	mem := make(memory, 64)

	dsm := disassembly.Window(mem, 16, false, 2, 3)
	test.ExpectEquality(t, len(dsm), 6)
	test.ExpectEquality(t, dsm[0].Addr, uint32(8))

	lines := dsm.Current(16)
	test.ExpectEquality(t, strings.HasPrefix(lines[2], "> "), true)
	test.ExpectEquality(t, strings.HasPrefix(lines[1], "  "), true)

	// window is clipped at the start of memory
	dsm = disassembly.Window(mem, 4, false, 4, 0)
	test.ExpectEquality(t, dsm[0].Addr, uint32(0))
	test.ExpectEquality(t, len(dsm), 2)
}
