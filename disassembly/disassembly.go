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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gophergba/hardware/cpu/instructions"
)

// Memory is the view of the emulated memory required for disassembly.
// Satisfied by memory.Memory.
type Memory interface {
	Peek(address uint32) uint8
}

// Disassembly is a list of disassembled instructions.
type Disassembly []instructions.DisasmEntry

func (dsm Disassembly) String() string {
	s := strings.Builder{}
	for _, e := range dsm {
		s.WriteString(e.String())
		s.WriteRune('\n')
	}
	return strings.TrimSuffix(s.String(), "\n")
}

// Entry disassembles the instruction at the address.
func Entry(mem Memory, address uint32, thumb bool) instructions.DisasmEntry {
	var ins instructions.Instruction

	if thumb {
		address &^= 1
		opcode := uint16(mem.Peek(address)) | uint16(mem.Peek(address+1))<<8
		ins = instructions.DecodeThumb(opcode)
	} else {
		address &^= 3
		opcode := uint32(mem.Peek(address)) |
			uint32(mem.Peek(address+1))<<8 |
			uint32(mem.Peek(address+2))<<16 |
			uint32(mem.Peek(address+3))<<24
		ins = instructions.DecodeARM(opcode)
	}
	ins.Address = address

	return instructions.Disassemble(&ins)
}

// FromMemory disassembles count instructions starting at the address.
func FromMemory(mem Memory, address uint32, thumb bool, count int) Disassembly {
	dsm := make(Disassembly, 0, count)
	for range count {
		e := Entry(mem, address, thumb)
		dsm = append(dsm, e)
		if thumb {
			address = e.Addr + 2
		} else {
			address = e.Addr + 4
		}
	}
	return dsm
}

// Window disassembles the instructions either side of the address. Useful
// for showing the context of the instruction about to be executed.
func Window(mem Memory, address uint32, thumb bool, before int, after int) Disassembly {
	width := uint32(4)
	if thumb {
		width = 2
	}
	start := address - uint32(before)*width
	if start > address {
		start = 0
	}
	return FromMemory(mem, start, thumb, int((address-start)/width)+after+1)
}

// Current marks the entry at the address. Returns the marked string for each
// entry in the disassembly.
func (dsm Disassembly) Current(address uint32) []string {
	s := make([]string, 0, len(dsm))
	for _, e := range dsm {
		if e.Addr == address {
			s = append(s, fmt.Sprintf("> %s", e))
		} else {
			s = append(s, fmt.Sprintf("  %s", e))
		}
	}
	return s
}
