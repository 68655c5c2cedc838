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

package terminal

import (
	"fmt"
	"strings"
)

// Prompt describes the state of the machine at the point the debugger asks
// for input.
type Prompt struct {
	// the number of frames completed so far
	Frame int

	// the address and execution state of the next instruction
	Addr  uint32
	Thumb bool

	// disassembly of the next instruction
	Instruction string
}

func (p Prompt) String() string {
	var s strings.Builder
	s.WriteString("[ ")
	if p.Addr != 0 || p.Instruction != "" {
		mode := 'A'
		if p.Thumb {
			mode = 'T'
		}
		fmt.Fprintf(&s, "%d %08x %c ", p.Frame, p.Addr, mode)
	}
	s.WriteString(strings.TrimSpace(p.Instruction))
	s.WriteString(" ] >> ")
	return s.String()
}
