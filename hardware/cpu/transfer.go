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

package cpu

import (
	"math/bits"

	"github.com/jetsetilly/gophergba/hardware/cpu/instructions"
	"github.com/jetsetilly/gophergba/hardware/memory"
)

func (mc *CPU) singleTransfer(bus Bus, ws *memory.Waitstates, ins *instructions.Instruction) {
	base := mc.R[ins.Rn]
	offset := mc.addressOffset(ins.Addressing)

	target := base - offset
	if ins.Addressing.Up {
		target = base + offset
	}

	addr := base
	if ins.Addressing.Pre {
		addr = target
	}

	// loads write back before the destination register is written so that a
	// load into the base register takes the loaded value
	load := func(v uint32, wait int) {
		mc.cycles += int64(wait + 1)
		if ins.Addressing.Writeback {
			mc.R[ins.Rn] = target
		}
		mc.R[ins.Rd] = v
	}

	switch ins.Op {
	case instructions.OpLDR:
		load(bus.Load32(addr), ws.Wait32(addr))
	case instructions.OpLDRB:
		load(uint32(bus.Load8(addr)), ws.Wait(addr))
	case instructions.OpLDRH:
		load(uint32(bus.Load16(addr)), ws.Wait(addr))
	case instructions.OpLDRSB:
		load(uint32(int32(int8(bus.Load8(addr)))), ws.Wait(addr))
	case instructions.OpLDRSH:
		load(uint32(int32(int16(bus.Load16(addr)))), ws.Wait(addr))

	default:
		// a stored program counter is one instruction further ahead
		v := mc.R[ins.Rd]
		if ins.Rd == rPC {
			v += mc.width()
		}

		switch ins.Op {
		case instructions.OpSTR:
			bus.Store32(addr, v)
			mc.cycles += int64(ws.Wait32(addr))
		case instructions.OpSTRB:
			bus.Store8(addr, uint8(v))
			mc.cycles += int64(ws.Wait(addr))
		case instructions.OpSTRH:
			bus.Store16(addr, uint16(v))
			mc.cycles += int64(ws.Wait(addr))
		}

		if ins.Addressing.Writeback {
			mc.R[ins.Rn] = target
		}
	}
}

func (mc *CPU) blockTransfer(bus Bus, ws *memory.Waitstates, ins *instructions.Instruction) {
	list := ins.List
	n := bits.OnesCount16(list)

	// an empty list transfers the program counter but the base register is
	// adjusted as though all sixteen registers were transferred
	size := uint32(n) * 4
	if list == 0 {
		list = 0x8000
		n = 1
		size = 0x40
	}

	base := mc.R[ins.Rn]

	var start, final uint32
	if ins.Addressing.Up {
		final = base + size
		start = base
		if ins.Addressing.Pre {
			start += 4
		}
	} else {
		final = base - size
		start = final
		if !ins.Addressing.Pre {
			start += 4
		}
	}

	// the S bit with the program counter in the list of a load restores the
	// status register. otherwise it selects the user register bank
	restore := ins.Op == instructions.OpLDM && ins.UserBank && list&0x8000 == 0x8000
	user := ins.UserBank && !restore

	addr := start

	if ins.Op == instructions.OpLDM {
		mc.cycles += int64(ws.WaitMulti32(start, n) + 1)

		if ins.Addressing.Writeback {
			mc.R[ins.Rn] = final
		}

		for r := range NumRegisters {
			if list&(1<<r) == 0 {
				continue
			}
			v := bus.Load32(addr &^ 0x03)
			if user {
				mc.setUserRegister(r, v)
			} else {
				mc.R[r] = v
			}
			addr += 4
		}

		if restore && mc.HasSPSR() {
			mc.unpackCPSR(bus, mc.SPSR)
		}

		return
	}

	mc.cycles += int64(ws.WaitMulti32(start, n))

	first := true
	for r := range NumRegisters {
		if list&(1<<r) == 0 {
			continue
		}

		var v uint32
		if user {
			v = mc.userRegister(r)
		} else {
			v = mc.R[r]
		}
		if r == rPC {
			v += mc.width()
		}
		bus.Store32(addr&^0x03, v)
		addr += 4

		// the base register is updated after the first store. a base register
		// that is first in the list is stored with its original value
		if first {
			if ins.Addressing.Writeback {
				mc.R[ins.Rn] = final
			}
			first = false
		}
	}
}

func (mc *CPU) swap(bus Bus, ws *memory.Waitstates, ins *instructions.Instruction) {
	addr := mc.R[ins.Rn]

	if ins.Op == instructions.OpSWPB {
		v := bus.Load8(addr)
		bus.Store8(addr, uint8(mc.R[ins.Rm]))
		mc.R[ins.Rd] = uint32(v)
		mc.cycles += int64(2*ws.Wait(addr) + 1)
		return
	}

	v := bus.Load32(addr)
	bus.Store32(addr, mc.R[ins.Rm])
	mc.R[ins.Rd] = v
	mc.cycles += int64(2*ws.Wait32(addr) + 1)
}
