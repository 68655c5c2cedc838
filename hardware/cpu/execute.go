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
	"github.com/jetsetilly/gophergba/hardware/cpu/instructions"
	"github.com/jetsetilly/gophergba/hardware/memory"
)

// execute a single instruction. the program counter has already been advanced
// past the prefetched instruction
func (mc *CPU) execute(bus Bus, ins *instructions.Instruction) error {
	ws := bus.Waitstates()
	pc := mc.R[rPC]

	// every instruction pays for the prefetch of the following instruction.
	// ARM stores can not overlap the prefetch with the data access
	if ins.Thumb {
		mc.cycles += int64(ws.WaitPrefetch(pc))
	} else if ins.Op.IsStore() {
		mc.cycles += int64(ws.Wait32(pc))
	} else {
		mc.cycles += int64(ws.WaitPrefetch32(pc))
	}

	if !mc.Status.condition(ins.Cond) {
		mc.conditionPassed = false
		return nil
	}

	if ins.Op.IsDataProcessing() {
		mc.dataProcessing(bus, ins)
		return nil
	}

	switch ins.Op {
	case instructions.OpMRS:
		if ins.SPSR && mc.HasSPSR() {
			mc.R[ins.Rd] = mc.SPSR
		} else {
			mc.R[ins.Rd] = mc.Status.Pack()
		}

	case instructions.OpMSR:
		mc.moveToStatus(bus, ins)

	case instructions.OpB:
		mc.R[rPC] += ins.Imm

	case instructions.OpBL:
		mc.R[rLR] = mc.R[rPC] - 4
		mc.R[rPC] += ins.Imm

	case instructions.OpBX:
		v := mc.R[ins.Rm]
		mc.switchExecMode(v&0x01 == 0x01)
		mc.R[rPC] = v &^ 0x01

	case instructions.OpThumbBLHigh:
		mc.R[rLR] = mc.R[rPC] + ins.Imm

	case instructions.OpThumbBLLow:
		target := mc.R[rLR] + ins.Imm
		mc.R[rLR] = (mc.R[rPC] - 2) | 0x01
		mc.R[rPC] = target

	case instructions.OpThumbAddPC:
		mc.R[ins.Rd] = (mc.R[rPC] &^ 0x03) + ins.Imm

	case instructions.OpThumbLoadPC:
		addr := (mc.R[rPC] &^ 0x03) + ins.Imm
		mc.R[ins.Rd] = bus.Load32(addr)
		mc.cycles += int64(ws.Wait32(addr) + 1)

	case instructions.OpMUL, instructions.OpMLA,
		instructions.OpUMULL, instructions.OpUMLAL,
		instructions.OpSMULL, instructions.OpSMLAL:
		mc.multiply(ins)

	case instructions.OpLDR, instructions.OpLDRB, instructions.OpLDRH,
		instructions.OpLDRSB, instructions.OpLDRSH,
		instructions.OpSTR, instructions.OpSTRB, instructions.OpSTRH:
		mc.singleTransfer(bus, ws, ins)

	case instructions.OpLDM, instructions.OpSTM:
		mc.blockTransfer(bus, ws, ins)

	case instructions.OpSWP, instructions.OpSWPB:
		mc.swap(bus, ws, ins)

	case instructions.OpSWI:
		return bus.SoftwareInterrupt(ins.Imm)

	default:
		mc.raiseUndefined(ins)
	}

	return nil
}

func (mc *CPU) dataProcessing(bus Bus, ins *instructions.Instruction) {
	op2, shifterCarry := mc.shifterOperand(ins.Operand)

	a := mc.R[ins.Rn]
	if ins.Operand.Kind == instructions.OperandShiftRegister {
		mc.cycles++
		if ins.Rn == rPC {
			a += mc.width()
		}
	}

	var result uint32
	logical := false
	carry := mc.Status.carryIn()

	// the operands of the addition used to calculate the carry and overflow
	// flags of arithmetic operations
	var x, y, c uint32

	switch ins.Op {
	case instructions.OpAND, instructions.OpTST:
		result = a & op2
		logical = true
	case instructions.OpEOR, instructions.OpTEQ:
		result = a ^ op2
		logical = true
	case instructions.OpSUB, instructions.OpCMP:
		result = a - op2
		x, y, c = a, ^op2, 1
	case instructions.OpRSB:
		result = op2 - a
		x, y, c = op2, ^a, 1
	case instructions.OpADD, instructions.OpCMN:
		result = a + op2
		x, y, c = a, op2, 0
	case instructions.OpADC:
		result = a + op2 + carry
		x, y, c = a, op2, carry
	case instructions.OpSBC:
		result = a + ^op2 + carry
		x, y, c = a, ^op2, carry
	case instructions.OpRSC:
		result = op2 + ^a + carry
		x, y, c = op2, ^a, carry
	case instructions.OpORR:
		result = a | op2
		logical = true
	case instructions.OpMOV:
		result = op2
		logical = true
	case instructions.OpBIC:
		result = a &^ op2
		logical = true
	case instructions.OpMVN:
		result = ^op2
		logical = true
	}

	if !ins.Op.IsTest() {
		mc.R[ins.Rd] = result
	}

	if !ins.SetFlags {
		return
	}

	// writing to the program counter with the S bit set returns from an
	// exception
	if ins.Rd == rPC && !ins.Op.IsTest() && mc.HasSPSR() {
		mc.unpackCPSR(bus, mc.SPSR)
		return
	}

	mc.Status.isNegative(result)
	mc.Status.isZero(result)
	if logical {
		mc.Status.Carry = shifterCarry
	} else {
		mc.Status.isCarry(x, y, c)
		mc.Status.isOverflow(x, y, c)
	}
}

func (mc *CPU) moveToStatus(bus Bus, ins *instructions.Instruction) {
	v, _ := mc.shifterOperand(ins.Operand)
	mask := ins.Mask

	if ins.SPSR {
		if mc.HasSPSR() {
			mask &= msrUser | msrPriv | msrState
			mc.SPSR = (mc.SPSR &^ mask) | (v & mask)
		}
		return
	}

	if mask&0xff000000 != 0 {
		mc.Status.setFlags(v)
	}

	if mc.Status.Mode.Privileged() && mask&0x000000ff != 0 {
		mode := Mode(v&maskMode) | 0x10
		if mode.Valid() {
			mc.SwitchMode(mode)
		}
		mc.Status.IRQDisable = v&maskIRQ == maskIRQ
		mc.Status.FIQDisable = v&maskFIQ == maskFIQ
	}

	// the interrupt disable flag might have been cleared
	bus.TestIRQ()
}

func (mc *CPU) multiply(ins *instructions.Instruction) {
	rs := mc.R[ins.Rs]
	mc.cycles += int64(memory.WaitMul(rs))

	switch ins.Op {
	case instructions.OpMUL, instructions.OpMLA:
		result := mc.R[ins.Rm] * rs
		if ins.Op == instructions.OpMLA {
			result += mc.R[ins.Rn]
			mc.cycles++
		}
		mc.R[ins.Rd] = result
		if ins.SetFlags {
			mc.Status.isNegative(result)
			mc.Status.isZero(result)
		}
		return
	}

	var result uint64

	switch ins.Op {
	case instructions.OpUMULL:
		result = uint64(mc.R[ins.Rm]) * uint64(rs)
		mc.cycles++
	case instructions.OpUMLAL:
		result = uint64(mc.R[ins.Rm]) * uint64(rs)
		result += uint64(mc.R[ins.Rd])<<32 | uint64(mc.R[ins.Rn])
		mc.cycles += 2
	case instructions.OpSMULL:
		result = uint64(int64(int32(mc.R[ins.Rm])) * int64(int32(rs)))
		mc.cycles++
	case instructions.OpSMLAL:
		result = uint64(int64(int32(mc.R[ins.Rm])) * int64(int32(rs)))
		result += uint64(mc.R[ins.Rd])<<32 | uint64(mc.R[ins.Rn])
		mc.cycles += 2
	}

	hi := uint32(result >> 32)
	lo := uint32(result)
	mc.R[ins.Rd] = hi
	mc.R[ins.Rn] = lo

	if ins.SetFlags {
		mc.Status.isNegative(hi)
		mc.Status.Zero = hi == 0 && lo == 0
	}
}
