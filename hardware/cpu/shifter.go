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
)

// readShiftedRegister returns the value of the register as seen by an instruction
// with a register specified shift. the program counter is one instruction
// further ahead in that case
func (mc *CPU) readShiftedRegister(r uint8) uint32 {
	if r == rPC {
		return mc.R[rPC] + mc.width()
	}
	return mc.R[r]
}

// shifterOperand returns the value of the second operand of a data processing
// instruction and the carry out of the barrel shifter
func (mc *CPU) shifterOperand(op instructions.Operand) (uint32, bool) {
	switch op.Kind {
	case instructions.OperandImmediate:
		if op.Rotate == 0 {
			return op.Imm, mc.Status.Carry
		}
		return op.Imm, op.Imm&0x80000000 == 0x80000000

	case instructions.OperandShiftImmediate:
		return shiftImmediate(op.Shift, mc.R[op.Rm], uint32(op.Amount), mc.Status.Carry)

	case instructions.OperandShiftRegister:
		n := mc.R[op.Rs] & 0xff
		return shiftRegister(op.Shift, mc.readShiftedRegister(op.Rm), n, mc.Status.Carry)
	}

	return 0, mc.Status.Carry
}

// shiftImmediate performs a shift by an amount encoded in the instruction. an
// amount of zero has a special meaning for every shift type except LSL
func shiftImmediate(shift instructions.ShiftType, v uint32, n uint32, carry bool) (uint32, bool) {
	switch shift {
	case instructions.LSL:
		if n == 0 {
			return v, carry
		}
		return v << n, (v>>(32-n))&0x01 == 0x01

	case instructions.LSR:
		if n == 0 {
			return 0, v&0x80000000 == 0x80000000
		}
		return v >> n, (v>>(n-1))&0x01 == 0x01

	case instructions.ASR:
		if n == 0 {
			if v&0x80000000 == 0x80000000 {
				return 0xffffffff, true
			}
			return 0, false
		}
		return uint32(int32(v) >> n), (v>>(n-1))&0x01 == 0x01

	case instructions.ROR:
		if n == 0 {
			// rotate right extended
			c := uint32(0)
			if carry {
				c = 0x80000000
			}
			return c | (v >> 1), v&0x01 == 0x01
		}
		return bits.RotateLeft32(v, -int(n)), (v>>(n-1))&0x01 == 0x01
	}

	return v, carry
}

// shiftRegister performs a shift by the bottom byte of a register. a shift of
// zero leaves the value and the carry unchanged
func shiftRegister(shift instructions.ShiftType, v uint32, n uint32, carry bool) (uint32, bool) {
	if n == 0 {
		return v, carry
	}

	switch shift {
	case instructions.LSL:
		switch {
		case n < 32:
			return v << n, (v>>(32-n))&0x01 == 0x01
		case n == 32:
			return 0, v&0x01 == 0x01
		}
		return 0, false

	case instructions.LSR:
		switch {
		case n < 32:
			return v >> n, (v>>(n-1))&0x01 == 0x01
		case n == 32:
			return 0, v&0x80000000 == 0x80000000
		}
		return 0, false

	case instructions.ASR:
		if n < 32 {
			return uint32(int32(v) >> n), (v>>(n-1))&0x01 == 0x01
		}
		if v&0x80000000 == 0x80000000 {
			return 0xffffffff, true
		}
		return 0, false

	case instructions.ROR:
		n &= 0x1f
		if n == 0 {
			return v, v&0x80000000 == 0x80000000
		}
		return bits.RotateLeft32(v, -int(n)), (v>>(n-1))&0x01 == 0x01
	}

	return v, carry
}

// addressOffset returns the offset of a single data transfer. shifts of the
// offset register never affect the carry flag
func (mc *CPU) addressOffset(a instructions.Addressing) uint32 {
	if !a.Register {
		return a.Offset
	}
	v, _ := shiftImmediate(a.Shift, mc.R[a.Rm], uint32(a.Amount), mc.Status.Carry)
	return v
}
