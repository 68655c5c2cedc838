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
	"testing"

	"github.com/jetsetilly/gophergba/hardware/cpu/instructions"
	"github.com/jetsetilly/gophergba/test"
)

func TestShiftImmediate(t *testing.T) {
	v, c := shiftImmediate(instructions.LSL, 0x80000001, 0, false)
	test.ExpectEquality(t, v, uint32(0x80000001))
	test.ExpectFailure(t, c)

	v, c = shiftImmediate(instructions.LSL, 0x80000001, 1, false)
	test.ExpectEquality(t, v, uint32(0x00000002))
	test.ExpectSuccess(t, c)

	// an amount of zero means 32 for LSR and ASR
	v, c = shiftImmediate(instructions.LSR, 0x80000000, 0, false)
	test.ExpectEquality(t, v, uint32(0))
	test.ExpectSuccess(t, c)

	v, c = shiftImmediate(instructions.ASR, 0x80000000, 0, false)
	test.ExpectEquality(t, v, uint32(0xffffffff))
	test.ExpectSuccess(t, c)

	v, c = shiftImmediate(instructions.ASR, 0x80000010, 4, false)
	test.ExpectEquality(t, v, uint32(0xf8000001))
	test.ExpectFailure(t, c)

	// rotate right extended
	v, c = shiftImmediate(instructions.ROR, 0x00000003, 0, true)
	test.ExpectEquality(t, v, uint32(0x80000001))
	test.ExpectSuccess(t, c)

	v, c = shiftImmediate(instructions.ROR, 0x000000f1, 4, false)
	test.ExpectEquality(t, v, uint32(0x1000000f))
	test.ExpectFailure(t, c)
}

func TestShiftRegister(t *testing.T) {
	// zero leaves everything unchanged
	v, c := shiftRegister(instructions.LSR, 0x80000000, 0, true)
	test.ExpectEquality(t, v, uint32(0x80000000))
	test.ExpectSuccess(t, c)

	v, c = shiftRegister(instructions.LSL, 0x00000001, 32, false)
	test.ExpectEquality(t, v, uint32(0))
	test.ExpectSuccess(t, c)

	v, c = shiftRegister(instructions.LSL, 0xffffffff, 33, true)
	test.ExpectEquality(t, v, uint32(0))
	test.ExpectFailure(t, c)

	v, c = shiftRegister(instructions.LSR, 0x80000000, 32, false)
	test.ExpectEquality(t, v, uint32(0))
	test.ExpectSuccess(t, c)

	v, c = shiftRegister(instructions.LSR, 0xffffffff, 40, true)
	test.ExpectEquality(t, v, uint32(0))
	test.ExpectFailure(t, c)

	v, c = shiftRegister(instructions.ASR, 0x80000000, 100, false)
	test.ExpectEquality(t, v, uint32(0xffffffff))
	test.ExpectSuccess(t, c)

	v, c = shiftRegister(instructions.ASR, 0x40000000, 32, true)
	test.ExpectEquality(t, v, uint32(0))
	test.ExpectFailure(t, c)

	// a rotation by a multiple of 32 leaves the value but sets the carry from
	// bit 31
	v, c = shiftRegister(instructions.ROR, 0x80000001, 32, false)
	test.ExpectEquality(t, v, uint32(0x80000001))
	test.ExpectSuccess(t, c)

	v, c = shiftRegister(instructions.ROR, 0x00000001, 33, false)
	test.ExpectEquality(t, v, uint32(0x80000000))
	test.ExpectSuccess(t, c)
}

func TestImmediateOperand(t *testing.T) {
	mc := &CPU{}
	mc.Status.Carry = true

	// no rotation leaves the carry flag alone
	v, c := mc.shifterOperand(instructions.Operand{Kind: instructions.OperandImmediate, Imm: 0xff})
	test.ExpectEquality(t, v, uint32(0xff))
	test.ExpectSuccess(t, c)

	v, c = mc.shifterOperand(instructions.Operand{Kind: instructions.OperandImmediate, Imm: 0x3f000000, Rotate: 8})
	test.ExpectEquality(t, v, uint32(0x3f000000))
	test.ExpectFailure(t, c)
}
