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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gophergba/hardware/cpu/instructions"
	"github.com/jetsetilly/gophergba/test"
)

func TestARMDataProcessing(t *testing.T) {
	// ADDS R0, R1, R2
	ins := instructions.DecodeARM(0xe0910002)
	test.ExpectEquality(t, ins.Op, instructions.OpADD)
	test.ExpectEquality(t, ins.Cond, instructions.AL)
	test.ExpectSuccess(t, ins.SetFlags)
	test.ExpectEquality(t, ins.Rd, 0)
	test.ExpectEquality(t, ins.Rn, 1)
	test.ExpectEquality(t, ins.Operand.Kind, instructions.OperandShiftImmediate)
	test.ExpectEquality(t, ins.Operand.Rm, 2)
	test.ExpectFailure(t, ins.WritesPC)

	// MOV R0, #$ff000000
	ins = instructions.DecodeARM(0xe3a004ff)
	test.ExpectEquality(t, ins.Op, instructions.OpMOV)
	test.ExpectEquality(t, ins.Operand.Kind, instructions.OperandImmediate)
	test.ExpectEquality(t, ins.Operand.Imm, 0xff000000)
	test.ExpectEquality(t, ins.Operand.Rotate, 8)

	// MOVNE R1, R2, LSL R3
	ins = instructions.DecodeARM(0x11a01312)
	test.ExpectEquality(t, ins.Cond, instructions.NE)
	test.ExpectEquality(t, ins.Operand.Kind, instructions.OperandShiftRegister)
	test.ExpectEquality(t, ins.Operand.Rs, 3)
	test.ExpectEquality(t, ins.Operand.Shift, instructions.LSL)

	// MOV PC, LR
	ins = instructions.DecodeARM(0xe1a0f00e)
	test.ExpectSuccess(t, ins.WritesPC)
	test.ExpectFailure(t, ins.FixedJump)

	// CMP R0, #1 never writes the PC
	ins = instructions.DecodeARM(0xe3500001)
	test.ExpectEquality(t, ins.Op, instructions.OpCMP)
	test.ExpectFailure(t, ins.WritesPC)
}

func TestARMStatusTransfer(t *testing.T) {
	// MRS R0, CPSR
	ins := instructions.DecodeARM(0xe10f0000)
	test.ExpectEquality(t, ins.Op, instructions.OpMRS)
	test.ExpectFailure(t, ins.SPSR)

	// MRS R0, SPSR
	ins = instructions.DecodeARM(0xe14f0000)
	test.ExpectEquality(t, ins.Op, instructions.OpMRS)
	test.ExpectSuccess(t, ins.SPSR)

	// MSR CPSR_fc, R0
	ins = instructions.DecodeARM(0xe129f000)
	test.ExpectEquality(t, ins.Op, instructions.OpMSR)
	test.ExpectEquality(t, ins.Mask, 0xff0000ff)
	test.ExpectEquality(t, ins.Operand.Rm, 0)

	// MSR CPSR_f, #$f0000000
	ins = instructions.DecodeARM(0xe328f20f)
	test.ExpectEquality(t, ins.Op, instructions.OpMSR)
	test.ExpectEquality(t, ins.Mask, 0xff000000)
	test.ExpectEquality(t, ins.Operand.Imm, 0xf0000000)
}

func TestARMBranch(t *testing.T) {
	ins := instructions.DecodeARM(0xe12fff1e)
	test.ExpectEquality(t, ins.Op, instructions.OpBX)
	test.ExpectEquality(t, ins.Rm, 14)
	test.ExpectSuccess(t, ins.WritesPC)

	ins = instructions.DecodeARM(0xea000000)
	test.ExpectEquality(t, ins.Op, instructions.OpB)
	test.ExpectEquality(t, ins.Imm, 0)
	test.ExpectSuccess(t, ins.WritesPC)
	test.ExpectSuccess(t, ins.FixedJump)

	ins = instructions.DecodeARM(0xebfffffe)
	test.ExpectEquality(t, ins.Op, instructions.OpBL)
	test.ExpectEquality(t, ins.Imm, 0xfffffff8)
}

func TestARMTransfer(t *testing.T) {
	// LDR R0, [R1, #4]
	ins := instructions.DecodeARM(0xe5910004)
	test.ExpectEquality(t, ins.Op, instructions.OpLDR)
	test.ExpectSuccess(t, ins.Addressing.Pre)
	test.ExpectSuccess(t, ins.Addressing.Up)
	test.ExpectFailure(t, ins.Addressing.Writeback)
	test.ExpectEquality(t, ins.Addressing.Offset, 4)

	// LDR R0, [R1], #4
	ins = instructions.DecodeARM(0xe4910004)
	test.ExpectFailure(t, ins.Addressing.Pre)
	test.ExpectSuccess(t, ins.Addressing.Writeback)

	// STRH R1, [R0, #2]
	ins = instructions.DecodeARM(0xe1c010b2)
	test.ExpectEquality(t, ins.Op, instructions.OpSTRH)
	test.ExpectEquality(t, ins.Addressing.Offset, 2)
	test.ExpectFailure(t, ins.Addressing.Register)

	// LDMIA SP!, {R0, PC}
	ins = instructions.DecodeARM(0xe8bd8001)
	test.ExpectEquality(t, ins.Op, instructions.OpLDM)
	test.ExpectEquality(t, ins.List, 0x8001)
	test.ExpectSuccess(t, ins.Addressing.Writeback)
	test.ExpectSuccess(t, ins.WritesPC)

	// SWP R0, R1, [R2]
	ins = instructions.DecodeARM(0xe1020091)
	test.ExpectEquality(t, ins.Op, instructions.OpSWP)
	test.ExpectEquality(t, ins.Rn, 2)
	test.ExpectEquality(t, ins.Rm, 1)
}

func TestARMMultiply(t *testing.T) {
	// MUL R0, R1, R2
	ins := instructions.DecodeARM(0xe0000291)
	test.ExpectEquality(t, ins.Op, instructions.OpMUL)
	test.ExpectEquality(t, ins.Rd, 0)
	test.ExpectEquality(t, ins.Rm, 1)
	test.ExpectEquality(t, ins.Rs, 2)

	// UMULL R0, R1, R2, R3
	ins = instructions.DecodeARM(0xe0810392)
	test.ExpectEquality(t, ins.Op, instructions.OpUMULL)
	test.ExpectEquality(t, ins.Rn, 0)
	test.ExpectEquality(t, ins.Rd, 1)
}

func TestARMSoftwareInterrupt(t *testing.T) {
	ins := instructions.DecodeARM(0xef050000)
	test.ExpectEquality(t, ins.Op, instructions.OpSWI)
	test.ExpectEquality(t, ins.Imm, 5)
	test.ExpectFailure(t, ins.WritesPC)
}

func TestARMUndefined(t *testing.T) {
	// coprocessor data operation
	ins := instructions.DecodeARM(0xee000000)
	test.ExpectEquality(t, ins.Op, instructions.OpUndefined)

	// architecturally undefined
	ins = instructions.DecodeARM(0xe6000010)
	test.ExpectEquality(t, ins.Op, instructions.OpUndefined)

	// multiply with a reserved opcode
	ins = instructions.DecodeARM(0xe0400291)
	test.ExpectEquality(t, ins.Op, instructions.OpUndefined)

	// the opcode is always recorded
	test.ExpectEquality(t, ins.Opcode, 0xe0400291)
}

func TestThumb(t *testing.T) {
	// ADDS R0, R1, #1
	ins := instructions.DecodeThumb(0x1c48)
	test.ExpectSuccess(t, ins.Thumb)
	test.ExpectEquality(t, ins.Op, instructions.OpADD)
	test.ExpectSuccess(t, ins.SetFlags)
	test.ExpectEquality(t, ins.Rn, 1)
	test.ExpectEquality(t, ins.Operand.Imm, 1)

	// MOVS R0, #1
	ins = instructions.DecodeThumb(0x2001)
	test.ExpectEquality(t, ins.Op, instructions.OpMOV)
	test.ExpectEquality(t, ins.Operand.Imm, 1)

	// NEG R0, R0
	ins = instructions.DecodeThumb(0x4240)
	test.ExpectEquality(t, ins.Op, instructions.OpRSB)
	test.ExpectEquality(t, ins.Operand.Kind, instructions.OperandImmediate)
	test.ExpectEquality(t, ins.Operand.Imm, 0)

	// MUL R0, R1
	ins = instructions.DecodeThumb(0x4348)
	test.ExpectEquality(t, ins.Op, instructions.OpMUL)
	test.ExpectEquality(t, ins.Rm, 1)
	test.ExpectEquality(t, ins.Rs, 0)

	// BX LR
	ins = instructions.DecodeThumb(0x4770)
	test.ExpectEquality(t, ins.Op, instructions.OpBX)
	test.ExpectEquality(t, ins.Rm, 14)

	// PUSH {LR}
	ins = instructions.DecodeThumb(0xb500)
	test.ExpectEquality(t, ins.Op, instructions.OpSTM)
	test.ExpectEquality(t, ins.List, 0x4000)
	test.ExpectSuccess(t, ins.Addressing.Pre)
	test.ExpectFailure(t, ins.Addressing.Up)

	// POP {PC}
	ins = instructions.DecodeThumb(0xbd00)
	test.ExpectEquality(t, ins.Op, instructions.OpLDM)
	test.ExpectEquality(t, ins.List, 0x8000)
	test.ExpectSuccess(t, ins.WritesPC)

	// BEQ with a negative offset
	ins = instructions.DecodeThumb(0xd0fe)
	test.ExpectEquality(t, ins.Op, instructions.OpB)
	test.ExpectEquality(t, ins.Cond, instructions.EQ)
	test.ExpectEquality(t, ins.Imm, 0xfffffffc)

	// long branch with link
	ins = instructions.DecodeThumb(0xf7ff)
	test.ExpectEquality(t, ins.Op, instructions.OpThumbBLHigh)
	test.ExpectEquality(t, ins.Imm, 0xfffff000)
	ins = instructions.DecodeThumb(0xfffe)
	test.ExpectEquality(t, ins.Op, instructions.OpThumbBLLow)
	test.ExpectEquality(t, ins.Imm, 0xffc)
	test.ExpectSuccess(t, ins.WritesPC)

	// SWI 5
	ins = instructions.DecodeThumb(0xdf05)
	test.ExpectEquality(t, ins.Op, instructions.OpSWI)
	test.ExpectEquality(t, ins.Imm, 5)

	// LDR R0, [PC, #4]
	ins = instructions.DecodeThumb(0x4801)
	test.ExpectEquality(t, ins.Op, instructions.OpThumbLoadPC)
	test.ExpectEquality(t, ins.Imm, 4)
}

func TestThumbUndefined(t *testing.T) {
	for _, opcode := range []uint16{0xde00, 0xe800, 0xb100, 0xbe00} {
		ins := instructions.DecodeThumb(opcode)
		test.ExpectEquality(t, ins.Op, instructions.OpUndefined, opcode)
	}
}

func TestPageSlots(t *testing.T) {
	pg := instructions.NewPage(0x400)
	test.ExpectEquality(t, len(pg.ARM), 0x100)
	test.ExpectEquality(t, len(pg.Thumb), 0x200)

	a := pg.Slot(0x08000404, 0x3ff, false)
	b := pg.Slot(0x08000004, 0x3ff, false)
	test.ExpectEquality(t, a, b)
	test.ExpectEquality(t, a.Valid(), false)

	a.Op = instructions.OpMOV
	a.Page = pg
	test.ExpectSuccess(t, b.Valid())
	pg.Invalid = true
	test.ExpectFailure(t, b.Valid())
}

func TestCondition(t *testing.T) {
	test.ExpectSuccess(t, instructions.AL.Passed(false, false, false, false))
	test.ExpectSuccess(t, instructions.EQ.Passed(false, true, false, false))
	test.ExpectFailure(t, instructions.NE.Passed(false, true, false, false))
	test.ExpectSuccess(t, instructions.HI.Passed(false, false, true, false))
	test.ExpectFailure(t, instructions.HI.Passed(false, true, true, false))
	test.ExpectSuccess(t, instructions.GE.Passed(true, false, false, true))
	test.ExpectSuccess(t, instructions.LT.Passed(true, false, false, false))
	test.ExpectFailure(t, instructions.GT.Passed(false, true, false, false))
	test.ExpectSuccess(t, instructions.LE.Passed(false, true, false, false))
}
