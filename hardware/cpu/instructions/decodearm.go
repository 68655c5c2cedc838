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

import "math/bits"

const rPC = 15

// DecodeARM decodes a 32 bit opcode. Bit patterns that are not valid
// instructions on this architecture decode to OpUndefined.
func DecodeARM(opcode uint32) Instruction {
	ins := decodeARM(opcode)
	ins.Opcode = opcode
	if ins.Cond == NV {
		ins.Cond = AL
	}
	return ins
}

func decodeARM(opcode uint32) Instruction {
	cond := Condition(opcode >> 28)
	class := opcode & 0x0e000000

	// branch and exchange is tested for first because its bit pattern
	// overlaps with the data processing class
	if opcode&0x0ffffff0 == 0x012fff10 {
		return Instruction{
			Op:       OpBX,
			Cond:     cond,
			Rm:       uint8(opcode & 0x0f),
			WritesPC: true,
		}
	}

	if class&0x0c000000 == 0 && (opcode&0x02000000 == 0x02000000 || opcode&0x90 != 0x90) {
		return decodeARMDataProcessing(opcode, cond)
	}

	if opcode&0x0fb00ff0 == 0x01000090 {
		ins := Instruction{
			Op:   OpSWP,
			Cond: cond,
			Rm:   uint8(opcode & 0x0f),
			Rd:   uint8((opcode >> 12) & 0x0f),
			Rn:   uint8((opcode >> 16) & 0x0f),
		}
		if opcode&0x00400000 == 0x00400000 {
			ins.Op = OpSWPB
		}
		ins.WritesPC = ins.Rd == rPC
		return ins
	}

	switch class {
	case 0x00000000:
		if opcode&0x010000f0 == 0x00000090 {
			return decodeARMMultiply(opcode, cond)
		}
		return decodeARMHalfword(opcode, cond)

	case 0x06000000:
		// bit 4 set in the register offset form of the single data transfer
		// class is architecturally undefined
		if opcode&0x10 == 0x10 {
			return Instruction{Op: OpUndefined, Cond: cond}
		}
		return decodeARMSingleTransfer(opcode, cond)

	case 0x04000000:
		return decodeARMSingleTransfer(opcode, cond)

	case 0x08000000:
		return decodeARMBlockTransfer(opcode, cond)

	case 0x0a000000:
		offset := opcode & 0x00ffffff
		if offset&0x00800000 == 0x00800000 {
			offset |= 0xff000000
		}
		ins := Instruction{
			Op:        OpB,
			Cond:      cond,
			Imm:       offset << 2,
			WritesPC:  true,
			FixedJump: true,
		}
		if opcode&0x01000000 == 0x01000000 {
			ins.Op = OpBL
		}
		return ins

	case 0x0e000000:
		if opcode&0x0f000000 == 0x0f000000 {
			// the BIOS function number is in bits 16 to 23 of the comment
			// field
			return Instruction{
				Op:   OpSWI,
				Cond: cond,
				Imm:  (opcode & 0x00ffffff) >> 16,
			}
		}
	}

	// coprocessor instructions and anything else unrecognised
	return Instruction{Op: OpUndefined, Cond: cond}
}

func decodeARMDataProcessing(opcode uint32, cond Condition) Instruction {
	ins := Instruction{
		Cond:     cond,
		Op:       OpAND + Op((opcode>>21)&0x0f),
		SetFlags: opcode&0x00100000 == 0x00100000,
		Rn:       uint8((opcode >> 16) & 0x0f),
		Rd:       uint8((opcode >> 12) & 0x0f),
	}

	ins.Operand = decodeShifterOperand(opcode)

	// test instructions without the S bit are status register transfers
	if opcode&0x01900000 == 0x01000000 {
		ins.SetFlags = false
		ins.SPSR = opcode&0x00400000 == 0x00400000

		if opcode&0x00200000 == 0x00200000 {
			ins.Op = OpMSR
			ins.Rd = 0
			ins.Rm = uint8(opcode & 0x0f)
			if opcode&0x00010000 == 0x00010000 {
				ins.Mask |= 0x000000ff
			}
			if opcode&0x00020000 == 0x00020000 {
				ins.Mask |= 0x0000ff00
			}
			if opcode&0x00040000 == 0x00040000 {
				ins.Mask |= 0x00ff0000
			}
			if opcode&0x00080000 == 0x00080000 {
				ins.Mask |= 0xff000000
			}

			// the register form of MSR has no shift
			if ins.Operand.Kind != OperandImmediate {
				ins.Operand = Operand{Kind: OperandShiftImmediate, Shift: LSL, Rm: ins.Rm}
			}
			return ins
		}

		ins.Op = OpMRS
		ins.Operand = Operand{}
		ins.WritesPC = ins.Rd == rPC
		return ins
	}

	ins.WritesPC = ins.Rd == rPC && !ins.Op.IsTest()
	return ins
}

func decodeShifterOperand(opcode uint32) Operand {
	if opcode&0x02000000 == 0x02000000 {
		rotate := (opcode & 0x0f00) >> 7
		return Operand{
			Kind:   OperandImmediate,
			Imm:    bits.RotateLeft32(opcode&0xff, -int(rotate)),
			Rotate: uint8(rotate),
		}
	}

	op := Operand{
		Shift: ShiftType((opcode >> 5) & 0x03),
		Rm:    uint8(opcode & 0x0f),
	}
	if opcode&0x10 == 0x10 {
		op.Kind = OperandShiftRegister
		op.Rs = uint8((opcode >> 8) & 0x0f)
	} else {
		op.Kind = OperandShiftImmediate
		op.Amount = uint8((opcode & 0x0f80) >> 7)
	}
	return op
}

func decodeARMMultiply(opcode uint32, cond Condition) Instruction {
	ins := Instruction{
		Cond:     cond,
		SetFlags: opcode&0x00100000 == 0x00100000,
		Rd:       uint8((opcode >> 16) & 0x0f),
		Rn:       uint8((opcode >> 12) & 0x0f),
		Rs:       uint8((opcode >> 8) & 0x0f),
		Rm:       uint8(opcode & 0x0f),
	}

	// for the long multiplies Rd is the high word and Rn the low word
	switch opcode & 0x00e00000 {
	case 0x00000000:
		ins.Op = OpMUL
	case 0x00200000:
		ins.Op = OpMLA
	case 0x00800000:
		ins.Op = OpUMULL
	case 0x00a00000:
		ins.Op = OpUMLAL
	case 0x00c00000:
		ins.Op = OpSMULL
	case 0x00e00000:
		ins.Op = OpSMLAL
	default:
		return Instruction{Op: OpUndefined, Cond: cond}
	}

	ins.WritesPC = ins.Rd == rPC
	return ins
}

func decodeARMHalfword(opcode uint32, cond Condition) Instruction {
	load := opcode&0x00100000 == 0x00100000
	h := opcode&0x20 == 0x20
	s := opcode&0x40 == 0x40

	ins := Instruction{
		Cond: cond,
		Rn:   uint8((opcode >> 16) & 0x0f),
		Rd:   uint8((opcode >> 12) & 0x0f),
	}

	switch {
	case load && h && s:
		ins.Op = OpLDRSH
	case load && h:
		ins.Op = OpLDRH
	case load && s:
		ins.Op = OpLDRSB
	case !load && h && !s:
		ins.Op = OpSTRH
	default:
		return Instruction{Op: OpUndefined, Cond: cond}
	}

	ins.Addressing = Addressing{
		Pre: opcode&0x01000000 == 0x01000000,
		Up:  opcode&0x00800000 == 0x00800000,
	}
	ins.Addressing.Writeback = !ins.Addressing.Pre || opcode&0x00200000 == 0x00200000

	if opcode&0x00400000 == 0x00400000 {
		ins.Addressing.Offset = (opcode&0x0f00)>>4 | opcode&0x0f
	} else {
		ins.Addressing.Register = true
		ins.Addressing.Rm = uint8(opcode & 0x0f)
	}

	ins.WritesPC = (load && ins.Rd == rPC) || (ins.Addressing.Writeback && ins.Rn == rPC)
	return ins
}

func decodeARMSingleTransfer(opcode uint32, cond Condition) Instruction {
	load := opcode&0x00100000 == 0x00100000
	byteWidth := opcode&0x00400000 == 0x00400000

	ins := Instruction{
		Cond: cond,
		Rn:   uint8((opcode >> 16) & 0x0f),
		Rd:   uint8((opcode >> 12) & 0x0f),
	}

	switch {
	case load && byteWidth:
		ins.Op = OpLDRB
	case load:
		ins.Op = OpLDR
	case byteWidth:
		ins.Op = OpSTRB
	default:
		ins.Op = OpSTR
	}

	// the W bit in a post indexed transfer requests a user mode access. there
	// is no memory protection so it is the same as a normal post indexed
	// transfer
	ins.Addressing = Addressing{
		Pre: opcode&0x01000000 == 0x01000000,
		Up:  opcode&0x00800000 == 0x00800000,
	}
	ins.Addressing.Writeback = !ins.Addressing.Pre || opcode&0x00200000 == 0x00200000

	if opcode&0x02000000 == 0x02000000 {
		ins.Addressing.Register = true
		ins.Addressing.Rm = uint8(opcode & 0x0f)
		ins.Addressing.Shift = ShiftType((opcode >> 5) & 0x03)
		ins.Addressing.Amount = uint8((opcode & 0x0f80) >> 7)
	} else {
		ins.Addressing.Offset = opcode & 0x0fff
	}

	if load {
		ins.WritesPC = ins.Rd == rPC || (ins.Addressing.Writeback && ins.Rn == rPC)
	} else {
		ins.WritesPC = ins.Addressing.Writeback && ins.Rn == rPC
	}
	return ins
}

func decodeARMBlockTransfer(opcode uint32, cond Condition) Instruction {
	ins := Instruction{
		Op:       OpSTM,
		Cond:     cond,
		Rn:       uint8((opcode >> 16) & 0x0f),
		List:     uint16(opcode & 0xffff),
		UserBank: opcode&0x00400000 == 0x00400000,
		Addressing: Addressing{
			Pre:       opcode&0x01000000 == 0x01000000,
			Up:        opcode&0x00800000 == 0x00800000,
			Writeback: opcode&0x00200000 == 0x00200000,
		},
	}

	if opcode&0x00100000 == 0x00100000 {
		ins.Op = OpLDM
		ins.WritesPC = ins.List&0x8000 == 0x8000 || ins.List == 0
	}
	return ins
}
