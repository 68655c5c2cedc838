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

const (
	rSP = 13
	rLR = 14
)

// DecodeThumb decodes a 16 bit opcode. Thumb instructions are decoded to the
// equivalent ARM operation wherever one exists.
func DecodeThumb(opcode uint16) Instruction {
	ins := decodeThumb(opcode)
	ins.Opcode = uint32(opcode)
	ins.Thumb = true
	return ins
}

func decodeThumb(opcode uint16) Instruction {
	// working backwards up the table in Figure 5-1 of the ARM7TDMI Data Sheet
	if opcode&0xf000 == 0xf000 {
		// format 19 - Long branch with link
		offset := uint32(opcode & 0x07ff)
		if opcode&0x0800 == 0x0800 {
			return Instruction{Op: OpThumbBLLow, Cond: AL, Imm: offset << 1, WritesPC: true}
		}
		if offset&0x0400 == 0x0400 {
			offset |= 0xfffff800
		}
		return Instruction{Op: OpThumbBLHigh, Cond: AL, Imm: offset << 12}
	} else if opcode&0xf000 == 0xe000 {
		// format 18 - Unconditional branch
		if opcode&0x0800 == 0x0800 {
			return Instruction{Op: OpUndefined, Cond: AL}
		}
		offset := uint32(opcode & 0x07ff)
		if offset&0x0400 == 0x0400 {
			offset |= 0xfffff800
		}
		return Instruction{Op: OpB, Cond: AL, Imm: offset << 1, WritesPC: true, FixedJump: true}
	} else if opcode&0xff00 == 0xdf00 {
		// format 17 - Software interrupt
		return Instruction{Op: OpSWI, Cond: AL, Imm: uint32(opcode & 0xff)}
	} else if opcode&0xf000 == 0xd000 {
		// format 16 - Conditional branch
		cond := Condition((opcode >> 8) & 0x0f)
		if cond == AL {
			return Instruction{Op: OpUndefined, Cond: AL}
		}
		offset := uint32(opcode & 0xff)
		if offset&0x80 == 0x80 {
			offset |= 0xffffff00
		}
		return Instruction{Op: OpB, Cond: cond, Imm: offset << 1, WritesPC: true, FixedJump: true}
	} else if opcode&0xf000 == 0xc000 {
		// format 15 - Multiple load/store
		ins := Instruction{
			Op:         OpSTM,
			Cond:       AL,
			Rn:         uint8((opcode >> 8) & 0x07),
			List:       opcode & 0xff,
			Addressing: Addressing{Up: true, Writeback: true},
		}
		if opcode&0x0800 == 0x0800 {
			ins.Op = OpLDM
			ins.WritesPC = ins.List == 0
		}
		return ins
	} else if opcode&0xf600 == 0xb400 {
		// format 14 - Push/pop registers
		list := opcode & 0xff
		if opcode&0x0800 == 0x0800 {
			ins := Instruction{
				Op:         OpLDM,
				Cond:       AL,
				Rn:         rSP,
				Addressing: Addressing{Up: true, Writeback: true},
			}
			if opcode&0x0100 == 0x0100 {
				list |= 0x8000
			}
			ins.List = list
			ins.WritesPC = list&0x8000 == 0x8000 || list == 0
			return ins
		}
		if opcode&0x0100 == 0x0100 {
			list |= 0x4000
		}
		return Instruction{
			Op:         OpSTM,
			Cond:       AL,
			Rn:         rSP,
			List:       list,
			Addressing: Addressing{Pre: true, Writeback: true},
		}
	} else if opcode&0xff00 == 0xb000 {
		// format 13 - Add offset to stack pointer
		ins := Instruction{
			Op:      OpADD,
			Cond:    AL,
			Rd:      rSP,
			Rn:      rSP,
			Operand: Operand{Kind: OperandImmediate, Imm: uint32(opcode&0x7f) << 2},
		}
		if opcode&0x80 == 0x80 {
			ins.Op = OpSUB
		}
		return ins
	} else if opcode&0xf000 == 0xa000 {
		// format 12 - Load address
		rd := uint8((opcode >> 8) & 0x07)
		imm := uint32(opcode&0xff) << 2
		if opcode&0x0800 == 0x0800 {
			return Instruction{
				Op:      OpADD,
				Cond:    AL,
				Rd:      rd,
				Rn:      rSP,
				Operand: Operand{Kind: OperandImmediate, Imm: imm},
			}
		}
		return Instruction{Op: OpThumbAddPC, Cond: AL, Rd: rd, Imm: imm}
	} else if opcode&0xf000 == 0x9000 {
		// format 11 - SP-relative load/store
		ins := Instruction{
			Op:   OpSTR,
			Cond: AL,
			Rd:   uint8((opcode >> 8) & 0x07),
			Rn:   rSP,
			Addressing: Addressing{
				Pre:    true,
				Up:     true,
				Offset: uint32(opcode&0xff) << 2,
			},
		}
		if opcode&0x0800 == 0x0800 {
			ins.Op = OpLDR
		}
		return ins
	} else if opcode&0xf000 == 0x8000 {
		// format 10 - Load/store halfword
		ins := Instruction{
			Op:   OpSTRH,
			Cond: AL,
			Rd:   uint8(opcode & 0x07),
			Rn:   uint8((opcode >> 3) & 0x07),
			Addressing: Addressing{
				Pre:    true,
				Up:     true,
				Offset: uint32((opcode>>6)&0x1f) << 1,
			},
		}
		if opcode&0x0800 == 0x0800 {
			ins.Op = OpLDRH
		}
		return ins
	} else if opcode&0xe000 == 0x6000 {
		// format 9 - Load/store with immediate offset
		offset := uint32((opcode >> 6) & 0x1f)
		ins := Instruction{
			Cond: AL,
			Rd:   uint8(opcode & 0x07),
			Rn:   uint8((opcode >> 3) & 0x07),
		}
		load := opcode&0x0800 == 0x0800
		if opcode&0x1000 == 0x1000 {
			if load {
				ins.Op = OpLDRB
			} else {
				ins.Op = OpSTRB
			}
		} else {
			offset <<= 2
			if load {
				ins.Op = OpLDR
			} else {
				ins.Op = OpSTR
			}
		}
		ins.Addressing = Addressing{Pre: true, Up: true, Offset: offset}
		return ins
	} else if opcode&0xf200 == 0x5200 {
		// format 8 - Load/store sign-extended byte/halfword
		ins := thumbRegisterOffset(opcode)
		switch (opcode >> 10) & 0x03 {
		case 0b00:
			ins.Op = OpSTRH
		case 0b01:
			ins.Op = OpLDRSB
		case 0b10:
			ins.Op = OpLDRH
		case 0b11:
			ins.Op = OpLDRSH
		}
		return ins
	} else if opcode&0xf200 == 0x5000 {
		// format 7 - Load/store with register offset
		ins := thumbRegisterOffset(opcode)
		switch (opcode >> 10) & 0x03 {
		case 0b00:
			ins.Op = OpSTR
		case 0b01:
			ins.Op = OpSTRB
		case 0b10:
			ins.Op = OpLDR
		case 0b11:
			ins.Op = OpLDRB
		}
		return ins
	} else if opcode&0xf800 == 0x4800 {
		// format 6 - PC-relative load
		return Instruction{
			Op:   OpThumbLoadPC,
			Cond: AL,
			Rd:   uint8((opcode >> 8) & 0x07),
			Imm:  uint32(opcode&0xff) << 2,
		}
	} else if opcode&0xfc00 == 0x4400 {
		// format 5 - Hi register operations/branch exchange
		return decodeThumbHiRegisterOps(opcode)
	} else if opcode&0xfc00 == 0x4000 {
		// format 4 - ALU operations
		return decodeThumbALUOperations(opcode)
	} else if opcode&0xe000 == 0x2000 {
		// format 3 - Move/compare/add/subtract immediate
		rd := uint8((opcode >> 8) & 0x07)
		ins := Instruction{
			Cond:     AL,
			Rd:       rd,
			Rn:       rd,
			SetFlags: true,
			Operand:  Operand{Kind: OperandImmediate, Imm: uint32(opcode & 0xff)},
		}
		switch (opcode >> 11) & 0x03 {
		case 0b00:
			ins.Op = OpMOV
		case 0b01:
			ins.Op = OpCMP
		case 0b10:
			ins.Op = OpADD
		case 0b11:
			ins.Op = OpSUB
		}
		return ins
	} else if opcode&0xf800 == 0x1800 {
		// format 2 - Add/subtract
		ins := Instruction{
			Op:       OpADD,
			Cond:     AL,
			Rd:       uint8(opcode & 0x07),
			Rn:       uint8((opcode >> 3) & 0x07),
			SetFlags: true,
		}
		if opcode&0x0200 == 0x0200 {
			ins.Op = OpSUB
		}
		value := uint8((opcode >> 6) & 0x07)
		if opcode&0x0400 == 0x0400 {
			ins.Operand = Operand{Kind: OperandImmediate, Imm: uint32(value)}
		} else {
			ins.Operand = Operand{Kind: OperandShiftImmediate, Shift: LSL, Rm: value}
		}
		return ins
	} else if opcode&0xe000 != 0x0000 {
		return Instruction{Op: OpUndefined, Cond: AL}
	}

	// format 1 - Move shifted register
	return Instruction{
		Op:       OpMOV,
		Cond:     AL,
		Rd:       uint8(opcode & 0x07),
		SetFlags: true,
		Operand: Operand{
			Kind:   OperandShiftImmediate,
			Shift:  ShiftType((opcode >> 11) & 0x03),
			Rm:     uint8((opcode >> 3) & 0x07),
			Amount: uint8((opcode >> 6) & 0x1f),
		},
	}
}

func thumbRegisterOffset(opcode uint16) Instruction {
	return Instruction{
		Cond: AL,
		Rd:   uint8(opcode & 0x07),
		Rn:   uint8((opcode >> 3) & 0x07),
		Addressing: Addressing{
			Pre:      true,
			Up:       true,
			Register: true,
			Rm:       uint8((opcode >> 6) & 0x07),
		},
	}
}

func decodeThumbHiRegisterOps(opcode uint16) Instruction {
	rd := uint8(opcode&0x07) | uint8((opcode>>4)&0x08)
	rs := uint8((opcode>>3)&0x07) | uint8((opcode>>3)&0x08)

	ins := Instruction{
		Cond:    AL,
		Rd:      rd,
		Rn:      rd,
		Operand: Operand{Kind: OperandShiftImmediate, Shift: LSL, Rm: rs},
	}

	switch (opcode >> 8) & 0x03 {
	case 0b00:
		ins.Op = OpADD
		ins.WritesPC = rd == rPC
	case 0b01:
		ins.Op = OpCMP
		ins.SetFlags = true
	case 0b10:
		ins.Op = OpMOV
		ins.WritesPC = rd == rPC
	case 0b11:
		return Instruction{Op: OpBX, Cond: AL, Rm: rs, WritesPC: true}
	}
	return ins
}

func decodeThumbALUOperations(opcode uint16) Instruction {
	rd := uint8(opcode & 0x07)
	rs := uint8((opcode >> 3) & 0x07)

	ins := Instruction{
		Cond:     AL,
		Rd:       rd,
		Rn:       rd,
		SetFlags: true,
		Operand:  Operand{Kind: OperandShiftImmediate, Shift: LSL, Rm: rs},
	}

	shiftByRegister := func(shift ShiftType) {
		ins.Op = OpMOV
		ins.Operand = Operand{Kind: OperandShiftRegister, Shift: shift, Rm: rd, Rs: rs}
	}

	switch (opcode >> 6) & 0x0f {
	case 0b0000:
		ins.Op = OpAND
	case 0b0001:
		ins.Op = OpEOR
	case 0b0010:
		shiftByRegister(LSL)
	case 0b0011:
		shiftByRegister(LSR)
	case 0b0100:
		shiftByRegister(ASR)
	case 0b0101:
		ins.Op = OpADC
	case 0b0110:
		ins.Op = OpSBC
	case 0b0111:
		shiftByRegister(ROR)
	case 0b1000:
		ins.Op = OpTST
	case 0b1001:
		// NEG is a reverse subtract from zero
		ins.Op = OpRSB
		ins.Rn = rs
		ins.Operand = Operand{Kind: OperandImmediate}
	case 0b1010:
		ins.Op = OpCMP
	case 0b1011:
		ins.Op = OpCMN
	case 0b1100:
		ins.Op = OpORR
	case 0b1101:
		ins.Op = OpMUL
		ins.Rm = rs
		ins.Rs = rd
		ins.Operand = Operand{}
	case 0b1110:
		ins.Op = OpBIC
	case 0b1111:
		ins.Op = OpMVN
	}
	return ins
}
