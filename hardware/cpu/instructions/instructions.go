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

// Op identifies the operation of a decoded instruction. Thumb instructions
// that have an exact ARM equivalent decode to the ARM operation. The few
// Thumb forms without an ARM equivalent have their own Op.
type Op uint8

// List of valid Op values.
const (
	// OpNone indicates an empty cache slot. It is never the result of decoding
	OpNone Op = iota

	// the bit pattern does not decode to a supported instruction. executing
	// an OpUndefined instruction enters the undefined instruction exception
	OpUndefined

	// data processing. the order matches the four bit opcode field
	OpAND
	OpEOR
	OpSUB
	OpRSB
	OpADD
	OpADC
	OpSBC
	OpRSC
	OpTST
	OpTEQ
	OpCMP
	OpCMN
	OpORR
	OpMOV
	OpBIC
	OpMVN

	// status register transfer
	OpMRS
	OpMSR

	// branching
	OpB
	OpBL
	OpBX

	// multiplication
	OpMUL
	OpMLA
	OpUMULL
	OpUMLAL
	OpSMULL
	OpSMLAL

	// single data transfer
	OpLDR
	OpLDRB
	OpSTR
	OpSTRB
	OpLDRH
	OpLDRSH
	OpLDRSB
	OpSTRH

	// block data transfer
	OpLDM
	OpSTM

	// atomic swap
	OpSWP
	OpSWPB

	// software interrupt
	OpSWI

	// thumb forms with no ARM equivalent

	// LDR Rd, [PC, #Imm] with the PC word aligned
	OpThumbLoadPC

	// ADD Rd, PC, #Imm with the PC word aligned
	OpThumbAddPC

	// first and second halves of the long branch with link
	OpThumbBLHigh
	OpThumbBLLow
)

// data processing operations that write no result register.
func (op Op) IsTest() bool {
	return op >= OpTST && op <= OpCMN
}

// IsDataProcessing returns true if the operation uses the shifter operand.
func (op Op) IsDataProcessing() bool {
	return op >= OpAND && op <= OpMVN
}

// IsStore returns true if the operation writes to memory.
func (op Op) IsStore() bool {
	switch op {
	case OpSTR, OpSTRB, OpSTRH, OpSTM, OpSWP, OpSWPB:
		return true
	}
	return false
}

// ShiftType is the operation performed by the barrel shifter.
type ShiftType uint8

// List of valid ShiftType values. The order matches the two bit shift field.
const (
	LSL ShiftType = iota
	LSR
	ASR
	ROR
)

func (s ShiftType) String() string {
	switch s {
	case LSL:
		return "LSL"
	case LSR:
		return "LSR"
	case ASR:
		return "ASR"
	case ROR:
		return "ROR"
	}
	return "???"
}

// OperandKind describes how the shifter operand of a data processing
// instruction is formed.
type OperandKind uint8

// List of valid OperandKind values.
const (
	// an eight bit value rotated right by an even amount
	OperandImmediate OperandKind = iota

	// register Rm shifted by an amount encoded in the instruction
	OperandShiftImmediate

	// register Rm shifted by the bottom byte of register Rs
	OperandShiftRegister
)

// Operand is the shifter operand of a data processing instruction. It is
// also used for the source value of MSR.
type Operand struct {
	Kind  OperandKind
	Shift ShiftType

	Rm uint8
	Rs uint8

	// immediate shift amount. an amount of zero has the architectural
	// meaning of the shift type. for LSR and ASR it means 32 and for ROR it
	// means rotate right extended
	Amount uint8

	// the already rotated immediate value. a non-zero Rotate means the carry
	// out is bit 31 of Imm
	Imm    uint32
	Rotate uint8
}

// Addressing describes how the address of a single or block data transfer
// is calculated.
type Addressing struct {
	// offset applied before the transfer rather than after
	Pre bool

	// offset is added rather than subtracted
	Up bool

	// base register is updated with the calculated address. post indexed
	// transfers always write back
	Writeback bool

	// offset is register Rm shifted by Amount. otherwise the offset is the
	// Offset field
	Register bool
	Rm       uint8
	Shift    ShiftType
	Amount   uint8

	Offset uint32
}

// Instruction is a decoded opcode. The fields that are meaningful depend on
// the Op field.
type Instruction struct {
	Op   Op
	Cond Condition

	Rd uint8
	Rn uint8
	Rs uint8
	Rm uint8

	// data processing and multiply instructions update the status flags
	SetFlags bool

	// MRS and MSR act on the SPSR rather than the CPSR
	SPSR bool

	// block transfers using the user mode register bank (or restoring the
	// CPSR when PC is loaded)
	UserBank bool

	// bits of the status register affected by MSR
	Mask uint32

	// branch offset, SWI comment or Thumb immediate
	Imm uint32

	Operand    Operand
	Addressing Addressing

	// block transfer register list
	List uint16

	// the instruction can write to the program counter and the pipeline must
	// be refilled
	WritesPC bool

	// the program counter after a write is always the same and the next
	// instruction can be chained
	FixedJump bool

	// location and original bit pattern of the instruction
	Thumb   bool
	Address uint32
	Opcode  uint32

	// the instruction that followed this one the last time it was executed
	Next *Instruction

	// the cache page that owns the instruction
	Page *Page
}

// Width returns the number of bytes occupied by the instruction.
func (ins *Instruction) Width() uint32 {
	if ins.Thumb {
		return 2
	}
	return 4
}

// Valid returns false if the instruction belongs to a cache page that has
// been invalidated.
func (ins *Instruction) Valid() bool {
	return ins.Op != OpNone && (ins.Page == nil || !ins.Page.Invalid)
}
