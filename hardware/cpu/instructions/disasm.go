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

import (
	"fmt"
	"strings"
)

// DisasmEntry is the disassembled form of a single instruction.
type DisasmEntry struct {
	// the address value. the formatted value is in the Address field
	Addr uint32

	// the raw opcode. only the lower 16 bits are used for Thumb instructions
	Opcode uint32
	Thumb  bool

	// formatted address for use by disassemblies
	Address string

	// the operator is the mnemonic, including the condition and any S suffix.
	// the operand is the specific details of the instruction. what registers
	// and what values are used, etc.
	Operator string
	Operand  string
}

func (e DisasmEntry) String() string {
	var opcode string
	if e.Thumb {
		opcode = fmt.Sprintf("%04x    ", e.Opcode)
	} else {
		opcode = fmt.Sprintf("%08x", e.Opcode)
	}
	if e.Operand == "" {
		return fmt.Sprintf("%s %s %s", e.Address, opcode, e.Operator)
	}
	return fmt.Sprintf("%s %s %-8s %s", e.Address, opcode, e.Operator, e.Operand)
}

var opNames = map[Op]string{
	OpUndefined:   "UND",
	OpAND:         "AND",
	OpEOR:         "EOR",
	OpSUB:         "SUB",
	OpRSB:         "RSB",
	OpADD:         "ADD",
	OpADC:         "ADC",
	OpSBC:         "SBC",
	OpRSC:         "RSC",
	OpTST:         "TST",
	OpTEQ:         "TEQ",
	OpCMP:         "CMP",
	OpCMN:         "CMN",
	OpORR:         "ORR",
	OpMOV:         "MOV",
	OpBIC:         "BIC",
	OpMVN:         "MVN",
	OpMRS:         "MRS",
	OpMSR:         "MSR",
	OpB:           "B",
	OpBL:          "BL",
	OpBX:          "BX",
	OpMUL:         "MUL",
	OpMLA:         "MLA",
	OpUMULL:       "UMULL",
	OpUMLAL:       "UMLAL",
	OpSMULL:       "SMULL",
	OpSMLAL:       "SMLAL",
	OpLDR:         "LDR",
	OpLDRB:        "LDRB",
	OpSTR:         "STR",
	OpSTRB:        "STRB",
	OpLDRH:        "LDRH",
	OpLDRSH:       "LDRSH",
	OpLDRSB:       "LDRSB",
	OpSTRH:        "STRH",
	OpLDM:         "LDM",
	OpSTM:         "STM",
	OpSWP:         "SWP",
	OpSWPB:        "SWPB",
	OpSWI:         "SWI",
	OpThumbLoadPC: "LDR",
	OpThumbAddPC:  "ADR",
	OpThumbBLHigh: "BL",
	OpThumbBLLow:  "BL",
}

func (op Op) String() string {
	if s, ok := opNames[op]; ok {
		return s
	}
	return "-"
}

func register(r uint8) string {
	switch r {
	case rSP:
		return "SP"
	case rLR:
		return "LR"
	case rPC:
		return "PC"
	}
	return fmt.Sprintf("R%d", r)
}

func registerList(list uint16) string {
	s := strings.Builder{}
	s.WriteRune('{')
	first := true
	for i := range 16 {
		if list&(1<<i) == 0 {
			continue
		}
		if !first {
			s.WriteString(", ")
		}
		first = false
		s.WriteString(register(uint8(i)))
	}
	s.WriteRune('}')
	return s.String()
}

func (op Operand) String() string {
	switch op.Kind {
	case OperandImmediate:
		return fmt.Sprintf("#$%02x", op.Imm)
	case OperandShiftRegister:
		return fmt.Sprintf("%s, %s %s", register(op.Rm), op.Shift, register(op.Rs))
	}
	if op.Amount == 0 {
		switch op.Shift {
		case LSL:
			return register(op.Rm)
		case ROR:
			return fmt.Sprintf("%s, RRX", register(op.Rm))
		}
		return fmt.Sprintf("%s, %s #32", register(op.Rm), op.Shift)
	}
	return fmt.Sprintf("%s, %s #%d", register(op.Rm), op.Shift, op.Amount)
}

func (ins *Instruction) addressing() string {
	a := ins.Addressing

	var offset string
	if a.Register {
		sign := ""
		if !a.Up {
			sign = "-"
		}
		offset = fmt.Sprintf("%s%s", sign, Operand{Kind: OperandShiftImmediate, Shift: a.Shift, Rm: a.Rm, Amount: a.Amount})
	} else if a.Offset != 0 {
		sign := ""
		if !a.Up {
			sign = "-"
		}
		offset = fmt.Sprintf("#%s$%02x", sign, a.Offset)
	}

	if !a.Pre {
		if offset == "" {
			return fmt.Sprintf("[%s]", register(ins.Rn))
		}
		return fmt.Sprintf("[%s], %s", register(ins.Rn), offset)
	}

	var wb string
	if a.Writeback {
		wb = "!"
	}
	if offset == "" {
		return fmt.Sprintf("[%s]%s", register(ins.Rn), wb)
	}
	return fmt.Sprintf("[%s, %s]%s", register(ins.Rn), offset, wb)
}

// Disassemble returns the disassembly of the decoded instruction. The
// address is used to resolve branch targets.
func Disassemble(ins *Instruction) DisasmEntry {
	e := DisasmEntry{
		Addr:    ins.Address,
		Opcode:  ins.Opcode,
		Thumb:   ins.Thumb,
		Address: fmt.Sprintf("%08x", ins.Address),
	}

	e.Operator = ins.Op.String()
	if ins.Cond != AL {
		e.Operator = fmt.Sprintf("%s%s", e.Operator, ins.Cond)
	}
	if ins.SetFlags && !ins.Op.IsTest() {
		e.Operator = fmt.Sprintf("%sS", e.Operator)
	}

	// value of the program counter during execution
	pc := ins.Address + 2*ins.Width()

	switch ins.Op {
	case OpUndefined:
		e.Operand = fmt.Sprintf("$%08x", ins.Opcode)
	case OpMOV, OpMVN:
		e.Operand = fmt.Sprintf("%s, %s", register(ins.Rd), ins.Operand)
	case OpTST, OpTEQ, OpCMP, OpCMN:
		e.Operand = fmt.Sprintf("%s, %s", register(ins.Rn), ins.Operand)
	case OpAND, OpEOR, OpSUB, OpRSB, OpADD, OpADC, OpSBC, OpRSC, OpORR, OpBIC:
		e.Operand = fmt.Sprintf("%s, %s, %s", register(ins.Rd), register(ins.Rn), ins.Operand)
	case OpMRS:
		psr := "CPSR"
		if ins.SPSR {
			psr = "SPSR"
		}
		e.Operand = fmt.Sprintf("%s, %s", register(ins.Rd), psr)
	case OpMSR:
		psr := "CPSR"
		if ins.SPSR {
			psr = "SPSR"
		}
		fields := strings.Builder{}
		if ins.Mask&0xff000000 != 0 {
			fields.WriteRune('f')
		}
		if ins.Mask&0x00ff0000 != 0 {
			fields.WriteRune('s')
		}
		if ins.Mask&0x0000ff00 != 0 {
			fields.WriteRune('x')
		}
		if ins.Mask&0x000000ff != 0 {
			fields.WriteRune('c')
		}
		e.Operand = fmt.Sprintf("%s_%s, %s", psr, fields.String(), ins.Operand)
	case OpB, OpBL:
		e.Operand = fmt.Sprintf("$%08x", pc+ins.Imm)
	case OpBX:
		e.Operand = register(ins.Rm)
	case OpMUL:
		e.Operand = fmt.Sprintf("%s, %s, %s", register(ins.Rd), register(ins.Rm), register(ins.Rs))
	case OpMLA:
		e.Operand = fmt.Sprintf("%s, %s, %s, %s", register(ins.Rd), register(ins.Rm), register(ins.Rs), register(ins.Rn))
	case OpUMULL, OpUMLAL, OpSMULL, OpSMLAL:
		e.Operand = fmt.Sprintf("%s, %s, %s, %s", register(ins.Rn), register(ins.Rd), register(ins.Rm), register(ins.Rs))
	case OpLDR, OpLDRB, OpSTR, OpSTRB, OpLDRH, OpLDRSH, OpLDRSB, OpSTRH:
		e.Operand = fmt.Sprintf("%s, %s", register(ins.Rd), ins.addressing())
	case OpLDM, OpSTM:
		var mode string
		switch {
		case ins.Addressing.Pre && ins.Addressing.Up:
			mode = "IB"
		case ins.Addressing.Up:
			mode = "IA"
		case ins.Addressing.Pre:
			mode = "DB"
		default:
			mode = "DA"
		}
		e.Operator = fmt.Sprintf("%s%s", e.Operator, mode)
		var wb, user string
		if ins.Addressing.Writeback {
			wb = "!"
		}
		if ins.UserBank {
			user = "^"
		}
		e.Operand = fmt.Sprintf("%s%s, %s%s", register(ins.Rn), wb, registerList(ins.List), user)
	case OpSWP, OpSWPB:
		e.Operand = fmt.Sprintf("%s, %s, [%s]", register(ins.Rd), register(ins.Rm), register(ins.Rn))
	case OpSWI:
		e.Operand = fmt.Sprintf("#$%02x", ins.Imm)
	case OpThumbLoadPC:
		e.Operand = fmt.Sprintf("%s, [$%08x]", register(ins.Rd), (pc&^3)+ins.Imm)
	case OpThumbAddPC:
		e.Operand = fmt.Sprintf("%s, $%08x", register(ins.Rd), (pc&^3)+ins.Imm)
	case OpThumbBLHigh:
		e.Operand = fmt.Sprintf("(hi) #$%08x", ins.Imm)
	case OpThumbBLLow:
		e.Operand = fmt.Sprintf("(lo) #$%03x", ins.Imm)
	}

	return e
}
