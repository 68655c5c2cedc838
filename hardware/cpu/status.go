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
	"fmt"
	"strings"

	"github.com/jetsetilly/gophergba/hardware/cpu/instructions"
)

// Mode is the privilege mode of the CPU. The values are those used in the
// bottom five bits of the status register.
type Mode uint8

// List of valid Mode values.
const (
	ModeUser       Mode = 0x10
	ModeFIQ        Mode = 0x11
	ModeIRQ        Mode = 0x12
	ModeSupervisor Mode = 0x13
	ModeAbort      Mode = 0x17
	ModeUndefined  Mode = 0x1b
	ModeSystem     Mode = 0x1f
)

func (m Mode) String() string {
	switch m {
	case ModeUser:
		return "USR"
	case ModeFIQ:
		return "FIQ"
	case ModeIRQ:
		return "IRQ"
	case ModeSupervisor:
		return "SVC"
	case ModeAbort:
		return "ABT"
	case ModeUndefined:
		return "UND"
	case ModeSystem:
		return "SYS"
	}
	return fmt.Sprintf("?%02x", uint8(m))
}

// Valid returns false if the value is not one of the defined modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeUser, ModeFIQ, ModeIRQ, ModeSupervisor, ModeAbort, ModeUndefined, ModeSystem:
		return true
	}
	return false
}

// Privileged returns true for every mode except user mode.
func (m Mode) Privileged() bool {
	return m != ModeUser
}

// bits of the status register
const (
	maskNegative = 0x80000000
	maskZero     = 0x40000000
	maskCarry    = 0x20000000
	maskOverflow = 0x10000000
	maskIRQ      = 0x00000080
	maskFIQ      = 0x00000040
	maskThumb    = 0x00000020
	maskMode     = 0x0000001f
)

// the parts of the status register that can be written by MSR
const (
	msrUser  = 0xf0000000
	msrPriv  = 0x000000cf
	msrState = 0x00000020
)

// Status is the current program status register.
type Status struct {
	Negative bool
	Zero     bool
	Carry    bool
	Overflow bool

	// interrupts are disabled when the flag is true
	IRQDisable bool
	FIQDisable bool

	// the CPU is decoding 16 bit instructions
	Thumb bool

	Mode Mode
}

func (sr Status) String() string {
	s := strings.Builder{}
	flag := func(b bool, set rune, unset rune) {
		if b {
			s.WriteRune(set)
		} else {
			s.WriteRune(unset)
		}
	}
	flag(sr.Negative, 'N', 'n')
	flag(sr.Zero, 'Z', 'z')
	flag(sr.Carry, 'C', 'c')
	flag(sr.Overflow, 'V', 'v')
	flag(sr.IRQDisable, 'I', 'i')
	flag(sr.FIQDisable, 'F', 'f')
	flag(sr.Thumb, 'T', 't')
	s.WriteRune(' ')
	s.WriteString(sr.Mode.String())
	return s.String()
}

// Pack the status into the 32 bit register format.
func (sr Status) Pack() uint32 {
	v := uint32(sr.Mode)
	if sr.Thumb {
		v |= maskThumb
	}
	if sr.FIQDisable {
		v |= maskFIQ
	}
	if sr.IRQDisable {
		v |= maskIRQ
	}
	if sr.Negative {
		v |= maskNegative
	}
	if sr.Zero {
		v |= maskZero
	}
	if sr.Carry {
		v |= maskCarry
	}
	if sr.Overflow {
		v |= maskOverflow
	}
	return v
}

func (sr *Status) setFlags(v uint32) {
	sr.Negative = v&maskNegative == maskNegative
	sr.Zero = v&maskZero == maskZero
	sr.Carry = v&maskCarry == maskCarry
	sr.Overflow = v&maskOverflow == maskOverflow
}

func (sr *Status) isNegative(a uint32) {
	sr.Negative = a&0x80000000 == 0x80000000
}

func (sr *Status) isZero(a uint32) {
	sr.Zero = a == 0x00
}

// overflow and carry of the addition a + b + c, where c is a carry in of zero
// or one. subtraction is performed as a + ^b + 1
func (sr *Status) isOverflow(a, b, c uint32) {
	d := (a & 0x7fffffff) + (b & 0x7fffffff) + c
	d >>= 31
	e := (d & 0x01) + ((a >> 31) & 0x01) + ((b >> 31) & 0x01)
	e >>= 1
	sr.Overflow = (d^e)&0x01 == 0x01
}

func (sr *Status) isCarry(a, b, c uint32) {
	d := (a & 0x7fffffff) + (b & 0x7fffffff) + c
	d = (d >> 31) + (a >> 31) + (b >> 31)
	sr.Carry = d&0x02 == 0x02
}

func (sr *Status) carryIn() uint32 {
	if sr.Carry {
		return 1
	}
	return 0
}

func (sr Status) condition(cond instructions.Condition) bool {
	return cond.Passed(sr.Negative, sr.Zero, sr.Carry, sr.Overflow)
}
