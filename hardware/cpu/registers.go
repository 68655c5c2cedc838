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

// register aliases
const (
	rSP = 13
	rLR = 14
	rPC = 15
)

// NumRegisters is the number of general purpose registers, including the
// program counter.
const NumRegisters = 16

// the register banks. user and system mode share the unbanked registers. the
// unbanked bank also holds the user copies of R8 to R12 while the CPU is in
// FIQ mode
type bank int

const (
	bankNone bank = iota
	bankFIQ
	bankIRQ
	bankSupervisor
	bankAbort
	bankUndefined

	numBanks
)

// entries in a bank
const (
	bankSP = iota
	bankLR
	bankR8
	bankR9
	bankR10
	bankR11
	bankR12

	bankSize
)

func bankOf(mode Mode) bank {
	switch mode {
	case ModeFIQ:
		return bankFIQ
	case ModeIRQ:
		return bankIRQ
	case ModeSupervisor:
		return bankSupervisor
	case ModeAbort:
		return bankAbort
	case ModeUndefined:
		return bankUndefined
	}
	return bankNone
}

// SwitchMode changes the privilege mode of the CPU, swapping the banked
// registers and the saved status register.
func (mc *CPU) SwitchMode(mode Mode) {
	if mode == mc.Status.Mode {
		return
	}

	oldBank := bankOf(mc.Status.Mode)
	newBank := bankOf(mode)

	if oldBank != newBank {
		if oldBank == bankFIQ || newBank == bankFIQ {
			// R8 to R12 are swapped between the FIQ bank and the unbanked
			// bank only
			oldHi := bankNone
			if oldBank == bankFIQ {
				oldHi = bankFIQ
			}
			newHi := bankNone
			if newBank == bankFIQ {
				newHi = bankFIQ
			}
			copy(mc.banks[oldHi][bankR8:], mc.R[8:13])
			copy(mc.R[8:13], mc.banks[newHi][bankR8:])
		}

		mc.banks[oldBank][bankSP] = mc.R[rSP]
		mc.banks[oldBank][bankLR] = mc.R[rLR]
		mc.R[rSP] = mc.banks[newBank][bankSP]
		mc.R[rLR] = mc.banks[newBank][bankLR]

		mc.bankedSPSR[oldBank] = mc.SPSR
		mc.SPSR = mc.bankedSPSR[newBank]
	}

	mc.Status.Mode = mode
}

// switchExecMode changes between the ARM and Thumb instruction sets
func (mc *CPU) switchExecMode(thumb bool) {
	mc.Status.Thumb = thumb
}

// the width of an instruction in the current instruction set
func (mc *CPU) width() uint32 {
	if mc.Status.Thumb {
		return 2
	}
	return 4
}

// HasSPSR returns true if the current mode has a saved status register.
func (mc *CPU) HasSPSR() bool {
	return mc.Status.Mode != ModeSystem && mc.Status.Mode != ModeUser
}

// unpackCPSR sets the status register from the packed value. the mode and
// instruction set might change as a result
func (mc *CPU) unpackCPSR(bus Bus, v uint32) {
	mc.SwitchMode(Mode(v&maskMode) | 0x10)
	mc.switchExecMode(v&maskThumb == maskThumb)
	mc.Status.FIQDisable = v&maskFIQ == maskFIQ
	mc.Status.IRQDisable = v&maskIRQ == maskIRQ
	mc.Status.setFlags(v)
	bus.TestIRQ()
}

// userRegister returns the user mode copy of the register
func (mc *CPU) userRegister(r int) uint32 {
	b := bankOf(mc.Status.Mode)
	switch {
	case b == bankNone:
		return mc.R[r]
	case r == rSP:
		return mc.banks[bankNone][bankSP]
	case r == rLR:
		return mc.banks[bankNone][bankLR]
	case r >= 8 && r <= 12 && b == bankFIQ:
		return mc.banks[bankNone][bankR8+r-8]
	}
	return mc.R[r]
}

// setUserRegister sets the user mode copy of the register
func (mc *CPU) setUserRegister(r int, v uint32) {
	b := bankOf(mc.Status.Mode)
	switch {
	case b == bankNone:
		mc.R[r] = v
	case r == rSP:
		mc.banks[bankNone][bankSP] = v
	case r == rLR:
		mc.banks[bankNone][bankLR] = v
	case r >= 8 && r <= 12 && b == bankFIQ:
		mc.banks[bankNone][bankR8+r-8] = v
	default:
		mc.R[r] = v
	}
}
