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

	"github.com/jetsetilly/gophergba/environment"
	"github.com/jetsetilly/gophergba/hardware/cpu/instructions"
	"github.com/jetsetilly/gophergba/hardware/memory"
	"github.com/jetsetilly/gophergba/hardware/memory/memorymap"
	"github.com/jetsetilly/gophergba/logger"
)

// exception vectors
const (
	VectorReset     = 0x00000000
	VectorUndefined = 0x00000004
	VectorSWI       = 0x00000008
	VectorIRQ       = 0x00000018
)

// Bus is the view the CPU has of the rest of the machine. It is borrowed for
// the duration of a single call to Step().
type Bus interface {
	Load8(address uint32) uint8
	Load16(address uint32) uint16
	Load32(address uint32) uint32
	Store8(address uint32, value uint8)
	Store16(address uint32, value uint16)
	Store32(address uint32, value uint32)

	// waitstate tables used for cycle counting
	Waitstates() *memory.Waitstates

	// the instruction cache page for the address. nil if the address can not
	// be cached
	AccessPage(address uint32) *instructions.Page

	// the SWI instruction has been executed. the function argument is the
	// comment field of the instruction
	SoftwareInterrupt(function uint32) error

	// the interrupt disable flag might have been cleared. any pending
	// interrupt should be raised before the next instruction
	TestIRQ()

	// bring the rest of the machine up to date with the CPU's cycle count
	UpdateTimers()
}

// CPU implements the ARM7TDMI processor.
type CPU struct {
	env *environment.Environment

	// the general purpose registers. R[15] is the program counter. during
	// execution of an instruction the program counter is the address of the
	// instruction plus twice the instruction width
	R [NumRegisters]uint32

	Status Status
	SPSR   uint32

	banks      [numBanks][bankSize]uint32
	bankedSPSR [numBanks]uint32

	// the number of cycles since reset
	cycles int64

	// the instruction waiting to be executed. it is always the instruction at
	// PC minus the instruction width
	held *instructions.Instruction

	// the instruction being executed, or most recently executed
	executing *instructions.Instruction

	// the condition of the most recently executed instruction passed
	conditionPassed bool

	// the first illegal opcode is always logged. subsequent occurances are
	// logged only if the LogIllegal preference is set
	illegalSeen bool
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(env *environment.Environment) *CPU {
	mc := &CPU{
		env: env,
	}
	mc.Reset(memorymap.BaseCart0)
	return mc
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	n.held = nil
	n.executing = nil
	return &n
}

// Validate checks that a snapshotted CPU can be plumbed.
func (mc *CPU) Validate() error {
	if !mc.Status.Mode.Valid() {
		return fmt.Errorf("cpu: invalid mode (%#02x) in snapshot", uint8(mc.Status.Mode))
	}
	return nil
}

// Plumb a previously snapshotted CPU. The instruction pipeline is refilled on
// the next call to Step().
func (mc *CPU) Plumb(s *CPU) error {
	err := s.Validate()
	if err != nil {
		return err
	}
	env := mc.env
	*mc = *s
	mc.env = env
	mc.held = nil
	mc.executing = nil
	return nil
}

func (mc *CPU) String() string {
	s := strings.Builder{}
	for i := range NumRegisters {
		if i > 0 {
			if i%4 == 0 {
				s.WriteRune('\n')
			} else {
				s.WriteRune(' ')
			}
		}
		s.WriteString(fmt.Sprintf("%-3s=%08x", registerName(i), mc.R[i]))
	}
	s.WriteString(fmt.Sprintf("\nCPSR=%08x [%s]", mc.Status.Pack(), mc.Status))
	if mc.HasSPSR() {
		s.WriteString(fmt.Sprintf(" SPSR=%08x", mc.SPSR))
	}
	return s.String()
}

func registerName(r int) string {
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

// Reset the CPU. The program counter is primed so that the first instruction
// executed is the one at the entry address.
func (mc *CPU) Reset(entry uint32) {
	mc.R = [NumRegisters]uint32{}
	mc.banks = [numBanks][bankSize]uint32{}
	mc.bankedSPSR = [numBanks]uint32{}
	mc.SPSR = 0
	mc.Status = Status{Mode: ModeSystem}
	mc.R[rPC] = entry + 4
	mc.cycles = 0
	mc.held = nil
	mc.executing = nil
	mc.conditionPassed = false
}

// Cycles returns the number of cycles since reset. Implements the
// random.Clock interface.
func (mc *CPU) Cycles() int64 {
	return mc.cycles
}

// SetCycles sets the cycle count. Used by the scheduler to skip forward in
// time while the CPU is halted.
func (mc *CPU) SetCycles(cycles int64) {
	mc.cycles = cycles
}

// AddCycles charges additional cycles to the CPU. Used by high-level emulation
// of BIOS functions.
func (mc *CPU) AddCycles(cycles int) {
	mc.cycles += int64(cycles)
}

// Pipeline returns the address of the most recently prefetched instruction and
// whether the CPU is in Thumb mode.
func (mc *CPU) Pipeline() (uint32, bool) {
	return mc.R[rPC] - mc.width(), mc.Status.Thumb
}

// Executing returns the instruction currently being executed or the most
// recently executed instruction. Returns nil if no instruction has been
// executed since reset or since the pipeline was flushed.
func (mc *CPU) Executing() *instructions.Instruction {
	return mc.executing
}

// Jump to the address. The pipeline is flushed and the next instruction
// executed will be the one at the address.
func (mc *CPU) Jump(address uint32) {
	if mc.Status.Thumb {
		address &^= 1
	} else {
		address &^= 3
	}
	mc.R[rPC] = address + mc.width()
	mc.held = nil
}

// SetThumb changes the instruction set. The pipeline is flushed.
func (mc *CPU) SetThumb(thumb bool) {
	mc.switchExecMode(thumb)
	mc.held = nil
}

// loadInstruction returns the decoded instruction at the address. the
// instruction cache is consulted first
func (mc *CPU) loadInstruction(bus Bus, address uint32) *instructions.Instruction {
	page := bus.AccessPage(address)

	if page == nil {
		var ins instructions.Instruction
		if mc.Status.Thumb {
			ins = instructions.DecodeThumb(bus.Load16(address))
		} else {
			ins = instructions.DecodeARM(bus.Load32(address))
		}
		ins.Address = address
		return &ins
	}

	mask := memorymap.RegionOf(address).PageMask()
	slot := page.Slot(address, mask, mc.Status.Thumb)
	if slot.Op != instructions.OpNone {
		return slot
	}

	if mc.Status.Thumb {
		*slot = instructions.DecodeThumb(bus.Load16(address))
	} else {
		*slot = instructions.DecodeARM(bus.Load32(address))
	}
	slot.Address = address
	slot.Page = page

	return slot
}

// Step executes the next instruction and then brings the rest of the machine
// up to date.
func (mc *CPU) Step(bus Bus) error {
	// the held instruction is refetched if memory under it has changed since
	// it was decoded
	if mc.held == nil || !mc.held.Valid() {
		mc.held = mc.loadInstruction(bus, mc.R[rPC]-mc.width())
	}

	ins := mc.held
	mc.executing = ins
	mc.R[rPC] += mc.width()
	mc.conditionPassed = true

	err := mc.execute(bus, ins)

	if !ins.WritesPC {
		// the held instruction is cleared by exception entry
		if mc.held != nil {
			next := ins.Next
			if next == nil || !next.Valid() {
				next = mc.loadInstruction(bus, mc.R[rPC]-mc.width())
				if next.Page != nil {
					ins.Next = next
				}
			}
			mc.held = next
		}
	} else if mc.conditionPassed {
		ws := bus.Waitstates()
		pc := mc.R[rPC]
		if mc.Status.Thumb {
			pc &^= 1
			mc.cycles += int64(ws.Wait(pc) + ws.WaitPrefetch(pc))
		} else {
			pc &^= 3
			mc.cycles += int64(ws.Wait32(pc) + ws.WaitPrefetch32(pc))
		}
		mc.R[rPC] = pc + mc.width()

		if !ins.FixedJump {
			mc.held = nil
		} else {
			next := ins.Next
			if next == nil || !next.Valid() {
				next = mc.loadInstruction(bus, mc.R[rPC]-mc.width())
				if next.Page != nil {
					ins.Next = next
				}
			}
			mc.held = next
		}
	} else {
		mc.held = nil
	}

	bus.UpdateTimers()

	return err
}

// RaiseIRQ enters the interrupt exception. The request is ignored if
// interrupts are disabled.
func (mc *CPU) RaiseIRQ() {
	if mc.Status.IRQDisable {
		return
	}
	mc.enterException(ModeIRQ, VectorIRQ, mc.R[rPC]-mc.width()+4)
}

// RaiseTrap enters the software interrupt exception. Used when the SWI
// instruction is executed and a real BIOS is installed.
func (mc *CPU) RaiseTrap() {
	mc.enterException(ModeSupervisor, VectorSWI, mc.R[rPC]-mc.width())
}

// raiseUndefined enters the undefined instruction exception
func (mc *CPU) raiseUndefined(ins *instructions.Instruction) {
	if !mc.illegalSeen || mc.env.Prefs.LogIllegal.Get().(bool) {
		if ins.Thumb {
			logger.Logf(mc.env, "cpu", "illegal opcode %04x at %08x", ins.Opcode, ins.Address)
		} else {
			logger.Logf(mc.env, "cpu", "illegal opcode %08x at %08x", ins.Opcode, ins.Address)
		}
		mc.illegalSeen = true
	}
	mc.enterException(ModeUndefined, VectorUndefined, mc.R[rPC]-mc.width())
}

func (mc *CPU) enterException(mode Mode, vector uint32, lr uint32) {
	cpsr := mc.Status.Pack()
	mc.SwitchMode(mode)
	mc.SPSR = cpsr
	mc.R[rLR] = lr
	mc.switchExecMode(false)
	mc.R[rPC] = vector + 4
	mc.held = nil
	mc.Status.IRQDisable = true
}
