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

package hardware

import (
	"github.com/jetsetilly/gophergba/hardware/cpu/instructions"
	"github.com/jetsetilly/gophergba/hardware/memory"
	"github.com/jetsetilly/gophergba/hardware/scheduler"
)

// the GBA is the view each component has of the rest of the machine. the
// methods in this file implement the cpu.Bus, memory.Context,
// scheduler.Context, registers.Context and bios.Context interfaces

// Load8 reads a byte from the address space. Reads have the same side effects
// as reads made by the CPU.
func (g *GBA) Load8(address uint32) uint8 {
	return g.Mem.Load8(g, address)
}

// Load16 reads a halfword from the address space.
func (g *GBA) Load16(address uint32) uint16 {
	return g.Mem.Load16(g, address)
}

// Load32 reads a word from the address space.
func (g *GBA) Load32(address uint32) uint32 {
	return g.Mem.Load32(g, address)
}

// Store8 writes a byte to the address space.
func (g *GBA) Store8(address uint32, value uint8) {
	g.Mem.Store8(g, address, value)
}

// Store16 writes a halfword to the address space.
func (g *GBA) Store16(address uint32, value uint16) {
	g.Mem.Store16(g, address, value)
}

// Store32 writes a word to the address space.
func (g *GBA) Store32(address uint32, value uint32) {
	g.Mem.Store32(g, address, value)
}

// Waitstates returns the waitstate tables currently in use.
func (g *GBA) Waitstates() *memory.Waitstates {
	return g.Mem.Waitstates()
}

// AccessPage returns the instruction cache page for the address.
func (g *GBA) AccessPage(address uint32) *instructions.Page {
	return g.Mem.AccessPage(address)
}

// SoftwareInterrupt is called by the CPU for the SWI instruction.
func (g *GBA) SoftwareInterrupt(function uint32) error {
	if g.Mem.RealBIOS() {
		g.CPU.RaiseTrap()
		return nil
	}
	return g.HLE.SoftwareInterrupt(g.CPU, g, function)
}

// TestIRQ is called by the CPU when the interrupt disable flag might have
// been cleared.
func (g *GBA) TestIRQ() {
	g.Sch.TestIRQ()
}

// UpdateTimers is called by the CPU after every instruction.
func (g *GBA) UpdateTimers() {
	err := g.Sch.UpdateTimers(g)
	if err != nil && g.err == nil {
		g.err = err
	}
}

// Pipeline returns the address of the most recently prefetched instruction.
func (g *GBA) Pipeline() (uint32, bool) {
	return g.CPU.Pipeline()
}

// LoadIO8 reads a byte from the IO registers.
func (g *GBA) LoadIO8(offset uint32) uint8 {
	return g.Regs.Load8(g, offset)
}

// LoadIO16 reads a halfword from the IO registers.
func (g *GBA) LoadIO16(offset uint32) uint16 {
	return g.Regs.Load16(g, offset)
}

// LoadIO32 reads a word from the IO registers.
func (g *GBA) LoadIO32(offset uint32) uint32 {
	return g.Regs.Load32(g, offset)
}

// StoreIO8 writes a byte to the IO registers.
func (g *GBA) StoreIO8(offset uint32, value uint8) {
	g.Regs.Store8(g, offset, value)
}

// StoreIO16 writes a halfword to the IO registers.
func (g *GBA) StoreIO16(offset uint32, value uint16) {
	g.Regs.Store16(g, offset, value)
}

// StoreIO32 writes a word to the IO registers.
func (g *GBA) StoreIO32(offset uint32, value uint32) {
	g.Regs.Store32(g, offset, value)
}

// OpenBus16 returns the value seen when reading a register that can not be
// read.
func (g *GBA) OpenBus16() uint16 {
	return g.Mem.OpenBus16(g)
}

// Cycles returns the number of cycles since reset.
func (g *GBA) Cycles() int64 {
	return g.CPU.Cycles()
}

// SetCycles moves the CPU's cycle count.
func (g *GBA) SetCycles(cycles int64) {
	g.CPU.SetCycles(cycles)
}

// RaiseCPUIRQ enters the CPU's interrupt exception.
func (g *GBA) RaiseCPUIRQ() {
	g.CPU.RaiseIRQ()
}

// Scheduler returns the interrupt controller.
func (g *GBA) Scheduler() *scheduler.Scheduler {
	return g.Sch
}
