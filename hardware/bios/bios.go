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

package bios

import (
	"encoding/binary"

	"github.com/jetsetilly/gophergba/environment"
	"github.com/jetsetilly/gophergba/hardware/cpu"
	"github.com/jetsetilly/gophergba/hardware/scheduler"
	"github.com/jetsetilly/gophergba/logger"
)

// Context is the view the BIOS has of the rest of the machine. It is borrowed
// for the duration of a single call.
type Context interface {
	Load8(address uint32) uint8
	Load16(address uint32) uint16
	Load32(address uint32) uint32
	Store8(address uint32, value uint8)
	Store16(address uint32, value uint16)
	Store32(address uint32, value uint32)

	// the interrupt controller
	Scheduler() *scheduler.Scheduler
}

// addresses in internal RAM used by the BIOS
const (
	// the interrupt flags set by the game's interrupt handler and checked by
	// IntrWait
	irqFlags = 0x03007ff8

	// the return flag checked by SoftReset
	resetFlag = 0x03007ffa

	// SoftReset clears the top of internal RAM from this address
	resetClear = 0x03007e00
)

// initial stack pointers
const (
	stackSupervisor = 0x03007fe0
	stackIRQ        = 0x03007fa0
	stackSystem     = 0x03007f00
)

// Checksum is the value returned by GetBiosChecksum. It is the checksum of the
// BIOS found in every retail Game Boy Advance.
const Checksum = 0xbaae187f

// the stub BIOS image. see the package documentation
var stub = []uint32{
	// exception vectors
	0xe3a0f408, // 0x00 reset:     mov pc, #0x08000000
	0xeafffffe, // 0x04 undefined: b 0x04
	0xea00000a, // 0x08 swi:       b 0x38
	0xeafffffe, // 0x0c prefetch:  b 0x0c
	0xeafffffe, // 0x10 data:      b 0x10
	0xeafffffe, // 0x14 reserved:  b 0x14
	0xea000000, // 0x18 irq:       b 0x20
	0xeafffffe, // 0x1c fiq:       b 0x1c

	// irq dispatch
	0xe92d500f, // 0x20 stmfd sp!, {r0-r3, r12, lr}
	0xe3a00404, // 0x24 mov r0, #0x04000000
	0xe28fe000, // 0x28 add lr, pc, #0
	0xe510f004, // 0x2c ldr pc, [r0, #-4]
	0xe8bd500f, // 0x30 ldmfd sp!, {r0-r3, r12, lr}
	0xe25ef004, // 0x34 subs pc, lr, #4

	// interrupt wait. r1 is the mask of interrupts to wait for
	0xe92d500c, // 0x38 stmfd sp!, {r2, r3, r12, lr}
	0xe3a03404, // 0x3c mov r3, #0x04000000
	0xe321f01f, // 0x40 msr cpsr_c, #0x1f
	0xe3a02000, // 0x44 mov r2, #0
	0xe5c32301, // 0x48 strb r2, [r3, #0x301]
	0xe15320b8, // 0x4c ldrh r2, [r3, #-8]
	0xe012c001, // 0x50 ands r12, r2, r1
	0x0afffffa, // 0x54 beq 0x44
	0xe1c2200c, // 0x58 bic r2, r2, r12
	0xe14320b8, // 0x5c strh r2, [r3, #-8]
	0xe321f093, // 0x60 msr cpsr_c, #0x93
	0xe8bd500c, // 0x64 ldmfd sp!, {r2, r3, r12, lr}
	0xe1b0f00e, // 0x68 movs pc, lr
}

// Image returns the stub BIOS image to be installed in the BIOS region when no
// real BIOS is available.
func Image() []byte {
	b := make([]byte, len(stub)*4)
	for i, op := range stub {
		binary.LittleEndian.PutUint32(b[i*4:], op)
	}
	return b
}

// HLE implements the BIOS functions called with the SWI instruction.
type HLE struct {
	env *environment.Environment
}

// NewHLE is the preferred method of initialisation for the HLE type.
func NewHLE(env *environment.Environment) *HLE {
	return &HLE{env: env}
}

// ResetStack sets the stack pointer of each mode to the values the BIOS uses.
// The CPU is left in system mode.
func ResetStack(mc *cpu.CPU) {
	mc.SwitchMode(cpu.ModeSupervisor)
	mc.R[13] = stackSupervisor
	mc.SwitchMode(cpu.ModeIRQ)
	mc.R[13] = stackIRQ
	mc.SwitchMode(cpu.ModeSystem)
	mc.R[13] = stackSystem
}

// SoftwareInterrupt performs the BIOS function. Arguments and results are
// passed in the CPU's registers in the same way as a real BIOS.
//
// Functions that halt the CPU only request the halt. The halt happens before
// the next instruction is executed.
func (h *HLE) SoftwareInterrupt(mc *cpu.CPU, ctx Context, function uint32) error {
	switch function {
	case 0x00:
		h.softReset(mc, ctx)
	case 0x01:
		h.registerRAMReset(ctx, mc.R[0])
	case 0x02, 0x03:
		// stop mode is treated as halt
		ctx.Scheduler().RequestHalt()
	case 0x05:
		mc.R[0] = 1
		mc.R[1] = 1
		h.intrWait(mc, ctx)
	case 0x04:
		h.intrWait(mc, ctx)
	case 0x06:
		h.div(mc, int32(mc.R[0]), int32(mc.R[1]))
	case 0x07:
		h.div(mc, int32(mc.R[1]), int32(mc.R[0]))
	case 0x08:
		mc.R[0] = sqrt(mc.R[0])
	case 0x0a:
		mc.R[0] = arcTan2(int32(mc.R[0]), int32(mc.R[1]))
	case 0x0b:
		cpuSet(ctx, mc.R[0], mc.R[1], mc.R[2])
	case 0x0c:
		cpuFastSet(ctx, mc.R[0], mc.R[1], mc.R[2])
	case 0x0d:
		mc.R[0] = Checksum
		mc.R[1] = 1
		mc.R[3] = 0x00004000
	case 0x11:
		lz77(ctx, mc.R[0], mc.R[1], false)
	case 0x12:
		lz77(ctx, mc.R[0], mc.R[1], true)
	case 0x14:
		runLength(ctx, mc.R[0], mc.R[1], false)
	case 0x15:
		runLength(ctx, mc.R[0], mc.R[1], true)
	default:
		logger.Logf(h.env, "bios", "unimplemented software interrupt: %02x", function)
	}
	return nil
}

func (h *HLE) softReset(mc *cpu.CPU, ctx Context) {
	flag := ctx.Load8(resetFlag)
	for a := uint32(resetClear); a < resetClear+0x200; a += 4 {
		ctx.Store32(a, 0)
	}
	ResetStack(mc)

	entry := uint32(0x08000000)
	if flag != 0 {
		entry = 0x02000000
	}
	mc.R[14] = entry
	mc.SetThumb(false)
	mc.Jump(entry)
}

// the HLE part of IntrWait. the waiting happens in the stub image
func (h *HLE) intrWait(mc *cpu.CPU, ctx Context) {
	sch := ctx.Scheduler()
	if !sch.IME {
		sch.MasterEnable(true)
	}

	mask := uint16(mc.R[1])

	if mc.R[0] == 0 && sch.IF&mask != 0 {
		return
	}

	// discard interrupts that have already happened
	if mc.R[0] != 0 {
		ctx.Store16(irqFlags, ctx.Load16(irqFlags)&^mask)
	}

	sch.DismissIRQs(0xffff)
	mc.RaiseTrap()
}
