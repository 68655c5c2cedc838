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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gophergba/environment"
	"github.com/jetsetilly/gophergba/hardware/cpu"
	"github.com/jetsetilly/gophergba/hardware/cpu/instructions"
	"github.com/jetsetilly/gophergba/hardware/memory"
	"github.com/jetsetilly/gophergba/test"
)

// all test programs are placed in internal RAM, where every access takes a
// single cycle
const origin = 0x03000000

type mockBus struct {
	mc  *cpu.CPU
	mem *memory.Memory

	swi      []uint32
	irqTests int
	updates  int
}

func newMockBus(t *testing.T) *mockBus {
	t.Helper()
	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	env.Normalise()

	b := &mockBus{
		mc:  cpu.NewCPU(env),
		mem: memory.NewMemory(env),
	}
	b.mem.Reset()
	b.mc.Reset(origin)
	return b
}

func (b *mockBus) Pipeline() (uint32, bool)       { return b.mc.Pipeline() }
func (b *mockBus) LoadIO8(_ uint32) uint8         { return 0 }
func (b *mockBus) LoadIO16(_ uint32) uint16       { return 0 }
func (b *mockBus) LoadIO32(_ uint32) uint32       { return 0 }
func (b *mockBus) StoreIO8(_ uint32, _ uint8)     {}
func (b *mockBus) StoreIO16(_ uint32, _ uint16)   {}
func (b *mockBus) StoreIO32(_ uint32, _ uint32)   {}
func (b *mockBus) Load8(address uint32) uint8     { return b.mem.Load8(b, address) }
func (b *mockBus) Load16(address uint32) uint16   { return b.mem.Load16(b, address) }
func (b *mockBus) Load32(address uint32) uint32   { return b.mem.Load32(b, address) }
func (b *mockBus) Store8(address uint32, v uint8) { b.mem.Store8(b, address, v) }
func (b *mockBus) Store16(address uint32, v uint16) {
	b.mem.Store16(b, address, v)
}
func (b *mockBus) Store32(address uint32, v uint32) {
	b.mem.Store32(b, address, v)
}
func (b *mockBus) Waitstates() *memory.Waitstates { return b.mem.Waitstates() }
func (b *mockBus) AccessPage(address uint32) *instructions.Page {
	return b.mem.AccessPage(address)
}
func (b *mockBus) TestIRQ()      { b.irqTests++ }
func (b *mockBus) UpdateTimers() { b.updates++ }

func (b *mockBus) SoftwareInterrupt(function uint32) error {
	b.swi = append(b.swi, function)
	return nil
}

// arm places ARM opcodes in memory starting at the address
func (b *mockBus) arm(address uint32, opcodes ...uint32) {
	for i, op := range opcodes {
		b.Store32(address+uint32(i*4), op)
	}
}

// thumb places Thumb opcodes in memory starting at the address
func (b *mockBus) thumb(address uint32, opcodes ...uint16) {
	for i, op := range opcodes {
		b.Store16(address+uint32(i*2), op)
	}
}

func (b *mockBus) step(t *testing.T) {
	t.Helper()
	test.DemandSuccess(t, b.mc.Step(b))
}

func (b *mockBus) next() uint32 {
	pc, _ := b.mc.Pipeline()
	return pc
}

func TestReset(t *testing.T) {
	b := newMockBus(t)
	test.ExpectEquality(t, b.next(), uint32(origin))
	test.ExpectEquality(t, b.mc.Status.Mode, cpu.ModeSystem)
	test.ExpectFailure(t, b.mc.Status.Thumb)
	test.ExpectEquality(t, b.mc.Cycles(), int64(0))
}

func TestAddOverflow(t *testing.T) {
	b := newMockBus(t)

	// ADDS r2, r0, r1
	b.arm(origin, 0xe0902001)
	b.mc.R[0] = 0x7fffffff
	b.mc.R[1] = 0x00000001
	b.step(t)

	test.ExpectEquality(t, b.mc.R[2], uint32(0x80000000))
	test.ExpectSuccess(t, b.mc.Status.Negative)
	test.ExpectFailure(t, b.mc.Status.Zero)
	test.ExpectFailure(t, b.mc.Status.Carry)
	test.ExpectSuccess(t, b.mc.Status.Overflow)
}

func TestSubBorrow(t *testing.T) {
	b := newMockBus(t)

	// SUBS r2, r0, r1
	b.arm(origin, 0xe0502001)
	b.mc.R[0] = 0
	b.mc.R[1] = 1
	b.step(t)

	test.ExpectEquality(t, b.mc.R[2], uint32(0xffffffff))
	test.ExpectSuccess(t, b.mc.Status.Negative)
	test.ExpectFailure(t, b.mc.Status.Zero)
	test.ExpectFailure(t, b.mc.Status.Carry)
	test.ExpectFailure(t, b.mc.Status.Overflow)

	// SUBS r2, r1, r1. carry is set when there is no borrow
	b.arm(origin+4, 0xe0512001)
	b.step(t)
	test.ExpectEquality(t, b.mc.R[2], uint32(0))
	test.ExpectSuccess(t, b.mc.Status.Zero)
	test.ExpectSuccess(t, b.mc.Status.Carry)
}

func TestConditionFailed(t *testing.T) {
	b := newMockBus(t)

	// MOVEQ r0, #1 ; MOVNE r0, #2
	b.arm(origin, 0x03a00001, 0x13a00002)
	b.mc.Status.Zero = false
	b.step(t)
	test.ExpectEquality(t, b.mc.R[0], uint32(0))
	b.step(t)
	test.ExpectEquality(t, b.mc.R[0], uint32(2))

	// both instructions cost a single prefetch
	test.ExpectEquality(t, b.mc.Cycles(), int64(2))
	test.ExpectEquality(t, b.updates, 2)
}

func TestBranch(t *testing.T) {
	b := newMockBus(t)

	// B +8 ; the target of the branch is PC + 8 + offset
	b.arm(origin, 0xea000002)
	b.step(t)
	test.ExpectEquality(t, b.next(), uint32(origin+0x10))

	// BL -16 from origin+0x10 back to origin+0x08
	b.arm(origin+0x10, 0xebfffffc)
	b.step(t)
	test.ExpectEquality(t, b.next(), uint32(origin+0x08))
	test.ExpectEquality(t, b.mc.R[14], uint32(origin+0x14))
}

func TestBranchExchange(t *testing.T) {
	b := newMockBus(t)

	// BX r0 into Thumb code. MOVS r1, #5 in Thumb
	b.arm(origin, 0xe12fff10)
	b.thumb(origin+0x100, 0x2105)
	b.mc.R[0] = origin + 0x101
	b.step(t)

	test.ExpectSuccess(t, b.mc.Status.Thumb)
	test.ExpectEquality(t, b.next(), uint32(origin+0x100))

	b.step(t)
	test.ExpectEquality(t, b.mc.R[1], uint32(5))
	test.ExpectEquality(t, b.next(), uint32(origin+0x102))
}

func TestThumbLongBranch(t *testing.T) {
	b := newMockBus(t)
	b.mc.SetThumb(true)
	b.mc.Jump(origin)

	b.thumb(origin, 0xf000, 0xf87e)
	b.step(t)
	b.step(t)

	test.ExpectEquality(t, b.next(), uint32(origin+0x100))
	test.ExpectEquality(t, b.mc.R[14], uint32(origin+0x05))
}

func TestBlockTransfer(t *testing.T) {
	b := newMockBus(t)

	// STMDB sp!, {r0-r3} ; LDMIA sp!, {r4-r7}
	b.arm(origin, 0xe92d000f, 0xe8bd00f0)
	b.mc.R[13] = 0x03007f00
	for i := range 4 {
		b.mc.R[i] = uint32(0x100 + i)
	}

	b.step(t)
	test.ExpectEquality(t, b.mc.R[13], uint32(0x03007ef0))
	test.ExpectEquality(t, b.Load32(0x03007ef0), uint32(0x100))
	test.ExpectEquality(t, b.Load32(0x03007efc), uint32(0x103))

	b.step(t)
	test.ExpectEquality(t, b.mc.R[13], uint32(0x03007f00))
	for i := range 4 {
		test.ExpectEquality(t, b.mc.R[4+i], uint32(0x100+i))
	}
}

func TestLoadStore(t *testing.T) {
	b := newMockBus(t)

	// STR r1, [r0, #4]! ; LDRB r2, [r0], #-4 ; LDRSH r3, [r0, #4]
	b.arm(origin, 0xe5a01004, 0xe4502004, 0xe1d030f4)
	b.mc.R[0] = 0x02000000
	b.mc.R[1] = 0x0000f080

	b.step(t)
	test.ExpectEquality(t, b.mc.R[0], uint32(0x02000004))
	test.ExpectEquality(t, b.Load32(0x02000004), uint32(0x0000f080))

	b.step(t)
	test.ExpectEquality(t, b.mc.R[2], uint32(0x80))
	test.ExpectEquality(t, b.mc.R[0], uint32(0x02000000))

	b.step(t)
	test.ExpectEquality(t, b.mc.R[3], uint32(0xfffff080))
}

func TestMultiply(t *testing.T) {
	b := newMockBus(t)

	// MULS r2, r0, r1 ; UMULL r3, r4, r0, r1 ; SMULL r3, r4, r0, r1
	b.arm(origin, 0xe0120190, 0xe0843190, 0xe0c43190)
	b.mc.R[0] = 0xffffffff
	b.mc.R[1] = 0x00000002

	b.step(t)
	test.ExpectEquality(t, b.mc.R[2], uint32(0xfffffffe))
	test.ExpectSuccess(t, b.mc.Status.Negative)

	b.step(t)
	test.ExpectEquality(t, b.mc.R[4], uint32(0x00000001))
	test.ExpectEquality(t, b.mc.R[3], uint32(0xfffffffe))

	b.step(t)
	test.ExpectEquality(t, b.mc.R[4], uint32(0xffffffff))
	test.ExpectEquality(t, b.mc.R[3], uint32(0xfffffffe))
}

func TestModeBanking(t *testing.T) {
	b := newMockBus(t)
	b.mc.R[8] = 0x88
	b.mc.R[13] = 0x1313
	b.mc.R[14] = 0x1414

	b.mc.SwitchMode(cpu.ModeIRQ)
	test.ExpectEquality(t, b.mc.R[13], uint32(0))
	test.ExpectEquality(t, b.mc.R[8], uint32(0x88))
	b.mc.R[13] = 0xaaaa
	b.mc.SPSR = 0x1234

	b.mc.SwitchMode(cpu.ModeFIQ)
	test.ExpectEquality(t, b.mc.R[8], uint32(0))
	b.mc.R[8] = 0xf8

	b.mc.SwitchMode(cpu.ModeSystem)
	test.ExpectEquality(t, b.mc.R[8], uint32(0x88))
	test.ExpectEquality(t, b.mc.R[13], uint32(0x1313))
	test.ExpectEquality(t, b.mc.R[14], uint32(0x1414))

	b.mc.SwitchMode(cpu.ModeIRQ)
	test.ExpectEquality(t, b.mc.R[13], uint32(0xaaaa))
	test.ExpectEquality(t, b.mc.SPSR, uint32(0x1234))

	b.mc.SwitchMode(cpu.ModeFIQ)
	test.ExpectEquality(t, b.mc.R[8], uint32(0xf8))
}

func TestStatusTransfer(t *testing.T) {
	b := newMockBus(t)

	// MSR CPSR_fc, r0 ; MRS r1, CPSR
	b.arm(origin, 0xe129f000, 0xe10f1000)
	b.mc.R[0] = 0x80000012

	b.step(t)
	test.ExpectEquality(t, b.mc.Status.Mode, cpu.ModeIRQ)
	test.ExpectSuccess(t, b.mc.Status.Negative)
	test.ExpectFailure(t, b.mc.Status.IRQDisable)
	test.ExpectEquality(t, b.irqTests, 1)

	b.step(t)
	test.ExpectEquality(t, b.mc.R[1], uint32(0x80000012))
}

func TestInterrupt(t *testing.T) {
	b := newMockBus(t)

	// MOV r0, #1
	b.arm(origin, 0xe3a00001)
	b.step(t)

	b.mc.Status.IRQDisable = true
	b.mc.RaiseIRQ()
	test.ExpectEquality(t, b.mc.Status.Mode, cpu.ModeSystem)

	b.mc.Status.IRQDisable = false
	cpsr := b.mc.Status.Pack()
	b.mc.RaiseIRQ()
	test.ExpectEquality(t, b.mc.Status.Mode, cpu.ModeIRQ)
	test.ExpectSuccess(t, b.mc.Status.IRQDisable)
	test.ExpectEquality(t, b.mc.SPSR, cpsr)
	test.ExpectEquality(t, b.next(), uint32(cpu.VectorIRQ))

	// SUBS pc, lr, #4 returns to the instruction after the MOV
	test.ExpectEquality(t, b.mc.R[14]-4, uint32(origin+4))
}

func TestInterruptReturn(t *testing.T) {
	b := newMockBus(t)

	// the handler at the IRQ vector: MOV r1, #2 ; SUBS pc, lr, #4
	bios := make([]byte, 0x20)
	copy(bios[cpu.VectorIRQ:], []byte{0x02, 0x10, 0xa0, 0xe3, 0x04, 0xf0, 0x5e, 0xe2})
	test.DemandSuccess(t, b.mem.LoadBIOS(bios, false))

	// MOV r0, #1 ; MOV r0, #3
	b.arm(origin, 0xe3a00001, 0xe3a00003)
	b.step(t)

	b.mc.R[13] = 0x1313
	b.mc.R[14] = 0x1414
	b.mc.Status.Negative = true
	b.mc.Status.Carry = true
	cpsr := b.mc.Status.Pack()

	b.mc.RaiseIRQ()
	test.ExpectEquality(t, b.mc.Status.Mode, cpu.ModeIRQ)
	b.mc.R[13] = 0xaaaa

	b.step(t)
	test.ExpectEquality(t, b.mc.R[1], uint32(2))
	b.step(t)

	test.ExpectEquality(t, b.mc.Status.Pack(), cpsr)
	test.ExpectEquality(t, b.mc.Status.Mode, cpu.ModeSystem)
	test.ExpectEquality(t, b.mc.R[13], uint32(0x1313))
	test.ExpectEquality(t, b.mc.R[14], uint32(0x1414))
	test.ExpectEquality(t, b.next(), uint32(origin+4))

	b.step(t)
	test.ExpectEquality(t, b.mc.R[0], uint32(3))

	// the IRQ bank is kept for the next interrupt
	b.mc.SwitchMode(cpu.ModeIRQ)
	test.ExpectEquality(t, b.mc.R[13], uint32(0xaaaa))
}

func TestUndefinedInstruction(t *testing.T) {
	b := newMockBus(t)

	b.arm(origin, 0xe6000010)
	b.step(t)

	test.ExpectEquality(t, b.mc.Status.Mode, cpu.ModeUndefined)
	test.ExpectEquality(t, b.next(), uint32(cpu.VectorUndefined))
	test.ExpectEquality(t, b.mc.R[14], uint32(origin+4))
}

func TestSoftwareInterrupt(t *testing.T) {
	b := newMockBus(t)
	b.mc.SetThumb(true)
	b.mc.Jump(origin)

	// SWI 0x06 ; SWI 0x0b
	b.thumb(origin, 0xdf06, 0xdf0b)
	b.step(t)
	b.step(t)

	test.ExpectEquality(t, len(b.swi), 2)
	test.ExpectEquality(t, b.swi[0], uint32(0x06))
	test.ExpectEquality(t, b.swi[1], uint32(0x0b))
}

func TestSelfModifyingCode(t *testing.T) {
	b := newMockBus(t)

	// MOV r0, #1 ; B -8
	b.arm(origin, 0xe3a00001, 0xeafffffd)
	b.step(t)
	b.step(t)
	test.ExpectEquality(t, b.mc.R[0], uint32(1))
	test.ExpectEquality(t, b.next(), uint32(origin))

	// the first pass through the loop has cached both instructions
	first := b.AccessPage(origin)
	test.ExpectEquality(t, first.ARM[0].Op, instructions.OpMOV)

	// MOV r0, #2
	b.arm(origin, 0xe3a00002)
	test.ExpectSuccess(t, first.Invalid)

	b.step(t)
	test.ExpectEquality(t, b.mc.R[0], uint32(2))
}

func TestBIOSOutOfRange(t *testing.T) {
	b := newMockBus(t)

	// MOV r0, #7 ; B .
	test.DemandSuccess(t, b.mem.LoadBIOS([]byte{0x07, 0x00, 0xa0, 0xe3, 0xfe, 0xff, 0xff, 0xea}, false))

	// the BIOS is not mirrored. the word past the end reads as all bits set,
	// which decodes as a SWI
	b.mc.Jump(0x00004000)
	b.step(t)
	test.ExpectEquality(t, len(b.swi), 1)
	test.ExpectEquality(t, b.mc.R[0], uint32(0))

	b.mc.Jump(0x00000000)
	b.step(t)
	test.ExpectEquality(t, b.mc.R[0], uint32(7))

	b.mc.Jump(0x00004000)
	b.step(t)
	test.ExpectEquality(t, len(b.swi), 2)
}

func TestSnapshot(t *testing.T) {
	b := newMockBus(t)
	b.mc.R[3] = 0x33
	b.mc.SwitchMode(cpu.ModeSupervisor)

	s := b.mc.Snapshot()
	b.mc.R[3] = 0
	b.mc.SwitchMode(cpu.ModeSystem)

	test.DemandSuccess(t, b.mc.Plumb(s))
	test.ExpectEquality(t, b.mc.R[3], uint32(0x33))
	test.ExpectEquality(t, b.mc.Status.Mode, cpu.ModeSupervisor)

	s.Status.Mode = 0x05
	test.ExpectFailure(t, b.mc.Plumb(s))
}
