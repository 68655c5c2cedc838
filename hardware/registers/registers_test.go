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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gophergba/environment"
	"github.com/jetsetilly/gophergba/hardware/audio"
	"github.com/jetsetilly/gophergba/hardware/memory"
	"github.com/jetsetilly/gophergba/hardware/memory/memorymap"
	"github.com/jetsetilly/gophergba/hardware/registers"
	"github.com/jetsetilly/gophergba/hardware/scheduler"
	"github.com/jetsetilly/gophergba/hardware/video"
	"github.com/jetsetilly/gophergba/test"
)

const openBus = 0xdead

type context struct {
	cycles int64
	mem    *memory.Memory
}

func (ctx *context) Cycles() int64                  { return ctx.cycles }
func (ctx *context) SetCycles(cycles int64)         { ctx.cycles = cycles }
func (ctx *context) RaiseCPUIRQ()                   {}
func (ctx *context) Waitstates() *memory.Waitstates { return ctx.mem.Waitstates() }
func (ctx *context) OpenBus16() uint16              { return openBus }

func (ctx *context) Load16(address uint32) uint16 { return ctx.mem.Load16(ctx, address) }
func (ctx *context) Load32(address uint32) uint32 { return ctx.mem.Load32(ctx, address) }
func (ctx *context) Store16(address uint32, value uint16) {
	ctx.mem.Store16(ctx, address, value)
}
func (ctx *context) Store32(address uint32, value uint32) {
	ctx.mem.Store32(ctx, address, value)
}

// memory.Context. the tests do not transfer to or from the IO region
func (ctx *context) Pipeline() (uint32, bool)     { return 0, false }
func (ctx *context) LoadIO8(_ uint32) uint8       { return 0 }
func (ctx *context) LoadIO16(_ uint32) uint16     { return 0 }
func (ctx *context) LoadIO32(_ uint32) uint32     { return 0 }
func (ctx *context) StoreIO8(_ uint32, _ uint8)   {}
func (ctx *context) StoreIO16(_ uint32, _ uint16) {}
func (ctx *context) StoreIO32(_ uint32, _ uint32) {}

type fixture struct {
	ctx  *context
	sch  *scheduler.Scheduler
	vid  *video.Video
	aud  *audio.Audio
	regs *registers.Registers
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	env.Normalise()

	f := &fixture{
		ctx: &context{mem: memory.NewMemory(env)},
		vid: video.NewVideo(nil),
		aud: audio.NewAudio(nil),
	}
	f.sch = scheduler.NewScheduler(env, f.vid, f.aud)
	f.regs = registers.NewRegisters(env, f.sch, f.vid, f.aud, f.ctx.mem.Waitstates())
	return f
}

type keypad uint16

func (k keypad) KeyInput() uint16 {
	return uint16(k)
}

func TestReset(t *testing.T) {
	f := newFixture(t)
	test.ExpectEquality(t, f.regs.Load16(f.ctx, registers.DISPCNT), uint16(0x0080))
	test.ExpectEquality(t, f.regs.Load16(f.ctx, registers.SOUNDBIAS), uint16(0x0200))
	test.ExpectEquality(t, f.regs.Load16(f.ctx, registers.RCNT), uint16(0x8000))
	test.ExpectEquality(t, f.regs.Peek(registers.BG2PA), uint16(0x0001))
	test.ExpectEquality(t, f.regs.Peek(registers.BG3PD), uint16(0x0001))
	test.ExpectEquality(t, f.regs.Load16(f.ctx, registers.KEYINPUT), uint16(0x03ff))
}

func TestKeypad(t *testing.T) {
	f := newFixture(t)
	f.regs.SetKeypad(keypad(0x03fe))
	test.ExpectEquality(t, f.regs.Load16(f.ctx, registers.KEYINPUT), uint16(0x03fe))
	test.ExpectEquality(t, f.regs.Load8(f.ctx, registers.KEYINPUT), uint8(0xfe))
	test.ExpectEquality(t, f.regs.Load8(f.ctx, registers.KEYINPUT+1), uint8(0x03))

	// the register can not be written to
	f.regs.Store16(f.ctx, registers.KEYINPUT, 0x0000)
	test.ExpectEquality(t, f.regs.Load16(f.ctx, registers.KEYINPUT), uint16(0x03fe))
}

func TestDMARegisters(t *testing.T) {
	f := newFixture(t)

	// halfword writes to the address registers are merged
	f.regs.Store16(f.ctx, registers.DMA0SAD_LO, 0x0010)
	f.regs.Store16(f.ctx, registers.DMA0SAD_HI, 0x0300)
	test.ExpectEquality(t, f.sch.DMA[0].Source, uint32(0x03000010))

	f.regs.Store32(f.ctx, registers.DMA0DAD_LO, 0x02000020)
	test.ExpectEquality(t, f.sch.DMA[0].Dest, uint32(0x02000020))

	// addresses are write-only
	test.ExpectEquality(t, f.regs.Load16(f.ctx, registers.DMA0SAD_LO), uint16(openBus))

	f.ctx.Store16(0x03000010, 0xbeef)

	// the word count and control are written in one go. the transfer starts
	// immediately and the enable bit is cleared when it completes
	f.regs.Store32(f.ctx, registers.DMA0CNT_LO, 0x80000001)
	test.ExpectEquality(t, f.ctx.Load16(0x02000020), uint16(0xbeef))
	test.ExpectEquality(t, f.regs.Load16(f.ctx, registers.DMA0CNT_HI), uint16(0x0000))
	test.ExpectEquality(t, f.regs.Load32(f.ctx, registers.DMA0CNT_LO), uint32(0x00000000))

	// repeating transfers with VBlank timing stay enabled
	f.regs.Store16(f.ctx, registers.DMA3CNT_HI, 0x9200)
	test.ExpectEquality(t, f.regs.Load16(f.ctx, registers.DMA3CNT_HI), uint16(0x9200))
	test.ExpectSuccess(t, f.sch.DMA[3].Enable)
}

func TestTimerRegisters(t *testing.T) {
	f := newFixture(t)

	f.regs.Store16(f.ctx, registers.TM0CNT_LO, 0xff00)
	f.regs.Store16(f.ctx, registers.TM0CNT_HI, 0x00ff)
	test.ExpectEquality(t, f.regs.Load16(f.ctx, registers.TM0CNT_HI), uint16(0x00c7))

	// prescaler of 1024
	f.ctx.cycles = 0x10 << 10
	test.ExpectEquality(t, f.regs.Load16(f.ctx, registers.TM0CNT_LO), uint16(0xff10))

	// a byte write to the reload value is merged with the current reload value
	f.regs.Store8(f.ctx, registers.TM0CNT_LO, 0x80)
	test.ExpectEquality(t, f.sch.Timers[0].Reload, uint16(0xff80))
}

func TestInterruptRegisters(t *testing.T) {
	f := newFixture(t)

	f.regs.Store16(f.ctx, registers.IE, 0xffff)
	test.ExpectEquality(t, f.regs.Load16(f.ctx, registers.IE), uint16(0x3fff))

	f.sch.RaiseIRQ(scheduler.IRQVBlank)
	f.sch.RaiseIRQ(scheduler.IRQTimer3)
	test.ExpectEquality(t, f.regs.Load16(f.ctx, registers.IF), uint16(0x0041))

	// writing to IF acknowledges interrupts
	f.regs.Store16(f.ctx, registers.IF, 0x0001)
	test.ExpectEquality(t, f.regs.Load16(f.ctx, registers.IF), uint16(0x0040))
	f.regs.Store8(f.ctx, registers.IF, 0x40)
	test.ExpectEquality(t, f.regs.Load16(f.ctx, registers.IF), uint16(0x0000))

	// only the low bit of IME is used
	f.regs.Store32(f.ctx, registers.IME, 0xffffffff)
	test.ExpectEquality(t, f.regs.Load32(f.ctx, registers.IME), uint32(0x00000001))
	test.ExpectSuccess(t, f.sch.IME)
}

func TestDisplayStat(t *testing.T) {
	f := newFixture(t)

	f.regs.Store16(f.ctx, registers.DISPSTAT, 0xffff)
	test.ExpectEquality(t, f.regs.Load16(f.ctx, registers.DISPSTAT), uint16(0xff38))
	test.ExpectEquality(t, f.vid.VCountSetting, 0xff)
	test.ExpectSuccess(t, f.vid.VBlankIRQ)

	f.vid.InHBlank = true
	test.ExpectEquality(t, f.regs.Load16(f.ctx, registers.DISPSTAT), uint16(0xff3a))

	f.vid.VCount = 100
	test.ExpectEquality(t, f.regs.Load16(f.ctx, registers.VCOUNT), uint16(100))
}

func TestWaitControl(t *testing.T) {
	f := newFixture(t)
	ws := f.ctx.mem.Waitstates()

	f.regs.Store16(f.ctx, registers.WAITCNT, 0xffff)
	test.ExpectEquality(t, f.regs.Load16(f.ctx, registers.WAITCNT), uint16(0xdfff))
	test.ExpectEquality(t, ws.NonSeq[memorymap.CartSRAM], 8)

	f.regs.Store8(f.ctx, registers.WAITCNT, 0x00)
	test.ExpectEquality(t, f.regs.Load16(f.ctx, registers.WAITCNT), uint16(0xdf00))
	test.ExpectEquality(t, ws.NonSeq[memorymap.CartSRAM], 4)
}

func TestHaltControl(t *testing.T) {
	f := newFixture(t)
	test.ExpectFailure(t, f.sch.HaltRequested())
	f.regs.Store8(f.ctx, registers.HALTCNT, 0x00)
	test.ExpectSuccess(t, f.sch.HaltRequested())
}

func TestSound(t *testing.T) {
	f := newFixture(t)

	f.regs.Store16(f.ctx, registers.SOUNDCNT_X, 0x0080)
	test.ExpectSuccess(t, f.aud.Enabled())
	test.ExpectEquality(t, f.regs.Load16(f.ctx, registers.SOUNDCNT_X), uint16(0x0080))

	// FIFO A to both speakers, full volume, driven by timer 0
	f.regs.Store16(f.ctx, registers.SOUNDCNT_HI, 0x0304)
	test.ExpectSuccess(t, f.aud.FIFO[0].Left)
	test.ExpectSuccess(t, f.aud.FIFO[0].Right)
	test.ExpectSuccess(t, f.aud.FIFO[0].FullVolume)

	f.regs.Store32(f.ctx, registers.FIFO_A_LO, 0x04030201)
	test.ExpectEquality(t, len(f.aud.FIFO[0].Data), 4)
	test.ExpectEquality(t, f.regs.Load16(f.ctx, registers.FIFO_A_LO), uint16(openBus))
}

func TestBadRegister(t *testing.T) {
	f := newFixture(t)
	test.ExpectEquality(t, f.regs.Load16(f.ctx, 0x3fe), uint16(openBus))
	test.ExpectEquality(t, f.regs.Load16(f.ctx, registers.BG0HOFS), uint16(openBus))
	test.ExpectEquality(t, f.regs.Load16(f.ctx, registers.MOSAIC), uint16(0))
}

func TestSnapshot(t *testing.T) {
	f := newFixture(t)

	f.regs.Store16(f.ctx, registers.BLDCNT, 0x1234)
	f.regs.Store16(f.ctx, registers.WAITCNT, 0x0003)
	s := f.regs.Snapshot()

	f.regs.Store16(f.ctx, registers.BLDCNT, 0x0000)
	f.regs.Store16(f.ctx, registers.WAITCNT, 0x0000)

	f.regs.Plumb(s)
	test.ExpectEquality(t, f.regs.Load16(f.ctx, registers.BLDCNT), uint16(0x1234))
	test.ExpectEquality(t, f.ctx.mem.Waitstates().NonSeq[memorymap.CartSRAM], 8)
}
