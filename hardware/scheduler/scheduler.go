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

package scheduler

import (
	"github.com/jetsetilly/gophergba/environment"
	"github.com/jetsetilly/gophergba/hardware/audio"
	"github.com/jetsetilly/gophergba/hardware/memory"
	"github.com/jetsetilly/gophergba/hardware/video"
)

// The interrupt sources. The values are the bit numbers in the IE and IF
// registers.
const (
	IRQVBlank   = video.IRQVBlank
	IRQHBlank   = video.IRQHBlank
	IRQVCounter = video.IRQVCounter
	IRQTimer0   = 3
	IRQTimer1   = 4
	IRQTimer2   = 5
	IRQTimer3   = 6
	IRQSerial   = 7
	IRQDMA0     = 8
	IRQDMA1     = 9
	IRQDMA2     = 10
	IRQDMA3     = 11
	IRQKeypad   = 12
	IRQGamepak  = 13

	NumIRQs = 14
)

// Context is the view the scheduler has of the rest of the machine. It is
// borrowed for the duration of a single call.
type Context interface {
	// the cycle count of the CPU
	Cycles() int64
	SetCycles(cycles int64)

	// enter the CPU's interrupt exception
	RaiseCPUIRQ()

	// memory access used by DMA transfers
	Load16(address uint32) uint16
	Load32(address uint32) uint32
	Store16(address uint32, value uint16)
	Store32(address uint32, value uint32)

	Waitstates() *memory.Waitstates
}

// Scheduler owns the interrupt controller, the timers and the DMA channels. It
// also decides when the video and audio need to be brought up to date with the
// CPU.
type Scheduler struct {
	env *environment.Environment

	video *video.Video
	audio *audio.Audio

	// interrupt master enable (IME), interrupts enabled (IE) and interrupts
	// pending (IF)
	IME bool
	IE  uint16
	IF  uint16

	Timers [NumTimers]Timer
	DMA    [NumDMA]DMA

	// the cycle count at which something next needs attention. updates are
	// skipped until then
	nextEvent int64

	// an interrupt has been raised and the CPU should take it at the end of
	// the current update
	spring bool

	// the HALTCNT register has been written to or the BIOS has requested a
	// halt. the halt happens before the next instruction
	haltRequested bool
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type.
func NewScheduler(env *environment.Environment, vid *video.Video, aud *audio.Audio) *Scheduler {
	sch := &Scheduler{
		env:   env,
		video: vid,
		audio: aud,
	}
	sch.Reset()
	return sch
}

// Reset interrupt controller, timers and DMA channels.
func (sch *Scheduler) Reset() {
	sch.IME = false
	sch.IE = 0
	sch.IF = 0
	for i := range sch.Timers {
		sch.Timers[i] = Timer{Interval: 1}
	}
	for i := range sch.DMA {
		sch.DMA[i] = DMA{}
	}
	sch.nextEvent = 0
	sch.spring = false
	sch.haltRequested = false
}

// Snapshot creates a copy of the scheduler in its current state.
func (sch *Scheduler) Snapshot() *Scheduler {
	n := *sch
	return &n
}

// Plumb a previously snapshotted scheduler. The video and audio attached to
// the scheduler are kept.
func (sch *Scheduler) Plumb(s *Scheduler) {
	env := sch.env
	vid := sch.video
	aud := sch.audio
	*sch = *s
	sch.env = env
	sch.video = vid
	sch.audio = aud
}

// NextEvent returns the cycle count at which the scheduler next needs
// attention.
func (sch *Scheduler) NextEvent() int64 {
	return sch.nextEvent
}

// events adapts the scheduler to the context interfaces of the video and
// audio
type events struct {
	sch *Scheduler
	ctx Context
}

func (e events) RaiseIRQ(irq int) {
	e.sch.RaiseIRQ(irq)
}

func (e events) RunHBlankDMAs() {
	e.sch.runDMAs(e.ctx, TimingHBlank)
}

func (e events) RunVBlankDMAs() {
	e.sch.runDMAs(e.ctx, TimingVBlank)
}

func (e events) RefillFIFO(channel int) {
	e.sch.DMA[channel].NextCount = 4
	e.sch.serviceDMA(e.ctx, channel)
}

// UpdateTimers brings the video, audio, timers and DMA channels up to date
// with the CPU. Returns any error from the audio sink.
func (sch *Scheduler) UpdateTimers(ctx Context) error {
	cycles := ctx.Cycles()
	if sch.nextEvent > cycles && !sch.spring {
		return nil
	}

	ev := events{sch: sch, ctx: ctx}

	sch.video.UpdateTimers(cycles, ev)
	err := sch.audio.UpdateTimers(cycles)

	for i := range sch.Timers {
		t := &sch.Timers[i]
		if !t.Enable || t.CountUp {
			continue
		}
		for cycles >= t.NextEvent {
			t.LastEvent = t.NextEvent
			t.NextEvent += t.Interval
			sch.overflow(ev, i)
		}
	}

	for i := range sch.DMA {
		d := &sch.DMA[i]
		if d.DoIRQ && d.NextIRQ != 0 && cycles >= d.NextIRQ {
			d.NextIRQ = 0
			sch.RaiseIRQ(IRQDMA0 + i)
		}
	}

	sch.pollNextEvent()

	if sch.spring {
		sch.spring = false
		ctx.RaiseCPUIRQ()
	}

	return err
}

// pollNextEvent finds the earliest cycle count at which something needs
// attention. zero if nothing is scheduled
func (sch *Scheduler) pollNextEvent() {
	var next int64

	test := func(e int64) {
		if e != 0 && (next == 0 || e < next) {
			next = e
		}
	}

	test(sch.video.NextEvent())
	test(sch.audio.NextEvent())

	for i := range sch.Timers {
		t := &sch.Timers[i]
		if t.Enable && !t.CountUp {
			test(t.NextEvent)
		}
	}

	for i := range sch.DMA {
		d := &sch.DMA[i]
		if d.DoIRQ {
			test(d.NextIRQ)
		}
	}

	sch.nextEvent = next
}
