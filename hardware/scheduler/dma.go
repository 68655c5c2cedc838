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
	"github.com/jetsetilly/gophergba/hardware/memory/memorymap"
	"github.com/jetsetilly/gophergba/logger"
)

// NumDMA is the number of DMA channels.
const NumDMA = 4

// DMA start timing.
const (
	TimingNow = iota
	TimingVBlank
	TimingHBlank
	TimingSpecial
)

// address control. the increment-reload setting is only meaningful for the
// destination address
const (
	addrIncrement = iota
	addrDecrement
	addrFixed
	addrIncrementReload
)

// the change to the address after each unit has been transferred, in units
var addressOffset = [4]int32{1, -1, 0, 1}

// DMA is one of the four DMA channels.
type DMA struct {
	// the values written to the address and count registers
	Source uint32
	Dest   uint32
	Count  uint32

	// the state of the transfer in progress
	NextSource uint32
	NextDest   uint32
	NextCount  uint32

	// the control register as seen by the CPU
	Control uint16

	SrcControl int
	DstControl int
	Repeat     bool
	Width      uint32
	DRQ        bool
	Timing     int
	DoIRQ      bool
	Enable     bool

	// the cycle count at which the completion interrupt should be raised. zero
	// if no interrupt is pending
	NextIRQ int64
}

// DMASetSourceAddress sets the source address of the channel. It takes
// effect when the channel is next enabled.
func (sch *Scheduler) DMASetSourceAddress(n int, address uint32) {
	sch.DMA[n].Source = address &^ 0x01
}

// DMASetDestAddress sets the destination address of the channel. It takes
// effect when the channel is next enabled.
func (sch *Scheduler) DMASetDestAddress(n int, address uint32) {
	sch.DMA[n].Dest = address &^ 0x01
}

// DMASetWordCount sets the number of units to transfer. A count of zero is the
// maximum count for the channel.
func (sch *Scheduler) DMASetWordCount(n int, count uint16) {
	switch {
	case count != 0:
		sch.DMA[n].Count = uint32(count)
	case n == 3:
		sch.DMA[n].Count = 0x10000
	default:
		sch.DMA[n].Count = 0x4000
	}
}

// DMAWriteControl sets the value of the channel's control register. Enabling
// the channel starts the transfer immediately if the timing is TimingNow.
func (sch *Scheduler) DMAWriteControl(ctx Context, n int, control uint16) {
	d := &sch.DMA[n]
	wasEnabled := d.Enable

	d.Control = control & 0xffe0
	d.DstControl = int(control&0x0060) >> 5
	d.SrcControl = int(control&0x0180) >> 7
	d.Repeat = control&0x0200 == 0x0200
	d.Width = 2
	if control&0x0400 == 0x0400 {
		d.Width = 4
	}
	d.DRQ = control&0x0800 == 0x0800
	d.Timing = int(control&0x3000) >> 12
	d.DoIRQ = control&0x4000 == 0x4000
	d.Enable = control&0x8000 == 0x8000
	d.NextIRQ = 0

	if d.DRQ {
		logger.Logf(sch.env, "dma", "DMA%d: game pak DRQ is not supported", n)
	}

	if !wasEnabled && d.Enable {
		d.NextSource = d.Source
		d.NextDest = d.Dest
		d.NextCount = d.Count
		sch.scheduleDMA(ctx, n)
	}
}

// scheduleDMA decides when the transfer of an enabled channel happens
func (sch *Scheduler) scheduleDMA(ctx Context, n int) {
	d := &sch.DMA[n]

	switch d.Timing {
	case TimingNow:
		sch.serviceDMA(ctx, n)

	case TimingHBlank, TimingVBlank:
		// started by the video timing

	case TimingSpecial:
		switch n {
		case 0:
			logger.Log(sch.env, "dma", "DMA0: special timing is not possible. ignoring")
		case 1, 2:
			if sch.audio.ScheduleFIFO(n, d.Dest) {
				d.DstControl = addrFixed
			} else {
				logger.Logf(sch.env, "dma", "DMA%d: special timing with a destination that is not a sound FIFO (%08x)", n, d.Dest)
			}
		case 3:
			logger.Log(sch.env, "dma", "DMA3: video capture is not supported")
		}
	}
}

// runDMAs services every enabled channel with the timing
func (sch *Scheduler) runDMAs(ctx Context, timing int) {
	for i := range sch.DMA {
		d := &sch.DMA[i]
		if d.Enable && d.Timing == timing {
			sch.serviceDMA(ctx, i)
		}
	}
}

// ServiceDMA performs the transfer of the channel. Nothing happens if the
// channel is not enabled.
func (sch *Scheduler) ServiceDMA(ctx Context, n int) {
	sch.serviceDMA(ctx, n)
}

func (sch *Scheduler) serviceDMA(ctx Context, n int) {
	d := &sch.DMA[n]
	if !d.Enable {
		return
	}

	// the sound FIFOs are always refilled a word at a time
	width := d.Width
	if d.Timing == TimingSpecial && (n == 1 || n == 2) {
		width = 4
	}

	srcOffset := uint32(addressOffset[d.SrcControl] * int32(width))
	dstOffset := uint32(addressOffset[d.DstControl] * int32(width))

	src := d.NextSource
	dst := d.NextDest
	count := d.NextCount

	srcRegion := memorymap.RegionOf(src)
	dstRegion := memorymap.RegionOf(dst)

	if width == 4 {
		src &^= 0x03
		dst &^= 0x03
		for ; count > 0; count-- {
			ctx.Store32(dst, ctx.Load32(src))
			src += srcOffset
			dst += dstOffset
		}
	} else {
		for ; count > 0; count-- {
			ctx.Store16(dst, ctx.Load16(src))
			src += srcOffset
			dst += dstOffset
		}
	}

	if d.DoIRQ {
		ws := ctx.Waitstates()
		cost := int64(2)
		if width == 4 {
			cost += int64(ws.NonSeq32[srcRegion] + ws.NonSeq32[dstRegion])
			cost += (int64(d.Count) - 1) * int64(ws.Seq32[srcRegion]+ws.Seq32[dstRegion])
		} else {
			cost += int64(ws.NonSeq[srcRegion] + ws.NonSeq[dstRegion])
			cost += (int64(d.Count) - 1) * int64(ws.Seq[srcRegion]+ws.Seq[dstRegion])
		}
		d.NextIRQ = ctx.Cycles() + cost
	}

	d.NextSource = src
	d.NextDest = dst
	d.NextCount = count

	// a transfer with immediate timing can not repeat
	if !d.Repeat || d.Timing == TimingNow {
		d.Enable = false
		d.Control &= 0x7fe0
	} else {
		d.NextCount = d.Count
		if d.DstControl == addrIncrementReload {
			d.NextDest = d.Dest
		}
		sch.scheduleDMA(ctx, n)
	}

	sch.pollNextEvent()
}
