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

package registers

import (
	"github.com/jetsetilly/gophergba/hardware/memory/memorymap"
	"github.com/jetsetilly/gophergba/logger"
)

// Store8 writes a byte to the IO region. Bytes written to most registers are
// merged with the other half of the register and written as a halfword.
func (r *Registers) Store8(ctx Context, offset uint32, value uint8) {
	if offset >= memorymap.SizeIO {
		r.stub(offset, true)
		return
	}

	switch offset {
	case HALTCNT:
		r.haltControl(value)
		return
	case POSTFLG:
		r.Data[POSTFLG>>1] = r.Data[POSTFLG>>1]&0xff00 | uint16(value&0x01)
		return
	case IF, IF + 1:
		r.sch.DismissIRQs(uint16(value) << ((offset & 1) << 3))
		return
	}

	if offset >= FIFO_A_LO && offset <= FIFO_B_HI+1 {
		r.stub(offset, true)
		return
	}

	shift := (offset & 1) << 3
	v := r.current(offset &^ 1)
	v = v&^(0xff<<shift) | uint16(value)<<shift
	r.Store16(ctx, offset&^1, v)
}

// the value of the register as it would be seen by a byte write that needs to
// merge with it
func (r *Registers) current(offset uint32) uint16 {
	if n, o, ok := dmaRegister(offset); ok && o == 0x0a {
		return r.sch.DMA[n].Control
	}
	if n, o, ok := timerRegister(offset); ok && o == 0x00 {
		return r.sch.Timers[n].Reload
	}
	return r.Data[offset>>1]
}

// Store32 writes a word to the IO region. The word is written as two
// halfwords except for the registers that are naturally 32 bits wide.
func (r *Registers) Store32(ctx Context, offset uint32, value uint32) {
	offset &^= 3

	switch offset {
	case FIFO_A_LO:
		r.aud.AppendFIFO(0, value)
		return
	case FIFO_B_LO:
		r.aud.AppendFIFO(1, value)
		return
	case IME:
		r.Store16(ctx, offset, uint16(value))
		return
	case JOY_RECV, JOY_TRANS:
		r.stub(offset, true)
		return
	}

	if n, o, ok := dmaRegister(offset); ok && (o == 0x00 || o == 0x04) {
		r.Data[offset>>1] = uint16(value)
		r.Data[offset>>1+1] = uint16(value >> 16)
		r.setDMAAddress(n, o, value)
		return
	}

	r.Store16(ctx, offset, uint16(value))
	r.Store16(ctx, offset|2, uint16(value>>16))
}

// Store16 writes a halfword register.
func (r *Registers) Store16(ctx Context, offset uint32, value uint16) {
	offset &^= 1

	if offset >= memorymap.SizeIO {
		r.stub(offset, true)
		return
	}

	if n, o, ok := dmaRegister(offset); ok {
		r.storeDMA(ctx, n, o, offset, value)
		return
	}

	if n, o, ok := timerRegister(offset); ok {
		if o == 0x00 {
			r.sch.TimerSetReload(n, value)
			return
		}
		value &= 0x00c7
		r.sch.TimerWriteControl(ctx, n, value)
		r.Data[offset>>1] = value
		return
	}

	switch offset {
	case DISPSTAT:
		value &= 0xff38
		r.vid.WriteDisplayStat(value)
	case VCOUNT, KEYINPUT:
		// read-only
		return

	case BG0CNT, BG1CNT:
		value &= 0xdfff
	case WININ, WINOUT:
		value &= 0x3f3f
	case BLDCNT:
		value &= 0x7fff
	case BLDALPHA:
		value &= 0x1f1f
	case BLDY:
		value &= 0x001f

	// the tone and noise channels are not emulated. the registers are stored
	// so that they read back correctly. the restart bits are never stored
	case SOUND1CNT_LO:
		value &= 0x007f
	case SOUND1CNT_X, SOUND2CNT_HI, SOUND3CNT_X:
		value &= 0x47ff
	case SOUND3CNT_LO:
		value &= 0x00e0
	case SOUND3CNT_HI:
		value &= 0xe0ff
	case SOUND4CNT_LO:
		value &= 0xff3f
	case SOUND4CNT_HI:
		value &= 0x40ff
	case SOUNDCNT_LO:
		value &= 0xff77

	case SOUNDCNT_HI:
		value &= 0xff0f
		r.aud.WriteSoundControlHi(value)
	case SOUNDCNT_X:
		value &= 0x0080
		r.aud.WriteSoundControlX(ctx.Cycles(), value)

	case FIFO_A_LO, FIFO_A_HI, FIFO_B_LO, FIFO_B_HI:
		r.stub(offset, true)
		return

	case IE:
		value &= 0x3fff
		r.sch.SetInterruptsEnabled(value)
	case IF:
		r.sch.DismissIRQs(value)
		return
	case WAITCNT:
		value &= 0xdfff
		r.ws.Adjust(value)
	case IME:
		value &= 0x0001
		r.sch.MasterEnable(value == 0x0001)

	case POSTFLG:
		r.Data[POSTFLG>>1] = r.Data[POSTFLG>>1]&0xff00 | value&0x0001
		r.haltControl(uint8(value >> 8))
		return

	case KEYCNT, SIOCNT, SIODATA8, RCNT, JOYCNT, JOYSTAT:
		r.stub(offset, true)

	default:
		// video and sound registers below the DMA registers have no side
		// effects
		if offset >= DMA0SAD_LO {
			r.stub(offset, true)
		}
	}

	r.Data[offset>>1] = value
}

// the registers of a DMA channel. the address registers are 32 bits wide and
// a halfword write is merged with the other half
func (r *Registers) storeDMA(ctx Context, n int, o uint32, offset uint32, value uint16) {
	switch o {
	case 0x00, 0x04:
		r.Data[offset>>1] = value
		r.setDMAAddress(n, o, uint32(r.Data[offset>>1+1])<<16|uint32(value))
	case 0x02, 0x06:
		r.Data[offset>>1] = value
		r.setDMAAddress(n, o-2, uint32(r.Data[offset>>1-1])|uint32(value)<<16)
	case 0x08:
		r.Data[offset>>1] = value
		r.sch.DMASetWordCount(n, value)
	case 0x0a:
		// the register is updated before the control value is written because
		// writing the control value can start a transfer immediately
		r.Data[offset>>1] = value & 0xffe0
		r.sch.DMAWriteControl(ctx, n, value)
	}
}

func (r *Registers) setDMAAddress(n int, o uint32, address uint32) {
	if o == 0x00 {
		r.sch.DMASetSourceAddress(n, address)
	} else {
		r.sch.DMASetDestAddress(n, address)
	}
}

// the HALTCNT register. the CPU is halted before the next instruction
func (r *Registers) haltControl(value uint8) {
	r.Data[HALTCNT>>1] = r.Data[HALTCNT>>1]&0x00ff | uint16(value)<<8
	if value&0x80 == 0x80 {
		logger.Log(r.env, "io", "stop mode is not supported. halting instead")
	}
	r.sch.RequestHalt()
}
