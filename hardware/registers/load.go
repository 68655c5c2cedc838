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

// Load8 reads a byte from the IO region. The byte is extracted from the
// halfword register it belongs to.
func (r *Registers) Load8(ctx Context, offset uint32) uint8 {
	v := r.Load16(ctx, offset&^1)
	return uint8(v >> ((offset & 1) << 3))
}

// Load32 reads a word from the IO region. The word is made up of two
// halfword registers.
func (r *Registers) Load32(ctx Context, offset uint32) uint32 {
	offset &^= 3

	if _, o, ok := dmaRegister(offset); ok && o == 0x08 {
		// the word count is write-only
		return uint32(r.Load16(ctx, offset|2)) << 16
	}

	switch offset {
	case IME:
		return uint32(r.Load16(ctx, offset))
	case JOY_RECV, JOY_TRANS:
		r.stub(offset, false)
		return 0
	}

	return uint32(r.Load16(ctx, offset)) | uint32(r.Load16(ctx, offset|2))<<16
}

// Load16 reads a halfword register.
func (r *Registers) Load16(ctx Context, offset uint32) uint16 {
	offset &^= 1

	if offset >= memorymap.SizeIO {
		logger.Logf(r.env, "io", "bad register read: %03x", offset)
		return ctx.OpenBus16()
	}

	if n, o, ok := dmaRegister(offset); ok {
		if o == 0x0a {
			return r.sch.DMA[n].Control
		}
		return r.writeOnly(ctx, offset)
	}

	if n, o, ok := timerRegister(offset); ok {
		if o == 0x00 {
			return r.sch.TimerRead(ctx, n)
		}
		return r.sch.Timers[n].Control
	}

	switch offset {
	case DISPCNT, GREENSWP, BG0CNT, BG1CNT, BG2CNT, BG3CNT, WININ, WINOUT,
		BLDCNT, BLDALPHA, SOUND1CNT_LO, SOUND3CNT_LO, SOUNDCNT_LO, SOUNDBIAS,
		RCNT, WAITCNT, POSTFLG:
		return r.Data[offset>>1]

	case DISPSTAT:
		return r.Data[offset>>1] | r.vid.ReadDisplayStat()
	case VCOUNT:
		return uint16(r.vid.VCount)

	case SOUND1CNT_HI, SOUND2CNT_LO:
		return r.Data[offset>>1] & 0xffc0
	case SOUND1CNT_X, SOUND2CNT_HI, SOUND3CNT_X:
		return r.Data[offset>>1] & 0x4000
	case SOUND3CNT_HI:
		return r.Data[offset>>1] & 0xe000
	case SOUND4CNT_LO:
		return r.Data[offset>>1] & 0xff00
	case SOUND4CNT_HI:
		return r.Data[offset>>1] & 0x40ff
	case SOUNDCNT_HI:
		return r.Data[offset>>1] & 0x770f
	case SOUNDCNT_X:
		return r.aud.ReadSoundControlX()

	case KEYINPUT:
		return r.keypad.KeyInput()

	case IE:
		return r.sch.IE
	case IF:
		return r.sch.IF
	case IME:
		if r.sch.IME {
			return 0x0001
		}
		return 0x0000

	case MOSAIC:
		logger.Logf(r.env, "io", "read of write-only register: %03x", offset)
		return 0

	case FIFO_A_LO, FIFO_A_HI, FIFO_B_LO, FIFO_B_HI, BLDY:
		return r.writeOnly(ctx, offset)

	case KEYCNT, SIOCNT, SIODATA8, JOYCNT, JOYSTAT:
		r.stub(offset, false)
		return r.Data[offset>>1]
	}

	switch {
	case offset >= BG0HOFS && offset <= WIN1V:
		return r.writeOnly(ctx, offset)
	case offset >= WAVE_RAM && offset <= WAVE_RAM_END:
		return r.Data[offset>>1]
	case offset >= SIOMULTI0 && offset <= SIOMULTI3:
		r.stub(offset, false)
		return r.Data[offset>>1]
	}

	logger.Logf(r.env, "io", "bad register read: %03x", offset)
	return ctx.OpenBus16()
}

func (r *Registers) writeOnly(ctx Context, offset uint32) uint16 {
	logger.Logf(r.env, "io", "read of write-only register: %03x", offset)
	return ctx.OpenBus16()
}
