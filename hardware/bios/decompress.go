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

// destination of decompressed data. VRAM can not be written a byte at a time
// so in halfword mode every pair of bytes is written as a halfword
type output struct {
	ctx      Context
	address  uint32
	halfword bool
	buffer   uint16
}

func (o *output) write(v uint8) {
	if o.halfword {
		o.buffer = o.buffer>>8 | uint16(v)<<8
		if o.address&1 == 1 {
			o.ctx.Store16(o.address-1, o.buffer)
		}
	} else {
		o.ctx.Store8(o.address, v)
	}
	o.address++
}

// the length of the decompressed data is in the top 24 bits of the header
// word. the type of compression in the bottom byte is assumed to be correct
func header(ctx Context, source uint32) uint32 {
	return ctx.Load32(source) >> 8
}

func lz77(ctx Context, source uint32, dest uint32, halfword bool) {
	remaining := header(ctx, source)
	src := source + 4
	out := output{ctx: ctx, address: dest, halfword: halfword}

	for remaining > 0 {
		flags := ctx.Load8(src)
		src++

		for b := 0; b < 8 && remaining > 0; b++ {
			if flags&0x80 == 0 {
				out.write(ctx.Load8(src))
				src++
				remaining--
			} else {
				// a reference to data already written. four bits of length
				// and twelve bits of displacement
				block := uint32(ctx.Load8(src)) | uint32(ctx.Load8(src+1))<<8
				src += 2
				disp := out.address - ((block&0x000f)<<8 | (block&0xff00)>>8) - 1
				n := (block&0x00f0)>>4 + 3
				for ; n > 0 && remaining > 0; n-- {
					out.write(ctx.Load8(disp))
					disp++
					remaining--
				}
			}
			flags <<= 1
		}
	}
}

func runLength(ctx Context, source uint32, dest uint32, halfword bool) {
	source &^= 3
	remaining := header(ctx, source)
	padding := (4 - remaining) & 3
	src := source + 4
	out := output{ctx: ctx, address: dest, halfword: halfword}

	for remaining > 0 {
		flag := ctx.Load8(src)
		src++

		if flag&0x80 == 0 {
			// uncompressed run
			n := uint32(flag) + 1
			for ; n > 0 && remaining > 0; n-- {
				out.write(ctx.Load8(src))
				src++
				remaining--
			}
		} else {
			// compressed run of a single byte
			n := uint32(flag&0x7f) + 3
			v := ctx.Load8(src)
			src++
			for ; n > 0 && remaining > 0; n-- {
				out.write(v)
				remaining--
			}
		}
	}

	for ; padding > 0; padding-- {
		ctx.Store8(out.address, 0)
		out.address++
	}
}
