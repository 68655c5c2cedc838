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
	"github.com/jetsetilly/gophergba/hardware/memory/memorymap"
	"github.com/jetsetilly/gophergba/logger"
)

// bits in the mode argument of CpuSet and CpuFastSet
const (
	setCount = 0x000fffff
	setFill  = 0x01000000
	setWord  = 0x04000000
)

func cpuSet(ctx Context, source uint32, dest uint32, mode uint32) {
	count := mode & setCount
	fill := mode&setFill == setFill

	if mode&setWord == setWord {
		source &^= 3
		dest &^= 3
		v := ctx.Load32(source)
		for i := uint32(0); i < count; i++ {
			if !fill {
				v = ctx.Load32(source + i<<2)
			}
			ctx.Store32(dest+i<<2, v)
		}
		return
	}

	source &^= 1
	dest &^= 1
	v := ctx.Load16(source)
	for i := uint32(0); i < count; i++ {
		if !fill {
			v = ctx.Load16(source + i<<1)
		}
		ctx.Store16(dest+i<<1, v)
	}
}

// CpuFastSet always transfers words and rounds the count up to a multiple of
// eight
func cpuFastSet(ctx Context, source uint32, dest uint32, mode uint32) {
	source &^= 3
	dest &^= 3
	count := mode & setCount
	count = (count + 7) &^ 7
	fill := mode&setFill == setFill

	v := ctx.Load32(source)
	for i := uint32(0); i < count; i++ {
		if !fill {
			v = ctx.Load32(source + i<<2)
		}
		ctx.Store32(dest+i<<2, v)
	}
}

// the areas cleared by RegisterRamReset, in order of the bits in the flags
// argument
var resetAreas = []struct {
	base uint32
	size uint32
}{
	{base: memorymap.BaseWRAM, size: memorymap.SizeWRAM},

	// the top of internal RAM holds the stacks and is never cleared
	{base: memorymap.BaseIRAM, size: memorymap.SizeIRAM - 0x200},

	{base: memorymap.BasePalette, size: memorymap.SizePalette},
	{base: memorymap.BaseVRAM, size: memorymap.SizeVRAM},
	{base: memorymap.BaseOAM, size: memorymap.SizeOAM},
}

func (h *HLE) registerRAMReset(ctx Context, flags uint32) {
	for i, area := range resetAreas {
		if flags&(1<<i) == 0 {
			continue
		}
		for a := area.base; a < area.base+area.size; a += 4 {
			ctx.Store32(a, 0)
		}
	}
	if flags&0xe0 != 0 {
		logger.Logf(h.env, "bios", "unimplemented RegisterRamReset of registers: %02x", flags&0xe0)
	}
}
