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

package memory

import "github.com/jetsetilly/gophergba/hardware/memory/memorymap"

// the default waitstates for each region. the cartridge entries are
// overwritten when the WAITCNT register is written to
var (
	defaultNonSeq   = [memorymap.NumRegions]int{0, 0, 2, 0, 0, 0, 0, 0, 4, 4, 4, 4, 4, 4, 4, 0}
	defaultNonSeq32 = [memorymap.NumRegions]int{0, 0, 5, 0, 0, 1, 0, 1, 7, 7, 9, 9, 13, 13, 8, 0}
	defaultSeq      = [memorymap.NumRegions]int{0, 0, 2, 0, 0, 0, 0, 0, 2, 2, 4, 4, 8, 8, 4, 0}
	defaultSeq32    = [memorymap.NumRegions]int{0, 0, 5, 0, 0, 1, 0, 1, 5, 5, 9, 9, 17, 17, 8, 0}
)

// first access waitstates selectable by WAITCNT. also used for backup memory
var romNonSeq = [4]int{4, 3, 2, 8}

// sequential access waitstates selectable by WAITCNT for each of the three
// cartridge wait state regions
var romSeq = [3][2]int{
	{2, 1},
	{4, 1},
	{8, 1},
}

// Waitstates are the additional cycles charged for a memory access, beyond
// the single cycle that every access costs.
type Waitstates struct {
	NonSeq     [memorymap.NumRegions]int
	NonSeq32   [memorymap.NumRegions]int
	Seq        [memorymap.NumRegions]int
	Seq32      [memorymap.NumRegions]int
	Prefetch   [memorymap.NumRegions]int
	Prefetch32 [memorymap.NumRegions]int
}

// Reset waitstates to the power-on defaults.
func (ws *Waitstates) Reset() {
	ws.NonSeq = defaultNonSeq
	ws.NonSeq32 = defaultNonSeq32
	ws.Seq = defaultSeq
	ws.Seq32 = defaultSeq32
	ws.Prefetch = defaultSeq
	ws.Prefetch32 = defaultSeq32
}

// Adjust the cartridge and backup memory waitstates according to the value
// written to the WAITCNT register.
func (ws *Waitstates) Adjust(waitcnt uint16) {
	sram := romNonSeq[waitcnt&0x0003]
	ws.NonSeq[memorymap.CartSRAM] = sram
	ws.NonSeq32[memorymap.CartSRAM] = sram
	ws.Seq[memorymap.CartSRAM] = sram
	ws.Seq32[memorymap.CartSRAM] = sram

	prefetch := waitcnt&0x4000 == 0x4000

	// the three wait state regions. each occupies two regions of the map
	sel := [3][2]uint16{
		{(waitcnt & 0x000c) >> 2, (waitcnt & 0x0010) >> 4},
		{(waitcnt & 0x0060) >> 5, (waitcnt & 0x0080) >> 7},
		{(waitcnt & 0x0300) >> 8, (waitcnt & 0x0400) >> 10},
	}

	for i, s := range sel {
		nonSeq := romNonSeq[s[0]]
		seq := romSeq[i][s[1]]

		for _, r := range []memorymap.Region{memorymap.Cart0 + memorymap.Region(i*2), memorymap.Cart0Hi + memorymap.Region(i*2)} {
			ws.NonSeq[r] = nonSeq
			ws.Seq[r] = seq
			ws.NonSeq32[r] = nonSeq + 1 + seq
			ws.Seq32[r] = 2*seq + 1

			if prefetch {
				ws.Prefetch[r] = 0
				ws.Prefetch32[r] = 0
			} else {
				ws.Prefetch[r] = ws.Seq[r]
				ws.Prefetch32[r] = ws.Seq32[r]
			}
		}
	}
}

// Wait returns the cycles for a non-sequential 8 or 16 bit access.
func (ws *Waitstates) Wait(address uint32) int {
	return 1 + ws.NonSeq[memorymap.RegionOf(address)]
}

// Wait32 returns the cycles for a non-sequential 32 bit access.
func (ws *Waitstates) Wait32(address uint32) int {
	return 1 + ws.NonSeq32[memorymap.RegionOf(address)]
}

// WaitSeq returns the cycles for a sequential 8 or 16 bit access.
func (ws *Waitstates) WaitSeq(address uint32) int {
	return 1 + ws.Seq[memorymap.RegionOf(address)]
}

// WaitSeq32 returns the cycles for a sequential 32 bit access.
func (ws *Waitstates) WaitSeq32(address uint32) int {
	return 1 + ws.Seq32[memorymap.RegionOf(address)]
}

// WaitPrefetch returns the cycles for fetching a Thumb instruction.
func (ws *Waitstates) WaitPrefetch(address uint32) int {
	return 1 + ws.Prefetch[memorymap.RegionOf(address)]
}

// WaitPrefetch32 returns the cycles for fetching an ARM instruction.
func (ws *Waitstates) WaitPrefetch32(address uint32) int {
	return 1 + ws.Prefetch32[memorymap.RegionOf(address)]
}

// WaitMulti32 returns the cycles for a block transfer of n words. The first
// access is non-sequential and the rest are sequential.
func (ws *Waitstates) WaitMulti32(address uint32, n int) int {
	r := memorymap.RegionOf(address)
	return 1 + ws.NonSeq32[r] + (1+ws.Seq32[r])*(n-1)
}

// WaitMul returns the internal cycles taken by a multiply instruction. The
// number of cycles depends on how many of the upper bytes of the multiplier
// are all zero or all one bits.
func WaitMul(rs uint32) int {
	switch {
	case rs&0xffffff00 == 0xffffff00 || rs&0xffffff00 == 0:
		return 1
	case rs&0xffff0000 == 0xffff0000 || rs&0xffff0000 == 0:
		return 2
	case rs&0xff000000 == 0xff000000 || rs&0xff000000 == 0:
		return 3
	}
	return 4
}
