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

import (
	"github.com/jetsetilly/gophergba/curated"
	"github.com/jetsetilly/gophergba/hardware/memory/memorymap"
)

// BadSnapshot is the error pattern returned by State.Validate().
const BadSnapshot = "memory: %s is %d bytes, expected %d bytes"

// State is a copy of the memory that changes during execution. The ROM and
// BIOS are not included.
type State struct {
	WRAM    []byte
	IRAM    []byte
	Palette []byte
	VRAM    []byte
	OAM     []byte

	Waitstates Waitstates
}

// Snapshot creates a copy of the current memory state.
func (mem *Memory) Snapshot() *State {
	return &State{
		WRAM:       clone(mem.wram),
		IRAM:       clone(mem.iram),
		Palette:    clone(mem.palette),
		VRAM:       clone(mem.vram),
		OAM:        clone(mem.oam),
		Waitstates: mem.ws,
	}
}

func clone(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}

// Validate checks that the state can be plumbed into a Memory instance.
func (s *State) Validate() error {
	check := []struct {
		name string
		data []byte
		size int
	}{
		{"working RAM", s.WRAM, memorymap.SizeWRAM},
		{"internal RAM", s.IRAM, memorymap.SizeIRAM},
		{"palette", s.Palette, memorymap.SizePalette},
		{"VRAM", s.VRAM, memorymap.SizeVRAM},
		{"OAM", s.OAM, memorymap.SizeOAM},
	}
	for _, c := range check {
		if len(c.data) != c.size {
			return curated.Errorf(BadSnapshot, c.name, len(c.data), c.size)
		}
	}
	return nil
}

// Plumb a previously snapshotted state into the memory. The state should have
// been checked with Validate(). The data is copied so the state can be
// plumbed again.
//
// All instruction cache pages are invalidated.
func (mem *Memory) Plumb(s *State) {
	copy(mem.wram, s.WRAM)
	copy(mem.iram, s.IRAM)
	copy(mem.palette, s.Palette)
	copy(mem.vram, s.VRAM)
	copy(mem.oam, s.OAM)
	mem.ws = s.Waitstates
	mem.InvalidateAll()
}

// Video returns the video memories. The slices are the live memory and must
// not be retained beyond the current call. Intended for renderers.
func (mem *Memory) Video() (palette []byte, vram []byte, oam []byte) {
	return mem.palette, mem.vram, mem.oam
}

// RAM returns the working RAM and the internal working RAM. The slices are the
// live memory.
func (mem *Memory) RAM() (wram []byte, iram []byte) {
	return mem.wram, mem.iram
}
