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
	"encoding/binary"
	"math/bits"

	"github.com/jetsetilly/gophergba/environment"
	"github.com/jetsetilly/gophergba/hardware/cpu/instructions"
	"github.com/jetsetilly/gophergba/hardware/memory/memorymap"
)

// Context is the access to the rest of the machine required by some memory
// accesses. It is borrowed for the duration of a single access.
type Context interface {
	// the address of the most recently prefetched instruction and whether the
	// CPU is executing Thumb instructions. used to resolve open bus reads
	Pipeline() (address uint32, thumb bool)

	// the IO region is owned by the register file. the offset is relative to
	// the start of the region
	LoadIO8(offset uint32) uint8
	LoadIO16(offset uint32) uint16
	LoadIO32(offset uint32) uint32
	StoreIO8(offset uint32, value uint8)
	StoreIO16(offset uint32, value uint16)
	StoreIO32(offset uint32, value uint32)
}

// Memory is the address space of the machine.
type Memory struct {
	env *environment.Environment

	bios     []byte
	realBIOS bool

	wram    []byte
	iram    []byte
	palette []byte
	vram    []byte
	oam     []byte

	rom  []byte
	cart Cartridge

	// backup memory and the region it is mapped to. the region is CartSRAM
	// for everything except EEPROM
	save       SaveBackend
	saveRegion memorymap.Region
	userSave   SaveBackend

	gpio GPIO

	ws Waitstates

	// instruction cache pages for each region. cartridge aliases all share the
	// pages stored against Cart0
	pages [memorymap.NumRegions][]*instructions.Page
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(env *environment.Environment) *Memory {
	mem := &Memory{
		env:     env,
		wram:    make([]byte, memorymap.SizeWRAM),
		iram:    make([]byte, memorymap.SizeIRAM),
		palette: make([]byte, memorymap.SizePalette),
		vram:    make([]byte, memorymap.SizeVRAM),
		oam:     make([]byte, memorymap.SizeOAM),
		gpio:    NullGPIO{},
		cart:    Cartridge{SaveType: SaveNone},
	}
	mem.Reset()
	return mem
}

// Reset clears all RAM and restores the default waitstates. The BIOS and
// cartridge remain installed.
func (mem *Memory) Reset() {
	if mem.env.Prefs.RandomState.Get().(bool) {
		mem.env.Random.Fill(mem.wram)
		mem.env.Random.Fill(mem.iram)
	} else {
		clear(mem.wram)
		clear(mem.iram)
	}
	clear(mem.palette)
	clear(mem.vram)
	clear(mem.oam)
	mem.ws.Reset()
	mem.InvalidateAll()
}

// SetGPIO attaches a device to the GPIO window of the cartridge. A nil value
// attaches the null device.
func (mem *Memory) SetGPIO(gpio GPIO) {
	if gpio == nil {
		gpio = NullGPIO{}
	}
	mem.gpio = gpio
}

// Waitstates returns the waitstate tables currently in use.
func (mem *Memory) Waitstates() *Waitstates {
	return &mem.ws
}

// ram returns the backing slice and the masked offset for regions that are
// simple memory. the boolean is false for all other regions
func (mem *Memory) ram(region memorymap.Region, offset uint32) ([]byte, uint32, bool) {
	switch region {
	case memorymap.WRAM:
		return mem.wram, offset & (memorymap.SizeWRAM - 1), true
	case memorymap.IRAM:
		return mem.iram, offset & (memorymap.SizeIRAM - 1), true
	case memorymap.Palette:
		return mem.palette, offset & (memorymap.SizePalette - 1), true
	case memorymap.OAM:
		return mem.oam, offset & (memorymap.SizeOAM - 1), true
	case memorymap.VRAM:
		return mem.vram, vramOffset(offset), true
	}
	return nil, 0, false
}

// VRAM is 96KB in a 128KB window. the last 32KB mirrors the 32KB before it
func vramOffset(offset uint32) uint32 {
	offset &= 0x1ffff
	if offset >= memorymap.SizeVRAM {
		offset -= 0x8000
	}
	return offset
}

// romOffset returns the offset into the ROM data for an offset in one of the
// cartridge regions
func romOffset(region memorymap.Region, offset uint32) uint32 {
	if (region-memorymap.Cart0)&1 == 1 {
		offset |= 0x01000000
	}
	return offset
}

// isSave returns true if the region is currently mapped to the backup memory
func (mem *Memory) isSave(region memorymap.Region) bool {
	return mem.save != nil && region == mem.saveRegion
}

// Load8 reads a single byte from the address space.
func (mem *Memory) Load8(ctx Context, address uint32) uint8 {
	region := memorymap.RegionOf(address)
	offset := memorymap.Offset(address)

	if buf, o, ok := mem.ram(region, offset); ok {
		return buf[o]
	}
	if mem.isSave(region) {
		return mem.save.Load8(offset)
	}

	switch region {
	case memorymap.BIOS:
		if int(offset) < len(mem.bios) {
			return mem.bios[offset]
		}
		return 0xff
	case memorymap.IO:
		return ctx.LoadIO8(offset)
	case memorymap.CartSRAM:
		return 0xff
	}

	if region.IsCart() {
		o := romOffset(region, offset)
		if int(o) < len(mem.rom) {
			return mem.rom[o]
		}
		return 0
	}

	pc, ok := mem.openBus(ctx)
	if !ok {
		return 0
	}
	return mem.Load8(ctx, pc+(offset&3))
}

// Load16 reads a halfword from the address space. Unaligned addresses are
// masked to the nearest halfword boundary.
func (mem *Memory) Load16(ctx Context, address uint32) uint16 {
	region := memorymap.RegionOf(address)
	offset := memorymap.Offset(address) &^ 1

	if buf, o, ok := mem.ram(region, offset); ok {
		return binary.LittleEndian.Uint16(buf[o:])
	}
	if mem.isSave(region) {
		return mem.save.Load16(offset)
	}

	switch region {
	case memorymap.BIOS:
		if int(offset) < len(mem.bios)-1 {
			return binary.LittleEndian.Uint16(mem.bios[offset:])
		}
		return 0xffff
	case memorymap.IO:
		return ctx.LoadIO16(offset)
	case memorymap.CartSRAM:
		return 0xffff
	}

	if region.IsCart() {
		o := romOffset(region, offset)
		if v, ok := mem.gpio.Load(o); ok {
			return v
		}
		if int(o) < len(mem.rom)-1 {
			return binary.LittleEndian.Uint16(mem.rom[o:])
		}
		return 0
	}

	pc, ok := mem.openBus(ctx)
	if !ok {
		return 0
	}
	return mem.Load16(ctx, pc+(offset&2))
}

// Load32 reads a word from the address space. Unaligned addresses read the
// aligned word and rotate it right by the misalignment.
func (mem *Memory) Load32(ctx Context, address uint32) uint32 {
	region := memorymap.RegionOf(address)
	offset := memorymap.Offset(address)
	rotate := int(offset&3) << 3
	aligned := offset &^ 3

	var v uint32

	if buf, o, ok := mem.ram(region, aligned); ok {
		v = binary.LittleEndian.Uint32(buf[o:])
	} else if mem.isSave(region) {
		v = mem.save.Load32(aligned)
	} else {
		switch region {
		case memorymap.BIOS:
			if int(aligned) < len(mem.bios)-3 {
				v = binary.LittleEndian.Uint32(mem.bios[aligned:])
			} else {
				v = 0xffffffff
			}
		case memorymap.IO:
			v = ctx.LoadIO32(aligned)
		case memorymap.CartSRAM:
			v = 0xffffffff
		default:
			if region.IsCart() {
				o := romOffset(region, aligned)
				if int(o) < len(mem.rom)-3 {
					v = binary.LittleEndian.Uint32(mem.rom[o:])
				}
			} else {
				v = mem.openBus32(ctx)
			}
		}
	}

	return bits.RotateLeft32(v, -rotate)
}

// openBus returns the address of the instruction that drives the value of the
// data bus. the boolean is false if that address is itself open bus
func (mem *Memory) openBus(ctx Context) (uint32, bool) {
	if ctx == nil {
		return 0, false
	}
	pc, _ := ctx.Pipeline()
	if memorymap.RegionOf(pc).IsOpenBus() {
		return 0, false
	}
	return pc, true
}

// OpenBus16 returns the halfword on the data bus when nothing drives it. Used
// for reads of registers that can not be read.
func (mem *Memory) OpenBus16(ctx Context) uint16 {
	return uint16(mem.openBus32(ctx))
}

func (mem *Memory) openBus32(ctx Context) uint32 {
	pc, ok := mem.openBus(ctx)
	if !ok {
		return 0
	}
	if _, thumb := ctx.Pipeline(); thumb {
		v := uint32(mem.Load16(ctx, pc))
		return v | v<<16
	}
	return mem.Load32(ctx, pc)
}

// Store8 writes a single byte to the address space.
func (mem *Memory) Store8(ctx Context, address uint32, value uint8) {
	region := memorymap.RegionOf(address)
	offset := memorymap.Offset(address)

	if buf, o, ok := mem.ram(region, offset); ok {
		switch region {
		case memorymap.Palette, memorymap.VRAM, memorymap.OAM:
			// the video memories have a 16 bit data bus. the byte is written to
			// both halves of the halfword
			o &^= 1
			buf[o] = value
			buf[o+1] = value
		default:
			buf[o] = value
		}
		mem.invalidate(region, offset)
		return
	}
	if mem.isSave(region) {
		mem.save.Store8(offset, value)
		return
	}
	if region == memorymap.IO {
		ctx.StoreIO8(offset, value)
	}
}

// Store16 writes a halfword to the address space. Unaligned addresses are
// masked to the nearest halfword boundary.
func (mem *Memory) Store16(ctx Context, address uint32, value uint16) {
	region := memorymap.RegionOf(address)
	offset := memorymap.Offset(address) &^ 1

	if buf, o, ok := mem.ram(region, offset); ok {
		binary.LittleEndian.PutUint16(buf[o:], value)
		mem.invalidate(region, offset)
		return
	}
	if mem.isSave(region) {
		mem.save.Store16(offset, value)
		return
	}
	switch region {
	case memorymap.IO:
		ctx.StoreIO16(offset, value)
	default:
		if region.IsCart() {
			mem.storeGPIO(romOffset(region, offset), value)
		}
	}
}

// Store32 writes a word to the address space. Unaligned addresses are masked to
// the nearest word boundary.
func (mem *Memory) Store32(ctx Context, address uint32, value uint32) {
	region := memorymap.RegionOf(address)
	offset := memorymap.Offset(address) &^ 3

	if buf, o, ok := mem.ram(region, offset); ok {
		binary.LittleEndian.PutUint32(buf[o:], value)
		mem.invalidate(region, offset)
		mem.invalidate(region, offset+2)
		return
	}
	if mem.isSave(region) {
		mem.save.Store32(offset, value)
		return
	}
	switch region {
	case memorymap.IO:
		ctx.StoreIO32(offset, value)
	default:
		if region.IsCart() {
			o := romOffset(region, offset)
			mem.storeGPIO(o, uint16(value))
			mem.storeGPIO(o+2, uint16(value>>16))
		}
	}
}

func (mem *Memory) storeGPIO(offset uint32, value uint16) {
	if offset >= GPIOOrigin && offset <= GPIOMemtop {
		mem.gpio.Store(offset, value)
	}
}

// Peek reads a byte without the need for a Context. IO and open bus addresses
// read as zero. Intended for debuggers.
func (mem *Memory) Peek(address uint32) uint8 {
	region := memorymap.RegionOf(address)
	if region == memorymap.IO || region.IsOpenBus() {
		return 0
	}
	return mem.Load8(nil, address)
}

// Poke writes a byte without the need for a Context. Unlike Store8() the ROM
// and BIOS can be written to. IO and open bus addresses are ignored.
func (mem *Memory) Poke(address uint32, value uint8) {
	region := memorymap.RegionOf(address)
	offset := memorymap.Offset(address)

	switch {
	case region == memorymap.BIOS:
		if int(offset) < len(mem.bios) {
			mem.bios[offset] = value
			mem.invalidate(region, offset)
		}
	case region.IsCart():
		o := romOffset(region, offset)
		if int(o) < len(mem.rom) {
			mem.rom[o] = value
			mem.invalidate(region, offset)
		}
	case region == memorymap.IO || region.IsOpenBus():
	default:
		if buf, o, ok := mem.ram(region, offset); ok {
			buf[o] = value
			mem.invalidate(region, offset)
		} else if mem.isSave(region) {
			mem.save.Store8(offset, value)
		}
	}
}
