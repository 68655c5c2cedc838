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

	"github.com/jetsetilly/gophergba/curated"
)

// SaveBackend is the backup memory of the cartridge. Offsets are relative to
// the start of the region the backend is mapped to.
type SaveBackend interface {
	Load8(offset uint32) uint8
	Load16(offset uint32) uint16
	Load32(offset uint32) uint32
	Store8(offset uint32, value uint8)
	Store16(offset uint32, value uint16)
	Store32(offset uint32, value uint32)

	// the backing data of the backend, for persistence
	Data() []byte

	// replace the backing data with previously persisted data
	Replace(data []byte) error

	// a write has occurred since the last call to Flushed()
	WritePending() bool
	Flushed()
}

// Sentinal errors.
const (
	BadSaveData = "save: data of %d bytes does not fit backup memory of %d bytes"
	NoSaveData  = "save: no backup memory"
)

// SRAM is a byte addressable SaveBackend. It is used for all save types
// unless another backend is provided with SetSaveBackend().
type SRAM struct {
	data    []byte
	mask    uint32
	pending bool
}

// NewSRAM is the preferred method of initialisation for the SRAM type. The
// size must be a power of two.
func NewSRAM(size int) *SRAM {
	s := &SRAM{
		data: make([]byte, size),
		mask: uint32(size - 1),
	}
	// erased backup memory reads as all bits set
	for i := range s.data {
		s.data[i] = 0xff
	}
	return s
}

// Load8 implements the SaveBackend interface.
func (s *SRAM) Load8(offset uint32) uint8 {
	return s.data[offset&s.mask]
}

// Load16 implements the SaveBackend interface.
func (s *SRAM) Load16(offset uint32) uint16 {
	return binary.LittleEndian.Uint16(s.data[offset&s.mask&^1:])
}

// Load32 implements the SaveBackend interface.
func (s *SRAM) Load32(offset uint32) uint32 {
	return binary.LittleEndian.Uint32(s.data[offset&s.mask&^3:])
}

// Store8 implements the SaveBackend interface.
func (s *SRAM) Store8(offset uint32, value uint8) {
	s.data[offset&s.mask] = value
	s.pending = true
}

// Store16 implements the SaveBackend interface.
func (s *SRAM) Store16(offset uint32, value uint16) {
	binary.LittleEndian.PutUint16(s.data[offset&s.mask&^1:], value)
	s.pending = true
}

// Store32 implements the SaveBackend interface.
func (s *SRAM) Store32(offset uint32, value uint32) {
	binary.LittleEndian.PutUint32(s.data[offset&s.mask&^3:], value)
	s.pending = true
}

// Data implements the SaveBackend interface.
func (s *SRAM) Data() []byte {
	return s.data
}

// Replace implements the SaveBackend interface.
func (s *SRAM) Replace(data []byte) error {
	if len(data) > len(s.data) {
		return curated.Errorf(BadSaveData, len(data), len(s.data))
	}
	copy(s.data, data)
	s.pending = false
	return nil
}

// WritePending implements the SaveBackend interface.
func (s *SRAM) WritePending() bool {
	return s.pending
}

// Flushed implements the SaveBackend interface.
func (s *SRAM) Flushed() {
	s.pending = false
}

// SetSaveBackend overrides the default backup memory. The backend will be used
// for the next cartridge loaded with LoadROM(). A nil value restores the
// default behaviour.
func (mem *Memory) SetSaveBackend(save SaveBackend) {
	mem.userSave = save
}

// SaveData returns the contents of the backup memory.
func (mem *Memory) SaveData() ([]byte, error) {
	if mem.save == nil {
		return nil, curated.Errorf(NoSaveData)
	}
	return mem.save.Data(), nil
}

// CheckSaveData returns an error if the data could not be loaded into the
// backup memory with LoadSaveData(). The backup memory is not changed.
func (mem *Memory) CheckSaveData(data []byte) error {
	if mem.save == nil {
		return curated.Errorf(NoSaveData)
	}
	if len(data) > len(mem.save.Data()) {
		return curated.Errorf(BadSaveData, len(data), len(mem.save.Data()))
	}
	return nil
}

// LoadSaveData replaces the contents of the backup memory.
func (mem *Memory) LoadSaveData(data []byte) error {
	err := mem.CheckSaveData(data)
	if err != nil {
		return err
	}
	return mem.save.Replace(data)
}

// SaveBackend returns the backup memory in use. Returns nil if no cartridge
// has been loaded.
func (mem *Memory) SaveBackend() SaveBackend {
	return mem.save
}
