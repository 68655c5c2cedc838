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

// The GPIO window occupies three halfword registers in the cartridge ROM
// region. The offsets are relative to the start of the ROM data.
const (
	GPIOData      = 0xc4
	GPIODirection = 0xc6
	GPIOControl   = 0xc8

	GPIOOrigin = GPIOData
	GPIOMemtop = GPIOControl + 1
)

// GPIO is a device attached to the general purpose IO port of the cartridge.
// Real time clocks and the like are GPIO devices.
type GPIO interface {
	// Store is called for every halfword written to the GPIO window. The
	// offset is one of GPIOData, GPIODirection or GPIOControl.
	Store(offset uint32, value uint16)

	// Load is called for every halfword read from the cartridge ROM. The
	// boolean return value should be false if the offset is outside of the
	// GPIO window or if the window is not readable, in which case the ROM data
	// is returned.
	Load(offset uint32) (uint16, bool)
}

// NullGPIO is the GPIO device used when the cartridge has no device attached.
type NullGPIO struct{}

// Store implements the GPIO interface.
func (NullGPIO) Store(_ uint32, _ uint16) {}

// Load implements the GPIO interface.
func (NullGPIO) Load(_ uint32) (uint16, bool) {
	return 0, false
}
