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

package hardware_test

import (
	"encoding/binary"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jetsetilly/gophergba/environment"
	"github.com/jetsetilly/gophergba/hardware"
)

func TestHardware(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Hardware Suite")
}

// offset of the interrupt handler in the test cartridge
const handlerOffset = 0x100

// cartridge builds a ROM with a valid header. the program is placed at the
// start of the ROM and the handler at handlerOffset
func cartridge(title string, program []uint32, handler []uint32) []byte {
	data := make([]byte, 0x400)
	for i, op := range program {
		binary.LittleEndian.PutUint32(data[i*4:], op)
	}
	for i, op := range handler {
		binary.LittleEndian.PutUint32(data[handlerOffset+i*4:], op)
	}
	copy(data[0xa0:], title)
	copy(data[0xac:], "TEST")
	data[0xb2] = 0x96
	return data
}

func newGBA(options ...hardware.Option) *hardware.GBA {
	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	Expect(err).NotTo(HaveOccurred())
	env.Normalise()

	g, err := hardware.NewGBA(env, options...)
	Expect(err).NotTo(HaveOccurred())
	return g
}
