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

package savefile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gophergba/hardware/memory"
	"github.com/jetsetilly/gophergba/savefile"
	"github.com/jetsetilly/gophergba/test"
)

// minimal implementation of the savefile.Memory interface
type saveMemory struct {
	save *memory.SRAM
}

func (m *saveMemory) Cartridge() memory.Cartridge {
	return memory.Cartridge{Title: "SAVE TEST", Code: "TEST"}
}

func (m *saveMemory) SaveData() ([]byte, error) {
	return m.save.Data(), nil
}

func (m *saveMemory) LoadSaveData(data []byte) error {
	return m.save.Replace(data)
}

func (m *saveMemory) SaveBackend() memory.SaveBackend {
	return m.save
}

func TestFilename(t *testing.T) {
	mem := &saveMemory{}
	test.ExpectEquality(t, savefile.Filename(mem.Cartridge()), "TEST_SAVE_TEST.sav")
}

func TestReadWrite(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "test.sav")

	mem := &saveMemory{save: memory.NewSRAM(1024)}

	// missing save file is not an error
	test.ExpectSuccess(t, savefile.Read(mem, filename))

	// nothing is written if nothing has changed
	test.ExpectSuccess(t, savefile.Write(mem, filename))
	_, err := os.Stat(filename)
	test.ExpectEquality(t, os.IsNotExist(err), true)

	mem.save.Store8(10, 0x42)
	test.ExpectEquality(t, mem.save.WritePending(), true)
	test.ExpectSuccess(t, savefile.Write(mem, filename))
	test.ExpectEquality(t, mem.save.WritePending(), false)

	data, err := os.ReadFile(filename)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(data), 1024)
	test.ExpectEquality(t, data[10], uint8(0x42))

	other := &saveMemory{save: memory.NewSRAM(1024)}
	test.ExpectSuccess(t, savefile.Read(other, filename))
	test.ExpectEquality(t, other.save.Load8(10), uint8(0x42))
	test.ExpectEquality(t, other.save.WritePending(), false)

	// save file too large for the backup memory
	small := &saveMemory{save: memory.NewSRAM(512)}
	test.ExpectFailure(t, savefile.Read(small, filename))
}
