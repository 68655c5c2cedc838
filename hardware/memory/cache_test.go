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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gophergba/test"
)

func TestAccessPage(t *testing.T) {
	mem := newMemory(t)
	ctx := &context{}

	p := mem.AccessPage(0x02000000)
	test.DemandSuccess(t, p != nil)
	test.ExpectEquality(t, mem.AccessPage(0x02000100), p)

	// the working RAM page is 512 bytes
	test.ExpectInequality(t, mem.AccessPage(0x02000200), p)

	// mirrored addresses share the page
	test.ExpectEquality(t, mem.AccessPage(0x02040000), p)

	// a store anywhere in the page invalidates it
	mem.Store8(ctx, 0x020001ff, 0)
	test.ExpectSuccess(t, p.Invalid)
	q := mem.AccessPage(0x02000000)
	test.ExpectInequality(t, q, p)
	test.ExpectFailure(t, q.Invalid)

	// IO and open bus can not be cached
	test.ExpectSuccess(t, mem.AccessPage(0x04000000) == nil)
	test.ExpectSuccess(t, mem.AccessPage(0x01000000) == nil)
}

func TestAccessPageBoundary(t *testing.T) {
	mem := newMemory(t)
	ctx := &context{}

	// internal RAM pages are 128 bytes. a word store at the end of a page
	// does not affect the following page
	p := mem.AccessPage(0x0300007c)
	q := mem.AccessPage(0x03000080)
	mem.Store32(ctx, 0x0300007c, 0)
	test.ExpectSuccess(t, p.Invalid)
	test.ExpectFailure(t, q.Invalid)
}

func TestAccessPageCartridge(t *testing.T) {
	mem := newMemory(t)

	_, err := mem.LoadROM(newROM(0x1000, ""))
	test.DemandSuccess(t, err)

	// the three cartridge aliases share pages
	p := mem.AccessPage(0x08000000)
	test.ExpectEquality(t, mem.AccessPage(0x0a000000), p)
	test.ExpectEquality(t, mem.AccessPage(0x0c000000), p)
	test.ExpectInequality(t, mem.AccessPage(0x09000000), p)

	mem.Poke(0x0a000010, 0x00)
	test.ExpectSuccess(t, p.Invalid)

	// backup memory can not be cached
	test.ExpectSuccess(t, mem.AccessPage(0x0e000000) == nil)
}

func TestAccessPageBIOS(t *testing.T) {
	mem := newMemory(t)
	test.DemandSuccess(t, mem.LoadBIOS([]byte{0x07, 0x00, 0xa0, 0xe3}, false))

	test.ExpectSuccess(t, mem.AccessPage(0x00000000) != nil)

	// the BIOS is not mirrored so addresses past the end are not cached with
	// the BIOS pages
	test.ExpectSuccess(t, mem.AccessPage(0x00004000) == nil)
	test.ExpectSuccess(t, mem.AccessPage(0x00ffc000) == nil)
	test.ExpectEquality(t, mem.Load32(&context{}, 0x00004000), uint32(0xffffffff))
}
