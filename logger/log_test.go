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

package logger_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/gophergba/logger"
	"github.com/jetsetilly/gophergba/test"
)

func TestWriteAndTail(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "cpu", "undefined instruction at 08000120")
	log.Logf(logger.Allow, "dma", "channel %d: source address in BIOS", 0)
	log.Log(logger.Allow, "bios", "unsupported function 0x2a")

	log.Write(w)
	test.ExpectEquality(t, w.String(), "cpu: undefined instruction at 08000120\ndma: channel 0: source address in BIOS\nbios: unsupported function 0x2a\n")

	tails := []struct {
		n        int
		expected string
	}{
		{n: 0, expected: ""},
		{n: -1, expected: ""},
		{n: 1, expected: "bios: unsupported function 0x2a\n"},
		{n: 2, expected: "dma: channel 0: source address in BIOS\nbios: unsupported function 0x2a\n"},
		{n: 100, expected: w.String()},
	}
	for _, tl := range tails {
		var s strings.Builder
		log.Tail(&s, tl.n)
		test.ExpectEquality(t, s.String(), tl.expected, tl.n)
	}

	log.Clear()
	w.Reset()
	log.Write(w)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeatedEntries(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	for range 3 {
		log.Log(logger.Allow, "io", "write to read-only register 04000006")
	}
	log.Log(logger.Allow, "io", "write to unused register 04000008")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "io: write to read-only register 04000006 (repeat x3)\nio: write to unused register 04000008\n")
}

func TestMaximumEntries(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Log(logger.Allow, "mmu", "1")
	log.Log(logger.Allow, "mmu", "2")
	log.Log(logger.Allow, "mmu", "3")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "mmu: 2\nmmu: 3\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(10)
	echo := &strings.Builder{}

	log.SetEcho(echo)
	log.Log(logger.Allow, "io", "write to read-only register")
	test.ExpectEquality(t, echo.String(), "io: write to read-only register\n")

	log.SetEcho(nil)
	log.Log(logger.Allow, "io", "another")
	test.ExpectEquality(t, echo.String(), "io: write to read-only register\n")
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	log.Log(logger.Deny, "cpu", "never logged")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	var allow bool
	perm := logger.PermissionFunc(func() bool { return allow })

	log.Log(perm, "cpu", "not logged")
	allow = true
	log.Log(perm, "cpu", "logged")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "cpu: logged\n")
}

type register uint32

func (r register) String() string {
	return "DISPCNT"
}

func TestDetailTypes(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	log.Log(logger.Allow, "a", errors.New("error detail"))
	log.Log(logger.Allow, "b", register(0))
	log.Log(logger.Allow, "c", 100)
	log.Log(logger.Allow, "d", "multi\nline")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "a: error detail\nb: DISPCNT\nc: 100\nd: multiline\n")
}

func TestBorrowLog(t *testing.T) {
	log := logger.NewLogger(10)
	log.Log(logger.Allow, "scheduler", "timer 0 overflow")

	var tags []string
	log.BorrowLog(func(entries []logger.Entry) {
		for _, e := range entries {
			tags = append(tags, e.Tag)
		}
	})
	test.ExpectEquality(t, strings.Join(tags, ","), "scheduler")
}
