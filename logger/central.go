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

package logger

import (
	"io"
)

// the log shared by every part of the program. a separate Logger is only
// needed for testing
var central = NewLogger(maxCentral)

// the number of entries kept by the central log. older entries are dropped
const maxCentral = 512

// Log adds an entry to the central log. The tag names the part of the
// emulation making the entry, for example "cpu" or "dma".
func Log(perm Permission, tag string, detail any) {
	central.Log(perm, tag, detail)
}

// Logf is like Log() but the detail is formatted.
func Logf(perm Permission, tag string, pattern string, args ...any) {
	central.Logf(perm, tag, pattern, args...)
}

// Clear the central log.
func Clear() {
	central.Clear()
}

// Write every entry in the central log to output.
func Write(output io.Writer) {
	central.Write(output)
}

// Tail writes the most recent entries in the central log to output.
func Tail(output io.Writer, number int) {
	central.Tail(output, number)
}

// SetEcho writes new entries in the central log to output as they are made.
// A nil writer stops echoing.
func SetEcho(output io.Writer) {
	central.SetEcho(output)
}

// BorrowLog calls f with the entries of the central log. The log cannot be
// changed while f is running.
func BorrowLog(f func([]Entry)) {
	central.BorrowLog(f)
}
