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

package test

import (
	"bytes"
	"fmt"
	"strings"
)

// CompareWriter collects everything written to it so that it can be compared
// with the expected output.
type CompareWriter struct {
	buf bytes.Buffer
}

// Write implements the io.Writer interface.
func (cw *CompareWriter) Write(p []byte) (int, error) {
	return cw.buf.Write(p)
}

// Clear forgets everything written so far.
func (cw *CompareWriter) Clear() {
	cw.buf.Reset()
}

// Compare returns true if the collected output is exactly s.
func (cw *CompareWriter) Compare(s string) bool {
	return cw.buf.String() == s
}

// Lines returns the collected output split into lines. A trailing newline
// does not produce an empty final line.
func (cw *CompareWriter) Lines() []string {
	s := strings.TrimSuffix(cw.buf.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func (cw *CompareWriter) String() string {
	return cw.buf.String()
}

// CappedWriter collects output until a fixed number of bytes have been
// written. Anything more is discarded without error, which makes it suitable
// for the output of long running processes where only the start matters.
type CappedWriter struct {
	buf []byte
}

// NewCappedWriter is the preferred method of initialisation for the
// CappedWriter type.
func NewCappedWriter(size int) (*CappedWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("test: capped writer: size must be positive (%d)", size)
	}
	return &CappedWriter{buf: make([]byte, 0, size)}, nil
}

// Write implements the io.Writer interface. The number of bytes accepted may
// be less than len(p).
func (cw *CappedWriter) Write(p []byte) (int, error) {
	n := min(len(p), cap(cw.buf)-len(cw.buf))
	cw.buf = append(cw.buf, p[:n]...)
	return n, nil
}

// Reset forgets everything written so far. The capacity is unchanged.
func (cw *CappedWriter) Reset() {
	cw.buf = cw.buf[:0]
}

func (cw *CappedWriter) String() string {
	return string(cw.buf)
}
