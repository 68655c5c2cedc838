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

package recorder

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gophergba/curated"
	"github.com/jetsetilly/gophergba/hardware/memory"
)

const magicString = "gophergba recording"

const (
	fieldFrame int = iota
	fieldButton
	fieldPressed
	fieldHash
	numFields
)

const fieldSep = ", "

const (
	lineMagic int = iota
	lineCartTitle
	lineCartCode
	numHeaderLines
)

func (rec *Recorder) writeHeader(cart memory.Cartridge) error {
	lines := make([]string, numHeaderLines)
	lines[lineMagic] = magicString
	lines[lineCartTitle] = cart.Title
	lines[lineCartCode] = cart.Code

	line := fmt.Sprintf("%s\n", strings.Join(lines, "\n"))

	n, err := io.WriteString(rec.output, line)
	if err != nil {
		return curated.Errorf("recorder: %v", err)
	}
	if n != len(line) {
		return curated.Errorf("recorder: %v", "output truncated")
	}

	return nil
}

func (plb *Playback) readHeader(lines []string) error {
	if len(lines) < numHeaderLines {
		return curated.Errorf("playback: %v", "not a valid recording")
	}

	if lines[lineMagic] != magicString {
		return curated.Errorf("playback: %v", "not a valid recording")
	}

	plb.CartTitle = lines[lineCartTitle]
	plb.CartCode = lines[lineCartCode]

	return nil
}
