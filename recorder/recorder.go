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
	"os"

	"github.com/jetsetilly/gophergba/curated"
	"github.com/jetsetilly/gophergba/digest"
	"github.com/jetsetilly/gophergba/hardware/input"
	"github.com/jetsetilly/gophergba/hardware/memory"
)

// Recorder writes keypad events to a file. It implements the
// input.EventRecorder interface.
type Recorder struct {
	output io.WriteCloser
	digest digest.Digest
}

// NewRecorder is the preferred method of initialisation for the Recorder
// type. The digest should be the digest.Video attached as the renderer of the
// emulation being recorded.
func NewRecorder(filename string, cart memory.Cartridge, dig digest.Digest) (*Recorder, error) {
	if dig == nil {
		return nil, curated.Errorf("recorder: %v", "no digest")
	}

	// we don't want to overwrite an existing file
	_, err := os.Stat(filename)
	if err == nil {
		return nil, curated.Errorf("recorder: file already exists (%s)", filename)
	}

	f, err := os.Create(filename)
	if err != nil {
		return nil, curated.Errorf("recorder: %v", err)
	}

	rec := &Recorder{
		output: f,
		digest: dig,
	}

	err = rec.writeHeader(cart)
	if err != nil {
		f.Close()
		return nil, err
	}

	return rec, nil
}

// RecordEvent implements the input.EventRecorder interface.
func (rec *Recorder) RecordEvent(ev input.TimedEvent) error {
	if rec.output == nil {
		return curated.Errorf("recorder: %v", "recording has ended")
	}

	pressed := 0
	if ev.Pressed {
		pressed = 1
	}

	line := fmt.Sprintf("%d%s%s%s%d%s%s\n",
		ev.Frame, fieldSep,
		ev.Button, fieldSep,
		pressed, fieldSep,
		rec.digest.Hash(),
	)

	n, err := io.WriteString(rec.output, line)
	if err != nil {
		return curated.Errorf("recorder: %v", err)
	}
	if n != len(line) {
		return curated.Errorf("recorder: %v", "output truncated")
	}

	return nil
}

// End the recording and close the output file. Further calls to
// RecordEvent() will fail.
func (rec *Recorder) End() error {
	if rec.output == nil {
		return nil
	}

	err := rec.output.Close()
	rec.output = nil
	if err != nil {
		return curated.Errorf("recorder: %v", err)
	}

	return nil
}
