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
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/gophergba/curated"
	"github.com/jetsetilly/gophergba/digest"
	"github.com/jetsetilly/gophergba/hardware/input"
	"github.com/jetsetilly/gophergba/hardware/memory"
)

type playbackEntry struct {
	frame int
	event input.Event
	hash  string

	// the line in the recording file the playback event appears
	line int
}

// Playback is used to play back keypad input from a recording. It implements
// the input.EventPlayback interface.
type Playback struct {
	Filename  string
	CartTitle string
	CartCode  string

	sequence []playbackEntry
	seqCt    int

	digest digest.Digest

	// the last frame where an event occurs
	endFrame int
}

func (plb *Playback) String() string {
	return fmt.Sprintf("%d/%d events (ends frame %d)", plb.seqCt, len(plb.sequence), plb.endFrame)
}

// EndFrame returns true if the playback has no more events for frames after
// the specified frame.
func (plb *Playback) EndFrame(frame int) bool {
	return frame > plb.endFrame
}

// Error patterns returned by the Playback type.
const (
	PlaybackHashError     = "playback: unexpected emulation state at line %d (frame %d)"
	PlaybackMissedFrame   = "playback: event at line %d was for frame %d but emulation is at frame %d"
	PlaybackCartridgeDiff = "playback: recording was made with a different cartridge (%s)"
)

// NewPlayback is the preferred method of initialisation for the Playback type.
func NewPlayback(filename string) (*Playback, error) {
	plb := &Playback{
		Filename: filename,
	}

	buffer, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}

	// convert file contents to an array of lines
	lines := strings.Split(string(buffer), "\n")

	err = plb.readHeader(lines)
	if err != nil {
		return nil, err
	}

	for i := numHeaderLines; i < len(lines); i++ {
		if len(lines[i]) == 0 {
			continue
		}

		toks := strings.Split(lines[i], fieldSep)
		if len(toks) != numFields {
			return nil, curated.Errorf("playback: expected %d fields at line %d", numFields, i+1)
		}

		entry := playbackEntry{line: i + 1}

		entry.frame, err = strconv.Atoi(toks[fieldFrame])
		if err != nil {
			return nil, curated.Errorf("playback: %v line %d", err, i+1)
		}

		// frames must be listed in order in the file
		if entry.frame < plb.endFrame {
			return nil, curated.Errorf("playback: frame out of order at line %d", i+1)
		}
		plb.endFrame = entry.frame

		entry.event.Button, err = input.ParseButton(toks[fieldButton])
		if err != nil {
			return nil, curated.Errorf("playback: %v line %d", err, i+1)
		}

		switch toks[fieldPressed] {
		case "1":
			entry.event.Pressed = true
		case "0":
			entry.event.Pressed = false
		default:
			return nil, curated.Errorf("playback: unexpected pressed value at line %d", i+1)
		}

		entry.hash = toks[fieldHash]

		plb.sequence = append(plb.sequence, entry)
	}

	return plb, nil
}

// Attach the playback to the emulation's cartridge and video digest. The
// cartridge must match the one the recording was made with.
func (plb *Playback) Attach(cart memory.Cartridge, dig digest.Digest) error {
	if dig == nil {
		return curated.Errorf("playback: %v", "no digest")
	}
	if cart.Title != plb.CartTitle || cart.Code != plb.CartCode {
		return curated.Errorf(PlaybackCartridgeDiff, fmt.Sprintf("%s [%s]", plb.CartTitle, plb.CartCode))
	}
	plb.digest = dig
	plb.seqCt = 0
	return nil
}

// GetPlayback implements the input.EventPlayback interface.
func (plb *Playback) GetPlayback(frame int) (input.Event, bool, error) {
	if plb.digest == nil {
		return input.Event{}, false, curated.Errorf("playback: %v", "not attached")
	}

	// we've reached the end of the list of events
	if plb.seqCt >= len(plb.sequence) {
		return input.Event{}, false, nil
	}

	entry := plb.sequence[plb.seqCt]

	if entry.frame < frame {
		return input.Event{}, false, curated.Errorf(PlaybackMissedFrame, entry.line, entry.frame, frame)
	}

	// next event is for a later frame
	if entry.frame > frame {
		return input.Event{}, false, nil
	}

	plb.seqCt++
	if entry.hash != plb.digest.Hash() {
		return input.Event{}, false, curated.Errorf(PlaybackHashError, entry.line, frame)
	}

	return entry.event, true, nil
}
