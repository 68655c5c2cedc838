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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
)

// the number of bytes collected before they are folded into the digest. the
// start of the buffer holds the previous digest
const audioBufferLength = 4096 + sha1.Size

const audioBufferStart = sha1.Size

// Audio is an implementation of the audio.Sink interface.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	return &Audio{
		buffer:   make([]uint8, audioBufferLength),
		bufferCt: audioBufferStart,
	}
}

// Hash implements the Digest interface. Samples that have not yet been
// folded into the digest are not included until FlushAudio() is called.
func (dig *Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Audio) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	dig.bufferCt = audioBufferStart
}

// SetAudio implements the audio.Sink interface.
func (dig *Audio) SetAudio(samples []int16) error {
	for _, s := range samples {
		binary.LittleEndian.PutUint16(dig.buffer[dig.bufferCt:], uint16(s))
		dig.bufferCt += 2
		if dig.bufferCt >= audioBufferLength {
			dig.FlushAudio()
		}
	}
	return nil
}

// FlushAudio folds any collected samples into the digest.
func (dig *Audio) FlushAudio() {
	if dig.bufferCt == audioBufferStart {
		return
	}
	copy(dig.buffer, dig.digest[:])
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	dig.bufferCt = audioBufferStart
}

// EndMixing implements the audio.Sink interface.
func (dig *Audio) EndMixing() error {
	dig.FlushAudio()
	return nil
}
