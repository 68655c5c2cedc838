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

// Package wavwriter implements the audio.Sink interface and writes the mixed
// audio to a WAV file.
package wavwriter

import (
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/gophergba/curated"
	"github.com/jetsetilly/gophergba/hardware/audio"
	"github.com/jetsetilly/gophergba/logger"
)

// WavWriter implements the audio.Sink interface. Samples are encoded as they
// arrive and the file is finalised by EndMixing().
type WavWriter struct {
	filename string
	f        *os.File
	enc      *wav.Encoder
	buffer   *goaudio.IntBuffer
}

// New is the preferred method of initialisation for the WavWriter type. The
// file is created immediately.
func New(filename string) (*WavWriter, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, curated.Errorf("wavwriter: %v", err)
	}

	aw := &WavWriter{
		filename: filename,
		f:        f,
		enc:      wav.NewEncoder(f, audio.SampleFreq, 16, 1, 1),
		buffer: &goaudio.IntBuffer{
			Format: &goaudio.Format{
				NumChannels: 1,
				SampleRate:  audio.SampleFreq,
			},
			SourceBitDepth: 16,
		},
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", filename)

	return aw, nil
}

// SetAudio implements the audio.Sink interface.
func (aw *WavWriter) SetAudio(samples []int16) error {
	if aw.enc == nil {
		return curated.Errorf("wavwriter: %v", "file has been closed")
	}

	aw.buffer.Data = aw.buffer.Data[:0]
	for _, s := range samples {
		aw.buffer.Data = append(aw.buffer.Data, int(s))
	}

	err := aw.enc.Write(aw.buffer)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}

// EndMixing implements the audio.Sink interface.
func (aw *WavWriter) EndMixing() (rerr error) {
	if aw.enc == nil {
		return nil
	}

	defer func() {
		err := aw.f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
		aw.enc = nil
	}()

	err := aw.enc.Close()
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
