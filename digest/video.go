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
	"fmt"
)

// VideoMemory is the source of the video state that is hashed at the end of
// every frame. It is satisfied by memory.Memory.
type VideoMemory interface {
	Video() (palette []byte, vram []byte, oam []byte)
}

// Video is an implementation of the video.Renderer interface. The digest is
// chained so that the hash after a frame depends on every frame before it.
type Video struct {
	mem    VideoMemory
	digest [sha1.Size]byte
	frames int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo(mem VideoMemory) *Video {
	return &Video{mem: mem}
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	dig.frames = 0
}

// Frames returns the number of frames included in the digest.
func (dig *Video) Frames() int {
	return dig.frames
}

// StartDraw implements the video.Renderer interface.
func (dig *Video) StartDraw() {}

// DrawScanline implements the video.Renderer interface.
func (dig *Video) DrawScanline(_ int) {}

// FinishDraw implements the video.Renderer interface.
func (dig *Video) FinishDraw() {
	palette, vram, oam := dig.mem.Video()

	h := sha1.New()
	h.Write(dig.digest[:])
	h.Write(palette)
	h.Write(vram)
	h.Write(oam)
	copy(dig.digest[:], h.Sum(nil))

	dig.frames++
}
