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

// Package digest contains implementations of video.Renderer and audio.Sink
// that produce a running hash of the emulation's output. The hashes are used
// to check that a recorded input stream still plays back to the same result
// and by the regression tests of the performance and scripting modes.
package digest

// Digest is implemented by all the digest types in the package.
type Digest interface {
	Hash() string
	ResetDigest()
}
