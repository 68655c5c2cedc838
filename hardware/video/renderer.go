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

package video

// Renderer is notified of the progress of the display. Implementations should
// not block because they are called from inside the emulation loop.
type Renderer interface {
	// start of a new frame
	StartDraw()

	// the scanline is about to be displayed. the video memory and registers
	// are in the state they will be for the duration of the scanline
	DrawScanline(y int)

	// all visible scanlines of the frame have been displayed
	FinishDraw()
}

// NullRenderer discards all drawing.
type NullRenderer struct{}

// StartDraw implements the Renderer interface.
func (NullRenderer) StartDraw() {}

// DrawScanline implements the Renderer interface.
func (NullRenderer) DrawScanline(_ int) {}

// FinishDraw implements the Renderer interface.
func (NullRenderer) FinishDraw() {}
