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

package hardware

import (
	"context"
)

// Run the emulation for the number of frames. A frame count of zero or less
// means the emulation runs until the context is cancelled, in which case the
// context's error is returned.
func (g *GBA) Run(ctx context.Context, frames int) error {
	for n := 0; frames <= 0 || n < frames; n++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		err := g.RunFrame()
		if err != nil {
			return err
		}
	}

	return nil
}

// EndMixing sends any buffered audio to the sink and tells the sink that there
// will be no more audio. It should be called once, when the emulation is
// finished with.
func (g *GBA) EndMixing() error {
	return g.Audio.EndMixing()
}
