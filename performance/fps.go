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

package performance

import "github.com/jetsetilly/gophergba/hardware/video"

// the frequency of the CPU clock in Hz
const clockFrequency = 16777216

// RefreshRate is the number of frames per second of the Game Boy Advance
// display.
const RefreshRate = float64(clockFrequency) / video.FrameLength

// CalcFPS takes the number of frames and duration (in seconds) and returns the
// frames-per-second and the accuracy of that value as a percentage of the
// display's refresh rate.
func CalcFPS(numFrames int, duration float64) (fps float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0
	}
	fps = float64(numFrames) / duration
	accuracy = 100 * fps / RefreshRate
	return fps, accuracy
}
