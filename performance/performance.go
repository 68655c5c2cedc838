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

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gophergba/curated"
	"github.com/jetsetilly/gophergba/hardware"
)

// Result of a performance check.
type Result struct {
	Frames       int
	Cycles       int64
	Instructions int64
	Duration     time.Duration
}

func (r Result) String() string {
	secs := r.Duration.Seconds()
	if secs <= 0 {
		return fmt.Sprintf("%d frames in no time at all", r.Frames)
	}
	fps, accuracy := CalcFPS(r.Frames, secs)
	return fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%\n%.0f cycles per second\n%.0f instructions per second",
		fps, r.Frames, secs, accuracy,
		float64(r.Cycles)/secs, float64(r.Instructions)/secs)
}

// Check runs the emulation for the number of frames and writes the measured
// performance to output. The emulation should already have a cartridge
// inserted.
func Check(output io.Writer, profile Profile, g *hardware.GBA, frames int) error {
	if frames <= 0 {
		return curated.Errorf("performance: %v", "number of frames must be positive")
	}

	var r Result

	runner := func() error {
		startCycles := g.Cycles()
		startFrame := g.Video.Frame
		start := time.Now()

		for g.Video.Frame-startFrame < frames {
			err := g.Step()
			if err != nil {
				return err
			}
			r.Instructions++
		}

		r.Duration = time.Since(start)
		r.Frames = g.Video.Frame - startFrame
		r.Cycles = g.Cycles() - startCycles
		return nil
	}

	err := RunProfiler(profile, "performance", runner)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	_, err = io.WriteString(output, r.String()+"\n")
	return err
}
