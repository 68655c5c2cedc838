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

// Step executes a single CPU instruction and brings the rest of the machine
// up to date with it. A halt requested by the previous instruction happens
// first.
func (g *GBA) Step() error {
	if g.Sch.HaltRequested() {
		err := g.Sch.Halt(g)
		if err != nil {
			return err
		}
	}

	err := g.CPU.Step(g)
	if err != nil {
		return err
	}

	if g.err != nil {
		err = g.err
		g.err = nil
		return err
	}

	return nil
}

// RunFrame steps the machine until the start of the next VBlank. Keypad input
// for the frame is processed before the first instruction.
func (g *GBA) RunFrame() error {
	frame := g.Video.Frame

	err := g.Input.Process(frame)
	if err != nil {
		return err
	}

	for g.Video.Frame == frame {
		err := g.Step()
		if err != nil {
			return err
		}
	}

	return nil
}
