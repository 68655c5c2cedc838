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

package debugger

import (
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gophergba/curated"
	"github.com/jetsetilly/gophergba/hardware/cpu"
	"github.com/jetsetilly/gophergba/hardware/scheduler"
)

// the parts of the machine included in a graph. the complete CPU and
// scheduler types refer to the entire machine so we copy just the fields of
// interest
type graphState struct {
	Registers [cpu.NumRegisters]uint32
	Status    cpu.Status
	SPSR      uint32

	IME    bool
	IE     uint16
	IF     uint16
	Timers [scheduler.NumTimers]scheduler.Timer
	DMA    [scheduler.NumDMA]scheduler.DMA
}

// graph writes a DOT graph of the current CPU and scheduler state
func (dbg *Debugger) graph(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("GRAPH: %v", err)
	}
	defer f.Close()

	st := &graphState{
		Registers: dbg.g.CPU.R,
		Status:    dbg.g.CPU.Status,
		SPSR:      dbg.g.CPU.SPSR,
		IME:       dbg.g.Sch.IME,
		IE:        dbg.g.Sch.IE,
		IF:        dbg.g.Sch.IF,
		Timers:    dbg.g.Sch.Timers,
		DMA:       dbg.g.Sch.DMA,
	}

	memviz.Map(f, st)

	return nil
}
