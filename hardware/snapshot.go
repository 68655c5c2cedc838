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
	"github.com/jetsetilly/gophergba/curated"
	"github.com/jetsetilly/gophergba/hardware/audio"
	"github.com/jetsetilly/gophergba/hardware/cpu"
	"github.com/jetsetilly/gophergba/hardware/memory"
	"github.com/jetsetilly/gophergba/hardware/registers"
	"github.com/jetsetilly/gophergba/hardware/scheduler"
	"github.com/jetsetilly/gophergba/hardware/video"
)

// SnapshotMismatch is the error pattern returned by Defrost() when the
// snapshot was taken with a different cartridge inserted.
const SnapshotMismatch = "snapshot: taken with a different cartridge (%s)"

// SnapshotIncomplete is the error pattern returned by Defrost() when part of
// the snapshot is missing.
const SnapshotIncomplete = "snapshot: missing %s"

// Snapshot is a copy of the machine state. The BIOS and cartridge ROM are not
// part of the snapshot.
type Snapshot struct {
	CPU   *cpu.CPU
	Mem   *memory.State
	Sch   *scheduler.Scheduler
	Regs  *registers.Registers
	Video *video.Video
	Audio *audio.Audio

	// contents of the cartridge save memory
	Save []byte

	cart memory.Cartridge
}

// Freeze takes a snapshot of the machine.
func (g *GBA) Freeze() (*Snapshot, error) {
	var save []byte
	if g.Mem.SaveBackend() != nil {
		data, err := g.Mem.SaveData()
		if err != nil {
			return nil, err
		}
		save = append([]byte{}, data...)
	}

	return &Snapshot{
		CPU:   g.CPU.Snapshot(),
		Mem:   g.Mem.Snapshot(),
		Sch:   g.Sch.Snapshot(),
		Regs:  g.Regs.Snapshot(),
		Video: g.Video.Snapshot(),
		Audio: g.Audio.Snapshot(),
		Save:  save,
		cart:  g.Mem.Cartridge(),
	}, nil
}

// Defrost restores a snapshot taken with Freeze(). The snapshot is copied so
// it can be defrosted more than once.
//
// The snapshot is checked in full before anything is restored. If an error is
// returned the machine is unchanged.
func (g *GBA) Defrost(s *Snapshot) error {
	err := g.checkSnapshot(s)
	if err != nil {
		return err
	}

	if s.Save != nil {
		err = g.Mem.LoadSaveData(s.Save)
		if err != nil {
			return err
		}
	}

	err = g.CPU.Plumb(s.CPU)
	if err != nil {
		return err
	}

	g.Mem.Plumb(s.Mem)
	g.Sch.Plumb(s.Sch)
	g.Regs.Plumb(s.Regs)
	g.Video.Plumb(s.Video)
	g.Audio.Plumb(s.Audio)
	g.err = nil

	return nil
}

func (g *GBA) checkSnapshot(s *Snapshot) error {
	if s == nil {
		return curated.Errorf(SnapshotIncomplete, "no snapshot")
	}
	if s.cart != g.Mem.Cartridge() {
		return curated.Errorf(SnapshotMismatch, s.cart.String())
	}

	switch {
	case s.CPU == nil:
		return curated.Errorf(SnapshotIncomplete, "cpu")
	case s.Mem == nil:
		return curated.Errorf(SnapshotIncomplete, "memory")
	case s.Sch == nil:
		return curated.Errorf(SnapshotIncomplete, "scheduler")
	case s.Regs == nil:
		return curated.Errorf(SnapshotIncomplete, "registers")
	case s.Video == nil:
		return curated.Errorf(SnapshotIncomplete, "video")
	case s.Audio == nil:
		return curated.Errorf(SnapshotIncomplete, "audio")
	}

	err := s.CPU.Validate()
	if err != nil {
		return err
	}

	err = s.Mem.Validate()
	if err != nil {
		return err
	}

	if s.Save != nil {
		err = g.Mem.CheckSaveData(s.Save)
		if err != nil {
			return err
		}
	}

	return nil
}
