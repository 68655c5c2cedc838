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
	"os"

	"github.com/jetsetilly/gophergba/curated"
	"github.com/jetsetilly/gophergba/environment"
	"github.com/jetsetilly/gophergba/hardware/audio"
	"github.com/jetsetilly/gophergba/hardware/bios"
	"github.com/jetsetilly/gophergba/hardware/cpu"
	"github.com/jetsetilly/gophergba/hardware/input"
	"github.com/jetsetilly/gophergba/hardware/memory"
	"github.com/jetsetilly/gophergba/hardware/memory/memorymap"
	"github.com/jetsetilly/gophergba/hardware/registers"
	"github.com/jetsetilly/gophergba/hardware/scheduler"
	"github.com/jetsetilly/gophergba/hardware/video"
)

// GBA is the root of the emulation. It owns every component and lends itself
// to each of them as the view of the rest of the machine.
type GBA struct {
	env *environment.Environment

	CPU   *cpu.CPU
	Mem   *memory.Memory
	Sch   *scheduler.Scheduler
	Regs  *registers.Registers
	Video *video.Video
	Audio *audio.Audio
	HLE   *bios.HLE
	Input *input.Keypad

	// the first error raised while the CPU was bringing the rest of the
	// machine up to date. returned by Step()
	err error
}

// Option configures the GBA during construction.
type Option func(g *GBA) error

// WithRenderer attaches the renderer that draws each scanline.
func WithRenderer(renderer video.Renderer) Option {
	return func(g *GBA) error {
		g.Video.SetRenderer(renderer)
		return nil
	}
}

// WithAudioSink attaches the consumer of mixed audio samples.
func WithAudioSink(sink audio.Sink) Option {
	return func(g *GBA) error {
		g.Audio.SetSink(sink)
		return nil
	}
}

// WithSaveBackend attaches the storage for the cartridge's save memory.
func WithSaveBackend(save memory.SaveBackend) Option {
	return func(g *GBA) error {
		g.Mem.SetSaveBackend(save)
		return nil
	}
}

// WithGPIO attaches a device to the GPIO window of the cartridge.
func WithGPIO(gpio memory.GPIO) Option {
	return func(g *GBA) error {
		g.Mem.SetGPIO(gpio)
		return nil
	}
}

// WithKeypad replaces the keypad. Useful when the keypad has playback or a
// recorder attached.
func WithKeypad(kp *input.Keypad) Option {
	return func(g *GBA) error {
		if kp == nil {
			return curated.Errorf("gba: %v", "nil keypad")
		}
		g.Input = kp
		g.Regs.SetKeypad(kp)
		return nil
	}
}

// WithBIOS installs a BIOS image. If real is false the image is treated as
// a replacement for the HLE stub and software interrupts are still handled by
// the HLE.
func WithBIOS(data []byte, real bool) Option {
	return func(g *GBA) error {
		return g.Mem.LoadBIOS(data, real)
	}
}

// NewGBA is the preferred method of initialisation for the GBA type.
//
// Unless a BIOS is installed with the WithBIOS() option, the BIOS is chosen
// according to the UseRealBIOS preference.
func NewGBA(env *environment.Environment, options ...Option) (*GBA, error) {
	g := &GBA{
		env:   env,
		CPU:   cpu.NewCPU(env),
		Mem:   memory.NewMemory(env),
		Video: video.NewVideo(nil),
		Audio: audio.NewAudio(nil),
		HLE:   bios.NewHLE(env),
		Input: input.NewKeypad(),
	}
	g.Sch = scheduler.NewScheduler(env, g.Video, g.Audio)
	g.Regs = registers.NewRegisters(env, g.Sch, g.Video, g.Audio, g.Mem.Waitstates())
	g.Regs.SetKeypad(g.Input)

	env.Random.AttachClock(g.CPU)

	err := g.installBIOS()
	if err != nil {
		return nil, err
	}

	for _, opt := range options {
		err := opt(g)
		if err != nil {
			return nil, err
		}
	}

	g.Reset()

	return g, nil
}

// the BIOS installed before any options are applied
func (g *GBA) installBIOS() error {
	if g.env.Prefs.UseRealBIOS.Get().(bool) {
		fn := g.env.Prefs.BIOSFile.Get().(string)
		data, err := os.ReadFile(fn)
		if err != nil {
			return curated.Errorf(memory.BadBIOS, err)
		}
		return g.Mem.LoadBIOS(data, true)
	}
	return g.Mem.LoadBIOS(bios.Image(), false)
}

// Reset the machine. The BIOS and cartridge remain installed.
//
// With a real BIOS the CPU starts at the reset vector unless the SkipBIOS
// preference is set. Otherwise the CPU starts at the start of the cartridge
// with the stack pointers set as the BIOS would leave them.
func (g *GBA) Reset() {
	g.Mem.Reset()
	g.Video.Reset()
	g.Audio.Reset()
	g.Sch.Reset()
	g.Regs.Reset()
	g.Input.Reset()
	g.err = nil

	if g.Mem.RealBIOS() && !g.env.Prefs.SkipBIOS.Get().(bool) {
		g.CPU.Reset(memorymap.BaseBIOS)
		g.CPU.SwitchMode(cpu.ModeSupervisor)
		g.CPU.Status.IRQDisable = true
		g.CPU.Status.FIQDisable = true
		return
	}

	g.CPU.Reset(memorymap.BaseCart0)
	bios.ResetStack(g.CPU)
}

// LoadBIOS installs a BIOS image and resets the machine.
func (g *GBA) LoadBIOS(data []byte, real bool) error {
	err := g.Mem.LoadBIOS(data, real)
	if err != nil {
		return err
	}
	g.Reset()
	return nil
}

// LoadROM inserts a cartridge and resets the machine.
func (g *GBA) LoadROM(data []byte) error {
	_, err := g.Mem.LoadROM(data)
	if err != nil {
		return err
	}
	g.Reset()
	return nil
}

// Cart returns information about the inserted cartridge.
func (g *GBA) Cart() memory.Cartridge {
	return g.Mem.Cartridge()
}
