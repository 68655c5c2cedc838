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

package hardware_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jetsetilly/gophergba/curated"
	"github.com/jetsetilly/gophergba/hardware"
	"github.com/jetsetilly/gophergba/hardware/cpu"
	"github.com/jetsetilly/gophergba/hardware/input"
	"github.com/jetsetilly/gophergba/hardware/scheduler"
)

const loop = 0xeafffffe // b .

var _ = Describe("GBA", func() {
	var g *hardware.GBA

	BeforeEach(func() {
		g = newGBA()
	})

	Describe("reset", func() {
		It("should start at the cartridge with the BIOS stack pointers", func() {
			Expect(g.LoadROM(cartridge("RESET", []uint32{loop}, nil))).To(Succeed())
			pc, thumb := g.CPU.Pipeline()
			Expect(pc).To(Equal(uint32(0x08000000)))
			Expect(thumb).To(BeFalse())
			Expect(g.CPU.Status.Mode).To(Equal(cpu.ModeSystem))
			Expect(g.CPU.R[13]).To(Equal(uint32(0x03007f00)))
		})

		It("should report the cartridge", func() {
			Expect(g.LoadROM(cartridge("REPORT", []uint32{loop}, nil))).To(Succeed())
			Expect(g.Cart().Title).To(Equal("REPORT"))
			Expect(g.Cart().Code).To(Equal("TEST"))
		})

		It("should reject a bad cartridge", func() {
			Expect(g.LoadROM([]byte{0x00})).NotTo(Succeed())
		})
	})

	Describe("stepping", func() {
		It("should execute instructions", func() {
			Expect(g.LoadROM(cartridge("STEP", []uint32{
				0xe3a00005, // mov r0, #5
				loop,
			}, nil))).To(Succeed())
			Expect(g.Step()).To(Succeed())
			Expect(g.CPU.R[0]).To(Equal(uint32(5)))
			Expect(g.Cycles()).To(BeNumerically(">", 0))
		})

		It("should handle software interrupts with the HLE BIOS", func() {
			Expect(g.LoadROM(cartridge("SWI", []uint32{
				0xe3a00064, // mov r0, #100
				0xe3a01007, // mov r1, #7
				0xef060000, // swi 0x06
				loop,
			}, nil))).To(Succeed())
			for range 3 {
				Expect(g.Step()).To(Succeed())
			}
			Expect(g.CPU.R[0]).To(Equal(uint32(14)))
			Expect(g.CPU.R[1]).To(Equal(uint32(2)))
		})

		It("should fail to halt with interrupts disabled", func() {
			Expect(g.LoadROM(cartridge("HALT", []uint32{
				0xe3a00404, // mov r0, #0x04000000
				0xe3a01000, // mov r1, #0
				0xe5c01301, // strb r1, [r0, #0x301]
				loop,
			}, nil))).To(Succeed())
			for range 3 {
				Expect(g.Step()).To(Succeed())
			}
			Expect(g.Sch.HaltRequested()).To(BeTrue())
			err := g.Step()
			Expect(curated.Is(err, scheduler.HaltWithoutInterrupts)).To(BeTrue())
		})

		It("should wait for VBlank in the BIOS", func() {
			Expect(g.LoadROM(cartridge("VBLANK", []uint32{
				0xe3a00404, // mov r0, #0x04000000
				0xe3a01008, // mov r1, #8
				0xe1c010b4, // strh r1, [r0, #4]       ; DISPSTAT VBlank IRQ
				0xe2802c02, // add r2, r0, #0x200
				0xe3a01001, // mov r1, #1
				0xe1c210b0, // strh r1, [r2]           ; IE
				0xe3a03408, // mov r3, #0x08000000
				0xe2833c01, // add r3, r3, #0x100
				0xe3a02403, // mov r2, #0x03000000
				0xe2822c7f, // add r2, r2, #0x7f00
				0xe58230fc, // str r3, [r2, #0xfc]     ; interrupt handler
				0xef050000, // swi 0x05
				0xe3a04001, // mov r4, #1
				loop,
			}, []uint32{
				0xe3a00404, // mov r0, #0x04000000
				0xe2800c02, // add r0, r0, #0x200
				0xe3a01001, // mov r1, #1
				0xe1c010b2, // strh r1, [r0, #2]       ; acknowledge IF
				0xe3a02403, // mov r2, #0x03000000
				0xe2822c7f, // add r2, r2, #0x7f00
				0xe1c21fb8, // strh r1, [r2, #0xf8]    ; BIOS interrupt flags
				0xe12fff1e, // bx lr
			}))).To(Succeed())

			for i := 0; i < 1000 && g.CPU.R[4] == 0; i++ {
				Expect(g.Step()).To(Succeed())
			}
			Expect(g.CPU.R[4]).To(Equal(uint32(1)))
			Expect(g.Video.Frame).To(Equal(1))
			Expect(g.CPU.Status.Mode).To(Equal(cpu.ModeSystem))
			Expect(g.Sch.IME).To(BeTrue())
		})
	})

	Describe("running", func() {
		BeforeEach(func() {
			Expect(g.LoadROM(cartridge("RUN", []uint32{loop}, nil))).To(Succeed())
		})

		It("should run a frame at a time", func() {
			Expect(g.RunFrame()).To(Succeed())
			Expect(g.Video.Frame).To(Equal(1))
			Expect(g.Video.InVBlank).To(BeTrue())
			Expect(g.RunFrame()).To(Succeed())
			Expect(g.Video.Frame).To(Equal(2))
		})

		It("should run for a number of frames", func() {
			Expect(g.Run(context.Background(), 3)).To(Succeed())
			Expect(g.Video.Frame).To(Equal(3))
		})

		It("should stop when the context is cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			Expect(g.Run(ctx, 0)).To(MatchError(context.Canceled))
			Expect(g.Video.Frame).To(Equal(0))
		})

		It("should read the keypad", func() {
			_, err := g.Input.HandleEvent(g.Video.Frame, input.Event{Button: input.ButtonA, Pressed: true})
			Expect(err).NotTo(HaveOccurred())
			Expect(g.Load16(0x04000130)).To(Equal(uint16(0x03fe)))
		})
	})

	Describe("resuming from a snapshot", func() {
		// a counter stored to successive words of working RAM
		program := []uint32{
			0xe3a01402, // mov r1, #0x02000000
			0xe2800001, // add r0, r0, #1
			0xe4810004, // str r0, [r1], #4
			0xeafffffc, // b 4
		}

		type state struct {
			regs   [16]uint32
			cpsr   uint32
			cycles int64
			frame  int
			wram   []byte
		}

		capture := func() state {
			wram, _ := g.Mem.RAM()
			return state{
				regs:   g.CPU.R,
				cpsr:   g.CPU.Status.Pack(),
				cycles: g.Cycles(),
				frame:  g.Video.Frame,
				wram:   append([]byte{}, wram...),
			}
		}

		It("should continue exactly as if the snapshot had not been taken", func() {
			Expect(g.LoadROM(cartridge("RESUME", program, nil))).To(Succeed())
			for range 25 {
				Expect(g.Step()).To(Succeed())
			}

			s, err := g.Freeze()
			Expect(err).NotTo(HaveOccurred())

			Expect(g.RunFrame()).To(Succeed())
			Expect(g.RunFrame()).To(Succeed())
			uninterrupted := capture()

			Expect(g.Defrost(s)).To(Succeed())
			Expect(g.RunFrame()).To(Succeed())
			Expect(g.RunFrame()).To(Succeed())
			Expect(capture()).To(Equal(uninterrupted))
		})
	})

	Describe("snapshots", func() {
		BeforeEach(func() {
			Expect(g.LoadROM(cartridge("FREEZE", []uint32{
				0xe3a00005, // mov r0, #5
				loop,
			}, nil))).To(Succeed())
		})

		It("should restore the machine", func() {
			Expect(g.Step()).To(Succeed())
			g.Store32(0x02000000, 0x12345678)
			cycles := g.Cycles()

			s, err := g.Freeze()
			Expect(err).NotTo(HaveOccurred())

			for range 100 {
				Expect(g.Step()).To(Succeed())
			}
			g.CPU.R[0] = 0
			g.Store32(0x02000000, 0)

			Expect(g.Defrost(s)).To(Succeed())
			Expect(g.CPU.R[0]).To(Equal(uint32(5)))
			Expect(g.Cycles()).To(Equal(cycles))
			Expect(g.Load32(0x02000000)).To(Equal(uint32(0x12345678)))

			// the snapshot can be defrosted again
			g.CPU.R[0] = 0
			Expect(g.Defrost(s)).To(Succeed())
			Expect(g.CPU.R[0]).To(Equal(uint32(5)))
		})

		It("should leave the machine unchanged when a snapshot is refused", func() {
			s, err := g.Freeze()
			Expect(err).NotTo(HaveOccurred())

			for range 10 {
				Expect(g.Step()).To(Succeed())
			}
			g.CPU.R[0] = 0x0a
			regs := g.CPU.R
			cycles := g.Cycles()

			s.Save = make([]byte, len(s.Save)*4+1)
			Expect(g.Defrost(s)).NotTo(Succeed())
			Expect(g.CPU.R).To(Equal(regs))
			Expect(g.Cycles()).To(Equal(cycles))

			s.Save = nil
			s.CPU = nil
			err = g.Defrost(s)
			Expect(curated.Is(err, hardware.SnapshotIncomplete)).To(BeTrue())
			Expect(g.CPU.R).To(Equal(regs))
			Expect(g.Cycles()).To(Equal(cycles))

			Expect(g.Defrost(nil)).NotTo(Succeed())
		})

		It("should refuse a snapshot from another cartridge", func() {
			s, err := g.Freeze()
			Expect(err).NotTo(HaveOccurred())
			Expect(g.LoadROM(cartridge("OTHER", []uint32{loop}, nil))).To(Succeed())
			err = g.Defrost(s)
			Expect(curated.Is(err, hardware.SnapshotMismatch)).To(BeTrue())
		})
	})
})
